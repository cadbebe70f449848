package model

import "time"

// DailyForecast 1日分の天気予報データ（上流の予報APIから取得）
type DailyForecast struct {
	Date                        time.Time `json:"date"`
	MaxTempC                    float64   `json:"max_temp_c"`
	MinTempC                    float64   `json:"min_temp_c"`
	PrecipitationMM             float64   `json:"precipitation_mm"`
	PrecipitationProbabilityPct float64   `json:"precipitation_probability_pct"`
	MaxWindKPH                  float64   `json:"max_wind_kph"`
	ConditionCode               int       `json:"condition_code"`
}

// ScoredDay スコアリング済みの1日（日程選択で使用、リクエストごとに再計算される）
type ScoredDay struct {
	Date            time.Time `json:"date"`
	Score           int       `json:"score"` // 0〜100
	MaxTempC        float64   `json:"max_temp_c"`
	PrecipitationMM float64   `json:"precipitation_mm"`
}

// WMOの天気コード区分の下限値（悪天候ペナルティの判定に使用）
const (
	WeatherCodeSnowClass    = 70
	WeatherCodeRainClass    = 50
	WeatherCodeDrizzleClass = 30
)

// MatchesWeatherCondition は天気コードが指定の天気条件に該当するかを判定する
// WMOコード区分: 0=快晴, 1-2=晴れ〜薄曇り, 3=曇天, 45-48=霧,
// 51-67=霧雨〜雨, 71-77=雪, 80-82=にわか雨, 85-86=にわか雪, 95以上=雷雨
func MatchesWeatherCondition(code int, condition string) bool {
	switch condition {
	case "clear", "sunny":
		return code <= 1
	case "partly_cloudy":
		return code == 2
	case "cloudy":
		return code == 2 || code == 3
	case "overcast":
		return code == 3
	case "rainy":
		return (code >= 51 && code <= 67) || (code >= 80 && code <= 82) || code >= 95
	case "snowy":
		return (code >= 71 && code <= 77) || code == 85 || code == 86
	default:
		return false
	}
}
