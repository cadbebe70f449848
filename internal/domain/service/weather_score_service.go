package service

import (
	"sort"

	"Tabinavi-App/internal/domain/model"
)

// WeatherScoreService は日次予報のスコアリングと最適な連続日程の選択を行う
// スコア計算は決定的で、同じ入力に対して常に同じ結果を返す
type WeatherScoreService struct{}

// NewWeatherScoreService は新しいWeatherScoreServiceインスタンスを作成
func NewWeatherScoreService() *WeatherScoreService {
	return &WeatherScoreService{}
}

// 気象ペナルティの閾値
const (
	extremeTempPenalty  = 30
	moderateTempPenalty = 15

	precipSumPenaltyCap  = 50 // 降水量ペナルティの上限
	precipProbPenaltyCap = 30 // 降水確率ペナルティの上限

	severeWindKPH      = 40
	severeWindPenalty  = 25
	strongWindKPH      = 30
	strongWindPenalty  = 15

	snowClassPenalty    = 40
	rainClassPenalty    = 30
	drizzleClassPenalty = 20
)

// ScoreDay は1日分の予報を0〜100の適性スコアに変換する
// 100点から減点方式で計算し、0を下回らない
func (s *WeatherScoreService) ScoreDay(day model.DailyForecast) int {
	score := 100.0

	// 気温ペナルティ（極端な場合は中程度の減点を重ねない）
	if day.MaxTempC > 30 || day.MinTempC < 5 {
		score -= extremeTempPenalty
	} else if day.MaxTempC > 25 || day.MinTempC < 10 {
		score -= moderateTempPenalty
	}

	// 降水ペナルティ（それぞれ上限あり）
	precipPenalty := day.PrecipitationMM * 10
	if precipPenalty > precipSumPenaltyCap {
		precipPenalty = precipSumPenaltyCap
	}
	score -= precipPenalty

	probPenalty := day.PrecipitationProbabilityPct / 2
	if probPenalty > precipProbPenaltyCap {
		probPenalty = precipProbPenaltyCap
	}
	score -= probPenalty

	// 風ペナルティ
	if day.MaxWindKPH > severeWindKPH {
		score -= severeWindPenalty
	} else if day.MaxWindKPH > strongWindKPH {
		score -= strongWindPenalty
	}

	// 天気コードペナルティ（最も重い区分のみ適用）
	switch {
	case day.ConditionCode >= model.WeatherCodeSnowClass:
		score -= snowClassPenalty
	case day.ConditionCode >= model.WeatherCodeRainClass:
		score -= rainClassPenalty
	case day.ConditionCode >= model.WeatherCodeDrizzleClass:
		score -= drizzleClassPenalty
	}

	if score < 0 {
		score = 0
	}
	return int(score)
}

// ScoreForecast は予報全体をスコアリング済みの日の列に変換する（日付順は維持）
func (s *WeatherScoreService) ScoreForecast(forecast []model.DailyForecast) []model.ScoredDay {
	scored := make([]model.ScoredDay, 0, len(forecast))
	for _, day := range forecast {
		scored = append(scored, model.ScoredDay{
			Date:            day.Date,
			Score:           s.ScoreDay(day),
			MaxTempC:        day.MaxTempC,
			PrecipitationMM: day.PrecipitationMM,
		})
	}
	return scored
}

// SelectBestWindow はスコア合計が最大となる連続windowSize日間を選択する
// 同点の場合は最も早い開始日を採用する
// 連続した日程が存在しない場合やwindowSizeが日数を超える場合はok=falseを返す
// （その場合の「明日から開始」フォールバックは呼び出し側の責務）
func (s *WeatherScoreService) SelectBestWindow(scoredDays []model.ScoredDay, windowSize int) ([]model.ScoredDay, bool) {
	if windowSize <= 0 || len(scoredDays) < windowSize {
		return nil, false
	}

	// 入力は日付昇順が前提だが、念のためソートする
	sorted := make([]model.ScoredDay, len(scoredDays))
	copy(sorted, scoredDays)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	bestStart := -1
	bestScore := -1
	for i := 0; i+windowSize <= len(sorted); i++ {
		if !isConsecutive(sorted[i : i+windowSize]) {
			continue
		}
		total := 0
		for _, day := range sorted[i : i+windowSize] {
			total += day.Score
		}
		if total > bestScore {
			bestScore = total
			bestStart = i
		}
	}

	if bestStart < 0 {
		return nil, false
	}
	return sorted[bestStart : bestStart+windowSize], true
}

// isConsecutive は日付が1日ずつ増加する連続した並びかをチェックする
func isConsecutive(days []model.ScoredDay) bool {
	for i := 1; i < len(days); i++ {
		prev := days[i-1].Date
		if !days[i].Date.Equal(prev.AddDate(0, 0, 1)) {
			return false
		}
	}
	return true
}
