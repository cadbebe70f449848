package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/domain/repository"
)

const openMeteoForecastBaseURL = "https://api.open-meteo.com/v1/forecast"

// 日次予報で取得するパラメータ
const dailyForecastParams = "temperature_2m_max,temperature_2m_min,precipitation_sum,precipitation_probability_max,wind_speed_10m_max,weather_code"

// OpenMeteoForecastProvider はOpen-Meteo Forecast APIを使用した天気予報取得の実装
type OpenMeteoForecastProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoForecastProvider は新しいプロバイダを生成する
func NewOpenMeteoForecastProvider() repository.ForecastProvider {
	return &OpenMeteoForecastProvider{
		baseURL:    openMeteoForecastBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type forecastResponse struct {
	Daily struct {
		Time                        []string  `json:"time"`
		Temperature2mMax            []float64 `json:"temperature_2m_max"`
		Temperature2mMin            []float64 `json:"temperature_2m_min"`
		PrecipitationSum            []float64 `json:"precipitation_sum"`
		PrecipitationProbabilityMax []float64 `json:"precipitation_probability_max"`
		WindSpeed10mMax             []float64 `json:"wind_speed_10m_max"`
		WeatherCode                 []int     `json:"weather_code"`
	} `json:"daily"`
}

// Fetch は指定座標の日次予報を日付昇順で取得する
func (p *OpenMeteoForecastProvider) Fetch(ctx context.Context, coord model.Coordinate, days int) ([]model.DailyForecast, error) {
	if days > model.MaxForecastDays {
		days = model.MaxForecastDays // APIの上限
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	params.Set("daily", dailyForecastParams)
	params.Set("forecast_days", strconv.Itoa(days))
	params.Set("timezone", "auto")

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("天気予報APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("天気予報APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	return p.toDailyForecasts(&apiResp, days)
}

// toDailyForecasts はカラム指向のAPIレスポンスを日単位の構造体に組み替える
// 一部のカラムが欠けている日は穏やかなデフォルト値で補完する
func (p *OpenMeteoForecastProvider) toDailyForecasts(apiResp *forecastResponse, days int) ([]model.DailyForecast, error) {
	daily := apiResp.Daily
	if len(daily.Time) == 0 {
		return nil, fmt.Errorf("天気予報データが空です")
	}

	count := len(daily.Time)
	if count > days {
		count = days
	}

	forecasts := make([]model.DailyForecast, 0, count)
	for i := 0; i < count; i++ {
		date, err := time.Parse("2006-01-02", daily.Time[i])
		if err != nil {
			return nil, fmt.Errorf("予報日付のパースに失敗 (%s): %w", daily.Time[i], err)
		}

		forecast := model.DailyForecast{
			Date:     date,
			MaxTempC: 20,
			MinTempC: 10,
		}
		if i < len(daily.Temperature2mMax) {
			forecast.MaxTempC = daily.Temperature2mMax[i]
		}
		if i < len(daily.Temperature2mMin) {
			forecast.MinTempC = daily.Temperature2mMin[i]
		}
		if i < len(daily.PrecipitationSum) {
			forecast.PrecipitationMM = daily.PrecipitationSum[i]
		}
		if i < len(daily.PrecipitationProbabilityMax) {
			forecast.PrecipitationProbabilityPct = daily.PrecipitationProbabilityMax[i]
		}
		if i < len(daily.WindSpeed10mMax) {
			forecast.MaxWindKPH = daily.WindSpeed10mMax[i]
		}
		if i < len(daily.WeatherCode) {
			forecast.ConditionCode = daily.WeatherCode[i]
		}

		forecasts = append(forecasts, forecast)
	}

	return forecasts, nil
}
