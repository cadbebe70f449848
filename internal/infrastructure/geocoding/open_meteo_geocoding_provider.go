package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/domain/repository"
)

const openMeteoGeocodingBaseURL = "https://geocoding-api.open-meteo.com/v1/search"

// OpenMeteoGeocodingProvider はOpen-Meteo Geocoding APIを使用した地名解決の実装
type OpenMeteoGeocodingProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoGeocodingProvider は新しいプロバイダを生成する
func NewOpenMeteoGeocodingProvider() repository.GeocodingProvider {
	return &OpenMeteoGeocodingProvider{
		baseURL:    openMeteoGeocodingBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type geocodingResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
	} `json:"results"`
}

// Resolve は地名をトップ1件の検索結果の座標に解決する
// 結果ゼロ件はmodel.ErrPlaceNotFound、通信エラーはラップして返す
func (g *OpenMeteoGeocodingProvider) Resolve(ctx context.Context, placeName string) (model.Coordinate, error) {
	params := url.Values{}
	params.Set("name", placeName)
	params.Set("count", "1") // トップ1件のみ取得
	params.Set("language", "en")
	params.Set("format", "json")

	reqURL := fmt.Sprintf("%s?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("ジオコーディングAPIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Coordinate{}, fmt.Errorf("ジオコーディングAPIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiResp geocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return model.Coordinate{}, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	if len(apiResp.Results) == 0 {
		return model.Coordinate{}, fmt.Errorf("%q: %w", placeName, model.ErrPlaceNotFound)
	}

	coord := model.Coordinate{
		Latitude:  apiResp.Results[0].Latitude,
		Longitude: apiResp.Results[0].Longitude,
	}
	if !coord.IsValid() {
		return model.Coordinate{}, fmt.Errorf("ジオコーディング結果の座標が不正です: %v", coord)
	}

	return coord, nil
}
