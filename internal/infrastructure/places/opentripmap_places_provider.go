package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/domain/repository"
)

const openTripMapBaseURL = "https://api.opentripmap.com/0.1/en/places/radius"

// categoryToKinds はアプリ内カテゴリからOpenTripMapのkindsへのマッピング
// 未知のカテゴリはinteresting_placesにフォールバックする
var categoryToKinds = map[string]string{
	"restaurant":           "restaurants",
	"cafe":                 "cafes",
	"bakery":               "bakeries",
	"bar":                  "bars",
	"market":               "marketplaces",
	"night_market":         "marketplaces",
	"outdoor_market":       "marketplaces",
	"museum":               "museums",
	"art_gallery":          "art_galleries",
	"church":               "churches",
	"park":                 "gardens_and_parks",
	"garden":               "gardens_and_parks",
	"spa":                  "baths_and_saunas",
	"tourist_attraction":   "interesting_places",
	"free_attraction":      "interesting_places",
	"premium_attraction":   "interesting_places",
	"walking_tour":         "interesting_places",
	"indoor_attraction":    "museums",
	"shopping_mall":        "malls",
	"shopping":             "shops",
	"amusement_park":       "amusement_parks",
	"zoo":                  "zoos",
	"aquarium":             "aquariums",
	"sport_center":         "sport",
	"outdoor_activity":     "sport",
	"indoor_activity":      "amusements",
	"beach":                "beaches",
	"view_point":           "view_points",
	"scenic_drive":         "view_points",
	"movie_theater":        "cinemas",
	"entertainment":        "theatres_and_entertainments",
	"indoor_entertainment": "theatres_and_entertainments",
	"night_club":           "nightclubs",
	"rooftop_bar":          "bars",
	"outdoor_dining":       "restaurants",
	"late_night_food":      "restaurants",
	"fine_dining":          "restaurants",
}

// OpenTripMapPlacesProvider はOpenTripMap APIを使用したスポット検索の実装
type OpenTripMapPlacesProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenTripMapPlacesProvider は新しいプロバイダを生成する
func NewOpenTripMapPlacesProvider(apiKey string) repository.PlacesProvider {
	return &OpenTripMapPlacesProvider{
		apiKey:     apiKey,
		baseURL:    openTripMapBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type openTripMapPlace struct {
	XID   string  `json:"xid"`
	Name  string  `json:"name"`
	Dist  float64 `json:"dist"`
	Rate  float64 `json:"rate"`
	Kinds string  `json:"kinds"`
	Point struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"point"`
}

// SearchNearby は座標周辺の指定カテゴリのスポットを距離昇順で取得する
func (p *OpenTripMapPlacesProvider) SearchNearby(ctx context.Context, coord model.Coordinate, category string, radiusMeters, limit int) ([]model.Place, error) {
	kinds, ok := categoryToKinds[category]
	if !ok {
		kinds = "interesting_places"
	}

	params := url.Values{}
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("lon", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	params.Set("lat", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	params.Set("kinds", kinds)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("apikey", p.apiKey)

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("リクエストの作成に失敗: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("スポット検索APIリクエストに失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("スポット検索APIからエラーステータスが返されました: %s", resp.Status)
	}

	var apiPlaces []openTripMapPlace
	if err := json.NewDecoder(resp.Body).Decode(&apiPlaces); err != nil {
		return nil, fmt.Errorf("JSONのパースに失敗: %w", err)
	}

	places := make([]model.Place, 0, len(apiPlaces))
	for _, ap := range apiPlaces {
		// OpenTripMapには名前なしのスポットが多数含まれるため除外する
		if strings.TrimSpace(ap.Name) == "" {
			continue
		}
		places = append(places, model.Place{
			Name:     ap.Name,
			Category: category,
			Rating:   ap.Rate,
			Coordinate: model.Coordinate{
				Latitude:  ap.Point.Lat,
				Longitude: ap.Point.Lon,
			},
		})
		if len(places) >= limit {
			break
		}
	}

	return places, nil
}
