package places

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sort"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/serjvanilla/go-overpass"

	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/domain/repository"
)

const defaultOverpassEndpoint = "https://overpass-api.de/api/interpreter"

// categoryToOSMFilter はアプリ内カテゴリからOverpass QLのタグフィルタへのマッピング
var categoryToOSMFilter = map[string]string{
	"restaurant":           `["amenity"="restaurant"]`,
	"cafe":                 `["amenity"="cafe"]`,
	"bakery":               `["shop"="bakery"]`,
	"bar":                  `["amenity"="bar"]`,
	"market":               `["amenity"="marketplace"]`,
	"night_market":         `["amenity"="marketplace"]`,
	"outdoor_market":       `["amenity"="marketplace"]`,
	"museum":               `["tourism"="museum"]`,
	"art_gallery":          `["tourism"="gallery"]`,
	"church":               `["amenity"="place_of_worship"]`,
	"park":                 `["leisure"="park"]`,
	"garden":               `["leisure"="garden"]`,
	"spa":                  `["leisure"="spa"]`,
	"tourist_attraction":   `["tourism"="attraction"]`,
	"free_attraction":      `["tourism"="attraction"]`,
	"premium_attraction":   `["tourism"="attraction"]`,
	"walking_tour":         `["tourism"="attraction"]`,
	"indoor_attraction":    `["tourism"="museum"]`,
	"shopping_mall":        `["shop"="mall"]`,
	"shopping":             `["shop"="mall"]`,
	"amusement_park":       `["tourism"="theme_park"]`,
	"zoo":                  `["tourism"="zoo"]`,
	"aquarium":             `["tourism"="aquarium"]`,
	"sport_center":         `["leisure"="sports_centre"]`,
	"outdoor_activity":     `["leisure"="sports_centre"]`,
	"indoor_activity":      `["leisure"="amusement_arcade"]`,
	"beach":                `["natural"="beach"]`,
	"view_point":           `["tourism"="viewpoint"]`,
	"scenic_drive":         `["tourism"="viewpoint"]`,
	"movie_theater":        `["amenity"="cinema"]`,
	"entertainment":        `["amenity"="theatre"]`,
	"indoor_entertainment": `["amenity"="theatre"]`,
	"night_club":           `["amenity"="nightclub"]`,
	"rooftop_bar":          `["amenity"="bar"]`,
	"outdoor_dining":       `["amenity"="restaurant"]`,
	"late_night_food":      `["amenity"="restaurant"]`,
	"fine_dining":          `["amenity"="restaurant"]`,
}

// OverpassPlacesProvider はOverpass API（OpenStreetMap）を使用したスポット検索の実装
// APIキー不要のため、OpenTripMapキーがない環境でのフォールバックとして使う
type OverpassPlacesProvider struct {
	client *overpass.Client
}

// NewOverpassPlacesProvider は新しいプロバイダを生成する
func NewOverpassPlacesProvider(endpoint string) repository.PlacesProvider {
	if endpoint == "" {
		endpoint = defaultOverpassEndpoint
	}
	httpClient := &http.Client{Timeout: 30 * time.Second}
	client := overpass.NewWithSettings(endpoint, 1, httpClient)
	return &OverpassPlacesProvider{
		client: &client,
	}
}

// SearchNearby は座標周辺の指定カテゴリのスポットをOSMノードから検索する
// 結果は検索中心からの距離昇順で返す
func (p *OverpassPlacesProvider) SearchNearby(ctx context.Context, coord model.Coordinate, category string, radiusMeters, limit int) ([]model.Place, error) {
	filter, ok := categoryToOSMFilter[category]
	if !ok {
		filter = `["tourism"="attraction"]`
	}

	south, west, north, east := boundingBoxAround(coord, radiusMeters)
	query := fmt.Sprintf(`
		[out:json];
		(
			node%s(%f,%f,%f,%f);
		);
		out body;
	`, filter, south, west, north, east)

	result, err := p.client.Query(query)
	if err != nil {
		return nil, fmt.Errorf("Overpassクエリの実行に失敗: %w", err)
	}

	center := orb.Point{coord.Longitude, coord.Latitude}
	var places []model.Place
	for _, node := range result.Nodes {
		name := node.Tags["name"]
		if name == "" {
			continue
		}
		places = append(places, model.Place{
			Name:     name,
			Category: category,
			Address:  node.Tags["addr:street"],
			Coordinate: model.Coordinate{
				Latitude:  node.Lat,
				Longitude: node.Lon,
			},
		})
	}

	// OSMノードのマップ順は不定なので、中心からの距離でソートして決定的にする
	sort.Slice(places, func(i, j int) bool {
		di := geo.Distance(center, orb.Point{places[i].Coordinate.Longitude, places[i].Coordinate.Latitude})
		dj := geo.Distance(center, orb.Point{places[j].Coordinate.Longitude, places[j].Coordinate.Latitude})
		return di < dj
	})

	if len(places) > limit {
		places = places[:limit]
	}
	return places, nil
}

// boundingBoxAround は座標を中心とした半径radiusMetersの境界ボックスを作成する
func boundingBoxAround(coord model.Coordinate, radiusMeters int) (south, west, north, east float64) {
	center := orb.Point{coord.Longitude, coord.Latitude}

	// 緯度1度 ≈ 111.32km。経度は緯度に応じて縮む
	latPadding := float64(radiusMeters) / 111320.0
	lngPadding := float64(radiusMeters) / (111320.0 * cosDeg(coord.Latitude))

	bound := orb.Bound{Min: center, Max: center}
	bound = bound.Extend(orb.Point{center.Lon() - lngPadding, center.Lat() - latPadding})
	bound = bound.Extend(orb.Point{center.Lon() + lngPadding, center.Lat() + latPadding})

	return bound.Min.Lat(), bound.Min.Lon(), bound.Max.Lat(), bound.Max.Lon()
}

// cosDeg は度単位のコサイン（高緯度での発散を避けるため下限つき）
func cosDeg(deg float64) float64 {
	c := math.Cos(deg * math.Pi / 180)
	if c < 0.01 {
		c = 0.01
	}
	return c
}
