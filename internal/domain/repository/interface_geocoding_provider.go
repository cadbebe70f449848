package repository

import (
	"context"

	"Tabinavi-App/internal/domain/model"
)

// GeocodingProvider は地名から座標を解決するコラボレーターのインターフェース
type GeocodingProvider interface {
	// Resolve は地名を座標に解決する
	// 該当なしの場合はmodel.ErrPlaceNotFoundを返す（輸送エラーとは区別される）
	Resolve(ctx context.Context, placeName string) (model.Coordinate, error)
}
