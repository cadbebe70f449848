package repository

import (
	"context"

	"Tabinavi-App/internal/domain/model"
)

// PlacesProvider はスポット検索コラボレーターのインターフェース
// 実装はOpenTripMap API、Overpass API、自前のPostgresカタログの3種類
type PlacesProvider interface {
	// SearchNearby は座標の周辺から指定カテゴリのスポットを検索する
	// 結果の並び順は上流のまま（先頭を採用するのが呼び出し側のポリシー）
	SearchNearby(ctx context.Context, coord model.Coordinate, category string, radiusMeters, limit int) ([]model.Place, error)
}
