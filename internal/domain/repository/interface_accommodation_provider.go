package repository

import (
	"context"
	"time"

	"Tabinavi-App/internal/domain/model"
)

// AccommodationProvider は宿泊検索コラボレーターのインターフェース
type AccommodationProvider interface {
	// Enabled はAPIクレデンシャルが設定されているかを返す
	// falseの場合、宿泊検索機能は無効（エラーではない）
	Enabled() bool

	// Search は座標と日程で宿泊施設を検索する
	Search(ctx context.Context, coord model.Coordinate, checkIn, checkOut time.Time, adults, rooms, limit int) ([]model.AccommodationResult, error)
}
