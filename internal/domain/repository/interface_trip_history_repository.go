package repository

import (
	"context"

	"Tabinavi-App/internal/domain/model"
)

// TripHistoryRepository は生成済み旅行計画の履歴レコードのインターフェース
type TripHistoryRepository interface {
	Create(ctx context.Context, record *model.TripHistoryRecord) error
	GetByDestination(ctx context.Context, destinationLabel string) ([]model.TripHistoryRecord, error)
}
