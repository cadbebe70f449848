package repository

import (
	"context"

	"Tabinavi-App/internal/domain/model"
)

// ForecastProvider は天気予報コラボレーターのインターフェース
type ForecastProvider interface {
	// Fetch は指定座標の日次予報を日付昇順で取得する（最大16日）
	Fetch(ctx context.Context, coord model.Coordinate, days int) ([]model.DailyForecast, error)
}
