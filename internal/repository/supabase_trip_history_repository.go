package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"Tabinavi-App/internal/database"
	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/domain/repository"
)

type SupabaseTripHistoryRepository struct {
	client *database.SupabaseClient
}

func NewSupabaseTripHistoryRepository(client *database.SupabaseClient) repository.TripHistoryRepository {
	return &SupabaseTripHistoryRepository{
		client: client,
	}
}

// tripHistoryDB はtrip_historiesテーブルの保存形式
type tripHistoryDB struct {
	ID               string    `json:"id"`
	DestinationLabel string    `json:"destination_label"`
	Location         string    `json:"location"` // WKT形式 "POINT(lng lat)"
	TripStyle        string    `json:"trip_style"`
	Budget           string    `json:"budget"`
	DurationDays     int       `json:"duration_days"`
	WeatherOptimized bool      `json:"weather_optimized"`
	TotalActivities  int       `json:"total_activities"`
	CreatedAt        time.Time `json:"created_at"`
}

func (r *SupabaseTripHistoryRepository) Create(ctx context.Context, record *model.TripHistoryRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	historyDB := tripHistoryToDB(record)

	data, err := json.Marshal(historyDB)
	if err != nil {
		return fmt.Errorf("旅行履歴のJSONマーシャル失敗: %w", err)
	}

	_, _, err = r.client.GetClient().From("trip_histories").Insert(string(data), false, "", "", "").Execute()
	if err != nil {
		return fmt.Errorf("旅行履歴の作成失敗: %w", err)
	}

	return nil
}

func (r *SupabaseTripHistoryRepository) GetByDestination(ctx context.Context, destinationLabel string) ([]model.TripHistoryRecord, error) {
	var histories []tripHistoryDB
	data, count, err := r.client.GetClient().From("trip_histories").Select("*", "exact", false).Eq("destination_label", destinationLabel).Execute()
	if err != nil {
		return nil, fmt.Errorf("旅行履歴の取得失敗: %w", err)
	}
	_ = count

	if err := json.Unmarshal([]byte(data), &histories); err != nil {
		return nil, fmt.Errorf("旅行履歴のJSONアンマーシャル失敗: %w", err)
	}

	records := make([]model.TripHistoryRecord, 0, len(histories))
	for i := range histories {
		record, err := tripHistoryFromDB(&histories[i])
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	return records, nil
}
