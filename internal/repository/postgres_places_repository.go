package repository

import (
	"context"
	"database/sql"
	"fmt"

	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/domain/repository"
	"Tabinavi-App/internal/infrastructure/database"
)

// PostgresPlacesRepository 自前のスポットカタログ（placesテーブル）を検索するPlacesProvider実装
// 外部APIキーなしで運用する場合のフォールバック
type PostgresPlacesRepository struct {
	client *database.PostgreSQLClient
}

func NewPostgresPlacesRepository(client *database.PostgreSQLClient) repository.PlacesProvider {
	return &PostgresPlacesRepository{
		client: client,
	}
}

// placeRow placesテーブルの1行
type placeRow struct {
	Name           string          `db:"name"`
	Category       string          `db:"category"`
	Rating         sql.NullFloat64 `db:"rating"`
	Address        sql.NullString  `db:"address"`
	Latitude       float64         `db:"latitude"`
	Longitude      float64         `db:"longitude"`
	DistanceMeters float64         `db:"distance_meters"`
}

func (pr *placeRow) toPlace() model.Place {
	place := model.Place{
		Name:     pr.Name,
		Category: pr.Category,
		Coordinate: model.Coordinate{
			Latitude:  pr.Latitude,
			Longitude: pr.Longitude,
		},
	}
	if pr.Rating.Valid {
		place.Rating = pr.Rating.Float64
	}
	if pr.Address.Valid {
		place.Address = pr.Address.String
	}
	return place
}

// SearchNearby は座標周辺の指定カテゴリのスポットをハーベサイン距離順で取得する
func (r *PostgresPlacesRepository) SearchNearby(ctx context.Context, coord model.Coordinate, category string, radiusMeters, limit int) ([]model.Place, error) {
	const query = `
		SELECT
			name,
			category,
			rating,
			address,
			latitude,
			longitude,
			distance_meters
		FROM (
			SELECT
				name,
				category,
				rating,
				address,
				latitude,
				longitude,
				2 * 6371000 * asin(sqrt(
					pow(sin(radians(latitude - $1) / 2), 2) +
					cos(radians($1)) * cos(radians(latitude)) *
					pow(sin(radians(longitude - $2) / 2), 2)
				)) AS distance_meters
			FROM places
			WHERE category = $3
		) AS nearby
		WHERE distance_meters <= $4
		ORDER BY distance_meters ASC
		LIMIT $5`

	var rows []placeRow
	err := r.client.DB.SelectContext(ctx, &rows, query,
		coord.Latitude, coord.Longitude, category, float64(radiusMeters), limit)
	if err != nil {
		return nil, fmt.Errorf("スポットカタログの検索失敗: %w", err)
	}

	places := make([]model.Place, 0, len(rows))
	for i := range rows {
		places = append(places, rows[i].toPlace())
	}

	return places, nil
}
