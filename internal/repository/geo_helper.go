package repository

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"Tabinavi-App/internal/domain/model"
)

// coordinateToWKT model.Coordinate を WKT POINT 形式に変換
func coordinateToWKT(coord model.Coordinate) string {
	point := orb.Point{coord.Longitude, coord.Latitude}
	return wkt.MarshalString(point)
}

// coordinateFromWKT WKT POINT 形式を model.Coordinate に変換
func coordinateFromWKT(location string) (model.Coordinate, error) {
	geom, err := wkt.Unmarshal(location)
	if err != nil {
		return model.Coordinate{}, fmt.Errorf("位置情報のWKT解析失敗: %w", err)
	}

	point, ok := geom.(orb.Point)
	if !ok {
		return model.Coordinate{}, fmt.Errorf("位置情報がPOINT型ではありません: %s", location)
	}

	return model.Coordinate{
		Latitude:  point.Lat(),
		Longitude: point.Lon(),
	}, nil
}

// tripHistoryToDB model.TripHistoryRecord を DB 保存用に変換
func tripHistoryToDB(record *model.TripHistoryRecord) *tripHistoryDB {
	return &tripHistoryDB{
		ID:               record.ID,
		DestinationLabel: record.DestinationLabel,
		Location:         coordinateToWKT(model.Coordinate{Latitude: record.Latitude, Longitude: record.Longitude}),
		TripStyle:        record.TripStyle,
		Budget:           record.Budget,
		DurationDays:     record.DurationDays,
		WeatherOptimized: record.WeatherOptimized,
		TotalActivities:  record.TotalActivities,
		CreatedAt:        record.CreatedAt,
	}
}

// tripHistoryFromDB DB レコードを model.TripHistoryRecord に変換
func tripHistoryFromDB(db *tripHistoryDB) (*model.TripHistoryRecord, error) {
	coord, err := coordinateFromWKT(db.Location)
	if err != nil {
		return nil, err
	}

	return &model.TripHistoryRecord{
		ID:               db.ID,
		DestinationLabel: db.DestinationLabel,
		Latitude:         coord.Latitude,
		Longitude:        coord.Longitude,
		TripStyle:        db.TripStyle,
		Budget:           db.Budget,
		DurationDays:     db.DurationDays,
		WeatherOptimized: db.WeatherOptimized,
		TotalActivities:  db.TotalActivities,
		CreatedAt:        db.CreatedAt,
	}, nil
}
