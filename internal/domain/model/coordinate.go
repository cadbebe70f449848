package model

import "fmt"

// Coordinate 緯度経度を表す基本的な型（ジオコーディング結果や周辺検索で使用）
type Coordinate struct {
	Latitude  float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"required,min=-180,max=180"`
}

// IsValid 緯度経度が有効な範囲内かチェック
func (c Coordinate) IsValid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Label 座標を表示用文字列に変換する
func (c Coordinate) Label() string {
	return fmt.Sprintf("coordinates (%.4f, %.4f)", c.Latitude, c.Longitude)
}
