package model

// Place 周辺検索の結果1件分のスポット情報
type Place struct {
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Rating     float64    `json:"rating"`
	Address    string     `json:"address,omitempty"`
	Coordinate Coordinate `json:"coordinate"`
}

// Activity 旅程に組み込まれた1つのアクティビティ
type Activity struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	TimeSlot string  `json:"time_slot"` // morning / afternoon / evening
	Rating   float64 `json:"rating,omitempty"`
	Address  string  `json:"address,omitempty"`
}

// ToActivity Placeを指定の時間帯のアクティビティに変換する
func (p *Place) ToActivity(timeSlot string) *Activity {
	return &Activity{
		Name:     p.Name,
		Category: p.Category,
		TimeSlot: timeSlot,
		Rating:   p.Rating,
		Address:  p.Address,
	}
}
