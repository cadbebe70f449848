package model

import "time"

// DayPlan 1日分の旅程（アクティビティは時間帯の時系列順）
type DayPlan struct {
	Date       time.Time   `json:"date"`
	DayOfWeek  string      `json:"day_of_week"`
	Activities []*Activity `json:"activities"`
}

// TotalActivities その日のアクティビティ数を取得する
func (d *DayPlan) TotalActivities() int {
	return len(d.Activities)
}

// AccommodationResult 宿泊検索コラボレーターのレスポンス1件分
type AccommodationResult struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Rating       float64 `json:"rating"`
	NightlyPrice float64 `json:"nightly_price"`
	Currency     string  `json:"currency"`
}

// AccommodationOffer 旅程に採用された宿泊プラン（最初の検索結果をそのまま採用）
type AccommodationOffer struct {
	Name         string    `json:"name"`
	Rating       float64   `json:"rating"`
	NightlyPrice float64   `json:"nightly_price"`
	Currency     string    `json:"currency"`
	Nights       int       `json:"nights"`
	TotalCost    float64   `json:"total_cost"`
	CheckIn      time.Time `json:"check_in"`
	CheckOut     time.Time `json:"check_out"`
}

// TripPlan 旅行計画全体（リクエストスコープで生成され、レンダリング後に破棄される）
type TripPlan struct {
	DestinationLabel  string              `json:"destination_label"`
	Coordinate        Coordinate          `json:"coordinate"`
	DayPlans          []*DayPlan          `json:"day_plans"`
	Accommodation     *AccommodationOffer `json:"accommodation,omitempty"`
	TripStyle         string              `json:"trip_style"`
	Budget            string              `json:"budget"`
	WeatherCondition  string              `json:"weather_condition,omitempty"` // 天気ベース計画の場合のみ
	DateSelectionNote string              `json:"date_selection_note,omitempty"`
}

// StartDate 旅程の開始日を取得する
func (p *TripPlan) StartDate() time.Time {
	if len(p.DayPlans) == 0 {
		return time.Time{}
	}
	return p.DayPlans[0].Date
}

// EndDate 旅程の最終日を取得する
func (p *TripPlan) EndDate() time.Time {
	if len(p.DayPlans) == 0 {
		return time.Time{}
	}
	return p.DayPlans[len(p.DayPlans)-1].Date
}

// DurationDays 旅程の日数を取得する
func (p *TripPlan) DurationDays() int {
	return len(p.DayPlans)
}

// TotalActivities 全日程の合計アクティビティ数を取得する
func (p *TripPlan) TotalActivities() int {
	total := 0
	for _, day := range p.DayPlans {
		total += len(day.Activities)
	}
	return total
}

// TripPlanRequest 旅行計画APIのリクエスト
type TripPlanRequest struct {
	Destination          string `json:"destination" validate:"required"`
	StartDate            string `json:"start_date"` // YYYY-MM-DD、空なら天気ベースの日程選択
	Duration             string `json:"duration"`   // 日数またはプリセット名（"weekend"など）、空ならデフォルト
	TripStyle            string `json:"trip_style"`
	Budget               string `json:"budget"`
	IncludeAccommodation bool   `json:"include_accommodation"`
}

// WeatherTripRequest 天気条件ベースの旅行計画APIのリクエスト
type WeatherTripRequest struct {
	Destination      string `json:"destination" validate:"required"`
	WeatherCondition string `json:"weather_condition" validate:"required"`
	Duration         string `json:"duration"`
	TripStyle        string `json:"trip_style"`
}

// TripPlanResponse 旅行計画APIのレスポンス
type TripPlanResponse struct {
	ProposalID string    `json:"proposal_id,omitempty"` // 保存機能が有効な場合のみ
	Report     string    `json:"report"`
	Plan       *TripPlan `json:"plan"`
}

// StoredTripPlan 保存済みの旅行計画提案
type StoredTripPlan struct {
	ProposalID       string    `json:"proposal_id"`
	DestinationLabel string    `json:"destination_label"`
	TripStyle        string    `json:"trip_style"`
	Budget           string    `json:"budget"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	DurationDays     int       `json:"duration_days"`
	Report           string    `json:"report"`
	GeneratedAt      time.Time `json:"generated_at"`
}

// FirestoreTripPlan Firestoreに保存する旅行計画提案のドキュメント
type FirestoreTripPlan struct {
	DestinationLabel string    `firestore:"destination_label"`
	TripStyle        string    `firestore:"trip_style"`
	Budget           string    `firestore:"budget"`
	StartDate        time.Time `firestore:"start_date"`
	EndDate          time.Time `firestore:"end_date"`
	DurationDays     int       `firestore:"duration_days"`
	Report           string    `firestore:"report"`
	GeneratedAt      time.Time `firestore:"generated_at"`
	ExpireAt         time.Time `firestore:"expireAt"`
}

// ToFirestoreTripPlan TripPlanとレポートをFirestore保存用のドキュメントに変換する
func (p *TripPlan) ToFirestoreTripPlan(report string, ttlHours int) *FirestoreTripPlan {
	now := time.Now()
	return &FirestoreTripPlan{
		DestinationLabel: p.DestinationLabel,
		TripStyle:        p.TripStyle,
		Budget:           p.Budget,
		StartDate:        p.StartDate(),
		EndDate:          p.EndDate(),
		DurationDays:     p.DurationDays(),
		Report:           report,
		GeneratedAt:      now,
		ExpireAt:         now.Add(time.Duration(ttlHours) * time.Hour),
	}
}

// ToStoredTripPlan FirestoreドキュメントをStoredTripPlanに変換する
func (f *FirestoreTripPlan) ToStoredTripPlan(proposalID string) *StoredTripPlan {
	return &StoredTripPlan{
		ProposalID:       proposalID,
		DestinationLabel: f.DestinationLabel,
		TripStyle:        f.TripStyle,
		Budget:           f.Budget,
		StartDate:        f.StartDate,
		EndDate:          f.EndDate,
		DurationDays:     f.DurationDays,
		Report:           f.Report,
		GeneratedAt:      f.GeneratedAt,
	}
}

// TripHistoryRecord 生成した旅行計画の履歴レコード（Supabaseに保存）
type TripHistoryRecord struct {
	ID               string    `json:"id"`
	DestinationLabel string    `json:"destination_label"`
	Latitude         float64   `json:"latitude"`
	Longitude        float64   `json:"longitude"`
	TripStyle        string    `json:"trip_style"`
	Budget           string    `json:"budget"`
	DurationDays     int       `json:"duration_days"`
	WeatherOptimized bool      `json:"weather_optimized"`
	TotalActivities  int       `json:"total_activities"`
	CreatedAt        time.Time `json:"created_at"`
}
