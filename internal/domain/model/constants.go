package model

// TripStyleConstants はアプリケーションで使用する旅行スタイルの定数
const (
	TripStyleRelaxed     = "relaxed"
	TripStyleBalanced    = "balanced"
	TripStyleAdventure   = "adventure"
	TripStyleCultural    = "cultural"
	TripStyleFoodFocused = "food_focused"
)

// BudgetConstants は予算カテゴリの定数
const (
	BudgetLow      = "budget"
	BudgetMidRange = "mid_range"
	BudgetLuxury   = "luxury"
)

// TimeSlotConstants は1日の時間帯の定数（アクティビティの時系列順）
const (
	TimeSlotMorning   = "morning"
	TimeSlotAfternoon = "afternoon"
	TimeSlotEvening   = "evening"
)

// 旅行日数の制約とデフォルト値
const (
	MinTripDurationDays     = 1
	MaxTripDurationDays     = 30
	DefaultTripDurationDays = 3

	DefaultTripStyle = TripStyleBalanced
	DefaultBudget    = BudgetMidRange

	// 天気ベースの日程選択で参照する予報日数（上流APIの上限は16日）
	ForecastWindowDays = 14
	MaxForecastDays    = 16
)

// 夜は必ず食事系スポットで締める（ドメインポリシー）
const EveningDiningCategory = "restaurant"

// TripDurationPresets は日数プリセット名から日数へのマッピング
var TripDurationPresets = map[string]int{
	"weekend":  2,
	"short":    3,
	"week":     7,
	"extended": 14,
	"month":    30,
}

// TripStyleProfile は旅行スタイルごとの1日の過ごし方の設定
type TripStyleProfile struct {
	ActivitiesPerDay    int      `json:"activities_per_day"`
	TravelRadiusMeters  int      `json:"travel_radius_meters"`
	Pace                string   `json:"pace"`
	PreferredCategories []string `json:"preferred_categories"`
}

// TripStyleProfiles は旅行スタイルIDから設定へのマッピング
var TripStyleProfiles = map[string]TripStyleProfile{
	TripStyleRelaxed: {
		ActivitiesPerDay:    2,
		TravelRadiusMeters:  10000,
		Pace:                "slow",
		PreferredCategories: []string{"restaurant", "cafe", "park", "museum", "spa"},
	},
	TripStyleBalanced: {
		ActivitiesPerDay:    3,
		TravelRadiusMeters:  15000,
		Pace:                "moderate",
		PreferredCategories: []string{"tourist_attraction", "restaurant", "museum", "park", "shopping_mall"},
	},
	TripStyleAdventure: {
		ActivitiesPerDay:    4,
		TravelRadiusMeters:  25000,
		Pace:                "fast",
		PreferredCategories: []string{"tourist_attraction", "amusement_park", "zoo", "park", "sport_center"},
	},
	TripStyleCultural: {
		ActivitiesPerDay:    3,
		TravelRadiusMeters:  20000,
		Pace:                "moderate",
		PreferredCategories: []string{"museum", "art_gallery", "church", "tourist_attraction", "restaurant"},
	},
	TripStyleFoodFocused: {
		ActivitiesPerDay:    4,
		TravelRadiusMeters:  15000,
		Pace:                "moderate",
		PreferredCategories: []string{"restaurant", "cafe", "bakery", "bar", "market"},
	},
}

// BudgetProfile は予算カテゴリごとの目安設定
type BudgetProfile struct {
	AccommodationPrice string   `json:"accommodation_price"`
	DiningPrice        string   `json:"dining_price"`
	ActivityFocus      []string `json:"activity_focus"`
	DailyBudgetUSD     int      `json:"daily_budget_usd"`
}

// BudgetProfiles は予算カテゴリIDから設定へのマッピング
var BudgetProfiles = map[string]BudgetProfile{
	BudgetLow: {
		AccommodationPrice: "inexpensive",
		DiningPrice:        "inexpensive",
		ActivityFocus:      []string{"park", "free_attraction", "walking_tour"},
		DailyBudgetUSD:     50,
	},
	BudgetMidRange: {
		AccommodationPrice: "moderate",
		DiningPrice:        "moderate",
		ActivityFocus:      []string{"tourist_attraction", "museum", "restaurant"},
		DailyBudgetUSD:     150,
	},
	BudgetLuxury: {
		AccommodationPrice: "expensive",
		DiningPrice:        "expensive",
		ActivityFocus:      []string{"fine_dining", "premium_attraction", "spa"},
		DailyBudgetUSD:     500,
	},
}

// WeatherActivityMapping は天気条件ごとの時間帯別おすすめカテゴリのマッピング
var WeatherActivityMapping = map[string]map[string][]string{
	"clear": {
		TimeSlotMorning:   {"park", "tourist_attraction", "zoo"},
		TimeSlotAfternoon: {"amusement_park", "tourist_attraction", "park"},
		TimeSlotEvening:   {"restaurant", "bar", "night_market"},
	},
	"sunny": {
		TimeSlotMorning:   {"park", "tourist_attraction", "beach"},
		TimeSlotAfternoon: {"zoo", "amusement_park", "outdoor_activity"},
		TimeSlotEvening:   {"restaurant", "rooftop_bar", "outdoor_dining"},
	},
	"partly_cloudy": {
		TimeSlotMorning:   {"museum", "tourist_attraction", "park"},
		TimeSlotAfternoon: {"shopping_mall", "tourist_attraction", "cafe"},
		TimeSlotEvening:   {"restaurant", "movie_theater", "bar"},
	},
	"cloudy": {
		TimeSlotMorning:   {"museum", "art_gallery", "shopping_mall"},
		TimeSlotAfternoon: {"tourist_attraction", "cafe", "indoor_activity"},
		TimeSlotEvening:   {"restaurant", "bar", "entertainment"},
	},
	"overcast": {
		TimeSlotMorning:   {"museum", "shopping_mall", "art_gallery"},
		TimeSlotAfternoon: {"cafe", "indoor_attraction", "shopping"},
		TimeSlotEvening:   {"restaurant", "movie_theater", "indoor_entertainment"},
	},
	"rainy": {
		TimeSlotMorning:   {"museum", "shopping_mall", "art_gallery"},
		TimeSlotAfternoon: {"movie_theater", "aquarium", "indoor_activity"},
		TimeSlotEvening:   {"restaurant", "bar", "spa"},
	},
	"snowy": {
		TimeSlotMorning:   {"museum", "shopping_mall", "indoor_attraction"},
		TimeSlotAfternoon: {"cafe", "art_gallery", "indoor_activity"},
		TimeSlotEvening:   {"restaurant", "bar", "indoor_entertainment"},
	},
}

// 朝の時間帯に向いているカテゴリ
var morningSuitableCategories = map[string]bool{
	"cafe":               true,
	"museum":             true,
	"park":               true,
	"tourist_attraction": true,
}

// IsMorningSuitableCategory はカテゴリが朝の活動に向いているかを判定する
func IsMorningSuitableCategory(category string) bool {
	return morningSuitableCategories[category]
}

// GetAllTripStyles は全旅行スタイルの一覧を取得する（表示順固定）
func GetAllTripStyles() []string {
	return []string{
		TripStyleRelaxed,
		TripStyleBalanced,
		TripStyleAdventure,
		TripStyleCultural,
		TripStyleFoodFocused,
	}
}

// GetAllBudgets は全予算カテゴリの一覧を取得する（表示順固定）
func GetAllBudgets() []string {
	return []string{
		BudgetLow,
		BudgetMidRange,
		BudgetLuxury,
	}
}

// GetAllDurationPresets は全日数プリセットの一覧を取得する（表示順固定）
func GetAllDurationPresets() []string {
	return []string{"weekend", "short", "week", "extended", "month"}
}

// GetAllWeatherConditions は天気ベース計画で指定できる天気条件の一覧を取得する
func GetAllWeatherConditions() []string {
	return []string{"clear", "sunny", "partly_cloudy", "cloudy", "overcast", "rainy", "snowy"}
}
