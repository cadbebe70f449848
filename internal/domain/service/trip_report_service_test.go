package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"Tabinavi-App/internal/domain/model"
)

func sampleTripPlan() *model.TripPlan {
	return &model.TripPlan{
		DestinationLabel: "Rome",
		Coordinate:       testCoord,
		TripStyle:        model.TripStyleBalanced,
		Budget:           model.BudgetMidRange,
		DayPlans: []*model.DayPlan{
			{
				Date:      date(10),
				DayOfWeek: date(10).Format("Monday"),
				Activities: []*model.Activity{
					{Name: "Colosseum", Category: "tourist_attraction", TimeSlot: model.TimeSlotMorning, Rating: 4.8, Address: "Piazza del Colosseo"},
					{Name: "Pantheon", Category: "tourist_attraction", TimeSlot: model.TimeSlotAfternoon, Rating: 4.7},
					{Name: "Trattoria da Enzo", Category: "restaurant", TimeSlot: model.TimeSlotEvening, Rating: 4.5},
				},
			},
			{
				Date:      date(11),
				DayOfWeek: date(11).Format("Monday"),
			},
		},
	}
}

func TestTripReportService_FormatTripPlan(t *testing.T) {
	svc := NewTripReportService()

	t.Run("レポートの主要セクションがすべて含まれる", func(t *testing.T) {
		report := svc.FormatTripPlan(sampleTripPlan())

		assert.Contains(t, report, "🎯 TRIP PLAN FOR ROME")
		assert.Contains(t, report, "📅 Dates:")
		assert.Contains(t, report, "(2 days)")
		assert.Contains(t, report, "🎨 Style: Balanced")
		assert.Contains(t, report, "💰 Budget: Mid_range")
		assert.Contains(t, report, "📋 DAILY ITINERARY:")
		assert.Contains(t, report, "💡 TRIP PLANNING NOTES:")
	})

	t.Run("アクティビティは時間帯の絵文字付きで出力される", func(t *testing.T) {
		report := svc.FormatTripPlan(sampleTripPlan())

		assert.Contains(t, report, "🌅 Colosseum")
		assert.Contains(t, report, "☀️ Pantheon")
		assert.Contains(t, report, "🌙 Trattoria da Enzo")
		assert.Contains(t, report, "Type: Tourist Attraction")
		assert.Contains(t, report, "Address: Piazza del Colosseo")
	})

	t.Run("アクティビティのない日はその旨を表示する", func(t *testing.T) {
		report := svc.FormatTripPlan(sampleTripPlan())
		assert.Contains(t, report, "No activities planned for this day")
	})

	t.Run("宿泊プランがある場合はセクションが出力される", func(t *testing.T) {
		plan := sampleTripPlan()
		plan.Accommodation = &model.AccommodationOffer{
			Name:         "Grand Hotel",
			Rating:       4.2,
			NightlyPrice: 120,
			Currency:     "USD",
			Nights:       2,
			TotalCost:    240,
			CheckIn:      date(10),
			CheckOut:     date(12),
		}

		report := svc.FormatTripPlan(plan)

		assert.Contains(t, report, "🏨 ACCOMMODATION:")
		assert.Contains(t, report, "Grand Hotel (4.2/5.0)")
		assert.Contains(t, report, "Total: 240.00 USD (120.00/night)")
	})

	t.Run("宿泊プランがない場合はセクションごと省略される", func(t *testing.T) {
		report := svc.FormatTripPlan(sampleTripPlan())
		assert.NotContains(t, report, "🏨 ACCOMMODATION:")
	})

	t.Run("日程ノートがある場合のみ出力される", func(t *testing.T) {
		plan := sampleTripPlan()
		assert.NotContains(t, svc.FormatTripPlan(plan), "📝 Note:")

		plan.DateSelectionNote = "Dates were chosen for the best weather."
		assert.Contains(t, svc.FormatTripPlan(plan), "📝 Note: Dates were chosen for the best weather.")
	})

	t.Run("評価のないアクティビティはRating行を出さない", func(t *testing.T) {
		plan := sampleTripPlan()
		plan.DayPlans[0].Activities = []*model.Activity{
			{Name: "Local Market", Category: "market", TimeSlot: model.TimeSlotMorning},
		}

		report := svc.FormatTripPlan(plan)

		assert.Contains(t, report, "🌅 Local Market")
		assert.NotContains(t, report, "Rating: 0.0")
	})

	t.Run("同じ計画に対して常に同じレポート", func(t *testing.T) {
		plan := sampleTripPlan()
		first := svc.FormatTripPlan(plan)
		assert.Equal(t, first, svc.FormatTripPlan(plan))
	})
}

func TestTripReportService_FormatWeatherTripPlan(t *testing.T) {
	svc := NewTripReportService()

	t.Run("天気最適化レポートのセクションが含まれる", func(t *testing.T) {
		plan := sampleTripPlan()
		plan.WeatherCondition = "sunny"

		report := svc.FormatWeatherTripPlan(plan)

		assert.Contains(t, report, "🌤️ WEATHER-OPTIMIZED TRIP PLAN FOR ROME")
		assert.Contains(t, report, "🌦️ Optimized for: Sunny weather")
		assert.Contains(t, report, "📋 WEATHER-SPECIFIC ITINERARY:")
		assert.Contains(t, report, "☁️ Expected weather: sunny")
		assert.Contains(t, report, "Perfect for sunny weather")
		assert.Contains(t, report, "🌈 WEATHER PLANNING NOTES:")
	})

	t.Run("評価のないアクティビティはRating行を出さない", func(t *testing.T) {
		plan := sampleTripPlan()
		plan.WeatherCondition = "rainy"
		plan.DayPlans[0].Activities = []*model.Activity{
			{Name: "City Aquarium", Category: "aquarium", TimeSlot: model.TimeSlotAfternoon},
		}

		report := svc.FormatWeatherTripPlan(plan)

		assert.Contains(t, report, "☀️ City Aquarium")
		assert.NotContains(t, report, "Rating: 0.0")
	})

	t.Run("日数分のDayセクションが出力される", func(t *testing.T) {
		plan := sampleTripPlan()
		plan.WeatherCondition = "rainy"

		report := svc.FormatWeatherTripPlan(plan)

		assert.Equal(t, 2, strings.Count(report, "Day "))
	})
}
