package service

import (
	"fmt"
	"strings"

	"Tabinavi-App/internal/domain/model"
)

// TripReportService は旅行計画をテキストレポートにレンダリングするサービス
// 出力は決定的で、同じTripPlanに対して常に同じレポートを返す
type TripReportService struct{}

// NewTripReportService は新しいTripReportServiceインスタンスを作成
func NewTripReportService() *TripReportService {
	return &TripReportService{}
}

// 時間帯ごとの表示用絵文字
var timeSlotEmoji = map[string]string{
	model.TimeSlotMorning:   "🌅",
	model.TimeSlotAfternoon: "☀️",
	model.TimeSlotEvening:   "🌙",
}

// FormatTripPlan は通常の旅行計画をレポートに変換する
func (s *TripReportService) FormatTripPlan(plan *model.TripPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🎯 TRIP PLAN FOR %s\n", strings.ToUpper(plan.DestinationLabel))
	fmt.Fprintf(&b, "📅 Dates: %s - %s (%d days)\n",
		plan.StartDate().Format("January 02, 2006"),
		plan.EndDate().Format("January 02, 2006"),
		plan.DurationDays())
	fmt.Fprintf(&b, "🎨 Style: %s\n", titleCase(plan.TripStyle))
	fmt.Fprintf(&b, "💰 Budget: %s\n", titleCase(plan.Budget))
	if plan.DateSelectionNote != "" {
		fmt.Fprintf(&b, "📝 Note: %s\n", plan.DateSelectionNote)
	}
	b.WriteString("\n")

	s.writeAccommodationSection(&b, plan.Accommodation)

	b.WriteString("📋 DAILY ITINERARY:\n\n")
	s.writeDailyItinerary(&b, plan.DayPlans)

	b.WriteString("💡 TRIP PLANNING NOTES:\n")
	fmt.Fprintf(&b, "• Plan includes %d total activities\n", plan.TotalActivities())
	fmt.Fprintf(&b, "• Activities are optimized for %s travel style\n", plan.TripStyle)
	fmt.Fprintf(&b, "• Budget considerations: %s category\n", plan.Budget)
	b.WriteString("• Check weather conditions before departure\n")
	b.WriteString("• Book accommodations and activities in advance\n")

	return b.String()
}

// FormatWeatherTripPlan は天気条件に最適化された旅行計画をレポートに変換する
func (s *TripReportService) FormatWeatherTripPlan(plan *model.TripPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🌤️ WEATHER-OPTIMIZED TRIP PLAN FOR %s\n", strings.ToUpper(plan.DestinationLabel))
	fmt.Fprintf(&b, "📅 Dates: %s - %s (%d days)\n",
		plan.StartDate().Format("January 02, 2006"),
		plan.EndDate().Format("January 02, 2006"),
		plan.DurationDays())
	fmt.Fprintf(&b, "🌦️ Optimized for: %s weather\n", titleCase(plan.WeatherCondition))
	fmt.Fprintf(&b, "🎨 Style: %s\n", titleCase(plan.TripStyle))
	if plan.DateSelectionNote != "" {
		fmt.Fprintf(&b, "📝 Note: %s\n", plan.DateSelectionNote)
	}
	b.WriteString("\n")

	b.WriteString("📋 WEATHER-SPECIFIC ITINERARY:\n\n")
	for i, day := range plan.DayPlans {
		fmt.Fprintf(&b, "Day %d - %s, %s:\n", i+1, day.DayOfWeek, day.Date.Format("2006-01-02"))
		fmt.Fprintf(&b, "☁️ Expected weather: %s\n\n", plan.WeatherCondition)
		if len(day.Activities) == 0 {
			b.WriteString("  No activities planned for this day\n\n")
			continue
		}
		for _, activity := range day.Activities {
			emoji := timeSlotEmoji[activity.TimeSlot]
			if emoji == "" {
				emoji = "📍"
			}
			fmt.Fprintf(&b, "  %s %s\n", emoji, activity.Name)
			fmt.Fprintf(&b, "     Perfect for %s weather\n", plan.WeatherCondition)
			fmt.Fprintf(&b, "     Type: %s\n", humanizeCategory(activity.Category))
			if activity.Rating > 0 {
				fmt.Fprintf(&b, "     Rating: %.1f/5.0\n", activity.Rating)
			}
			b.WriteString("\n")
		}
	}

	b.WriteString("🌈 WEATHER PLANNING NOTES:\n")
	fmt.Fprintf(&b, "• All activities optimized for %s conditions\n", plan.WeatherCondition)
	b.WriteString("• Indoor alternatives available for weather changes\n")
	b.WriteString("• Check weather forecast 24-48 hours before activities\n")
	fmt.Fprintf(&b, "• Pack appropriate clothing for %s weather\n", plan.WeatherCondition)

	return b.String()
}

// writeAccommodationSection は宿泊プランのセクションを出力する（プランがない場合は何も出力しない）
func (s *TripReportService) writeAccommodationSection(b *strings.Builder, offer *model.AccommodationOffer) {
	if offer == nil {
		return
	}

	b.WriteString("🏨 ACCOMMODATION:\n")
	fmt.Fprintf(b, "   %s (%.1f/5.0)\n", offer.Name, offer.Rating)
	fmt.Fprintf(b, "   Check-in: %s\n", offer.CheckIn.Format("2006-01-02"))
	fmt.Fprintf(b, "   Check-out: %s\n", offer.CheckOut.Format("2006-01-02"))
	fmt.Fprintf(b, "   Duration: %d nights\n", offer.Nights)
	fmt.Fprintf(b, "   Total: %.2f %s (%.2f/night)\n\n", offer.TotalCost, offer.Currency, offer.NightlyPrice)
}

// writeDailyItinerary は日ごとの旅程を出力する
func (s *TripReportService) writeDailyItinerary(b *strings.Builder, dayPlans []*model.DayPlan) {
	for i, day := range dayPlans {
		fmt.Fprintf(b, "Day %d - %s, %s:\n", i+1, day.DayOfWeek, day.Date.Format("2006-01-02"))

		if len(day.Activities) == 0 {
			b.WriteString("  No activities planned for this day\n\n")
			continue
		}

		for _, activity := range day.Activities {
			emoji := timeSlotEmoji[activity.TimeSlot]
			if emoji == "" {
				emoji = "📍"
			}
			fmt.Fprintf(b, "  %s %s\n", emoji, activity.Name)
			fmt.Fprintf(b, "     Type: %s\n", humanizeCategory(activity.Category))
			// OverpassやPostgresカタログ由来のスポットは評価を持たないことがある
			if activity.Rating > 0 {
				fmt.Fprintf(b, "     Rating: %.1f/5.0\n", activity.Rating)
			}
			if activity.Address != "" {
				fmt.Fprintf(b, "     Address: %s\n", activity.Address)
			}
			b.WriteString("\n")
		}
	}
}

// humanizeCategory は"tourist_attraction"のようなカテゴリIDを表示用に変換する
func humanizeCategory(category string) string {
	words := strings.Split(category, "_")
	for i, word := range words {
		words[i] = titleCase(word)
	}
	return strings.Join(words, " ")
}

// titleCase は先頭文字のみを大文字にする
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
