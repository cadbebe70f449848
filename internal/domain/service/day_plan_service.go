package service

import (
	"context"
	"log"
	"time"

	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/domain/repository"
)

// DayPlanService は1日分のアクティビティ計画を組み立てるサービス
type DayPlanService interface {
	// PlanDay は旅行スタイルに基づいて1日分の旅程を組み立てる
	PlanDay(ctx context.Context, coord model.Coordinate, date time.Time, style model.TripStyleProfile) *model.DayPlan

	// PlanWeatherDay は天気条件ごとの時間帯別カテゴリに基づいて1日分の旅程を組み立てる
	PlanWeatherDay(ctx context.Context, coord model.Coordinate, date time.Time, slotCategories map[string][]string, style model.TripStyleProfile) *model.DayPlan
}

type dayPlanServiceImpl struct {
	placesProvider repository.PlacesProvider
}

// NewDayPlanService は新しいDayPlanServiceインスタンスを作成
func NewDayPlanService(placesProvider repository.PlacesProvider) DayPlanService {
	return &dayPlanServiceImpl{
		placesProvider: placesProvider,
	}
}

// 1回の周辺検索で取得する候補数（先頭を採用するため少数でよい）
const activityCandidateLimit = 5

// PlanDay は朝・昼・夜の時間帯ごとにスポットを1件ずつ選んで1日分の旅程を作る
// スポットが見つからない時間帯は単に欠けるだけで、エラーにはしない
func (s *dayPlanServiceImpl) PlanDay(ctx context.Context, coord model.Coordinate, date time.Time, style model.TripStyleProfile) *model.DayPlan {
	dayPlan := &model.DayPlan{
		Date:      date,
		DayOfWeek: date.Format("Monday"),
	}

	// 朝: 朝向きのカテゴリを優先リストから選ぶ
	morningCategory := style.PreferredCategories[0]
	for _, category := range style.PreferredCategories {
		if model.IsMorningSuitableCategory(category) {
			morningCategory = category
			break
		}
	}
	if activity := s.pickActivity(ctx, coord, morningCategory, style.TravelRadiusMeters, model.TimeSlotMorning); activity != nil {
		dayPlan.Activities = append(dayPlan.Activities, activity)
	}

	// 昼: 残り枠のうち最大2件を優先カテゴリから順に埋める
	afternoonCount := style.ActivitiesPerDay - 2
	if afternoonCount > 2 {
		afternoonCount = 2
	}
	for i := 0; i < afternoonCount; i++ {
		category := style.PreferredCategories[i%len(style.PreferredCategories)]
		if activity := s.pickActivity(ctx, coord, category, style.TravelRadiusMeters, model.TimeSlotAfternoon); activity != nil {
			dayPlan.Activities = append(dayPlan.Activities, activity)
		}
	}

	// 夜: スタイルに関係なく食事系スポットで締める
	if activity := s.pickActivity(ctx, coord, model.EveningDiningCategory, style.TravelRadiusMeters, model.TimeSlotEvening); activity != nil {
		dayPlan.Activities = append(dayPlan.Activities, activity)
	}

	return dayPlan
}

// PlanWeatherDay は天気条件に合わせた時間帯別カテゴリで1日分の旅程を作る
func (s *dayPlanServiceImpl) PlanWeatherDay(ctx context.Context, coord model.Coordinate, date time.Time, slotCategories map[string][]string, style model.TripStyleProfile) *model.DayPlan {
	dayPlan := &model.DayPlan{
		Date:      date,
		DayOfWeek: date.Format("Monday"),
	}

	// 時間帯の時系列順に、各時間帯の先頭候補カテゴリで検索する
	for _, slot := range []string{model.TimeSlotMorning, model.TimeSlotAfternoon, model.TimeSlotEvening} {
		categories := slotCategories[slot]
		if len(categories) == 0 {
			continue
		}
		if activity := s.pickActivity(ctx, coord, categories[0], style.TravelRadiusMeters, slot); activity != nil {
			dayPlan.Activities = append(dayPlan.Activities, activity)
		}
	}

	return dayPlan
}

// pickActivity は周辺検索の先頭候補をその時間帯のアクティビティとして採用する
// 候補ゼロや検索失敗はnilを返すだけで、計画全体は継続する
func (s *dayPlanServiceImpl) pickActivity(ctx context.Context, coord model.Coordinate, category string, radiusMeters int, timeSlot string) *model.Activity {
	places, err := s.placesProvider.SearchNearby(ctx, coord, category, radiusMeters, activityCandidateLimit)
	if err != nil {
		log.Printf("⚠️ スポット検索に失敗 (カテゴリ: %s, 時間帯: %s): %v", category, timeSlot, err)
		return nil
	}
	if len(places) == 0 {
		return nil
	}

	// 上流の並び順をそのまま信頼して先頭を採用する
	return places[0].ToActivity(timeSlot)
}
