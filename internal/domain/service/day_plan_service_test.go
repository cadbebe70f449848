package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"Tabinavi-App/internal/domain/model"
)

// stubPlacesProvider はカテゴリごとに決まったスポットを返すテスト用実装
type stubPlacesProvider struct {
	searchedCategories []string
	failCategories     map[string]bool
	emptyCategories    map[string]bool
}

func (s *stubPlacesProvider) SearchNearby(ctx context.Context, coord model.Coordinate, category string, radiusMeters, limit int) ([]model.Place, error) {
	s.searchedCategories = append(s.searchedCategories, category)
	if s.failCategories[category] {
		return nil, errors.New("upstream error")
	}
	if s.emptyCategories[category] {
		return []model.Place{}, nil
	}
	return []model.Place{
		{
			Name:       fmt.Sprintf("Best %s", category),
			Category:   category,
			Rating:     4.5,
			Address:    "1 Test Street",
			Coordinate: coord,
		},
		{
			Name:     fmt.Sprintf("Second %s", category),
			Category: category,
		},
	}, nil
}

var testCoord = model.Coordinate{Latitude: 41.8933, Longitude: 12.4829}

func TestDayPlanService_PlanDay(t *testing.T) {
	t.Run("balancedスタイルは朝昼夜の3件を時系列順に選ぶ", func(t *testing.T) {
		provider := &stubPlacesProvider{}
		svc := NewDayPlanService(provider)

		style := model.TripStyleProfiles[model.TripStyleBalanced]
		dayPlan := svc.PlanDay(context.Background(), testCoord, date(10), style)

		assert.Equal(t, style.ActivitiesPerDay, dayPlan.TotalActivities())
		assert.Equal(t, model.TimeSlotMorning, dayPlan.Activities[0].TimeSlot)
		assert.Equal(t, model.TimeSlotAfternoon, dayPlan.Activities[1].TimeSlot)
		assert.Equal(t, model.TimeSlotEvening, dayPlan.Activities[2].TimeSlot)
	})

	t.Run("夜は必ず食事系スポット", func(t *testing.T) {
		provider := &stubPlacesProvider{}
		svc := NewDayPlanService(provider)

		style := model.TripStyleProfiles[model.TripStyleAdventure]
		dayPlan := svc.PlanDay(context.Background(), testCoord, date(10), style)

		last := dayPlan.Activities[len(dayPlan.Activities)-1]
		assert.Equal(t, model.TimeSlotEvening, last.TimeSlot)
		assert.Equal(t, model.EveningDiningCategory, last.Category)
	})

	t.Run("朝は朝向きカテゴリを優先する", func(t *testing.T) {
		provider := &stubPlacesProvider{}
		svc := NewDayPlanService(provider)

		// relaxedの優先リスト先頭はrestaurantだが、朝向きのcafeが選ばれる
		style := model.TripStyleProfiles[model.TripStyleRelaxed]
		dayPlan := svc.PlanDay(context.Background(), testCoord, date(10), style)

		assert.Equal(t, "cafe", dayPlan.Activities[0].Category)
	})

	t.Run("検索失敗した時間帯は欠けるだけで計画は継続する", func(t *testing.T) {
		style := model.TripStyleProfiles[model.TripStyleBalanced]
		provider := &stubPlacesProvider{
			failCategories: map[string]bool{style.PreferredCategories[0]: true},
		}
		svc := NewDayPlanService(provider)

		dayPlan := svc.PlanDay(context.Background(), testCoord, date(10), style)

		// balancedは朝も昼も先頭カテゴリを使うため、夜だけが残る
		assert.Equal(t, 1, dayPlan.TotalActivities())
		assert.Equal(t, model.TimeSlotEvening, dayPlan.Activities[0].TimeSlot)
	})

	t.Run("候補ゼロの時間帯も欠けるだけ", func(t *testing.T) {
		provider := &stubPlacesProvider{
			emptyCategories: map[string]bool{model.EveningDiningCategory: true},
		}
		svc := NewDayPlanService(provider)

		style := model.TripStyleProfiles[model.TripStyleBalanced]
		dayPlan := svc.PlanDay(context.Background(), testCoord, date(10), style)

		assert.Equal(t, 2, dayPlan.TotalActivities())
		for _, activity := range dayPlan.Activities {
			assert.NotEqual(t, model.TimeSlotEvening, activity.TimeSlot)
		}
	})

	t.Run("先頭候補が採用される", func(t *testing.T) {
		provider := &stubPlacesProvider{}
		svc := NewDayPlanService(provider)

		style := model.TripStyleProfiles[model.TripStyleBalanced]
		dayPlan := svc.PlanDay(context.Background(), testCoord, date(10), style)

		assert.Contains(t, dayPlan.Activities[0].Name, "Best ")
	})
}

func TestDayPlanService_PlanWeatherDay(t *testing.T) {
	t.Run("天気条件の時間帯別カテゴリで検索する", func(t *testing.T) {
		provider := &stubPlacesProvider{}
		svc := NewDayPlanService(provider)

		slotCategories := model.WeatherActivityMapping["rainy"]
		style := model.TripStyleProfiles[model.TripStyleBalanced]
		dayPlan := svc.PlanWeatherDay(context.Background(), testCoord, date(10), slotCategories, style)

		assert.Equal(t, 3, dayPlan.TotalActivities())
		// 各時間帯の先頭候補カテゴリが使われる
		assert.Equal(t, slotCategories[model.TimeSlotMorning][0], provider.searchedCategories[0])
		assert.Equal(t, slotCategories[model.TimeSlotAfternoon][0], provider.searchedCategories[1])
		assert.Equal(t, slotCategories[model.TimeSlotEvening][0], provider.searchedCategories[2])
	})

	t.Run("時間帯の順序は朝昼夜で固定", func(t *testing.T) {
		provider := &stubPlacesProvider{}
		svc := NewDayPlanService(provider)

		slotCategories := model.WeatherActivityMapping["sunny"]
		style := model.TripStyleProfiles[model.TripStyleRelaxed]
		dayPlan := svc.PlanWeatherDay(context.Background(), testCoord, date(10), slotCategories, style)

		slots := make([]string, 0, len(dayPlan.Activities))
		for _, activity := range dayPlan.Activities {
			slots = append(slots, activity.TimeSlot)
		}
		assert.Equal(t, []string{model.TimeSlotMorning, model.TimeSlotAfternoon, model.TimeSlotEvening}, slots)
	})
}
