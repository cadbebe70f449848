package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"Tabinavi-App/internal/domain/model"
)

// stubAccommodationProvider は固定の検索結果を返すテスト用実装
type stubAccommodationProvider struct {
	enabled bool
	results []model.AccommodationResult
	err     error

	lastCheckIn  time.Time
	lastCheckOut time.Time
}

func (s *stubAccommodationProvider) Enabled() bool {
	return s.enabled
}

func (s *stubAccommodationProvider) Search(ctx context.Context, coord model.Coordinate, checkIn, checkOut time.Time, adults, rooms, limit int) ([]model.AccommodationResult, error) {
	s.lastCheckIn = checkIn
	s.lastCheckOut = checkOut
	return s.results, s.err
}

func TestAccommodationService_PickAccommodation(t *testing.T) {
	checkIn := date(10)

	t.Run("プロバイダー無効なら静かにnil", func(t *testing.T) {
		svc := NewAccommodationService(&stubAccommodationProvider{enabled: false})
		assert.Nil(t, svc.PickAccommodation(context.Background(), testCoord, checkIn, 3))
	})

	t.Run("プロバイダー未設定でもnil", func(t *testing.T) {
		svc := NewAccommodationService(nil)
		assert.Nil(t, svc.PickAccommodation(context.Background(), testCoord, checkIn, 3))
	})

	t.Run("検索失敗はnilで計画全体は継続する", func(t *testing.T) {
		provider := &stubAccommodationProvider{enabled: true, err: errors.New("upstream error")}
		svc := NewAccommodationService(provider)
		assert.Nil(t, svc.PickAccommodation(context.Background(), testCoord, checkIn, 3))
	})

	t.Run("先頭の検索結果を採用して滞在費を計算する", func(t *testing.T) {
		provider := &stubAccommodationProvider{
			enabled: true,
			results: []model.AccommodationResult{
				{ID: "h1", Name: "Grand Hotel", Rating: 4.2, NightlyPrice: 120, Currency: "USD"},
				{ID: "h2", Name: "Backup Inn", Rating: 3.0, NightlyPrice: 60, Currency: "USD"},
			},
		}
		svc := NewAccommodationService(provider)

		offer := svc.PickAccommodation(context.Background(), testCoord, checkIn, 3)

		assert.NotNil(t, offer)
		assert.Equal(t, "Grand Hotel", offer.Name)
		assert.Equal(t, 3, offer.Nights)
		assert.Equal(t, 360.0, offer.TotalCost)
		assert.Equal(t, checkIn, offer.CheckIn)
		assert.Equal(t, checkIn.AddDate(0, 0, 3), offer.CheckOut)
	})

	t.Run("チェックアウトは泊数分後の日付で検索される", func(t *testing.T) {
		provider := &stubAccommodationProvider{enabled: true}
		svc := NewAccommodationService(provider)

		svc.PickAccommodation(context.Background(), testCoord, checkIn, 2)

		assert.Equal(t, checkIn, provider.lastCheckIn)
		assert.Equal(t, checkIn.AddDate(0, 0, 2), provider.lastCheckOut)
	})
}
