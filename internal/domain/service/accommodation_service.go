package service

import (
	"context"
	"log"
	"time"

	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/domain/repository"
)

// AccommodationService は宿泊プランの選定を行うサービス
type AccommodationService interface {
	// PickAccommodation は日程に合う宿泊プランを1件選定する
	// クレデンシャル未設定・検索失敗・該当なしはすべてnil（計画全体は継続する）
	PickAccommodation(ctx context.Context, coord model.Coordinate, checkIn time.Time, nights int) *model.AccommodationOffer
}

type accommodationServiceImpl struct {
	provider repository.AccommodationProvider
}

// NewAccommodationService は新しいAccommodationServiceインスタンスを作成
func NewAccommodationService(provider repository.AccommodationProvider) AccommodationService {
	return &accommodationServiceImpl{
		provider: provider,
	}
}

// 宿泊検索のデフォルトパラメータ
const (
	defaultAdults           = 2
	defaultRooms            = 1
	accommodationCandidates = 5
)

// PickAccommodation は検索結果の先頭をそのまま採用し、滞在費の合計を計算する
func (s *accommodationServiceImpl) PickAccommodation(ctx context.Context, coord model.Coordinate, checkIn time.Time, nights int) *model.AccommodationOffer {
	if s.provider == nil || !s.provider.Enabled() {
		// 宿泊検索はオプション機能。クレデンシャルがなければ静かにスキップする
		return nil
	}

	checkOut := checkIn.AddDate(0, 0, nights)

	results, err := s.provider.Search(ctx, coord, checkIn, checkOut, defaultAdults, defaultRooms, accommodationCandidates)
	if err != nil {
		log.Printf("⚠️ 宿泊検索に失敗: %v", err)
		return nil
	}
	if len(results) == 0 {
		return nil
	}

	first := results[0]
	return &model.AccommodationOffer{
		Name:         first.Name,
		Rating:       first.Rating,
		NightlyPrice: first.NightlyPrice,
		Currency:     first.Currency,
		Nights:       nights,
		TotalCost:    first.NightlyPrice * float64(nights),
		CheckIn:      checkIn,
		CheckOut:     checkOut,
	}
}
