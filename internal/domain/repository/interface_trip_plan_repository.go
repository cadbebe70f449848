package repository

import (
	"context"

	"Tabinavi-App/internal/domain/model"
)

// TripPlanRepository は生成した旅行計画提案の保存・取得のインターフェース
type TripPlanRepository interface {
	// SaveTripPlan は旅行計画をTTL付きで保存し、proposal_idを生成して返す
	SaveTripPlan(ctx context.Context, plan *model.TripPlan, report string, ttlHours int) (*model.StoredTripPlan, error)

	// GetTripPlan は指定されたproposal_idの旅行計画を取得する
	GetTripPlan(ctx context.Context, proposalID string) (*model.StoredTripPlan, error)
}
