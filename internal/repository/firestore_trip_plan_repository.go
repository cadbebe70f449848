package repository

import (
	"context"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"Tabinavi-App/internal/domain/model"
)

// FirestoreTripPlanRepository Firestoreを使用した旅行計画提案のキャッシュリポジトリ
type FirestoreTripPlanRepository struct {
	client *firestore.Client
}

// NewFirestoreTripPlanRepository 新しいFirestoreTripPlanRepositoryインスタンスを作成
func NewFirestoreTripPlanRepository(client *firestore.Client) *FirestoreTripPlanRepository {
	return &FirestoreTripPlanRepository{
		client: client,
	}
}

const tripPlansCollection = "tripPlans"

// SaveTripPlan は旅行計画をTTL付きでFirestoreに保存し、proposal_idを生成して返す
func (r *FirestoreTripPlanRepository) SaveTripPlan(ctx context.Context, plan *model.TripPlan, report string, ttlHours int) (*model.StoredTripPlan, error) {
	proposalID := fmt.Sprintf("temp_trip_%s", uuid.New().String())

	firestoreData := plan.ToFirestoreTripPlan(report, ttlHours)

	_, err := r.client.Collection(tripPlansCollection).Doc(proposalID).Set(ctx, firestoreData)
	if err != nil {
		log.Printf("❌ Failed to save trip plan %s: %v", proposalID, err)
		return nil, fmt.Errorf("旅行計画の保存に失敗しました: %w", err)
	}

	log.Printf("✅ Trip plan saved: %s (expires in %d hours)", proposalID, ttlHours)
	return firestoreData.ToStoredTripPlan(proposalID), nil
}

// GetTripPlan は指定されたproposal_idの旅行計画をFirestoreから取得する
func (r *FirestoreTripPlanRepository) GetTripPlan(ctx context.Context, proposalID string) (*model.StoredTripPlan, error) {
	doc, err := r.client.Collection(tripPlansCollection).Doc(proposalID).Get(ctx)
	if err != nil {
		if status := err.Error(); strings.Contains(status, "NotFound") || strings.Contains(status, "not found") {
			return nil, fmt.Errorf("旅行計画が見つかりません（有効期限切れまたは無効なID）: %s", proposalID)
		}
		return nil, fmt.Errorf("旅行計画の取得に失敗しました: %w", err)
	}

	var firestoreData model.FirestoreTripPlan
	if err := doc.DataTo(&firestoreData); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	log.Printf("✅ Trip plan retrieved: %s", proposalID)
	return firestoreData.ToStoredTripPlan(proposalID), nil
}
