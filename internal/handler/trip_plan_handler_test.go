package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"Tabinavi-App/internal/domain/model"
)

// stubTripPlanUseCase はハンドラーテスト用のTripPlanUseCase実装
type stubTripPlanUseCase struct {
	planResponse *model.TripPlanResponse
	planErr      error
	stored       *model.StoredTripPlan
	getErr       error
	histories    []model.TripHistoryRecord
	historyErr   error
}

func (s *stubTripPlanUseCase) PlanTrip(ctx context.Context, req *model.TripPlanRequest) (*model.TripPlanResponse, error) {
	return s.planResponse, s.planErr
}

func (s *stubTripPlanUseCase) PlanWeatherBasedTrip(ctx context.Context, req *model.WeatherTripRequest) (*model.TripPlanResponse, error) {
	return s.planResponse, s.planErr
}

func (s *stubTripPlanUseCase) GetTripPlan(ctx context.Context, proposalID string) (*model.StoredTripPlan, error) {
	return s.stored, s.getErr
}

func (s *stubTripPlanUseCase) GetTripHistory(ctx context.Context, destination string) ([]model.TripHistoryRecord, error) {
	return s.histories, s.historyErr
}

func setupRouter(uc *stubTripPlanUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTripPlanHandler(uc)

	r := gin.New()
	r.POST("/trips/plan", h.PostTripPlan)
	r.POST("/trips/weather-plan", h.PostWeatherTripPlan)
	r.GET("/trips/plans/:id", h.GetTripPlan)
	r.GET("/trips/history", h.GetTripHistory)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestTripPlanHandler_PostTripPlan(t *testing.T) {
	t.Run("成功時は200でレポートと計画を返す", func(t *testing.T) {
		uc := &stubTripPlanUseCase{
			planResponse: &model.TripPlanResponse{
				Report: "🎯 TRIP PLAN FOR ROME",
				Plan:   &model.TripPlan{DestinationLabel: "Rome"},
			},
		}
		router := setupRouter(uc)

		w := postJSON(t, router, "/trips/plan", model.TripPlanRequest{Destination: "Rome"})

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.TripPlanResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Report, "ROME")
	})

	t.Run("バリデーションエラーは400でメッセージをそのまま返す", func(t *testing.T) {
		uc := &stubTripPlanUseCase{
			planErr: model.NewValidationError("Invalid trip style 'extreme'. Valid styles: relaxed, balanced"),
		}
		router := setupRouter(uc)

		w := postJSON(t, router, "/trips/plan", model.TripPlanRequest{Destination: "Rome"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid trip style")
	})

	t.Run("目的地が見つからない場合は404", func(t *testing.T) {
		uc := &stubTripPlanUseCase{planErr: model.ErrPlaceNotFound}
		router := setupRouter(uc)

		w := postJSON(t, router, "/trips/plan", model.TripPlanRequest{Destination: "Atlantis"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("内部エラーは500で詳細を漏らさない", func(t *testing.T) {
		uc := &stubTripPlanUseCase{planErr: assert.AnError}
		router := setupRouter(uc)

		w := postJSON(t, router, "/trips/plan", model.TripPlanRequest{Destination: "Rome"})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), genericErrorMessage)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})

	t.Run("不正なJSONボディは400", func(t *testing.T) {
		router := setupRouter(&stubTripPlanUseCase{})

		req := httptest.NewRequest(http.MethodPost, "/trips/plan", bytes.NewReader([]byte("{not-json")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTripPlanHandler_PostWeatherTripPlan(t *testing.T) {
	t.Run("条件に合う天気がない場合は404", func(t *testing.T) {
		uc := &stubTripPlanUseCase{planErr: model.ErrNoMatchingWeather}
		router := setupRouter(uc)

		w := postJSON(t, router, "/trips/weather-plan", model.WeatherTripRequest{
			Destination:      "Rome",
			WeatherCondition: "snowy",
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "No matching weather window")
	})

	t.Run("成功時は200", func(t *testing.T) {
		uc := &stubTripPlanUseCase{
			planResponse: &model.TripPlanResponse{
				Report: "🌤️ WEATHER-OPTIMIZED TRIP PLAN FOR ROME",
				Plan:   &model.TripPlan{DestinationLabel: "Rome", WeatherCondition: "sunny"},
			},
		}
		router := setupRouter(uc)

		w := postJSON(t, router, "/trips/weather-plan", model.WeatherTripRequest{
			Destination:      "Rome",
			WeatherCondition: "sunny",
		})

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestTripPlanHandler_GetTripPlan(t *testing.T) {
	t.Run("保存済みの計画を返す", func(t *testing.T) {
		uc := &stubTripPlanUseCase{
			stored: &model.StoredTripPlan{ProposalID: "temp_trip_abc", DestinationLabel: "Rome"},
		}
		router := setupRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/trips/plans/temp_trip_abc", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "temp_trip_abc")
	})

	t.Run("見つからない場合は404", func(t *testing.T) {
		uc := &stubTripPlanUseCase{getErr: assert.AnError}
		router := setupRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/trips/plans/unknown", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTripPlanHandler_GetTripHistory(t *testing.T) {
	t.Run("目的地の履歴一覧を返す", func(t *testing.T) {
		uc := &stubTripPlanUseCase{
			histories: []model.TripHistoryRecord{
				{ID: "h1", DestinationLabel: "Rome", TripStyle: "balanced", DurationDays: 3},
			},
		}
		router := setupRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/trips/history?destination=Rome", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"destination":"Rome"`)
		assert.Contains(t, w.Body.String(), `"h1"`)
	})

	t.Run("目的地が空の場合は400", func(t *testing.T) {
		uc := &stubTripPlanUseCase{
			historyErr: model.NewValidationError("Destination is required"),
		}
		router := setupRouter(uc)

		req := httptest.NewRequest(http.MethodGet, "/trips/history", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Destination is required")
	})
}
