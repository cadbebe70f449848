package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"Tabinavi-App/internal/domain/model"
	"Tabinavi-App/internal/usecase"
)

// ユーザー向けの汎用エラーメッセージ（内部の失敗詳細は漏らさない）
const genericErrorMessage = "I encountered an error while processing your request. Please try again."

// TripPlanHandler は旅行計画APIのハンドラー
type TripPlanHandler struct {
	tripPlanUseCase usecase.TripPlanUseCase
}

// NewTripPlanHandler は新しいTripPlanHandlerインスタンスを作成
func NewTripPlanHandler(tripPlanUseCase usecase.TripPlanUseCase) *TripPlanHandler {
	return &TripPlanHandler{
		tripPlanUseCase: tripPlanUseCase,
	}
}

// PostTripPlan は旅行計画を生成するエンドポイント
// POST /trips/plan
func (h *TripPlanHandler) PostTripPlan(c *gin.Context) {
	var req model.TripPlanRequest

	// リクエストボディのバインド
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	response, err := h.tripPlanUseCase.PlanTrip(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// PostWeatherTripPlan は天気条件ベースの旅行計画を生成するエンドポイント
// POST /trips/weather-plan
func (h *TripPlanHandler) PostWeatherTripPlan(c *gin.Context) {
	var req model.WeatherTripRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "リクエストの形式が正しくありません",
			"details": err.Error(),
		})
		return
	}

	response, err := h.tripPlanUseCase.PlanWeatherBasedTrip(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetTripPlan は保存済みの旅行計画提案を取得するエンドポイント
// GET /trips/plans/:id
func (h *TripPlanHandler) GetTripPlan(c *gin.Context) {
	proposalID := c.Param("id")
	if proposalID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "proposal_idは必須です",
		})
		return
	}

	stored, err := h.tripPlanUseCase.GetTripPlan(c.Request.Context(), proposalID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "旅行計画が見つかりません",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, stored)
}

// GetTripHistory は目的地ごとの生成済み計画の履歴を取得するエンドポイント
// GET /trips/history?destination=
func (h *TripPlanHandler) GetTripHistory(c *gin.Context) {
	destination := c.Query("destination")

	records, err := h.tripPlanUseCase.GetTripHistory(c.Request.Context(), destination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"destination": destination,
		"histories":   records,
	})
}

// respondError はエラーの種類に応じたHTTPステータスとレスポンスを返す
func (h *TripPlanHandler) respondError(c *gin.Context, err error) {
	if model.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	if errors.Is(err, model.ErrPlaceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Could not find the requested destination. Please check the spelling and try again.",
		})
		return
	}

	if errors.Is(err, model.ErrNoMatchingWeather) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No matching weather window was found in the forecast. Try a shorter trip or a different condition.",
		})
		return
	}

	// 内部エラーの詳細はログに残っているので、レスポンスには出さない
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": genericErrorMessage,
	})
}
