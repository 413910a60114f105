package handlers

import (
	"errors"
	"net/http"

	"maidly/models"
	"maidly/services/discovery"
	"maidly/services/recommendation"
	"maidly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendationHandler exposes the personalized recommendation endpoint.
type RecommendationHandler struct {
	Service recommendation.Service
	Logger  *zap.Logger
}

// NewRecommendationHandler creates a RecommendationHandler.
func NewRecommendationHandler(svc recommendation.Service, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{Service: svc, Logger: logger}
}

// Recommend handles POST /api/recommendations.
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if !models.ValidUrgency(req.Urgency) {
		utils.JSONError(c, http.StatusBadRequest, "invalid urgency", "urgency must be one of low, medium, high")
		return
	}

	results, err := h.Service.Recommend(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, discovery.ErrInvalidQuery) {
			utils.JSONError(c, http.StatusBadRequest, "latitude and longitude are required", err.Error())
			return
		}
		h.Logger.Error("recommendation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate recommendations", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": results,
		"total":           len(results),
	})
}
