package handlers

import (
	"errors"
	"net/http"

	"maidly/config"
	"maidly/models"
	"maidly/services/discovery"
	"maidly/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DiscoveryHandler exposes the maid search endpoint.
type DiscoveryHandler struct {
	Service discovery.Service
	Logger  *zap.Logger
}

// NewDiscoveryHandler creates a DiscoveryHandler.
func NewDiscoveryHandler(svc discovery.Service, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{Service: svc, Logger: logger}
}

// SearchMaids handles POST /api/maids/search.
func (h *DiscoveryHandler) SearchMaids(c *gin.Context) {
	var query models.DiscoveryQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if query.RadiusKm <= 0 && config.AppConfig.DefaultRadiusKm > 0 {
		query.RadiusKm = config.AppConfig.DefaultRadiusKm
	}

	requestID := uuid.New().String()
	results, err := h.Service.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, discovery.ErrInvalidQuery) {
			utils.JSONError(c, http.StatusBadRequest, "latitude and longitude are required", err.Error())
			return
		}
		h.Logger.Error("maid search failed", zap.String("requestId", requestID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to search maids", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"maids":          results,
		"total":          len(results),
		"searchLocation": query.Location,
		"radius":         query.EffectiveRadius(),
	})
}
