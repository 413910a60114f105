package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"maidly/config"
	"maidly/database/repository"
	"maidly/services/scheduling"
	"maidly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SchedulingHandler exposes the next-available-slots endpoint.
type SchedulingHandler struct {
	Service scheduling.Service
	Logger  *zap.Logger
}

// NewSchedulingHandler creates a SchedulingHandler.
func NewSchedulingHandler(svc scheduling.Service, logger *zap.Logger) *SchedulingHandler {
	return &SchedulingHandler{Service: svc, Logger: logger}
}

// SuggestSlots handles GET /api/maids/:id/slots.
// An unknown maid returns 404; a known maid with no availability returns an
// empty list.
func (h *SchedulingHandler) SuggestSlots(c *gin.Context) {
	maidID := c.Param("id")
	horizonDays := intQuery(c, "horizonDays")
	if horizonDays == 0 {
		horizonDays = config.AppConfig.SuggestHorizonDays
	}
	maxResults := intQuery(c, "maxResults")
	if maxResults == 0 {
		maxResults = config.AppConfig.SuggestMaxResults
	}

	slots, err := h.Service.NextAvailable(c.Request.Context(), maidID, horizonDays, maxResults)
	if err != nil {
		if errors.Is(err, repository.ErrMaidNotFound) {
			utils.JSONError(c, http.StatusNotFound, "maid not found", maidID)
			return
		}
		h.Logger.Error("slot suggestion failed", zap.String("maidId", maidID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"maidId":      maidID,
		"suggestions": slots,
		"total":       len(slots),
	})
}

// intQuery parses an optional positive integer query parameter, returning 0
// when absent or malformed so service defaults apply.
func intQuery(c *gin.Context, name string) int {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
