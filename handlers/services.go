package handlers

import (
	"net/http"

	"maidly/models"

	"github.com/gin-gonic/gin"
)

// ListServiceCategories handles GET /api/services and returns the configured
// category set.
func ListServiceCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services": models.DefaultServiceCategories,
		"total":    len(models.DefaultServiceCategories),
	})
}
