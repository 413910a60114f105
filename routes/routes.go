package routes

import (
	"net/http"
	"time"

	"maidly/handlers"
	"maidly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware returns the CORS policy applied to the whole API.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	})
}

// RegisterDiscoveryRoutes registers maid search and slot-suggestion endpoints.
func RegisterDiscoveryRoutes(r *gin.Engine, dh *handlers.DiscoveryHandler, sh *handlers.SchedulingHandler) {
	api := r.Group("/api/maids")
	{
		api.POST("/search", dh.SearchMaids)
		api.GET("/:id/slots", sh.SuggestSlots)
	}
}

// RegisterRecommendationRoutes registers the recommendation endpoint.
func RegisterRecommendationRoutes(r *gin.Engine, rh *handlers.RecommendationHandler) {
	api := r.Group("/api/recommendations")
	{
		api.POST("", rh.Recommend)
	}
}

// RegisterServiceRoutes registers the service-category listing endpoint.
func RegisterServiceRoutes(r *gin.Engine) {
	r.GET("/api/services", handlers.ListServiceCategories)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
