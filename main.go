package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maidly/config"
	"maidly/database"
	bookingRepo "maidly/database/repository/booking"
	maidRepo "maidly/database/repository/maid"
	"maidly/handlers"
	"maidly/middleware"
	"maidly/routes"
	"maidly/services/discovery"
	"maidly/services/recommendation"
	"maidly/services/scheduling"
	"maidly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(routes.CORSMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalog := maidRepo.NewMongoMaidRepo()
	if mongoRepo, ok := catalog.(*maidRepo.MongoMaidRepo); ok {
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Warnf("main: failed to ensure maid indexes: %v", err)
		}
	}
	bookings := bookingRepo.NewMongoBookingRepo()

	// services.
	discoverySvc := &discovery.DefaultService{
		Catalog: catalog,
		Logger:  logger,
	}
	recommendSvc := &recommendation.DefaultService{
		Catalog:  catalog,
		History:  bookings,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.RecommendCacheTTL) * time.Minute,
		Logger:   logger,
	}
	schedulingSvc := &scheduling.DefaultService{
		Catalog: catalog,
		History: bookings,
		Logger:  logger,
	}

	// handlers and routes.
	discoveryHandler := handlers.NewDiscoveryHandler(discoverySvc, logger)
	recommendHandler := handlers.NewRecommendationHandler(recommendSvc, logger)
	schedulingHandler := handlers.NewSchedulingHandler(schedulingSvc, logger)

	routes.RegisterDiscoveryRoutes(router, discoveryHandler, schedulingHandler)
	routes.RegisterRecommendationRoutes(router, recommendHandler)
	routes.RegisterServiceRoutes(router)
	routes.RegisterHealthRoute(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
