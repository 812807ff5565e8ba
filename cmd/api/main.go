package main

import (
	"fmt"
	"os"

	"cooling-expander/internal/api/handlers"
	"cooling-expander/internal/api/middleware"
	"cooling-expander/internal/scenario"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(lvl)
	}

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Log the variant preset directory so a missing mount is obvious at startup.
	variantDir := handlers.VariantDir()
	if info, err := os.Stat(variantDir); err == nil && info.IsDir() {
		log.WithField("dir", variantDir).Info("variant preset directory found")
	} else {
		log.WithField("dir", variantDir).Warn("variant preset directory not found")
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	store := scenario.NewStore()
	expandHandler := handlers.NewExpandHandler(store, log)
	variantHandler := handlers.NewVariantHandler()
	analyzeHandler := handlers.NewAnalyzeHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/expand", expandHandler.RunExpansion)
		api.GET("/expansions/:id/records", expandHandler.GetRecords)

		api.GET("/variants", variantHandler.ListVariants)

		api.POST("/analyze", analyzeHandler.AnalyzeTradeoffs)
	}

	addr := fmt.Sprintf(":%s", port)
	log.WithField("addr", addr).Info("starting API server")
	if err := router.Run(addr); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
