package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/psalmsin1759/menuja-backend/config"
	"github.com/psalmsin1759/menuja-backend/database"
	"github.com/psalmsin1759/menuja-backend/pkg/logger"
	"github.com/psalmsin1759/menuja-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	logCfg := logger.DefaultConfig()
	if cfg.Env != "development" {
		logCfg.Format = "json"
	}
	log := logger.New(logCfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, database.Client); err != nil {
		log.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "server running"})
	})

	routes.AdminRoutes(router)
	routes.CategoryRoutes(router)
	routes.FoodRoutes(router)
	routes.OrderRoutes(router)
	routes.PaymentRoutes(router)
	routes.TableRoutes(router)
	routes.QrScanRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	log.Info("server listening", "port", cfg.Port, "env", cfg.Env)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
