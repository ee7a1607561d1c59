package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/salonworks/salon-scheduler/internal/cache"
	"github.com/salonworks/salon-scheduler/internal/config"
	dbpkg "github.com/salonworks/salon-scheduler/internal/db"
	"github.com/salonworks/salon-scheduler/internal/logger"
	"github.com/salonworks/salon-scheduler/internal/middleware"
	"github.com/salonworks/salon-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()

	logger.Init(cfg.IsProduction())
	defer logger.L().Sync() //nolint:errcheck

	db := dbpkg.NewDB(cfg)
	redisClient := cache.NewClient(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, redisClient, cfg)

	logger.L().Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.L().Fatal("failed to start server", zap.Error(err))
	}
}
