package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"webshop-api/internal/config"
	"webshop-api/internal/handlers"
	"webshop-api/internal/middleware"
	"webshop-api/pkg/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	container, err := server.NewContainer(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.StructuredLogger(container.Logger))

	handlers.SetupRoutes(router, &handlers.RouterConfig{
		ShopHandler:    container.ShopHandler,
		ProductHandler: container.ProductHandler,
	})

	container.Logger.WithFields(logrus.Fields{
		"port":    cfg.Port,
		"backend": cfg.Store.Backend,
		"mode":    config.GetDeploymentMode(),
	}).Info("Starting webshop API server")

	if err := router.Run(":" + cfg.Port); err != nil {
		container.Logger.WithError(err).Fatal("Server exited")
	}
}
