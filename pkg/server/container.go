// Package server wires process-wide dependencies once at startup. Handlers
// receive the store client, repositories, and logger by injection rather
// than through package globals.
package server

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"webshop-api/internal/config"
	"webshop-api/internal/handlers"
	"webshop-api/internal/models"
	"webshop-api/internal/repositories"
	"webshop-api/internal/store"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *logrus.Logger
	Store          store.Store
	ShopHandler    *handlers.ShopHandler
	ProductHandler *handlers.ProductHandler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger := newLogger(cfg)

	st, err := store.NewStore(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}

	ids := models.TimeBasedIDGenerator{}
	shopRepo := repositories.NewShopRepository(st, cfg.Store.ShopsTable, logger)
	productRepo := repositories.NewProductRepository(st, cfg.Store.ProductsTable, cfg.Store.ShopIndex, logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		Store:          st,
		ShopHandler:    handlers.NewShopHandler(shopRepo, ids, logger),
		ProductHandler: handlers.NewProductHandler(productRepo, ids, logger),
	}, nil
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			return fmt.Errorf("failed to close store: %w", err)
		}
	}
	return nil
}

func newLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Log.JSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}
