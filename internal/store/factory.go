package store

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"webshop-api/internal/config"
)

// NewStore builds the Store backend selected by configuration.
func NewStore(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendDynamoDB:
		return NewDynamoStore(ctx, cfg.Store.Region, cfg.Store.Endpoint, logger)
	case config.StoreBackendSQLite:
		return NewSQLiteStore(cfg.Store.SQLitePath, logger)
	case config.StoreBackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Store.Backend)
	}
}
