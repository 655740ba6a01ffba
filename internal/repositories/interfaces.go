package repositories

import (
	"context"

	"webshop-api/internal/models"
)

// ShopRepository defines the store-backed operations on shop records.
type ShopRepository interface {
	// Create persists a new shop unconditionally (always an insert).
	Create(ctx context.Context, shop *models.Shop) error

	// GetByID retrieves a shop by its ID, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Shop, error)

	// List returns every shop in the table.
	List(ctx context.Context) ([]*models.Shop, error)

	// UpdateFields applies only the given fields and returns the
	// post-update record.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Shop, error)

	// Delete removes a shop and returns the removed record, or
	// (nil, nil) when nothing was removed.
	Delete(ctx context.Context, id string) (*models.Shop, error)
}

// ProductRepository defines the store-backed operations on product records.
type ProductRepository interface {
	// Create persists a new product unconditionally (always an insert).
	Create(ctx context.Context, product *models.Product) error

	// GetByID retrieves a product by its ID, or ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Product, error)

	// List returns every product in the table.
	List(ctx context.Context) ([]*models.Product, error)

	// ListByShop returns all products belonging to the given shop, served
	// by the secondary index on shop_id.
	ListByShop(ctx context.Context, shopID string) ([]*models.Product, error)

	// UpdateFields applies only the given fields and returns the
	// post-update record.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Product, error)

	// Delete removes a product and returns the removed record, or
	// (nil, nil) when nothing was removed.
	Delete(ctx context.Context, id string) (*models.Product, error)
}
