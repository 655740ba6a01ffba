package repositories

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"webshop-api/internal/models"
	"webshop-api/internal/store"
)

type shopRepository struct {
	store  store.Store
	table  string
	logger *logrus.Logger
}

// NewShopRepository creates a store-backed ShopRepository on the given table.
func NewShopRepository(s store.Store, table string, logger *logrus.Logger) ShopRepository {
	return &shopRepository{store: s, table: table, logger: logger}
}

func (r *shopRepository) Create(ctx context.Context, shop *models.Shop) error {
	if err := shop.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	item := store.Item{
		"id":   shop.ID,
		"name": shop.Name,
	}
	if err := r.store.Put(ctx, r.table, item); err != nil {
		r.logger.WithError(err).WithField("shop_id", shop.ID).Error("failed to put shop")
		return fmt.Errorf("create shop %s: %w", shop.ID, err)
	}
	return nil
}

func (r *shopRepository) GetByID(ctx context.Context, id string) (*models.Shop, error) {
	item, err := r.store.Get(ctx, r.table, id)
	if err != nil {
		return nil, fmt.Errorf("get shop %s: %w", id, err)
	}
	if item == nil {
		return nil, fmt.Errorf("shop %s: %w", id, ErrNotFound)
	}
	return shopFromItem(item), nil
}

func (r *shopRepository) List(ctx context.Context) ([]*models.Shop, error) {
	items, err := r.store.Scan(ctx, r.table)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}

	shops := make([]*models.Shop, 0, len(items))
	for _, item := range items {
		shops = append(shops, shopFromItem(item))
	}
	return shops, nil
}

func (r *shopRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Shop, error) {
	item, err := r.store.Update(ctx, r.table, id, store.Item(fields))
	if err != nil {
		r.logger.WithError(err).WithField("shop_id", id).Error("failed to update shop")
		return nil, fmt.Errorf("update shop %s: %w", id, err)
	}
	return shopFromItem(item), nil
}

func (r *shopRepository) Delete(ctx context.Context, id string) (*models.Shop, error) {
	item, err := r.store.Delete(ctx, r.table, id)
	if err != nil {
		r.logger.WithError(err).WithField("shop_id", id).Error("failed to delete shop")
		return nil, fmt.Errorf("delete shop %s: %w", id, err)
	}
	if item == nil {
		return nil, nil
	}
	return shopFromItem(item), nil
}

func shopFromItem(item store.Item) *models.Shop {
	return &models.Shop{
		ID:   stringAttr(item, "id"),
		Name: stringAttr(item, "name"),
	}
}
