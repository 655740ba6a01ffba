package repositories

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"webshop-api/internal/models"
	"webshop-api/internal/store"
)

type productRepository struct {
	store  store.Store
	table  string
	index  string
	logger *logrus.Logger
}

// NewProductRepository creates a store-backed ProductRepository. index names
// the secondary index on shop_id used by ListByShop.
func NewProductRepository(s store.Store, table, index string, logger *logrus.Logger) ProductRepository {
	return &productRepository{store: s, table: table, index: index, logger: logger}
}

func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	item := store.Item{
		"id":      product.ID,
		"shop_id": product.ShopID,
		"name":    product.Name,
		"price":   product.Price,
	}
	if err := r.store.Put(ctx, r.table, item); err != nil {
		r.logger.WithError(err).WithField("product_id", product.ID).Error("failed to put product")
		return fmt.Errorf("create product %s: %w", product.ID, err)
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	item, err := r.store.Get(ctx, r.table, id)
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	if item == nil {
		return nil, fmt.Errorf("product %s: %w", id, ErrNotFound)
	}
	return productFromItem(item)
}

func (r *productRepository) List(ctx context.Context) ([]*models.Product, error) {
	items, err := r.store.Scan(ctx, r.table)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return productsFromItems(items)
}

func (r *productRepository) ListByShop(ctx context.Context, shopID string) ([]*models.Product, error) {
	items, err := r.store.QueryByIndex(ctx, r.table, r.index, "shop_id", shopID)
	if err != nil {
		return nil, fmt.Errorf("list products for shop %s: %w", shopID, err)
	}
	return productsFromItems(items)
}

func (r *productRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*models.Product, error) {
	item, err := r.store.Update(ctx, r.table, id, store.Item(fields))
	if err != nil {
		r.logger.WithError(err).WithField("product_id", id).Error("failed to update product")
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return productFromItem(item)
}

func (r *productRepository) Delete(ctx context.Context, id string) (*models.Product, error) {
	item, err := r.store.Delete(ctx, r.table, id)
	if err != nil {
		r.logger.WithError(err).WithField("product_id", id).Error("failed to delete product")
		return nil, fmt.Errorf("delete product %s: %w", id, err)
	}
	if item == nil {
		return nil, nil
	}
	return productFromItem(item)
}

// productFromItem rebuilds a product from a stored item, coercing the
// string-encoded price back to a number on the way out.
func productFromItem(item store.Item) (*models.Product, error) {
	price, err := numericAttr(item, "price")
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", stringAttr(item, "id"), err)
	}
	return &models.Product{
		ID:     stringAttr(item, "id"),
		ShopID: stringAttr(item, "shop_id"),
		Name:   stringAttr(item, "name"),
		Price:  price,
	}, nil
}

func productsFromItems(items []store.Item) ([]*models.Product, error) {
	products := make([]*models.Product, 0, len(items))
	for _, item := range items {
		product, err := productFromItem(item)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}
