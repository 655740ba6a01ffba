package repositories

import (
	"context"
	"encoding/json"
	"testing"

	"webshop-api/internal/models"
	"webshop-api/internal/store"
)

const (
	productID  = "6ba7b812-9dad-11d1-80b4-00c04fd430c8"
	productID2 = "6ba7b813-9dad-11d1-80b4-00c04fd430c8"
	productID3 = "6ba7b814-9dad-11d1-80b4-00c04fd430c8"
)

func newProductRepo() (ProductRepository, *store.MemoryStore) {
	st := store.NewMemoryStore()
	return NewProductRepository(st, "products", "shopid", testLogger()), st
}

func TestProductRepositoryCreateGet(t *testing.T) {
	repo, _ := newProductRepo()
	ctx := context.Background()

	product := &models.Product{ID: productID, ShopID: shopIDA, Name: "Bread", Price: 3.5}
	if err := repo.Create(ctx, product); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	got, err := repo.GetByID(ctx, productID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Name != "Bread" || got.ShopID != shopIDA || got.Price != 3.5 {
		t.Errorf("GetByID() = %+v, want created product back", got)
	}
}

func TestProductRepositoryPriceCoercion(t *testing.T) {
	repo, st := newProductRepo()
	ctx := context.Background()

	// Stored numerics may come back string- or json.Number-encoded
	// depending on the backend; the repository must coerce both.
	st.Put(ctx, "products", store.Item{
		"id": productID, "shop_id": shopIDA, "name": "Bread", "price": "9.99",
	})
	st.Put(ctx, "products", store.Item{
		"id": productID2, "shop_id": shopIDA, "name": "Milk", "price": json.Number("2.50"),
	})

	got, err := repo.GetByID(ctx, productID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got.Price != 9.99 {
		t.Errorf("GetByID() price = %v, want 9.99", got.Price)
	}

	got2, err := repo.GetByID(ctx, productID2)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	if got2.Price != 2.5 {
		t.Errorf("GetByID() price = %v, want 2.5", got2.Price)
	}
}

func TestProductRepositoryListByShop(t *testing.T) {
	repo, _ := newProductRepo()
	ctx := context.Background()

	repo.Create(ctx, &models.Product{ID: productID, ShopID: shopIDA, Name: "Bread", Price: 1})
	repo.Create(ctx, &models.Product{ID: productID2, ShopID: shopIDA, Name: "Milk", Price: 2})
	repo.Create(ctx, &models.Product{ID: productID3, ShopID: shopIDB, Name: "Eggs", Price: 3})

	forA, err := repo.ListByShop(ctx, shopIDA)
	if err != nil {
		t.Fatalf("ListByShop() failed: %v", err)
	}
	if len(forA) != 2 {
		t.Errorf("ListByShop(A) = %d products, want 2", len(forA))
	}

	forB, _ := repo.ListByShop(ctx, shopIDB)
	if len(forB) != 1 {
		t.Errorf("ListByShop(B) = %d products, want 1", len(forB))
	}
}

func TestProductRepositoryPartialUpdate(t *testing.T) {
	repo, _ := newProductRepo()
	ctx := context.Background()

	repo.Create(ctx, &models.Product{ID: productID, ShopID: shopIDA, Name: "Bread", Price: 3.5})

	updated, err := repo.UpdateFields(ctx, productID, map[string]any{"name": "Rye"})
	if err != nil {
		t.Fatalf("UpdateFields() failed: %v", err)
	}
	if updated.Name != "Rye" {
		t.Errorf("UpdateFields() name = %q, want Rye", updated.Name)
	}
	if updated.Price != 3.5 {
		t.Errorf("UpdateFields() price = %v, want untouched 3.5", updated.Price)
	}
	if updated.ShopID != shopIDA {
		t.Errorf("UpdateFields() shop_id = %q, want untouched", updated.ShopID)
	}
}

func TestProductRepositoryDelete(t *testing.T) {
	repo, _ := newProductRepo()
	ctx := context.Background()

	repo.Create(ctx, &models.Product{ID: productID, ShopID: shopIDA, Name: "Bread", Price: 3.5})

	removed, err := repo.Delete(ctx, productID)
	if err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if removed == nil || removed.ID != productID {
		t.Errorf("Delete() = %v, want removed product", removed)
	}

	if _, err := repo.GetByID(ctx, productID); !IsNotFound(err) {
		t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
	}
}
