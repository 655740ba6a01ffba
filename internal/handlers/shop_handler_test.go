package handlers

import (
	"context"
	"testing"

	"webshop-api/internal/models"
	"webshop-api/internal/store"
	"webshop-api/pkg/lambda"
)

func createTestShop(t *testing.T, h *ShopHandler, name string) *models.Shop {
	t.Helper()
	resp, err := h.HandleCreate(context.Background(), bodyRequest(`{"name": "`+name+`"}`))
	if err != nil {
		t.Fatalf("HandleCreate() failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("HandleCreate() status = %d, body %s", resp.StatusCode, resp.Body)
	}
	var shop models.Shop
	decodeJSON(t, resp, &shop)
	return &shop
}

func TestShopCreate(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())

	shop := createTestShop(t, h, "Acme")
	if shop.Name != "Acme" {
		t.Errorf("created name = %q, want Acme", shop.Name)
	}
	if !models.IsCanonicalID(shop.ID) {
		t.Errorf("created id %q is not canonical", shop.ID)
	}

	other := createTestShop(t, h, "Acme")
	if other.ID == shop.ID {
		t.Errorf("two creates returned the same id %q", shop.ID)
	}
}

func TestShopCreateValidation(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())
	ctx := context.Background()

	tests := []struct {
		name string
		body string
		want ErrorKind
	}{
		{"empty body", "", ErrMissingBody},
		{"malformed json", `{"name": `, ErrBadJSON},
		{"no fields", `{}`, ErrMissingParams},
		{"empty name", `{"name": ""}`, ErrMissingParams},
		{"numeric name", `{"name": 42}`, ErrWrongParamFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.HandleCreate(ctx, bodyRequest(tt.body))
			if err != nil {
				t.Fatalf("HandleCreate() failed: %v", err)
			}
			wantError(t, resp, tt.want)
		})
	}
}

func TestShopCreateStoreFailure(t *testing.T) {
	h, _ := newTestHandlers(failingStore{})

	resp, err := h.HandleCreate(context.Background(), bodyRequest(`{"name": "Acme"}`))
	if err != nil {
		t.Fatalf("HandleCreate() failed: %v", err)
	}
	// Shop writes answer with the generic database error, not a raw 504.
	wantError(t, resp, ErrDatabase)
}

func TestShopGet(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())
	ctx := context.Background()

	created := createTestShop(t, h, "Acme")

	resp, err := h.HandleGet(ctx, idRequest(created.ID))
	if err != nil {
		t.Fatalf("HandleGet() failed: %v", err)
	}
	var shop models.Shop
	decodeJSON(t, resp, &shop)
	if shop.ID != created.ID || shop.Name != "Acme" {
		t.Errorf("HandleGet() = %+v, want created shop", shop)
	}
}

func TestShopGetValidation(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())
	ctx := context.Background()

	resp, err := h.HandleGet(ctx, &lambda.Request{Method: "GET"})
	if err != nil {
		t.Fatalf("HandleGet() failed: %v", err)
	}
	wantError(t, resp, ErrMissingParams)

	// Malformed identifiers are rejected before any store access: the
	// failing store would turn a lookup into a database error.
	hFailing, _ := newTestHandlers(failingStore{})
	resp, err = hFailing.HandleGet(ctx, idRequest("not-an-id"))
	if err != nil {
		t.Fatalf("HandleGet() failed: %v", err)
	}
	wantError(t, resp, ErrIDFormat)
}

func TestShopGetAbsent(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())

	resp, err := h.HandleGet(context.Background(), idRequest("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	if err != nil {
		t.Fatalf("HandleGet() failed: %v", err)
	}
	wantError(t, resp, ErrItemNotFound)
}

func TestShopList(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())
	ctx := context.Background()

	createTestShop(t, h, "Acme")
	createTestShop(t, h, "Globex")
	createTestShop(t, h, "Initech")

	resp, err := h.HandleList(ctx, &lambda.Request{Method: "GET"})
	if err != nil {
		t.Fatalf("HandleList() failed: %v", err)
	}

	var list models.ShopList
	decodeJSON(t, resp, &list)
	if list.Count != 3 || len(list.Shops) != 3 {
		t.Errorf("HandleList() count = %d with %d shops, want 3", list.Count, len(list.Shops))
	}
}

func TestShopUpdate(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())
	ctx := context.Background()

	created := createTestShop(t, h, "Acme")

	resp, err := h.HandleUpdate(ctx, idBodyRequest(created.ID, `{"name": "Globex"}`))
	if err != nil {
		t.Fatalf("HandleUpdate() failed: %v", err)
	}
	var updated models.Shop
	decodeJSON(t, resp, &updated)
	if updated.ID != created.ID || updated.Name != "Globex" {
		t.Errorf("HandleUpdate() = %+v, want renamed shop", updated)
	}

	resp, _ = h.HandleGet(ctx, idRequest(created.ID))
	var fetched models.Shop
	decodeJSON(t, resp, &fetched)
	if fetched.Name != "Globex" {
		t.Errorf("HandleGet() after update name = %q, want Globex", fetched.Name)
	}
}

func TestShopUpdateValidation(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())
	ctx := context.Background()

	created := createTestShop(t, h, "Acme")

	tests := []struct {
		name string
		id   string
		body string
		want ErrorKind
	}{
		{"no body", created.ID, "", ErrMissingBody},
		{"no id", "", `{"name": "X"}`, ErrMissingBody},
		{"malformed json", created.ID, `{`, ErrBadJSON},
		{"no name", created.ID, `{}`, ErrMissingParams},
		{"numeric name", created.ID, `{"name": 1}`, ErrWrongParamFormat},
		{"malformed id", "xyz", `{"name": "X"}`, ErrIDFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := h.HandleUpdate(ctx, idBodyRequest(tt.id, tt.body))
			if err != nil {
				t.Fatalf("HandleUpdate() failed: %v", err)
			}
			wantError(t, resp, tt.want)
		})
	}
}

func TestShopUpdateAbsent(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())

	resp, err := h.HandleUpdate(context.Background(),
		idBodyRequest("6ba7b810-9dad-11d1-80b4-00c04fd430c8", `{"name": "X"}`))
	if err != nil {
		t.Fatalf("HandleUpdate() failed: %v", err)
	}
	wantError(t, resp, ErrItemNotFound)
}

func TestShopDelete(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())
	ctx := context.Background()

	created := createTestShop(t, h, "Acme")

	req := &lambda.Request{Method: "DELETE", PathParams: map[string]string{"id": created.ID}}
	resp, err := h.HandleDelete(ctx, req)
	if err != nil {
		t.Fatalf("HandleDelete() failed: %v", err)
	}
	var confirmation struct {
		Msg string `json:"msg"`
	}
	decodeJSON(t, resp, &confirmation)
	if confirmation.Msg != "delete item successfully!" {
		t.Errorf("HandleDelete() msg = %q", confirmation.Msg)
	}

	// A second delete of the same id finds nothing.
	resp, err = h.HandleDelete(ctx, req)
	if err != nil {
		t.Fatalf("second HandleDelete() failed: %v", err)
	}
	wantError(t, resp, ErrItemNotFound)
}

func TestShopDeleteValidation(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())
	ctx := context.Background()

	resp, err := h.HandleDelete(ctx, &lambda.Request{Method: "DELETE"})
	if err != nil {
		t.Fatalf("HandleDelete() failed: %v", err)
	}
	wantError(t, resp, ErrMissingParams)

	resp, err = h.HandleDelete(ctx, idRequest("123"))
	if err != nil {
		t.Fatalf("HandleDelete() failed: %v", err)
	}
	wantError(t, resp, ErrIDFormat)
}

func TestShopDeleteAbsent(t *testing.T) {
	h, _ := newTestHandlers(store.NewMemoryStore())

	resp, err := h.HandleDelete(context.Background(), idRequest("6ba7b810-9dad-11d1-80b4-00c04fd430c8"))
	if err != nil {
		t.Fatalf("HandleDelete() failed: %v", err)
	}
	wantError(t, resp, ErrItemNotFound)
}
