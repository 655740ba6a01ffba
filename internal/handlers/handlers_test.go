package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"webshop-api/internal/models"
	"webshop-api/internal/repositories"
	"webshop-api/internal/store"
	"webshop-api/pkg/lambda"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

func newTestHandlers(st store.Store) (*ShopHandler, *ProductHandler) {
	logger := testLogger()
	ids := models.TimeBasedIDGenerator{}
	shops := repositories.NewShopRepository(st, "shops", logger)
	products := repositories.NewProductRepository(st, "products", "shopid", logger)
	return NewShopHandler(shops, ids, logger), NewProductHandler(products, ids, logger)
}

func bodyRequest(body string) *lambda.Request {
	return &lambda.Request{Method: "POST", Body: []byte(body)}
}

func idRequest(id string) *lambda.Request {
	return &lambda.Request{Method: "GET", PathParams: map[string]string{"id": id}}
}

func idBodyRequest(id, body string) *lambda.Request {
	return &lambda.Request{
		Method:     "PUT",
		Body:       []byte(body),
		PathParams: map[string]string{"id": id},
	}
}

func decodeJSON(t *testing.T, resp *lambda.Response, v any) {
	t.Helper()
	if err := json.Unmarshal(resp.Body, v); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", resp.Body, err)
	}
}

func wantError(t *testing.T, resp *lambda.Response, kind ErrorKind) {
	t.Helper()
	if resp.StatusCode != kind.StatusCode() {
		t.Errorf("status = %d, want %d", resp.StatusCode, kind.StatusCode())
	}
	if string(resp.Body) != kind.Message() {
		t.Errorf("body = %q, want %q", resp.Body, kind.Message())
	}
	if ct := resp.Headers["Content-Type"]; ct != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
}

// failingStore simulates a store whose every operation fails.
type failingStore struct{}

var errStoreDown = errors.New("connection refused")

func (failingStore) Put(ctx context.Context, table string, item store.Item) error {
	return errStoreDown
}

func (failingStore) Get(ctx context.Context, table, id string) (store.Item, error) {
	return nil, errStoreDown
}

func (failingStore) Update(ctx context.Context, table, id string, fields store.Item) (store.Item, error) {
	return nil, errStoreDown
}

func (failingStore) Delete(ctx context.Context, table, id string) (store.Item, error) {
	return nil, errStoreDown
}

func (failingStore) Scan(ctx context.Context, table string) ([]store.Item, error) {
	return nil, errStoreDown
}

func (failingStore) QueryByIndex(ctx context.Context, table, index, field string, value any) ([]store.Item, error) {
	return nil, errStoreDown
}

func (failingStore) Close() error { return nil }
