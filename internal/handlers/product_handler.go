package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"webshop-api/internal/models"
	"webshop-api/internal/repositories"
	"webshop-api/pkg/lambda"
)

// ProductHandler implements the product CRUD operations plus the
// query-by-shop lookup. Unlike shops, product write failures surface as a
// raw 504 with the store error detail.
type ProductHandler struct {
	products repositories.ProductRepository
	ids      models.IDGenerator
	logger   *logrus.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(products repositories.ProductRepository, ids models.IDGenerator, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{products: products, ids: ids, logger: logger}
}

// HandleCreate persists a new product. Creation accepts any numeric price,
// including non-positive ones; only updates reject price <= 0.
func (h *ProductHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if len(req.Body) == 0 {
		return errorResponse(ErrMissingBody), nil
	}

	data, ok := parseObjectBody(req.Body)
	if !ok {
		return errorResponse(ErrBadJSON), nil
	}

	if !fieldPresent(data["name"]) || !fieldPresent(data["shop_id"]) || !fieldPresent(data["price"]) {
		return errorResponse(ErrMissingParams), nil
	}

	name, nameOK := data["name"].(string)
	shopID, shopOK := data["shop_id"].(string)
	price, priceOK := data["price"].(float64)
	if !nameOK || !shopOK || !priceOK {
		return errorResponse(ErrWrongParamFormat), nil
	}

	if !models.IsCanonicalID(shopID) {
		return errorResponse(ErrIDFormat), nil
	}

	id, err := h.ids.NewID()
	if err != nil {
		return nil, err
	}

	product := &models.Product{ID: id, ShopID: shopID, Name: name, Price: price}
	if err := h.products.Create(ctx, product); err != nil {
		return writeFailureResponse(err), nil
	}
	return okResponse(product)
}

// HandleList returns every product in a single unbounded scan.
func (h *ProductHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	products, err := h.products.List(ctx)
	if err != nil {
		return writeFailureResponse(err), nil
	}
	return okResponse(&models.ProductList{Count: len(products), Products: products})
}

// HandleGet returns the product named by the path identifier, with the
// stored price coerced back to a number.
func (h *ProductHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")
	if id == "" {
		return errorResponse(ErrMissingParams), nil
	}
	if !models.IsCanonicalID(id) {
		return errorResponse(ErrIDFormat), nil
	}

	product, err := h.products.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return errorResponse(ErrItemNotFound), nil
		}
		return errorResponse(ErrDatabase), nil
	}
	return okResponse(product)
}

// HandleUpdate applies a partial update: only supplied fields are written,
// omitted ones stay untouched. At least one of name or price must be
// supplied, and a supplied price must be positive.
func (h *ProductHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")
	if id == "" || len(req.Body) == 0 {
		return errorResponse(ErrMissingBody), nil
	}

	data, ok := parseObjectBody(req.Body)
	if !ok {
		return errorResponse(ErrBadJSON), nil
	}

	nameSupplied := fieldPresent(data["name"])
	priceSupplied := fieldPresent(data["price"])
	if !nameSupplied && !priceSupplied {
		return errorResponse(ErrMissingParams), nil
	}

	fields := make(map[string]any, 2)
	if nameSupplied {
		name, isText := data["name"].(string)
		if !isText {
			return errorResponse(ErrWrongParamFormat), nil
		}
		fields["name"] = name
	}

	var price float64
	if raw, exists := data["price"]; exists && raw != nil {
		var isNumber bool
		price, isNumber = raw.(float64)
		if !isNumber {
			return errorResponse(ErrWrongParamFormat), nil
		}
	}

	if !models.IsCanonicalID(id) {
		return errorResponse(ErrIDFormat), nil
	}

	// A price key is rejected when non-positive even if it did not count
	// as supplied (price zero), matching the original contract.
	if _, exists := data["price"]; exists && data["price"] != nil && price <= 0 {
		return errorResponse(ErrWrongParams), nil
	}
	if priceSupplied {
		fields["price"] = price
	}

	if _, err := h.products.GetByID(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return errorResponse(ErrItemNotFound), nil
		}
		return errorResponse(ErrDatabase), nil
	}

	product, err := h.products.UpdateFields(ctx, id, fields)
	if err != nil {
		return writeFailureResponse(err), nil
	}
	return okResponse(product)
}

// HandleDelete removes a product and answers with a confirmation message.
func (h *ProductHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")
	if id == "" {
		return errorResponse(ErrMissingParams), nil
	}
	if !models.IsCanonicalID(id) {
		return errorResponse(ErrIDFormat), nil
	}

	if _, err := h.products.GetByID(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return errorResponse(ErrItemNotFound), nil
		}
		return errorResponse(ErrDatabase), nil
	}

	removed, err := h.products.Delete(ctx, id)
	if err != nil {
		return errorResponse(ErrDatabase), nil
	}
	if removed == nil {
		return errorResponse(ErrItemNotFound), nil
	}
	return okResponse(deleteOK)
}

// HandleListByShop returns all products whose shop_id equals the path
// identifier, served by the secondary index.
func (h *ProductHandler) HandleListByShop(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	shopID := req.PathParam("id")
	if shopID == "" {
		return errorResponse(ErrMissingParams), nil
	}
	if !models.IsCanonicalID(shopID) {
		return errorResponse(ErrIDFormat), nil
	}

	products, err := h.products.ListByShop(ctx, shopID)
	if err != nil {
		return writeFailureResponse(err), nil
	}
	return okResponse(&models.ProductList{Count: len(products), Products: products})
}
