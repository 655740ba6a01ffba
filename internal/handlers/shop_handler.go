package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"webshop-api/internal/models"
	"webshop-api/internal/repositories"
	"webshop-api/pkg/lambda"
)

// ShopHandler implements the shop CRUD operations. Every method is a pure
// request-to-response transformation over one or two sequential store
// calls; there is no state carried between invocations.
type ShopHandler struct {
	shops  repositories.ShopRepository
	ids    models.IDGenerator
	logger *logrus.Logger
}

// NewShopHandler creates a new shop handler
func NewShopHandler(shops repositories.ShopRepository, ids models.IDGenerator, logger *logrus.Logger) *ShopHandler {
	return &ShopHandler{shops: shops, ids: ids, logger: logger}
}

// HandleCreate persists a new shop. The insert is unconditional: no
// duplicate detection, two creates with the same name produce two records.
func (h *ShopHandler) HandleCreate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	if len(req.Body) == 0 {
		return errorResponse(ErrMissingBody), nil
	}

	data, ok := parseObjectBody(req.Body)
	if !ok {
		return errorResponse(ErrBadJSON), nil
	}

	if !fieldPresent(data["name"]) {
		return errorResponse(ErrMissingParams), nil
	}
	name, isText := data["name"].(string)
	if !isText {
		return errorResponse(ErrWrongParamFormat), nil
	}

	id, err := h.ids.NewID()
	if err != nil {
		return nil, err
	}

	shop := &models.Shop{ID: id, Name: name}
	if err := h.shops.Create(ctx, shop); err != nil {
		return errorResponse(ErrDatabase), nil
	}
	return okResponse(shop)
}

// HandleList returns every shop in a single unbounded scan.
func (h *ShopHandler) HandleList(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	shops, err := h.shops.List(ctx)
	if err != nil {
		return errorResponse(ErrDatabase), nil
	}
	return okResponse(&models.ShopList{Count: len(shops), Shops: shops})
}

// HandleGet returns the shop named by the path identifier.
func (h *ShopHandler) HandleGet(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")
	if id == "" {
		return errorResponse(ErrMissingParams), nil
	}
	if !models.IsCanonicalID(id) {
		return errorResponse(ErrIDFormat), nil
	}

	shop, err := h.shops.GetByID(ctx, id)
	if err != nil {
		if repositories.IsNotFound(err) {
			return errorResponse(ErrItemNotFound), nil
		}
		return errorResponse(ErrDatabase), nil
	}
	return okResponse(shop)
}

// HandleUpdate renames a shop. The existence check and the write are two
// sequential store calls and are not atomic.
func (h *ShopHandler) HandleUpdate(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")
	if id == "" || len(req.Body) == 0 {
		return errorResponse(ErrMissingBody), nil
	}

	data, ok := parseObjectBody(req.Body)
	if !ok {
		return errorResponse(ErrBadJSON), nil
	}

	if !fieldPresent(data["name"]) {
		return errorResponse(ErrMissingParams), nil
	}
	name, isText := data["name"].(string)
	if !isText {
		return errorResponse(ErrWrongParamFormat), nil
	}

	if !models.IsCanonicalID(id) {
		return errorResponse(ErrIDFormat), nil
	}

	if _, err := h.shops.GetByID(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return errorResponse(ErrItemNotFound), nil
		}
		return errorResponse(ErrDatabase), nil
	}

	shop, err := h.shops.UpdateFields(ctx, id, map[string]any{"name": name})
	if err != nil {
		return errorResponse(ErrDatabase), nil
	}
	return okResponse(shop)
}

// HandleDelete removes a shop and answers with a confirmation message;
// the removed record itself is not echoed.
func (h *ShopHandler) HandleDelete(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	id := req.PathParam("id")
	if id == "" {
		return errorResponse(ErrMissingParams), nil
	}
	if !models.IsCanonicalID(id) {
		return errorResponse(ErrIDFormat), nil
	}

	if _, err := h.shops.GetByID(ctx, id); err != nil {
		if repositories.IsNotFound(err) {
			return errorResponse(ErrItemNotFound), nil
		}
		return errorResponse(ErrDatabase), nil
	}

	removed, err := h.shops.Delete(ctx, id)
	if err != nil {
		return errorResponse(ErrDatabase), nil
	}
	if removed == nil {
		// A concurrent delete won the race between check and act.
		return errorResponse(ErrItemNotFound), nil
	}
	return okResponse(deleteOK)
}
