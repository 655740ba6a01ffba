// Package store implements the document store gateway backing the shop and
// product tables. Every backend exposes the same generic item operations;
// entity awareness lives one layer up, in the repositories.
package store

import (
	"context"
	"errors"
)

// Item is a schemaless record as held by the store. Depending on the
// backend, numeric attributes may surface as float64, json.Number, or a
// plain decimal string; callers coerce on the way out.
type Item map[string]any

// ErrUnknownBackend is returned by the factory for an unsupported backend.
var ErrUnknownBackend = errors.New("unknown store backend")

// Store is the gateway to the document database.
//
// Get and Delete return (nil, nil) when no item exists under the key.
// Update applies only the given fields, leaves all others untouched, and
// returns the post-update item; updating an absent key creates an item
// from the supplied fields, mirroring DynamoDB UpdateItem semantics.
type Store interface {
	// Put inserts or overwrites an item keyed by its "id" attribute.
	Put(ctx context.Context, table string, item Item) error

	// Get retrieves an item by primary key.
	Get(ctx context.Context, table, id string) (Item, error)

	// Update applies the given fields to the item and returns the result.
	Update(ctx context.Context, table, id string, fields Item) (Item, error)

	// Delete removes an item and returns what was removed.
	Delete(ctx context.Context, table, id string) (Item, error)

	// Scan returns every item in the table.
	Scan(ctx context.Context, table string) ([]Item, error)

	// QueryByIndex returns all items whose indexed field equals value.
	QueryByIndex(ctx context.Context, table, index, field string, value any) ([]Item, error)

	// Close releases backend resources.
	Close() error
}
