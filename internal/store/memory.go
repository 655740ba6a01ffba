package store

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used for tests and as the default
// local backend. Safe for concurrent use.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string]map[string]Item
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string]map[string]Item),
	}
}

// Put implements Store.Put.
func (m *MemoryStore) Put(ctx context.Context, table string, item Item) error {
	id, _ := item["id"].(string)

	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.tables[table]
	if t == nil {
		t = make(map[string]Item)
		m.tables[table] = t
	}
	t[id] = copyItem(item)
	return nil
}

// Get implements Store.Get.
func (m *MemoryStore) Get(ctx context.Context, table, id string) (Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.tables[table][id]
	if !ok {
		return nil, nil
	}
	return copyItem(item), nil
}

// Update implements Store.Update.
func (m *MemoryStore) Update(ctx context.Context, table, id string, fields Item) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := m.tables[table]
	if t == nil {
		t = make(map[string]Item)
		m.tables[table] = t
	}

	item, ok := t[id]
	if !ok {
		// Upsert-on-update, same as DynamoDB UpdateItem.
		item = Item{"id": id}
	}
	merged := copyItem(item)
	for k, v := range fields {
		merged[k] = v
	}
	t[id] = merged
	return copyItem(merged), nil
}

// Delete implements Store.Delete.
func (m *MemoryStore) Delete(ctx context.Context, table, id string) (Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.tables[table][id]
	if !ok {
		return nil, nil
	}
	delete(m.tables[table], id)
	return copyItem(item), nil
}

// Scan implements Store.Scan.
func (m *MemoryStore) Scan(ctx context.Context, table string) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]Item, 0, len(m.tables[table]))
	for _, item := range m.tables[table] {
		items = append(items, copyItem(item))
	}
	return items, nil
}

// QueryByIndex implements Store.QueryByIndex. The memory backend has no
// real secondary indexes; it filters a scan on the indexed field.
func (m *MemoryStore) QueryByIndex(ctx context.Context, table, index, field string, value any) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var items []Item
	for _, item := range m.tables[table] {
		if item[field] == value {
			items = append(items, copyItem(item))
		}
	}
	return items, nil
}

// Close implements Store.Close.
func (m *MemoryStore) Close() error {
	return nil
}

func copyItem(item Item) Item {
	out := make(Item, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}
