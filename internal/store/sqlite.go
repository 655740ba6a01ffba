package store

import (
	"bytes"
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// SQLiteStore is a document store on a single SQLite file, used for local
// development outside Lambda. Items live in one generic documents table as
// JSON; the shop_id lookup is served by an expression index.
type SQLiteStore struct {
	db     *sql.DB
	logger *logrus.Logger
}

// NewSQLiteStore opens (and if needed creates) the database file and runs
// the embedded schema migrations.
func NewSQLiteStore(path string, logger *logrus.Logger) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	logger.WithField("path", path).Debug("sqlite store ready")
	return &SQLiteStore{db: db, logger: logger}, nil
}

func runMigrations(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("init migration driver: %w", err)
	}

	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Put implements Store.Put.
func (s *SQLiteStore) Put(ctx context.Context, table string, item Item) error {
	id, _ := item["id"].(string)

	attrs, err := json.Marshal(map[string]any(item))
	if err != nil {
		return fmt.Errorf("encode item: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (table_name, id, attrs) VALUES (?, ?, ?)
		ON CONFLICT (table_name, id) DO UPDATE SET attrs = excluded.attrs
	`, table, id, string(attrs))
	if err != nil {
		return fmt.Errorf("put item in %s: %w", table, err)
	}
	return nil
}

// Get implements Store.Get.
func (s *SQLiteStore) Get(ctx context.Context, table, id string) (Item, error) {
	var attrs string
	err := s.db.QueryRowContext(ctx,
		`SELECT attrs FROM documents WHERE table_name = ? AND id = ?`,
		table, id,
	).Scan(&attrs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item %s from %s: %w", id, table, err)
	}
	return decodeItem(attrs)
}

// Update implements Store.Update. The read-merge-write runs in a single
// transaction; an absent key is created from the supplied fields to match
// DynamoDB UpdateItem semantics.
func (s *SQLiteStore) Update(ctx context.Context, table, id string, fields Item) (Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback()

	item := Item{"id": id}
	var attrs string
	err = tx.QueryRowContext(ctx,
		`SELECT attrs FROM documents WHERE table_name = ? AND id = ?`,
		table, id,
	).Scan(&attrs)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read item %s from %s: %w", id, table, err)
	}
	if err == nil {
		if item, err = decodeItem(attrs); err != nil {
			return nil, err
		}
	}

	for k, v := range fields {
		item[k] = v
	}

	encoded, err := json.Marshal(map[string]any(item))
	if err != nil {
		return nil, fmt.Errorf("encode item: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (table_name, id, attrs) VALUES (?, ?, ?)
		ON CONFLICT (table_name, id) DO UPDATE SET attrs = excluded.attrs
	`, table, id, string(encoded))
	if err != nil {
		return nil, fmt.Errorf("write item %s in %s: %w", id, table, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit update: %w", err)
	}
	return item, nil
}

// Delete implements Store.Delete.
func (s *SQLiteStore) Delete(ctx context.Context, table, id string) (Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin delete: %w", err)
	}
	defer tx.Rollback()

	var attrs string
	err = tx.QueryRowContext(ctx,
		`SELECT attrs FROM documents WHERE table_name = ? AND id = ?`,
		table, id,
	).Scan(&attrs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read item %s from %s: %w", id, table, err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM documents WHERE table_name = ? AND id = ?`,
		table, id,
	); err != nil {
		return nil, fmt.Errorf("delete item %s from %s: %w", id, table, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit delete: %w", err)
	}
	return decodeItem(attrs)
}

// Scan implements Store.Scan.
func (s *SQLiteStore) Scan(ctx context.Context, table string) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT attrs FROM documents WHERE table_name = ?`, table)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	defer rows.Close()
	return collectItems(rows, table)
}

// QueryByIndex implements Store.QueryByIndex through the json_extract
// expression index on the field.
func (s *SQLiteStore) QueryByIndex(ctx context.Context, table, index, field string, value any) ([]Item, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT attrs FROM documents WHERE table_name = ? AND json_extract(attrs, '$.' || ?) = ?`,
		table, field, value)
	if err != nil {
		return nil, fmt.Errorf("query %s by %s: %w", table, field, err)
	}
	defer rows.Close()
	return collectItems(rows, table)
}

// Close implements Store.Close.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func collectItems(rows *sql.Rows, table string) ([]Item, error) {
	var items []Item
	for rows.Next() {
		var attrs string
		if err := rows.Scan(&attrs); err != nil {
			return nil, fmt.Errorf("scan row from %s: %w", table, err)
		}
		item, err := decodeItem(attrs)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows from %s: %w", table, err)
	}
	return items, nil
}

// decodeItem keeps numbers as json.Number so numeric attributes round-trip
// as decimal strings rather than lossy floats.
func decodeItem(attrs string) (Item, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(attrs)))
	dec.UseNumber()

	var item Item
	if err := dec.Decode(&item); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	return item, nil
}
