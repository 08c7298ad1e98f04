// Package storage persists store snapshots as JSON documents in a local
// SQLite database, one document per key.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Snapshot keys, one per store.
const (
	KeyCatalogItems      = "catalog_items"
	KeyCatalogCategories = "catalog_categories"
	KeyCartLines         = "cart_lines"
	KeyOrders            = "orders"
	KeyWishlistItems     = "wishlist_items"
	KeyReviews           = "reviews"
	KeyUsers             = "users"
	KeySession           = "session"
)

func Initialize(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func Migrate(db *sql.DB) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, migration := range migrations {
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	return nil
}

// Load reads the snapshot stored under key into v. It reports false with a
// nil error when no snapshot exists yet.
func Load(db *sql.DB, key string, v any) (bool, error) {
	var raw string
	err := db.QueryRow(`SELECT value FROM snapshots WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("failed to decode snapshot %s: %w", key, err)
	}

	return true, nil
}

// Save writes v as the full snapshot for key, replacing any previous value.
func Save(db *sql.DB, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot %s: %w", key, err)
	}

	query := `
		INSERT INTO snapshots (key, value)
		VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := db.Exec(query, key, string(raw)); err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}

	return nil
}

// Delete removes the snapshot for key. Deleting an absent key is a no-op.
func Delete(db *sql.DB, key string) error {
	if _, err := db.Exec(`DELETE FROM snapshots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete snapshot %s: %w", key, err)
	}
	return nil
}
