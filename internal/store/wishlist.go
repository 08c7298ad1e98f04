package store

import (
	"database/sql"
	"sync"

	"chicchariot/internal/models"
	"chicchariot/internal/storage"

	"github.com/rs/zerolog/log"
)

// Wishlist is a set of saved catalog items, keyed by item id. No quantity,
// no ordering guarantees beyond insertion order.
type Wishlist struct {
	db   *sql.DB
	mu   sync.Mutex
	subs subscribers[[]models.CatalogItem]

	items []models.CatalogItem
}

func NewWishlist(db *sql.DB) (*Wishlist, error) {
	w := &Wishlist{db: db}

	if _, err := storage.Load(db, storage.KeyWishlistItems, &w.items); err != nil {
		return nil, err
	}

	return w, nil
}

func (w *Wishlist) Subscribe(fn func([]models.CatalogItem)) int {
	return w.subs.add(fn)
}

func (w *Wishlist) Unsubscribe(id int) {
	w.subs.remove(id)
}

// Add saves the item. Adding an item that is already present is a no-op.
func (w *Wishlist) Add(item models.CatalogItem) {
	w.mu.Lock()
	for _, existing := range w.items {
		if existing.ID == item.ID {
			w.mu.Unlock()
			return
		}
	}
	w.items = append(w.items, item)
	snapshot := w.commitLocked()
	w.mu.Unlock()

	w.subs.notify(snapshot)
}

func (w *Wishlist) Remove(id string) {
	w.mu.Lock()
	kept := w.items[:0]
	removed := false
	for _, item := range w.items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		w.mu.Unlock()
		return
	}
	w.items = kept
	snapshot := w.commitLocked()
	w.mu.Unlock()

	w.subs.notify(snapshot)
}

func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, item := range w.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

func (w *Wishlist) List() []models.CatalogItem {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Wishlist) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.items)
}

func (w *Wishlist) snapshotLocked() []models.CatalogItem {
	items := make([]models.CatalogItem, len(w.items))
	copy(items, w.items)
	return items
}

func (w *Wishlist) commitLocked() []models.CatalogItem {
	if err := storage.Save(w.db, storage.KeyWishlistItems, w.items); err != nil {
		log.Error().Err(err).Msg("failed to persist wishlist")
	}
	return w.snapshotLocked()
}
