package store

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"chicchariot/internal/models"
	"chicchariot/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CatalogSnapshot is the full observable state of the catalog store.
type CatalogSnapshot struct {
	Items      []models.CatalogItem `json:"items"`
	Categories []string             `json:"categories"`
}

// Catalog holds the product list and the category list. Every mutation
// persists both snapshots and notifies subscribers.
type Catalog struct {
	db   *sql.DB
	mu   sync.Mutex
	subs subscribers[CatalogSnapshot]

	items      []models.CatalogItem
	categories []string
}

// NewCatalog rehydrates the catalog from storage, falling back to the seed
// dataset when no snapshot has been persisted yet.
func NewCatalog(db *sql.DB) (*Catalog, error) {
	c := &Catalog{db: db}

	itemsFound, err := storage.Load(db, storage.KeyCatalogItems, &c.items)
	if err != nil {
		return nil, err
	}
	categoriesFound, err := storage.Load(db, storage.KeyCatalogCategories, &c.categories)
	if err != nil {
		return nil, err
	}

	if !itemsFound || !categoriesFound {
		c.items = seedItems()
		c.categories = seedCategories()
		c.persistLocked()
	}

	return c, nil
}

// Subscribe registers fn to be called with the new snapshot after every
// committed mutation. The returned handle is passed to Unsubscribe.
func (c *Catalog) Subscribe(fn func(CatalogSnapshot)) int {
	return c.subs.add(fn)
}

func (c *Catalog) Unsubscribe(id int) {
	c.subs.remove(id)
}

// List returns the current items and categories.
func (c *Catalog) List() CatalogSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// ItemByID returns a copy of the item with the given id.
func (c *Catalog) ItemByID(id string) (models.CatalogItem, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.CatalogItem{}, false
}

// StockFor reports the live stock of the item with the given id.
func (c *Catalog) StockFor(id string) (int, bool) {
	item, found := c.ItemByID(id)
	if !found {
		return 0, false
	}
	return item.Stock, true
}

// AddItem inserts a new item, assigning it a fresh id.
func (c *Catalog) AddItem(item models.CatalogItem) models.CatalogItem {
	item.ID = uuid.NewString()
	if item.Stock < 0 {
		item.Stock = 0
	}

	c.mu.Lock()
	c.items = append(c.items, item)
	snapshot := c.commitLocked()
	c.mu.Unlock()

	c.subs.notify(snapshot)
	return item
}

// UpdateItem replaces the stored item with the same id. Unknown ids are a
// silent no-op.
func (c *Catalog) UpdateItem(item models.CatalogItem) {
	if item.Stock < 0 {
		item.Stock = 0
	}

	c.mu.Lock()
	updated := false
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = item
			updated = true
			break
		}
	}
	if !updated {
		c.mu.Unlock()
		return
	}
	snapshot := c.commitLocked()
	c.mu.Unlock()

	c.subs.notify(snapshot)
}

// DeleteItem removes the item with the given id. Unknown ids are a silent
// no-op, so deleting twice is the same as deleting once. Cart and wishlist
// references to a deleted item are left for their stores to filter.
func (c *Catalog) DeleteItem(id string) {
	c.mu.Lock()
	kept := c.items[:0]
	removed := false
	for _, item := range c.items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if !removed {
		c.mu.Unlock()
		return
	}
	c.items = kept
	snapshot := c.commitLocked()
	c.mu.Unlock()

	c.subs.notify(snapshot)
}

// DecrementStock reduces the stock of the item by quantity, clamping at
// zero. It is called by the checkout workflow only; reads never mutate
// stock.
func (c *Catalog) DecrementStock(id string, quantity int) {
	c.mu.Lock()
	adjusted := false
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Stock -= quantity
			if c.items[i].Stock < 0 {
				c.items[i].Stock = 0
			}
			adjusted = true
			break
		}
	}
	if !adjusted {
		c.mu.Unlock()
		return
	}
	snapshot := c.commitLocked()
	c.mu.Unlock()

	c.subs.notify(snapshot)
}

// AddCategory appends a new category name. Names are unique ignoring case.
func (c *Catalog) AddCategory(name string) Result {
	name = strings.TrimSpace(name)
	if name == "" {
		return fail("Category name cannot be empty.")
	}

	c.mu.Lock()
	for _, existing := range c.categories {
		if strings.EqualFold(existing, name) {
			c.mu.Unlock()
			return fail(fmt.Sprintf("Category %q already exists.", name))
		}
	}
	c.categories = append(c.categories, name)
	snapshot := c.commitLocked()
	c.mu.Unlock()

	c.subs.notify(snapshot)
	return ok()
}

// RenameCategory renames oldName to newName and rewrites the category of
// every item tagged with oldName.
func (c *Catalog) RenameCategory(oldName, newName string) Result {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fail("Category name cannot be empty.")
	}

	c.mu.Lock()
	for _, existing := range c.categories {
		if strings.EqualFold(existing, newName) && !strings.EqualFold(existing, oldName) {
			c.mu.Unlock()
			return fail(fmt.Sprintf("Category %q already exists.", newName))
		}
	}

	for i, existing := range c.categories {
		if existing == oldName {
			c.categories[i] = newName
		}
	}
	for i := range c.items {
		if c.items[i].Category == oldName {
			c.items[i].Category = newName
		}
	}
	snapshot := c.commitLocked()
	c.mu.Unlock()

	c.subs.notify(snapshot)
	return ok()
}

// DeleteCategory removes the category from the category list only. Items
// tagged with it keep their now-dangling category name; that is the
// intended behavior, not an oversight.
func (c *Catalog) DeleteCategory(name string) {
	c.mu.Lock()
	kept := c.categories[:0]
	removed := false
	for _, existing := range c.categories {
		if existing == name {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}
	if !removed {
		c.mu.Unlock()
		return
	}
	c.categories = kept
	snapshot := c.commitLocked()
	c.mu.Unlock()

	c.subs.notify(snapshot)
}

func (c *Catalog) snapshotLocked() CatalogSnapshot {
	items := make([]models.CatalogItem, len(c.items))
	copy(items, c.items)
	categories := make([]string, len(c.categories))
	copy(categories, c.categories)
	return CatalogSnapshot{Items: items, Categories: categories}
}

func (c *Catalog) persistLocked() {
	if err := storage.Save(c.db, storage.KeyCatalogItems, c.items); err != nil {
		log.Error().Err(err).Msg("failed to persist catalog items")
	}
	if err := storage.Save(c.db, storage.KeyCatalogCategories, c.categories); err != nil {
		log.Error().Err(err).Msg("failed to persist categories")
	}
}

func (c *Catalog) commitLocked() CatalogSnapshot {
	c.persistLocked()
	return c.snapshotLocked()
}
