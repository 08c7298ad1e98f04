package store

import (
	"database/sql"
	"sync"

	"chicchariot/internal/models"
	"chicchariot/internal/storage"

	"github.com/rs/zerolog/log"
)

// StockLookup reports the live stock for an item id. The catalog store
// satisfies it; cart mutations re-clamp against live stock rather than the
// stock recorded in a line's snapshot.
type StockLookup interface {
	StockFor(id string) (int, bool)
}

// Cart holds the open shopping cart. A line's quantity never exceeds the
// referenced item's live stock, and a line at quantity zero is removed
// rather than kept.
type Cart struct {
	db    *sql.DB
	stock StockLookup
	mu    sync.Mutex
	subs  subscribers[[]models.CartLine]

	lines []models.CartLine
}

func NewCart(db *sql.DB, stock StockLookup) (*Cart, error) {
	c := &Cart{db: db, stock: stock}

	if _, err := storage.Load(db, storage.KeyCartLines, &c.lines); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Cart) Subscribe(fn func([]models.CartLine)) int {
	return c.subs.add(fn)
}

func (c *Cart) Unsubscribe(id int) {
	c.subs.remove(id)
}

// Lines returns a copy of the current cart lines.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Count is the sum of line quantities.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Subtotal is the sum of price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// AddToCart adds one unit of item, clamped to live stock. Adding an item
// with no stock is a no-op; an existing line has its quantity incremented.
func (c *Cart) AddToCart(item models.CatalogItem) {
	stock := c.liveStock(item.ID, item.Stock)
	if stock <= 0 {
		return
	}

	c.mu.Lock()
	existing := false
	for i := range c.lines {
		if c.lines[i].ID == item.ID {
			existing = true
			if c.lines[i].Quantity < stock {
				c.lines[i].Quantity++
			} else {
				c.lines[i].Quantity = stock
			}
			break
		}
	}
	if !existing {
		c.lines = append(c.lines, models.CartLine{CatalogItem: item, Quantity: 1})
	}
	snapshot := c.commitLocked()
	c.mu.Unlock()

	c.subs.notify(snapshot)
}

// UpdateQuantity sets the quantity of the line with the given id, clamped
// to live stock. A quantity of zero or less removes the line. Unknown ids
// are a silent no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveFromCart(id)
		return
	}

	c.mu.Lock()
	updated := false
	for i := range c.lines {
		if c.lines[i].ID == id {
			stock := c.liveStock(id, c.lines[i].Stock)
			if quantity > stock {
				quantity = stock
			}
			if quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			} else {
				c.lines[i].Quantity = quantity
			}
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

func (c *Cart) RemoveFromCart(id string) {
	c.mu.Lock()
	kept := c.lines[:0]
	removed := false
	for _, line := range c.lines {
		if line.ID == id {
			removed = true
			continue
		}
		kept = append(kept, line)
	}
	if !removed {
		c.mu.Unlock()
		return
	}
	c.lines = kept
	snapshot := c.commitLocked()
	c.mu.Unlock()

	c.subs.notify(snapshot)
}

func (c *Cart) Clear() {
	c.mu.Lock()
	c.lines = nil
	snapshot := c.commitLocked()
	c.mu.Unlock()

	c.subs.notify(snapshot)
}

// liveStock consults the catalog for current stock, falling back to the
// stock recorded in the line snapshot when the item no longer exists.
func (c *Cart) liveStock(id string, fallback int) int {
	if c.stock != nil {
		if stock, found := c.stock.StockFor(id); found {
			return stock
		}
	}
	return fallback
}

func (c *Cart) snapshotLocked() []models.CartLine {
	lines := make([]models.CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) commitLocked() []models.CartLine {
	if err := storage.Save(c.db, storage.KeyCartLines, c.lines); err != nil {
		log.Error().Err(err).Msg("failed to persist cart")
	}
	return c.snapshotLocked()
}
