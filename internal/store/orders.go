package store

import (
	"database/sql"
	"strconv"
	"strings"
	"sync"
	"time"

	"chicchariot/internal/models"
	"chicchariot/internal/storage"

	"github.com/rs/zerolog/log"
)

// ShippingFee is the flat delivery charge applied to every order.
const ShippingFee = 40.0

// Orders holds the order history, most recent first. An order's line items
// and totals are frozen at creation; only the status changes afterwards.
//
// Placing an order does not validate stock. That is the checkout
// workflow's job, done before calling Place.
type Orders struct {
	db   *sql.DB
	mu   sync.Mutex
	subs subscribers[[]models.Order]

	orders []models.Order
	lastID int64
}

func NewOrders(db *sql.DB) (*Orders, error) {
	o := &Orders{db: db}

	if _, err := storage.Load(db, storage.KeyOrders, &o.orders); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Orders) Subscribe(fn func([]models.Order)) int {
	return o.subs.add(fn)
}

func (o *Orders) Unsubscribe(id int) {
	o.subs.remove(id)
}

// Place records a new order from the given cart lines and returns it. The
// lines are copied so later cart or catalog mutations cannot rewrite
// history.
func (o *Orders) Place(lines []models.CartLine, customer models.CustomerDetails, method models.PaymentMethod, proof string) models.Order {
	items := make([]models.CartLine, len(lines))
	copy(items, lines)

	var subtotal float64
	for _, line := range items {
		subtotal += line.Price * float64(line.Quantity)
	}

	o.mu.Lock()
	order := models.Order{
		ID:            o.nextIDLocked(),
		Customer:      customer,
		Items:         items,
		Subtotal:      subtotal,
		Shipping:      ShippingFee,
		Total:         subtotal + ShippingFee,
		Date:          time.Now(),
		Status:        models.StatusPending,
		PaymentMethod: method,
		PaymentProof:  proof,
	}
	o.orders = append([]models.Order{order}, o.orders...)
	snapshot := o.commitLocked()
	o.mu.Unlock()

	o.subs.notify(snapshot)
	return order
}

// SetStatus assigns one of the three order statuses. Transitions are not
// ordered; an admin may move an order back to Pending. Unknown order ids
// are a silent no-op.
func (o *Orders) SetStatus(id string, status models.OrderStatus) Result {
	if !status.Valid() {
		return fail("Unknown order status.")
	}

	o.mu.Lock()
	changed := false
	for i := range o.orders {
		if o.orders[i].ID == id {
			o.orders[i].Status = status
			changed = true
			break
		}
	}
	if !changed {
		o.mu.Unlock()
		return ok()
	}
	snapshot := o.commitLocked()
	o.mu.Unlock()

	o.subs.notify(snapshot)
	return ok()
}

// List returns orders most recent first. A non-empty query filters by
// case-insensitive substring match on the order id or the customer name.
func (o *Orders) List(query string) []models.Order {
	o.mu.Lock()
	defer o.mu.Unlock()

	if strings.TrimSpace(query) == "" {
		return o.snapshotLocked()
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	var matched []models.Order
	for _, order := range o.orders {
		if strings.Contains(strings.ToLower(order.ID), needle) ||
			strings.Contains(strings.ToLower(order.Customer.FullName), needle) {
			matched = append(matched, order)
		}
	}
	return matched
}

// OrderByID returns a copy of the order with the given id.
func (o *Orders) OrderByID(id string) (models.Order, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, order := range o.orders {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

// nextIDLocked derives a short human-displayable id from the current
// millisecond timestamp. The last issued value is bumped on collision so
// ids stay unique within a session even under rapid placement.
func (o *Orders) nextIDLocked() string {
	ms := time.Now().UnixMilli()
	if ms <= o.lastID {
		ms = o.lastID + 1
	}
	o.lastID = ms

	digits := strconv.FormatInt(ms, 10)
	return "#" + digits[len(digits)-6:]
}

func (o *Orders) snapshotLocked() []models.Order {
	orders := make([]models.Order, len(o.orders))
	copy(orders, o.orders)
	return orders
}

func (o *Orders) commitLocked() []models.Order {
	if err := storage.Save(o.db, storage.KeyOrders, o.orders); err != nil {
		log.Error().Err(err).Msg("failed to persist orders")
	}
	return o.snapshotLocked()
}
