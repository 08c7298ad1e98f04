package store

import (
	"fmt"

	"chicchariot/internal/models"
)

// Checkout composes the catalog, cart and order stores into the purchase
// workflow: validate every line against live stock, place the order,
// decrement stock per line, clear the cart.
//
// The four steps persist independently and there is no rollback; stock
// validation happens before any mutation, so the only cross-store
// inconsistency left is a concurrent stock change between validation and
// decrement. That matches the original single-user design.
type Checkout struct {
	catalog *Catalog
	cart    *Cart
	orders  *Orders
}

func NewCheckout(catalog *Catalog, cart *Cart, orders *Orders) *Checkout {
	return &Checkout{catalog: catalog, cart: cart, orders: orders}
}

// PlaceOrder runs the checkout workflow over the current cart. On any
// validation failure it aborts before mutating anything.
func (w *Checkout) PlaceOrder(customer models.CustomerDetails, method models.PaymentMethod, proof string) (models.Order, Result) {
	if !method.Valid() {
		return models.Order{}, fail("Unknown payment method.")
	}

	lines := w.cart.Lines()
	if len(lines) == 0 {
		return models.Order{}, fail("Your cart is empty.")
	}

	for _, line := range lines {
		stock, found := w.catalog.StockFor(line.ID)
		if !found {
			return models.Order{}, fail(fmt.Sprintf("%s is no longer available.", line.Name))
		}
		if line.Quantity > stock {
			return models.Order{}, fail(fmt.Sprintf("Only %d left in stock for %s.", stock, line.Name))
		}
	}

	order := w.orders.Place(lines, customer, method, proof)

	for _, line := range lines {
		w.catalog.DecrementStock(line.ID, line.Quantity)
	}

	w.cart.Clear()

	return order, ok()
}
