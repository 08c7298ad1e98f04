// Package store implements the storefront's domain-state layer: a set of
// independently-constructible stores that hold in-memory snapshots, persist
// every mutation to local storage, and notify subscribers with the new
// snapshot after each commit.
package store

import (
	"database/sql"
	"fmt"
)

// Stores bundles every domain store plus the checkout workflow that
// composes three of them.
type Stores struct {
	Catalog  *Catalog
	Cart     *Cart
	Orders   *Orders
	Wishlist *Wishlist
	Reviews  *Reviews
	Auth     *Auth
	Checkout *Checkout
}

// NewStores constructs and rehydrates every store against the given
// database.
func NewStores(db *sql.DB) (*Stores, error) {
	catalog, err := NewCatalog(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog store: %w", err)
	}

	cart, err := NewCart(db, catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cart store: %w", err)
	}

	orders, err := NewOrders(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize order store: %w", err)
	}

	wishlist, err := NewWishlist(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize wishlist store: %w", err)
	}

	reviews, err := NewReviews(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize review store: %w", err)
	}

	auth, err := NewAuth(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth store: %w", err)
	}

	return &Stores{
		Catalog:  catalog,
		Cart:     cart,
		Orders:   orders,
		Wishlist: wishlist,
		Reviews:  reviews,
		Auth:     auth,
		Checkout: NewCheckout(catalog, cart, orders),
	}, nil
}
