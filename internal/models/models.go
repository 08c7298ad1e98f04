package models

import (
	"time"
)

// CatalogItem is a product in the storefront catalog. Category holds the
// category name directly; deleting a category leaves items pointing at the
// old name on purpose.
type CatalogItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	ImageURL    string  `json:"imageURL"`
	Category    string  `json:"category"`
}

// CartLine is a catalog item snapshot paired with a purchase quantity.
type CartLine struct {
	CatalogItem
	Quantity int `json:"quantity"`
}

type CustomerDetails struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusOutForDelivery, StatusDelivered:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentPhonePay       PaymentMethod = "Phone Pay"
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentPhonePay || m == PaymentCashOnDelivery
}

// Order is a finalized purchase. Items are frozen snapshots of the cart
// lines at purchase time; only Status may change after creation.
type Order struct {
	ID            string          `json:"id"`
	Customer      CustomerDetails `json:"customer"`
	Items         []CartLine      `json:"items"`
	Subtotal      float64         `json:"subtotal"`
	Shipping      float64         `json:"shipping"`
	Total         float64         `json:"total"`
	Date          time.Time       `json:"date"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	PaymentProof  string          `json:"paymentProof,omitempty"`
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCustomer Role = "user"
)

type Provider string

const (
	ProviderCredentials Provider = "credentials"
	ProviderGoogle      Provider = "google"
)

// User is an account in the local user directory. Password is empty for
// externally-authenticated identities. Passwords are stored verbatim; this
// is a local sample-data app, not a security boundary.
type User struct {
	ID              string           `json:"id"`
	Username        string           `json:"username"`
	Password        string           `json:"password,omitempty"`
	Role            Role             `json:"role"`
	Provider        Provider         `json:"provider,omitempty"`
	CustomerDetails *CustomerDetails `json:"customerDetails,omitempty"`
}

type Review struct {
	ID       string    `json:"id"`
	ItemID   string    `json:"itemId"`
	UserID   string    `json:"userId"`
	UserName string    `json:"userName"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Date     time.Time `json:"date"`
}
