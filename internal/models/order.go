package models

import "time"

// Customer is the contact block captured at checkout.
type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email,omitempty"`
}

// ShippingAddress is the delivery destination, with optional map
// coordinates picked on the checkout form.
type ShippingAddress struct {
	Street    string   `json:"street"`
	Apartment string   `json:"apartment,omitempty"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zipCode"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// OrderItem is a frozen line snapshot. Price and weight are copied at order
// time; catalog edits never alter historical orders.
type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     Money  `json:"price"`
	Quantity  int    `json:"quantity"`
	Weight    string `json:"weight"`
	Image     string `json:"image,omitempty"`
}

// Order is a persisted checkout. Owned by the catalog store once written;
// mutated only via status updates, removed only by explicit admin action.
type Order struct {
	ID              string          `json:"id"`
	Date            time.Time       `json:"date"`
	Status          string          `json:"status"`
	Customer        Customer        `json:"customer"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	Items           []OrderItem     `json:"items"`
	Subtotal        Money           `json:"subtotal"`
	Discount        Money           `json:"discount"`
	CouponCode      string          `json:"couponCode,omitempty"`
	Shipping        Money           `json:"shipping"`
	Total           Money           `json:"total"`
}
