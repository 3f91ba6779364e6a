package models

import "github.com/shopspring/decimal"

// CartLine is one product(+variant) and its quantity within a cart. The
// product fields are a snapshot taken at add time; later catalog edits do
// not reprice lines already in the cart.
type CartLine struct {
	Product         Product         `json:"product"`
	SelectedVariant *ProductVariant `json:"selectedVariant,omitempty"`
	Quantity        int             `json:"quantity"`
	LineKey         string          `json:"lineKey"`
}

// BuildLineKey derives the dedup key: productId, plus "-weight" when a
// variant is selected.
func BuildLineKey(productID string, variant *ProductVariant) string {
	if variant == nil {
		return productID
	}
	return productID + "-" + variant.Weight
}

// UnitPrice is the selected variant's price when present, else the
// product's base price.
func (l *CartLine) UnitPrice() decimal.Decimal {
	if l.SelectedVariant != nil {
		return l.SelectedVariant.Price.Decimal
	}
	return l.Product.BasePrice.Decimal
}

// SelectedWeight is the variant weight when one is selected, else the
// product's default weight.
func (l *CartLine) SelectedWeight() string {
	if l.SelectedVariant != nil {
		return l.SelectedVariant.Weight
	}
	return l.Product.DefaultWeight
}

// Total is unit price times quantity, unrounded.
func (l *CartLine) Total() decimal.Decimal {
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.Quantity)))
}
