package service

import (
	"github.com/shopspring/decimal"

	"github.com/healthybites-next/internal/constants"
	"github.com/healthybites-next/internal/models"
)

// Cart holds one pricing session: an ordered list of line items plus an
// optional applied coupon snapshot. It is not safe for concurrent use;
// each request builds its own cart.
type Cart struct {
	lines  []models.CartLine
	coupon *models.Coupon
}

func NewCart() *Cart {
	return &Cart{}
}

// clampQuantity truncates silently into the [1, 10] window.
func clampQuantity(qty int) int {
	if qty < constants.MinLineQuantity {
		return constants.MinLineQuantity
	}
	if qty > constants.MaxLineQuantity {
		return constants.MaxLineQuantity
	}
	return qty
}

func (c *Cart) findLine(lineKey string) int {
	for i := range c.lines {
		if c.lines[i].LineKey == lineKey {
			return i
		}
	}
	return -1
}

// AddItem appends a snapshot line for the product (and optional variant),
// or merges quantity into the existing line with the same key. The merged
// quantity never exceeds the per-line cap.
func (c *Cart) AddItem(product models.Product, variant *models.ProductVariant, qty int) {
	qty = clampQuantity(qty)
	lineKey := models.BuildLineKey(product.ID, variant)
	if i := c.findLine(lineKey); i >= 0 {
		merged := c.lines[i].Quantity + qty
		if merged > constants.MaxLineQuantity {
			merged = constants.MaxLineQuantity
		}
		c.lines[i].Quantity = merged
		return
	}
	line := models.CartLine{
		Product:  product,
		Quantity: qty,
		LineKey:  lineKey,
	}
	if variant != nil {
		v := *variant
		line.SelectedVariant = &v
	}
	c.lines = append(c.lines, line)
}

// UpdateQuantity sets the line's quantity; zero or negative removes the
// line. Unknown keys are ignored.
func (c *Cart) UpdateQuantity(lineKey string, qty int) {
	i := c.findLine(lineKey)
	if i < 0 {
		return
	}
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return
	}
	if qty > constants.MaxLineQuantity {
		qty = constants.MaxLineQuantity
	}
	c.lines[i].Quantity = qty
}

func (c *Cart) RemoveItem(lineKey string) {
	if i := c.findLine(lineKey); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// Clear drops every line and the applied coupon.
func (c *Cart) Clear() {
	c.lines = nil
	c.coupon = nil
}

func (c *Cart) Lines() []models.CartLine {
	return c.lines
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// ApplyCoupon stores a snapshot of the coupon; later catalog edits do not
// affect an already-applied coupon.
func (c *Cart) ApplyCoupon(coupon models.Coupon) {
	snapshot := coupon
	c.coupon = &snapshot
}

func (c *Cart) RemoveCoupon() {
	c.coupon = nil
}

func (c *Cart) AppliedCoupon() *models.Coupon {
	return c.coupon
}

// Subtotal sums unit price times quantity over all lines, unrounded.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for i := range c.lines {
		total = total.Add(c.lines[i].Total())
	}
	return total
}

// Discount is the amount the applied coupon removes from the subtotal.
func (c *Cart) Discount() decimal.Decimal {
	return ComputeDiscount(c.lines, c.coupon)
}

// FinalTotal is subtotal minus discount, floored at zero. Shipping is
// added later during order assembly, not here.
func (c *Cart) FinalTotal() decimal.Decimal {
	total := c.Subtotal().Sub(c.Discount())
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}
