package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/healthybites-next/internal/constants"
)

// ScopeKind tags which catalog dimension a coupon's discount applies to.
type ScopeKind string

// Scope kinds.
const (
	ScopeKindAll      ScopeKind = constants.ScopeAll
	ScopeKindCategory ScopeKind = constants.ScopeCategory
	ScopeKindProduct  ScopeKind = constants.ScopeProduct
	ScopeKindVariant  ScopeKind = constants.ScopeVariant
)

// CouponScope is a kind-tagged applicability scope. Exactly one target field
// is meaningful per kind; the wire form stays {applicability, target}.
type CouponScope struct {
	Kind          ScopeKind
	Category      string // set when Kind == category
	ProductID     string // set when Kind == product
	VariantWeight string // set when Kind == variant
}

// ScopeAll applies to every cart line.
func ScopeAll() CouponScope {
	return CouponScope{Kind: ScopeKindAll}
}

// ScopeForCategory applies to lines whose product carries the category.
func ScopeForCategory(name string) CouponScope {
	return CouponScope{Kind: ScopeKindCategory, Category: name}
}

// ScopeForProduct applies to lines of one product id.
func ScopeForProduct(id string) CouponScope {
	return CouponScope{Kind: ScopeKindProduct, ProductID: id}
}

// ScopeForVariant applies to any line whose selected weight matches,
// across products.
func ScopeForVariant(weight string) CouponScope {
	return CouponScope{Kind: ScopeKindVariant, VariantWeight: weight}
}

// ParseCouponScope builds a scope from the wire pair.
func ParseCouponScope(applicability, target string) (CouponScope, error) {
	target = strings.TrimSpace(target)
	switch ScopeKind(strings.ToLower(strings.TrimSpace(applicability))) {
	case ScopeKindAll:
		return ScopeAll(), nil
	case ScopeKindCategory:
		if target == "" {
			return CouponScope{}, fmt.Errorf("coupon scope %q requires a target", applicability)
		}
		return ScopeForCategory(target), nil
	case ScopeKindProduct:
		if target == "" {
			return CouponScope{}, fmt.Errorf("coupon scope %q requires a target", applicability)
		}
		return ScopeForProduct(target), nil
	case ScopeKindVariant:
		if target == "" {
			return CouponScope{}, fmt.Errorf("coupon scope %q requires a target", applicability)
		}
		return ScopeForVariant(target), nil
	default:
		return CouponScope{}, fmt.Errorf("unknown coupon applicability: %q", applicability)
	}
}

// Target returns the wire target for the active kind.
func (s CouponScope) Target() string {
	switch s.Kind {
	case ScopeKindCategory:
		return s.Category
	case ScopeKindProduct:
		return s.ProductID
	case ScopeKindVariant:
		return s.VariantWeight
	default:
		return ""
	}
}

// Matches reports whether a cart line falls under this scope.
func (s CouponScope) Matches(line *CartLine) bool {
	if line == nil {
		return false
	}
	switch s.Kind {
	case ScopeKindAll:
		return true
	case ScopeKindCategory:
		return line.Product.Category == s.Category
	case ScopeKindProduct:
		return line.Product.ID == s.ProductID
	case ScopeKindVariant:
		return line.SelectedWeight() == s.VariantWeight
	default:
		return false
	}
}

// Coupon is a promotional code. Codes are stored upper-cased and matched
// case-insensitively. A percentage DiscountValue is interpreted as 0-100 and
// is deliberately not clamped; the cart's own max(0, ...) floor is the only
// guard against over-discounting.
type Coupon struct {
	Code          string
	Description   string
	DiscountType  string // percentage / fixed
	DiscountValue Money
	Scope         CouponScope
	Active        bool
}

// couponWire is the persisted/transported shape of a coupon.
type couponWire struct {
	Code          string `json:"code"`
	Description   string `json:"description,omitempty"`
	DiscountType  string `json:"discountType"`
	DiscountValue Money  `json:"discountValue"`
	Applicability string `json:"applicability"`
	Target        string `json:"target,omitempty"`
	Active        bool   `json:"active"`
}

// MarshalJSON flattens the scope into {applicability, target}.
func (c Coupon) MarshalJSON() ([]byte, error) {
	return json.Marshal(couponWire{
		Code:          c.Code,
		Description:   c.Description,
		DiscountType:  c.DiscountType,
		DiscountValue: c.DiscountValue,
		Applicability: string(c.Scope.Kind),
		Target:        c.Scope.Target(),
		Active:        c.Active,
	})
}

// UnmarshalJSON rebuilds the tagged scope from the wire pair.
func (c *Coupon) UnmarshalJSON(b []byte) error {
	var wire couponWire
	if err := json.Unmarshal(b, &wire); err != nil {
		return err
	}
	scope, err := ParseCouponScope(wire.Applicability, wire.Target)
	if err != nil {
		return err
	}
	c.Code = strings.ToUpper(strings.TrimSpace(wire.Code))
	c.Description = wire.Description
	c.DiscountType = strings.ToLower(strings.TrimSpace(wire.DiscountType))
	c.DiscountValue = wire.DiscountValue
	c.Scope = scope
	c.Active = wire.Active
	return nil
}
