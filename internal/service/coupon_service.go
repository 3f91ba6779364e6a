package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/healthybites-next/internal/constants"
	"github.com/healthybites-next/internal/models"
	"github.com/healthybites-next/internal/store"
)

type CouponService struct {
	store store.Store
}

func NewCouponService(st store.Store) *CouponService {
	return &CouponService{store: st}
}

// NormalizeCouponCode trims surrounding whitespace and uppercases, so
// shopper input compares case-insensitively against stored codes.
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Validate resolves a shopper-entered code against the current coupon
// list. Every call reads the document fresh so a coupon deactivated
// moments ago fails immediately. Unknown and inactive codes return the
// same error.
func (s *CouponService) Validate(ctx context.Context, code string) (*models.Coupon, error) {
	normalized := NormalizeCouponCode(code)
	if normalized == "" {
		return nil, ErrCouponInvalid
	}
	doc, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Coupons {
		if NormalizeCouponCode(doc.Coupons[i].Code) != normalized {
			continue
		}
		if !doc.Coupons[i].Active {
			return nil, ErrCouponInvalid
		}
		coupon := doc.Coupons[i]
		coupon.Code = normalized
		return &coupon, nil
	}
	return nil, ErrCouponInvalid
}

// ComputeDiscount returns the amount the coupon removes from the given
// lines. Only lines matching the coupon's scope contribute to the
// applicable base. A percentage coupon takes its share of the base
// exactly; a fixed coupon is capped at the base so a line never goes
// negative. No scope matches means no discount.
func ComputeDiscount(lines []models.CartLine, coupon *models.Coupon) decimal.Decimal {
	if coupon == nil || !coupon.Active {
		return decimal.Zero
	}
	applicable := decimal.Zero
	for i := range lines {
		if coupon.Scope.Matches(&lines[i]) {
			applicable = applicable.Add(lines[i].Total())
		}
	}
	if applicable.IsZero() {
		return decimal.Zero
	}
	switch coupon.DiscountType {
	case constants.DiscountTypePercentage:
		percent := coupon.DiscountValue.Decimal.Div(decimal.NewFromInt(100))
		return applicable.Mul(percent)
	case constants.DiscountTypeFixed:
		if coupon.DiscountValue.Decimal.GreaterThan(applicable) {
			return applicable
		}
		return coupon.DiscountValue.Decimal
	default:
		return decimal.Zero
	}
}
