package service

import (
	"context"
	"errors"
	"testing"

	"github.com/healthybites-next/internal/models"
)

func couponDoc(coupons ...models.Coupon) *models.Document {
	return &models.Document{Coupons: coupons}
}

func TestCouponValidateNormalizesCode(t *testing.T) {
	svc := NewCouponService(newMemStore(couponDoc(models.Coupon{
		Code:          "SAVE10",
		DiscountType:  "percentage",
		DiscountValue: money(10),
		Scope:         models.ScopeAll(),
		Active:        true,
	})))

	coupon, err := svc.Validate(context.Background(), "  save10  ")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if coupon.Code != "SAVE10" {
		t.Fatalf("expected normalized code SAVE10, got %q", coupon.Code)
	}
}

func TestCouponValidateUnknownAndInactiveAreIndistinguishable(t *testing.T) {
	svc := NewCouponService(newMemStore(couponDoc(models.Coupon{
		Code:          "DORMANT",
		DiscountType:  "fixed",
		DiscountValue: money(50),
		Scope:         models.ScopeAll(),
		Active:        false,
	})))

	_, unknownErr := svc.Validate(context.Background(), "NOSUCH")
	_, inactiveErr := svc.Validate(context.Background(), "DORMANT")

	if !errors.Is(unknownErr, ErrCouponInvalid) || !errors.Is(inactiveErr, ErrCouponInvalid) {
		t.Fatalf("expected ErrCouponInvalid for both, got %v and %v", unknownErr, inactiveErr)
	}
}

func TestCouponValidateReadsFreshEachAttempt(t *testing.T) {
	st := newMemStore(couponDoc(models.Coupon{
		Code:          "FLASH",
		DiscountType:  "percentage",
		DiscountValue: money(5),
		Scope:         models.ScopeAll(),
		Active:        true,
	}))
	svc := NewCouponService(st)

	if _, err := svc.Validate(context.Background(), "FLASH"); err != nil {
		t.Fatalf("first attempt: %v", err)
	}

	st.doc.Coupons[0].Active = false
	if _, err := svc.Validate(context.Background(), "FLASH"); !errors.Is(err, ErrCouponInvalid) {
		t.Fatalf("expected deactivation to take effect immediately, got %v", err)
	}
}

func TestComputeDiscountPercentageOnProductScope(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("sathumava", 400, "Porridge Mixes"), nil, 2)
	cart.AddItem(testProduct("rice-cereal", 250, "Porridge Mixes"), nil, 1)

	discount := ComputeDiscount(cart.Lines(), &models.Coupon{
		Code:          "SAVE10",
		DiscountType:  "percentage",
		DiscountValue: money(10),
		Scope:         models.ScopeForProduct("sathumava"),
		Active:        true,
	})
	if !discount.Equal(dec(80)) {
		t.Fatalf("expected discount 80, got %s", discount)
	}
}

func TestComputeDiscountFixedCappedAtApplicable(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("rice-cereal", 1100, "Porridge Mixes"), nil, 1)

	coupon := &models.Coupon{
		Code:          "BIG",
		DiscountType:  "fixed",
		DiscountValue: money(1000),
		Scope:         models.ScopeAll(),
		Active:        true,
	}
	if got := ComputeDiscount(cart.Lines(), coupon); !got.Equal(dec(1000)) {
		t.Fatalf("expected discount 1000, got %s", got)
	}

	coupon.DiscountValue = money(2000)
	if got := ComputeDiscount(cart.Lines(), coupon); !got.Equal(dec(1100)) {
		t.Fatalf("expected discount capped at 1100, got %s", got)
	}
}

func TestComputeDiscountZeroWhenScopeMatchesNothing(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("rice-cereal", 250, "Porridge Mixes"), nil, 2)

	discount := ComputeDiscount(cart.Lines(), &models.Coupon{
		Code:          "SNACKS5",
		DiscountType:  "percentage",
		DiscountValue: money(5),
		Scope:         models.ScopeForCategory("Healthy Snacks"),
		Active:        true,
	})
	if !discount.IsZero() {
		t.Fatalf("expected zero discount, got %s", discount)
	}
}

func TestComputeDiscountVariantScopeCrossProduct(t *testing.T) {
	first := testVariantProduct("sprouted-ragi", "Porridge Mixes",
		variant("200g", 300), variant("400g", 550))
	second := testVariantProduct("oats-mix", "Porridge Mixes",
		variant("200g", 280), variant("400g", 500))

	cart := NewCart()
	cart.AddItem(first, &first.Variants[0], 1)
	cart.AddItem(first, &first.Variants[1], 1)
	cart.AddItem(second, &second.Variants[0], 1)

	// All 200g lines qualify regardless of product: 300 + 280.
	discount := ComputeDiscount(cart.Lines(), &models.Coupon{
		Code:          "TRIAL10",
		DiscountType:  "percentage",
		DiscountValue: money(10),
		Scope:         models.ScopeForVariant("200g"),
		Active:        true,
	})
	if !discount.Equal(dec(58)) {
		t.Fatalf("expected discount 58, got %s", discount)
	}
}

func TestComputeDiscountIgnoresInactiveCoupon(t *testing.T) {
	cart := NewCart()
	cart.AddItem(testProduct("rice-cereal", 250, "Porridge Mixes"), nil, 1)

	discount := ComputeDiscount(cart.Lines(), &models.Coupon{
		Code:          "OLD",
		DiscountType:  "percentage",
		DiscountValue: money(50),
		Scope:         models.ScopeAll(),
		Active:        false,
	})
	if !discount.IsZero() {
		t.Fatalf("expected zero discount for inactive coupon, got %s", discount)
	}
}
