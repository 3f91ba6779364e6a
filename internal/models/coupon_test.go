package models

import (
	"encoding/json"
	"testing"
)

func TestParseCouponScope(t *testing.T) {
	scope, err := ParseCouponScope(" All ", "")
	if err != nil {
		t.Fatalf("ParseCouponScope: %v", err)
	}
	if scope.Kind != ScopeKindAll {
		t.Fatalf("expected all kind, got %q", scope.Kind)
	}

	scope, err = ParseCouponScope("variant", "200g")
	if err != nil {
		t.Fatalf("ParseCouponScope: %v", err)
	}
	if scope.VariantWeight != "200g" || scope.Target() != "200g" {
		t.Fatalf("expected variant target 200g, got %+v", scope)
	}

	if _, err := ParseCouponScope("category", "  "); err == nil {
		t.Fatalf("expected error for scoped kind without target")
	}
	if _, err := ParseCouponScope("bogus", "x"); err == nil {
		t.Fatalf("expected error for unknown applicability")
	}
}

func TestCouponJSONRoundTripNormalizes(t *testing.T) {
	raw := []byte(`{"code":"save10","discountType":"Percentage","discountValue":10,"applicability":"product","target":"sathumava","active":true}`)

	var coupon Coupon
	if err := json.Unmarshal(raw, &coupon); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if coupon.Code != "SAVE10" {
		t.Fatalf("expected code upper-cased, got %q", coupon.Code)
	}
	if coupon.DiscountType != "percentage" {
		t.Fatalf("expected discount type lower-cased, got %q", coupon.DiscountType)
	}
	if coupon.Scope.Kind != ScopeKindProduct || coupon.Scope.ProductID != "sathumava" {
		t.Fatalf("unexpected scope: %+v", coupon.Scope)
	}

	out, err := json.Marshal(coupon)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var wire map[string]interface{}
	if err := json.Unmarshal(out, &wire); err != nil {
		t.Fatalf("unmarshal wire: %v", err)
	}
	if wire["applicability"] != "product" || wire["target"] != "sathumava" {
		t.Fatalf("scope did not flatten to applicability/target: %v", wire)
	}
}

func TestMoneyRoundsAtBoundaryOnly(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`"10.005"`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	// Internal value keeps full precision.
	if m.Decimal.String() != "10.005" {
		t.Fatalf("expected internal 10.005, got %s", m.Decimal)
	}
	out, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"10.01"` {
		t.Fatalf("expected boundary rounding to \"10.01\", got %s", out)
	}
}

func TestBuildLineKey(t *testing.T) {
	if got := BuildLineKey("ragi", nil); got != "ragi" {
		t.Fatalf("expected bare product key, got %q", got)
	}
	v := ProductVariant{Weight: "400g"}
	if got := BuildLineKey("ragi", &v); got != "ragi-400g" {
		t.Fatalf("expected variant-qualified key, got %q", got)
	}
}
