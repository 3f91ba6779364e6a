package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/healthybites-next/internal/config"
	"github.com/healthybites-next/internal/constants"
	"github.com/healthybites-next/internal/models"
)

type stubNotifier struct {
	err      error
	messages []string
}

func (s *stubNotifier) Send(_ context.Context, message string) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, message)
	return nil
}

func (s *stubNotifier) Configured() bool { return true }

func newTestOrderService(st *memStore, notifier Notifier) *OrderService {
	queueClient, _ := queueDisabled()
	return NewOrderService(st, notifier, queueClient, config.ShippingConfig{FlatRate: 150})
}

func checkoutForm() CheckoutForm {
	lat, lng := 12.9716, 77.5946
	return CheckoutForm{
		Customer: models.Customer{
			FirstName: "Asha",
			LastName:  "Rao",
			Mobile:    "9876543210",
			Email:     "asha@example.com",
		},
		Address: models.ShippingAddress{
			Street:    "12 MG Road",
			Apartment: "Flat 3B",
			City:      "Bengaluru",
			State:     "Karnataka",
			ZipCode:   "560001",
			Country:   "India",
			Latitude:  &lat,
			Longitude: &lng,
		},
	}
}

func cartWithDiscount() *Cart {
	cart := NewCart()
	cart.AddItem(testProduct("sathumava", 400, "Porridge Mixes"), nil, 2)
	cart.ApplyCoupon(models.Coupon{
		Code:          "SAVE10",
		DiscountType:  "percentage",
		DiscountValue: money(10),
		Scope:         models.ScopeForProduct("sathumava"),
		Active:        true,
	})
	return cart
}

func TestOrderAssembleTotals(t *testing.T) {
	svc := newTestOrderService(newMemStore(nil), &stubNotifier{})
	order := svc.Assemble(cartWithDiscount(), checkoutForm())

	if len(order.ID) != 8 || order.ID != strings.ToUpper(order.ID) {
		t.Fatalf("expected 8-char uppercase order id, got %q", order.ID)
	}
	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending status, got %q", order.Status)
	}
	if !order.Subtotal.Decimal.Equal(dec(800)) {
		t.Fatalf("expected subtotal 800, got %s", order.Subtotal)
	}
	if !order.Discount.Decimal.Equal(dec(80)) {
		t.Fatalf("expected discount 80, got %s", order.Discount)
	}
	if !order.Shipping.Decimal.Equal(dec(150)) {
		t.Fatalf("expected shipping 150, got %s", order.Shipping)
	}
	if !order.Total.Decimal.Equal(dec(870)) {
		t.Fatalf("expected total 870, got %s", order.Total)
	}
	if order.CouponCode != "SAVE10" {
		t.Fatalf("expected coupon code recorded, got %q", order.CouponCode)
	}
}

func TestOrderCheckoutPersistsAndNotifies(t *testing.T) {
	st := newMemStore(nil)
	notifier := &stubNotifier{}
	svc := newTestOrderService(st, notifier)

	result, err := svc.Checkout(context.Background(), cartWithDiscount(), checkoutForm())
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if !result.Persisted || !result.Notified {
		t.Fatalf("expected both halves to succeed, got %+v", result)
	}
	if len(st.doc.Orders) != 1 || st.doc.Orders[0].ID != result.Order.ID {
		t.Fatalf("expected order persisted at head of list")
	}
	if len(notifier.messages) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.messages))
	}
	msg := notifier.messages[0]
	for _, want := range []string{
		"*New Order!* (#" + result.Order.ID + ")",
		"Name: Asha Rao",
		"https://www.google.com/maps?q=12.9716,77.5946",
		"*Discount (SAVE10): -₹80.00*",
		"*Grand Total: ₹870.00*",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("notification missing %q:\n%s", want, msg)
		}
	}
}

func TestOrderCheckoutSucceedsWhenOnlyNotifyWorks(t *testing.T) {
	st := newMemStore(nil)
	st.writeErr = errors.New("store down")
	svc := newTestOrderService(st, &stubNotifier{})

	result, err := svc.Checkout(context.Background(), cartWithDiscount(), checkoutForm())
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if result.Persisted || !result.Notified {
		t.Fatalf("expected persisted=false notified=true, got %+v", result)
	}
}

func TestOrderCheckoutFailsWhenBothHalvesFail(t *testing.T) {
	st := newMemStore(nil)
	st.writeErr = errors.New("store down")
	svc := newTestOrderService(st, &stubNotifier{err: errors.New("telegram down")})

	_, err := svc.Checkout(context.Background(), cartWithDiscount(), checkoutForm())
	if !errors.Is(err, ErrCheckoutFailed) {
		t.Fatalf("expected ErrCheckoutFailed, got %v", err)
	}
}

func TestOrderCheckoutRejectsEmptyCart(t *testing.T) {
	svc := newTestOrderService(newMemStore(nil), &stubNotifier{})
	_, err := svc.Checkout(context.Background(), NewCart(), checkoutForm())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestOrderCheckoutValidatesForm(t *testing.T) {
	svc := newTestOrderService(newMemStore(nil), &stubNotifier{})
	form := checkoutForm()
	form.Customer.Mobile = "  "

	_, err := svc.Checkout(context.Background(), cartWithDiscount(), form)
	if !errors.Is(err, ErrInvalidCheckoutForm) {
		t.Fatalf("expected ErrInvalidCheckoutForm, got %v", err)
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	st := newMemStore(&models.Document{Orders: []models.Order{
		{ID: "ABCD1234", Status: constants.OrderStatusPending},
	}})
	svc := newTestOrderService(st, &stubNotifier{})

	order, err := svc.UpdateStatus(context.Background(), "ABCD1234", constants.OrderStatusShipped)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if order.Status != constants.OrderStatusShipped {
		t.Fatalf("expected shipped, got %q", order.Status)
	}
	if st.doc.Orders[0].Status != constants.OrderStatusShipped {
		t.Fatalf("expected status persisted")
	}
}

func TestOrderUpdateStatusErrors(t *testing.T) {
	st := newMemStore(&models.Document{Orders: []models.Order{
		{ID: "ABCD1234", Status: constants.OrderStatusPending},
	}})
	svc := newTestOrderService(st, &stubNotifier{})

	if _, err := svc.UpdateStatus(context.Background(), "ABCD1234", "returned"); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "MISSING1", constants.OrderStatusShipped); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderDelete(t *testing.T) {
	st := newMemStore(&models.Document{Orders: []models.Order{
		{ID: "AAAA1111"}, {ID: "BBBB2222"}, {ID: "CCCC3333"},
	}})
	svc := newTestOrderService(st, &stubNotifier{})

	removed, err := svc.Delete(context.Background(), []string{"AAAA1111", "CCCC3333", "NOPE0000"})
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if len(st.doc.Orders) != 1 || st.doc.Orders[0].ID != "BBBB2222" {
		t.Fatalf("unexpected surviving orders: %+v", st.doc.Orders)
	}

	if _, err := svc.Delete(context.Background(), []string{"NOPE0000"}); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound when nothing matches, got %v", err)
	}
}
