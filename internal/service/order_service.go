package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/healthybites-next/internal/config"
	"github.com/healthybites-next/internal/constants"
	"github.com/healthybites-next/internal/logger"
	"github.com/healthybites-next/internal/models"
	"github.com/healthybites-next/internal/queue"
	"github.com/healthybites-next/internal/store"
)

const (
	storeDisplayName = "Aaditya's Healthy Bites"

	orderIDLength   = 8
	orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Notifier delivers owner-facing messages.
type Notifier interface {
	Send(ctx context.Context, message string) error
	Configured() bool
}

// CheckoutForm is the shopper-supplied half of an order.
type CheckoutForm struct {
	Customer models.Customer
	Address  models.ShippingAddress
}

// CheckoutResult reports which half of checkout succeeded. Checkout is
// considered placed when at least one of the two did.
type CheckoutResult struct {
	Order     models.Order
	Persisted bool
	Notified  bool
}

type OrderService struct {
	store    store.Store
	notifier Notifier
	queue    *queue.Client
	shipping decimal.Decimal
}

func NewOrderService(st store.Store, notifier Notifier, queueClient *queue.Client, cfg config.ShippingConfig) *OrderService {
	return &OrderService{
		store:    st,
		notifier: notifier,
		queue:    queueClient,
		shipping: decimal.NewFromFloat(cfg.FlatRate),
	}
}

// newOrderID returns an 8-character uppercase alphanumeric id. Collisions
// are tolerated: the id space is large relative to a single shop's order
// volume and orders are only ever prepended, never upserted by id.
func newOrderID() string {
	buf := make([]byte, orderIDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is effectively unheard of; fall back to a
		// timestamp so checkout still completes.
		return strings.ToUpper(fmt.Sprintf("%08X", time.Now().UnixNano()&0xFFFFFFFF))
	}
	for i := range buf {
		buf[i] = orderIDAlphabet[int(buf[i])%len(orderIDAlphabet)]
	}
	return string(buf)
}

// Assemble freezes the cart into an order: item snapshots, totals, the
// flat shipping fee, and a fresh id. It does not persist anything.
func (s *OrderService) Assemble(cart *Cart, form CheckoutForm) models.Order {
	lines := cart.Lines()
	items := make([]models.OrderItem, 0, len(lines))
	for i := range lines {
		line := &lines[i]
		items = append(items, models.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     models.NewMoneyFromDecimal(line.UnitPrice()),
			Quantity:  line.Quantity,
			Weight:    line.SelectedWeight(),
			Image:     line.Product.Image,
		})
	}

	order := models.Order{
		ID:              newOrderID(),
		Date:            time.Now().UTC(),
		Status:          constants.OrderStatusPending,
		Customer:        form.Customer,
		ShippingAddress: form.Address,
		Items:           items,
		Subtotal:        models.NewMoneyFromDecimal(cart.Subtotal()),
		Discount:        models.NewMoneyFromDecimal(cart.Discount()),
		Shipping:        models.NewMoneyFromDecimal(s.shipping),
		Total:           models.NewMoneyFromDecimal(cart.FinalTotal().Add(s.shipping)),
	}
	if coupon := cart.AppliedCoupon(); coupon != nil {
		order.CouponCode = coupon.Code
	}
	return order
}

func formatAmount(value decimal.Decimal) string {
	return constants.CurrencySymbol + value.Round(2).StringFixed(2)
}

// FormatOrderMessage renders the Telegram Markdown notification for a new
// order.
func FormatOrderMessage(order *models.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌿 *%s*\n", storeDisplayName)
	fmt.Fprintf(&b, "*New Order!* (#%s)\n", order.ID)
	fmt.Fprintf(&b, "*Date:* %s\n\n", order.Date.Format("02 Jan 2006 15:04"))

	b.WriteString("*Contact Info:*\n")
	fmt.Fprintf(&b, "Name: %s %s\n", order.Customer.FirstName, order.Customer.LastName)
	fmt.Fprintf(&b, "Mobile: %s\n", order.Customer.Mobile)
	if order.Customer.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", order.Customer.Email)
	}

	b.WriteString("\n*Shipping Address:*\n")
	addr := order.ShippingAddress
	fmt.Fprintf(&b, "%s\n", addr.Street)
	if addr.Apartment != "" {
		fmt.Fprintf(&b, "%s\n", addr.Apartment)
	}
	fmt.Fprintf(&b, "%s, %s - %s\n", addr.City, addr.State, addr.ZipCode)
	if addr.Country != "" {
		fmt.Fprintf(&b, "%s\n", addr.Country)
	}
	if addr.Latitude != nil && addr.Longitude != nil {
		fmt.Fprintf(&b, "Location: https://www.google.com/maps?q=%v,%v\n", *addr.Latitude, *addr.Longitude)
	}

	b.WriteString("\n*Order Items:*\n")
	for i := range order.Items {
		item := &order.Items[i]
		lineTotal := item.Price.Decimal.Mul(decimal.NewFromInt(int64(item.Quantity)))
		if item.Weight != "" {
			fmt.Fprintf(&b, "- %s [%s] (x%d) - %s\n", item.Name, item.Weight, item.Quantity, formatAmount(lineTotal))
		} else {
			fmt.Fprintf(&b, "- %s (x%d) - %s\n", item.Name, item.Quantity, formatAmount(lineTotal))
		}
	}

	fmt.Fprintf(&b, "\n*Subtotal: %s*\n", formatAmount(order.Subtotal.Decimal))
	if order.Discount.Decimal.IsPositive() {
		fmt.Fprintf(&b, "*Discount (%s): -%s*\n", order.CouponCode, formatAmount(order.Discount.Decimal))
	}
	fmt.Fprintf(&b, "*Shipping: %s*\n", formatAmount(order.Shipping.Decimal))
	fmt.Fprintf(&b, "*Grand Total: %s*", formatAmount(order.Total.Decimal))
	return b.String()
}

// FormatStatusMessage renders the Telegram message sent when an order
// moves to a new status.
func FormatStatusMessage(order *models.Order, status string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🌿 *%s*\n", storeDisplayName)
	fmt.Fprintf(&b, "*Order Update* (#%s)\n", order.ID)
	fmt.Fprintf(&b, "Status: *%s*\n", status)
	fmt.Fprintf(&b, "Customer: %s %s", order.Customer.FirstName, order.Customer.LastName)
	return b.String()
}

func validateCheckoutForm(form CheckoutForm) error {
	switch {
	case strings.TrimSpace(form.Customer.FirstName) == "":
		return fmt.Errorf("%w: first name is required", ErrInvalidCheckoutForm)
	case strings.TrimSpace(form.Customer.Mobile) == "":
		return fmt.Errorf("%w: mobile is required", ErrInvalidCheckoutForm)
	case strings.TrimSpace(form.Address.Street) == "":
		return fmt.Errorf("%w: street is required", ErrInvalidCheckoutForm)
	case strings.TrimSpace(form.Address.City) == "":
		return fmt.Errorf("%w: city is required", ErrInvalidCheckoutForm)
	}
	return nil
}

// Checkout assembles the order, persists it, then notifies the owner.
// Persistence and notification fail independently; only when both fail is
// the checkout rejected.
func (s *OrderService) Checkout(ctx context.Context, cart *Cart, form CheckoutForm) (*CheckoutResult, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	if err := validateCheckoutForm(form); err != nil {
		return nil, err
	}

	order := s.Assemble(cart, form)

	persistErr := s.persist(ctx, order)
	if persistErr != nil {
		logger.Errorw("order_persist_failed", "order_id", order.ID, "error", persistErr)
	}

	notifyErr := s.notifier.Send(ctx, FormatOrderMessage(&order))
	if notifyErr != nil {
		logger.Errorw("order_notify_failed", "order_id", order.ID, "error", notifyErr)
	}

	if persistErr != nil && notifyErr != nil {
		return nil, ErrCheckoutFailed
	}

	logger.Infow("order_placed",
		"order_id", order.ID,
		"total", order.Total.String(),
		"persisted", persistErr == nil,
		"notified", notifyErr == nil,
	)
	return &CheckoutResult{
		Order:     order,
		Persisted: persistErr == nil,
		Notified:  notifyErr == nil,
	}, nil
}

// persist prepends the order so the admin list stays newest-first.
func (s *OrderService) persist(ctx context.Context, order models.Order) error {
	doc, err := s.store.ReadAll(ctx)
	if err != nil {
		return err
	}
	doc.Orders = append([]models.Order{order}, doc.Orders...)
	return s.store.WriteAll(ctx, doc)
}

func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	doc, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Orders, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*models.Order, error) {
	doc, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			order := doc.Orders[i]
			return &order, nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateStatus moves an order to any known status and queues an owner
// notification about the change.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status string) (*models.Order, error) {
	if !constants.IsKnownOrderStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrOrderStatusInvalid, status)
	}
	doc, err := s.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	var updated *models.Order
	for i := range doc.Orders {
		if doc.Orders[i].ID == id {
			doc.Orders[i].Status = status
			updated = &doc.Orders[i]
			break
		}
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}
	if err := s.store.WriteAll(ctx, doc); err != nil {
		return nil, err
	}
	if err := s.queue.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
		OrderID: id,
		Status:  status,
	}); err != nil {
		logger.Warnw("order_status_notify_enqueue_failed", "order_id", id, "error", err)
	}
	order := *updated
	return &order, nil
}

// Delete removes the orders with the given ids. At least one id has to
// match or the caller gets a not-found error.
func (s *OrderService) Delete(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, fmt.Errorf("%w: no order ids given", ErrOrderNotFound)
	}
	doc, err := s.store.ReadAll(ctx)
	if err != nil {
		return 0, err
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	kept := doc.Orders[:0]
	removed := 0
	for i := range doc.Orders {
		if _, ok := wanted[doc.Orders[i].ID]; ok {
			removed++
			continue
		}
		kept = append(kept, doc.Orders[i])
	}
	if removed == 0 {
		return 0, ErrOrderNotFound
	}
	doc.Orders = kept
	if err := s.store.WriteAll(ctx, doc); err != nil {
		return 0, err
	}
	return removed, nil
}
