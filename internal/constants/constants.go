package constants

// Order status constants
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// IsKnownOrderStatus reports whether the status is one the admin panel
// may assign.
func IsKnownOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Coupon discount type constants
const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

// Coupon applicability constants
const (
	ScopeAll      = "all"
	ScopeCategory = "category"
	ScopeProduct  = "product"
	ScopeVariant  = "variant"
)

// Cart constraints
const (
	// MaxLineQuantity caps a single cart line; merges that would exceed it
	// are silently truncated.
	MaxLineQuantity = 10
	// MinLineQuantity is the floor a requested quantity is clamped to.
	MinLineQuantity = 1
)

// Store document constants
const (
	// DocumentKey is the redis key holding the whole catalog document.
	DocumentKey = "app_data"
)

// Currency display
const (
	CurrencySymbol = "₹"
)

// Queue names
const (
	QueueDefault = "default"
)

// Async task types
const (
	TaskOrderStatusNotify = "notification:order_status"
)
