package service

import "errors"

// Sentinel errors shared across services; handlers map them to response
// codes. Coupon lookup failures deliberately collapse "not found" and
// "inactive" into one class so probing cannot enumerate dormant codes.
var (
	ErrCouponInvalid          = errors.New("invalid or inactive coupon")
	ErrProductNotFound        = errors.New("product not found")
	ErrVariantNotFound        = errors.New("product variant not found")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrInvalidCheckoutForm    = errors.New("invalid checkout form")
	ErrCheckoutFailed         = errors.New("order could not be placed")
	ErrOrderNotFound          = errors.New("order not found")
	ErrOrderStatusInvalid     = errors.New("invalid order status")
	ErrInvalidCatalogPayload  = errors.New("invalid catalog payload")
	ErrNotificationSendFailed = errors.New("notification send failed")
	ErrUploadInvalid          = errors.New("invalid upload")
)
