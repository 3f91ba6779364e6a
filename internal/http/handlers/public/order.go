package public

import (
	"github.com/gin-gonic/gin"

	"github.com/healthybites-next/internal/http/response"
	"github.com/healthybites-next/internal/models"
	"github.com/healthybites-next/internal/service"
)

// CustomerRequest is the contact half of the checkout form.
type CustomerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Mobile    string `json:"mobile" binding:"required"`
	Email     string `json:"email"`
}

// ShippingAddressRequest is the delivery half of the checkout form.
type ShippingAddressRequest struct {
	Street    string   `json:"street" binding:"required"`
	Apartment string   `json:"apartment"`
	City      string   `json:"city" binding:"required"`
	State     string   `json:"state"`
	ZipCode   string   `json:"zipCode"`
	Country   string   `json:"country"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// CreateOrderRequest places an order from priced cart lines.
type CreateOrderRequest struct {
	Items      []CartLineRequest      `json:"items" binding:"required"`
	CouponCode string                 `json:"couponCode"`
	Customer   CustomerRequest        `json:"customer" binding:"required"`
	Address    ShippingAddressRequest `json:"shippingAddress" binding:"required"`
}

var createOrderErrorRules = concatMappedHandlerErrors(cartPricingErrorRules, checkoutExtraErrorRules)

// CreateOrder prices the cart, persists the order and notifies the shop
// owner.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid order payload", err)
		return
	}
	ctx := c.Request.Context()

	cart, err := h.buildCart(ctx, req.Items, req.CouponCode)
	if err != nil {
		respondWithMappedError(c, err, createOrderErrorRules, response.CodeInternal, "order could not be placed")
		return
	}

	form := service.CheckoutForm{
		Customer: models.Customer{
			FirstName: req.Customer.FirstName,
			LastName:  req.Customer.LastName,
			Mobile:    req.Customer.Mobile,
			Email:     req.Customer.Email,
		},
		Address: models.ShippingAddress{
			Street:    req.Address.Street,
			Apartment: req.Address.Apartment,
			City:      req.Address.City,
			State:     req.Address.State,
			ZipCode:   req.Address.ZipCode,
			Country:   req.Address.Country,
			Latitude:  req.Address.Latitude,
			Longitude: req.Address.Longitude,
		},
	}

	result, err := h.OrderService.Checkout(ctx, cart, form)
	if err != nil {
		respondWithMappedError(c, err, createOrderErrorRules, response.CodeInternal, "order could not be placed")
		return
	}

	response.Success(c, gin.H{
		"order":     result.Order,
		"persisted": result.Persisted,
		"notified":  result.Notified,
	})
}
