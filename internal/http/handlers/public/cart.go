package public

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/healthybites-next/internal/http/response"
	"github.com/healthybites-next/internal/models"
	"github.com/healthybites-next/internal/service"
)

// CartLineRequest identifies a product (and optionally one of its
// variants) plus the wanted quantity.
type CartLineRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Weight    string `json:"weight"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// PriceCartRequest prices a cart server-side against the live catalog.
type PriceCartRequest struct {
	Items      []CartLineRequest `json:"items" binding:"required"`
	CouponCode string            `json:"couponCode"`
}

// PricedLine is one priced cart row.
type PricedLine struct {
	LineKey   string       `json:"lineKey"`
	ProductID string       `json:"productId"`
	Name      string       `json:"name"`
	Weight    string       `json:"weight,omitempty"`
	UnitPrice models.Money `json:"unitPrice"`
	Quantity  int          `json:"quantity"`
	LineTotal models.Money `json:"lineTotal"`
}

// buildCart resolves the requested lines against the catalog so prices
// always come from the stored document, never from the client.
func (h *Handler) buildCart(ctx context.Context, items []CartLineRequest, couponCode string) (*service.Cart, error) {
	cart := service.NewCart()
	for _, item := range items {
		product, variant, err := h.CatalogService.FindProduct(ctx, item.ProductID, item.Weight)
		if err != nil {
			return nil, err
		}
		cart.AddItem(*product, variant, item.Quantity)
	}
	if strings.TrimSpace(couponCode) != "" {
		coupon, err := h.CouponService.Validate(ctx, couponCode)
		if err != nil {
			return nil, err
		}
		cart.ApplyCoupon(*coupon)
	}
	return cart, nil
}

func pricedLines(cart *service.Cart) []PricedLine {
	lines := cart.Lines()
	out := make([]PricedLine, 0, len(lines))
	for i := range lines {
		line := &lines[i]
		out = append(out, PricedLine{
			LineKey:   line.LineKey,
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Weight:    line.SelectedWeight(),
			UnitPrice: models.NewMoneyFromDecimal(line.UnitPrice()),
			Quantity:  line.Quantity,
			LineTotal: models.NewMoneyFromDecimal(line.Total()),
		})
	}
	return out
}

// PriceCart prices the submitted lines and optional coupon without
// placing an order.
func (h *Handler) PriceCart(c *gin.Context) {
	var req PriceCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "invalid cart payload", err)
		return
	}
	cart, err := h.buildCart(c.Request.Context(), req.Items, req.CouponCode)
	if err != nil {
		respondWithMappedError(c, err, cartPricingErrorRules, response.CodeInternal, "cart pricing failed")
		return
	}

	result := gin.H{
		"lines":    pricedLines(cart),
		"subtotal": models.NewMoneyFromDecimal(cart.Subtotal()),
		"discount": models.NewMoneyFromDecimal(cart.Discount()),
		"total":    models.NewMoneyFromDecimal(cart.FinalTotal()),
	}
	if coupon := cart.AppliedCoupon(); coupon != nil {
		result["coupon"] = coupon
	}
	response.Success(c, result)
}
