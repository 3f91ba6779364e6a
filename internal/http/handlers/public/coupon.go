package public

import (
	"github.com/gin-gonic/gin"

	"github.com/healthybites-next/internal/http/response"
)

// ValidateCouponRequest carries the shopper-entered code.
type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ValidateCoupon resolves a code against the live coupon list.
func (h *Handler) ValidateCoupon(c *gin.Context) {
	var req ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "coupon code is required", err)
		return
	}
	coupon, err := h.CouponService.Validate(c.Request.Context(), req.Code)
	if err != nil {
		respondWithMappedError(c, err, cartPricingErrorRules, response.CodeInternal, "coupon validation failed")
		return
	}
	response.Success(c, gin.H{"coupon": coupon})
}
