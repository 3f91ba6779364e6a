package public

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/healthybites-next/internal/http/response"
	"github.com/healthybites-next/internal/logger"
	"github.com/healthybites-next/internal/service"
)

// mappedHandlerError maps a service error to an API error response.
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondError(c *gin.Context, code int, msg string, err error) {
	if err != nil {
		logger.Warnw("public_request_failed",
			"path", c.FullPath(),
			"code", code,
			"error", err,
		)
	}
	response.Error(c, code, msg)
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var cartPricingErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeBadRequest, msg: "unknown product"},
	{target: service.ErrVariantNotFound, code: response.CodeBadRequest, msg: "unknown product variant"},
	{target: service.ErrCouponInvalid, code: response.CodeBadRequest, msg: "invalid or inactive coupon"},
}

var checkoutExtraErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, msg: "cart is empty"},
	{target: service.ErrInvalidCheckoutForm, code: response.CodeBadRequest, msg: "invalid checkout form"},
	{target: service.ErrCheckoutFailed, code: response.CodeInternal, msg: "order could not be placed"},
}
