package admin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/healthybites-next/internal/http/response"
	"github.com/healthybites-next/internal/service"
)

// ListOrders returns every stored order, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.OrderService.List(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "orders unavailable", err)
		return
	}
	response.Success(c, gin.H{"orders": orders, "total": len(orders)})
}

// UpdateOrderStatusRequest moves an order to a new status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "status is required", err)
		return
	}
	order, err := h.OrderService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "invalid order status", nil)
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "order not found", nil)
		default:
			respondError(c, response.CodeInternal, "order update failed", err)
		}
		return
	}
	response.Success(c, gin.H{"order": order})
}

// DeleteOrdersRequest names the orders to remove.
type DeleteOrdersRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

func (h *Handler) DeleteOrders(c *gin.Context) {
	var req DeleteOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "order ids are required", err)
		return
	}
	removed, err := h.OrderService.Delete(c.Request.Context(), req.IDs)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "no matching orders", nil)
			return
		}
		respondError(c, response.CodeInternal, "order delete failed", err)
		return
	}
	response.Success(c, gin.H{"removed": removed})
}
