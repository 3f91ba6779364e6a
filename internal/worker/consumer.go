package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/hibiken/asynq"

	"github.com/healthybites-next/internal/logger"
	"github.com/healthybites-next/internal/provider"
	"github.com/healthybites-next/internal/queue"
	"github.com/healthybites-next/internal/service"
)

// Consumer handles background tasks against the shared container.
type Consumer struct {
	*provider.Container
}

func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusNotify, c.handleOrderStatusNotify)
}

func (c *Consumer) handleOrderStatusNotify(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == "" {
		logger.Debugw("worker_order_status_notify_skip_invalid_payload")
		return nil
	}
	order, err := c.OrderService.GetByID(ctx, payload.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			logger.Debugw("worker_order_status_notify_skip_order_not_found", "order_id", payload.OrderID)
			return nil
		}
		logger.Warnw("worker_order_status_notify_fetch_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	status := payload.Status
	if status == "" {
		status = order.Status
	}
	message := service.FormatStatusMessage(order, status)
	if err := c.NotificationService.Send(ctx, message); err != nil {
		logger.Warnw("worker_order_status_notify_send_failed",
			"order_id", payload.OrderID,
			"status", status,
			"error", err,
		)
		return err
	}
	return nil
}
