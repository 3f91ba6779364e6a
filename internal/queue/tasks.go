package queue

import (
	"encoding/json"

	"github.com/hibiken/asynq"

	"github.com/healthybites-next/internal/constants"
)

const (
	// TaskOrderStatusNotify tells the shop owner an order changed status.
	TaskOrderStatusNotify = constants.TaskOrderStatusNotify
)

// OrderStatusNotifyPayload carries the order id and the status it moved to.
type OrderStatusNotifyPayload struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

func NewOrderStatusNotifyTask(payload OrderStatusNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusNotify, body), nil
}
