package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/ports"
)

// ErrOrderStatusUpdateFailed indicates the order service rejected a status
// update. The shipment transition is aborted when this happens.
var ErrOrderStatusUpdateFailed = errors.New("order status update failed")

// OrderStatusUpdateError carries the order service response for a rejected
// status update so callers can surface the upstream reason to the client.
type OrderStatusUpdateError struct {
	OrderID    kernel.UUID
	Status     string
	StatusCode int
	Message    string
	Details    string
}

// NewOrderStatusUpdateError creates an error from a failed gateway result.
func NewOrderStatusUpdateError(orderID kernel.UUID, status string, result ports.GatewayResult) *OrderStatusUpdateError {
	return &OrderStatusUpdateError{
		OrderID:    orderID,
		Status:     status,
		StatusCode: result.StatusCode,
		Message:    result.Message,
		Details:    result.Details,
	}
}

func (e *OrderStatusUpdateError) Error() string {
	msg := fmt.Sprintf("%s: order %s, status %s, code %d",
		ErrOrderStatusUpdateFailed, e.OrderID, e.Status, e.StatusCode)
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	return msg
}

func (e *OrderStatusUpdateError) Unwrap() error {
	return ErrOrderStatusUpdateFailed
}
