package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"
)

// TransitionShipmentStatusCommandHandler orchestrates a shipment status
// transition. The transition is checked against the lifecycle rules first,
// then the order service is notified when the target status maps to an order
// status, and only after a successful notification is the new status
// persisted. A rejected notification aborts the whole transition.
//
// Example:
//
//	handler := NewTransitionShipmentStatusCommandHandler(uowFactory, gateway, shipment.DefaultOrderStatusMap())
//	cmd, _ := NewTransitionShipmentStatusCommand(shipmentID, "Cancelled")
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, shipment.ErrInvalidStatusTransition):
//	    log.Println("Transition not allowed")
//	case errors.Is(err, ErrOrderStatusUpdateFailed):
//	    log.Println("Order service rejected the update")
//	case err != nil:
//	    log.Printf("Transition failed: %v", err)
//	}
type TransitionShipmentStatusCommandHandler struct {
	uowFactory    ShipmentUoWFactory
	orderGateway  ports.OrderStatusGateway
	orderStatuses shipment.OrderStatusMap
}

// NewTransitionShipmentStatusCommandHandler creates a handler for status
// transitions. orderStatuses decides which shipment statuses are propagated
// to the order service and under which names.
func NewTransitionShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory,
	orderGateway ports.OrderStatusGateway,
	orderStatuses shipment.OrderStatusMap,
) TransitionShipmentStatusCommandHandler {
	return TransitionShipmentStatusCommandHandler{
		uowFactory:    uowFactory,
		orderGateway:  orderGateway,
		orderStatuses: orderStatuses,
	}
}

// Handle processes the status transition command.
// The sequence is strict: load the shipment, check the transition against the
// lifecycle rules, notify the order service if the target status requires it,
// then apply and persist the transition. Any failure along the way leaves the
// stored shipment untouched.
func (h *TransitionShipmentStatusCommandHandler) Handle(ctx context.Context, cmd TransitionShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	s, err := shipmentRepo.Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	next := cmd.Status()
	if !s.Status().CanTransitionTo(next) {
		return shipment.NewInvalidTransitionError(s.Status(), next)
	}

	if orderStatus, ok := h.orderStatuses.OrderStatus(next); ok {
		result, gatewayErr := h.orderGateway.UpdateOrderStatus(ctx, s.OrderID(), orderStatus)
		if gatewayErr != nil {
			return gatewayErr
		}
		if !result.Success {
			return NewOrderStatusUpdateError(s.OrderID(), orderStatus, result)
		}
	}

	if err = s.TransitionTo(next); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
