package commands

import (
	"context"

	"logistics/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// New shipments start in Pending status with a server-generated tracking code.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand(kernel.NewUUID(), orderID, "Correios", "Express", addr, nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// Builds the aggregate in Pending status and persists it within a transaction.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
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
	s, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.OrderID(),
		cmd.Carrier(),
		cmd.ServiceLevel(),
		cmd.Address(),
		cmd.DispatchDate(),
	)
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
