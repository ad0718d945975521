package commands

import (
	"context"
)

// UpdateShipmentCommandHandler handles replacement of a shipment's editable
// details. Details can only change while the shipment is Pending or
// Processing; the aggregate rejects later edits.
type UpdateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewUpdateShipmentCommandHandler creates a handler for shipment detail updates.
func NewUpdateShipmentCommandHandler(uowFactory ShipmentUoWFactory) UpdateShipmentCommandHandler {
	return UpdateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
// Loads the shipment, applies the replacement details and persists the result
// within a transaction. Returns errs.ObjectNotFoundError when the shipment
// does not exist and shipment.ErrShipmentIsNotEditable when its status no
// longer allows edits.
func (h *UpdateShipmentCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentCommand) error {
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

	if err = s.UpdateDetails(
		cmd.Carrier(),
		cmd.ServiceLevel(),
		cmd.Address(),
		cmd.DispatchDate(),
		cmd.ExpectedArrival(),
	); err != nil {
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
