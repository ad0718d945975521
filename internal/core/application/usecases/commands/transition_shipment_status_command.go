package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/guard"
)

var ErrTransitionShipmentStatusCommandIsNotConstructed = errors.New(
	"TransitionShipmentStatusCommand must be created via NewTransitionShipmentStatusCommand constructor",
)

// TransitionShipmentStatusCommand represents a request to move a shipment to
// a new lifecycle status. The target status arrives as text from the API and
// is parsed case-insensitively during construction, so a handler never sees
// an unknown status.
//
// Example:
//
//	cmd, err := NewTransitionShipmentStatusCommand(shipmentID, "InTransit")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionShipmentStatusCommandHandler(uowFactory, gateway, statusMap)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    var transitionErr *shipment.InvalidTransitionError
//	    if errors.As(err, &transitionErr) {
//	        // 409: transition not allowed from the current status
//	    }
//	}
type TransitionShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	status     shipment.Status

	guard guard.ConstructorGuard
}

// NewTransitionShipmentStatusCommand creates a command to transition a
// shipment's status. rawStatus is matched against the known status names
// ignoring case; unknown names are rejected here.
func NewTransitionShipmentStatusCommand(
	shipmentID kernel.UUID,
	rawStatus string,
) (TransitionShipmentStatusCommand, error) {
	cmd := TransitionShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setStatus(rawStatus),
	); err != nil {
		return TransitionShipmentStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionShipmentStatusCommandIsNotConstructed if validation fails.
func (c TransitionShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionShipmentStatusCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment to transition.
func (c TransitionShipmentStatusCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Status returns the parsed target status.
func (c TransitionShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *TransitionShipmentStatusCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *TransitionShipmentStatusCommand) setStatus(rawStatus string) error {
	status, err := shipment.StatusFromString(rawStatus)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
