package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrUpdateShipmentCommandIsNotConstructed = errors.New(
	"UpdateShipmentCommand must be created via NewUpdateShipmentCommand constructor",
)

// UpdateShipmentCommand represents a full replacement of a shipment's
// editable details: carrier, service level, destination address and the
// dispatch and expected-arrival dates. Status is never updated this way;
// use TransitionShipmentStatusCommand instead.
type UpdateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID      kernel.UUID
	carrier         string
	serviceLevel    string
	address         shipment.Address
	dispatchDate    *time.Time
	expectedArrival *time.Time

	guard guard.ConstructorGuard
}

// NewUpdateShipmentCommand creates a command to replace a shipment's details.
// Both date fields are optional and may be nil, which clears the stored value.
func NewUpdateShipmentCommand(
	shipmentID kernel.UUID,
	carrier string,
	serviceLevel string,
	address shipment.Address,
	dispatchDate *time.Time,
	expectedArrival *time.Time,
) (UpdateShipmentCommand, error) {
	cmd := UpdateShipmentCommand{
		dispatchDate:    dispatchDate,
		expectedArrival: expectedArrival,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setCarrier(carrier),
		cmd.setServiceLevel(serviceLevel),
		cmd.setAddress(address),
	); err != nil {
		return UpdateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateShipmentCommandIsNotConstructed if validation fails.
func (c UpdateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the identifier of the shipment being updated.
func (c UpdateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Carrier returns the replacement carrier.
func (c UpdateShipmentCommand) Carrier() string {
	return c.carrier
}

// ServiceLevel returns the replacement service level.
func (c UpdateShipmentCommand) ServiceLevel() string {
	return c.serviceLevel
}

// Address returns the replacement destination address.
func (c UpdateShipmentCommand) Address() shipment.Address {
	return c.address
}

// DispatchDate returns the replacement dispatch date, or nil to clear it.
func (c UpdateShipmentCommand) DispatchDate() *time.Time {
	return c.dispatchDate
}

// ExpectedArrival returns the replacement expected arrival date, or nil to clear it.
func (c UpdateShipmentCommand) ExpectedArrival() *time.Time {
	return c.expectedArrival
}

func (c *UpdateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *UpdateShipmentCommand) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}

	c.carrier = carrier
	return nil
}

func (c *UpdateShipmentCommand) setServiceLevel(serviceLevel string) error {
	if serviceLevel == "" {
		return errs.NewValueIsRequiredError("serviceLevel")
	}

	c.serviceLevel = serviceLevel
	return nil
}

func (c *UpdateShipmentCommand) setAddress(address shipment.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
