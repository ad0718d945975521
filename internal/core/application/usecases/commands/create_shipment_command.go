package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to register a new shipment for
// an order. The shipment starts in Pending status with a generated tracking code.
//
// Example:
//
//	addr, _ := shipment.NewAddress("Rua Augusta, 500", "São Paulo", "SP", "01304-000", "BR")
//	cmd, err := NewCreateShipmentCommand(kernel.NewUUID(), orderID, "Correios", "Express", addr, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	orderID      kernel.UUID
	carrier      string
	serviceLevel string
	address      shipment.Address
	dispatchDate *time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new shipment.
// Validates identifiers, carrier, service level and the destination address.
// The dispatch date is optional and may be nil.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	orderID kernel.UUID,
	carrier string,
	serviceLevel string,
	address shipment.Address,
	dispatchDate *time.Time,
) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{
		dispatchDate: dispatchDate,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setOrderID(orderID),
		cmd.setCarrier(carrier),
		cmd.setServiceLevel(serviceLevel),
		cmd.setAddress(address),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the new shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// OrderID returns the identifier of the order being shipped.
func (c CreateShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Carrier returns the carrier handling the shipment.
func (c CreateShipmentCommand) Carrier() string {
	return c.carrier
}

// ServiceLevel returns the requested shipping service level.
func (c CreateShipmentCommand) ServiceLevel() string {
	return c.serviceLevel
}

// Address returns the destination address.
func (c CreateShipmentCommand) Address() shipment.Address {
	return c.address
}

// DispatchDate returns the planned dispatch date, or nil when not set.
func (c CreateShipmentCommand) DispatchDate() *time.Time {
	return c.dispatchDate
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateShipmentCommand) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}

	c.carrier = carrier
	return nil
}

func (c *CreateShipmentCommand) setServiceLevel(serviceLevel string) error {
	if serviceLevel == "" {
		return errs.NewValueIsRequiredError("serviceLevel")
	}

	c.serviceLevel = serviceLevel
	return nil
}

func (c *CreateShipmentCommand) setAddress(address shipment.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
