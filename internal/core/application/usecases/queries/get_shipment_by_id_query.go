package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentByIDQueryIsNotConstructed = errors.New(
	"GetShipmentByIDQuery must be created via NewGetShipmentByIDQuery constructor",
)

// GetShipmentByIDQuery retrieves a single shipment by its identifier.
//
// Example:
//
//	query, err := NewGetShipmentByIDQuery(shipmentID)
//	if err != nil {
//	    return err
//	}
//
//	shipmentResp, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetShipmentByIDQuery struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShipmentByIDQuery creates a query to fetch one shipment.
func NewGetShipmentByIDQuery(shipmentID kernel.UUID) (GetShipmentByIDQuery, error) {
	query := GetShipmentByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setShipmentID(shipmentID); err != nil {
		return GetShipmentByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetShipmentByIDQueryIsNotConstructed if validation fails.
func (q GetShipmentByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentByIDQueryIsNotConstructed)
}

// ShipmentID returns the identifier of the requested shipment.
func (q GetShipmentByIDQuery) ShipmentID() kernel.UUID {
	return q.shipmentID
}

func (q *GetShipmentByIDQuery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	q.shipmentID = shipmentID
	return nil
}
