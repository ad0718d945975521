// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain model and read projections straight from
// the database, or consult external services for lookups that never touch
// persistent state.
package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetAllShipmentsQueryIsNotConstructed = errors.New(
	"GetAllShipmentsQuery must be created via NewGetAllShipmentsQuery constructor",
)

// GetAllShipmentsQuery retrieves every shipment currently on record.
//
// Example:
//
//	query := NewGetAllShipmentsQuery()
//	handler := NewGetAllShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list shipments: %w", err)
//	}
//	fmt.Printf("Tracking %d shipments\n", len(shipments))
type GetAllShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllShipmentsQuery creates a query to list all shipments.
func NewGetAllShipmentsQuery() GetAllShipmentsQuery {
	return GetAllShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllShipmentsQueryIsNotConstructed if validation fails.
func (q GetAllShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllShipmentsQueryIsNotConstructed)
}

// AddressResponse is the destination address portion of a shipment projection.
type AddressResponse struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// ShipmentResponse is the read model returned by shipment queries.
// Status carries the lifecycle status name as stored, e.g. "InTransit".
type ShipmentResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	Status          string
	Carrier         string
	ServiceLevel    string
	TrackingCode    string
	Address         AddressResponse
	DispatchDate    *time.Time
	ExpectedArrival *time.Time
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
