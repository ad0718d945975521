package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Implementations must fail fast with a validation error when
// given a zero id, before touching storage, and report unknown ids on
// Get/Update/Delete as errs.ObjectNotFoundError.
//
// Concurrent transitions on the same shipment are not coordinated here;
// the store's own concurrency policy (optimistic version check or
// last-writer-wins) applies.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetAll retrieves every stored shipment.
	GetAll(ctx context.Context) ([]*shipment.Shipment, error)

	// Delete removes a shipment by its unique identifier.
	// Deletion is orthogonal to the status state machine and is allowed
	// from any state.
	Delete(ctx context.Context, id kernel.UUID) error
}
