package queries

import (
	"context"

	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentByIDQueryHandler reads a single shipment projection from the database.
type GetShipmentByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentByIDQueryHandler creates a handler for single shipment lookups.
func NewGetShipmentByIDQueryHandler(db *gorm.DB) GetShipmentByIDQueryHandler {
	return GetShipmentByIDQueryHandler{db: db}
}

// Handle executes the lookup.
// Returns errs.ObjectNotFoundError when no shipment has the requested ID.
func (h GetShipmentByIDQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentByIDQuery,
) (ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return ShipmentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectShipmentColumns+`
		FROM shipments
		WHERE id = ?
	`, query.ShipmentID().Bytes()).Rows()
	if err != nil {
		return ShipmentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ShipmentResponse{}, err
		}
		return ShipmentResponse{}, errs.NewObjectNotFoundError("shipmentId", query.ShipmentID())
	}

	resp, err := scanShipmentRow(rows)
	if err != nil {
		return ShipmentResponse{}, err
	}

	return resp, nil
}
