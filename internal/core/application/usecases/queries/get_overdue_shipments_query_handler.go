package queries

import (
	"context"

	"logistics/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetOverdueShipmentsQueryHandler finds shipments in transit whose expected
// arrival date has passed.
type GetOverdueShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueShipmentsQueryHandler creates a handler for overdue shipment queries.
func NewGetOverdueShipmentsQueryHandler(db *gorm.DB) GetOverdueShipmentsQueryHandler {
	return GetOverdueShipmentsQueryHandler{db: db}
}

// Handle executes the overdue check.
// Only InTransit shipments with a set expected arrival earlier than the
// query's reference moment qualify. Results are sorted most overdue first.
func (h GetOverdueShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectShipmentColumns+`
		FROM shipments
		WHERE status = ?
		  AND expected_arrival IS NOT NULL
		  AND expected_arrival < ?
		ORDER BY expected_arrival, id
	`, shipment.InTransit.String(), query.AsOf()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := make([]ShipmentResponse, 0)
	for rows.Next() {
		shipmentResp, scanErr := scanShipmentRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		shipments = append(shipments, shipmentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
