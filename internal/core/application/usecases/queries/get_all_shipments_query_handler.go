package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// selectShipmentColumns is the column list shared by the shipment projections.
const selectShipmentColumns = `
	id,
	order_id,
	status,
	carrier,
	service_level,
	tracking_code,
	address_street,
	address_city,
	address_state,
	address_postal_code,
	address_country,
	dispatch_date,
	expected_arrival,
	created_at,
	updated_at
`

// GetAllShipmentsQueryHandler reads all shipments straight from the database.
//
// Example:
//
//	handler := NewGetAllShipmentsQueryHandler(db)
//	shipments, err := handler.Handle(ctx, NewGetAllShipmentsQuery())
//	if err != nil {
//	    log.Printf("Failed to list shipments: %v", err)
//	    return err
//	}
type GetAllShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllShipmentsQueryHandler creates a handler for shipment list queries.
// Requires a GORM database connection for query execution.
func NewGetAllShipmentsQueryHandler(db *gorm.DB) GetAllShipmentsQueryHandler {
	return GetAllShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all shipments.
// Results are sorted by creation time, newest first.
func (h GetAllShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetAllShipmentsQuery,
) ([]ShipmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+selectShipmentColumns+`
		FROM shipments
		ORDER BY created_at DESC, id
	`).Rows()
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

// scanShipmentRow maps one result row onto the shipment read model.
// The row must carry selectShipmentColumns in order.
func scanShipmentRow(rows *sql.Rows) (ShipmentResponse, error) {
	var resp ShipmentResponse
	var id, orderID uuid.UUID
	var dispatchDate, expectedArrival, updatedAt sql.NullTime

	err := rows.Scan(
		&id,
		&orderID,
		&resp.Status,
		&resp.Carrier,
		&resp.ServiceLevel,
		&resp.TrackingCode,
		&resp.Address.Street,
		&resp.Address.City,
		&resp.Address.State,
		&resp.Address.PostalCode,
		&resp.Address.Country,
		&dispatchDate,
		&expectedArrival,
		&resp.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return ShipmentResponse{}, err
	}

	shipmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.ID = shipmentID

	shipmentOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return ShipmentResponse{}, err
	}
	resp.OrderID = shipmentOrderID

	if dispatchDate.Valid {
		resp.DispatchDate = &dispatchDate.Time
	}
	if expectedArrival.Valid {
		resp.ExpectedArrival = &expectedArrival.Time
	}
	if updatedAt.Valid {
		resp.UpdatedAt = &updatedAt.Time
	}

	return resp, nil
}
