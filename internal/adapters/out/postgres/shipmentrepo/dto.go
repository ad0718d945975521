// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Status is stored by name ("Pending", "InTransit", ...) so the stored values stay
// readable and survive reordering of the status constants.
type ShipmentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID  `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(32);index"`
	Carrier         string     `gorm:"type:varchar(128)"`
	ServiceLevel    string     `gorm:"type:varchar(64)"`
	TrackingCode    string     `gorm:"type:varchar(32);uniqueIndex"`
	Address         AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	DispatchDate    *time.Time
	ExpectedArrival *time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AddressDTO represents the embedded destination address within the shipment table.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(256)"`
	City       string `gorm:"type:varchar(128)"`
	State      string `gorm:"type:varchar(64)"`
	PostalCode string `gorm:"type:varchar(16)"`
	Country    string `gorm:"type:varchar(64)"`
}

// fromDomain converts a shipment domain aggregate to its database representation.
func fromDomain(s *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:           s.ID().Bytes(),
		OrderID:      s.OrderID().Bytes(),
		Status:       s.Status().String(),
		Carrier:      s.Carrier(),
		ServiceLevel: s.ServiceLevel(),
		TrackingCode: s.TrackingCode(),
		Address: AddressDTO{
			Street:     s.Address().Street(),
			City:       s.Address().City(),
			State:      s.Address().State(),
			PostalCode: s.Address().PostalCode(),
			Country:    s.Address().Country(),
		},
		DispatchDate:    s.DispatchDate(),
		ExpectedArrival: s.ExpectedArrival(),
		CreatedAt:       s.CreatedAt(),
		UpdatedAt:       s.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including status and timestamps using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := shipment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	address, err := shipment.NewAddress(
		dto.Address.Street,
		dto.Address.City,
		dto.Address.State,
		dto.Address.PostalCode,
		dto.Address.Country,
	)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		orderID,
		status,
		dto.Carrier,
		dto.ServiceLevel,
		address,
		dto.TrackingCode,
		dto.DispatchDate,
		dto.ExpectedArrival,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
