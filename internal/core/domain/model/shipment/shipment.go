package shipment

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment. This ensures all
	// shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment constructor")

	// ErrShipmentIsNotEditable is returned when a general field update is
	// attempted after the shipment has left the pre-dispatch states.
	// Pending and Processing shipments are editable; once a shipment is
	// InTransit, Completed or Cancelled its details are frozen.
	ErrShipmentIsNotEditable = errors.New("shipment details can no longer be updated")
)

// Shipment represents a tracked delivery tied to a single order. It is the
// aggregate root that manages the shipment lifecycle from registration
// through dispatch and transit to completion or cancellation.
//
// Shipment maintains these invariants:
//   - Must have a valid unique identifier and order reference
//   - Status changes follow the adjacency table defined on Status;
//     TransitionTo is the only writer of status
//   - Tracking code is assigned at creation and never changes
//   - Destination address is a validated Address value object
//   - Can only be created through NewShipment or RestoreShipment
//
// Dispatch and expected-arrival dates are informational; they never
// participate in transition decisions.
type Shipment struct {
	id              kernel.UUID
	orderID         kernel.UUID
	status          Status
	dispatchDate    *time.Time
	expectedArrival *time.Time
	trackingCode    string
	carrier         string
	serviceLevel    string
	address         Address
	createdAt       time.Time
	updatedAt       *time.Time

	isConstructed bool
}

// NewShipment creates a new Shipment with validation. This is the only way
// to register a shipment, ensuring all business invariants hold from the
// start.
//
// The shipment is created in Pending status with a freshly generated
// tracking code and createdAt set to the current UTC time; updatedAt stays
// unset until the first mutation. dispatchDate is optional and may be nil.
//
// Example:
//
//	addr, _ := shipment.NewAddress("Rua Augusta, 500", "São Paulo", "SP", "01304-000", "BR")
//	s, err := shipment.NewShipment(kernel.NewUUID(), orderID, "Correios", "Express", addr, nil)
//	if err != nil {
//	    // Handle validation error
//	}
func NewShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	carrier string,
	serviceLevel string,
	address Address,
	dispatchDate *time.Time,
) (*Shipment, error) {
	s := &Shipment{
		status:        Pending,
		trackingCode:  NewTrackingCode(),
		createdAt:     time.Now().UTC(),
		dispatchDate:  dispatchDate,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setCarrier(carrier),
		s.setServiceLevel(serviceLevel),
		s.setAddress(address),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persisted state. Unlike
// NewShipment it accepts every stored field, including the status and the
// server-assigned tracking code and timestamps. Used exclusively by the
// persistence layer.
func RestoreShipment(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	carrier string,
	serviceLevel string,
	address Address,
	trackingCode string,
	dispatchDate *time.Time,
	expectedArrival *time.Time,
	createdAt time.Time,
	updatedAt *time.Time,
) (*Shipment, error) {
	s := &Shipment{
		dispatchDate:    dispatchDate,
		expectedArrival: expectedArrival,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setOrderID(orderID),
		s.setStatus(status),
		s.setCarrier(carrier),
		s.setServiceLevel(serviceLevel),
		s.setAddress(address),
		s.setTrackingCode(trackingCode),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
// Returns ErrShipmentIsNotConstructed otherwise.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// OrderID returns the identifier of the order this shipment fulfils.
// The order is not owned by this service; the id is used only to address
// the order status gateway.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// DispatchDate returns the planned dispatch date, or nil if not scheduled.
func (s *Shipment) DispatchDate() *time.Time {
	return s.dispatchDate
}

// ExpectedArrival returns the expected arrival date, or nil if unknown.
func (s *Shipment) ExpectedArrival() *time.Time {
	return s.expectedArrival
}

// TrackingCode returns the immutable tracking code assigned at creation.
func (s *Shipment) TrackingCode() string {
	return s.trackingCode
}

// Carrier returns the carrier handling the shipment.
func (s *Shipment) Carrier() string {
	return s.carrier
}

// ServiceLevel returns the contracted service level (e.g. "Express").
func (s *Shipment) ServiceLevel() string {
	return s.serviceLevel
}

// Address returns the destination address.
func (s *Shipment) Address() Address {
	return s.address
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the timestamp of the last successful mutation,
// or nil if the shipment has never been modified.
func (s *Shipment) UpdatedAt() *time.Time {
	return s.updatedAt
}

// TransitionTo moves the shipment to the requested status.
//
// The transition must be legal per the Status adjacency table; otherwise an
// *InvalidTransitionError naming both states is returned and the shipment
// is left unmodified. On success the status is updated and updatedAt is
// stamped.
//
// This method is the single writer of the status field: general field
// updates cannot change status by design.
func (s *Shipment) TransitionTo(next Status) error {
	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}

	s.status = newStatus
	s.touch()
	return nil
}

// UpdateDetails replaces the editable informational fields of the shipment:
// carrier, service level, destination address and the dispatch and
// expected-arrival dates. Status is deliberately not among them.
//
// Details can only change while the shipment is Pending or Processing;
// afterwards ErrShipmentIsNotEditable is returned. On success updatedAt is
// stamped.
func (s *Shipment) UpdateDetails(
	carrier string,
	serviceLevel string,
	address Address,
	dispatchDate *time.Time,
	expectedArrival *time.Time,
) error {
	if s.status != Pending && s.status != Processing {
		return ErrShipmentIsNotEditable
	}

	if err := errors.Join(
		s.setCarrier(carrier),
		s.setServiceLevel(serviceLevel),
		s.setAddress(address),
	); err != nil {
		return err
	}

	s.dispatchDate = dispatchDate
	s.expectedArrival = expectedArrival
	s.touch()
	return nil
}

// touch stamps updatedAt with the current UTC time.
func (s *Shipment) touch() {
	now := time.Now().UTC()
	s.updatedAt = &now
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setCarrier(carrier string) error {
	if carrier == "" {
		return errs.NewValueIsRequiredError("carrier")
	}
	s.carrier = carrier
	return nil
}

func (s *Shipment) setServiceLevel(serviceLevel string) error {
	if serviceLevel == "" {
		return errs.NewValueIsRequiredError("serviceLevel")
	}
	s.serviceLevel = serviceLevel
	return nil
}

func (s *Shipment) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	s.address = address
	return nil
}

func (s *Shipment) setTrackingCode(trackingCode string) error {
	if trackingCode == "" {
		return errs.NewValueIsRequiredError("trackingCode")
	}
	s.trackingCode = trackingCode
	return nil
}
