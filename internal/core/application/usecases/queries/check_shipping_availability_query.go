package queries

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCheckShippingAvailabilityQueryIsNotConstructed = errors.New(
	"CheckShippingAvailabilityQuery must be created via NewCheckShippingAvailabilityQuery constructor",
)

// CheckShippingAvailabilityQuery asks whether a destination address is
// serviceable before a shipment is created. The address is verified against
// the postal lookup service, so only the postal code, city and state are
// required here.
//
// Example:
//
//	query, err := NewCheckShippingAvailabilityQuery("01310-200", "São Paulo", "SP", "BR")
//	if err != nil {
//	    return err
//	}
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("availability check failed: %w", err)
//	}
//	if !result.Available {
//	    fmt.Println(result.Reason)
//	}
type CheckShippingAvailabilityQuery struct { //nolint:recvcheck //using for validation
	postalCode string
	city       string
	state      string
	country    string

	guard guard.ConstructorGuard
}

// NewCheckShippingAvailabilityQuery creates an availability check for the
// given destination.
func NewCheckShippingAvailabilityQuery(postalCode, city, state, country string) (CheckShippingAvailabilityQuery, error) {
	query := CheckShippingAvailabilityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setPostalCode(postalCode),
		query.setCity(city),
		query.setState(state),
		query.setCountry(country),
	); err != nil {
		return CheckShippingAvailabilityQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrCheckShippingAvailabilityQueryIsNotConstructed if validation fails.
func (q CheckShippingAvailabilityQuery) Validate() error {
	return q.guard.Validate(ErrCheckShippingAvailabilityQueryIsNotConstructed)
}

// PostalCode returns the destination postal code.
func (q CheckShippingAvailabilityQuery) PostalCode() string {
	return q.postalCode
}

// City returns the destination city.
func (q CheckShippingAvailabilityQuery) City() string {
	return q.city
}

// State returns the destination state or region code.
func (q CheckShippingAvailabilityQuery) State() string {
	return q.state
}

// Country returns the destination country code.
func (q CheckShippingAvailabilityQuery) Country() string {
	return q.country
}

func (q *CheckShippingAvailabilityQuery) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}

	q.postalCode = postalCode
	return nil
}

func (q *CheckShippingAvailabilityQuery) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	q.city = city
	return nil
}

func (q *CheckShippingAvailabilityQuery) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}

	q.state = state
	return nil
}

func (q *CheckShippingAvailabilityQuery) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}

	q.country = country
	return nil
}

// ShippingAvailabilityResponse is the outcome of an availability check.
// NormalizedAddress is set only when the destination is serviceable.
type ShippingAvailabilityResponse struct {
	Available         bool
	Reason            string
	NormalizedAddress *AddressResponse
}
