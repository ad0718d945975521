package shipment

import (
	"errors"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an
// improperly initialized Address. Addresses must be created via NewAddress
// to ensure all required fields are present.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address represents a validated destination address for a shipment.
// Address is an immutable value object; two addresses are equal when all
// their fields match. The zero value is invalid and fails validation.
//
// Example:
//
//	addr, err := shipment.NewAddress(
//	    "Avenida Paulista, 1578", "São Paulo", "SP", "01310-200", "BR")
//	if err != nil {
//	    // Handle validation error
//	}
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	state      string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewAddress creates a new Address with the specified fields.
// All fields are required; an error listing every missing field is
// returned otherwise.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setState(state),
		address.setPostalCode(postalCode),
		address.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks if the Address was properly constructed via NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// State returns the state or region code of the address.
func (a Address) State() string {
	return a.state
}

// PostalCode returns the postal code of the address.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country of the address.
func (a Address) Country() string {
	return a.country
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.state == other.state &&
		a.postalCode == other.postalCode &&
		a.country == other.country
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	a.state = state
	return nil
}

func (a *Address) setPostalCode(postalCode string) error {
	if postalCode == "" {
		return errs.NewValueIsRequiredError("postalCode")
	}
	a.postalCode = postalCode
	return nil
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}
	a.country = country
	return nil
}
