package queries

import (
	"context"

	"logistics/internal/core/ports"
)

// CheckShippingAvailabilityQueryHandler verifies a destination against the
// postal lookup service. No persistent state is involved.
//
// Example:
//
//	handler := NewCheckShippingAvailabilityQueryHandler(addressGateway)
//	query, _ := NewCheckShippingAvailabilityQuery("01310-200", "São Paulo", "SP", "BR")
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Availability check failed: %v", err)
//	}
type CheckShippingAvailabilityQueryHandler struct {
	addressGateway ports.AddressValidationGateway
}

// NewCheckShippingAvailabilityQueryHandler creates a handler for availability checks.
func NewCheckShippingAvailabilityQueryHandler(
	addressGateway ports.AddressValidationGateway,
) CheckShippingAvailabilityQueryHandler {
	return CheckShippingAvailabilityQueryHandler{addressGateway: addressGateway}
}

// Handle executes the availability check.
// The destination is serviceable when the postal lookup resolves the postal
// code and the resolved city and state match the requested ones. Lookup
// failures are returned as errors, not as unavailability.
func (h CheckShippingAvailabilityQueryHandler) Handle(
	ctx context.Context,
	query CheckShippingAvailabilityQuery,
) (ShippingAvailabilityResponse, error) {
	if err := query.Validate(); err != nil {
		return ShippingAvailabilityResponse{}, err
	}

	normalized, err := h.addressGateway.ValidateAndNormalize(ctx, ports.AddressInput{
		City:       query.City(),
		State:      query.State(),
		PostalCode: query.PostalCode(),
		Country:    query.Country(),
	})
	if err != nil {
		return ShippingAvailabilityResponse{}, err
	}

	if normalized == nil {
		return ShippingAvailabilityResponse{
			Available: false,
			Reason:    "shipping is not available for the requested destination",
		}, nil
	}

	return ShippingAvailabilityResponse{
		Available: true,
		NormalizedAddress: &AddressResponse{
			Street:     normalized.Street,
			City:       normalized.City,
			State:      normalized.State,
			PostalCode: normalized.PostalCode,
			Country:    normalized.Country,
		},
	}, nil
}
