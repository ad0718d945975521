package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
)

// GatewayResult carries the structured outcome of an order status update.
// Ordinary HTTP-level failures of the remote service are reported through
// Success/StatusCode rather than as errors, so the workflow can treat them
// as recoverable business failures.
type GatewayResult struct {
	// Success is true when the remote service acknowledged the update
	// with a 2xx response.
	Success bool

	// StatusCode is the HTTP status code returned by the remote service.
	StatusCode int

	// Message is the remote service's human-readable failure summary,
	// passed through verbatim so operators can diagnose remote failures
	// without correlating logs across services.
	Message string

	// Details carries any additional diagnostic detail extracted from the
	// remote error body. May be empty.
	Details string
}

// OrderStatusGateway notifies the external order service that the order
// backing a shipment changed status.
//
// The returned error is non-nil only for malformed input (zero order id,
// empty status - programmer errors) or transport-level failures where no
// HTTP response was obtained at all. A non-2xx response is NOT an error:
// it yields a GatewayResult with Success=false.
type OrderStatusGateway interface {
	UpdateOrderStatus(ctx context.Context, orderID kernel.UUID, status string) (GatewayResult, error)
}

// AddressInput carries raw, not yet normalized address fields for
// serviceability checks.
type AddressInput struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// AddressValidationGateway validates a destination against an external
// postal-code service and returns the normalized address fields.
//
// A nil result with a nil error means the destination is not serviceable
// (unknown postal code, unsupported country, or a city/state that does not
// match the postal code); errors are reserved for transport failures.
type AddressValidationGateway interface {
	ValidateAndNormalize(ctx context.Context, input AddressInput) (*AddressInput, error)
}
