package queries

import (
	"errors"
	"time"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetOverdueShipmentsQueryIsNotConstructed = errors.New(
	"GetOverdueShipmentsQuery must be created via NewGetOverdueShipmentsQuery constructor",
)

// GetOverdueShipmentsQuery retrieves shipments still in transit past their
// expected arrival date. Used by the overdue watch job and for operational
// monitoring.
//
// Example:
//
//	query, err := NewGetOverdueShipmentsQuery(time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list overdue shipments: %w", err)
//	}
type GetOverdueShipmentsQuery struct { //nolint:recvcheck //using for validation
	asOf time.Time

	guard guard.ConstructorGuard
}

// NewGetOverdueShipmentsQuery creates a query for shipments overdue as of the
// given moment.
func NewGetOverdueShipmentsQuery(asOf time.Time) (GetOverdueShipmentsQuery, error) {
	query := GetOverdueShipmentsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAsOf(asOf); err != nil {
		return GetOverdueShipmentsQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueShipmentsQueryIsNotConstructed if validation fails.
func (q GetOverdueShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueShipmentsQueryIsNotConstructed)
}

// AsOf returns the reference moment for the overdue check.
func (q GetOverdueShipmentsQuery) AsOf() time.Time {
	return q.asOf
}

func (q *GetOverdueShipmentsQuery) setAsOf(asOf time.Time) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}

	q.asOf = asOf
	return nil
}
