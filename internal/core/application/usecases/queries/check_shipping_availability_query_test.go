package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckShippingAvailabilityQuery_ValidInput(t *testing.T) {
	query, err := queries.NewCheckShippingAvailabilityQuery("01310-200", "São Paulo", "SP", "BR")
	require.NoError(t, err)
	assert.Equal(t, "01310-200", query.PostalCode())
	assert.Equal(t, "São Paulo", query.City())
	assert.Equal(t, "SP", query.State())
	assert.Equal(t, "BR", query.Country())
}

func TestNewCheckShippingAvailabilityQuery_MissingFields(t *testing.T) {
	testCases := []struct {
		name       string
		postalCode string
		city       string
		state      string
		country    string
	}{
		{"empty postal code", "", "São Paulo", "SP", "BR"},
		{"empty city", "01310-200", "", "SP", "BR"},
		{"empty state", "01310-200", "São Paulo", "", "BR"},
		{"empty country", "01310-200", "São Paulo", "SP", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := queries.NewCheckShippingAvailabilityQuery(tc.postalCode, tc.city, tc.state, tc.country)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		})
	}
}

func TestCheckShippingAvailabilityQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.CheckShippingAvailabilityQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrCheckShippingAvailabilityQueryIsNotConstructed)
}
