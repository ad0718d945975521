package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetShipmentByIDQuery_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetShipmentByIDQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.ShipmentID())
}

func TestNewGetShipmentByIDQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetShipmentByIDQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetShipmentByIDQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetShipmentByIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetShipmentByIDQueryIsNotConstructed)
}
