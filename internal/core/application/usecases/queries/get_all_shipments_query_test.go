package queries_test

import (
	"testing"

	"logistics/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllShipmentsQuery_Validates(t *testing.T) {
	query := queries.NewGetAllShipmentsQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllShipmentsQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetAllShipmentsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllShipmentsQueryIsNotConstructed)
}
