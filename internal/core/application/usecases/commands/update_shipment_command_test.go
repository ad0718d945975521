package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateShipmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	addr := validTestAddress(t)
	dispatch := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	arrival := dispatch.AddDate(0, 0, 5)

	cmd, err := commands.NewUpdateShipmentCommand(id, "Jadlog", "Standard", addr, &dispatch, &arrival)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, "Jadlog", cmd.Carrier())
	assert.Equal(t, "Standard", cmd.ServiceLevel())
	assert.True(t, addr.IsEqual(cmd.Address()))
	require.NotNil(t, cmd.ExpectedArrival())
	assert.Equal(t, arrival, *cmd.ExpectedArrival())
}

func TestNewUpdateShipmentCommand_NilDates(t *testing.T) {
	cmd, err := commands.NewUpdateShipmentCommand(
		kernel.NewUUID(), "Jadlog", "Standard", validTestAddress(t), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.DispatchDate())
	assert.Nil(t, cmd.ExpectedArrival())
}

func TestNewUpdateShipmentCommand_InvalidShipmentID(t *testing.T) {
	_, err := commands.NewUpdateShipmentCommand(
		kernel.UUID{}, "Jadlog", "Standard", validTestAddress(t), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateShipmentCommand_EmptyCarrier(t *testing.T) {
	_, err := commands.NewUpdateShipmentCommand(
		kernel.NewUUID(), "", "Standard", validTestAddress(t), nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewUpdateShipmentCommand_NotConstructedAddress(t *testing.T) {
	_, err := commands.NewUpdateShipmentCommand(
		kernel.NewUUID(), "Jadlog", "Standard", shipment.Address{}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrAddressIsNotConstructed)
}

func TestUpdateShipmentCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateShipmentCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateShipmentCommandIsNotConstructed)
}
