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

func validTestAddress(t *testing.T) shipment.Address {
	t.Helper()
	addr, err := shipment.NewAddress("Avenida Paulista, 1578", "São Paulo", "SP", "01310-200", "BR")
	require.NoError(t, err)
	return addr
}

func TestNewCreateShipmentCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	orderID := kernel.NewUUID()
	addr := validTestAddress(t)
	dispatch := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	cmd, err := commands.NewCreateShipmentCommand(id, orderID, "Correios", "Express", addr, &dispatch)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ShipmentID())
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "Correios", cmd.Carrier())
	assert.Equal(t, "Express", cmd.ServiceLevel())
	assert.True(t, addr.IsEqual(cmd.Address()))
	require.NotNil(t, cmd.DispatchDate())
	assert.Equal(t, dispatch, *cmd.DispatchDate())
}

func TestNewCreateShipmentCommand_NilDispatchDate(t *testing.T) {
	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Correios", "Express", validTestAddress(t), nil)
	require.NoError(t, err)
	assert.Nil(t, cmd.DispatchDate())
}

func TestNewCreateShipmentCommand_InvalidShipmentID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateShipmentCommand(
		invalidID, kernel.NewUUID(), "Correios", "Express", validTestAddress(t), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateShipmentCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.UUID{}, "Correios", "Express", validTestAddress(t), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateShipmentCommand_EmptyCarrier(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", "Express", validTestAddress(t), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateShipmentCommand_EmptyServiceLevel(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Correios", "", validTestAddress(t), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateShipmentCommand_NotConstructedAddress(t *testing.T) {
	_, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(), "Correios", "Express", shipment.Address{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, shipment.ErrAddressIsNotConstructed)
}

func TestCreateShipmentCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateShipmentCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateShipmentCommandIsNotConstructed)
}
