package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateTruckCommand_ValidInput(t *testing.T) {
	// Arrange
	vendorID := kernel.NewUUID()
	truckTypeID := kernel.NewUUID()

	// Act
	cmd, err := commands.NewCreateTruckCommand(vendorID, truckTypeID, "MH12AB1234", "Tata LPT 3118", 2021)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, cmd)
	assert.Equal(t, vendorID, cmd.VendorID())
	assert.Equal(t, truckTypeID, cmd.TruckTypeID())
	assert.Equal(t, "MH12AB1234", cmd.RegistrationNumber())
	assert.Equal(t, "Tata LPT 3118", cmd.ModelName())
	assert.Equal(t, 2021, cmd.ManufactureYear())
}

func TestNewCreateTruckCommand_EmptyRegistrationNumber(t *testing.T) {
	// Act
	_, err := commands.NewCreateTruckCommand(kernel.NewUUID(), kernel.NewUUID(), "", "Tata LPT 3118", 2021)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegistrationNumberIsRequired)
}

func TestNewCreateTruckCommand_InvalidVendorID(t *testing.T) {
	// Arrange
	var invalidID kernel.UUID // zero value

	// Act
	_, err := commands.NewCreateTruckCommand(invalidID, kernel.NewUUID(), "MH12AB1234", "Tata LPT 3118", 2021)

	// Assert
	require.Error(t, err)
}

func TestNewCreateTruckCommand_MultipleCombinedErrors(t *testing.T) {
	// Arrange
	var invalidID kernel.UUID // zero value

	// Act
	_, err := commands.NewCreateTruckCommand(invalidID, invalidID, "", "", 0)

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRegistrationNumberIsRequired)
}

func TestCreateTruckCommand_Validate_Success(t *testing.T) {
	// Arrange
	cmd, err := commands.NewCreateTruckCommand(kernel.NewUUID(), kernel.NewUUID(), "MH12AB1234", "Tata LPT 3118", 2021)
	require.NoError(t, err)

	// Act
	err = cmd.Validate()

	// Assert
	assert.NoError(t, err)
}

func TestCreateTruckCommand_Validate_ZeroValue(t *testing.T) {
	// Arrange - zero value command (not constructed via constructor)
	var cmd commands.CreateTruckCommand

	// Act
	err := cmd.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateTruckCommandIsNotConstructed)
}
