package queries_test

import (
	"testing"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetVendorTrucksQuery_ValidInput(t *testing.T) {
	// Arrange
	vendorID := kernel.NewUUID()

	// Act
	query, err := queries.NewGetVendorTrucksQuery(vendorID)

	// Assert
	require.NoError(t, err)
	assert.NotZero(t, query)
	assert.Equal(t, vendorID, query.VendorID())
	assert.NoError(t, query.Validate())
}

func TestNewGetVendorTrucksQuery_InvalidVendorID(t *testing.T) {
	// Arrange
	var invalidID kernel.UUID // zero value

	// Act
	_, err := queries.NewGetVendorTrucksQuery(invalidID)

	// Assert
	require.Error(t, err)
}

func TestGetVendorTrucksQuery_Validate_ZeroValue(t *testing.T) {
	// Arrange - zero value query (not constructed via constructor)
	var query queries.GetVendorTrucksQuery

	// Act
	err := query.Validate()

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, queries.ErrGetVendorTrucksQueryIsNotConstructed)
}
