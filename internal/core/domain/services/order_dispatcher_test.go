package services_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDispatcher_Dispatch(t *testing.T) {
	vendorID := kernel.NewUUID()
	truckTypeID := kernel.NewUUID()

	newTruck := func(t *testing.T, registration string, year int) *truck.Truck {
		t.Helper()
		created, err := truck.NewTruck(vendorID, truckTypeID, registration, "Tata LPT 3118", year)
		require.NoError(t, err)
		return created
	}

	t.Run("should dispatch oldest available truck", func(t *testing.T) {
		newer := newTruck(t, "MH12AB1234", 2022)
		oldest := newTruck(t, "MH12CD5678", 2015)
		middle := newTruck(t, "MH12EF9012", 2019)

		dispatcher := services.NewOrderDispatcher()
		dispatched, err := dispatcher.Dispatch([]*truck.Truck{newer, oldest, middle})

		require.NoError(t, err)
		assert.True(t, dispatched.IsEqual(oldest))
		assert.False(t, oldest.IsAvailable())
		assert.True(t, newer.IsAvailable())
		assert.True(t, middle.IsAvailable())
	})

	t.Run("should break manufacture year ties by registration number", func(t *testing.T) {
		second := newTruck(t, "KA01ZZ9999", 2018)
		first := newTruck(t, "KA01AA1111", 2018)

		dispatcher := services.NewOrderDispatcher()
		dispatched, err := dispatcher.Dispatch([]*truck.Truck{second, first})

		require.NoError(t, err)
		assert.True(t, dispatched.IsEqual(first))
	})

	t.Run("should skip trucks that are already dispatched", func(t *testing.T) {
		engaged := newTruck(t, "TN09AA0001", 2012)
		require.NoError(t, engaged.Dispatch())
		free := newTruck(t, "TN09BB0002", 2021)

		dispatcher := services.NewOrderDispatcher()
		dispatched, err := dispatcher.Dispatch([]*truck.Truck{engaged, free})

		require.NoError(t, err)
		assert.True(t, dispatched.IsEqual(free))
	})

	t.Run("should return error when no trucks are provided", func(t *testing.T) {
		dispatcher := services.NewOrderDispatcher()

		dispatched, err := dispatcher.Dispatch(nil)

		assert.Nil(t, dispatched)
		assert.ErrorIs(t, err, services.ErrNoTruckAvailable)
	})

	t.Run("should return error when every truck is engaged", func(t *testing.T) {
		engaged := newTruck(t, "DL03CC0003", 2020)
		require.NoError(t, engaged.Dispatch())

		dispatcher := services.NewOrderDispatcher()
		dispatched, err := dispatcher.Dispatch([]*truck.Truck{engaged, nil})

		assert.Nil(t, dispatched)
		assert.ErrorIs(t, err, services.ErrNoTruckAvailable)
	})
}
