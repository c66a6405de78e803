package order_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	pickupPoint, err := kernel.NewGeoPoint(19.0760, 72.8777)
	require.NoError(t, err)
	deliveryPoint, err := kernel.NewGeoPoint(18.5204, 73.8567)
	require.NoError(t, err)
	total, err := kernel.NewMoneyFromRupees(25000)
	require.NoError(t, err)

	now := time.Now().UTC()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"12 Dock Rd, Mumbai", pickupPoint,
		"4 Mill St, Pune", deliveryPoint,
		now.Add(24*time.Hour), now.Add(48*time.Hour),
		total, "steel coils", 12500, now,
	)
	require.NoError(t, err)
	return o
}

// driveToDelivered walks a fresh order through the vendor-side lifecycle up
// to Delivered.
func driveToDelivered(t *testing.T, o *order.Order, vendorID kernel.UUID) {
	t.Helper()
	now := time.Now().UTC()

	require.NoError(t, o.ChangeStatus(order.StatusConfirmed, order.RoleVendor, vendorID, "", nil, now))
	require.NoError(t, o.AssignDriver(kernel.NewUUID(), order.RoleVendor, vendorID, "", now))

	for _, target := range []order.Status{
		order.StatusPickup, order.StatusPickedUp,
		order.StatusInTransit, order.StatusDelivered,
	} {
		require.NoError(t, o.ChangeStatus(target, order.RoleVendor, vendorID, "", nil, now))
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create order with generated number and OTP", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.StatusCreated, o.Status())
		assert.Regexp(t, `^ORD\d+$`, o.Number())
		assert.Regexp(t, `^\d{6}$`, o.DeliveryOTP())
		assert.False(t, o.IsOTPVerified())
		assert.Nil(t, o.DriverID())
		assert.Nil(t, o.ActualPickup())
		assert.Nil(t, o.ActualDelivery())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	vendorID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should walk the full lifecycle and record history", func(t *testing.T) {
		o := newTestOrder(t)

		driveToDelivered(t, o, vendorID)

		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.NotNil(t, o.ActualPickup())
		assert.NotNil(t, o.ActualDelivery())
		require.Len(t, o.History(), 6)
		assert.Equal(t, order.StatusCreated, o.History()[0].Previous())
		assert.Equal(t, order.StatusConfirmed, o.History()[0].Next())
	})

	t.Run("should refuse skipping statuses", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.StatusInTransit, order.RoleVendor, vendorID, "", nil, now)

		assert.Error(t, err)
	})

	t.Run("should refuse pickup without a driver", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed, order.RoleVendor, vendorID, "", nil, now))

		err := o.ChangeStatus(order.StatusPickup, order.RoleVendor, vendorID, "", nil, now)

		assert.ErrorIs(t, err, order.ErrDriverNotSet)
	})

	t.Run("should gate transitions by role", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.ChangeStatus(order.StatusConfirmed, order.RoleCustomer, kernel.NewUUID(), "", nil, now)
		assert.Error(t, err)

		assert.NoError(t, o.ChangeStatus(order.StatusCancelled, order.RoleCustomer, kernel.NewUUID(), "changed plans", nil, now))
		assert.Equal(t, order.StatusCancelled, o.Status())
	})

	t.Run("should let admin perform any valid transition", func(t *testing.T) {
		o := newTestOrder(t)

		assert.NoError(t, o.ChangeStatus(order.StatusConfirmed, order.RoleAdmin, kernel.NewUUID(), "", nil, now))
	})

	t.Run("should refuse transitions out of a final status", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusCancelled, order.RoleCustomer, kernel.NewUUID(), "", nil, now))

		err := o.ChangeStatus(order.StatusConfirmed, order.RoleAdmin, kernel.NewUUID(), "", nil, now)

		assert.Error(t, err)
	})

	t.Run("should record the reporting location in history", func(t *testing.T) {
		o := newTestOrder(t)
		point, err := kernel.NewGeoPoint(18.9, 73.3)
		require.NoError(t, err)

		require.NoError(t, o.ChangeStatus(order.StatusConfirmed, order.RoleVendor, vendorID, "", &point, now))

		require.Len(t, o.History(), 1)
		require.NotNil(t, o.History()[0].Point())
		assert.InDelta(t, 18.9, o.History()[0].Point().Latitude(), 0.0001)
	})
}

func TestOrder_AssignDriver(t *testing.T) {
	vendorID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should attach the driver on transition", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.StatusConfirmed, order.RoleVendor, vendorID, "", nil, now))

		driverID := kernel.NewUUID()
		require.NoError(t, o.AssignDriver(driverID, order.RoleVendor, vendorID, "", now))

		assert.Equal(t, order.StatusDriverAssigned, o.Status())
		require.NotNil(t, o.DriverID())
		assert.True(t, o.DriverID().IsEqual(driverID))
	})

	t.Run("should refuse assignment before confirmation", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignDriver(kernel.NewUUID(), order.RoleVendor, vendorID, "", now)

		assert.Error(t, err)
		assert.Nil(t, o.DriverID())
	})
}

func TestOrder_VerifyDeliveryOTP(t *testing.T) {
	vendorID := kernel.NewUUID()
	now := time.Now().UTC()

	t.Run("should complete the order on matching OTP", func(t *testing.T) {
		o := newTestOrder(t)
		driveToDelivered(t, o, vendorID)
		weight := 11800.0

		require.NoError(t, o.VerifyDeliveryOTP(o.DeliveryOTP(), &weight, o.CustomerID(), now))

		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.True(t, o.IsOTPVerified())
		require.NotNil(t, o.ActualWeightKg())
		assert.InDelta(t, 11800.0, *o.ActualWeightKg(), 0.001)
	})

	t.Run("should reject a wrong OTP", func(t *testing.T) {
		o := newTestOrder(t)
		driveToDelivered(t, o, vendorID)

		err := o.VerifyDeliveryOTP("000000", nil, o.CustomerID(), now)

		assert.ErrorIs(t, err, order.ErrOTPMismatch)
		assert.Equal(t, order.StatusDelivered, o.Status())
	})

	t.Run("should refuse verification before delivery", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.VerifyDeliveryOTP(o.DeliveryOTP(), nil, o.CustomerID(), now)

		assert.ErrorIs(t, err, order.ErrOrderNotDelivered)
	})

	t.Run("should reject a non-positive actual weight", func(t *testing.T) {
		o := newTestOrder(t)
		driveToDelivered(t, o, vendorID)
		weight := -5.0

		err := o.VerifyDeliveryOTP(o.DeliveryOTP(), &weight, o.CustomerID(), now)

		assert.Error(t, err)
		assert.NotEqual(t, order.StatusCompleted, o.Status())
	})
}

func TestStatus_Transitions(t *testing.T) {
	t.Run("should parse and format status strings", func(t *testing.T) {
		for _, name := range []string{
			"created", "confirmed", "driver_assigned", "pickup",
			"picked_up", "in_transit", "delivered", "completed", "cancelled",
		} {
			status, err := order.StatusFromString(name)
			require.NoError(t, err, name)
			assert.Equal(t, name, status.String())
		}

		_, err := order.StatusFromString("lost")
		assert.Error(t, err)
	})

	t.Run("should expose final statuses", func(t *testing.T) {
		assert.True(t, order.StatusCompleted.IsFinal())
		assert.True(t, order.StatusCancelled.IsFinal())
		assert.False(t, order.StatusInTransit.IsFinal())
	})

	t.Run("should restrict drivers to trip statuses", func(t *testing.T) {
		assert.True(t, order.StatusInTransit.AllowedForRole(order.RoleDriver))
		assert.False(t, order.StatusConfirmed.AllowedForRole(order.RoleDriver))
		assert.False(t, order.StatusCancelled.AllowedForRole(order.RoleDriver))
	})
}
