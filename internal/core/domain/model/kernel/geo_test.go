package kernel_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create a point from valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(19.0760, 72.8777)

		require.NoError(t, err)
		assert.NoError(t, point.Validate())
		assert.InDelta(t, 19.0760, point.Latitude(), 0.0001)
		assert.InDelta(t, 72.8777, point.Longitude(), 0.0001)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		tests := []struct {
			latitude  float64
			longitude float64
		}{
			{-90, -180},
			{90, 180},
			{0, 0},
		}

		for _, test := range tests {
			_, err := kernel.NewGeoPoint(test.latitude, test.longitude)
			assert.NoError(t, err)
		}
	})

	t.Run("should reject coordinates out of range", func(t *testing.T) {
		tests := []struct {
			name      string
			latitude  float64
			longitude float64
		}{
			{"latitude above 90", 90.1, 0},
			{"latitude below -90", -90.1, 0},
			{"longitude above 180", 0, 180.1},
			{"longitude below -180", 0, -180.1},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(test.latitude, test.longitude)
				assert.Error(t, err)
			})
		}
	})

	t.Run("should reject validation of an unconstructed point", func(t *testing.T) {
		var point kernel.GeoPoint

		assert.Error(t, point.Validate())
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("should compute great circle distance between cities", func(t *testing.T) {
		mumbai, err := kernel.NewGeoPoint(19.0760, 72.8777)
		require.NoError(t, err)
		pune, err := kernel.NewGeoPoint(18.5204, 73.8567)
		require.NoError(t, err)

		distance, err := mumbai.DistanceKm(pune)

		require.NoError(t, err)
		assert.InDelta(t, 120, distance, 5)
	})

	t.Run("should return zero for identical points", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(28.7041, 77.1025)
		require.NoError(t, err)

		distance, err := point.DistanceKm(point)

		require.NoError(t, err)
		assert.InDelta(t, 0, distance, 0.001)
	})

	t.Run("should fail for unconstructed points", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(10, 10)
		require.NoError(t, err)

		_, err = point.DistanceKm(kernel.GeoPoint{})

		assert.Error(t, err)
	})
}

func TestNewPincode(t *testing.T) {
	t.Run("should accept a six digit code", func(t *testing.T) {
		pincode, err := kernel.NewPincode("400001")

		require.NoError(t, err)
		assert.Equal(t, "400001", pincode.String())
		assert.NoError(t, pincode.Validate())
	})

	t.Run("should reject malformed codes", func(t *testing.T) {
		tests := []string{"", "12345", "1234567", "012345", "40000a"}

		for _, value := range tests {
			_, err := kernel.NewPincode(value)
			assert.ErrorIs(t, err, kernel.ErrPincodeIsInvalid, value)
		}
	})

	t.Run("should compare by value", func(t *testing.T) {
		first, err := kernel.NewPincode("400001")
		require.NoError(t, err)
		second, err := kernel.NewPincode("400001")
		require.NoError(t, err)
		other, err := kernel.NewPincode("110001")
		require.NoError(t, err)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(other))
	})
}
