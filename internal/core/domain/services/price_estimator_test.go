package services_test

import (
	"testing"

	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceEstimator_MinimumExpected(t *testing.T) {
	estimator := services.NewPriceEstimator()

	t.Run("should combine truck type floor with per km component", func(t *testing.T) {
		tests := []struct {
			truckTypeName  string
			distanceKm     float64
			expectedRupees float64
		}{
			{"Container", 100, 10000 + 1500},
			{"Large Open Body", 200, 7000 + 3000},
			{"Medium Truck", 0, 5000},
			{"Small Pickup", 50, 3500 + 750},
			{"Mini Tempo", 10, 2000 + 150},
		}

		for _, test := range tests {
			price, err := estimator.MinimumExpected(test.truckTypeName, test.distanceKm)

			require.NoError(t, err, test.truckTypeName)
			assert.InDelta(t, test.expectedRupees, price.Rupees(), 0.01, test.truckTypeName)
		}
	})

	t.Run("should resolve most specific fragment first", func(t *testing.T) {
		price, err := estimator.MinimumExpected("Small Container Truck", 0)

		require.NoError(t, err)
		assert.InDelta(t, 10000, price.Rupees(), 0.01)
	})

	t.Run("should fall back to default floor for unknown truck type", func(t *testing.T) {
		price, err := estimator.MinimumExpected("Refrigerated Trailer", 100)

		require.NoError(t, err)
		assert.InDelta(t, 2000+1500, price.Rupees(), 0.01)
	})

	t.Run("should reject negative distance", func(t *testing.T) {
		_, err := estimator.MinimumExpected("Container", -1)

		var outOfRange *errs.ValueIsOutOfRangeError
		assert.ErrorAs(t, err, &outOfRange)
	})

	t.Run("should reject distance beyond the supported maximum", func(t *testing.T) {
		_, err := estimator.MinimumExpected("Container", 10_001)

		var outOfRange *errs.ValueIsOutOfRangeError
		assert.ErrorAs(t, err, &outOfRange)
	})
}
