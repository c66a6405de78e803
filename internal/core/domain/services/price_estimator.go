package services

import (
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

const (
	estimatorRatePerKmRupees = 15.0
	defaultFloorRupees       = 2000.0
	maxDistanceKm            = 10_000.0
)

// PriceEstimator computes the minimum expected price for a trip, used as the
// lower anchor when vendors submit quotations.
type PriceEstimator struct{}

// NewPriceEstimator creates a new PriceEstimator instance.
func NewPriceEstimator() PriceEstimator {
	return PriceEstimator{}
}

type floorRate struct {
	fragment string
	rupees   float64
}

// floorRates lists base rates per truck type name fragment, most specific
// first so "small container" resolves to the container rate. Unknown types
// fall back to the mini rate.
func floorRates() []floorRate {
	return []floorRate{
		{"container", 10000},
		{"large", 7000},
		{"medium", 5000},
		{"small", 3500},
		{"mini", 2000},
	}
}

// MinimumExpected returns the floor rate for the truck type plus a per-km
// component over the trip distance.
func (e PriceEstimator) MinimumExpected(truckTypeName string, distanceKm float64) (kernel.Money, error) {
	if distanceKm < 0 || distanceKm > maxDistanceKm {
		return kernel.Money{}, errs.NewValueIsOutOfRangeError("distanceKm", distanceKm, 0, maxDistanceKm)
	}

	floor := defaultFloorRupees
	name := strings.ToLower(strings.TrimSpace(truckTypeName))
	for _, rate := range floorRates() {
		if strings.Contains(name, rate.fragment) {
			floor = rate.rupees
			break
		}
	}

	return kernel.NewMoneyFromRupees(floor + estimatorRatePerKmRupees*distanceKm)
}
