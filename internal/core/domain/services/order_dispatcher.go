package services

import (
	"errors"

	"freight/internal/core/domain/model/truck"
)

// ErrNoTruckAvailable is returned when the vendor has no available truck of
// the requested type to put on a new order.
var ErrNoTruckAvailable = errors.New("no truck available")

// OrderDispatcher is a domain service that picks which of a vendor's
// available trucks goes on a new order.
//
// Business rules:
//   - Only available trucks are considered
//   - Older trucks are dispatched first, so mileage spreads evenly across
//     the fleet
//   - The selected truck is marked dispatched atomically with the selection
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch selects the truck to engage for an order and marks it
// dispatched. Returns ErrNoTruckAvailable when no candidate is available.
func (d OrderDispatcher) Dispatch(candidates []*truck.Truck) (*truck.Truck, error) {
	best, err := d.findBestTruck(candidates)
	if err != nil {
		return nil, err
	}

	if err = best.Dispatch(); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestTruck picks the oldest available truck, breaking ties by
// registration number so selection is deterministic.
func (d OrderDispatcher) findBestTruck(candidates []*truck.Truck) (*truck.Truck, error) {
	var best *truck.Truck

	for _, candidate := range candidates {
		if candidate == nil || !candidate.IsAvailable() {
			continue
		}

		if best == nil {
			best = candidate
			continue
		}

		if candidate.ManufactureYear() < best.ManufactureYear() {
			best = candidate
			continue
		}

		if candidate.ManufactureYear() == best.ManufactureYear() &&
			candidate.RegistrationNumber() < best.RegistrationNumber() {
			best = candidate
		}
	}

	if best == nil {
		return nil, ErrNoTruckAvailable
	}

	return best, nil
}
