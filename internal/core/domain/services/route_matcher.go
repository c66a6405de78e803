package services

import (
	"errors"
	"math"

	"freight/internal/core/domain/model/enquiry"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"
)

const (
	// priceGroupStepRupees is the bucket width used to group matched
	// segments into price ranges: totals are rounded to the nearest 500.
	priceGroupStepRupees = 500

	// Miscellaneous fallback parameters, applied when no vendor route
	// matches an enquiry.
	miscRatePerKmRupees = 25.0
	miscLowerFactor     = 1.2
	miscUpperFactor     = 1.5
	miscRecommended     = 1.35
	miscSpeedKmPerHour  = 60.0
)

// ErrNoRanges is returned when price range generation produces nothing,
// which only happens for an empty match set with a zero-distance fallback.
var ErrNoRanges = errors.New("no price ranges could be generated")

// SegmentMatch pairs a matched pricing row with the route it belongs to.
type SegmentMatch struct {
	Route   *route.Route
	Pricing *route.SegmentPricing
}

// RouteMatcher is a domain service that matches customer enquiries against
// vendor routes and aggregates the matches into price ranges.
//
// Matching rules:
//   - only active routes participate
//   - only pricing rows of the enquiry's truck type with at least one
//     available vehicle are considered
//   - the pickup city must match the segment's from-city or be served by
//     the route (origin, destination or a stop), and likewise the delivery
//     city against the segment's to-city; city comparison is
//     case-insensitive substring in both directions
type RouteMatcher struct{}

// NewRouteMatcher creates a new RouteMatcher instance.
func NewRouteMatcher() RouteMatcher {
	return RouteMatcher{}
}

// Match returns the pricing rows across the given routes that can serve the
// enquiry.
func (m RouteMatcher) Match(enq *enquiry.Enquiry, routes []*route.Route) ([]SegmentMatch, error) {
	if err := enq.Validate(); err != nil {
		return nil, err
	}

	var matches []SegmentMatch
	for _, r := range routes {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if !r.IsActive() {
			continue
		}
		for _, p := range r.Pricing() {
			if !p.TruckTypeID().IsEqual(enq.TruckTypeID()) || p.AvailableVehicles() == 0 {
				continue
			}
			if m.segmentServes(r, p, enq.PickupCity(), enq.DeliveryCity()) {
				matches = append(matches, SegmentMatch{Route: r, Pricing: p})
			}
		}
	}
	return matches, nil
}

// segmentServes checks both ends of the trip against the segment cities and
// the route's served cities.
func (m RouteMatcher) segmentServes(r *route.Route, p *route.SegmentPricing, pickup, delivery string) bool {
	if p.MatchesSegment(pickup, delivery) {
		return true
	}
	return r.ServesCity(pickup) && r.ServesCity(delivery)
}

// GeneratePriceRanges groups the matches by total segment price rounded to
// the nearest 500 and grades each group's fulfilment chance:
//   - high: at least 3 distinct vendors and vehicles at least twice the
//     requested count
//   - medium: at least 2 distinct vendors and vehicles covering the request
//   - low: everything else
//
// With no matches the distance-based miscellaneous fallback produces a
// single range: distance × 25/km × requested vehicles, bounds ×1.2 and
// ×1.5, recommended ×1.35, duration distance/60 h, chance medium.
func (m RouteMatcher) GeneratePriceRanges(enq *enquiry.Enquiry, matches []SegmentMatch) ([]*enquiry.PriceRange, error) {
	if err := enq.Validate(); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		fallback, err := m.miscellaneousRange(enq)
		if err != nil {
			return nil, err
		}
		return []*enquiry.PriceRange{fallback}, nil
	}

	groups := make(map[int64][]SegmentMatch)
	var keys []int64
	for _, match := range matches {
		key := roundToStep(match.Pricing.TotalPrice().Rupees(), priceGroupStepRupees)
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], match)
	}

	ranges := make([]*enquiry.PriceRange, 0, len(groups))
	for _, key := range keys {
		group := groups[key]
		r, err := m.buildRange(enq, group)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

func (m RouteMatcher) buildRange(enq *enquiry.Enquiry, group []SegmentMatch) (*enquiry.PriceRange, error) {
	var (
		minPaise, maxPaise, sumPaise int64
		vehicles                     int
		duration                     float64
	)
	vendors := make(map[kernel.UUID]struct{})

	for i, match := range group {
		total := match.Pricing.TotalPrice().Paise()
		if i == 0 || total < minPaise {
			minPaise = total
		}
		if total > maxPaise {
			maxPaise = total
		}
		sumPaise += total
		vehicles += match.Pricing.AvailableVehicles()
		vendors[match.Route.VendorID()] = struct{}{}
		if i == 0 || match.Route.DurationHours() < duration {
			duration = match.Route.DurationHours()
		}
	}

	minPrice, err := kernel.NewMoneyFromPaise(minPaise)
	if err != nil {
		return nil, err
	}
	maxPrice, err := kernel.NewMoneyFromPaise(maxPaise)
	if err != nil {
		return nil, err
	}
	avgPrice, err := kernel.NewMoneyFromPaise(sumPaise / int64(len(group)))
	if err != nil {
		return nil, err
	}

	chance := enquiry.ChanceLow
	switch {
	case len(vendors) >= 3 && vehicles >= 2*enq.VehicleCount():
		chance = enquiry.ChanceHigh
	case len(vendors) >= 2 && vehicles >= enq.VehicleCount():
		chance = enquiry.ChanceMedium
	}

	return enquiry.NewPriceRange(enq.ID(), minPrice, maxPrice, avgPrice,
		vehicles, len(vendors), chance, duration, false)
}

func (m RouteMatcher) miscellaneousRange(enq *enquiry.Enquiry) (*enquiry.PriceRange, error) {
	distanceKm, err := enq.PickupPoint().DistanceKm(enq.DeliveryPoint())
	if err != nil {
		return nil, err
	}
	base := distanceKm * miscRatePerKmRupees * float64(enq.VehicleCount())
	if base <= 0 {
		return nil, ErrNoRanges
	}

	minPrice, err := kernel.NewMoneyFromRupees(base * miscLowerFactor)
	if err != nil {
		return nil, err
	}
	maxPrice, err := kernel.NewMoneyFromRupees(base * miscUpperFactor)
	if err != nil {
		return nil, err
	}
	avgPrice, err := kernel.NewMoneyFromRupees(base * miscRecommended)
	if err != nil {
		return nil, err
	}

	return enquiry.NewPriceRange(enq.ID(), minPrice, maxPrice, avgPrice,
		enq.VehicleCount(), 0, enquiry.ChanceMedium,
		distanceKm/miscSpeedKmPerHour, true)
}

// roundToStep rounds a rupee amount to the nearest multiple of step.
func roundToStep(rupees float64, step int64) int64 {
	return int64(math.Round(rupees/float64(step))) * step
}
