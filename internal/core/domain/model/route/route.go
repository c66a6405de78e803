package route

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrRouteIsNotConstructed is returned when a Route instance was not
	// created through NewRoute or RestoreRoute.
	ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

	// ErrDuplicateStopOrder is returned when adding a stop whose sequence
	// number is already taken on the route.
	ErrDuplicateStopOrder = errors.New("stop order is already taken on this route")

	// ErrDuplicateSegmentPricing is returned when adding a pricing row for a
	// (truck type, from city, to city) combination that already exists.
	ErrDuplicateSegmentPricing = errors.New("segment pricing already exists for this truck type and city pair")
)

// Endpoint is a value object describing one end of a route: a city with its
// state, pincode and coordinates.
type Endpoint struct {
	city    string
	state   string
	pincode kernel.Pincode
	point   kernel.GeoPoint
}

// NewEndpoint creates a route endpoint. City is mandatory; state is
// informational.
func NewEndpoint(city string, state string, pincode kernel.Pincode, point kernel.GeoPoint) (Endpoint, error) {
	if city == "" {
		return Endpoint{}, errs.NewValueIsRequiredError("city")
	}
	if err := errors.Join(pincode.Validate(), point.Validate()); err != nil {
		return Endpoint{}, err
	}
	return Endpoint{city: city, state: state, pincode: pincode, point: point}, nil
}

// City returns the endpoint city name.
func (e Endpoint) City() string { return e.city }

// State returns the endpoint state name.
func (e Endpoint) State() string { return e.state }

// Pincode returns the endpoint postal code.
func (e Endpoint) Pincode() kernel.Pincode { return e.pincode }

// Point returns the endpoint coordinates.
func (e Endpoint) Point() kernel.GeoPoint { return e.point }

// Route is the aggregate root for a vendor corridor.
//
// Route follows these invariants:
//   - Must have a valid identifier and owning vendor
//   - Origin and destination are validated endpoints
//   - Distance and duration are positive
//   - Stop sequence numbers are unique within the route
//   - Segment pricing rows are unique per (truck type, from city, to city)
type Route struct {
	id            kernel.UUID
	vendorID      kernel.UUID
	origin        Endpoint
	destination   Endpoint
	distanceKm    float64
	durationHours float64
	frequency     string
	isActive      bool
	stops         []*Stop
	pricing       []*SegmentPricing

	guard guard.ConstructorGuard
}

// NewRoute creates an active Route with a fresh identifier and no stops or
// pricing rows. Frequency is a free-form schedule hint such as "daily".
func NewRoute(
	vendorID kernel.UUID,
	origin Endpoint,
	destination Endpoint,
	distanceKm float64,
	durationHours float64,
	frequency string,
) (*Route, error) {
	return RestoreRoute(kernel.NewUUID(), vendorID, origin, destination,
		distanceKm, durationHours, frequency, true, nil, nil)
}

// RestoreRoute reconstructs a Route from persistent storage together with its
// stops and pricing rows.
func RestoreRoute(
	id kernel.UUID,
	vendorID kernel.UUID,
	origin Endpoint,
	destination Endpoint,
	distanceKm float64,
	durationHours float64,
	frequency string,
	isActive bool,
	stops []*Stop,
	pricing []*SegmentPricing,
) (*Route, error) {
	r := &Route{
		origin:      origin,
		destination: destination,
		frequency:   frequency,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setVendorID(vendorID),
		r.setDistanceKm(distanceKm),
		r.setDurationHours(durationHours),
	); err != nil {
		return nil, err
	}

	for _, s := range stops {
		if err := r.AddStop(s); err != nil {
			return nil, err
		}
	}
	for _, p := range pricing {
		if err := r.AddSegmentPricing(p); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Validate checks that the Route was properly constructed.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// IsEqual compares two routes by identifier.
func (r *Route) IsEqual(other *Route) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID { return r.id }

// VendorID returns the owning vendor's identifier.
func (r *Route) VendorID() kernel.UUID { return r.vendorID }

// Origin returns the route origin endpoint.
func (r *Route) Origin() Endpoint { return r.origin }

// Destination returns the route destination endpoint.
func (r *Route) Destination() Endpoint { return r.destination }

// DistanceKm returns the total corridor distance in kilometers.
func (r *Route) DistanceKm() float64 { return r.distanceKm }

// DurationHours returns the estimated travel time in hours.
func (r *Route) DurationHours() float64 { return r.durationHours }

// Frequency returns the schedule hint.
func (r *Route) Frequency() string { return r.frequency }

// IsActive reports whether the route participates in enquiry matching.
func (r *Route) IsActive() bool { return r.isActive }

// Stops returns the intermediate stops in insertion order.
func (r *Route) Stops() []*Stop { return r.stops }

// Pricing returns the segment pricing rows.
func (r *Route) Pricing() []*SegmentPricing { return r.pricing }

// Deactivate removes the route from enquiry matching.
func (r *Route) Deactivate() {
	r.isActive = false
}

// AddStop appends an intermediate stop, enforcing sequence uniqueness.
func (r *Route) AddStop(stop *Stop) error {
	if err := stop.Validate(); err != nil {
		return err
	}
	for _, existing := range r.stops {
		if existing.Order() == stop.Order() {
			return fmt.Errorf("%w: order %d", ErrDuplicateStopOrder, stop.Order())
		}
	}
	r.stops = append(r.stops, stop)
	return nil
}

// AddSegmentPricing appends a pricing row, enforcing uniqueness per
// (truck type, from city, to city).
func (r *Route) AddSegmentPricing(pricing *SegmentPricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	for _, existing := range r.pricing {
		if existing.TruckTypeID().IsEqual(pricing.TruckTypeID()) &&
			strings.EqualFold(existing.FromCity(), pricing.FromCity()) &&
			strings.EqualFold(existing.ToCity(), pricing.ToCity()) {
			return fmt.Errorf("%w: %s -> %s", ErrDuplicateSegmentPricing,
				pricing.FromCity(), pricing.ToCity())
		}
	}
	r.pricing = append(r.pricing, pricing)
	return nil
}

// ServesCity reports whether the given city matches the route origin,
// destination or any stop. Matching is case-insensitive and substring based
// in both directions, so "Navi Mumbai" serves an enquiry for "Mumbai".
func (r *Route) ServesCity(city string) bool {
	if cityMatches(r.origin.City(), city) || cityMatches(r.destination.City(), city) {
		return true
	}
	for _, stop := range r.stops {
		if cityMatches(stop.City(), city) {
			return true
		}
	}
	return false
}

// cityMatches implements the bidirectional case-insensitive substring match
// used throughout enquiry routing.
func cityMatches(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return fmt.Errorf("vendorID: %w", err)
	}
	r.vendorID = vendorID
	return nil
}

func (r *Route) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidError("distanceKm")
	}
	r.distanceKm = distanceKm
	return nil
}

func (r *Route) setDurationHours(durationHours float64) error {
	if durationHours <= 0 {
		return errs.NewValueIsInvalidError("durationHours")
	}
	r.durationHours = durationHours
	return nil
}
