package route

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrStopIsNotConstructed is returned when a Stop instance was not created
// through NewStop or RestoreStop.
var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// Stop is an intermediate halt on a route. The order field gives the stop's
// position along the corridor, counted from the origin.
type Stop struct {
	id                   kernel.UUID
	city                 string
	point                kernel.GeoPoint
	order                int
	distanceFromOriginKm float64
	canPickup            bool
	canDrop              bool

	guard guard.ConstructorGuard
}

// NewStop creates a Stop with a fresh identifier.
func NewStop(
	city string,
	point kernel.GeoPoint,
	order int,
	distanceFromOriginKm float64,
	canPickup bool,
	canDrop bool,
) (*Stop, error) {
	return RestoreStop(kernel.NewUUID(), city, point, order, distanceFromOriginKm, canPickup, canDrop)
}

// RestoreStop reconstructs a Stop from persistent storage.
func RestoreStop(
	id kernel.UUID,
	city string,
	point kernel.GeoPoint,
	order int,
	distanceFromOriginKm float64,
	canPickup bool,
	canDrop bool,
) (*Stop, error) {
	s := &Stop{
		canPickup: canPickup,
		canDrop:   canDrop,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setCity(city),
		s.setPoint(point),
		s.setOrder(order),
		s.setDistanceFromOriginKm(distanceFromOriginKm),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks that the Stop was properly constructed.
func (s *Stop) Validate() error {
	if s == nil {
		return ErrStopIsNotConstructed
	}
	return s.guard.Validate(ErrStopIsNotConstructed)
}

// ID returns the stop's unique identifier.
func (s *Stop) ID() kernel.UUID { return s.id }

// City returns the stop city name.
func (s *Stop) City() string { return s.city }

// Point returns the stop coordinates.
func (s *Stop) Point() kernel.GeoPoint { return s.point }

// Order returns the stop's position along the route, counted from origin.
func (s *Stop) Order() int { return s.order }

// DistanceFromOriginKm returns the distance from the route origin.
func (s *Stop) DistanceFromOriginKm() float64 { return s.distanceFromOriginKm }

// CanPickup reports whether cargo may be picked up at this stop.
func (s *Stop) CanPickup() bool { return s.canPickup }

// CanDrop reports whether cargo may be dropped at this stop.
func (s *Stop) CanDrop() bool { return s.canDrop }

func (s *Stop) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Stop) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	s.city = city
	return nil
}

func (s *Stop) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	s.point = point
	return nil
}

func (s *Stop) setOrder(order int) error {
	if order <= 0 {
		return errs.NewValueIsInvalidError("order")
	}
	s.order = order
	return nil
}

func (s *Stop) setDistanceFromOriginKm(distanceFromOriginKm float64) error {
	if distanceFromOriginKm < 0 {
		return errs.NewValueIsInvalidError("distanceFromOriginKm")
	}
	s.distanceFromOriginKm = distanceFromOriginKm
	return nil
}
