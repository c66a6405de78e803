package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateRouteCommandIsNotConstructed = errors.New(
		"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
	)

	// ErrDuplicateRoute is returned when the vendor already publishes a
	// route between the same origin and destination cities.
	ErrDuplicateRoute = errors.New(
		"a route between these cities already exists for this vendor",
	)
)

// CreateRouteCommand represents a vendor's request to publish a transport
// corridor together with its intermediate stops and segment pricing rows.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	vendorID      kernel.UUID
	origin        route.Endpoint
	destination   route.Endpoint
	distanceKm    float64
	durationHours float64
	frequency     string
	stops         []*route.Stop
	pricing       []*route.SegmentPricing

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to publish a route. The stops and
// pricing rows must already be constructed; their own invariants were
// checked by their constructors.
func NewCreateRouteCommand(
	vendorID kernel.UUID,
	origin route.Endpoint,
	destination route.Endpoint,
	distanceKm float64,
	durationHours float64,
	frequency string,
	stops []*route.Stop,
	pricing []*route.SegmentPricing,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		origin:      origin,
		destination: destination,
		frequency:   frequency,
		stops:       stops,
		pricing:     pricing,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setDistanceKm(distanceKm),
		cmd.setDurationHours(durationHours),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// VendorID returns the owning vendor's identifier.
func (c CreateRouteCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Origin returns the route origin.
func (c CreateRouteCommand) Origin() route.Endpoint {
	return c.origin
}

// Destination returns the route destination.
func (c CreateRouteCommand) Destination() route.Endpoint {
	return c.destination
}

// DistanceKm returns the total corridor length in kilometers.
func (c CreateRouteCommand) DistanceKm() float64 {
	return c.distanceKm
}

// DurationHours returns the estimated transit time in hours.
func (c CreateRouteCommand) DurationHours() float64 {
	return c.durationHours
}

// Frequency returns the schedule hint, for example "daily".
func (c CreateRouteCommand) Frequency() string {
	return c.frequency
}

// Stops returns the ordered intermediate stops.
func (c CreateRouteCommand) Stops() []*route.Stop {
	return c.stops
}

// Pricing returns the segment pricing rows.
func (c CreateRouteCommand) Pricing() []*route.SegmentPricing {
	return c.pricing
}

func (c *CreateRouteCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateRouteCommand) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidError("distanceKm")
	}

	c.distanceKm = distanceKm
	return nil
}

func (c *CreateRouteCommand) setDurationHours(durationHours float64) error {
	if durationHours <= 0 {
		return errs.NewValueIsInvalidError("durationHours")
	}

	c.durationHours = durationHours
	return nil
}
