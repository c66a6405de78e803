package route

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrSegmentPricingIsNotConstructed is returned when a SegmentPricing
// instance was not created through NewSegmentPricing or
// RestoreSegmentPricing.
var ErrSegmentPricingIsNotConstructed = errors.New(
	"SegmentPricing must be created via NewSegmentPricing constructor")

// SegmentPricing prices one (from city, to city) segment of a route for a
// particular truck type. TotalPrice is the sum of all charge components and
// is the figure that enquiry price ranges aggregate over.
type SegmentPricing struct {
	id                kernel.UUID
	truckTypeID       kernel.UUID
	fromCity          string
	toCity            string
	baseCharge        kernel.Money
	fuelCharge        kernel.Money
	tollCharge        kernel.Money
	loadingCharge     kernel.Money
	unloadingCharge   kernel.Money
	pricePerKm        kernel.Money
	minPrice          kernel.Money
	maxPrice          kernel.Money
	capacityTon       float64
	availableVehicles int

	guard guard.ConstructorGuard
}

// NewSegmentPricing creates a SegmentPricing with a fresh identifier.
func NewSegmentPricing(
	truckTypeID kernel.UUID,
	fromCity string,
	toCity string,
	baseCharge kernel.Money,
	fuelCharge kernel.Money,
	tollCharge kernel.Money,
	loadingCharge kernel.Money,
	unloadingCharge kernel.Money,
	pricePerKm kernel.Money,
	minPrice kernel.Money,
	maxPrice kernel.Money,
	capacityTon float64,
	availableVehicles int,
) (*SegmentPricing, error) {
	return RestoreSegmentPricing(kernel.NewUUID(), truckTypeID, fromCity, toCity,
		baseCharge, fuelCharge, tollCharge, loadingCharge, unloadingCharge,
		pricePerKm, minPrice, maxPrice, capacityTon, availableVehicles)
}

// RestoreSegmentPricing reconstructs a SegmentPricing from persistent storage.
func RestoreSegmentPricing(
	id kernel.UUID,
	truckTypeID kernel.UUID,
	fromCity string,
	toCity string,
	baseCharge kernel.Money,
	fuelCharge kernel.Money,
	tollCharge kernel.Money,
	loadingCharge kernel.Money,
	unloadingCharge kernel.Money,
	pricePerKm kernel.Money,
	minPrice kernel.Money,
	maxPrice kernel.Money,
	capacityTon float64,
	availableVehicles int,
) (*SegmentPricing, error) {
	p := &SegmentPricing{
		baseCharge:      baseCharge,
		fuelCharge:      fuelCharge,
		tollCharge:      tollCharge,
		loadingCharge:   loadingCharge,
		unloadingCharge: unloadingCharge,
		pricePerKm:      pricePerKm,
		minPrice:        minPrice,
		maxPrice:        maxPrice,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setTruckTypeID(truckTypeID),
		p.setFromCity(fromCity),
		p.setToCity(toCity),
		p.setCapacityTon(capacityTon),
		p.setAvailableVehicles(availableVehicles),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks that the SegmentPricing was properly constructed.
func (p *SegmentPricing) Validate() error {
	if p == nil {
		return ErrSegmentPricingIsNotConstructed
	}
	return p.guard.Validate(ErrSegmentPricingIsNotConstructed)
}

// ID returns the pricing row's unique identifier.
func (p *SegmentPricing) ID() kernel.UUID { return p.id }

// TruckTypeID returns the priced truck type.
func (p *SegmentPricing) TruckTypeID() kernel.UUID { return p.truckTypeID }

// FromCity returns the segment start city.
func (p *SegmentPricing) FromCity() string { return p.fromCity }

// ToCity returns the segment end city.
func (p *SegmentPricing) ToCity() string { return p.toCity }

// BaseCharge returns the base freight charge.
func (p *SegmentPricing) BaseCharge() kernel.Money { return p.baseCharge }

// FuelCharge returns the fuel surcharge.
func (p *SegmentPricing) FuelCharge() kernel.Money { return p.fuelCharge }

// TollCharge returns the toll component.
func (p *SegmentPricing) TollCharge() kernel.Money { return p.tollCharge }

// LoadingCharge returns the loading charge.
func (p *SegmentPricing) LoadingCharge() kernel.Money { return p.loadingCharge }

// UnloadingCharge returns the unloading charge.
func (p *SegmentPricing) UnloadingCharge() kernel.Money { return p.unloadingCharge }

// PricePerKm returns the per kilometer rate.
func (p *SegmentPricing) PricePerKm() kernel.Money { return p.pricePerKm }

// MinPrice returns the lower bound the vendor will accept on this segment.
func (p *SegmentPricing) MinPrice() kernel.Money { return p.minPrice }

// MaxPrice returns the upper bound the vendor quotes on this segment.
func (p *SegmentPricing) MaxPrice() kernel.Money { return p.maxPrice }

// CapacityTon returns the load capacity offered on this segment.
func (p *SegmentPricing) CapacityTon() float64 { return p.capacityTon }

// AvailableVehicles returns how many vehicles the vendor can commit.
func (p *SegmentPricing) AvailableVehicles() int { return p.availableVehicles }

// TotalPrice is the all-in segment price:
// base + fuel + toll + loading + unloading.
func (p *SegmentPricing) TotalPrice() kernel.Money {
	return p.baseCharge.
		Add(p.fuelCharge).
		Add(p.tollCharge).
		Add(p.loadingCharge).
		Add(p.unloadingCharge)
}

// MatchesSegment reports whether this pricing row covers the given pickup
// and delivery cities, using the same bidirectional substring match as
// Route.ServesCity.
func (p *SegmentPricing) MatchesSegment(pickupCity, deliveryCity string) bool {
	return cityMatches(p.fromCity, pickupCity) && cityMatches(p.toCity, deliveryCity)
}

func (p *SegmentPricing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *SegmentPricing) setTruckTypeID(truckTypeID kernel.UUID) error {
	if err := truckTypeID.Validate(); err != nil {
		return fmt.Errorf("truckTypeID: %w", err)
	}
	p.truckTypeID = truckTypeID
	return nil
}

func (p *SegmentPricing) setFromCity(fromCity string) error {
	if fromCity == "" {
		return errs.NewValueIsRequiredError("fromCity")
	}
	p.fromCity = fromCity
	return nil
}

func (p *SegmentPricing) setToCity(toCity string) error {
	if toCity == "" {
		return errs.NewValueIsRequiredError("toCity")
	}
	p.toCity = toCity
	return nil
}

func (p *SegmentPricing) setCapacityTon(capacityTon float64) error {
	if capacityTon <= 0 {
		return errs.NewValueIsInvalidError("capacityTon")
	}
	p.capacityTon = capacityTon
	return nil
}

func (p *SegmentPricing) setAvailableVehicles(availableVehicles int) error {
	if availableVehicles < 0 {
		return errs.NewValueIsInvalidError("availableVehicles")
	}
	p.availableVehicles = availableVehicles
	return nil
}
