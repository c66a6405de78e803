package enquiry

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrPriceRangeIsNotConstructed is returned when a PriceRange instance was
// not created through NewPriceRange or RestorePriceRange.
var ErrPriceRangeIsNotConstructed = errors.New("PriceRange must be created via NewPriceRange constructor")

// Chance grades how likely an enquiry served at this price range is to find
// a vendor.
type Chance int

const (
	// ChanceUnknown represents an invalid chance value.
	ChanceUnknown Chance = iota

	// ChanceLow applies when few vendors or vehicles cover the corridor.
	ChanceLow

	// ChanceMedium applies when at least two vendors can cover the request.
	ChanceMedium

	// ChanceHigh applies when at least three vendors offer twice the
	// requested vehicles.
	ChanceHigh
)

func getChanceStrings() map[Chance]string {
	return map[Chance]string{
		ChanceUnknown: "unknown",
		ChanceLow:     "low",
		ChanceMedium:  "medium",
		ChanceHigh:    "high",
	}
}

// ChanceFromString parses a persisted chance string.
func ChanceFromString(s string) (Chance, error) {
	for c, str := range getChanceStrings() {
		if str == s && c != ChanceUnknown {
			return c, nil
		}
	}
	return ChanceUnknown, errs.NewValueIsInvalidErrorWithCause(
		"chance", fmt.Errorf("%q is not a valid chance level", s))
}

// String returns the lower-case name of the chance level.
func (c Chance) String() string {
	if str, ok := getChanceStrings()[c]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Chance value is valid.
func (c Chance) Validate() error {
	if c < ChanceLow || c > ChanceHigh {
		return errs.NewValueIsInvalidErrorWithCause(
			"chance", fmt.Errorf("%d is not a valid chance level", c))
	}
	return nil
}

// PriceRange is a grouped price estimate generated for an enquiry from
// matched route segments, or from the distance-based miscellaneous fallback
// when nothing matched.
type PriceRange struct {
	id            kernel.UUID
	enquiryID     kernel.UUID
	minPrice      kernel.Money
	maxPrice      kernel.Money
	avgPrice      kernel.Money
	vehicleCount  int
	vendorCount   int
	chance        Chance
	durationHours float64
	miscellaneous bool

	guard guard.ConstructorGuard
}

// NewPriceRange creates a PriceRange with a fresh identifier.
func NewPriceRange(
	enquiryID kernel.UUID,
	minPrice kernel.Money,
	maxPrice kernel.Money,
	avgPrice kernel.Money,
	vehicleCount int,
	vendorCount int,
	chance Chance,
	durationHours float64,
	miscellaneous bool,
) (*PriceRange, error) {
	return RestorePriceRange(kernel.NewUUID(), enquiryID, minPrice, maxPrice,
		avgPrice, vehicleCount, vendorCount, chance, durationHours, miscellaneous)
}

// RestorePriceRange reconstructs a PriceRange from persistent storage.
func RestorePriceRange(
	id kernel.UUID,
	enquiryID kernel.UUID,
	minPrice kernel.Money,
	maxPrice kernel.Money,
	avgPrice kernel.Money,
	vehicleCount int,
	vendorCount int,
	chance Chance,
	durationHours float64,
	miscellaneous bool,
) (*PriceRange, error) {
	p := &PriceRange{
		minPrice:      minPrice,
		maxPrice:      maxPrice,
		avgPrice:      avgPrice,
		durationHours: durationHours,
		miscellaneous: miscellaneous,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setEnquiryID(enquiryID),
		p.setVehicleCount(vehicleCount),
		p.setVendorCount(vendorCount),
		p.setChance(chance),
	); err != nil {
		return nil, err
	}

	if maxPrice.LessThan(minPrice) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"maxPrice", fmt.Errorf("max price %s is below min price %s", maxPrice, minPrice))
	}

	return p, nil
}

// Validate checks that the PriceRange was properly constructed.
func (p *PriceRange) Validate() error {
	if p == nil {
		return ErrPriceRangeIsNotConstructed
	}
	return p.guard.Validate(ErrPriceRangeIsNotConstructed)
}

// ID returns the price range's unique identifier.
func (p *PriceRange) ID() kernel.UUID { return p.id }

// EnquiryID returns the owning enquiry's identifier.
func (p *PriceRange) EnquiryID() kernel.UUID { return p.enquiryID }

// MinPrice returns the lower bound of the estimate.
func (p *PriceRange) MinPrice() kernel.Money { return p.minPrice }

// MaxPrice returns the upper bound of the estimate.
func (p *PriceRange) MaxPrice() kernel.Money { return p.maxPrice }

// AvgPrice returns the recommended price within the range.
func (p *PriceRange) AvgPrice() kernel.Money { return p.avgPrice }

// VehicleCount returns the vehicles available across the grouped segments.
func (p *PriceRange) VehicleCount() int { return p.vehicleCount }

// VendorCount returns the distinct vendors behind the grouped segments.
func (p *PriceRange) VendorCount() int { return p.vendorCount }

// ChanceLevel returns the fulfilment likelihood grade.
func (p *PriceRange) ChanceLevel() Chance { return p.chance }

// DurationHours returns the estimated trip duration.
func (p *PriceRange) DurationHours() float64 { return p.durationHours }

// IsMiscellaneous reports whether the range came from the distance-based
// fallback rather than matched routes.
func (p *PriceRange) IsMiscellaneous() bool { return p.miscellaneous }

func (p *PriceRange) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *PriceRange) setEnquiryID(enquiryID kernel.UUID) error {
	if err := enquiryID.Validate(); err != nil {
		return fmt.Errorf("enquiryID: %w", err)
	}
	p.enquiryID = enquiryID
	return nil
}

func (p *PriceRange) setVehicleCount(vehicleCount int) error {
	if vehicleCount < 0 {
		return errs.NewValueIsInvalidError("vehicleCount")
	}
	p.vehicleCount = vehicleCount
	return nil
}

func (p *PriceRange) setVendorCount(vendorCount int) error {
	if vendorCount < 0 {
		return errs.NewValueIsInvalidError("vendorCount")
	}
	p.vendorCount = vendorCount
	return nil
}

func (p *PriceRange) setChance(chance Chance) error {
	if err := chance.Validate(); err != nil {
		return err
	}
	p.chance = chance
	return nil
}
