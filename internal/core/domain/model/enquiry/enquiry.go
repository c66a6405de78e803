package enquiry

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrEnquiryIsNotConstructed is returned when an Enquiry instance was not
// created through NewEnquiry or RestoreEnquiry.
var ErrEnquiryIsNotConstructed = errors.New("Enquiry must be created via NewEnquiry constructor")

// Enquiry is the aggregate root for a customer transport enquiry.
//
// Enquiry follows these invariants:
//   - Must have a valid identifier, customer and truck type
//   - Pickup and delivery cities are mandatory and distinct ends of the trip
//   - Vehicle count and weight are positive
//   - Status transitions follow the linear workflow in Status
//   - A manager is assigned exactly when a price range is selected
type Enquiry struct {
	id                 kernel.UUID
	customerID         kernel.UUID
	pickupCity         string
	pickupPoint        kernel.GeoPoint
	deliveryCity       string
	deliveryPoint      kernel.GeoPoint
	pickupDate         time.Time
	truckTypeID        kernel.UUID
	vehicleCount       int
	weightTon          float64
	cargoDescription   string
	status             Status
	miscellaneousRoute bool
	managerID          *kernel.UUID
	selectedRangeID    *kernel.UUID
	createdAt          time.Time

	guard guard.ConstructorGuard
}

// NewEnquiry creates a submitted Enquiry with a fresh identifier.
func NewEnquiry(
	customerID kernel.UUID,
	pickupCity string,
	pickupPoint kernel.GeoPoint,
	deliveryCity string,
	deliveryPoint kernel.GeoPoint,
	pickupDate time.Time,
	truckTypeID kernel.UUID,
	vehicleCount int,
	weightTon float64,
	cargoDescription string,
) (*Enquiry, error) {
	return RestoreEnquiry(kernel.NewUUID(), customerID, pickupCity, pickupPoint,
		deliveryCity, deliveryPoint, pickupDate, truckTypeID, vehicleCount,
		weightTon, cargoDescription, StatusSubmitted, false, nil, nil, time.Now().UTC())
}

// RestoreEnquiry reconstructs an Enquiry from persistent storage.
func RestoreEnquiry(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupCity string,
	pickupPoint kernel.GeoPoint,
	deliveryCity string,
	deliveryPoint kernel.GeoPoint,
	pickupDate time.Time,
	truckTypeID kernel.UUID,
	vehicleCount int,
	weightTon float64,
	cargoDescription string,
	status Status,
	miscellaneousRoute bool,
	managerID *kernel.UUID,
	selectedRangeID *kernel.UUID,
	createdAt time.Time,
) (*Enquiry, error) {
	e := &Enquiry{
		pickupDate:         pickupDate,
		cargoDescription:   cargoDescription,
		miscellaneousRoute: miscellaneousRoute,
		managerID:          managerID,
		selectedRangeID:    selectedRangeID,
		createdAt:          createdAt,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setCustomerID(customerID),
		e.setPickupCity(pickupCity),
		e.setPickupPoint(pickupPoint),
		e.setDeliveryCity(deliveryCity),
		e.setDeliveryPoint(deliveryPoint),
		e.setTruckTypeID(truckTypeID),
		e.setVehicleCount(vehicleCount),
		e.setWeightTon(weightTon),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate checks that the Enquiry was properly constructed.
func (e *Enquiry) Validate() error {
	if e == nil {
		return ErrEnquiryIsNotConstructed
	}
	return e.guard.Validate(ErrEnquiryIsNotConstructed)
}

// IsEqual compares two enquiries by identifier.
func (e *Enquiry) IsEqual(other *Enquiry) bool {
	return other != nil && e.id.IsEqual(other.id)
}

// ID returns the enquiry's unique identifier.
func (e *Enquiry) ID() kernel.UUID { return e.id }

// CustomerID returns the enquiring customer's identifier.
func (e *Enquiry) CustomerID() kernel.UUID { return e.customerID }

// PickupCity returns the pickup city name.
func (e *Enquiry) PickupCity() string { return e.pickupCity }

// PickupPoint returns the pickup coordinates.
func (e *Enquiry) PickupPoint() kernel.GeoPoint { return e.pickupPoint }

// DeliveryCity returns the delivery city name.
func (e *Enquiry) DeliveryCity() string { return e.deliveryCity }

// DeliveryPoint returns the delivery coordinates.
func (e *Enquiry) DeliveryPoint() kernel.GeoPoint { return e.deliveryPoint }

// PickupDate returns the requested pickup date.
func (e *Enquiry) PickupDate() time.Time { return e.pickupDate }

// TruckTypeID returns the requested vehicle category.
func (e *Enquiry) TruckTypeID() kernel.UUID { return e.truckTypeID }

// VehicleCount returns the number of vehicles requested.
func (e *Enquiry) VehicleCount() int { return e.vehicleCount }

// WeightTon returns the cargo weight in tons.
func (e *Enquiry) WeightTon() float64 { return e.weightTon }

// CargoDescription returns the cargo description.
func (e *Enquiry) CargoDescription() string { return e.cargoDescription }

// Status returns the current workflow status.
func (e *Enquiry) Status() Status { return e.status }

// IsMiscellaneousRoute reports whether price ranges were produced by the
// distance-based fallback because no vendor route matched.
func (e *Enquiry) IsMiscellaneousRoute() bool { return e.miscellaneousRoute }

// ManagerID returns the assigned manager, nil before a range is selected.
func (e *Enquiry) ManagerID() *kernel.UUID { return e.managerID }

// SelectedRangeID returns the chosen price range, nil before selection.
func (e *Enquiry) SelectedRangeID() *kernel.UUID { return e.selectedRangeID }

// CreatedAt returns the enquiry creation time.
func (e *Enquiry) CreatedAt() time.Time { return e.createdAt }

// StartReview moves the enquiry into route matching.
func (e *Enquiry) StartReview() error {
	return e.advance(StatusUnderReview)
}

// MarkQuotesGenerated records that price ranges (possibly a miscellaneous
// fallback) have been produced.
func (e *Enquiry) MarkQuotesGenerated(miscellaneousRoute bool) error {
	if err := e.advance(StatusQuotesGenerated); err != nil {
		return err
	}
	e.miscellaneousRoute = miscellaneousRoute
	return nil
}

// SelectPriceRange records the customer's chosen range and the manager
// assigned to work the enquiry.
func (e *Enquiry) SelectPriceRange(rangeID kernel.UUID, managerID kernel.UUID) error {
	if err := errors.Join(rangeID.Validate(), managerID.Validate()); err != nil {
		return err
	}
	if err := e.advance(StatusQuoteSelected); err != nil {
		return err
	}
	e.selectedRangeID = &rangeID
	e.managerID = &managerID
	return nil
}

// MarkSentToVendors records the manager's fan-out to vendors.
func (e *Enquiry) MarkSentToVendors() error {
	return e.advance(StatusSentToVendors)
}

// MarkVendorResponded records a vendor response. Idempotent while further
// vendors respond.
func (e *Enquiry) MarkVendorResponded() error {
	return e.advance(StatusVendorResponses)
}

// Confirm finalizes the enquiry with a winning vendor.
func (e *Enquiry) Confirm() error {
	return e.advance(StatusConfirmed)
}

// Cancel withdraws the enquiry. Allowed from any non-final status.
func (e *Enquiry) Cancel() error {
	newStatus, err := e.status.Cancel()
	if err != nil {
		return err
	}
	e.status = newStatus
	return nil
}

func (e *Enquiry) advance(target Status) error {
	newStatus, err := e.status.Advance(target)
	if err != nil {
		return err
	}
	e.status = newStatus
	return nil
}

func (e *Enquiry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Enquiry) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customerID: %w", err)
	}
	e.customerID = customerID
	return nil
}

func (e *Enquiry) setPickupCity(pickupCity string) error {
	if pickupCity == "" {
		return errs.NewValueIsRequiredError("pickupCity")
	}
	e.pickupCity = pickupCity
	return nil
}

func (e *Enquiry) setPickupPoint(pickupPoint kernel.GeoPoint) error {
	if err := pickupPoint.Validate(); err != nil {
		return err
	}
	e.pickupPoint = pickupPoint
	return nil
}

func (e *Enquiry) setDeliveryCity(deliveryCity string) error {
	if deliveryCity == "" {
		return errs.NewValueIsRequiredError("deliveryCity")
	}
	e.deliveryCity = deliveryCity
	return nil
}

func (e *Enquiry) setDeliveryPoint(deliveryPoint kernel.GeoPoint) error {
	if err := deliveryPoint.Validate(); err != nil {
		return err
	}
	e.deliveryPoint = deliveryPoint
	return nil
}

func (e *Enquiry) setTruckTypeID(truckTypeID kernel.UUID) error {
	if err := truckTypeID.Validate(); err != nil {
		return fmt.Errorf("truckTypeID: %w", err)
	}
	e.truckTypeID = truckTypeID
	return nil
}

func (e *Enquiry) setVehicleCount(vehicleCount int) error {
	if vehicleCount <= 0 {
		return errs.NewValueIsInvalidError("vehicleCount")
	}
	e.vehicleCount = vehicleCount
	return nil
}

func (e *Enquiry) setWeightTon(weightTon float64) error {
	if weightTon <= 0 {
		return errs.NewValueIsInvalidError("weightTon")
	}
	e.weightTon = weightTon
	return nil
}

func (e *Enquiry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
