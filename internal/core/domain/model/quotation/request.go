package quotation

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	// MaxActiveRequestsPerCustomer caps how many open requests a customer
	// may hold at once.
	MaxActiveRequestsPerCustomer = 5

	// MinPickupLeadTime is how far in the future the pickup date must lie
	// at request creation.
	MinPickupLeadTime = 24 * time.Hour

	// MinTripDuration is the shortest allowed pickup-to-drop window.
	MinTripDuration = time.Hour

	// MaxTripDuration is the longest allowed pickup-to-drop window.
	MaxTripDuration = 30 * 24 * time.Hour

	// MinWeightKg and MaxWeightKg bound the cargo weight after unit
	// conversion.
	MinWeightKg = 1.0
	MaxWeightKg = 50_000.0
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

	// ErrTooManyActiveRequests is returned when a customer already holds
	// MaxActiveRequestsPerCustomer open requests.
	ErrTooManyActiveRequests = fmt.Errorf(
		"customer already has %d active quotation requests", MaxActiveRequestsPerCustomer)

	// ErrPickupTooSoon is returned when the pickup date is less than
	// MinPickupLeadTime in the future.
	ErrPickupTooSoon = errors.New("pickup must be scheduled at least 24 hours ahead")
)

// WeightUnit is the unit a customer states cargo weight in. All weights are
// normalized to kilograms for validation and persistence.
type WeightUnit int

const (
	// WeightUnitUnknown represents an invalid unit.
	WeightUnitUnknown WeightUnit = iota

	// WeightUnitKg is kilograms.
	WeightUnitKg

	// WeightUnitTon is metric tons (1000 kg).
	WeightUnitTon

	// WeightUnitLbs is pounds (0.453592 kg).
	WeightUnitLbs
)

// WeightUnitFromString parses a weight unit string.
func WeightUnitFromString(s string) (WeightUnit, error) {
	switch s {
	case "kg":
		return WeightUnitKg, nil
	case "ton":
		return WeightUnitTon, nil
	case "lbs":
		return WeightUnitLbs, nil
	default:
		return WeightUnitUnknown, errs.NewValueIsInvalidErrorWithCause(
			"weightUnit", fmt.Errorf("%q is not a valid weight unit", s))
	}
}

// String returns the unit symbol.
func (u WeightUnit) String() string {
	switch u {
	case WeightUnitKg:
		return "kg"
	case WeightUnitTon:
		return "ton"
	case WeightUnitLbs:
		return "lbs"
	default:
		return "unknown"
	}
}

// ToKg converts a weight in this unit to kilograms.
func (u WeightUnit) ToKg(weight float64) (float64, error) {
	switch u {
	case WeightUnitKg:
		return weight, nil
	case WeightUnitTon:
		return weight * 1000, nil
	case WeightUnitLbs:
		return weight * 0.453592, nil
	default:
		return 0, errs.NewValueIsInvalidError("weightUnit")
	}
}

// RequestStatus represents the lifecycle state of a quotation request.
type RequestStatus int

const (
	// RequestStatusUnknown represents an invalid status.
	RequestStatusUnknown RequestStatus = iota

	// RequestStatusActive means the request is open for vendor quotations.
	// Active requests count toward MaxActiveRequestsPerCustomer.
	RequestStatusActive

	// RequestStatusFulfilled means a quotation on the request was accepted.
	RequestStatusFulfilled

	// RequestStatusCancelled means the customer withdrew the request.
	RequestStatusCancelled
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		RequestStatusUnknown:   "unknown",
		RequestStatusActive:    "active",
		RequestStatusFulfilled: "fulfilled",
		RequestStatusCancelled: "cancelled",
	}
}

// RequestStatusFromString parses a persisted status string.
func RequestStatusFromString(s string) (RequestStatus, error) {
	for status, str := range getRequestStatusStrings() {
		if str == s && status != RequestStatusUnknown {
			return status, nil
		}
	}
	return RequestStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid request status", s))
}

// String returns the lower-case name of the status.
func (s RequestStatus) String() string {
	if str, ok := getRequestStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the RequestStatus value is valid.
func (s RequestStatus) Validate() error {
	if s <= RequestStatusUnknown || s > RequestStatusCancelled {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid request status", s))
	}
	return nil
}

// Request is the aggregate root for a customer's call for quotations.
//
// Creation guards (enforced by NewRequest):
//   - pickup at least MinPickupLeadTime in the future
//   - trip duration between MinTripDuration and MaxTripDuration
//   - weight between MinWeightKg and MaxWeightKg after unit conversion
//
// The per-customer active-request cap is checked by the command handler,
// which is the only place that can see the customer's other requests.
type Request struct {
	id            kernel.UUID
	customerID    kernel.UUID
	originPincode kernel.Pincode
	destPincode   kernel.Pincode
	pickupDate    time.Time
	dropDate      time.Time
	weightKg      float64
	weightUnit    WeightUnit
	truckTypeID   kernel.UUID
	urgency       string
	status        RequestStatus
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewRequest creates an active Request with a fresh identifier, validating
// the lead-time, duration and weight guards against now.
func NewRequest(
	customerID kernel.UUID,
	originPincode kernel.Pincode,
	destPincode kernel.Pincode,
	pickupDate time.Time,
	dropDate time.Time,
	weight float64,
	weightUnit WeightUnit,
	truckTypeID kernel.UUID,
	urgency string,
	now time.Time,
) (*Request, error) {
	if pickupDate.Before(now.Add(MinPickupLeadTime)) {
		return nil, ErrPickupTooSoon
	}

	duration := dropDate.Sub(pickupDate)
	if duration < MinTripDuration || duration > MaxTripDuration {
		return nil, errs.NewValueIsOutOfRangeError(
			"trip duration hours", duration.Hours(),
			MinTripDuration.Hours(), MaxTripDuration.Hours())
	}

	weightKg, err := weightUnit.ToKg(weight)
	if err != nil {
		return nil, err
	}
	if weightKg < MinWeightKg || weightKg > MaxWeightKg {
		return nil, errs.NewValueIsOutOfRangeError("weightKg", weightKg, MinWeightKg, MaxWeightKg)
	}

	return RestoreRequest(kernel.NewUUID(), customerID, originPincode, destPincode,
		pickupDate, dropDate, weightKg, weightUnit, truckTypeID, urgency,
		RequestStatusActive, now)
}

// RestoreRequest reconstructs a Request from persistent storage. The weight
// is already normalized to kilograms.
func RestoreRequest(
	id kernel.UUID,
	customerID kernel.UUID,
	originPincode kernel.Pincode,
	destPincode kernel.Pincode,
	pickupDate time.Time,
	dropDate time.Time,
	weightKg float64,
	weightUnit WeightUnit,
	truckTypeID kernel.UUID,
	urgency string,
	status RequestStatus,
	createdAt time.Time,
) (*Request, error) {
	r := &Request{
		pickupDate: pickupDate,
		dropDate:   dropDate,
		weightKg:   weightKg,
		weightUnit: weightUnit,
		urgency:    urgency,
		createdAt:  createdAt,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setCustomerID(customerID),
		r.setOriginPincode(originPincode),
		r.setDestPincode(destPincode),
		r.setTruckTypeID(truckTypeID),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks that the Request was properly constructed.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// IsEqual compares two requests by identifier.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID { return r.id }

// CustomerID returns the requesting customer's identifier.
func (r *Request) CustomerID() kernel.UUID { return r.customerID }

// OriginPincode returns the pickup postal code.
func (r *Request) OriginPincode() kernel.Pincode { return r.originPincode }

// DestinationPincode returns the delivery postal code.
func (r *Request) DestinationPincode() kernel.Pincode { return r.destPincode }

// PickupDate returns the requested pickup time.
func (r *Request) PickupDate() time.Time { return r.pickupDate }

// DropDate returns the requested delivery time.
func (r *Request) DropDate() time.Time { return r.dropDate }

// WeightKg returns the cargo weight normalized to kilograms.
func (r *Request) WeightKg() float64 { return r.weightKg }

// WeightUnit returns the unit the customer originally stated.
func (r *Request) WeightUnit() WeightUnit { return r.weightUnit }

// TruckTypeID returns the requested vehicle category.
func (r *Request) TruckTypeID() kernel.UUID { return r.truckTypeID }

// Urgency returns the free-form urgency hint.
func (r *Request) Urgency() string { return r.urgency }

// Status returns the current request status.
func (r *Request) Status() RequestStatus { return r.status }

// CreatedAt returns the request creation time.
func (r *Request) CreatedAt() time.Time { return r.createdAt }

// IsActive reports whether the request still accepts quotations.
func (r *Request) IsActive() bool {
	return r.status == RequestStatusActive
}

// MarkFulfilled records that a quotation on this request was accepted.
func (r *Request) MarkFulfilled() error {
	if r.status != RequestStatusActive {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot fulfill request in status %s", r.status))
	}
	r.status = RequestStatusFulfilled
	return nil
}

// Cancel withdraws the request.
func (r *Request) Cancel() error {
	if r.status != RequestStatusActive {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("cannot cancel request in status %s", r.status))
	}
	r.status = RequestStatusCancelled
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customerID: %w", err)
	}
	r.customerID = customerID
	return nil
}

func (r *Request) setOriginPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return fmt.Errorf("originPincode: %w", err)
	}
	r.originPincode = pincode
	return nil
}

func (r *Request) setDestPincode(pincode kernel.Pincode) error {
	if err := pincode.Validate(); err != nil {
		return fmt.Errorf("destinationPincode: %w", err)
	}
	r.destPincode = pincode
	return nil
}

func (r *Request) setTruckTypeID(truckTypeID kernel.UUID) error {
	if err := truckTypeID.Validate(); err != nil {
		return fmt.Errorf("truckTypeID: %w", err)
	}
	r.truckTypeID = truckTypeID
	return nil
}

func (r *Request) setStatus(status RequestStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
