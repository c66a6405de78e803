package order

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderNotDelivered is returned when verifying a delivery OTP on an
	// order that has not reached Delivered.
	ErrOrderNotDelivered = errors.New("order has not been delivered yet")

	// ErrOTPMismatch is returned when the OTP presented by the customer does
	// not match the order's delivery OTP.
	ErrOTPMismatch = errors.New("delivery OTP does not match")

	// ErrDriverNotSet is returned when transitioning to Pickup without a
	// driver on the order.
	ErrDriverNotSet = errors.New("order has no driver assigned")
)

// Order is the aggregate root for a confirmed freight booking. Orders are
// created exclusively by converting an accepted quotation and are bound 1:1
// to it.
//
// Order follows these invariants:
//   - Must have a valid identifier, quotation, customer and vendor
//   - The order number and delivery OTP are generated at creation and never
//     change
//   - Status transitions follow the state machine in Status, gated by the
//     actor's role; every transition appends a history entry
//   - Actual pickup and delivery times are stamped by the PickedUp and
//     Delivered transitions
//   - Completion requires OTP verification by the customer
type Order struct {
	id                kernel.UUID
	number            string
	quotationID       kernel.UUID
	customerID        kernel.UUID
	vendorID          kernel.UUID
	truckID           *kernel.UUID
	driverID          *kernel.UUID
	pickupAddress     string
	pickupPoint       kernel.GeoPoint
	deliveryAddress   string
	deliveryPoint     kernel.GeoPoint
	scheduledPickup   time.Time
	scheduledDelivery time.Time
	actualPickup      *time.Time
	actualDelivery    *time.Time
	totalAmount       kernel.Money
	cargoDescription  string
	estimatedWeightKg float64
	actualWeightKg    *float64
	deliveryOTP       string
	otpVerified       bool
	status            Status
	history           []*HistoryEntry
	createdAt         time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Created order converted from an accepted quotation,
// generating the order number and the six digit delivery OTP.
//
// The caller (the accept-quotation and accept-negotiation command handlers)
// is responsible for the conversion guards that need repository access:
// quotation status, expiry, and the absence of a previous order for the
// quotation.
func NewOrder(
	quotationID kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	truckID *kernel.UUID,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	deliveryAddress string,
	deliveryPoint kernel.GeoPoint,
	scheduledPickup time.Time,
	scheduledDelivery time.Time,
	totalAmount kernel.Money,
	cargoDescription string,
	estimatedWeightKg float64,
	now time.Time,
) (*Order, error) {
	return RestoreOrder(kernel.NewUUID(), generateNumber(now), quotationID,
		customerID, vendorID, truckID, nil, pickupAddress, pickupPoint,
		deliveryAddress, deliveryPoint, scheduledPickup, scheduledDelivery,
		nil, nil, totalAmount, cargoDescription, estimatedWeightKg, nil,
		generateOTP(), false, StatusCreated, nil, now)
}

// RestoreOrder reconstructs an Order from persistent storage together with
// its history.
func RestoreOrder(
	id kernel.UUID,
	number string,
	quotationID kernel.UUID,
	customerID kernel.UUID,
	vendorID kernel.UUID,
	truckID *kernel.UUID,
	driverID *kernel.UUID,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	deliveryAddress string,
	deliveryPoint kernel.GeoPoint,
	scheduledPickup time.Time,
	scheduledDelivery time.Time,
	actualPickup *time.Time,
	actualDelivery *time.Time,
	totalAmount kernel.Money,
	cargoDescription string,
	estimatedWeightKg float64,
	actualWeightKg *float64,
	deliveryOTP string,
	otpVerified bool,
	status Status,
	history []*HistoryEntry,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		truckID:           truckID,
		driverID:          driverID,
		pickupPoint:       pickupPoint,
		deliveryPoint:     deliveryPoint,
		scheduledPickup:   scheduledPickup,
		scheduledDelivery: scheduledDelivery,
		actualPickup:      actualPickup,
		actualDelivery:    actualDelivery,
		totalAmount:       totalAmount,
		cargoDescription:  cargoDescription,
		actualWeightKg:    actualWeightKg,
		otpVerified:       otpVerified,
		history:           history,
		createdAt:         createdAt,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setQuotationID(quotationID),
		o.setCustomerID(customerID),
		o.setVendorID(vendorID),
		o.setPickupAddress(pickupAddress),
		o.setDeliveryAddress(deliveryAddress),
		o.setEstimatedWeightKg(estimatedWeightKg),
		o.setDeliveryOTP(deliveryOTP),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// generateNumber builds the human-facing order number: "ORD" followed by a
// nanosecond timestamp.
func generateNumber(now time.Time) string {
	return fmt.Sprintf("ORD%d", now.UnixNano())
}

// generateOTP returns a random six digit delivery OTP.
func generateOTP() string {
	return fmt.Sprintf("%06d", rand.IntN(900_000)+100_000) //nolint:gosec // it's ok
}

// Validate checks that the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// Number returns the human-facing order number.
func (o *Order) Number() string { return o.number }

// QuotationID returns the source quotation's identifier.
func (o *Order) QuotationID() kernel.UUID { return o.quotationID }

// CustomerID returns the paying customer's identifier.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// VendorID returns the fulfilling vendor's identifier.
func (o *Order) VendorID() kernel.UUID { return o.vendorID }

// TruckID returns the engaged truck, nil when none is pinned.
func (o *Order) TruckID() *kernel.UUID { return o.truckID }

// DriverID returns the assigned driver, nil before assignment.
func (o *Order) DriverID() *kernel.UUID { return o.driverID }

// PickupAddress returns the pickup street address.
func (o *Order) PickupAddress() string { return o.pickupAddress }

// PickupPoint returns the pickup coordinates.
func (o *Order) PickupPoint() kernel.GeoPoint { return o.pickupPoint }

// DeliveryAddress returns the delivery street address.
func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

// DeliveryPoint returns the delivery coordinates.
func (o *Order) DeliveryPoint() kernel.GeoPoint { return o.deliveryPoint }

// ScheduledPickup returns the agreed pickup time.
func (o *Order) ScheduledPickup() time.Time { return o.scheduledPickup }

// ScheduledDelivery returns the agreed delivery time.
func (o *Order) ScheduledDelivery() time.Time { return o.scheduledDelivery }

// ActualPickup returns the stamped pickup time, nil until PickedUp.
func (o *Order) ActualPickup() *time.Time { return o.actualPickup }

// ActualDelivery returns the stamped delivery time, nil until Delivered.
func (o *Order) ActualDelivery() *time.Time { return o.actualDelivery }

// TotalAmount returns the agreed price.
func (o *Order) TotalAmount() kernel.Money { return o.totalAmount }

// CargoDescription returns the cargo description.
func (o *Order) CargoDescription() string { return o.cargoDescription }

// EstimatedWeightKg returns the declared cargo weight.
func (o *Order) EstimatedWeightKg() float64 { return o.estimatedWeightKg }

// ActualWeightKg returns the weight recorded at delivery, nil when not
// recorded.
func (o *Order) ActualWeightKg() *float64 { return o.actualWeightKg }

// DeliveryOTP returns the six digit code the customer presents at delivery.
func (o *Order) DeliveryOTP() string { return o.deliveryOTP }

// IsOTPVerified reports whether the customer confirmed delivery.
func (o *Order) IsOTPVerified() bool { return o.otpVerified }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// History returns the status change log, oldest first.
func (o *Order) History() []*HistoryEntry { return o.history }

// CreatedAt returns the order creation time.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// ChangeStatus moves the order to the target status on behalf of the given
// actor. Transition validity and role permission are enforced by the status
// state machine, a history entry is appended, and the PickedUp and
// Delivered transitions stamp the actual pickup and delivery times.
//
// Side effects on the vendor's fleet (engaging and releasing trucks and
// drivers) are performed by the command handler in the same unit of work.
func (o *Order) ChangeStatus(
	target Status,
	role Role,
	actorID kernel.UUID,
	notes string,
	point *kernel.GeoPoint,
	now time.Time,
) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if target == StatusPickup && o.driverID == nil {
		return ErrDriverNotSet
	}

	newStatus, err := o.status.Transition(target, role)
	if err != nil {
		return err
	}

	entry, err := NewHistoryEntry(o.status, newStatus, role, actorID, notes, point, now)
	if err != nil {
		return err
	}

	switch newStatus { //nolint:exhaustive // only stamping transitions need work
	case StatusPickedUp:
		t := now
		o.actualPickup = &t
	case StatusDelivered:
		t := now
		o.actualDelivery = &t
	case StatusCompleted:
		o.otpVerified = true
	}

	o.status = newStatus
	o.history = append(o.history, entry)
	return nil
}

// AssignDriver transitions the order to DriverAssigned with the given
// driver. The command handler verifies the driver belongs to the order's
// vendor and marks them unavailable.
func (o *Order) AssignDriver(
	driverID kernel.UUID,
	role Role,
	actorID kernel.UUID,
	notes string,
	now time.Time,
) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if err := o.ChangeStatus(StatusDriverAssigned, role, actorID, notes, nil, now); err != nil {
		return err
	}
	o.driverID = &driverID
	return nil
}

// VerifyDeliveryOTP completes the order when the customer presents the
// matching OTP. The order must be in Delivered status. An actual cargo
// weight may optionally be recorded.
//
// Releasing the truck and driver happens in the command handler within the
// same unit of work.
func (o *Order) VerifyDeliveryOTP(otp string, actualWeightKg *float64, actorID kernel.UUID, now time.Time) error {
	if o.status != StatusDelivered {
		return ErrOrderNotDelivered
	}
	if otp != o.deliveryOTP {
		return ErrOTPMismatch
	}
	if actualWeightKg != nil {
		if *actualWeightKg <= 0 {
			return errs.NewValueIsInvalidError("actualWeightKg")
		}
		o.actualWeightKg = actualWeightKg
	}

	return o.ChangeStatus(StatusCompleted, RoleCustomer, actorID, "delivery confirmed via OTP", nil, now)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setQuotationID(quotationID kernel.UUID) error {
	if err := quotationID.Validate(); err != nil {
		return fmt.Errorf("quotationID: %w", err)
	}
	o.quotationID = quotationID
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return fmt.Errorf("customerID: %w", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return fmt.Errorf("vendorID: %w", err)
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	o.pickupAddress = pickupAddress
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

func (o *Order) setEstimatedWeightKg(estimatedWeightKg float64) error {
	if estimatedWeightKg <= 0 {
		return errs.NewValueIsInvalidError("estimatedWeightKg")
	}
	o.estimatedWeightKg = estimatedWeightKg
	return nil
}

func (o *Order) setDeliveryOTP(deliveryOTP string) error {
	if len(deliveryOTP) != 6 {
		return errs.NewValueIsInvalidError("deliveryOTP")
	}
	o.deliveryOTP = deliveryOTP
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
