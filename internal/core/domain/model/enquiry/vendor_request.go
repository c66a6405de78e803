package enquiry

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// VendorRequestValidity is how long a vendor has to respond to a request
// before it expires.
const VendorRequestValidity = 24 * time.Hour

var (
	// ErrVendorRequestIsNotConstructed is returned when a VendorRequest was
	// not created through NewVendorRequest or RestoreVendorRequest.
	ErrVendorRequestIsNotConstructed = errors.New(
		"VendorRequest must be created via NewVendorRequest constructor")

	// ErrVendorRequestExpired is returned when responding to a request past
	// its validity window.
	ErrVendorRequestExpired = errors.New("vendor request has expired")
)

// RequestStatus represents the lifecycle state of a vendor request.
//
// State transitions:
//
//	Sent ──┬──> Accepted
//	       ├──> Quoted ──┬──> Accepted
//	       │             └──> Rejected
//	       ├──> Rejected
//	       └──> Expired
//
// Accepted, Rejected and Expired are final. Quoted requests may still expire.
type RequestStatus int

const (
	// RequestStatusUnknown represents an invalid or undefined status.
	RequestStatusUnknown RequestStatus = iota

	// RequestStatusSent is the initial status of a fanned-out request.
	RequestStatusSent

	// RequestStatusAccepted indicates the vendor accepted the suggested
	// price, or the manager confirmed the vendor's counter.
	RequestStatusAccepted

	// RequestStatusQuoted indicates the vendor countered with a new price.
	RequestStatusQuoted

	// RequestStatusRejected indicates the vendor declined or the manager
	// confirmed a different vendor.
	RequestStatusRejected

	// RequestStatusExpired indicates the validity window lapsed.
	RequestStatusExpired
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		RequestStatusUnknown:  "unknown",
		RequestStatusSent:     "sent",
		RequestStatusAccepted: "accepted",
		RequestStatusQuoted:   "quoted",
		RequestStatusRejected: "rejected",
		RequestStatusExpired:  "expired",
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
		"status", fmt.Errorf("%q is not a valid vendor request status", s))
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
	if s <= RequestStatusUnknown || s > RequestStatusExpired {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid vendor request status", s))
	}
	return nil
}

// IsFinal reports whether the status permits no further transitions.
func (s RequestStatus) IsFinal() bool {
	return s == RequestStatusAccepted || s == RequestStatusRejected || s == RequestStatusExpired
}

// VendorRequest is a manager's request to a single vendor to serve an
// enquiry at a suggested price, valid for VendorRequestValidity.
type VendorRequest struct {
	id             kernel.UUID
	enquiryID      kernel.UUID
	vendorID       kernel.UUID
	managerID      kernel.UUID
	suggestedPrice kernel.Money
	responsePrice  *kernel.Money
	notes          string
	urgency        string
	status         RequestStatus
	createdAt      time.Time

	guard guard.ConstructorGuard
}

// NewVendorRequest creates a sent VendorRequest with a fresh identifier.
func NewVendorRequest(
	enquiryID kernel.UUID,
	vendorID kernel.UUID,
	managerID kernel.UUID,
	suggestedPrice kernel.Money,
	notes string,
	urgency string,
) (*VendorRequest, error) {
	return RestoreVendorRequest(kernel.NewUUID(), enquiryID, vendorID, managerID,
		suggestedPrice, nil, notes, urgency, RequestStatusSent, time.Now().UTC())
}

// RestoreVendorRequest reconstructs a VendorRequest from persistent storage.
func RestoreVendorRequest(
	id kernel.UUID,
	enquiryID kernel.UUID,
	vendorID kernel.UUID,
	managerID kernel.UUID,
	suggestedPrice kernel.Money,
	responsePrice *kernel.Money,
	notes string,
	urgency string,
	status RequestStatus,
	createdAt time.Time,
) (*VendorRequest, error) {
	r := &VendorRequest{
		suggestedPrice: suggestedPrice,
		responsePrice:  responsePrice,
		notes:          notes,
		urgency:        urgency,
		createdAt:      createdAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setEnquiryID(enquiryID),
		r.setVendorID(vendorID),
		r.setManagerID(managerID),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	if suggestedPrice.IsZero() {
		return nil, errs.NewValueIsInvalidError("suggestedPrice")
	}

	return r, nil
}

// Validate checks that the VendorRequest was properly constructed.
func (r *VendorRequest) Validate() error {
	if r == nil {
		return ErrVendorRequestIsNotConstructed
	}
	return r.guard.Validate(ErrVendorRequestIsNotConstructed)
}

// IsEqual compares two vendor requests by identifier.
func (r *VendorRequest) IsEqual(other *VendorRequest) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the request's unique identifier.
func (r *VendorRequest) ID() kernel.UUID { return r.id }

// EnquiryID returns the enquiry the request serves.
func (r *VendorRequest) EnquiryID() kernel.UUID { return r.enquiryID }

// VendorID returns the addressed vendor's identifier.
func (r *VendorRequest) VendorID() kernel.UUID { return r.vendorID }

// ManagerID returns the sending manager's identifier.
func (r *VendorRequest) ManagerID() kernel.UUID { return r.managerID }

// SuggestedPrice returns the manager's suggested price.
func (r *VendorRequest) SuggestedPrice() kernel.Money { return r.suggestedPrice }

// ResponsePrice returns the vendor's agreed or countered price, nil until
// the vendor responds.
func (r *VendorRequest) ResponsePrice() *kernel.Money { return r.responsePrice }

// Notes returns the manager's notes.
func (r *VendorRequest) Notes() string { return r.notes }

// Urgency returns the free-form urgency hint.
func (r *VendorRequest) Urgency() string { return r.urgency }

// Status returns the current request status.
func (r *VendorRequest) Status() RequestStatus { return r.status }

// CreatedAt returns the request creation time.
func (r *VendorRequest) CreatedAt() time.Time { return r.createdAt }

// ValidUntil returns the end of the response window.
func (r *VendorRequest) ValidUntil() time.Time {
	return r.createdAt.Add(VendorRequestValidity)
}

// IsExpired reports whether the response window has lapsed at the given
// time, regardless of status.
func (r *VendorRequest) IsExpired(now time.Time) bool {
	return now.After(r.ValidUntil())
}

// Accept records the vendor accepting the suggested price.
func (r *VendorRequest) Accept(now time.Time) error {
	if err := r.ensureRespondable(now); err != nil {
		return err
	}
	price := r.suggestedPrice
	r.responsePrice = &price
	r.status = RequestStatusAccepted
	return nil
}

// Counter records the vendor countering with a different price.
func (r *VendorRequest) Counter(price kernel.Money, now time.Time) error {
	if err := r.ensureRespondable(now); err != nil {
		return err
	}
	if price.IsZero() {
		return errs.NewValueIsInvalidError("price")
	}
	r.responsePrice = &price
	r.status = RequestStatusQuoted
	return nil
}

// Reject records the vendor declining the request.
func (r *VendorRequest) Reject(now time.Time) error {
	if err := r.ensureRespondable(now); err != nil {
		return err
	}
	r.status = RequestStatusRejected
	return nil
}

// ConfirmWinner marks this request accepted during manager confirmation.
// Allowed from Quoted (countered) and Accepted (already agreed) statuses.
func (r *VendorRequest) ConfirmWinner() error {
	if r.status != RequestStatusQuoted && r.status != RequestStatusAccepted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot confirm vendor request in status %s", r.status),
		)
	}
	r.status = RequestStatusAccepted
	return nil
}

// MarkLost rejects the request when another vendor is confirmed. Requests
// already in a final status are left untouched.
func (r *VendorRequest) MarkLost() {
	if !r.status.IsFinal() {
		r.status = RequestStatusRejected
	}
}

// Expire transitions a non-final request to Expired.
func (r *VendorRequest) Expire() error {
	if r.status.IsFinal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot expire vendor request in final status %s", r.status),
		)
	}
	r.status = RequestStatusExpired
	return nil
}

func (r *VendorRequest) ensureRespondable(now time.Time) error {
	if r.status != RequestStatusSent && r.status != RequestStatusQuoted {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot respond to vendor request in status %s", r.status),
		)
	}
	if r.IsExpired(now) {
		return ErrVendorRequestExpired
	}
	return nil
}

func (r *VendorRequest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *VendorRequest) setEnquiryID(enquiryID kernel.UUID) error {
	if err := enquiryID.Validate(); err != nil {
		return fmt.Errorf("enquiryID: %w", err)
	}
	r.enquiryID = enquiryID
	return nil
}

func (r *VendorRequest) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return fmt.Errorf("vendorID: %w", err)
	}
	r.vendorID = vendorID
	return nil
}

func (r *VendorRequest) setManagerID(managerID kernel.UUID) error {
	if err := managerID.Validate(); err != nil {
		return fmt.Errorf("managerID: %w", err)
	}
	r.managerID = managerID
	return nil
}

func (r *VendorRequest) setStatus(status RequestStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
