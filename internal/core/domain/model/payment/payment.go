package payment

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	// ErrPaymentIsNotConstructed is returned when a Payment instance was not
	// created through NewPayment or RestorePayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")
)

// Type distinguishes what portion of the order total a payment covers.
type Type int

const (
	// TypeUnknown represents an invalid type value.
	TypeUnknown Type = iota

	// TypeAdvance is a partial upfront payment.
	TypeAdvance

	// TypeFull covers the whole order total. Completing a full payment
	// confirms the order.
	TypeFull

	// TypeBalance settles the remainder after an advance.
	TypeBalance
)

// TypeFromString parses a payment type string.
func TypeFromString(s string) (Type, error) {
	switch s {
	case "advance":
		return TypeAdvance, nil
	case "full":
		return TypeFull, nil
	case "balance":
		return TypeBalance, nil
	default:
		return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
			"type", fmt.Errorf("%q is not a valid payment type", s))
	}
}

// String returns the lower-case name of the type.
func (t Type) String() string {
	switch t {
	case TypeAdvance:
		return "advance"
	case TypeFull:
		return "full"
	case TypeBalance:
		return "balance"
	default:
		return "unknown"
	}
}

// Validate checks if the Type value is valid.
func (t Type) Validate() error {
	if t < TypeAdvance || t > TypeBalance {
		return errs.NewValueIsInvalidErrorWithCause(
			"type", fmt.Errorf("%d is not a valid payment type", t))
	}
	return nil
}

// Method is the payment instrument the customer chose.
type Method int

const (
	// MethodUnknown represents an invalid method value.
	MethodUnknown Method = iota

	// MethodCard is a credit or debit card.
	MethodCard

	// MethodUPI is a UPI transfer.
	MethodUPI

	// MethodNetbanking is a bank portal transfer.
	MethodNetbanking

	// MethodWallet is a wallet provider.
	MethodWallet

	// MethodCash is cash on delivery or pickup.
	MethodCash

	// MethodBankTransfer is a direct NEFT/RTGS transfer.
	MethodBankTransfer
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:      "unknown",
		MethodCard:         "card",
		MethodUPI:          "upi",
		MethodNetbanking:   "netbanking",
		MethodWallet:       "wallet",
		MethodCash:         "cash",
		MethodBankTransfer: "bank_transfer",
	}
}

// MethodFromString parses a payment method string.
func MethodFromString(s string) (Method, error) {
	for method, str := range getMethodStrings() {
		if str == s && method != MethodUnknown {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause(
		"method", fmt.Errorf("%q is not a valid payment method", s))
}

// String returns the lower-case name of the method.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Validate checks if the Method value is valid.
func (m Method) Validate() error {
	if m <= MethodUnknown || m > MethodBankTransfer {
		return errs.NewValueIsInvalidErrorWithCause(
			"method", fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// StatusChange is one entry in a payment's status history.
type StatusChange struct {
	previous  Status
	next      Status
	notes     string
	createdAt time.Time
}

// NewStatusChange creates a history entry.
func NewStatusChange(previous Status, next Status, notes string, createdAt time.Time) StatusChange {
	return StatusChange{previous: previous, next: next, notes: notes, createdAt: createdAt}
}

// Previous returns the status before the change.
func (c StatusChange) Previous() Status { return c.previous }

// Next returns the status after the change.
func (c StatusChange) Next() Status { return c.next }

// Notes returns the optional notes, e.g. a gateway failure reason.
func (c StatusChange) Notes() string { return c.notes }

// CreatedAt returns the change time.
func (c StatusChange) CreatedAt() time.Time { return c.createdAt }

// Payment is the aggregate root for one payment attempt against an order.
//
// Payment follows these invariants:
//   - Must have a valid identifier, order and positive amount
//   - The reference is generated at creation and never changes
//   - Status transitions follow the state machine in Status; every change
//     appends a StatusChange entry and stamps the matching timestamp
type Payment struct {
	id              kernel.UUID
	reference       string
	orderID         kernel.UUID
	amount          kernel.Money
	paymentType     Type
	method          Method
	gatewayName     string
	gatewayTxnID    string
	failureReason   string
	status          Status
	initiatedAt     *time.Time
	completedAt     *time.Time
	failedAt        *time.Time
	history         []StatusChange
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewPayment records a pending Payment with a fresh identifier and a
// generated reference.
func NewPayment(
	orderID kernel.UUID,
	amount kernel.Money,
	paymentType Type,
	method Method,
	now time.Time,
) (*Payment, error) {
	reference := generateReference(orderID, now)
	return RestorePayment(kernel.NewUUID(), reference, orderID, amount,
		paymentType, method, "", "", "", StatusPending, nil, nil, nil, nil, now)
}

// RestorePayment reconstructs a Payment from persistent storage together
// with its history.
func RestorePayment(
	id kernel.UUID,
	reference string,
	orderID kernel.UUID,
	amount kernel.Money,
	paymentType Type,
	method Method,
	gatewayName string,
	gatewayTxnID string,
	failureReason string,
	status Status,
	initiatedAt *time.Time,
	completedAt *time.Time,
	failedAt *time.Time,
	history []StatusChange,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		gatewayName:   gatewayName,
		gatewayTxnID:  gatewayTxnID,
		failureReason: failureReason,
		initiatedAt:   initiatedAt,
		completedAt:   completedAt,
		failedAt:      failedAt,
		history:       history,
		createdAt:     createdAt,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setReference(reference),
		p.setOrderID(orderID),
		p.setAmount(amount),
		p.setType(paymentType),
		p.setMethod(method),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// generateReference builds the human-facing payment reference:
// "PAY" + unix timestamp + first UUID segment of the order.
func generateReference(orderID kernel.UUID, now time.Time) string {
	return fmt.Sprintf("PAY%d%.8s", now.Unix(), orderID.String())
}

// Validate checks that the Payment was properly constructed.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// IsEqual compares two payments by identifier.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// Reference returns the human-facing payment reference.
func (p *Payment) Reference() string { return p.reference }

// OrderID returns the paid order's identifier.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Amount returns the payment amount.
func (p *Payment) Amount() kernel.Money { return p.amount }

// PaymentType returns what portion of the order this payment covers.
func (p *Payment) PaymentType() Type { return p.paymentType }

// PayMethod returns the chosen payment instrument.
func (p *Payment) PayMethod() Method { return p.method }

// GatewayName returns the gateway the payment was initiated with.
func (p *Payment) GatewayName() string { return p.gatewayName }

// GatewayTransactionID returns the gateway's transaction reference.
func (p *Payment) GatewayTransactionID() string { return p.gatewayTxnID }

// FailureReason returns the gateway's failure reason, empty unless failed.
func (p *Payment) FailureReason() string { return p.failureReason }

// Status returns the current payment status.
func (p *Payment) Status() Status { return p.status }

// InitiatedAt returns when the payment was handed to the gateway.
func (p *Payment) InitiatedAt() *time.Time { return p.initiatedAt }

// CompletedAt returns when the gateway confirmed the payment.
func (p *Payment) CompletedAt() *time.Time { return p.completedAt }

// FailedAt returns when the gateway declined the payment.
func (p *Payment) FailedAt() *time.Time { return p.failedAt }

// History returns the status change log, oldest first.
func (p *Payment) History() []StatusChange { return p.history }

// CreatedAt returns the payment creation time.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// Initiate hands the payment to the named gateway.
func (p *Payment) Initiate(gatewayName string, now time.Time) error {
	if gatewayName == "" {
		return errs.NewValueIsRequiredError("gatewayName")
	}
	if err := p.transition(StatusInitiated, "handed to "+gatewayName, now); err != nil {
		return err
	}
	p.gatewayName = gatewayName
	t := now
	p.initiatedAt = &t
	return nil
}

// MarkProcessing records the gateway picking the payment up.
func (p *Payment) MarkProcessing(now time.Time) error {
	return p.transition(StatusProcessing, "", now)
}

// Complete records gateway confirmation with its transaction reference.
// When the payment is of TypeFull the calling handler confirms the order in
// the same unit of work.
func (p *Payment) Complete(gatewayTxnID string, now time.Time) error {
	if gatewayTxnID == "" {
		return errs.NewValueIsRequiredError("gatewayTxnID")
	}
	if err := p.transition(StatusCompleted, "", now); err != nil {
		return err
	}
	p.gatewayTxnID = gatewayTxnID
	t := now
	p.completedAt = &t
	return nil
}

// Fail records gateway decline with its reason.
func (p *Payment) Fail(reason string, now time.Time) error {
	if err := p.transition(StatusFailed, reason, now); err != nil {
		return err
	}
	p.failureReason = reason
	t := now
	p.failedAt = &t
	return nil
}

// Cancel abandons a payment that has not settled.
func (p *Payment) Cancel(now time.Time) error {
	return p.transition(StatusCancelled, "", now)
}

// Refund returns a completed payment.
func (p *Payment) Refund(now time.Time) error {
	return p.transition(StatusRefunded, "", now)
}

func (p *Payment) transition(target Status, notes string, now time.Time) error {
	newStatus, err := p.status.Transition(target)
	if err != nil {
		return err
	}
	p.history = append(p.history, NewStatusChange(p.status, newStatus, notes, now))
	p.status = newStatus
	return nil
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}
	p.reference = reference
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return fmt.Errorf("orderID: %w", err)
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsInvalidError("amount")
	}
	p.amount = amount
	return nil
}

func (p *Payment) setType(paymentType Type) error {
	if err := paymentType.Validate(); err != nil {
		return err
	}
	p.paymentType = paymentType
	return nil
}

func (p *Payment) setMethod(method Method) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
