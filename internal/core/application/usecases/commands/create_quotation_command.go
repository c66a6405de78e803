package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateQuotationCommandIsNotConstructed = errors.New(
		"CreateQuotationCommand must be created via NewCreateQuotationCommand constructor",
	)

	// ErrDuplicateQuotation is returned when the vendor already quoted on
	// the request.
	ErrDuplicateQuotation = errors.New("vendor already has a quotation on this request")

	// ErrRequestNotActive is returned when quoting on a fulfilled, cancelled
	// or expired request.
	ErrRequestNotActive = errors.New("quotation request is no longer active")
)

// CreateQuotationCommand represents a vendor's offer on a quotation request.
type CreateQuotationCommand struct { //nolint:recvcheck //using for validation
	requestID     kernel.UUID
	vendorID      kernel.UUID
	items         []*quotation.Item
	distanceKm    float64
	validityHours int

	guard guard.ConstructorGuard
}

// NewCreateQuotationCommand creates a command to submit a quotation. The
// corridor distance feeds the minimum expected price the offer is checked
// against. A zero validity falls back to the domain default.
func NewCreateQuotationCommand(
	requestID kernel.UUID,
	vendorID kernel.UUID,
	items []*quotation.Item,
	distanceKm float64,
	validityHours int,
) (CreateQuotationCommand, error) {
	cmd := CreateQuotationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setVendorID(vendorID),
		cmd.setItems(items),
		cmd.setDistanceKm(distanceKm),
		cmd.setValidityHours(validityHours),
	); err != nil {
		return CreateQuotationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateQuotationCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuotationCommandIsNotConstructed)
}

// RequestID returns the quotation request identifier.
func (c CreateQuotationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// VendorID returns the quoting vendor's identifier.
func (c CreateQuotationCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Items returns the quotation line items.
func (c CreateQuotationCommand) Items() []*quotation.Item {
	return c.items
}

// DistanceKm returns the corridor distance in kilometers.
func (c CreateQuotationCommand) DistanceKm() float64 {
	return c.distanceKm
}

// ValidityHours returns the offer validity; zero means the default.
func (c CreateQuotationCommand) ValidityHours() int {
	return c.validityHours
}

func (c *CreateQuotationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *CreateQuotationCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateQuotationCommand) setItems(items []*quotation.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

func (c *CreateQuotationCommand) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidError("distanceKm")
	}

	c.distanceKm = distanceKm
	return nil
}

func (c *CreateQuotationCommand) setValidityHours(validityHours int) error {
	if validityHours < 0 {
		return errs.NewValueIsInvalidError("validityHours")
	}

	c.validityHours = validityHours
	return nil
}
