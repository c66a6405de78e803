package payment

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through NewInvoice or RestoreInvoice.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Invoice carries the charge breakdown and GST computation for an order.
// Invoices are 1:1 with orders. Subtotal, tax and total are derived, never
// stored:
//
//	subtotal = base + fuel + toll + loading + unloading + additional
//	tax      = subtotal × (cgst + sgst + igst) / 100
//	total    = subtotal + tax − discount
type Invoice struct {
	id              kernel.UUID
	number          string
	orderID         kernel.UUID
	baseCharge      kernel.Money
	fuelCharge      kernel.Money
	tollCharge      kernel.Money
	loadingCharge   kernel.Money
	unloadingCharge kernel.Money
	additional      kernel.Money
	discount        kernel.Money
	cgstRate        float64
	sgstRate        float64
	igstRate        float64
	generated       bool
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewInvoice creates an Invoice with a fresh identifier. The daily sequence
// number comes from the repository, which counts invoices issued today.
func NewInvoice(
	orderID kernel.UUID,
	dailySequence int,
	baseCharge kernel.Money,
	fuelCharge kernel.Money,
	tollCharge kernel.Money,
	loadingCharge kernel.Money,
	unloadingCharge kernel.Money,
	additional kernel.Money,
	discount kernel.Money,
	cgstRate float64,
	sgstRate float64,
	igstRate float64,
	now time.Time,
) (*Invoice, error) {
	if dailySequence <= 0 || dailySequence > 9999 {
		return nil, errs.NewValueIsOutOfRangeError("dailySequence", dailySequence, 1, 9999)
	}
	number := fmt.Sprintf("INV%s%04d", now.Format("20060102"), dailySequence)
	return RestoreInvoice(kernel.NewUUID(), number, orderID, baseCharge,
		fuelCharge, tollCharge, loadingCharge, unloadingCharge, additional,
		discount, cgstRate, sgstRate, igstRate, false, now)
}

// RestoreInvoice reconstructs an Invoice from persistent storage.
func RestoreInvoice(
	id kernel.UUID,
	number string,
	orderID kernel.UUID,
	baseCharge kernel.Money,
	fuelCharge kernel.Money,
	tollCharge kernel.Money,
	loadingCharge kernel.Money,
	unloadingCharge kernel.Money,
	additional kernel.Money,
	discount kernel.Money,
	cgstRate float64,
	sgstRate float64,
	igstRate float64,
	generated bool,
	createdAt time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		baseCharge:      baseCharge,
		fuelCharge:      fuelCharge,
		tollCharge:      tollCharge,
		loadingCharge:   loadingCharge,
		unloadingCharge: unloadingCharge,
		additional:      additional,
		discount:        discount,
		generated:       generated,
		createdAt:       createdAt,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setNumber(number),
		inv.setOrderID(orderID),
		inv.setRate("cgstRate", &inv.cgstRate, cgstRate),
		inv.setRate("sgstRate", &inv.sgstRate, sgstRate),
		inv.setRate("igstRate", &inv.igstRate, igstRate),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// Validate checks that the Invoice was properly constructed.
func (inv *Invoice) Validate() error {
	if inv == nil {
		return ErrInvoiceIsNotConstructed
	}
	return inv.guard.Validate(ErrInvoiceIsNotConstructed)
}

// IsEqual compares two invoices by identifier.
func (inv *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && inv.id.IsEqual(other.id)
}

// ID returns the invoice's unique identifier.
func (inv *Invoice) ID() kernel.UUID { return inv.id }

// Number returns the human-facing invoice number.
func (inv *Invoice) Number() string { return inv.number }

// OrderID returns the invoiced order's identifier.
func (inv *Invoice) OrderID() kernel.UUID { return inv.orderID }

// BaseCharge returns the base freight charge.
func (inv *Invoice) BaseCharge() kernel.Money { return inv.baseCharge }

// FuelCharge returns the fuel surcharge.
func (inv *Invoice) FuelCharge() kernel.Money { return inv.fuelCharge }

// TollCharge returns the toll component.
func (inv *Invoice) TollCharge() kernel.Money { return inv.tollCharge }

// LoadingCharge returns the loading charge.
func (inv *Invoice) LoadingCharge() kernel.Money { return inv.loadingCharge }

// UnloadingCharge returns the unloading charge.
func (inv *Invoice) UnloadingCharge() kernel.Money { return inv.unloadingCharge }

// AdditionalCharge returns any extra charges.
func (inv *Invoice) AdditionalCharge() kernel.Money { return inv.additional }

// Discount returns the discount deducted from the total.
func (inv *Invoice) Discount() kernel.Money { return inv.discount }

// CGSTRate returns the central GST rate in percent.
func (inv *Invoice) CGSTRate() float64 { return inv.cgstRate }

// SGSTRate returns the state GST rate in percent.
func (inv *Invoice) SGSTRate() float64 { return inv.sgstRate }

// IGSTRate returns the integrated GST rate in percent.
func (inv *Invoice) IGSTRate() float64 { return inv.igstRate }

// IsGenerated reports whether the invoice document has been produced.
func (inv *Invoice) IsGenerated() bool { return inv.generated }

// CreatedAt returns the invoice creation time.
func (inv *Invoice) CreatedAt() time.Time { return inv.createdAt }

// Subtotal is the sum of all charge components.
func (inv *Invoice) Subtotal() kernel.Money {
	return inv.baseCharge.
		Add(inv.fuelCharge).
		Add(inv.tollCharge).
		Add(inv.loadingCharge).
		Add(inv.unloadingCharge).
		Add(inv.additional)
}

// CGSTAmount is the central GST on the subtotal.
func (inv *Invoice) CGSTAmount() kernel.Money {
	amount, _ := inv.Subtotal().MulFloat(inv.cgstRate / 100)
	return amount
}

// SGSTAmount is the state GST on the subtotal.
func (inv *Invoice) SGSTAmount() kernel.Money {
	amount, _ := inv.Subtotal().MulFloat(inv.sgstRate / 100)
	return amount
}

// IGSTAmount is the integrated GST on the subtotal.
func (inv *Invoice) IGSTAmount() kernel.Money {
	amount, _ := inv.Subtotal().MulFloat(inv.igstRate / 100)
	return amount
}

// TaxAmount is the sum of the GST components.
func (inv *Invoice) TaxAmount() kernel.Money {
	return inv.CGSTAmount().Add(inv.SGSTAmount()).Add(inv.IGSTAmount())
}

// Total is subtotal plus tax minus discount. A discount exceeding the
// taxed subtotal clamps the total at zero.
func (inv *Invoice) Total() kernel.Money {
	gross := inv.Subtotal().Add(inv.TaxAmount())
	total, err := gross.Sub(inv.discount)
	if err != nil {
		return kernel.Money{}
	}
	return total
}

// MarkGenerated records that the invoice document was produced.
func (inv *Invoice) MarkGenerated() {
	inv.generated = true
}

func (inv *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	inv.id = id
	return nil
}

func (inv *Invoice) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	inv.number = number
	return nil
}

func (inv *Invoice) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return fmt.Errorf("orderID: %w", err)
	}
	inv.orderID = orderID
	return nil
}

func (inv *Invoice) setRate(name string, field *float64, rate float64) error {
	if rate < 0 || rate > 100 {
		return errs.NewValueIsOutOfRangeError(name, rate, 0, 100)
	}
	*field = rate
	return nil
}
