// Package paymentrepo provides data transfer objects and mapping functions for
// payment and invoice persistence. It implements the repository pattern for
// the payment domain aggregate, handling the conversion between domain
// entities and database representations.
package paymentrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/payment"

	"github.com/google/uuid"
)

// PaymentDTO represents the database structure for persisting payment
// aggregates. Monetary amounts are stored as integer paise.
type PaymentDTO struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Reference     string            `gorm:"type:varchar(32);not null;uniqueIndex"`
	OrderID       uuid.UUID         `gorm:"type:uuid;not null;index"`
	AmountPaise   int64             `gorm:"type:bigint;not null"`
	PaymentType   string            `gorm:"type:varchar(16);not null"`
	Method        string            `gorm:"type:varchar(16);not null"`
	GatewayName   string            `gorm:"type:varchar(64)"`
	GatewayTxnID  string            `gorm:"type:varchar(128)"`
	FailureReason string            `gorm:"type:text"`
	Status        string            `gorm:"type:varchar(16);not null;index"`
	InitiatedAt   *time.Time        `gorm:""`
	CompletedAt   *time.Time        `gorm:""`
	FailedAt      *time.Time        `gorm:""`
	History       []StatusChangeDTO `gorm:"foreignKey:PaymentID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time         `gorm:"not null"`
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

// StatusChangeDTO represents the database structure for persisting payment
// status transitions. Rows are value objects: the repository rewrites the
// whole set on update instead of tracking per-row identity.
type StatusChangeDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentID uuid.UUID `gorm:"type:uuid;not null;index"`
	Previous  string    `gorm:"type:varchar(16);not null"`
	Next      string    `gorm:"type:varchar(16);not null"`
	Notes     string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for payment history entities.
func (StatusChangeDTO) TableName() string {
	return "payment_status_history"
}

// InvoiceDTO represents the database structure for persisting invoices.
// Derived amounts (subtotal, taxes, total) are recomputed by the domain model
// and are not stored.
type InvoiceDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number               string    `gorm:"type:varchar(16);not null;uniqueIndex"`
	OrderID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BaseChargePaise      int64     `gorm:"type:bigint;not null"`
	FuelChargePaise      int64     `gorm:"type:bigint;not null"`
	TollChargePaise      int64     `gorm:"type:bigint;not null"`
	LoadingChargePaise   int64     `gorm:"type:bigint;not null"`
	UnloadingChargePaise int64     `gorm:"type:bigint;not null"`
	AdditionalPaise      int64     `gorm:"type:bigint;not null"`
	DiscountPaise        int64     `gorm:"type:bigint;not null"`
	CGSTRate             float64   `gorm:"type:numeric(5,2);not null"`
	SGSTRate             float64   `gorm:"type:numeric(5,2);not null"`
	IGSTRate             float64   `gorm:"type:numeric(5,2);not null"`
	Generated            bool      `gorm:"not null"`
	CreatedAt            time.Time `gorm:"not null"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts a payment domain aggregate to its database
// representation together with its status history.
func fromDomain(p *payment.Payment) PaymentDTO {
	paymentID := p.ID().Bytes()

	history := make([]StatusChangeDTO, 0, len(p.History()))
	for _, c := range p.History() {
		history = append(history, StatusChangeDTO{
			ID:        uuid.New(),
			PaymentID: paymentID,
			Previous:  c.Previous().String(),
			Next:      c.Next().String(),
			Notes:     c.Notes(),
			CreatedAt: c.CreatedAt(),
		})
	}

	return PaymentDTO{
		ID:            paymentID,
		Reference:     p.Reference(),
		OrderID:       p.OrderID().Bytes(),
		AmountPaise:   p.Amount().Paise(),
		PaymentType:   p.PaymentType().String(),
		Method:        p.PayMethod().String(),
		GatewayName:   p.GatewayName(),
		GatewayTxnID:  p.GatewayTransactionID(),
		FailureReason: p.FailureReason(),
		Status:        p.Status().String(),
		InitiatedAt:   p.InitiatedAt(),
		CompletedAt:   p.CompletedAt(),
		FailedAt:      p.FailedAt(),
		History:       history,
		CreatedAt:     p.CreatedAt(),
	}
}

// toDomain converts a database DTO to a payment domain aggregate.
func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoneyFromPaise(dto.AmountPaise)
	if err != nil {
		return nil, err
	}

	paymentType, err := payment.TypeFromString(dto.PaymentType)
	if err != nil {
		return nil, err
	}

	method, err := payment.MethodFromString(dto.Method)
	if err != nil {
		return nil, err
	}

	status, err := payment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]payment.StatusChange, 0, len(dto.History))
	for _, cDto := range dto.History {
		change, cErr := statusChangeToDomain(cDto)
		if cErr != nil {
			return nil, cErr
		}
		history = append(history, change)
	}

	return payment.RestorePayment(id, dto.Reference, orderID, amount,
		paymentType, method, dto.GatewayName, dto.GatewayTxnID,
		dto.FailureReason, status, dto.InitiatedAt, dto.CompletedAt,
		dto.FailedAt, history, dto.CreatedAt)
}

func statusChangeToDomain(dto StatusChangeDTO) (payment.StatusChange, error) {
	previous, err := payment.StatusFromString(dto.Previous)
	if err != nil {
		return payment.StatusChange{}, err
	}

	next, err := payment.StatusFromString(dto.Next)
	if err != nil {
		return payment.StatusChange{}, err
	}

	return payment.NewStatusChange(previous, next, dto.Notes, dto.CreatedAt), nil
}

func invoiceFromDomain(inv *payment.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:                   inv.ID().Bytes(),
		Number:               inv.Number(),
		OrderID:              inv.OrderID().Bytes(),
		BaseChargePaise:      inv.BaseCharge().Paise(),
		FuelChargePaise:      inv.FuelCharge().Paise(),
		TollChargePaise:      inv.TollCharge().Paise(),
		LoadingChargePaise:   inv.LoadingCharge().Paise(),
		UnloadingChargePaise: inv.UnloadingCharge().Paise(),
		AdditionalPaise:      inv.AdditionalCharge().Paise(),
		DiscountPaise:        inv.Discount().Paise(),
		CGSTRate:             inv.CGSTRate(),
		SGSTRate:             inv.SGSTRate(),
		IGSTRate:             inv.IGSTRate(),
		Generated:            inv.IsGenerated(),
		CreatedAt:            inv.CreatedAt(),
	}
}

func invoiceToDomain(dto InvoiceDTO) (*payment.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	amounts := make([]kernel.Money, 0, 7)
	for _, paise := range []int64{
		dto.BaseChargePaise, dto.FuelChargePaise, dto.TollChargePaise,
		dto.LoadingChargePaise, dto.UnloadingChargePaise, dto.AdditionalPaise,
		dto.DiscountPaise,
	} {
		m, mErr := kernel.NewMoneyFromPaise(paise)
		if mErr != nil {
			return nil, mErr
		}
		amounts = append(amounts, m)
	}

	return payment.RestoreInvoice(id, dto.Number, orderID, amounts[0],
		amounts[1], amounts[2], amounts[3], amounts[4], amounts[5], amounts[6],
		dto.CGSTRate, dto.SGSTRate, dto.IGSTRate, dto.Generated, dto.CreatedAt)
}
