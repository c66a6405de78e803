// Package quotationrepo provides data transfer objects and mapping functions
// for quotation persistence. It implements the repository pattern for customer
// quotation requests and vendor quotations with their items and negotiation
// history.
package quotationrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting quotation requests.
type RequestDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	OriginPincode      string    `gorm:"type:varchar(6);not null"`
	DestinationPincode string    `gorm:"type:varchar(6);not null"`
	PickupDate         time.Time `gorm:"not null"`
	DropDate           time.Time `gorm:"not null"`
	WeightKg           float64   `gorm:"type:numeric(10,2);not null"`
	WeightUnit         string    `gorm:"type:varchar(8);not null"`
	TruckTypeID        uuid.UUID `gorm:"type:uuid;not null"`
	Urgency            string    `gorm:"type:varchar(32)"`
	Status             string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the database table name for quotation request entities.
func (RequestDTO) TableName() string {
	return "quotation_requests"
}

// QuotationDTO represents the database structure for persisting quotation
// aggregates. Monetary amounts are stored as integer paise.
type QuotationDTO struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primaryKey"`
	RequestID           uuid.UUID        `gorm:"type:uuid;not null;index"`
	CustomerID          uuid.UUID        `gorm:"type:uuid;not null;index"`
	VendorID            uuid.UUID        `gorm:"type:uuid;not null;index"`
	TotalAmountPaise    int64            `gorm:"type:bigint;not null"`
	OriginalAmountPaise int64            `gorm:"type:bigint;not null"`
	ValidityHours       int              `gorm:"type:int;not null"`
	Status              string           `gorm:"type:varchar(16);not null;index"`
	Items               []ItemDTO        `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	Negotiations        []NegotiationDTO `gorm:"foreignKey:QuotationID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time        `gorm:"not null"`
}

// TableName specifies the database table name for quotation entities.
func (QuotationDTO) TableName() string {
	return "quotations"
}

// ItemDTO represents the database structure for persisting quotation items.
type ItemDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	QuotationID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	TruckTypeID    uuid.UUID  `gorm:"type:uuid;not null"`
	TruckID        *uuid.UUID `gorm:"type:uuid"`
	Quantity       int        `gorm:"type:int;not null"`
	UnitPricePaise int64      `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for quotation item entities.
func (ItemDTO) TableName() string {
	return "quotation_items"
}

// NegotiationDTO represents the database structure for persisting negotiation
// entries. Entries are ordered by creation time to preserve the alternation
// sequence.
type NegotiationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	QuotationID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Initiator     string    `gorm:"type:varchar(16);not null"`
	ProposedPaise int64     `gorm:"type:bigint;not null"`
	Message       string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for negotiation entities.
func (NegotiationDTO) TableName() string {
	return "quotation_negotiations"
}

func requestFromDomain(r *quotation.Request) RequestDTO {
	return RequestDTO{
		ID:                 r.ID().Bytes(),
		CustomerID:         r.CustomerID().Bytes(),
		OriginPincode:      r.OriginPincode().String(),
		DestinationPincode: r.DestinationPincode().String(),
		PickupDate:         r.PickupDate(),
		DropDate:           r.DropDate(),
		WeightKg:           r.WeightKg(),
		WeightUnit:         r.WeightUnit().String(),
		TruckTypeID:        r.TruckTypeID().Bytes(),
		Urgency:            r.Urgency(),
		Status:             r.Status().String(),
		CreatedAt:          r.CreatedAt(),
	}
}

func requestToDomain(dto RequestDTO) (*quotation.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	truckTypeID, err := kernel.UUIDFromBytes(dto.TruckTypeID[:])
	if err != nil {
		return nil, err
	}

	originPincode, err := kernel.NewPincode(dto.OriginPincode)
	if err != nil {
		return nil, err
	}

	destPincode, err := kernel.NewPincode(dto.DestinationPincode)
	if err != nil {
		return nil, err
	}

	weightUnit, err := quotation.WeightUnitFromString(dto.WeightUnit)
	if err != nil {
		return nil, err
	}

	status, err := quotation.RequestStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return quotation.RestoreRequest(id, customerID, originPincode, destPincode,
		dto.PickupDate, dto.DropDate, dto.WeightKg, weightUnit, truckTypeID,
		dto.Urgency, status, dto.CreatedAt)
}

// fromDomain converts a quotation domain aggregate to its database
// representation together with items and negotiation entries.
func fromDomain(q *quotation.Quotation) QuotationDTO {
	quotationID := q.ID().Bytes()

	items := make([]ItemDTO, 0, len(q.Items()))
	for _, item := range q.Items() {
		var truckID *uuid.UUID
		if id := item.TruckID(); id != nil {
			raw := id.Bytes()
			truckID = &raw
		}

		items = append(items, ItemDTO{
			ID:             item.ID().Bytes(),
			QuotationID:    quotationID,
			TruckTypeID:    item.TruckTypeID().Bytes(),
			TruckID:        truckID,
			Quantity:       item.Quantity(),
			UnitPricePaise: item.UnitPrice().Paise(),
		})
	}

	negotiations := make([]NegotiationDTO, 0, len(q.Negotiations()))
	for _, n := range q.Negotiations() {
		negotiations = append(negotiations, NegotiationDTO{
			ID:            n.ID().Bytes(),
			QuotationID:   quotationID,
			Initiator:     n.Initiator().String(),
			ProposedPaise: n.Proposed().Paise(),
			Message:       n.Message(),
			CreatedAt:     n.CreatedAt(),
		})
	}

	return QuotationDTO{
		ID:                  quotationID,
		RequestID:           q.RequestID().Bytes(),
		CustomerID:          q.CustomerID().Bytes(),
		VendorID:            q.VendorID().Bytes(),
		TotalAmountPaise:    q.TotalAmount().Paise(),
		OriginalAmountPaise: q.OriginalAmount().Paise(),
		ValidityHours:       q.ValidityHours(),
		Status:              q.Status().String(),
		Items:               items,
		Negotiations:        negotiations,
		CreatedAt:           q.CreatedAt(),
	}
}

// toDomain converts a database DTO to a quotation domain aggregate.
// Reconstructs the complete aggregate including items and negotiation history.
func toDomain(dto QuotationDTO) (*quotation.Quotation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoneyFromPaise(dto.TotalAmountPaise)
	if err != nil {
		return nil, err
	}

	originalAmount, err := kernel.NewMoneyFromPaise(dto.OriginalAmountPaise)
	if err != nil {
		return nil, err
	}

	status, err := quotation.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*quotation.Item, 0, len(dto.Items))
	for _, iDto := range dto.Items {
		item, iErr := itemToDomain(iDto)
		if iErr != nil {
			return nil, iErr
		}
		items = append(items, item)
	}

	negotiations := make([]*quotation.Negotiation, 0, len(dto.Negotiations))
	for _, nDto := range dto.Negotiations {
		n, nErr := negotiationToDomain(nDto)
		if nErr != nil {
			return nil, nErr
		}
		negotiations = append(negotiations, n)
	}

	return quotation.RestoreQuotation(id, requestID, customerID, vendorID, items,
		totalAmount, originalAmount, dto.ValidityHours, status, negotiations, dto.CreatedAt)
}

func itemToDomain(dto ItemDTO) (*quotation.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	truckTypeID, err := kernel.UUIDFromBytes(dto.TruckTypeID[:])
	if err != nil {
		return nil, err
	}

	var truckID *kernel.UUID
	if dto.TruckID != nil {
		tID, tErr := kernel.UUIDFromBytes((*dto.TruckID)[:])
		if tErr != nil {
			return nil, tErr
		}
		truckID = &tID
	}

	unitPrice, err := kernel.NewMoneyFromPaise(dto.UnitPricePaise)
	if err != nil {
		return nil, err
	}

	return quotation.RestoreItem(id, truckTypeID, truckID, dto.Quantity, unitPrice)
}

func negotiationToDomain(dto NegotiationDTO) (*quotation.Negotiation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	initiator, err := quotation.PartyFromString(dto.Initiator)
	if err != nil {
		return nil, err
	}

	proposed, err := kernel.NewMoneyFromPaise(dto.ProposedPaise)
	if err != nil {
		return nil, err
	}

	return quotation.RestoreNegotiation(id, initiator, proposed, dto.Message, dto.CreatedAt)
}
