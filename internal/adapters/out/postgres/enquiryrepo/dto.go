// Package enquiryrepo provides data transfer objects and mapping functions for
// enquiry persistence. It implements the repository pattern for enquiries,
// their generated price ranges, vendor requests and managers, handling the
// conversion between domain entities and database representations.
package enquiryrepo

import (
	"time"

	"freight/internal/core/domain/model/enquiry"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EnquiryDTO represents the database structure for persisting enquiry aggregates.
type EnquiryDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	PickupCity         string     `gorm:"type:varchar(255);not null"`
	PickupLatitude     float64    `gorm:"type:numeric(9,6)"`
	PickupLongitude    float64    `gorm:"type:numeric(9,6)"`
	DeliveryCity       string     `gorm:"type:varchar(255);not null"`
	DeliveryLatitude   float64    `gorm:"type:numeric(9,6)"`
	DeliveryLongitude  float64    `gorm:"type:numeric(9,6)"`
	PickupDate         time.Time  `gorm:"not null"`
	TruckTypeID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	VehicleCount       int        `gorm:"type:int;not null"`
	WeightTon          float64    `gorm:"type:numeric(8,2);not null"`
	CargoDescription   string     `gorm:"type:text"`
	Status             string     `gorm:"type:varchar(32);not null;index"`
	MiscellaneousRoute bool       `gorm:"not null"`
	ManagerID          *uuid.UUID `gorm:"type:uuid;index"`
	SelectedRangeID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt          time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for enquiry entities.
func (EnquiryDTO) TableName() string {
	return "enquiries"
}

// PriceRangeDTO represents the database structure for persisting price ranges.
// Monetary amounts are stored as integer paise.
type PriceRangeDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	EnquiryID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MinPricePaise int64     `gorm:"type:bigint;not null"`
	MaxPricePaise int64     `gorm:"type:bigint;not null"`
	AvgPricePaise int64     `gorm:"type:bigint;not null"`
	VehicleCount  int       `gorm:"type:int;not null"`
	VendorCount   int       `gorm:"type:int;not null"`
	Chance        string    `gorm:"type:varchar(16);not null"`
	DurationHours float64   `gorm:"type:numeric(6,2)"`
	Miscellaneous bool      `gorm:"not null"`
}

// TableName specifies the database table name for price range entities.
func (PriceRangeDTO) TableName() string {
	return "enquiry_price_ranges"
}

// VendorRequestDTO represents the database structure for persisting vendor
// enquiry requests.
type VendorRequestDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	EnquiryID           uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ManagerID           uuid.UUID `gorm:"type:uuid;not null"`
	SuggestedPricePaise int64     `gorm:"type:bigint;not null"`
	ResponsePricePaise  *int64    `gorm:"type:bigint"`
	Notes               string    `gorm:"type:text"`
	Urgency             string    `gorm:"type:varchar(32)"`
	Status              string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt           time.Time `gorm:"not null"`
}

// TableName specifies the database table name for vendor request entities.
func (VendorRequestDTO) TableName() string {
	return "vendor_enquiry_requests"
}

// ManagerDTO represents the database structure for persisting managers.
type ManagerDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Email    string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	IsActive bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for manager entities.
func (ManagerDTO) TableName() string {
	return "managers"
}

func enquiryFromDomain(e *enquiry.Enquiry) EnquiryDTO {
	var managerID, selectedRangeID *uuid.UUID
	if id := e.ManagerID(); id != nil {
		raw := id.Bytes()
		managerID = &raw
	}
	if id := e.SelectedRangeID(); id != nil {
		raw := id.Bytes()
		selectedRangeID = &raw
	}

	return EnquiryDTO{
		ID:                 e.ID().Bytes(),
		CustomerID:         e.CustomerID().Bytes(),
		PickupCity:         e.PickupCity(),
		PickupLatitude:     e.PickupPoint().Latitude(),
		PickupLongitude:    e.PickupPoint().Longitude(),
		DeliveryCity:       e.DeliveryCity(),
		DeliveryLatitude:   e.DeliveryPoint().Latitude(),
		DeliveryLongitude:  e.DeliveryPoint().Longitude(),
		PickupDate:         e.PickupDate(),
		TruckTypeID:        e.TruckTypeID().Bytes(),
		VehicleCount:       e.VehicleCount(),
		WeightTon:          e.WeightTon(),
		CargoDescription:   e.CargoDescription(),
		Status:             e.Status().String(),
		MiscellaneousRoute: e.IsMiscellaneousRoute(),
		ManagerID:          managerID,
		SelectedRangeID:    selectedRangeID,
		CreatedAt:          e.CreatedAt(),
	}
}

func enquiryToDomain(dto EnquiryDTO) (*enquiry.Enquiry, error) {
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

	pickupPoint, err := kernel.NewGeoPoint(dto.PickupLatitude, dto.PickupLongitude)
	if err != nil {
		return nil, err
	}

	deliveryPoint, err := kernel.NewGeoPoint(dto.DeliveryLatitude, dto.DeliveryLongitude)
	if err != nil {
		return nil, err
	}

	status, err := enquiry.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	managerID, err := optionalUUID(dto.ManagerID)
	if err != nil {
		return nil, err
	}

	selectedRangeID, err := optionalUUID(dto.SelectedRangeID)
	if err != nil {
		return nil, err
	}

	return enquiry.RestoreEnquiry(id, customerID, dto.PickupCity, pickupPoint,
		dto.DeliveryCity, deliveryPoint, dto.PickupDate, truckTypeID,
		dto.VehicleCount, dto.WeightTon, dto.CargoDescription, status,
		dto.MiscellaneousRoute, managerID, selectedRangeID, dto.CreatedAt)
}

func priceRangeFromDomain(p *enquiry.PriceRange) PriceRangeDTO {
	return PriceRangeDTO{
		ID:            p.ID().Bytes(),
		EnquiryID:     p.EnquiryID().Bytes(),
		MinPricePaise: p.MinPrice().Paise(),
		MaxPricePaise: p.MaxPrice().Paise(),
		AvgPricePaise: p.AvgPrice().Paise(),
		VehicleCount:  p.VehicleCount(),
		VendorCount:   p.VendorCount(),
		Chance:        p.ChanceLevel().String(),
		DurationHours: p.DurationHours(),
		Miscellaneous: p.IsMiscellaneous(),
	}
}

func priceRangeToDomain(dto PriceRangeDTO) (*enquiry.PriceRange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	enquiryID, err := kernel.UUIDFromBytes(dto.EnquiryID[:])
	if err != nil {
		return nil, err
	}

	minPrice, err := kernel.NewMoneyFromPaise(dto.MinPricePaise)
	if err != nil {
		return nil, err
	}

	maxPrice, err := kernel.NewMoneyFromPaise(dto.MaxPricePaise)
	if err != nil {
		return nil, err
	}

	avgPrice, err := kernel.NewMoneyFromPaise(dto.AvgPricePaise)
	if err != nil {
		return nil, err
	}

	chance, err := enquiry.ChanceFromString(dto.Chance)
	if err != nil {
		return nil, err
	}

	return enquiry.RestorePriceRange(id, enquiryID, minPrice, maxPrice, avgPrice,
		dto.VehicleCount, dto.VendorCount, chance, dto.DurationHours, dto.Miscellaneous)
}

func vendorRequestFromDomain(r *enquiry.VendorRequest) VendorRequestDTO {
	var responsePrice *int64
	if p := r.ResponsePrice(); p != nil {
		paise := p.Paise()
		responsePrice = &paise
	}

	return VendorRequestDTO{
		ID:                  r.ID().Bytes(),
		EnquiryID:           r.EnquiryID().Bytes(),
		VendorID:            r.VendorID().Bytes(),
		ManagerID:           r.ManagerID().Bytes(),
		SuggestedPricePaise: r.SuggestedPrice().Paise(),
		ResponsePricePaise:  responsePrice,
		Notes:               r.Notes(),
		Urgency:             r.Urgency(),
		Status:              r.Status().String(),
		CreatedAt:           r.CreatedAt(),
	}
}

func vendorRequestToDomain(dto VendorRequestDTO) (*enquiry.VendorRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	enquiryID, err := kernel.UUIDFromBytes(dto.EnquiryID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	managerID, err := kernel.UUIDFromBytes(dto.ManagerID[:])
	if err != nil {
		return nil, err
	}

	suggestedPrice, err := kernel.NewMoneyFromPaise(dto.SuggestedPricePaise)
	if err != nil {
		return nil, err
	}

	var responsePrice *kernel.Money
	if dto.ResponsePricePaise != nil {
		p, pErr := kernel.NewMoneyFromPaise(*dto.ResponsePricePaise)
		if pErr != nil {
			return nil, pErr
		}
		responsePrice = &p
	}

	status, err := enquiry.RequestStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return enquiry.RestoreVendorRequest(id, enquiryID, vendorID, managerID,
		suggestedPrice, responsePrice, dto.Notes, dto.Urgency, status, dto.CreatedAt)
}

func managerFromDomain(m *enquiry.Manager) ManagerDTO {
	return ManagerDTO{
		ID:       m.ID().Bytes(),
		Name:     m.Name(),
		Email:    m.Email(),
		IsActive: m.IsActive(),
	}
}

func managerToDomain(dto ManagerDTO) (*enquiry.Manager, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return enquiry.RestoreManager(id, dto.Name, dto.Email, dto.IsActive)
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent optional reference
	}

	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}

	return &id, nil
}
