// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by participant and status. Monetary amounts are
// stored as integer paise.
type OrderDTO struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Number            string        `gorm:"type:varchar(32);not null;uniqueIndex"`
	QuotationID       uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex"`
	CustomerID        uuid.UUID     `gorm:"type:uuid;not null;index"`
	VendorID          uuid.UUID     `gorm:"type:uuid;not null;index"`
	TruckID           *uuid.UUID    `gorm:"type:uuid;index"`
	DriverID          *uuid.UUID    `gorm:"type:uuid;index"`
	PickupAddress     string        `gorm:"type:text;not null"`
	PickupLatitude    float64       `gorm:"type:numeric(9,6)"`
	PickupLongitude   float64       `gorm:"type:numeric(9,6)"`
	DeliveryAddress   string        `gorm:"type:text;not null"`
	DeliveryLatitude  float64       `gorm:"type:numeric(9,6)"`
	DeliveryLongitude float64       `gorm:"type:numeric(9,6)"`
	ScheduledPickup   time.Time     `gorm:"not null"`
	ScheduledDelivery time.Time     `gorm:"not null"`
	ActualPickup      *time.Time    `gorm:""`
	ActualDelivery    *time.Time    `gorm:""`
	TotalAmountPaise  int64         `gorm:"type:bigint;not null"`
	CargoDescription  string        `gorm:"type:text"`
	EstimatedWeightKg float64       `gorm:"type:numeric(10,2);not null"`
	ActualWeightKg    *float64      `gorm:"type:numeric(10,2)"`
	DeliveryOTP       string        `gorm:"type:varchar(6);not null"`
	OTPVerified       bool          `gorm:"not null"`
	Status            string        `gorm:"type:varchar(32);not null;index"`
	History           []HistoryDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt         time.Time     `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryDTO represents the database structure for persisting order status
// history entries.
type HistoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Previous  string    `gorm:"type:varchar(32);not null"`
	Next      string    `gorm:"type:varchar(32);not null"`
	ActorRole string    `gorm:"type:varchar(16);not null"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null"`
	Notes     string    `gorm:"type:text"`
	Latitude  *float64  `gorm:"type:numeric(9,6)"`
	Longitude *float64  `gorm:"type:numeric(9,6)"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for order history entities.
func (HistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the full status history.
func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	var truckID, driverID *uuid.UUID
	if id := o.TruckID(); id != nil {
		raw := id.Bytes()
		truckID = &raw
	}
	if id := o.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	history := make([]HistoryDTO, 0, len(o.History()))
	for _, h := range o.History() {
		var lat, lon *float64
		if p := h.Point(); p != nil {
			latVal, lonVal := p.Latitude(), p.Longitude()
			lat, lon = &latVal, &lonVal
		}

		history = append(history, HistoryDTO{
			ID:        h.ID().Bytes(),
			OrderID:   orderID,
			Previous:  h.Previous().String(),
			Next:      h.Next().String(),
			ActorRole: h.ActorRole().String(),
			ActorID:   h.ActorID().Bytes(),
			Notes:     h.Notes(),
			Latitude:  lat,
			Longitude: lon,
			CreatedAt: h.CreatedAt(),
		})
	}

	return OrderDTO{
		ID:                orderID,
		Number:            o.Number(),
		QuotationID:       o.QuotationID().Bytes(),
		CustomerID:        o.CustomerID().Bytes(),
		VendorID:          o.VendorID().Bytes(),
		TruckID:           truckID,
		DriverID:          driverID,
		PickupAddress:     o.PickupAddress(),
		PickupLatitude:    o.PickupPoint().Latitude(),
		PickupLongitude:   o.PickupPoint().Longitude(),
		DeliveryAddress:   o.DeliveryAddress(),
		DeliveryLatitude:  o.DeliveryPoint().Latitude(),
		DeliveryLongitude: o.DeliveryPoint().Longitude(),
		ScheduledPickup:   o.ScheduledPickup(),
		ScheduledDelivery: o.ScheduledDelivery(),
		ActualPickup:      o.ActualPickup(),
		ActualDelivery:    o.ActualDelivery(),
		TotalAmountPaise:  o.TotalAmount().Paise(),
		CargoDescription:  o.CargoDescription(),
		EstimatedWeightKg: o.EstimatedWeightKg(),
		ActualWeightKg:    o.ActualWeightKg(),
		DeliveryOTP:       o.DeliveryOTP(),
		OTPVerified:       o.IsOTPVerified(),
		Status:            o.Status().String(),
		History:           history,
		CreatedAt:         o.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including its history using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	quotationID, err := kernel.UUIDFromBytes(dto.QuotationID[:])
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

	truckID, err := optionalUUID(dto.TruckID)
	if err != nil {
		return nil, err
	}

	driverID, err := optionalUUID(dto.DriverID)
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

	totalAmount, err := kernel.NewMoneyFromPaise(dto.TotalAmountPaise)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	history := make([]*order.HistoryEntry, 0, len(dto.History))
	for _, hDto := range dto.History {
		h, hErr := historyToDomain(hDto)
		if hErr != nil {
			return nil, hErr
		}
		history = append(history, h)
	}

	return order.RestoreOrder(id, dto.Number, quotationID, customerID, vendorID,
		truckID, driverID, dto.PickupAddress, pickupPoint, dto.DeliveryAddress,
		deliveryPoint, dto.ScheduledPickup, dto.ScheduledDelivery,
		dto.ActualPickup, dto.ActualDelivery, totalAmount, dto.CargoDescription,
		dto.EstimatedWeightKg, dto.ActualWeightKg, dto.DeliveryOTP,
		dto.OTPVerified, status, history, dto.CreatedAt)
}

func historyToDomain(dto HistoryDTO) (*order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return nil, err
	}

	previous, err := order.StatusFromString(dto.Previous)
	if err != nil {
		return nil, err
	}

	next, err := order.StatusFromString(dto.Next)
	if err != nil {
		return nil, err
	}

	role, err := order.RoleFromString(dto.ActorRole)
	if err != nil {
		return nil, err
	}

	var point *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		p, pErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pErr != nil {
			return nil, pErr
		}
		point = &p
	}

	return order.RestoreHistoryEntry(id, previous, next, role, actorID,
		dto.Notes, point, dto.CreatedAt)
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
