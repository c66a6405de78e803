// Package truckrepo provides data transfer objects and mapping functions for
// fleet persistence. It implements the repository pattern for truck types,
// trucks and drivers, handling the conversion between domain entities and
// database representations.
package truckrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

// TruckTypeDTO represents the database structure for persisting truck types.
type TruckTypeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CapacityTon float64   `gorm:"type:numeric(6,2);not null"`
	Description string    `gorm:"type:text"`
}

// TableName specifies the database table name for truck type entities.
func (TruckTypeDTO) TableName() string {
	return "truck_types"
}

// TruckDTO represents the database structure for persisting truck aggregates.
type TruckDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID           uuid.UUID `gorm:"type:uuid;not null;index"`
	TruckTypeID        uuid.UUID `gorm:"type:uuid;not null;index"`
	RegistrationNumber string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	ModelName          string    `gorm:"type:varchar(255)"`
	ManufactureYear    int       `gorm:"type:int"`
	IsAvailable        bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for truck entities.
func (TruckDTO) TableName() string {
	return "trucks"
}

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(20)"`
	LicenseNumber string    `gorm:"type:varchar(32);not null"`
	IsAvailable   bool      `gorm:"not null;index"`
}

// TableName specifies the database table name for driver entities.
func (DriverDTO) TableName() string {
	return "drivers"
}

func truckTypeFromDomain(t *truck.TruckType) TruckTypeDTO {
	return TruckTypeDTO{
		ID:          t.ID().Bytes(),
		Name:        t.Name(),
		CapacityTon: t.CapacityTon(),
		Description: t.Description(),
	}
}

func truckTypeToDomain(dto TruckTypeDTO) (*truck.TruckType, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruckType(id, dto.Name, dto.CapacityTon, dto.Description)
}

func truckFromDomain(t *truck.Truck) TruckDTO {
	return TruckDTO{
		ID:                 t.ID().Bytes(),
		VendorID:           t.VendorID().Bytes(),
		TruckTypeID:        t.TruckTypeID().Bytes(),
		RegistrationNumber: t.RegistrationNumber(),
		ModelName:          t.ModelName(),
		ManufactureYear:    t.ManufactureYear(),
		IsAvailable:        t.IsAvailable(),
	}
}

func truckToDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	truckTypeID, err := kernel.UUIDFromBytes(dto.TruckTypeID[:])
	if err != nil {
		return nil, err
	}

	return truck.RestoreTruck(id, vendorID, truckTypeID, dto.RegistrationNumber,
		dto.ModelName, dto.ManufactureYear, dto.IsAvailable)
}

func driverFromDomain(d *truck.Driver) DriverDTO {
	return DriverDTO{
		ID:            d.ID().Bytes(),
		VendorID:      d.VendorID().Bytes(),
		Name:          d.Name(),
		Phone:         d.Phone(),
		LicenseNumber: d.LicenseNumber(),
		IsAvailable:   d.IsAvailable(),
	}
}

func driverToDomain(dto DriverDTO) (*truck.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	return truck.RestoreDriver(id, vendorID, dto.Name, dto.Phone,
		dto.LicenseNumber, dto.IsAvailable)
}
