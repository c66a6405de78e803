package truckrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormTruckTypeRepository implements TruckTypeRepository using GORM.
type GormTruckTypeRepository struct {
	db *gorm.DB
}

// NewGormTruckTypeRepository creates a new GORM truck type repository.
func NewGormTruckTypeRepository(db *gorm.DB) *GormTruckTypeRepository {
	return &GormTruckTypeRepository{db: db}
}

// Add saves a new truck type to the database.
func (r *GormTruckTypeRepository) Add(ctx context.Context, truckType *truck.TruckType) error {
	if err := truckType.Validate(); err != nil {
		return err
	}

	dto := truckTypeFromDomain(truckType)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a truck type by ID.
func (r *GormTruckTypeRepository) Get(ctx context.Context, id kernel.UUID) (*truck.TruckType, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TruckTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck type", id.String())
		}
		return nil, err
	}

	return truckTypeToDomain(dto)
}

// GetAll retrieves every registered truck type.
func (r *GormTruckTypeRepository) GetAll(ctx context.Context) ([]*truck.TruckType, error) {
	var dtos []TruckTypeDTO
	if err := r.db.WithContext(ctx).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	types := make([]*truck.TruckType, 0, len(dtos))
	for _, dto := range dtos {
		t, err := truckTypeToDomain(dto)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}

	return types, nil
}

// GormTruckRepository implements TruckRepository using GORM.
type GormTruckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormTruckRepository creates a new GORM truck repository.
func NewGormTruckRepository(db *gorm.DB, tracker aggregateTracker) *GormTruckRepository {
	return &GormTruckRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new truck to the database.
func (r *GormTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := truckFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing truck to the database.
func (r *GormTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := truckFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&TruckDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a truck by ID.
func (r *GormTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TruckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("truck", id.String())
		}
		return nil, err
	}

	return truckToDomain(dto)
}

// GetAllByVendor retrieves every truck registered by the vendor.
func (r *GormTruckRepository) GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*truck.Truck, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TruckDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "vendor_id = ?", vendorID.Bytes()).Error; err != nil {
		return nil, err
	}

	return trucksToDomain(dtos)
}

// GetAllAvailable retrieves the vendor's available trucks of the given type.
func (r *GormTruckRepository) GetAllAvailable(
	ctx context.Context,
	vendorID kernel.UUID,
	truckTypeID kernel.UUID,
) ([]*truck.Truck, error) {
	if err := errors.Join(vendorID.Validate(), truckTypeID.Validate()); err != nil {
		return nil, err
	}

	var dtos []TruckDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "vendor_id = ? AND truck_type_id = ? AND is_available", vendorID.Bytes(), truckTypeID.Bytes()).
		Error
	if err != nil {
		return nil, err
	}

	return trucksToDomain(dtos)
}

func trucksToDomain(dtos []TruckDTO) ([]*truck.Truck, error) {
	trucks := make([]*truck.Truck, 0, len(dtos))
	for _, dto := range dtos {
		t, err := truckToDomain(dto)
		if err != nil {
			return nil, err
		}
		trucks = append(trucks, t)
	}
	return trucks, nil
}

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB, tracker aggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *truck.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing driver to the database.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *truck.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := driverFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.String())
		}
		return nil, err
	}

	return driverToDomain(dto)
}

// GetAllByVendor retrieves every driver employed by the vendor.
func (r *GormDriverRepository) GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*truck.Driver, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "vendor_id = ?", vendorID.Bytes()).Error; err != nil {
		return nil, err
	}

	drivers := make([]*truck.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := driverToDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}
