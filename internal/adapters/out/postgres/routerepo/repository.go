package routerepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRouteRepository implements RouteRepository using GORM.
type GormRouteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRouteRepository creates a new GORM route repository.
func NewGormRouteRepository(db *gorm.DB, tracker aggregateTracker) *GormRouteRepository {
	return &GormRouteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new route to the database with its stops and pricing.
func (r *GormRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing route to the database.
func (r *GormRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// ExistsCorridor reports whether the vendor already publishes a route
// between the same origin and destination cities.
func (r *GormRouteRepository) ExistsCorridor(ctx context.Context, aggregate *route.Route) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RouteDTO{}).
		Where("vendor_id = ? AND LOWER(origin_city) = LOWER(?) AND LOWER(destination_city) = LOWER(?) AND id <> ?",
			aggregate.VendorID().Bytes(),
			aggregate.Origin().City(),
			aggregate.Destination().City(),
			aggregate.ID().Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// Get retrieves a route by ID with its stops and pricing.
func (r *GormRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RouteDTO
	err := r.db.WithContext(ctx).
		Preload("Stops").
		Preload("Pricing").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("route", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByVendor retrieves every route published by the vendor.
func (r *GormRouteRepository) GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*route.Route, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Preload("Stops").
		Preload("Pricing").
		Find(&dtos, "vendor_id = ?", vendorID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return routesToDomain(dtos)
}

// GetAllActive retrieves every active route with its stops and pricing.
func (r *GormRouteRepository) GetAllActive(ctx context.Context) ([]*route.Route, error) {
	var dtos []RouteDTO
	err := r.db.WithContext(ctx).
		Preload("Stops").
		Preload("Pricing").
		Find(&dtos, "is_active").Error
	if err != nil {
		return nil, err
	}

	return routesToDomain(dtos)
}

func routesToDomain(dtos []RouteDTO) ([]*route.Route, error) {
	routes := make([]*route.Route, 0, len(dtos))
	for _, dto := range dtos {
		rt, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		routes = append(routes, rt)
	}
	return routes, nil
}
