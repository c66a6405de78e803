package quotationrepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// negotiableStatuses are the persisted statuses in which a quotation is
// still open for negotiation or acceptance.
func negotiableStatuses() []string {
	return []string{
		quotation.StatusPending.String(),
		quotation.StatusSent.String(),
		quotation.StatusNegotiating.String(),
	}
}

// GormQuotationRequestRepository implements QuotationRequestRepository using GORM.
type GormQuotationRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormQuotationRequestRepository creates a new GORM quotation request repository.
func NewGormQuotationRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormQuotationRequestRepository {
	return &GormQuotationRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quotation request to the database.
func (r *GormQuotationRequestRepository) Add(ctx context.Context, aggregate *quotation.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing quotation request to the database.
func (r *GormQuotationRequestRepository) Update(ctx context.Context, aggregate *quotation.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := requestFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
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

// Get retrieves a quotation request by ID.
func (r *GormQuotationRequestRepository) Get(ctx context.Context, id kernel.UUID) (*quotation.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quotation request", id.String())
		}
		return nil, err
	}

	return requestToDomain(dto)
}

// GetAllByCustomer retrieves every request submitted by the customer.
func (r *GormQuotationRequestRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*quotation.Request, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*quotation.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, reqErr := requestToDomain(dto)
		if reqErr != nil {
			return nil, reqErr
		}
		requests = append(requests, req)
	}

	return requests, nil
}

// CountActiveByCustomer counts the customer's requests in active status.
func (r *GormQuotationRequestRepository) CountActiveByCustomer(ctx context.Context, customerID kernel.UUID) (int, error) {
	if err := customerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("customer_id = ? AND status = ?", customerID.Bytes(), quotation.RequestStatusActive.String()).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// ExistsDuplicate reports whether the customer already has a request for the
// same origin, destination and dates.
func (r *GormQuotationRequestRepository) ExistsDuplicate(ctx context.Context, aggregate *quotation.Request) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("customer_id = ? AND origin_pincode = ? AND destination_pincode = ? AND pickup_date = ? AND drop_date = ? AND id <> ?",
			aggregate.CustomerID().Bytes(),
			aggregate.OriginPincode().String(),
			aggregate.DestinationPincode().String(),
			aggregate.PickupDate(),
			aggregate.DropDate(),
			aggregate.ID().Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GormQuotationRepository implements QuotationRepository using GORM.
type GormQuotationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormQuotationRepository creates a new GORM quotation repository.
func NewGormQuotationRepository(db *gorm.DB, tracker aggregateTracker) *GormQuotationRepository {
	return &GormQuotationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quotation to the database with its items and negotiations.
func (r *GormQuotationRepository) Add(ctx context.Context, aggregate *quotation.Quotation) error {
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

// Update saves an existing quotation to the database.
func (r *GormQuotationRepository) Update(ctx context.Context, aggregate *quotation.Quotation) error {
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

// Get retrieves a quotation by ID with its items and negotiation history.
func (r *GormQuotationRepository) Get(ctx context.Context, id kernel.UUID) (*quotation.Quotation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuotationDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Negotiations", func(db *gorm.DB) *gorm.DB {
			return db.Order("quotation_negotiations.created_at")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quotation", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRequest retrieves every quotation submitted for the request.
func (r *GormQuotationRepository) GetAllByRequest(ctx context.Context, requestID kernel.UUID) ([]*quotation.Quotation, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "request_id = ?", requestID.Bytes())
}

// GetAllOpenByRequest retrieves the request's quotations still open for negotiation.
func (r *GormQuotationRepository) GetAllOpenByRequest(ctx context.Context, requestID kernel.UUID) ([]*quotation.Quotation, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "request_id = ? AND status IN ?", requestID.Bytes(), negotiableStatuses())
}

// GetAllByVendor retrieves every quotation submitted by the vendor.
func (r *GormQuotationRepository) GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*quotation.Quotation, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "vendor_id = ?", vendorID.Bytes())
}

// GetAllByCustomer retrieves every quotation addressed to the customer.
func (r *GormQuotationRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*quotation.Quotation, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return r.findAll(ctx, "customer_id = ?", customerID.Bytes())
}

// GetAllExpiredOpen retrieves quotations still open for negotiation whose
// validity window has lapsed.
func (r *GormQuotationRepository) GetAllExpiredOpen(ctx context.Context) ([]*quotation.Quotation, error) {
	now := time.Now().UTC()
	return r.findAll(ctx,
		"status IN ? AND created_at + make_interval(hours => validity_hours) < ?",
		negotiableStatuses(), now)
}

func (r *GormQuotationRepository) findAll(ctx context.Context, query string, args ...any) ([]*quotation.Quotation, error) {
	var dtos []QuotationDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Negotiations", func(db *gorm.DB) *gorm.DB {
			return db.Order("quotation_negotiations.created_at")
		}).
		Order("created_at DESC").
		Where(query, args...).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	quotations := make([]*quotation.Quotation, 0, len(dtos))
	for _, dto := range dtos {
		q, qErr := toDomain(dto)
		if qErr != nil {
			return nil, qErr
		}
		quotations = append(quotations, q)
	}

	return quotations, nil
}
