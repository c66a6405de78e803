package enquiryrepo

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/enquiry"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormEnquiryRepository implements EnquiryRepository using GORM.
type GormEnquiryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormEnquiryRepository creates a new GORM enquiry repository.
func NewGormEnquiryRepository(db *gorm.DB, tracker aggregateTracker) *GormEnquiryRepository {
	return &GormEnquiryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new enquiry to the database.
func (r *GormEnquiryRepository) Add(ctx context.Context, aggregate *enquiry.Enquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := enquiryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing enquiry to the database.
func (r *GormEnquiryRepository) Update(ctx context.Context, aggregate *enquiry.Enquiry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := enquiryFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&EnquiryDTO{}).
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

// Get retrieves an enquiry by ID.
func (r *GormEnquiryRepository) Get(ctx context.Context, id kernel.UUID) (*enquiry.Enquiry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EnquiryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("enquiry", id.String())
		}
		return nil, err
	}

	return enquiryToDomain(dto)
}

// GetAllByCustomer retrieves every enquiry submitted by the customer.
func (r *GormEnquiryRepository) GetAllByCustomer(ctx context.Context, customerID kernel.UUID) ([]*enquiry.Enquiry, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EnquiryDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return enquiriesToDomain(dtos)
}

// GetAllByManager retrieves every enquiry assigned to the manager.
func (r *GormEnquiryRepository) GetAllByManager(ctx context.Context, managerID kernel.UUID) ([]*enquiry.Enquiry, error) {
	if err := managerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EnquiryDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "manager_id = ?", managerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return enquiriesToDomain(dtos)
}

func enquiriesToDomain(dtos []EnquiryDTO) ([]*enquiry.Enquiry, error) {
	enquiries := make([]*enquiry.Enquiry, 0, len(dtos))
	for _, dto := range dtos {
		e, err := enquiryToDomain(dto)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, nil
}

// GormPriceRangeRepository implements PriceRangeRepository using GORM.
type GormPriceRangeRepository struct {
	db *gorm.DB
}

// NewGormPriceRangeRepository creates a new GORM price range repository.
func NewGormPriceRangeRepository(db *gorm.DB) *GormPriceRangeRepository {
	return &GormPriceRangeRepository{db: db}
}

// AddAll persists the generated price ranges for an enquiry.
func (r *GormPriceRangeRepository) AddAll(ctx context.Context, ranges []*enquiry.PriceRange) error {
	if len(ranges) == 0 {
		return nil
	}

	dtos := make([]PriceRangeDTO, 0, len(ranges))
	for _, p := range ranges {
		if err := p.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, priceRangeFromDomain(p))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// Get retrieves a price range by ID.
func (r *GormPriceRangeRepository) Get(ctx context.Context, id kernel.UUID) (*enquiry.PriceRange, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PriceRangeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("price range", id.String())
		}
		return nil, err
	}

	return priceRangeToDomain(dto)
}

// GetAllByEnquiry retrieves every price range generated for the enquiry.
func (r *GormPriceRangeRepository) GetAllByEnquiry(ctx context.Context, enquiryID kernel.UUID) ([]*enquiry.PriceRange, error) {
	if err := enquiryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PriceRangeDTO
	err := r.db.WithContext(ctx).
		Order("min_price_paise").
		Find(&dtos, "enquiry_id = ?", enquiryID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	ranges := make([]*enquiry.PriceRange, 0, len(dtos))
	for _, dto := range dtos {
		p, pErr := priceRangeToDomain(dto)
		if pErr != nil {
			return nil, pErr
		}
		ranges = append(ranges, p)
	}

	return ranges, nil
}

// GormVendorRequestRepository implements VendorRequestRepository using GORM.
type GormVendorRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormVendorRequestRepository creates a new GORM vendor request repository.
func NewGormVendorRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormVendorRequestRepository {
	return &GormVendorRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new vendor request to the database.
func (r *GormVendorRequestRepository) Add(ctx context.Context, aggregate *enquiry.VendorRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := vendorRequestFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing vendor request to the database.
func (r *GormVendorRequestRepository) Update(ctx context.Context, aggregate *enquiry.VendorRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := vendorRequestFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VendorRequestDTO{}).
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

// Get retrieves a vendor request by ID.
func (r *GormVendorRequestRepository) Get(ctx context.Context, id kernel.UUID) (*enquiry.VendorRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VendorRequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vendor request", id.String())
		}
		return nil, err
	}

	return vendorRequestToDomain(dto)
}

// GetAllByEnquiry retrieves every vendor request sent for the enquiry.
func (r *GormVendorRequestRepository) GetAllByEnquiry(ctx context.Context, enquiryID kernel.UUID) ([]*enquiry.VendorRequest, error) {
	if err := enquiryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VendorRequestDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "enquiry_id = ?", enquiryID.Bytes()).Error; err != nil {
		return nil, err
	}

	return vendorRequestsToDomain(dtos)
}

// GetAllByVendor retrieves every vendor request addressed to the vendor.
func (r *GormVendorRequestRepository) GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*enquiry.VendorRequest, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VendorRequestDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "vendor_id = ?", vendorID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return vendorRequestsToDomain(dtos)
}

// GetAllExpiredOpen retrieves requests still awaiting a response whose
// validity window has lapsed.
func (r *GormVendorRequestRepository) GetAllExpiredOpen(ctx context.Context) ([]*enquiry.VendorRequest, error) {
	cutoff := time.Now().UTC().Add(-enquiry.VendorRequestValidity)

	var dtos []VendorRequestDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status IN ? AND created_at < ?",
			[]string{enquiry.RequestStatusSent.String(), enquiry.RequestStatusQuoted.String()}, cutoff).
		Error
	if err != nil {
		return nil, err
	}

	return vendorRequestsToDomain(dtos)
}

func vendorRequestsToDomain(dtos []VendorRequestDTO) ([]*enquiry.VendorRequest, error) {
	requests := make([]*enquiry.VendorRequest, 0, len(dtos))
	for _, dto := range dtos {
		req, err := vendorRequestToDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// GormManagerRepository implements ManagerRepository using GORM.
type GormManagerRepository struct {
	db *gorm.DB
}

// NewGormManagerRepository creates a new GORM manager repository.
func NewGormManagerRepository(db *gorm.DB) *GormManagerRepository {
	return &GormManagerRepository{db: db}
}

// Add saves a new manager to the database.
func (r *GormManagerRepository) Add(ctx context.Context, aggregate *enquiry.Manager) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := managerFromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a manager by ID.
func (r *GormManagerRepository) Get(ctx context.Context, id kernel.UUID) (*enquiry.Manager, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ManagerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manager", id.String())
		}
		return nil, err
	}

	return managerToDomain(dto)
}

// GetLeastLoaded retrieves the active manager with the fewest enquiries
// currently in the quote-selected, sent-to-vendors or vendor-responses stages.
func (r *GormManagerRepository) GetLeastLoaded(ctx context.Context) (*enquiry.Manager, error) {
	workingStatuses := []string{
		enquiry.StatusQuoteSelected.String(),
		enquiry.StatusSentToVendors.String(),
		enquiry.StatusVendorResponses.String(),
	}

	var dto ManagerDTO
	err := r.db.WithContext(ctx).
		Table("managers").
		Select("managers.*").
		Joins("LEFT JOIN enquiries ON enquiries.manager_id = managers.id AND enquiries.status IN ?", workingStatuses).
		Where("managers.is_active").
		Group("managers.id").
		Order("COUNT(enquiries.id), managers.name").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manager", "least loaded active")
		}
		return nil, err
	}

	return managerToDomain(dto)
}
