// Package routerepo provides data transfer objects and mapping functions for
// route persistence. It implements the repository pattern for the route domain
// aggregate, handling the conversion between domain entities and database
// representations including stops and segment pricing.
package routerepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID            uuid.UUID           `gorm:"type:uuid;primaryKey"`
	VendorID      uuid.UUID           `gorm:"type:uuid;not null;index"`
	Origin        EndpointDTO         `gorm:"embedded;embeddedPrefix:origin_"`
	Destination   EndpointDTO         `gorm:"embedded;embeddedPrefix:destination_"`
	DistanceKm    float64             `gorm:"type:numeric(8,2);not null"`
	DurationHours float64             `gorm:"type:numeric(6,2);not null"`
	Frequency     string              `gorm:"type:varchar(64)"`
	IsActive      bool                `gorm:"not null;index"`
	Stops         []StopDTO           `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
	Pricing       []SegmentPricingDTO `gorm:"foreignKey:RouteID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

// EndpointDTO represents an embedded route endpoint within the routes table.
type EndpointDTO struct {
	City      string  `gorm:"type:varchar(255);not null"`
	State     string  `gorm:"type:varchar(255)"`
	Pincode   string  `gorm:"type:varchar(6);not null"`
	Latitude  float64 `gorm:"type:numeric(9,6)"`
	Longitude float64 `gorm:"type:numeric(9,6)"`
}

// StopDTO represents the database structure for persisting route stops.
type StopDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID              uuid.UUID `gorm:"type:uuid;not null;index"`
	City                 string    `gorm:"type:varchar(255);not null"`
	Latitude             float64   `gorm:"type:numeric(9,6)"`
	Longitude            float64   `gorm:"type:numeric(9,6)"`
	StopOrder            int       `gorm:"type:int;not null"`
	DistanceFromOriginKm float64   `gorm:"type:numeric(8,2)"`
	CanPickup            bool      `gorm:"not null"`
	CanDrop              bool      `gorm:"not null"`
}

// TableName specifies the database table name for stop entities.
func (StopDTO) TableName() string {
	return "route_stops"
}

// SegmentPricingDTO represents the database structure for persisting segment
// pricing rows. Monetary amounts are stored as integer paise.
type SegmentPricingDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	RouteID              uuid.UUID `gorm:"type:uuid;not null;index"`
	TruckTypeID          uuid.UUID `gorm:"type:uuid;not null;index"`
	FromCity             string    `gorm:"type:varchar(255);not null"`
	ToCity               string    `gorm:"type:varchar(255);not null"`
	BaseChargePaise      int64     `gorm:"type:bigint;not null"`
	FuelChargePaise      int64     `gorm:"type:bigint;not null"`
	TollChargePaise      int64     `gorm:"type:bigint;not null"`
	LoadingChargePaise   int64     `gorm:"type:bigint;not null"`
	UnloadingChargePaise int64     `gorm:"type:bigint;not null"`
	PricePerKmPaise      int64     `gorm:"type:bigint;not null"`
	MinPricePaise        int64     `gorm:"type:bigint;not null"`
	MaxPricePaise        int64     `gorm:"type:bigint;not null"`
	CapacityTon          float64   `gorm:"type:numeric(6,2)"`
	AvailableVehicles    int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for segment pricing entities.
func (SegmentPricingDTO) TableName() string {
	return "route_segment_pricing"
}

// fromDomain converts a route domain aggregate to its database representation.
// Maps the aggregate with all stops and segment pricing rows.
func fromDomain(r *route.Route) RouteDTO {
	routeID := r.ID().Bytes()

	stops := make([]StopDTO, 0, len(r.Stops()))
	for _, s := range r.Stops() {
		stops = append(stops, StopDTO{
			ID:                   s.ID().Bytes(),
			RouteID:              routeID,
			City:                 s.City(),
			Latitude:             s.Point().Latitude(),
			Longitude:            s.Point().Longitude(),
			StopOrder:            s.Order(),
			DistanceFromOriginKm: s.DistanceFromOriginKm(),
			CanPickup:            s.CanPickup(),
			CanDrop:              s.CanDrop(),
		})
	}

	pricing := make([]SegmentPricingDTO, 0, len(r.Pricing()))
	for _, p := range r.Pricing() {
		pricing = append(pricing, SegmentPricingDTO{
			ID:                   p.ID().Bytes(),
			RouteID:              routeID,
			TruckTypeID:          p.TruckTypeID().Bytes(),
			FromCity:             p.FromCity(),
			ToCity:               p.ToCity(),
			BaseChargePaise:      p.BaseCharge().Paise(),
			FuelChargePaise:      p.FuelCharge().Paise(),
			TollChargePaise:      p.TollCharge().Paise(),
			LoadingChargePaise:   p.LoadingCharge().Paise(),
			UnloadingChargePaise: p.UnloadingCharge().Paise(),
			PricePerKmPaise:      p.PricePerKm().Paise(),
			MinPricePaise:        p.MinPrice().Paise(),
			MaxPricePaise:        p.MaxPrice().Paise(),
			CapacityTon:          p.CapacityTon(),
			AvailableVehicles:    p.AvailableVehicles(),
		})
	}

	return RouteDTO{
		ID:            routeID,
		VendorID:      r.VendorID().Bytes(),
		Origin:        endpointFromDomain(r.Origin()),
		Destination:   endpointFromDomain(r.Destination()),
		DistanceKm:    r.DistanceKm(),
		DurationHours: r.DurationHours(),
		Frequency:     r.Frequency(),
		IsActive:      r.IsActive(),
		Stops:         stops,
		Pricing:       pricing,
	}
}

func endpointFromDomain(e route.Endpoint) EndpointDTO {
	return EndpointDTO{
		City:      e.City(),
		State:     e.State(),
		Pincode:   e.Pincode().String(),
		Latitude:  e.Point().Latitude(),
		Longitude: e.Point().Longitude(),
	}
}

// toDomain converts a database DTO to a route domain aggregate.
// Reconstructs the complete aggregate including stops and pricing using RestoreRoute.
func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	origin, err := endpointToDomain(dto.Origin)
	if err != nil {
		return nil, err
	}

	destination, err := endpointToDomain(dto.Destination)
	if err != nil {
		return nil, err
	}

	stops := make([]*route.Stop, 0, len(dto.Stops))
	for _, sDto := range dto.Stops {
		s, sErr := stopToDomain(sDto)
		if sErr != nil {
			return nil, sErr
		}
		stops = append(stops, s)
	}

	pricing := make([]*route.SegmentPricing, 0, len(dto.Pricing))
	for _, pDto := range dto.Pricing {
		p, pErr := segmentPricingToDomain(pDto)
		if pErr != nil {
			return nil, pErr
		}
		pricing = append(pricing, p)
	}

	return route.RestoreRoute(id, vendorID, origin, destination, dto.DistanceKm,
		dto.DurationHours, dto.Frequency, dto.IsActive, stops, pricing)
}

func endpointToDomain(dto EndpointDTO) (route.Endpoint, error) {
	pincode, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return route.Endpoint{}, err
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return route.Endpoint{}, err
	}

	return route.NewEndpoint(dto.City, dto.State, pincode, point)
}

func stopToDomain(dto StopDTO) (*route.Stop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	return route.RestoreStop(id, dto.City, point, dto.StopOrder,
		dto.DistanceFromOriginKm, dto.CanPickup, dto.CanDrop)
}

func segmentPricingToDomain(dto SegmentPricingDTO) (*route.SegmentPricing, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	truckTypeID, err := kernel.UUIDFromBytes(dto.TruckTypeID[:])
	if err != nil {
		return nil, err
	}

	amounts := make([]kernel.Money, 0, 8)
	for _, paise := range []int64{
		dto.BaseChargePaise, dto.FuelChargePaise, dto.TollChargePaise,
		dto.LoadingChargePaise, dto.UnloadingChargePaise, dto.PricePerKmPaise,
		dto.MinPricePaise, dto.MaxPricePaise,
	} {
		m, mErr := kernel.NewMoneyFromPaise(paise)
		if mErr != nil {
			return nil, mErr
		}
		amounts = append(amounts, m)
	}

	return route.RestoreSegmentPricing(id, truckTypeID, dto.FromCity, dto.ToCity,
		amounts[0], amounts[1], amounts[2], amounts[3], amounts[4], amounts[5],
		amounts[6], amounts[7], dto.CapacityTon, dto.AvailableVehicles)
}
