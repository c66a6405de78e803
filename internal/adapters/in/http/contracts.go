package http

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// Error is the JSON error payload returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// IDResponse carries the identifier of a newly created resource.
type IDResponse struct {
	ID string `json:"id"`
}

// GeoPointBody is a latitude/longitude pair as carried in request bodies.
type GeoPointBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// CreateTruckTypeRequest registers a truck type in the catalogue.
type CreateTruckTypeRequest struct {
	Name        string  `json:"name"`
	CapacityTon float64 `json:"capacity_ton"`
	Description string  `json:"description"`
}

// CreateTruckRequest registers a truck in the acting vendor's fleet.
type CreateTruckRequest struct {
	TruckTypeID        string `json:"truck_type_id"`
	RegistrationNumber string `json:"registration_number"`
	ModelName          string `json:"model_name"`
	ManufactureYear    int    `json:"manufacture_year"`
}

// CreateDriverRequest registers a driver in the acting vendor's fleet.
type CreateDriverRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	LicenseNumber string `json:"license_number"`
}

// UpdateTruckAvailabilityRequest toggles a truck's availability.
type UpdateTruckAvailabilityRequest struct {
	Available bool `json:"available"`
}

// EndpointBody is a route endpoint as carried in request bodies.
type EndpointBody struct {
	City     string       `json:"city"`
	State    string       `json:"state"`
	Pincode  string       `json:"pincode"`
	Location GeoPointBody `json:"location"`
}

// StopBody is an intermediate route stop.
type StopBody struct {
	City                 string       `json:"city"`
	Location             GeoPointBody `json:"location"`
	StopOrder            int          `json:"stop_order"`
	DistanceFromOriginKm float64      `json:"distance_from_origin_km"`
	CanPickup            bool         `json:"can_pickup"`
	CanDrop              bool         `json:"can_drop"`
}

// SegmentPricingBody prices one truck type over one segment of a route.
// Monetary amounts are rupees.
type SegmentPricingBody struct {
	TruckTypeID       string  `json:"truck_type_id"`
	FromCity          string  `json:"from_city"`
	ToCity            string  `json:"to_city"`
	BaseCharge        float64 `json:"base_charge"`
	FuelCharge        float64 `json:"fuel_charge"`
	TollCharge        float64 `json:"toll_charge"`
	LoadingCharge     float64 `json:"loading_charge"`
	UnloadingCharge   float64 `json:"unloading_charge"`
	PricePerKm        float64 `json:"price_per_km"`
	MinPrice          float64 `json:"min_price"`
	MaxPrice          float64 `json:"max_price"`
	CapacityTon       float64 `json:"capacity_ton"`
	AvailableVehicles int     `json:"available_vehicles"`
}

// CreateRouteRequest publishes a vendor route with stops and segment
// pricing.
type CreateRouteRequest struct {
	Origin        EndpointBody         `json:"origin"`
	Destination   EndpointBody         `json:"destination"`
	DistanceKm    float64              `json:"distance_km"`
	DurationHours float64              `json:"duration_hours"`
	Frequency     string               `json:"frequency"`
	Stops         []StopBody           `json:"stops"`
	Pricing       []SegmentPricingBody `json:"pricing"`
}

// CreateEnquiryRequest opens a customer enquiry.
type CreateEnquiryRequest struct {
	PickupCity       string       `json:"pickup_city"`
	PickupLocation   GeoPointBody `json:"pickup_location"`
	DeliveryCity     string       `json:"delivery_city"`
	DeliveryLocation GeoPointBody `json:"delivery_location"`
	PickupDate       types.Date   `json:"pickup_date"`
	TruckTypeID      string       `json:"truck_type_id"`
	VehicleCount     int          `json:"vehicle_count"`
	WeightTon        float64      `json:"weight_ton"`
	CargoDescription string       `json:"cargo_description"`
}

// SelectPriceRangeRequest picks one generated price range.
type SelectPriceRangeRequest struct {
	RangeID string `json:"range_id"`
}

// VendorFanoutBody is one vendor target of a fan-out. SuggestedPrice is
// rupees.
type VendorFanoutBody struct {
	VendorID       string  `json:"vendor_id"`
	SuggestedPrice float64 `json:"suggested_price"`
	Notes          string  `json:"notes"`
	Urgency        string  `json:"urgency"`
}

// SendToVendorsRequest fans an enquiry out to vendors.
type SendToVendorsRequest struct {
	Vendors []VendorFanoutBody `json:"vendors"`
}

// RespondVendorRequestRequest records a vendor's answer to a fan-out
// request. Action is accept, counter or reject; CounterPrice is rupees and
// required only for counter.
type RespondVendorRequestRequest struct {
	Action       string   `json:"action"`
	CounterPrice *float64 `json:"counter_price,omitempty"`
}

// ConfirmVendorRequest settles an enquiry on one winning vendor request.
type ConfirmVendorRequest struct {
	RequestID string `json:"request_id"`
}

// CreateQuotationRequestRequest opens a formal quotation request.
type CreateQuotationRequestRequest struct {
	OriginPincode      string     `json:"origin_pincode"`
	DestinationPincode string     `json:"destination_pincode"`
	PickupDate         types.Date `json:"pickup_date"`
	DropDate           types.Date `json:"drop_date"`
	Weight             float64    `json:"weight"`
	WeightUnit         string     `json:"weight_unit"`
	TruckTypeID        string     `json:"truck_type_id"`
	Urgency            string     `json:"urgency"`
}

// QuotationItemBody is one line of a quotation. UnitPrice is rupees.
type QuotationItemBody struct {
	TruckTypeID string  `json:"truck_type_id"`
	TruckID     *string `json:"truck_id,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateQuotationRequest raises a vendor quotation against a request.
type CreateQuotationRequest struct {
	RequestID     string              `json:"request_id"`
	Items         []QuotationItemBody `json:"items"`
	DistanceKm    float64             `json:"distance_km"`
	ValidityHours int                 `json:"validity_hours"`
}

// NegotiateQuotationRequest proposes a counter price. Proposed is rupees.
type NegotiateQuotationRequest struct {
	Proposed float64 `json:"proposed"`
	Message  string  `json:"message"`
}

// OrderDetailsBody carries the concrete addresses an order needs at
// quotation acceptance time.
type OrderDetailsBody struct {
	PickupAddress    string       `json:"pickup_address"`
	PickupLocation   GeoPointBody `json:"pickup_location"`
	DeliveryAddress  string       `json:"delivery_address"`
	DeliveryLocation GeoPointBody `json:"delivery_location"`
	CargoDescription string       `json:"cargo_description"`
}

// OrderIDResponse carries the identifier of the order created by a
// quotation acceptance.
type OrderIDResponse struct {
	OrderID string `json:"order_id"`
}

// UpdateOrderStatusRequest moves an order to a new status.
type UpdateOrderStatusRequest struct {
	Status   string        `json:"status"`
	Notes    string        `json:"notes"`
	Location *GeoPointBody `json:"location,omitempty"`
}

// AssignDriverRequest attaches a driver to an order.
type AssignDriverRequest struct {
	DriverID string `json:"driver_id"`
	Notes    string `json:"notes"`
}

// VerifyDeliveryRequest completes an order with the customer's OTP.
type VerifyDeliveryRequest struct {
	OTP            string   `json:"otp"`
	ActualWeightKg *float64 `json:"actual_weight_kg,omitempty"`
}

// CreatePaymentRequest records a payment against an order. Amount is
// rupees.
type CreatePaymentRequest struct {
	OrderID     string  `json:"order_id"`
	Amount      float64 `json:"amount"`
	PaymentType string  `json:"payment_type"`
	Method      string  `json:"method"`
}

// InitiatePaymentRequest hands a payment to a gateway.
type InitiatePaymentRequest struct {
	GatewayName string `json:"gateway_name"`
}

// PaymentWebhookRequest is the gateway's settlement callback.
type PaymentWebhookRequest struct {
	PaymentID     string `json:"payment_id"`
	Success       bool   `json:"success"`
	GatewayTxnID  string `json:"gateway_txn_id"`
	FailureReason string `json:"failure_reason"`
}

// GenerateInvoiceRequest builds an invoice for an order. Charge amounts
// are rupees; rates are percentages.
type GenerateInvoiceRequest struct {
	OrderID          string  `json:"order_id"`
	BaseCharge       float64 `json:"base_charge"`
	FuelCharge       float64 `json:"fuel_charge"`
	TollCharge       float64 `json:"toll_charge"`
	LoadingCharge    float64 `json:"loading_charge"`
	UnloadingCharge  float64 `json:"unloading_charge"`
	AdditionalCharge float64 `json:"additional_charge"`
	Discount         float64 `json:"discount"`
	CGSTRate         float64 `json:"cgst_rate"`
	SGSTRate         float64 `json:"sgst_rate"`
	IGSTRate         float64 `json:"igst_rate"`
}

// TruckResponse is one truck in a fleet listing.
type TruckResponse struct {
	ID                 string  `json:"id"`
	RegistrationNumber string  `json:"registration_number"`
	ModelName          string  `json:"model_name"`
	ManufactureYear    int     `json:"manufacture_year"`
	IsAvailable        bool    `json:"is_available"`
	TruckTypeName      string  `json:"truck_type_name"`
	CapacityTon        float64 `json:"capacity_ton"`
}

// RouteResponse is one route in a vendor's network listing.
type RouteResponse struct {
	ID              string  `json:"id"`
	OriginCity      string  `json:"origin_city"`
	OriginPincode   string  `json:"origin_pincode"`
	DestinationCity string  `json:"destination_city"`
	DestPincode     string  `json:"destination_pincode"`
	DistanceKm      float64 `json:"distance_km"`
	DurationHours   float64 `json:"duration_hours"`
	Frequency       string  `json:"frequency"`
	IsActive        bool    `json:"is_active"`
	StopCount       int     `json:"stop_count"`
	PricingCount    int     `json:"pricing_count"`
}

// EnquiryResponse is one enquiry in a listing.
type EnquiryResponse struct {
	ID                 string    `json:"id"`
	CustomerID         string    `json:"customer_id"`
	PickupCity         string    `json:"pickup_city"`
	DeliveryCity       string    `json:"delivery_city"`
	PickupDate         time.Time `json:"pickup_date"`
	VehicleCount       int       `json:"vehicle_count"`
	WeightTon          float64   `json:"weight_ton"`
	CargoDescription   string    `json:"cargo_description"`
	Status             string    `json:"status"`
	MiscellaneousRoute bool      `json:"miscellaneous_route"`
	CreatedAt          time.Time `json:"created_at"`
}

// PriceRangeResponse is one generated price range. Prices are rupees.
type PriceRangeResponse struct {
	ID            string  `json:"id"`
	MinPrice      float64 `json:"min_price"`
	MaxPrice      float64 `json:"max_price"`
	AvgPrice      float64 `json:"avg_price"`
	VehicleCount  int     `json:"vehicle_count"`
	VendorCount   int     `json:"vendor_count"`
	Chance        string  `json:"chance"`
	DurationHours float64 `json:"duration_hours"`
	Miscellaneous bool    `json:"miscellaneous"`
}

// VendorRequestResponse is one fan-out request. Prices are rupees.
type VendorRequestResponse struct {
	ID             string    `json:"id"`
	EnquiryID      string    `json:"enquiry_id"`
	VendorID       string    `json:"vendor_id"`
	PickupCity     string    `json:"pickup_city"`
	DeliveryCity   string    `json:"delivery_city"`
	SuggestedPrice float64   `json:"suggested_price"`
	ResponsePrice  *float64  `json:"response_price,omitempty"`
	Notes          string    `json:"notes"`
	Urgency        string    `json:"urgency"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// QuotationResponse is one quotation in a listing. Amounts are rupees.
type QuotationResponse struct {
	ID               string    `json:"id"`
	RequestID        string    `json:"request_id"`
	VendorID         string    `json:"vendor_id"`
	TotalAmount      float64   `json:"total_amount"`
	OriginalAmount   float64   `json:"original_amount"`
	ValidityHours    int       `json:"validity_hours"`
	Status           string    `json:"status"`
	ItemCount        int       `json:"item_count"`
	NegotiationCount int       `json:"negotiation_count"`
	CreatedAt        time.Time `json:"created_at"`
}

// NegotiationResponse is one negotiation entry. Proposed is rupees.
type NegotiationResponse struct {
	Initiator string    `json:"initiator"`
	Proposed  float64   `json:"proposed"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderResponse is one order in a listing. TotalAmount is rupees.
type OrderResponse struct {
	ID                string    `json:"id"`
	Number            string    `json:"number"`
	PickupAddress     string    `json:"pickup_address"`
	DeliveryAddress   string    `json:"delivery_address"`
	ScheduledPickup   time.Time `json:"scheduled_pickup"`
	ScheduledDelivery time.Time `json:"scheduled_delivery"`
	TotalAmount       float64   `json:"total_amount"`
	EstimatedWeightKg float64   `json:"estimated_weight_kg"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// OrderHistoryResponse is one status transition of an order.
type OrderHistoryResponse struct {
	Previous  string        `json:"previous"`
	Next      string        `json:"next"`
	ActorRole string        `json:"actor_role"`
	ActorID   string        `json:"actor_id"`
	Notes     string        `json:"notes"`
	Location  *GeoPointBody `json:"location,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// PaymentResponse is one payment in a listing. Amount is rupees.
type PaymentResponse struct {
	ID          string     `json:"id"`
	Reference   string     `json:"reference"`
	OrderID     string     `json:"order_id"`
	OrderNumber string     `json:"order_number"`
	Amount      float64    `json:"amount"`
	PaymentType string     `json:"payment_type"`
	Method      string     `json:"method"`
	GatewayName string     `json:"gateway_name"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PaymentHistoryResponse is one status transition of a payment.
type PaymentHistoryResponse struct {
	Previous  string    `json:"previous"`
	Next      string    `json:"next"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// MonthlyRevenueResponse is one month of completed payment volume.
// Amount is rupees.
type MonthlyRevenueResponse struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// PaymentStatsResponse is a vendor's payment statistics. Amounts are
// rupees.
type PaymentStatsResponse struct {
	CompletedAmount float64                  `json:"completed_amount"`
	CompletedCount  int                      `json:"completed_count"`
	PendingAmount   float64                  `json:"pending_amount"`
	PendingCount    int                      `json:"pending_count"`
	FailedCount     int                      `json:"failed_count"`
	Monthly         []MonthlyRevenueResponse `json:"monthly"`
}
