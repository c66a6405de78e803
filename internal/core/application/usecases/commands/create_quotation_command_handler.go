package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/core/domain/services"
)

// CreateQuotationCommandHandler handles the business logic for quotation
// submission. The offered total is checked against the minimum expected
// price for the requested vehicle type and corridor distance, and one
// quotation per vendor per request is enforced.
type CreateQuotationCommandHandler struct {
	uowFactory PricingUoWFactory
	estimator  services.PriceEstimator
}

// NewCreateQuotationCommandHandler creates a handler for quotation
// submission.
func NewCreateQuotationCommandHandler(
	uowFactory PricingUoWFactory,
	estimator services.PriceEstimator,
) CreateQuotationCommandHandler {
	return CreateQuotationCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
	}
}

// Handle processes the quotation submission command and returns the new
// quotation's identifier.
func (h *CreateQuotationCommandHandler) Handle(ctx context.Context, cmd CreateQuotationCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	request, err := uow.QuotationRequestRepository().Get(ctx, cmd.RequestID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !request.IsActive() {
		return kernel.UUID{}, ErrRequestNotActive
	}

	existing, err := uow.QuotationRepository().GetAllByRequest(ctx, request.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	for _, q := range existing {
		if q.VendorID().IsEqual(cmd.VendorID()) {
			return kernel.UUID{}, ErrDuplicateQuotation
		}
	}

	truckType, err := uow.TruckTypeRepository().Get(ctx, request.TruckTypeID())
	if err != nil {
		return kernel.UUID{}, err
	}

	minExpected, err := h.estimator.MinimumExpected(truckType.Name(), cmd.DistanceKm())
	if err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := quotation.NewQuotation(request.ID(), request.CustomerID(),
		cmd.VendorID(), cmd.Items(), minExpected, cmd.ValidityHours(), time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.QuotationRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
