package commands

import (
	"context"

	"freight/internal/core/domain/model/enquiry"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
)

// CreateEnquiryCommandHandler handles the business logic for enquiry
// submission. The enquiry is matched against all active vendor routes and a
// set of price ranges is generated in the same transaction, so the customer
// sees indicative prices immediately.
type CreateEnquiryCommandHandler struct {
	uowFactory EnquiryUoWFactory
	matcher    services.RouteMatcher
}

// NewCreateEnquiryCommandHandler creates a handler for enquiry submission.
func NewCreateEnquiryCommandHandler(
	uowFactory EnquiryUoWFactory,
	matcher services.RouteMatcher,
) CreateEnquiryCommandHandler {
	return CreateEnquiryCommandHandler{
		uowFactory: uowFactory,
		matcher:    matcher,
	}
}

// Handle processes the enquiry submission command and returns the new
// enquiry's identifier.
func (h *CreateEnquiryCommandHandler) Handle(ctx context.Context, cmd CreateEnquiryCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := enquiry.NewEnquiry(cmd.CustomerID(), cmd.PickupCity(), cmd.PickupPoint(),
		cmd.DeliveryCity(), cmd.DeliveryPoint(), cmd.PickupDate(), cmd.TruckTypeID(),
		cmd.VehicleCount(), cmd.WeightTon(), cmd.CargoDescription())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = aggregate.StartReview(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routes, err := uow.RouteRepository().GetAllActive(ctx)
	if err != nil {
		return kernel.UUID{}, err
	}

	matches, err := h.matcher.Match(aggregate, routes)
	if err != nil {
		return kernel.UUID{}, err
	}

	ranges, err := h.matcher.GeneratePriceRanges(aggregate, matches)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = aggregate.MarkQuotesGenerated(len(matches) == 0); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.EnquiryRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.PriceRangeRepository().AddAll(ctx, ranges); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
