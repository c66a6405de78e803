package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/quotation"
)

// CreateQuotationRequestCommandHandler handles the business logic for
// opening a quotation request. Beyond the domain constructor's guards it
// enforces the per-customer active-request cap and corridor uniqueness,
// which need visibility over the customer's other requests.
type CreateQuotationRequestCommandHandler struct {
	uowFactory QuotationUoWFactory
}

// NewCreateQuotationRequestCommandHandler creates a handler for opening
// quotation requests.
func NewCreateQuotationRequestCommandHandler(uowFactory QuotationUoWFactory) CreateQuotationRequestCommandHandler {
	return CreateQuotationRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the request creation command and returns the new
// request's identifier.
func (h *CreateQuotationRequestCommandHandler) Handle(
	ctx context.Context,
	cmd CreateQuotationRequestCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := quotation.NewRequest(cmd.CustomerID(), cmd.OriginPincode(),
		cmd.DestinationPincode(), cmd.PickupDate(), cmd.DropDate(), cmd.Weight(),
		cmd.WeightUnit(), cmd.TruckTypeID(), cmd.Urgency(), time.Now().UTC())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	active, err := uow.QuotationRequestRepository().CountActiveByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if active >= quotation.MaxActiveRequestsPerCustomer {
		return kernel.UUID{}, quotation.ErrTooManyActiveRequests
	}

	duplicate, err := uow.QuotationRequestRepository().ExistsDuplicate(ctx, aggregate)
	if err != nil {
		return kernel.UUID{}, err
	}
	if duplicate {
		return kernel.UUID{}, ErrDuplicateQuotationRequest
	}

	if err = uow.QuotationRequestRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
