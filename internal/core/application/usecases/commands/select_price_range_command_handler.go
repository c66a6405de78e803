package commands

import (
	"context"

	"freight/internal/pkg/errs"
)

// SelectPriceRangeCommandHandler handles the business logic for price range
// selection. Selecting a range assigns the enquiry to the active manager
// with the lightest workload, who then takes it to vendors.
type SelectPriceRangeCommandHandler struct {
	uowFactory EnquiryUoWFactory
}

// NewSelectPriceRangeCommandHandler creates a handler for price range
// selection.
func NewSelectPriceRangeCommandHandler(uowFactory EnquiryUoWFactory) SelectPriceRangeCommandHandler {
	return SelectPriceRangeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the price range selection command.
func (h *SelectPriceRangeCommandHandler) Handle(ctx context.Context, cmd SelectPriceRangeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.EnquiryRepository().Get(ctx, cmd.EnquiryID())
	if err != nil {
		return err
	}

	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("enquiryID", cmd.EnquiryID())
	}

	priceRange, err := uow.PriceRangeRepository().Get(ctx, cmd.RangeID())
	if err != nil {
		return err
	}

	if !priceRange.EnquiryID().IsEqual(aggregate.ID()) {
		return errs.NewObjectNotFoundError("rangeID", cmd.RangeID())
	}

	manager, err := uow.ManagerRepository().GetLeastLoaded(ctx)
	if err != nil {
		return err
	}

	if err = aggregate.SelectPriceRange(priceRange.ID(), manager.ID()); err != nil {
		return err
	}

	if err = uow.EnquiryRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
