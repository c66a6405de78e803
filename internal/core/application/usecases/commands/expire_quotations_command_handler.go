package commands

import (
	"context"
	"time"
)

// ExpireQuotationsCommandHandler expires every quotation whose validity
// window has passed. All expirations happen in a single transaction.
type ExpireQuotationsCommandHandler struct {
	uowFactory QuotationUoWFactory
}

// NewExpireQuotationsCommandHandler creates a handler for batch quotation
// expiry.
func NewExpireQuotationsCommandHandler(uowFactory QuotationUoWFactory) ExpireQuotationsCommandHandler {
	return ExpireQuotationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the batch expiry command.
func (h *ExpireQuotationsCommandHandler) Handle(ctx context.Context, cmd ExpireQuotationsCommand) error {
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

	expired, err := uow.QuotationRepository().GetAllExpiredOpen(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, aggregate := range expired {
		if err = aggregate.Expire(now); err != nil {
			return err
		}

		if err = uow.QuotationRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
