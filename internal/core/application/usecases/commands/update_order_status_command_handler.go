package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler handles the business logic for order
// lifecycle transitions. Transition validity and role permission live in
// the aggregate; this handler adds the ownership check and the fleet side
// effects of the terminal statuses.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for order lifecycle
// transitions.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !ownsOrder(aggregate, cmd.Role(), cmd.ActorID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	err = aggregate.ChangeStatus(cmd.Target(), cmd.Role(), cmd.ActorID(),
		cmd.Notes(), cmd.Point(), time.Now().UTC())
	if err != nil {
		return err
	}

	if aggregate.Status() == order.StatusCompleted || aggregate.Status() == order.StatusCancelled {
		if err = releaseFleet(ctx, uow, aggregate); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
