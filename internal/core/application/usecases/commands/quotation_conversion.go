package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/model/quotation"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned when accepting a quotation that was
// already converted into an order.
var ErrOrderAlreadyExists = errors.New("quotation already has an order")

// OrderDetails carries the concrete addresses the customer supplies at
// acceptance time. The quotation request only holds pincodes.
type OrderDetails struct {
	PickupAddress    string
	PickupPoint      kernel.GeoPoint
	DeliveryAddress  string
	DeliveryPoint    kernel.GeoPoint
	CargoDescription string
}

func (d OrderDetails) validate() error {
	if d.PickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if d.DeliveryAddress == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	return errors.Join(d.PickupPoint.Validate(), d.DeliveryPoint.Validate())
}

// ensureNotConverted guards the 1:1 quotation-order relation.
func ensureNotConverted(ctx context.Context, uow ConversionUoW, quotationID kernel.UUID) error {
	_, err := uow.OrderRepository().GetByQuotation(ctx, quotationID)
	if err == nil {
		return ErrOrderAlreadyExists
	}

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// convertAcceptedQuotation turns an already-accepted quotation into an
// order within the caller's transaction: the remaining open quotations on
// the request are rejected, the request is fulfilled, an available truck of
// the requested type is dispatched when the vendor has one, and the order
// is created with the request's schedule and the quotation's final total.
func convertAcceptedQuotation(
	ctx context.Context,
	uow ConversionUoW,
	dispatcher services.OrderDispatcher,
	accepted *quotation.Quotation,
	details OrderDetails,
	now time.Time,
) (*order.Order, error) {
	request, err := uow.QuotationRequestRepository().Get(ctx, accepted.RequestID())
	if err != nil {
		return nil, err
	}

	siblings, err := uow.QuotationRepository().GetAllOpenByRequest(ctx, request.ID())
	if err != nil {
		return nil, err
	}
	for _, sibling := range siblings {
		if sibling.ID().IsEqual(accepted.ID()) {
			continue
		}
		if err = sibling.Reject(); err != nil {
			return nil, err
		}
		if err = uow.QuotationRepository().Update(ctx, sibling); err != nil {
			return nil, err
		}
	}

	if err = request.MarkFulfilled(); err != nil {
		return nil, err
	}
	if err = uow.QuotationRequestRepository().Update(ctx, request); err != nil {
		return nil, err
	}

	truckID, err := dispatchTruck(ctx, uow, dispatcher, accepted.VendorID(), request.TruckTypeID())
	if err != nil {
		return nil, err
	}

	converted, err := order.NewOrder(accepted.ID(), accepted.CustomerID(), accepted.VendorID(),
		truckID, details.PickupAddress, details.PickupPoint, details.DeliveryAddress,
		details.DeliveryPoint, request.PickupDate(), request.DropDate(),
		accepted.TotalAmount(), details.CargoDescription, request.WeightKg(), now)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, converted); err != nil {
		return nil, err
	}

	return converted, nil
}

// dispatchTruck engages one of the vendor's available trucks of the
// requested type. A vendor without one still gets the order; the truck is
// attached later through the order lifecycle.
func dispatchTruck(
	ctx context.Context,
	uow ConversionUoW,
	dispatcher services.OrderDispatcher,
	vendorID kernel.UUID,
	truckTypeID kernel.UUID,
) (*kernel.UUID, error) {
	candidates, err := uow.TruckRepository().GetAllAvailable(ctx, vendorID, truckTypeID)
	if err != nil {
		return nil, err
	}

	dispatched, err := dispatcher.Dispatch(candidates)
	if err != nil {
		if errors.Is(err, services.ErrNoTruckAvailable) {
			return nil, nil //nolint:nilnil //absence of a truck is not a failure
		}
		return nil, err
	}

	if err = uow.TruckRepository().Update(ctx, dispatched); err != nil {
		return nil, err
	}

	id := dispatched.ID()
	return &id, nil
}
