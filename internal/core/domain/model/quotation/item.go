package quotation

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one priced line of a quotation: a number of vehicles of a truck
// type at a unit price, optionally pinned to a concrete truck.
type Item struct {
	id          kernel.UUID
	truckTypeID kernel.UUID
	truckID     *kernel.UUID
	quantity    int
	unitPrice   kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates an Item with a fresh identifier.
func NewItem(truckTypeID kernel.UUID, truckID *kernel.UUID, quantity int, unitPrice kernel.Money) (*Item, error) {
	return RestoreItem(kernel.NewUUID(), truckTypeID, truckID, quantity, unitPrice)
}

// RestoreItem reconstructs an Item from persistent storage.
func RestoreItem(
	id kernel.UUID,
	truckTypeID kernel.UUID,
	truckID *kernel.UUID,
	quantity int,
	unitPrice kernel.Money,
) (*Item, error) {
	i := &Item{
		truckID: truckID,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		i.setID(id),
		i.setTruckTypeID(truckTypeID),
		i.setQuantity(quantity),
		i.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	if truckID != nil {
		if err := truckID.Validate(); err != nil {
			return nil, fmt.Errorf("truckID: %w", err)
		}
	}

	return i, nil
}

// Validate checks that the Item was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// TruckTypeID returns the priced vehicle category.
func (i *Item) TruckTypeID() kernel.UUID { return i.truckTypeID }

// TruckID returns the pinned truck, nil when the vendor prices by type only.
func (i *Item) TruckID() *kernel.UUID { return i.truckID }

// Quantity returns the number of vehicles.
func (i *Item) Quantity() int { return i.quantity }

// UnitPrice returns the per-vehicle price.
func (i *Item) UnitPrice() kernel.Money { return i.unitPrice }

// Subtotal returns quantity times unit price.
func (i *Item) Subtotal() kernel.Money {
	subtotal, _ := i.unitPrice.MulInt(int64(i.quantity))
	return subtotal
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setTruckTypeID(truckTypeID kernel.UUID) error {
	if err := truckTypeID.Validate(); err != nil {
		return fmt.Errorf("truckTypeID: %w", err)
	}
	i.truckTypeID = truckTypeID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if unitPrice.IsZero() {
		return errs.NewValueIsInvalidError("unitPrice")
	}
	i.unitPrice = unitPrice
	return nil
}
