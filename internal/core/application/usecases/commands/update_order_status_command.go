package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a lifecycle transition on an order,
// performed by a customer, vendor, driver, manager or admin.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	role    order.Role
	actorID kernel.UUID
	notes   string
	point   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to move an order to the
// target status. The optional point records where the transition happened.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	role order.Role,
	actorID kernel.UUID,
	notes string,
	point *kernel.GeoPoint,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
		cmd.setRole(role),
		cmd.setActorID(actorID),
		cmd.setPoint(point),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order identifier.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c UpdateOrderStatusCommand) Target() order.Status {
	return c.target
}

// Role returns the acting user's role.
func (c UpdateOrderStatusCommand) Role() order.Role {
	return c.role
}

// ActorID returns the acting user's identifier.
func (c UpdateOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Notes returns the optional transition notes.
func (c UpdateOrderStatusCommand) Notes() string {
	return c.notes
}

// Point returns the optional location of the transition.
func (c UpdateOrderStatusCommand) Point() *kernel.GeoPoint {
	return c.point
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *UpdateOrderStatusCommand) setRole(role order.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}

func (c *UpdateOrderStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *UpdateOrderStatusCommand) setPoint(point *kernel.GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}

	c.point = point
	return nil
}
