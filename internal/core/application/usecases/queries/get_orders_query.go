package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders visible to an actor. Customers, vendors
// and drivers see their own orders; managers and admins see everything.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	role    order.Role

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for an actor's order listing.
func NewGetOrdersQuery(actorID kernel.UUID, role order.Role) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setActorID(actorID),
		query.setRole(role),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (q GetOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns the acting user's role.
func (q GetOrdersQuery) Role() order.Role {
	return q.role
}

func (q *GetOrdersQuery) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	q.actorID = actorID
	return nil
}

func (q *GetOrdersQuery) setRole(role order.Role) error {
	if role == order.RoleUnknown {
		return errs.NewValueIsInvalidError("role")
	}

	q.role = role
	return nil
}

// GetOrdersQueryResponse represents a single order summary.
type GetOrdersQueryResponse struct {
	ID                kernel.UUID
	Number            string
	PickupAddress     string
	DeliveryAddress   string
	ScheduledPickup   time.Time
	ScheduledDelivery time.Time
	TotalAmount       kernel.Money
	EstimatedWeightKg float64
	Status            string
	CreatedAt         time.Time
}
