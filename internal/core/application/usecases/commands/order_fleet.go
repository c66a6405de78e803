package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// releaseFleet frees the truck and driver engaged by the order. Called from
// the terminal order transitions within the caller's transaction.
func releaseFleet(ctx context.Context, repos FleetRepoFactory, ord *order.Order) error {
	if ord.TruckID() != nil {
		engaged, err := repos.TruckRepository().Get(ctx, *ord.TruckID())
		if err != nil {
			return err
		}
		if err = engaged.Release(); err != nil {
			return err
		}
		if err = repos.TruckRepository().Update(ctx, engaged); err != nil {
			return err
		}
	}

	if ord.DriverID() != nil {
		assigned, err := repos.DriverRepository().Get(ctx, *ord.DriverID())
		if err != nil {
			return err
		}
		if err = assigned.Release(); err != nil {
			return err
		}
		if err = repos.DriverRepository().Update(ctx, assigned); err != nil {
			return err
		}
	}

	return nil
}

// ownsOrder reports whether the actor may touch the order at all. Customers
// and vendors see only their own orders; drivers only orders assigned to
// them; managers and admins see everything.
func ownsOrder(ord *order.Order, role order.Role, actorID kernel.UUID) bool {
	switch role {
	case order.RoleCustomer:
		return ord.CustomerID().IsEqual(actorID)
	case order.RoleVendor:
		return ord.VendorID().IsEqual(actorID)
	case order.RoleDriver:
		return ord.DriverID() != nil && ord.DriverID().IsEqual(actorID)
	case order.RoleManager, order.RoleAdmin:
		return true
	case order.RoleUnknown:
		return false
	default:
		return false
	}
}
