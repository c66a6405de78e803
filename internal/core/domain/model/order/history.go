package order

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through NewHistoryEntry or RestoreHistoryEntry.
var ErrHistoryEntryIsNotConstructed = errors.New(
	"HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry records one status change on an order: who moved it, from
// what to what, optionally where and why.
type HistoryEntry struct {
	id        kernel.UUID
	previous  Status
	next      Status
	role      Role
	actorID   kernel.UUID
	notes     string
	point     *kernel.GeoPoint
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewHistoryEntry creates a HistoryEntry with a fresh identifier.
func NewHistoryEntry(
	previous Status,
	next Status,
	role Role,
	actorID kernel.UUID,
	notes string,
	point *kernel.GeoPoint,
	createdAt time.Time,
) (*HistoryEntry, error) {
	return RestoreHistoryEntry(kernel.NewUUID(), previous, next, role, actorID, notes, point, createdAt)
}

// RestoreHistoryEntry reconstructs a HistoryEntry from persistent storage.
func RestoreHistoryEntry(
	id kernel.UUID,
	previous Status,
	next Status,
	role Role,
	actorID kernel.UUID,
	notes string,
	point *kernel.GeoPoint,
	createdAt time.Time,
) (*HistoryEntry, error) {
	if err := errors.Join(
		id.Validate(),
		previous.Validate(),
		next.Validate(),
		role.Validate(),
		actorID.Validate(),
	); err != nil {
		return nil, err
	}
	if point != nil {
		if err := point.Validate(); err != nil {
			return nil, err
		}
	}

	return &HistoryEntry{
		id:        id,
		previous:  previous,
		next:      next,
		role:      role,
		actorID:   actorID,
		notes:     notes,
		point:     point,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the HistoryEntry was properly constructed.
func (h *HistoryEntry) Validate() error {
	if h == nil {
		return ErrHistoryEntryIsNotConstructed
	}
	return h.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (h *HistoryEntry) ID() kernel.UUID { return h.id }

// Previous returns the status before the change.
func (h *HistoryEntry) Previous() Status { return h.previous }

// Next returns the status after the change.
func (h *HistoryEntry) Next() Status { return h.next }

// ActorRole returns the role of the acting user.
func (h *HistoryEntry) ActorRole() Role { return h.role }

// ActorID returns the acting user's identifier.
func (h *HistoryEntry) ActorID() kernel.UUID { return h.actorID }

// Notes returns the optional free-form notes.
func (h *HistoryEntry) Notes() string { return h.notes }

// Point returns the optional location the change was reported from.
func (h *HistoryEntry) Point() *kernel.GeoPoint { return h.point }

// CreatedAt returns the change time.
func (h *HistoryEntry) CreatedAt() time.Time { return h.createdAt }
