package enquiry

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrManagerIsNotConstructed is returned when a Manager was not created
// via the NewManager constructor.
var ErrManagerIsNotConstructed = errors.New("Manager must be created via NewManager constructor")

// Manager is an operations employee who reviews enquiries, selects price
// ranges and fans requests out to vendors. Enquiries are assigned to the
// active manager with the lightest current workload.
type Manager struct {
	id       kernel.UUID
	name     string
	email    string
	isActive bool

	guard guard.ConstructorGuard
}

// NewManager creates a Manager with a fresh identifier, active by default.
func NewManager(name string, email string) (*Manager, error) {
	return RestoreManager(kernel.NewUUID(), name, email, true)
}

// RestoreManager reconstructs a Manager from persistent storage.
func RestoreManager(id kernel.UUID, name string, email string, isActive bool) (*Manager, error) {
	m := &Manager{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setEmail(email),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Manager) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	m.id = id
	return nil
}

func (m *Manager) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Manager) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	m.email = email
	return nil
}

// Validate checks that the Manager was properly constructed.
//
//nolint:recvcheck //using for validation
func (m Manager) Validate() error {
	return m.guard.Validate(ErrManagerIsNotConstructed)
}

// IsEqual compares managers by identifier.
func (m *Manager) IsEqual(other *Manager) bool {
	return m.id.IsEqual(other.id)
}

// ID returns the manager identifier.
func (m *Manager) ID() kernel.UUID { return m.id }

// Name returns the manager name.
func (m *Manager) Name() string { return m.name }

// Email returns the manager email.
func (m *Manager) Email() string { return m.email }

// IsActive reports whether the manager takes new assignments.
func (m *Manager) IsActive() bool { return m.isActive }

// Deactivate removes the manager from the assignment pool.
func (m *Manager) Deactivate() {
	m.isActive = false
}

// Activate returns the manager to the assignment pool.
func (m *Manager) Activate() {
	m.isActive = true
}
