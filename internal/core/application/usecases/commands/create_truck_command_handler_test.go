package commands_test

import (
	"context"
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock implementations for testing.
type MockTruckTypeRepository struct {
	mock.Mock
}

func (m *MockTruckTypeRepository) Add(ctx context.Context, truckType *truck.TruckType) error {
	args := m.Called(ctx, truckType)
	return args.Error(0)
}

func (m *MockTruckTypeRepository) Get(ctx context.Context, id kernel.UUID) (*truck.TruckType, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*truck.TruckType), args.Error(1)
}

func (m *MockTruckTypeRepository) GetAll(ctx context.Context) ([]*truck.TruckType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*truck.TruckType), args.Error(1)
}

type MockTruckRepository struct {
	mock.Mock
}

func (m *MockTruckRepository) Add(ctx context.Context, aggregate *truck.Truck) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTruckRepository) Update(ctx context.Context, aggregate *truck.Truck) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTruckRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*truck.Truck, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

func (m *MockTruckRepository) GetAllAvailable(
	ctx context.Context, vendorID kernel.UUID, truckTypeID kernel.UUID,
) ([]*truck.Truck, error) {
	args := m.Called(ctx, vendorID, truckTypeID)
	return args.Get(0).([]*truck.Truck), args.Error(1)
}

type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Add(ctx context.Context, aggregate *truck.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, aggregate *truck.Driver) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*truck.Driver, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*truck.Driver), args.Error(1)
}

func (m *MockDriverRepository) GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*truck.Driver, error) {
	args := m.Called(ctx, vendorID)
	return args.Get(0).([]*truck.Driver), args.Error(1)
}

type MockFleetUoW struct {
	mock.Mock
}

func (m *MockFleetUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFleetUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFleetUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFleetUoW) TruckTypeRepository() ports.TruckTypeRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckTypeRepository)
}

func (m *MockFleetUoW) TruckRepository() ports.TruckRepository {
	args := m.Called()
	return args.Get(0).(ports.TruckRepository)
}

func (m *MockFleetUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

type MockFleetUoWFactory struct {
	mock.Mock
}

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}

func newTruckType(t *testing.T) *truck.TruckType {
	t.Helper()
	truckType, err := truck.NewTruckType("Large Truck", 15, "15 ton open body")
	require.NoError(t, err)
	return truckType
}

func TestNewCreateTruckCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockFleetUoWFactory)

	// Act
	handler := commands.NewCreateTruckCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestCreateTruckCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	truckType := newTruckType(t)

	cmd, err := commands.NewCreateTruckCommand(
		kernel.NewUUID(), truckType.ID(), "MH12AB1234", "Tata LPT 3118", 2021)
	require.NoError(t, err)

	mockTypeRepo := new(MockTruckTypeRepository)
	mockTruckRepo := new(MockTruckRepository)
	mockUoW := new(MockFleetUoW)
	mockFactory := new(MockFleetUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TruckTypeRepository").Return(mockTypeRepo).Once(),
		mockTypeRepo.On("Get", ctx, truckType.ID()).Return(truckType, nil).Once(),
		mockUoW.On("TruckRepository").Return(mockTruckRepo).Once(),
		mockTruckRepo.On("Add", ctx, mock.AnythingOfType("*truck.Truck")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTruckCommandHandler(mockFactory)

	// Act
	id, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.NoError(t, id.Validate())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockTypeRepo.AssertExpectations(t)
	mockTruckRepo.AssertExpectations(t)
}

func TestCreateTruckCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateTruckCommand // zero value command

	mockFactory := new(MockFleetUoWFactory)
	handler := commands.NewCreateTruckCommandHandler(mockFactory)

	// Act
	_, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateTruckCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestCreateTruckCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateTruckCommand(
		kernel.NewUUID(), kernel.NewUUID(), "MH12AB1234", "Tata LPT 3118", 2021)
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockFleetUoW)
	mockFactory := new(MockFleetUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewCreateTruckCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCreateTruckCommandHandler_Handle_UnknownTruckType(t *testing.T) {
	// Arrange
	ctx := t.Context()
	truckTypeID := kernel.NewUUID()

	cmd, err := commands.NewCreateTruckCommand(
		kernel.NewUUID(), truckTypeID, "MH12AB1234", "Tata LPT 3118", 2021)
	require.NoError(t, err)

	expectedError := errors.New("truck type not found")
	mockTypeRepo := new(MockTruckTypeRepository)
	mockUoW := new(MockFleetUoW)
	mockFactory := new(MockFleetUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TruckTypeRepository").Return(mockTypeRepo).Once(),
		mockTypeRepo.On("Get", ctx, truckTypeID).Return((*truck.TruckType)(nil), expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTruckCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockTypeRepo.AssertExpectations(t)
}

func TestCreateTruckCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	truckType := newTruckType(t)

	cmd, err := commands.NewCreateTruckCommand(
		kernel.NewUUID(), truckType.ID(), "MH12AB1234", "Tata LPT 3118", 2021)
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockTypeRepo := new(MockTruckTypeRepository)
	mockTruckRepo := new(MockTruckRepository)
	mockUoW := new(MockFleetUoW)
	mockFactory := new(MockFleetUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TruckTypeRepository").Return(mockTypeRepo).Once(),
		mockTypeRepo.On("Get", ctx, truckType.ID()).Return(truckType, nil).Once(),
		mockUoW.On("TruckRepository").Return(mockTruckRepo).Once(),
		mockTruckRepo.On("Add", ctx, mock.AnythingOfType("*truck.Truck")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTruckCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockTruckRepo.AssertExpectations(t)
}

func TestCreateTruckCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	truckType := newTruckType(t)

	cmd, err := commands.NewCreateTruckCommand(
		kernel.NewUUID(), truckType.ID(), "MH12AB1234", "Tata LPT 3118", 2021)
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	mockTypeRepo := new(MockTruckTypeRepository)
	mockTruckRepo := new(MockTruckRepository)
	mockUoW := new(MockFleetUoW)
	mockFactory := new(MockFleetUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TruckTypeRepository").Return(mockTypeRepo).Once(),
		mockTypeRepo.On("Get", ctx, truckType.ID()).Return(truckType, nil).Once(),
		mockUoW.On("TruckRepository").Return(mockTruckRepo).Once(),
		mockTruckRepo.On("Add", ctx, mock.AnythingOfType("*truck.Truck")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTruckCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestCreateTruckCommandHandler_Handle_VerifiesTruckDataCorrectness(t *testing.T) {
	// Arrange
	ctx := t.Context()
	vendorID := kernel.NewUUID()
	truckType := newTruckType(t)

	cmd, err := commands.NewCreateTruckCommand(
		vendorID, truckType.ID(), "KA01CD5678", "Ashok Leyland 1920", 2023)
	require.NoError(t, err)

	var capturedTruck *truck.Truck
	mockTypeRepo := new(MockTruckTypeRepository)
	mockTruckRepo := new(MockTruckRepository)
	mockUoW := new(MockFleetUoW)
	mockFactory := new(MockFleetUoWFactory)

	// Set up expectations in order with custom matcher to capture the truck
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TruckTypeRepository").Return(mockTypeRepo).Once(),
		mockTypeRepo.On("Get", ctx, truckType.ID()).Return(truckType, nil).Once(),
		mockUoW.On("TruckRepository").Return(mockTruckRepo).Once(),
		mockTruckRepo.On("Add", ctx, mock.MatchedBy(func(aggregate *truck.Truck) bool {
			capturedTruck = aggregate
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateTruckCommandHandler(mockFactory)

	// Act
	id, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedTruck)

	// Verify the truck was created with correct data
	assert.Equal(t, id, capturedTruck.ID())
	assert.Equal(t, vendorID, capturedTruck.VendorID())
	assert.Equal(t, truckType.ID(), capturedTruck.TruckTypeID())
	assert.Equal(t, "KA01CD5678", capturedTruck.RegistrationNumber())
	assert.Equal(t, "Ashok Leyland 1920", capturedTruck.ModelName())
	assert.Equal(t, 2023, capturedTruck.ManufactureYear())
	assert.True(t, capturedTruck.IsAvailable())

	// Verify truck is valid
	require.NoError(t, capturedTruck.Validate())

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockTruckRepo.AssertExpectations(t)
}
