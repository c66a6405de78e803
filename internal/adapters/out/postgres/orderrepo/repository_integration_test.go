package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/orderrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker implements the aggregate tracker for test purposes.
type mockAggregateTracker struct {
	tracked []kernel.UUID
}

func (m *mockAggregateTracker) TrackAggregate(id kernel.UUID, _ any) {
	m.tracked = append(m.tracked, id)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify database
// persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *mockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.HistoryDTO{})
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_status_history").Error
	suite.Require().NoError(err)

	suite.tracker = &mockAggregateTracker{}
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(now time.Time) *order.Order {
	pickup, err := kernel.NewGeoPoint(19.0760, 72.8777)
	suite.Require().NoError(err)
	delivery, err := kernel.NewGeoPoint(18.5204, 73.8567)
	suite.Require().NoError(err)
	amount, err := kernel.NewMoneyFromRupees(25000)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		"Nhava Sheva, Mumbai", pickup,
		"Chakan MIDC, Pune", delivery,
		now.Add(24*time.Hour), now.Add(48*time.Hour),
		amount, "Steel coils", 12500, now,
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	aggregate := suite.newOrder(now)

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)
	suite.Contains(suite.tracker.tracked, aggregate.ID())

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(aggregate.ID(), retrieved.ID())
	suite.Equal(aggregate.Number(), retrieved.Number())
	suite.Equal(aggregate.QuotationID(), retrieved.QuotationID())
	suite.Equal(aggregate.CustomerID(), retrieved.CustomerID())
	suite.Equal(aggregate.VendorID(), retrieved.VendorID())
	suite.Nil(retrieved.TruckID())
	suite.Equal(order.StatusCreated, retrieved.Status())
	suite.Equal("Steel coils", retrieved.CargoDescription())
	suite.InDelta(12500, retrieved.EstimatedWeightKg(), 0.001)
	suite.True(aggregate.TotalAmount().IsEqual(retrieved.TotalAmount()))
	suite.Equal(aggregate.DeliveryOTP(), retrieved.DeliveryOTP())
	suite.Empty(retrieved.History())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndHistory() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	aggregate := suite.newOrder(now)
	vendorActor := kernel.NewUUID()

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	err = aggregate.ChangeStatus(order.StatusConfirmed, order.RoleVendor, vendorActor, "confirmed by ops", nil, now)
	suite.Require().NoError(err)
	err = aggregate.AssignDriver(kernel.NewUUID(), order.RoleVendor, vendorActor, "", now.Add(time.Minute))
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, aggregate)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.Equal(order.StatusDriverAssigned, retrieved.Status())
	suite.Require().NotNil(retrieved.DriverID())
	suite.Require().Len(retrieved.History(), 2)

	// History comes back ordered oldest first
	suite.Equal(order.StatusCreated, retrieved.History()[0].Previous())
	suite.Equal(order.StatusConfirmed, retrieved.History()[0].Next())
	suite.Equal("confirmed by ops", retrieved.History()[0].Notes())
	suite.Equal(order.StatusDriverAssigned, retrieved.History()[1].Next())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByQuotation() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	aggregate := suite.newOrder(now)

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.GetByQuotation(ctx, aggregate.QuotationID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), retrieved.ID())

	_, err = suite.repository.GetByQuotation(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	var notFound *errs.ObjectNotFoundError
	suite.ErrorAs(err, &notFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByCustomer_FiltersAndOrders() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	older := suite.newOrder(now.Add(-time.Hour))
	newer := suite.newOrder(now)
	other := suite.newOrder(now)

	for _, aggregate := range []*order.Order{older, newer, other} {
		err := suite.repository.Add(ctx, aggregate)
		suite.Require().NoError(err)
	}

	// Point the second order at the first one's customer
	err := suite.db.Exec("UPDATE orders SET customer_id = ? WHERE id = ?",
		older.CustomerID().Bytes(), newer.ID().Bytes()).Error
	suite.Require().NoError(err)

	result, err := suite.repository.GetAllByCustomer(ctx, older.CustomerID())
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	// Newest first
	suite.Equal(newer.ID(), result[0].ID())
	suite.Equal(older.ID(), result[1].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByVendor() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	aggregate := suite.newOrder(now)

	err := suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	result, err := suite.repository.GetAllByVendor(ctx, aggregate.VendorID())
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(aggregate.ID(), result[0].ID())

	empty, err := suite.repository.GetAllByVendor(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByDriver() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	aggregate := suite.newOrder(now)
	driverID := kernel.NewUUID()
	vendorActor := kernel.NewUUID()

	err := aggregate.ChangeStatus(order.StatusConfirmed, order.RoleVendor, vendorActor, "", nil, now)
	suite.Require().NoError(err)
	err = aggregate.AssignDriver(driverID, order.RoleVendor, vendorActor, "", now)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, aggregate)
	suite.Require().NoError(err)

	result, err := suite.repository.GetAllByDriver(ctx, driverID)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(aggregate.ID(), result[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_InvalidAggregate() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, nil)

	suite.Require().Error(err)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
