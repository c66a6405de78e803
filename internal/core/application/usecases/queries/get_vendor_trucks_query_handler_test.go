package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/truckrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetVendorTrucksQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetVendorTrucksQueryHandler
}

func (suite *GetVendorTrucksQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&truckrepo.TruckTypeDTO{}, &truckrepo.TruckDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetVendorTrucksQueryHandler(db)
}

func (suite *GetVendorTrucksQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetVendorTrucksQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE trucks, truck_types CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetVendorTrucksQueryHandlerTestSuite) createTruckType() *truck.TruckType {
	truckType, err := truck.NewTruckType("Large Truck", 15, "15 ton open body")
	suite.Require().NoError(err)

	err = suite.db.Create(&truckrepo.TruckTypeDTO{
		ID:          truckType.ID().Bytes(),
		Name:        truckType.Name(),
		CapacityTon: truckType.CapacityTon(),
		Description: truckType.Description(),
	}).Error
	suite.Require().NoError(err)

	return truckType
}

func (suite *GetVendorTrucksQueryHandlerTestSuite) saveTruck(
	vendorID kernel.UUID, truckType *truck.TruckType, registration string, available bool,
) *truck.Truck {
	aggregate, err := truck.RestoreTruck(kernel.NewUUID(), vendorID, truckType.ID(),
		registration, "Tata LPT 3118", 2021, available)
	suite.Require().NoError(err)

	err = suite.db.Create(&truckrepo.TruckDTO{
		ID:                 aggregate.ID().Bytes(),
		VendorID:           aggregate.VendorID().Bytes(),
		TruckTypeID:        aggregate.TruckTypeID().Bytes(),
		RegistrationNumber: aggregate.RegistrationNumber(),
		ModelName:          aggregate.ModelName(),
		ManufactureYear:    aggregate.ManufactureYear(),
		IsAvailable:        aggregate.IsAvailable(),
	}).Error
	suite.Require().NoError(err)

	return aggregate
}

func (suite *GetVendorTrucksQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewGetVendorTrucksQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetVendorTrucksQueryHandlerTestSuite) TestHandle_WithTrucks_ReturnsFleetOrderedByRegistration() {
	vendorID := kernel.NewUUID()
	truckType := suite.createTruckType()

	second := suite.saveTruck(vendorID, truckType, "MH12AB1234", true)
	first := suite.saveTruck(vendorID, truckType, "KA01CD5678", false)

	query, err := queries.NewGetVendorTrucksQuery(vendorID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal(first.ID(), result[0].ID)
	suite.Equal("KA01CD5678", result[0].RegistrationNumber)
	suite.False(result[0].IsAvailable)
	suite.Equal("Large Truck", result[0].TruckTypeName)
	suite.InDelta(15, result[0].CapacityTon, 0.001)

	suite.Equal(second.ID(), result[1].ID)
	suite.Equal("MH12AB1234", result[1].RegistrationNumber)
	suite.True(result[1].IsAvailable)
}

func (suite *GetVendorTrucksQueryHandlerTestSuite) TestHandle_OtherVendorTrucks_Excluded() {
	vendorID := kernel.NewUUID()
	truckType := suite.createTruckType()

	suite.saveTruck(vendorID, truckType, "MH12AB1234", true)
	suite.saveTruck(kernel.NewUUID(), truckType, "KA01CD5678", true)

	query, err := queries.NewGetVendorTrucksQuery(vendorID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("MH12AB1234", result[0].RegistrationNumber)
}

func (suite *GetVendorTrucksQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetVendorTrucksQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetVendorTrucksQuery constructor")
}

func TestGetVendorTrucksQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetVendorTrucksQueryHandlerTestSuite))
}
