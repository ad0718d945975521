package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for ShipmentRepository
// using PostgreSQL containers to verify database persistence behavior.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&shipmentrepo.ShipmentDTO{}))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shipments").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	address, err := shipment.NewAddress(
		"Avenida Paulista, 1578", "São Paulo", "SP", "01310-200", "BR")
	suite.Require().NoError(err)

	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), "Correios", "Express", address, nil)
	suite.Require().NoError(err)
	return s
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", testShipment.ID(), testShipment).Once()

	err := suite.repository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_NotConstructedShipment_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Add(ctx, &shipment.Shipment{})
	suite.Require().Error(err)
	suite.ErrorIs(err, shipment.ErrShipmentIsNotConstructed)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTrips() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	loaded, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)

	suite.True(testShipment.IsEqual(loaded))
	suite.Equal(testShipment.OrderID(), loaded.OrderID())
	suite.Equal(shipment.Pending, loaded.Status())
	suite.Equal(testShipment.TrackingCode(), loaded.TrackingCode())
	suite.Equal(testShipment.Carrier(), loaded.Carrier())
	suite.Equal(testShipment.ServiceLevel(), loaded.ServiceLevel())
	suite.True(testShipment.Address().IsEqual(loaded.Address()))
	suite.Nil(loaded.DispatchDate())
	suite.Nil(loaded.UpdatedAt())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StatusTransition_Persisted() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	suite.Require().NoError(testShipment.TransitionTo(shipment.Processing))
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	loaded, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.Processing, loaded.Status())
	suite.NotNil(loaded.UpdatedAt())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_ClearedDispatchDate_PersistedAsNull() {
	ctx := context.Background()

	address, err := shipment.NewAddress(
		"Rua Oscar Freire, 200", "São Paulo", "SP", "01426-000", "BR")
	suite.Require().NoError(err)

	dispatch := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(), "Correios", "Express", address, &dispatch)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	suite.Require().NoError(testShipment.UpdateDetails(
		testShipment.Carrier(), testShipment.ServiceLevel(), testShipment.Address(), nil, nil))
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	loaded, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Nil(loaded.DispatchDate())
	suite.Nil(loaded.ExpectedArrival())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_UnknownShipment_ReturnsNotFound() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	err := suite.repository.Update(ctx, testShipment)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGetAll_ReturnsAllShipments() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	first := suite.createTestShipment()
	second := suite.createTestShipment()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	shipments, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Len(shipments, 2)

	ids := map[kernel.UUID]bool{}
	for _, s := range shipments {
		ids[s.ID()] = true
	}
	suite.True(ids[first.ID()])
	suite.True(ids[second.ID()])
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_ExistingShipment_Removed() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	suite.Require().NoError(suite.repository.Delete(ctx, testShipment.ID()))

	_, err := suite.repository.Get(ctx, testShipment.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_UnknownShipment_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_TerminalShipment_Allowed() {
	ctx := context.Background()
	testShipment := suite.createTestShipment()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	suite.Require().NoError(testShipment.TransitionTo(shipment.Cancelled))
	suite.Require().NoError(suite.repository.Update(ctx, testShipment))

	suite.Require().NoError(suite.repository.Delete(ctx, testShipment.ID()))
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
