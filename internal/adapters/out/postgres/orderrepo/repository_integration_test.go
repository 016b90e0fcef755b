package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"coldchain/internal/adapters/out/postgres/orderrepo"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the
// order repository using a PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) mustAmount(value string) kernel.Amount {
	amount, err := kernel.AmountFromString(value)
	suite.Require().NoError(err)
	return amount
}

func (suite *OrderRepositoryIntegrationTestSuite) newPlacedOrder(id order.ID) *order.Order {
	now := time.Now().UTC()
	placed, err := order.NewOrder(
		id,
		kernel.NewUUID(),
		kernel.NewUUID(),
		-18,
		now.Add(48*time.Hour),
		suite.mustAmount("1000000000000000000"),
		suite.mustAmount("1000000000000000"),
		suite.mustAmount("100000000000000"),
		now,
	)
	suite.Require().NoError(err)
	return placed
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextID_Monotonic() {
	ctx := context.Background()

	first, err := suite.repository.NextID(ctx)
	suite.Require().NoError(err)
	second, err := suite.repository.NextID(ctx)
	suite.Require().NoError(err)

	suite.Positive(uint64(first))
	suite.Greater(uint64(second), uint64(first))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_And_Get_RoundTrip() {
	ctx := context.Background()

	id, err := suite.repository.NextID(ctx)
	suite.Require().NoError(err)
	placed := suite.newPlacedOrder(id)

	suite.Require().NoError(suite.repository.Add(ctx, placed))

	loaded, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)

	suite.Equal(placed.ID(), loaded.ID())
	suite.True(placed.Customer().IsEqual(loaded.Customer()))
	suite.True(placed.Oracle().IsEqual(loaded.Oracle()))
	suite.Nil(loaded.Provider())
	suite.Equal(placed.TemperatureLimit(), loaded.TemperatureLimit())
	suite.Equal(order.Placed, loaded.Status())
	suite.Nil(loaded.ArrivalAt())
	suite.True(placed.PaymentAmount().IsEqual(loaded.PaymentAmount()))
	suite.True(placed.TemperaturePenaltyRate().IsEqual(loaded.TemperaturePenaltyRate()))
	suite.True(placed.OvertimePenaltyRate().IsEqual(loaded.OvertimePenaltyRate()))
	suite.True(placed.StakeAmount().IsEqual(loaded.StakeAmount()))
	suite.WithinDuration(placed.Deadline(), loaded.Deadline(), time.Microsecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransitions() {
	ctx := context.Background()

	id, err := suite.repository.NextID(ctx)
	suite.Require().NoError(err)
	placed := suite.newPlacedOrder(id)
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	provider := kernel.NewUUID()
	suite.Require().NoError(placed.Accept(provider))
	suite.Require().NoError(suite.repository.Update(ctx, placed))

	arrivedAt := time.Now().UTC().Truncate(time.Microsecond)
	suite.Require().NoError(placed.ConfirmArrival(placed.Customer(), arrivedAt))
	suite.Require().NoError(suite.repository.Update(ctx, placed))

	loaded, err := suite.repository.Get(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(order.Arrived, loaded.Status())
	suite.Require().NotNil(loaded.Provider())
	suite.True(provider.IsEqual(*loaded.Provider()))
	suite.Require().NotNil(loaded.ArrivalAt())
	suite.WithinDuration(arrivedAt, *loaded.ArrivalAt(), time.Microsecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, order.ID(424242))
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_LoadsOrder() {
	ctx := context.Background()

	id, err := suite.repository.NextID(ctx)
	suite.Require().NoError(err)
	placed := suite.newPlacedOrder(id)
	suite.Require().NoError(suite.repository.Add(ctx, placed))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := orderrepo.NewGormOrderRepository(tx, suite.tracker)
	loaded, err := txRepo.GetForUpdate(ctx, id)
	suite.Require().NoError(err)
	suite.Equal(id, loaded.ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_UnknownOrder() {
	ctx := context.Background()

	ghost := suite.newPlacedOrder(order.ID(999999))
	err := suite.repository.Update(ctx, ghost)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
