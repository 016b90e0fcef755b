package queries_test

import (
	"context"
	"testing"
	"time"

	"coldchain/internal/adapters/out/postgres/orderrepo"
	"coldchain/internal/core/application/usecases/queries"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	handler   queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, newSilentTracker())
	suite.handler = queries.NewGetOrderQueryHandler(db)
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderQueryHandlerTestSuite) mustAmount(value string) kernel.Amount {
	amount, err := kernel.AmountFromString(value)
	suite.Require().NoError(err)
	return amount
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ReturnsFullDetails() {
	ctx := context.Background()

	id, err := suite.orderRepo.NextID(ctx)
	suite.Require().NoError(err)

	now := time.Now().UTC()
	seeded, err := order.NewOrder(
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
	suite.Require().NoError(suite.orderRepo.Add(ctx, seeded))

	provider := kernel.NewUUID()
	suite.Require().NoError(seeded.Accept(provider))
	arrivedAt := now.Add(time.Hour).Truncate(time.Microsecond)
	suite.Require().NoError(seeded.ConfirmArrival(seeded.Customer(), arrivedAt))
	suite.Require().NoError(suite.orderRepo.Update(ctx, seeded))

	query, err := queries.NewGetOrderQuery(id)
	suite.Require().NoError(err)

	details, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(id, details.ID)
	suite.True(seeded.Customer().IsEqual(details.Customer))
	suite.Require().NotNil(details.Provider)
	suite.True(provider.IsEqual(*details.Provider))
	suite.True(seeded.Oracle().IsEqual(details.Oracle))
	suite.Equal(-18, details.TemperatureLimit)
	suite.Equal("Arrived", details.Status)
	suite.True(seeded.PaymentAmount().IsEqual(details.PaymentAmount))
	suite.True(seeded.TemperaturePenaltyRate().IsEqual(details.TemperaturePenaltyRate))
	suite.True(seeded.OvertimePenaltyRate().IsEqual(details.OvertimePenaltyRate))
	suite.True(seeded.StakeAmount().IsEqual(details.StakeAmount))
	suite.Require().NotNil(details.ArrivalAt)
	suite.WithinDuration(arrivedAt, *details.ArrivalAt, time.Microsecond)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NotFound() {
	query, err := queries.NewGetOrderQuery(order.ID(424242))
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
