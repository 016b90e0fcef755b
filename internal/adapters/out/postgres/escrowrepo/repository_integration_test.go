package escrowrepo_test

import (
	"context"
	"testing"
	"time"

	"coldchain/internal/adapters/out/postgres/escrowrepo"
	"coldchain/internal/core/domain/model/escrow"
	"coldchain/internal/core/domain/model/kernel"
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

// EscrowAccountRepositoryIntegrationTestSuite provides integration tests for
// the escrow account repository using a PostgreSQL container.
type EscrowAccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *escrowrepo.GormEscrowAccountRepository
	tracker    *MockAggregateTracker
}

func (suite *EscrowAccountRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&escrowrepo.AccountDTO{}))
}

func (suite *EscrowAccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE escrow_accounts").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = escrowrepo.NewGormEscrowAccountRepository(suite.db, suite.tracker)
}

func (suite *EscrowAccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *EscrowAccountRepositoryIntegrationTestSuite) mustAmount(value string) kernel.Amount {
	amount, err := kernel.AmountFromString(value)
	suite.Require().NoError(err)
	return amount
}

func (suite *EscrowAccountRepositoryIntegrationTestSuite) TestSave_And_Get_RoundTrip() {
	ctx := context.Background()
	party := kernel.NewUUID()

	// 2^200, far beyond any integer column's range.
	balance := suite.mustAmount("1606938044258990275541962092341162602522202993782792835301376")
	account, err := escrow.RestoreAccount(party, balance)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Save(ctx, account))

	loaded, err := suite.repository.Get(ctx, party)
	suite.Require().NoError(err)
	suite.True(party.IsEqual(loaded.Party()))
	suite.True(balance.IsEqual(loaded.Balance()))
}

func (suite *EscrowAccountRepositoryIntegrationTestSuite) TestSave_UpsertsExistingRow() {
	ctx := context.Background()
	party := kernel.NewUUID()

	account, err := escrow.NewAccount(party)
	suite.Require().NoError(err)
	suite.Require().NoError(account.Credit(suite.mustAmount("900000000000000000")))
	suite.Require().NoError(suite.repository.Save(ctx, account))

	suite.Require().NoError(account.Credit(suite.mustAmount("1100000000000000000")))
	suite.Require().NoError(suite.repository.Save(ctx, account))

	loaded, err := suite.repository.Get(ctx, party)
	suite.Require().NoError(err)
	suite.True(loaded.Balance().IsEqual(suite.mustAmount("2000000000000000000")))

	var count int64
	suite.Require().NoError(suite.db.Model(&escrowrepo.AccountDTO{}).Count(&count).Error)
	suite.EqualValues(1, count)
}

func (suite *EscrowAccountRepositoryIntegrationTestSuite) TestSave_ZeroedBalanceAfterWithdrawal() {
	ctx := context.Background()
	party := kernel.NewUUID()

	account, err := escrow.RestoreAccount(party, suite.mustAmount("500"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, account))

	debited := account.DebitAll()
	suite.True(debited.IsEqual(suite.mustAmount("500")))
	suite.Require().NoError(suite.repository.Save(ctx, account))

	loaded, err := suite.repository.Get(ctx, party)
	suite.Require().NoError(err)
	suite.True(loaded.Balance().IsZero())
}

func (suite *EscrowAccountRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *EscrowAccountRepositoryIntegrationTestSuite) TestGetForUpdate_LoadsAccount() {
	ctx := context.Background()
	party := kernel.NewUUID()

	account, err := escrow.RestoreAccount(party, suite.mustAmount("42"))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Save(ctx, account))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	txRepo := escrowrepo.NewGormEscrowAccountRepository(tx, suite.tracker)
	loaded, err := txRepo.GetForUpdate(ctx, party)
	suite.Require().NoError(err)
	suite.True(loaded.Balance().IsEqual(suite.mustAmount("42")))
}

func TestEscrowAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(EscrowAccountRepositoryIntegrationTestSuite))
}
