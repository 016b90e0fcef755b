package cmd

import (
	"log/slog"

	"coldchain/internal/adapters/in/http"
	"coldchain/internal/adapters/out/kafka"
	"coldchain/internal/adapters/out/postgres"
	"coldchain/internal/adapters/out/token"
	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/core/application/usecases/queries"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/services"
	"coldchain/internal/core/ports"
	"coldchain/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	ledger     *token.Ledger
	gateway    *token.Gateway
	publisher  *kafka.OrderPlacedProducer
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	custody kernel.UUID,
	logger *slog.Logger,
) CompositionRoot {
	ledger := token.NewLedger()

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		ledger:     ledger,
		gateway:    token.NewGateway(ledger, custody),
		publisher:  kafka.NewOrderPlacedProducer([]string{config.KafkaHost}, config.KafkaOrderPlacedTopic),
		clock:      ports.SystemClock{},
		logger:     logger,
	}
}

// Ledger exposes the token ledger for bootstrap minting and approvals.
func (c *CompositionRoot) Ledger() *token.Ledger {
	return c.ledger
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.publisher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateConfirmArrivalCommandHandler() commands.ConfirmArrivalCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmArrivalCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreatePayoutCommandHandler() commands.PayoutCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewPayoutCommandHandler(f, services.NewSettlementEngine())
}

func (c *CompositionRoot) CreateWithdrawCommandHandler() commands.WithdrawCommandHandler {
	var f commands.EscrowUoWFactory = FuncEscrowUoWFactory(func() commands.EscrowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewWithdrawCommandHandler(f, c.gateway)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBalanceQueryHandler() queries.GetBalanceQueryHandler {
	return queries.NewGetBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetEscrowTotalsQueryHandler() queries.GetEscrowTotalsQueryHandler {
	return queries.NewGetEscrowTotalsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateConfirmArrivalCommandHandler(),
		c.CreatePayoutCommandHandler(),
		c.CreateWithdrawCommandHandler(),
		c.CreateGetOpenOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetBalanceQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetEscrowTotalsQueryHandler(),
		c.gateway,
		c.config.EscrowAuditSchedule,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncEscrowUoWFactory func() commands.EscrowUoW

func (f FuncEscrowUoWFactory) Create() commands.EscrowUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
