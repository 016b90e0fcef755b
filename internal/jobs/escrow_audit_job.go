package jobs

import (
	"context"
	"log/slog"

	"coldchain/internal/core/application/usecases/queries"
	"coldchain/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// EscrowAuditJob periodically checks custody conservation: the tokens held
// by the escrow must equal the funds locked in open orders plus the credits
// still waiting to be withdrawn. A divergence means tokens were created or
// destroyed somewhere and is logged as an error for operators.
type EscrowAuditJob struct {
	totalsHandler queries.GetEscrowTotalsQueryHandler
	gateway       ports.TokenGateway
	schedule      string
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewEscrowAuditJob creates the audit job with a cron schedule expression
// that includes a seconds field, e.g. "0 * * * * *" for once a minute.
func NewEscrowAuditJob(
	totalsHandler queries.GetEscrowTotalsQueryHandler,
	gateway ports.TokenGateway,
	schedule string,
	logger *slog.Logger,
) *EscrowAuditJob {
	return &EscrowAuditJob{
		totalsHandler: totalsHandler,
		gateway:       gateway,
		schedule:      schedule,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "escrow_audit_job"),
	}
}

// Start begins running the audit on its schedule.
func (j *EscrowAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.runAudit(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Escrow audit job started", "schedule", j.schedule)
	return nil
}

// Stop stops the audit job.
func (j *EscrowAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Escrow audit job stopped")
}

func (j *EscrowAuditJob) runAudit(ctx context.Context) {
	totals, err := j.totalsHandler.Handle(ctx, queries.NewGetEscrowTotalsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Escrow audit failed to read totals", "error", err)
		return
	}

	custody, err := j.gateway.CustodyBalance(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Escrow audit failed to read custody balance", "error", err)
		return
	}

	expected := totals.LockedTotal.Add(totals.WithdrawableTotal)
	if !custody.IsEqual(expected) {
		j.logger.ErrorContext(ctx, "Escrow conservation violation",
			"lockedTotal", totals.LockedTotal.String(),
			"withdrawableTotal", totals.WithdrawableTotal.String(),
			"custodyBalance", custody.String(),
		)
		return
	}

	j.logger.DebugContext(ctx, "Escrow audit passed",
		"custodyBalance", custody.String(),
	)
}
