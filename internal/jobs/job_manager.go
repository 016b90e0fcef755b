package jobs

import (
	"fmt"
	"log/slog"

	"coldchain/internal/core/application/usecases/queries"
	"coldchain/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	escrowAuditJob *EscrowAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	totalsHandler queries.GetEscrowTotalsQueryHandler,
	gateway ports.TokenGateway,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		escrowAuditJob: NewEscrowAuditJob(totalsHandler, gateway, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.escrowAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start escrow audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.escrowAuditJob.Stop()
}
