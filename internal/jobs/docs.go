// Package jobs provides scheduled background tasks for the escrow service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the escrow.
//
// # Available Jobs
//
// 1. EscrowAuditJob - Recomputes the custody conservation equation on a
// configurable schedule and alerts when the token ledger's custody balance
// diverges from the sum of locked order funds and withdrawable credits
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(totalsHandler, gateway, "0 * * * * *", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The audit schedule is a six-field cron expression with a seconds column.
// The default "0 * * * * *" runs the audit once a minute; tightening it to
// every second is safe since the audit only reads.
//
// # Error Handling
//
// A conservation violation is logged at error level and never mutates
// state; the audit is an alarm, not a repair mechanism.
package jobs
