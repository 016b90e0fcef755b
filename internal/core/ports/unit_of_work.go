package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. All repository
// reads with ForUpdate semantics and all writes inside one unit of work
// commit or roll back together, which is what keeps failed transitions from
// partially applying.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction.
	OrderRepository() OrderRepository

	// EscrowAccountRepository returns an EscrowAccountRepository bound to
	// the current transaction.
	EscrowAccountRepository() EscrowAccountRepository
}
