// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// role-gated domain transitions, and persistence.
package commands

import (
	"context"

	"coldchain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// EscrowRepoFactory provides access to the escrow account repository within
	// a transaction.
	EscrowRepoFactory interface {
		EscrowAccountRepository() ports.EscrowAccountRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only touch order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// EscrowUoW manages transactions for balance-only operations.
	// Used by withdrawal, which never touches orders.
	EscrowUoW interface {
		TxManager
		EscrowRepoFactory
	}

	// EscrowUoWFactory creates new escrow unit of work instances.
	EscrowUoWFactory interface {
		Create() EscrowUoW
	}

	// UoW manages transactions across order and escrow aggregates.
	// Settlement flips the order state and credits balances in one
	// transaction, which is what makes it unrepeatable per order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   escrowRepo := uow.EscrowAccountRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		EscrowRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
