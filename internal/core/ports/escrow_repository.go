package ports

import (
	"context"

	"coldchain/internal/core/domain/model/escrow"
	"coldchain/internal/core/domain/model/kernel"
)

// EscrowAccountRepository defines the persistence contract for per-party
// withdrawable balances.
//
// Accounts are created lazily on first credit; a missing account is reported
// as ObjectNotFoundError and simply means the party has never been credited.
type EscrowAccountRepository interface {
	// Get retrieves the account of a party.
	Get(ctx context.Context, party kernel.UUID) (*escrow.Account, error)

	// GetForUpdate retrieves the account and locks its row for the
	// duration of the surrounding transaction. Credits and debits to the
	// same party across different orders serialize on this lock, so a
	// shared balance never loses an update.
	GetForUpdate(ctx context.Context, party kernel.UUID) (*escrow.Account, error)

	// Save upserts the account.
	Save(ctx context.Context, account *escrow.Account) error
}
