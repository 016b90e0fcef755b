package ports

import (
	"context"

	"coldchain/internal/core/domain/model/kernel"
)

// TokenGateway is the thin adapter over the external fungible-token ledger.
//
// Pull and Push are expected to complete synchronously and either fully
// succeed or fully fail; there is no partial-completion state. Non-success
// results surface as errors of the funds taxonomy, never as values to
// ignore.
type TokenGateway interface {
	// Pull debits a party into escrow custody via the ledger's
	// transferFrom, failing with the insufficient-funds taxonomy when the
	// party's balance or authorized allowance is short.
	Pull(ctx context.Context, from kernel.UUID, amount kernel.Amount) error

	// Push credits a party from escrow custody via the ledger's transfer,
	// failing with the transfer-rejected taxonomy when the target cannot
	// receive funds.
	Push(ctx context.Context, to kernel.UUID, amount kernel.Amount) error

	// CustodyBalance reports the tokens currently held by the escrow on
	// the external ledger. Used by the conservation audit.
	CustodyBalance(ctx context.Context) (kernel.Amount, error)
}
