package token

import (
	"context"

	"coldchain/internal/core/domain/model/kernel"
)

// Gateway adapts the ledger to the escrow's pull/push contract. The escrow
// itself is a ledger account; pulled funds sit on that custody account until
// a settlement credit is withdrawn.
type Gateway struct {
	ledger  *Ledger
	custody kernel.UUID
}

// NewGateway creates a gateway holding custody under the given identity.
func NewGateway(ledger *Ledger, custody kernel.UUID) *Gateway {
	return &Gateway{
		ledger:  ledger,
		custody: custody,
	}
}

// Pull debits a party into escrow custody. The party must have approved the
// escrow for at least the amount; a short balance or allowance fails the
// pull with InsufficientFundsError and moves nothing.
func (g *Gateway) Pull(_ context.Context, from kernel.UUID, amount kernel.Amount) error {
	return g.ledger.TransferFrom(from, g.custody, g.custody, amount)
}

// Push credits a party from escrow custody. Fails with TransferRejectedError
// when the target refuses receipt.
func (g *Gateway) Push(_ context.Context, to kernel.UUID, amount kernel.Amount) error {
	return g.ledger.Transfer(g.custody, to, amount)
}

// CustodyBalance reports the tokens currently held by the escrow.
func (g *Gateway) CustodyBalance(_ context.Context) (kernel.Amount, error) {
	return g.ledger.BalanceOf(g.custody), nil
}
