package queries

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/guard"
)

var ErrGetEscrowTotalsQueryIsNotConstructed = errors.New(
	"GetEscrowTotalsQuery must be created via NewGetEscrowTotalsQuery constructor",
)

// GetEscrowTotalsQuery retrieves the two sides of the custody equation: what
// open orders have locked and what settled credits are still withdrawable.
// The audit job compares their sum against the token ledger's custody
// balance.
type GetEscrowTotalsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetEscrowTotalsQuery creates a query for the custody totals.
func NewGetEscrowTotalsQuery() GetEscrowTotalsQuery {
	return GetEscrowTotalsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetEscrowTotalsQuery) Validate() error {
	return q.guard.Validate(ErrGetEscrowTotalsQueryIsNotConstructed)
}

// GetEscrowTotalsQueryResponse carries the aggregate custody amounts.
type GetEscrowTotalsQueryResponse struct {
	// LockedTotal is the sum of payment plus stake over all orders whose
	// funds were pulled but not yet settled (Accepted and Arrived).
	LockedTotal kernel.Amount

	// WithdrawableTotal is the sum of all escrow account balances.
	WithdrawableTotal kernel.Amount
}
