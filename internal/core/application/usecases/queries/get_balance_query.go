package queries

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/guard"
)

var ErrGetBalanceQueryIsNotConstructed = errors.New(
	"GetBalanceQuery must be created via NewGetBalanceQuery constructor",
)

// GetBalanceQuery retrieves a party's withdrawable balance. A party that was
// never credited reads as zero.
type GetBalanceQuery struct { //nolint:recvcheck //using for validation
	party kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBalanceQuery creates a query for one party's balance.
func NewGetBalanceQuery(party kernel.UUID) (GetBalanceQuery, error) {
	balanceQuery := GetBalanceQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := balanceQuery.setParty(party); err != nil {
		return GetBalanceQuery{}, err
	}

	return balanceQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBalanceQuery) Validate() error {
	return q.guard.Validate(ErrGetBalanceQueryIsNotConstructed)
}

// Party returns the identity whose balance is requested.
func (q GetBalanceQuery) Party() kernel.UUID {
	return q.party
}

func (q *GetBalanceQuery) setParty(party kernel.UUID) error {
	if err := party.Validate(); err != nil {
		return err
	}

	q.party = party
	return nil
}

// GetBalanceQueryResponse carries one party's withdrawable balance.
type GetBalanceQueryResponse struct {
	Party   kernel.UUID
	Balance kernel.Amount
}
