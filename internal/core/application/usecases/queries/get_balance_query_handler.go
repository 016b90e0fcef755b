package queries

import (
	"context"
	"database/sql"
	"errors"

	"coldchain/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetBalanceQueryHandler retrieves a party's withdrawable balance from the
// database.
type GetBalanceQueryHandler struct {
	db *gorm.DB
}

// NewGetBalanceQueryHandler creates a handler for balance lookups.
func NewGetBalanceQueryHandler(db *gorm.DB) GetBalanceQueryHandler {
	return GetBalanceQueryHandler{db: db}
}

// Handle executes the lookup. A party with no account row reads as a zero
// balance rather than an error; lazily created accounts make absence normal.
func (h GetBalanceQueryHandler) Handle(
	ctx context.Context,
	query GetBalanceQuery,
) (GetBalanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBalanceQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT balance
		FROM escrow_accounts
		WHERE party = ?
	`, query.Party().Bytes()).Row()

	var balance string
	if err := row.Scan(&balance); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetBalanceQueryResponse{
				Party:   query.Party(),
				Balance: kernel.ZeroAmount(),
			}, nil
		}
		return GetBalanceQueryResponse{}, err
	}

	amount, err := kernel.AmountFromString(balance)
	if err != nil {
		return GetBalanceQueryResponse{}, err
	}

	return GetBalanceQueryResponse{
		Party:   query.Party(),
		Balance: amount,
	}, nil
}
