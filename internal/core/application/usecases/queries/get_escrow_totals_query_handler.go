package queries

import (
	"context"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetEscrowTotalsQueryHandler aggregates custody amounts from the database.
type GetEscrowTotalsQueryHandler struct {
	db *gorm.DB
}

// NewGetEscrowTotalsQueryHandler creates a handler for custody aggregation.
func NewGetEscrowTotalsQueryHandler(db *gorm.DB) GetEscrowTotalsQueryHandler {
	return GetEscrowTotalsQueryHandler{db: db}
}

// Handle computes both totals. Placed orders hold no funds yet and Settled
// orders have converted theirs into account credits, so only Accepted and
// Arrived orders count toward the locked side.
func (h GetEscrowTotalsQueryHandler) Handle(
	ctx context.Context,
	query GetEscrowTotalsQuery,
) (GetEscrowTotalsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEscrowTotalsQueryResponse{}, err
	}

	var lockedTotal string
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(payment_amount + stake_amount), 0)
		FROM orders
		WHERE status IN (?, ?)
	`, order.Accepted, order.Arrived).Row().Scan(&lockedTotal)
	if err != nil {
		return GetEscrowTotalsQueryResponse{}, err
	}

	var withdrawableTotal string
	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(balance), 0)
		FROM escrow_accounts
	`).Row().Scan(&withdrawableTotal)
	if err != nil {
		return GetEscrowTotalsQueryResponse{}, err
	}

	locked, err := kernel.AmountFromString(lockedTotal)
	if err != nil {
		return GetEscrowTotalsQueryResponse{}, err
	}

	withdrawable, err := kernel.AmountFromString(withdrawableTotal)
	if err != nil {
		return GetEscrowTotalsQueryResponse{}, err
	}

	return GetEscrowTotalsQueryResponse{
		LockedTotal:       locked,
		WithdrawableTotal: withdrawable,
	}, nil
}
