package queries

import (
	"context"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenOrdersQueryHandler retrieves unsettled orders from the database.
type GetOpenOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenOrdersQueryHandler creates a handler for open order queries.
// Requires a GORM database connection for query execution.
func NewGetOpenOrdersQueryHandler(db *gorm.DB) GetOpenOrdersQueryHandler {
	return GetOpenOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all unsettled orders.
// Results are sorted by order id, which is also placement order.
func (h GetOpenOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersQuery,
) ([]GetOpenOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOpenOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer,
			provider,
			oracle,
			status,
			deadline,
			payment_amount,
			stake_amount
		FROM orders
		WHERE status != ?
		ORDER BY id
	`, order.Settled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id            uint64
			customerID    uuid.UUID
			providerID    *uuid.UUID
			oracleID      uuid.UUID
			status        order.Status
			orderResp     GetOpenOrdersQueryResponse
			paymentAmount string
			stakeAmount   string
		)

		err = rows.Scan(
			&id,
			&customerID,
			&providerID,
			&oracleID,
			&status,
			&orderResp.Deadline,
			&paymentAmount,
			&stakeAmount,
		)
		if err != nil {
			return nil, err
		}

		orderResp.ID = order.ID(id)
		orderResp.Status = status.String()

		if orderResp.Customer, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if orderResp.Oracle, err = kernel.UUIDFromBytes(oracleID[:]); err != nil {
			return nil, err
		}
		if providerID != nil {
			provider, provErr := kernel.UUIDFromBytes(providerID[:])
			if provErr != nil {
				return nil, provErr
			}
			orderResp.Provider = &provider
		}

		if orderResp.PaymentAmount, err = kernel.AmountFromString(paymentAmount); err != nil {
			return nil, err
		}
		if orderResp.StakeAmount, err = kernel.AmountFromString(stakeAmount); err != nil {
			return nil, err
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
