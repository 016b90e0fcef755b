package queries

import (
	"context"
	"database/sql"
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the lookup. Returns ObjectNotFoundError for an unknown id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer,
			provider,
			oracle,
			temperature_limit,
			deadline,
			payment_amount,
			temperature_penalty_rate,
			overtime_penalty_rate,
			stake_amount,
			status,
			arrival_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	var (
		id                     uint64
		customerID             uuid.UUID
		providerID             *uuid.UUID
		oracleID               uuid.UUID
		status                 order.Status
		orderResp              GetOrderQueryResponse
		paymentAmount          string
		temperaturePenaltyRate string
		overtimePenaltyRate    string
		stakeAmount            string
		arrivalAt              sql.NullTime
	)

	err := row.Scan(
		&id,
		&customerID,
		&providerID,
		&oracleID,
		&orderResp.TemperatureLimit,
		&orderResp.Deadline,
		&paymentAmount,
		&temperaturePenaltyRate,
		&overtimePenaltyRate,
		&stakeAmount,
		&status,
		&arrivalAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
		}
		return GetOrderQueryResponse{}, err
	}

	orderResp.ID = order.ID(id)
	orderResp.Status = status.String()

	if orderResp.Customer, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if orderResp.Oracle, err = kernel.UUIDFromBytes(oracleID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if providerID != nil {
		provider, provErr := kernel.UUIDFromBytes(providerID[:])
		if provErr != nil {
			return GetOrderQueryResponse{}, provErr
		}
		orderResp.Provider = &provider
	}

	if orderResp.PaymentAmount, err = kernel.AmountFromString(paymentAmount); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if orderResp.TemperaturePenaltyRate, err = kernel.AmountFromString(temperaturePenaltyRate); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if orderResp.OvertimePenaltyRate, err = kernel.AmountFromString(overtimePenaltyRate); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if orderResp.StakeAmount, err = kernel.AmountFromString(stakeAmount); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if arrivalAt.Valid {
		at := arrivalAt.Time.UTC()
		orderResp.ArrivalAt = &at
	}

	return orderResp, nil
}
