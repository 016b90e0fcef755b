package queries

import (
	"errors"
	"time"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full details of a single order, settled or not.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID order.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order by its identifier.
func NewGetOrderQuery(orderID order.ID) (GetOrderQuery, error) {
	orderQuery := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderQuery.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return orderQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() order.ID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderQueryResponse carries every persisted attribute of an order.
type GetOrderQueryResponse struct {
	ID                     order.ID
	Customer               kernel.UUID
	Provider               *kernel.UUID
	Oracle                 kernel.UUID
	TemperatureLimit       int
	Deadline               time.Time
	PaymentAmount          kernel.Amount
	TemperaturePenaltyRate kernel.Amount
	OvertimePenaltyRate    kernel.Amount
	StakeAmount            kernel.Amount
	Status                 string
	ArrivalAt              *time.Time
}
