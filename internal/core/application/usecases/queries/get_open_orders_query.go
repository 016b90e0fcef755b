// Package queries contains read-only operations for the CQRS read side.
// Query handlers bypass the domain model and read projections straight from
// the database.
package queries

import (
	"errors"
	"time"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves all orders that have not settled yet.
// Returns orders in Placed, Accepted, or Arrived status for monitoring.
//
// Example:
//
//	query := NewGetOpenOrdersQuery()
//	handler := NewGetOpenOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get open orders: %w", err)
//	}
//	fmt.Printf("%d orders still in flight\n", len(orders))
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query to retrieve unsettled orders.
// This is a parameterless query.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse represents one unsettled order.
type GetOpenOrdersQueryResponse struct {
	ID            order.ID
	Customer      kernel.UUID
	Provider      *kernel.UUID
	Oracle        kernel.UUID
	Status        string
	Deadline      time.Time
	PaymentAmount kernel.Amount
	StakeAmount   kernel.Amount
}
