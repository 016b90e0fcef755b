package http

import (
	"time"

	"github.com/oapi-codegen/runtime/types"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PlaceOrderRequest carries the parameters of a new shipment order. The
// caller identified by the X-Party-ID header becomes the order's customer.
// Token amounts are decimal strings in the token's smallest unit.
type PlaceOrderRequest struct {
	Oracle                 types.UUID `json:"oracle"`
	TemperatureLimit       int        `json:"temperatureLimit"`
	Deadline               time.Time  `json:"deadline"`
	PaymentAmount          string     `json:"paymentAmount"`
	TemperaturePenaltyRate string     `json:"temperaturePenaltyRate"`
	OvertimePenaltyRate    string     `json:"overtimePenaltyRate"`
}

// PlaceOrderResponse returns the identifier assigned to the new order.
type PlaceOrderResponse struct {
	OrderID uint64 `json:"orderId"`
}

// PayoutRequest carries the oracle's measured outcome for an order.
type PayoutRequest struct {
	ReportedOverages uint64 `json:"reportedOverages"`
}

// WithdrawResponse returns the amount transferred out to the caller.
type WithdrawResponse struct {
	Amount string `json:"amount"`
}

// OrderSummary is the list form of an unsettled order.
type OrderSummary struct {
	OrderID       uint64      `json:"orderId"`
	Customer      types.UUID  `json:"customer"`
	Provider      *types.UUID `json:"provider,omitempty"`
	Oracle        types.UUID  `json:"oracle"`
	Status        string      `json:"status"`
	Deadline      time.Time   `json:"deadline"`
	PaymentAmount string      `json:"paymentAmount"`
	StakeAmount   string      `json:"stakeAmount"`
}

// OrderDetails is the full view of a single order.
type OrderDetails struct {
	OrderID                uint64      `json:"orderId"`
	Customer               types.UUID  `json:"customer"`
	Provider               *types.UUID `json:"provider,omitempty"`
	Oracle                 types.UUID  `json:"oracle"`
	TemperatureLimit       int         `json:"temperatureLimit"`
	Deadline               time.Time   `json:"deadline"`
	PaymentAmount          string      `json:"paymentAmount"`
	TemperaturePenaltyRate string      `json:"temperaturePenaltyRate"`
	OvertimePenaltyRate    string      `json:"overtimePenaltyRate"`
	StakeAmount            string      `json:"stakeAmount"`
	Status                 string      `json:"status"`
	ArrivalAt              *time.Time  `json:"arrivalAt,omitempty"`
}

// BalanceResponse reports a party's withdrawable escrow balance.
type BalanceResponse struct {
	Party   types.UUID `json:"party"`
	Balance string     `json:"balance"`
}
