// Package http exposes the escrow's operations over a JSON HTTP API.
// The caller's identity arrives in the X-Party-ID header; role checks
// against that identity happen in the domain, not here.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/core/application/usecases/queries"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
)

// PartyHeader carries the caller's identity on every mutating request.
const PartyHeader = "X-Party-ID"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler     commands.PlaceOrderCommandHandler
	acceptOrderHandler    commands.AcceptOrderCommandHandler
	confirmArrivalHandler commands.ConfirmArrivalCommandHandler
	payoutHandler         commands.PayoutCommandHandler
	withdrawHandler       commands.WithdrawCommandHandler

	// Query handlers
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
	getBalanceHandler    queries.GetBalanceQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	acceptOrderHandler commands.AcceptOrderCommandHandler,
	confirmArrivalHandler commands.ConfirmArrivalCommandHandler,
	payoutHandler commands.PayoutCommandHandler,
	withdrawHandler commands.WithdrawCommandHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getBalanceHandler queries.GetBalanceQueryHandler,
) *Server {
	return &Server{
		placeOrderHandler:     placeOrderHandler,
		acceptOrderHandler:    acceptOrderHandler,
		confirmArrivalHandler: confirmArrivalHandler,
		payoutHandler:         payoutHandler,
		withdrawHandler:       withdrawHandler,
		getOpenOrdersHandler:  getOpenOrdersHandler,
		getOrderHandler:       getOrderHandler,
		getBalanceHandler:     getBalanceHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/orders", s.PlaceOrder)
	e.GET("/api/v1/orders", s.GetOpenOrders)
	e.GET("/api/v1/orders/:orderId", s.GetOrder)
	e.POST("/api/v1/orders/:orderId/accept", s.AcceptOrder)
	e.POST("/api/v1/orders/:orderId/arrival", s.ConfirmArrival)
	e.POST("/api/v1/orders/:orderId/payout", s.Payout)
	e.POST("/api/v1/withdrawals", s.Withdraw)
	e.GET("/api/v1/balances/:party", s.GetBalance)
}

// PlaceOrder handles POST /api/v1/orders - opens a new shipment order.
// The caller becomes the order's customer.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	caller, err := callerParty(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request PlaceOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	oracle, err := kernel.UUIDFromString(request.Oracle.String())
	if err != nil {
		return errorResponse(ctx, err)
	}

	payment, err := kernel.AmountFromString(request.PaymentAmount)
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("paymentAmount", err))
	}
	temperatureRate, err := kernel.AmountFromString(request.TemperaturePenaltyRate)
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("temperaturePenaltyRate", err))
	}
	overtimeRate, err := kernel.AmountFromString(request.OvertimePenaltyRate)
	if err != nil {
		return errorResponse(ctx, errs.NewValueIsInvalidErrorWithCause("overtimePenaltyRate", err))
	}

	cmd, err := commands.NewPlaceOrderCommand(
		caller,
		oracle,
		request.TemperatureLimit,
		request.Deadline,
		payment,
		temperatureRate,
		overtimeRate,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PlaceOrderResponse{OrderID: uint64(orderID)})
}

// AcceptOrder handles POST /api/v1/orders/{orderId}/accept - the caller
// commits to the order as its provider, staking a bond.
func (s *Server) AcceptOrder(ctx echo.Context) error {
	caller, err := callerParty(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAcceptOrderCommand(orderID, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.acceptOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmArrival handles POST /api/v1/orders/{orderId}/arrival - the
// customer confirms the shipment arrived.
func (s *Server) ConfirmArrival(ctx echo.Context) error {
	caller, err := callerParty(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewConfirmArrivalCommand(orderID, caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.confirmArrivalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Payout handles POST /api/v1/orders/{orderId}/payout - the oracle reports
// the measured outcome and the order settles.
func (s *Server) Payout(ctx echo.Context) error {
	caller, err := callerParty(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := orderIDParam(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var request PayoutRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewPayoutCommand(orderID, caller, request.ReportedOverages)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.payoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Withdraw handles POST /api/v1/withdrawals - pays out the caller's full
// escrow balance.
func (s *Server) Withdraw(ctx echo.Context) error {
	caller, err := callerParty(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewWithdrawCommand(caller)
	if err != nil {
		return errorResponse(ctx, err)
	}

	amount, err := s.withdrawHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WithdrawResponse{Amount: amount.String()})
}

// GetOpenOrders handles GET /api/v1/orders - retrieves all unsettled orders.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OrderSummary, len(orders))
	for i, openOrder := range orders {
		response[i] = OrderSummary{
			OrderID:       uint64(openOrder.ID),
			Customer:      openOrder.Customer.Bytes(),
			Provider:      optionalUUID(openOrder.Provider),
			Oracle:        openOrder.Oracle.Bytes(),
			Status:        openOrder.Status,
			Deadline:      openOrder.Deadline,
			PaymentAmount: openOrder.PaymentAmount.String(),
			StakeAmount:   openOrder.StakeAmount.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/{orderId} - retrieves one order.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	details, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetails{
		OrderID:                uint64(details.ID),
		Customer:               details.Customer.Bytes(),
		Provider:               optionalUUID(details.Provider),
		Oracle:                 details.Oracle.Bytes(),
		TemperatureLimit:       details.TemperatureLimit,
		Deadline:               details.Deadline,
		PaymentAmount:          details.PaymentAmount.String(),
		TemperaturePenaltyRate: details.TemperaturePenaltyRate.String(),
		OvertimePenaltyRate:    details.OvertimePenaltyRate.String(),
		StakeAmount:            details.StakeAmount.String(),
		Status:                 details.Status,
		ArrivalAt:              details.ArrivalAt,
	})
}

// GetBalance handles GET /api/v1/balances/{party} - reports a party's
// withdrawable balance.
func (s *Server) GetBalance(ctx echo.Context) error {
	party, err := kernel.UUIDFromString(ctx.Param("party"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetBalanceQuery(party)
	if err != nil {
		return errorResponse(ctx, err)
	}

	balance, err := s.getBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, BalanceResponse{
		Party:   balance.Party.Bytes(),
		Balance: balance.Balance.String(),
	})
}

// callerParty extracts the caller's identity from the X-Party-ID header.
func callerParty(ctx echo.Context) (kernel.UUID, error) {
	header := ctx.Request().Header.Get(PartyHeader)
	if header == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(PartyHeader)
	}

	return kernel.UUIDFromString(header)
}

// orderIDParam parses the orderId path parameter.
func orderIDParam(ctx echo.Context) (order.ID, error) {
	raw := ctx.Param("orderId")
	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	id := order.ID(parsed)
	if err := id.Validate(); err != nil {
		return 0, err
	}

	return id, nil
}

func optionalUUID(u *kernel.UUID) *types.UUID {
	if u == nil {
		return nil
	}

	value := u.Bytes()
	return &value
}

// errorResponse maps domain errors onto HTTP statuses.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrWrongState):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientFunds):
		code = http.StatusPaymentRequired
	case errors.Is(err, errs.ErrTransferRejected):
		code = http.StatusBadGateway
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
