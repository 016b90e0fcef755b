package commands

import (
	"context"
	"errors"

	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/core/ports"
)

// AcceptOrderCommandHandler handles provider acceptance of an open order.
//
// The row lock taken by GetForUpdate makes the state check and the
// transition one atomic step: two providers racing to accept the same order
// serialize, and the loser sees WrongState. Funds are pulled only after the
// transition is known to be valid, and every failure path returns the pulled
// funds before reporting the error, so a failed acceptance leaves both the
// order and custody exactly as they were.
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	gateway    ports.TokenGateway
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.TokenGateway,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the acceptance command.
// Pulls the caller's stake and the customer's payment into custody, binds
// the caller as provider, and moves the order to Accepted. A short balance
// or allowance surfaces as InsufficientFundsError with the order left in
// Placed, re-acceptable once the allowance is corrected.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	acceptedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = acceptedOrder.Accept(cmd.Caller()); err != nil {
		return err
	}

	if err = h.gateway.Pull(ctx, cmd.Caller(), acceptedOrder.StakeAmount()); err != nil {
		return err
	}

	if err = h.gateway.Pull(ctx, acceptedOrder.Customer(), acceptedOrder.PaymentAmount()); err != nil {
		return errors.Join(err, h.gateway.Push(ctx, cmd.Caller(), acceptedOrder.StakeAmount()))
	}

	if err = orderRepo.Update(ctx, acceptedOrder); err != nil {
		return errors.Join(err, h.refund(ctx, acceptedOrder))
	}

	if err = uow.Commit(ctx); err != nil {
		return errors.Join(err, h.refund(ctx, acceptedOrder))
	}

	return nil
}

// refund returns both pulled amounts after a persistence failure. Custody
// must not keep funds for an acceptance that was never recorded.
func (h *AcceptOrderCommandHandler) refund(ctx context.Context, acceptedOrder *order.Order) error {
	return errors.Join(
		h.gateway.Push(ctx, *acceptedOrder.Provider(), acceptedOrder.StakeAmount()),
		h.gateway.Push(ctx, acceptedOrder.Customer(), acceptedOrder.PaymentAmount()),
	)
}
