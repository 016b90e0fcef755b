package commands

import (
	"context"

	"coldchain/internal/core/ports"
)

// ConfirmArrivalCommandHandler handles the customer's arrival attestation.
// No funds move here; the transition only timestamps the arrival and gates
// settlement.
type ConfirmArrivalCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewConfirmArrivalCommandHandler creates a handler for arrival confirmation.
func NewConfirmArrivalCommandHandler(
	uowFactory OrderUoWFactory,
	clock ports.Clock,
) ConfirmArrivalCommandHandler {
	return ConfirmArrivalCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the arrival confirmation.
// Records the clock's current time as the arrival timestamp and moves the
// order to Arrived. Only the order's customer may confirm.
func (h *ConfirmArrivalCommandHandler) Handle(ctx context.Context, cmd ConfirmArrivalCommand) error {
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
	arrivedOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = arrivedOrder.ConfirmArrival(cmd.Caller(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, arrivedOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
