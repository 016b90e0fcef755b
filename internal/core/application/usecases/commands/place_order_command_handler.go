package commands

import (
	"context"
	"log/slog"

	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for opening orders.
// Reserves a monotonic identifier, persists the order in Placed status, and
// emits the order-placed notification after commit.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher, clock, logger)
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now open and awaiting a provider
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderPlacedPublisher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrderUoWFactory for transactional persistence, a publisher for
// the placement notification, and a clock for the deadline check.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderPlacedPublisher,
	clock ports.Clock,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		clock:      clock,
		logger:     logger.With("component", "place_order_handler"),
	}
}

// Handle processes the placement command and returns the new order id.
// No tokens move here: nothing is at risk until a provider accepts, so a
// placement that fails after the identifier was reserved simply burns that
// identifier. The notification is emitted only after a successful commit and
// its failure does not undo the placement.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (order.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orderID, err := orderRepo.NextID(ctx)
	if err != nil {
		return 0, err
	}

	placedAt := h.clock.Now()
	newOrder, err := order.NewOrder(
		orderID,
		cmd.Customer(),
		cmd.Oracle(),
		cmd.TemperatureLimit(),
		cmd.Deadline(),
		cmd.PaymentAmount(),
		cmd.TemperaturePenaltyRate(),
		cmd.OvertimePenaltyRate(),
		placedAt,
	)
	if err != nil {
		return 0, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	event := ports.OrderPlacedEvent{
		OrderID:                newOrder.ID(),
		Customer:               newOrder.Customer(),
		Oracle:                 newOrder.Oracle(),
		TemperatureLimit:       newOrder.TemperatureLimit(),
		Deadline:               newOrder.Deadline(),
		PaymentAmount:          newOrder.PaymentAmount(),
		TemperaturePenaltyRate: newOrder.TemperaturePenaltyRate(),
		OvertimePenaltyRate:    newOrder.OvertimePenaltyRate(),
		StakeAmount:            newOrder.StakeAmount(),
		PlacedAt:               placedAt,
	}
	if err = h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		h.logger.WarnContext(ctx, "order placed notification failed",
			"order_id", newOrder.ID().String(),
			"error", err,
		)
	}

	return newOrder.ID(), nil
}
