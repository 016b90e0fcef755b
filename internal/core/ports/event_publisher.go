package ports

import (
	"context"
	"time"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
)

// OrderPlacedEvent carries the full parameter set of a freshly placed order
// for off-chain indexers and UIs.
type OrderPlacedEvent struct {
	OrderID                order.ID
	Customer               kernel.UUID
	Oracle                 kernel.UUID
	TemperatureLimit       int
	Deadline               time.Time
	PaymentAmount          kernel.Amount
	TemperaturePenaltyRate kernel.Amount
	OvertimePenaltyRate    kernel.Amount
	StakeAmount            kernel.Amount
	PlacedAt               time.Time
}

// OrderPlacedPublisher emits the order-placed notification after a successful
// placement.
type OrderPlacedPublisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
}
