package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/guard"
)

var ErrPayoutCommandIsNotConstructed = errors.New(
	"PayoutCommand must be created via NewPayoutCommand constructor",
)

// PayoutCommand represents the oracle's outcome report for an arrived order.
// The reported overage count is the only input the settlement consumes; raw
// temperature readings stay off-system.
type PayoutCommand struct { //nolint:recvcheck //using for validation
	orderID          order.ID
	caller           kernel.UUID
	reportedOverages uint64

	guard guard.ConstructorGuard
}

// NewPayoutCommand creates a command for the oracle to settle an order.
// Any overage count is acceptable; deductions are clamped downstream.
func NewPayoutCommand(orderID order.ID, caller kernel.UUID, reportedOverages uint64) (PayoutCommand, error) {
	payoutCommand := PayoutCommand{
		reportedOverages: reportedOverages,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		payoutCommand.setOrderID(orderID),
		payoutCommand.setCaller(caller),
	); err != nil {
		return PayoutCommand{}, err
	}

	return payoutCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PayoutCommand) Validate() error {
	return c.guard.Validate(ErrPayoutCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to settle.
func (c PayoutCommand) OrderID() order.ID {
	return c.orderID
}

// Caller returns the identity claiming to be the order's oracle.
func (c PayoutCommand) Caller() kernel.UUID {
	return c.caller
}

// ReportedOverages returns the oracle-reported count of threshold breaches.
func (c PayoutCommand) ReportedOverages() uint64 {
	return c.reportedOverages
}

func (c *PayoutCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PayoutCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
