package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a prospective provider's commitment to an
// open order. Acceptance is the point where both parties' funds go at risk:
// the caller's stake and the customer's payment are pulled into custody.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	caller  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a provider to accept an order.
func NewAcceptOrderCommand(orderID order.ID, caller kernel.UUID) (AcceptOrderCommand, error) {
	acceptCommand := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		acceptCommand.setOrderID(orderID),
		acceptCommand.setCaller(caller),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return acceptCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being accepted.
func (c AcceptOrderCommand) OrderID() order.ID {
	return c.orderID
}

// Caller returns the identity of the accepting provider.
func (c AcceptOrderCommand) Caller() kernel.UUID {
	return c.caller
}

func (c *AcceptOrderCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
