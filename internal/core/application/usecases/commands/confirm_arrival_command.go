package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/guard"
)

var ErrConfirmArrivalCommandIsNotConstructed = errors.New(
	"ConfirmArrivalCommand must be created via NewConfirmArrivalCommand constructor",
)

// ConfirmArrivalCommand represents the customer's attestation that the
// shipment arrived. The recorded timestamp drives the overtime penalty.
type ConfirmArrivalCommand struct { //nolint:recvcheck //using for validation
	orderID order.ID
	caller  kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmArrivalCommand creates a command to confirm shipment arrival.
func NewConfirmArrivalCommand(orderID order.ID, caller kernel.UUID) (ConfirmArrivalCommand, error) {
	arrivalCommand := ConfirmArrivalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		arrivalCommand.setOrderID(orderID),
		arrivalCommand.setCaller(caller),
	); err != nil {
		return ConfirmArrivalCommand{}, err
	}

	return arrivalCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmArrivalCommand) Validate() error {
	return c.guard.Validate(ErrConfirmArrivalCommandIsNotConstructed)
}

// OrderID returns the identifier of the arrived order.
func (c ConfirmArrivalCommand) OrderID() order.ID {
	return c.orderID
}

// Caller returns the identity claiming to be the order's customer.
func (c ConfirmArrivalCommand) Caller() kernel.UUID {
	return c.caller
}

func (c *ConfirmArrivalCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmArrivalCommand) setCaller(caller kernel.UUID) error {
	if err := caller.Validate(); err != nil {
		return err
	}

	c.caller = caller
	return nil
}
