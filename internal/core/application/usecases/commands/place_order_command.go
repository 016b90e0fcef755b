package commands

import (
	"errors"
	"time"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrDeadlineIsRequired = errors.New("deadline is required")
)

// PlaceOrderCommand represents a customer's request to open a new shipment
// order. Carries the full commercial terms; no funds move until a provider
// accepts.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customer, oracle, -18, deadline, payment, tempRate, overtimeRate)
//	if err != nil {
//	    return fmt.Errorf("invalid order terms: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher, clock, logger)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customer               kernel.UUID
	oracle                 kernel.UUID
	temperatureLimit       int
	deadline               time.Time
	paymentAmount          kernel.Amount
	temperaturePenaltyRate kernel.Amount
	overtimePenaltyRate    kernel.Amount

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new shipment order.
// Validates that both identities are valid, the deadline is set, and all
// money fields are constructed. The deadline-in-the-future check belongs to
// the aggregate, where it is evaluated against the handler's clock.
func NewPlaceOrderCommand(
	customer kernel.UUID,
	oracle kernel.UUID,
	temperatureLimit int,
	deadline time.Time,
	paymentAmount kernel.Amount,
	temperaturePenaltyRate kernel.Amount,
	overtimePenaltyRate kernel.Amount,
) (PlaceOrderCommand, error) {
	placeCommand := PlaceOrderCommand{
		temperatureLimit: temperatureLimit,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeCommand.setCustomer(customer),
		placeCommand.setOracle(oracle),
		placeCommand.setDeadline(deadline),
		placeCommand.setMoney(paymentAmount, temperaturePenaltyRate, overtimePenaltyRate),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Customer returns the identity of the party placing the order.
func (c PlaceOrderCommand) Customer() kernel.UUID {
	return c.customer
}

// Oracle returns the identity trusted to report the shipment outcome.
func (c PlaceOrderCommand) Oracle() kernel.UUID {
	return c.oracle
}

// TemperatureLimit returns the agreed temperature threshold.
func (c PlaceOrderCommand) TemperatureLimit() int {
	return c.temperatureLimit
}

// Deadline returns the timestamp by which arrival must be confirmed.
func (c PlaceOrderCommand) Deadline() time.Time {
	return c.deadline
}

// PaymentAmount returns the total payment committed by the customer.
func (c PlaceOrderCommand) PaymentAmount() kernel.Amount {
	return c.paymentAmount
}

// TemperaturePenaltyRate returns the deduction per reported overage.
func (c PlaceOrderCommand) TemperaturePenaltyRate() kernel.Amount {
	return c.temperaturePenaltyRate
}

// OvertimePenaltyRate returns the deduction per second past the deadline.
func (c PlaceOrderCommand) OvertimePenaltyRate() kernel.Amount {
	return c.overtimePenaltyRate
}

func (c *PlaceOrderCommand) setCustomer(customer kernel.UUID) error {
	if err := customer.Validate(); err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *PlaceOrderCommand) setOracle(oracle kernel.UUID) error {
	if err := oracle.Validate(); err != nil {
		return err
	}

	c.oracle = oracle
	return nil
}

func (c *PlaceOrderCommand) setDeadline(deadline time.Time) error {
	if deadline.IsZero() {
		return ErrDeadlineIsRequired
	}

	c.deadline = deadline
	return nil
}

func (c *PlaceOrderCommand) setMoney(
	paymentAmount, temperaturePenaltyRate, overtimePenaltyRate kernel.Amount,
) error {
	if err := errors.Join(
		paymentAmount.Validate(),
		temperaturePenaltyRate.Validate(),
		overtimePenaltyRate.Validate(),
	); err != nil {
		return err
	}

	c.paymentAmount = paymentAmount
	c.temperaturePenaltyRate = temperaturePenaltyRate
	c.overtimePenaltyRate = overtimePenaltyRate
	return nil
}
