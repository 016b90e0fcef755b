package commands

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/guard"
)

var ErrWithdrawCommandIsNotConstructed = errors.New(
	"WithdrawCommand must be created via NewWithdrawCommand constructor",
)

// WithdrawCommand represents a party's request to pull out its entire
// withdrawable balance. Anyone may withdraw; a party with no balance gets a
// zero-amount no-op.
type WithdrawCommand struct { //nolint:recvcheck //using for validation
	party kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawCommand creates a command to withdraw a party's balance.
func NewWithdrawCommand(party kernel.UUID) (WithdrawCommand, error) {
	withdrawCommand := WithdrawCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := withdrawCommand.setParty(party); err != nil {
		return WithdrawCommand{}, err
	}

	return withdrawCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawCommandIsNotConstructed)
}

// Party returns the identity withdrawing its balance.
func (c WithdrawCommand) Party() kernel.UUID {
	return c.party
}

func (c *WithdrawCommand) setParty(party kernel.UUID) error {
	if err := party.Validate(); err != nil {
		return err
	}

	c.party = party
	return nil
}
