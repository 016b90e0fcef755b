package escrow

import (
	"errors"

	"coldchain/internal/core/domain/model/kernel"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account instance was
	// not created through NewAccount or RestoreAccount.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")
)

// Account holds one party's withdrawable escrow balance. It outlives any
// single order: credits from settlements of different orders accumulate into
// one total, and withdrawal zeroes the whole balance in a single step.
//
// Balances only ever change through Credit (settlement) and DebitAll
// (withdrawal); the amount is non-negative by construction.
type Account struct {
	party   kernel.UUID
	balance kernel.Amount

	isConstructed bool
}

// NewAccount creates an empty escrow account for a party. Accounts are
// created lazily, on a party's first settlement credit.
func NewAccount(party kernel.UUID) (*Account, error) {
	if err := party.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		party:         party,
		balance:       kernel.ZeroAmount(),
		isConstructed: true,
	}, nil
}

// RestoreAccount reconstructs an escrow account from persistence.
func RestoreAccount(party kernel.UUID, balance kernel.Amount) (*Account, error) {
	if err := errors.Join(party.Validate(), balance.Validate()); err != nil {
		return nil, err
	}

	return &Account{
		party:         party,
		balance:       balance,
		isConstructed: true,
	}, nil
}

// Validate ensures the Account was created through a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// Party returns the identity the balance belongs to.
func (a *Account) Party() kernel.UUID {
	return a.party
}

// Balance returns the current withdrawable amount.
func (a *Account) Balance() kernel.Amount {
	return a.balance
}

// Credit adds a settlement share to the balance. The amount must be a
// constructed (hence non-negative) Amount.
func (a *Account) Credit(amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	a.balance = a.balance.Add(amount)
	return nil
}

// DebitAll zeroes the balance and returns what it held. Withdrawal calls this
// strictly before touching the external token ledger, so a reentrant caller
// observes an empty balance and cannot drain the same credit twice.
func (a *Account) DebitAll() kernel.Amount {
	amount := a.balance
	a.balance = kernel.ZeroAmount()
	return amount
}
