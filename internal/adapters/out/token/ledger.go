// Package token provides an in-process fungible-token ledger with the
// standard transfer/approve/transferFrom/balanceOf/mint surface, and the
// escrow gateway that adapts it to the ports.TokenGateway contract. The
// ledger backs local bootstrap and tests; production deployments swap in an
// adapter over the real token ledger.
package token

import (
	"math/big"
	"sync"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"
)

type allowanceKey struct {
	owner   kernel.UUID
	spender kernel.UUID
}

// Ledger is a thread-safe in-memory token ledger. Every operation either
// fully succeeds or fully fails; failed transfers change no balance.
type Ledger struct {
	mu         sync.Mutex
	balances   map[kernel.UUID]*big.Int
	allowances map[allowanceKey]*big.Int

	// blocked parties refuse incoming transfers, simulating a target that
	// revokes receipt.
	blocked map[kernel.UUID]bool
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		balances:   make(map[kernel.UUID]*big.Int),
		allowances: make(map[allowanceKey]*big.Int),
		blocked:    make(map[kernel.UUID]bool),
	}
}

// Mint credits freshly created tokens to an account. Bootstrap and test use
// only.
func (l *Ledger) Mint(to kernel.UUID, amount kernel.Amount) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if err := amount.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.credit(to, amount.BigInt())
	return nil
}

// BalanceOf reports an account's balance. Unknown accounts hold zero.
func (l *Ledger) BalanceOf(account kernel.UUID) kernel.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()

	balance, ok := l.balances[account]
	if !ok {
		return kernel.ZeroAmount()
	}

	amount, err := kernel.AmountFromBigInt(balance)
	if err != nil {
		return kernel.ZeroAmount()
	}
	return amount
}

// Approve authorizes a spender to pull up to the given amount from the
// owner's balance. A later approval overwrites the earlier one.
func (l *Ledger) Approve(owner, spender kernel.UUID, amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.allowances[allowanceKey{owner: owner, spender: spender}] = amount.BigInt()
	return nil
}

// Allowance reports how much the spender may still pull from the owner.
func (l *Ledger) Allowance(owner, spender kernel.UUID) kernel.Amount {
	l.mu.Lock()
	defer l.mu.Unlock()

	remaining, ok := l.allowances[allowanceKey{owner: owner, spender: spender}]
	if !ok {
		return kernel.ZeroAmount()
	}

	amount, err := kernel.AmountFromBigInt(remaining)
	if err != nil {
		return kernel.ZeroAmount()
	}
	return amount
}

// Transfer moves tokens from one account to another.
// Fails with InsufficientFundsError when the sender's balance is short and
// with TransferRejectedError when the target refuses receipt.
func (l *Ledger) Transfer(from, to kernel.UUID, amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.blocked[to] {
		return errs.NewTransferRejectedError(to.String(), amount.String())
	}

	if err := l.debit(from, amount); err != nil {
		return err
	}

	l.credit(to, amount.BigInt())
	return nil
}

// TransferFrom moves tokens from the owner to the target on the strength of
// a prior approval to the spender. The allowance is reduced by the amount.
func (l *Ledger) TransferFrom(owner, spender, to kernel.UUID, amount kernel.Amount) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.blocked[to] {
		return errs.NewTransferRejectedError(to.String(), amount.String())
	}

	key := allowanceKey{owner: owner, spender: spender}
	remaining, ok := l.allowances[key]
	if !ok || remaining.Cmp(amount.BigInt()) < 0 {
		return errs.NewInsufficientFundsError(owner.String(), amount.String())
	}

	if err := l.debit(owner, amount); err != nil {
		return err
	}

	l.allowances[key] = new(big.Int).Sub(remaining, amount.BigInt())
	l.credit(to, amount.BigInt())
	return nil
}

// RevokeReceipt makes a party refuse all incoming transfers until restored.
// Test hook for the push-failure paths.
func (l *Ledger) RevokeReceipt(party kernel.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.blocked[party] = true
}

// RestoreReceipt lifts a receipt revocation.
func (l *Ledger) RestoreReceipt(party kernel.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.blocked, party)
}

// credit adds to a balance. Callers hold the mutex.
func (l *Ledger) credit(to kernel.UUID, amount *big.Int) {
	balance, ok := l.balances[to]
	if !ok {
		balance = new(big.Int)
		l.balances[to] = balance
	}
	balance.Add(balance, amount)
}

// debit subtracts from a balance, failing without mutation when it is short.
// Callers hold the mutex.
func (l *Ledger) debit(from kernel.UUID, amount kernel.Amount) error {
	balance, ok := l.balances[from]
	if !ok || balance.Cmp(amount.BigInt()) < 0 {
		return errs.NewInsufficientFundsError(from.String(), amount.String())
	}

	balance.Sub(balance, amount.BigInt())
	return nil
}
