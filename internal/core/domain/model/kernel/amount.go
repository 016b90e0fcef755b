package kernel

import (
	"fmt"
	"math/big"

	"coldchain/internal/pkg/errs"
)

// ErrAmountIsNotConstructed indicates that an Amount was not initialized
// through one of the constructor functions.
var ErrAmountIsNotConstructed = errs.NewValueIsRequiredError(
	"amount must be created via NewAmount, AmountFromString, AmountFromBigInt, or ZeroAmount")

// Amount is an immutable, non-negative token amount. It is backed by
// arbitrary-precision integers so wei-scale values (10^18 per whole token)
// never overflow, and settlement arithmetic stays exact and auditable.
//
// Negative amounts are unrepresentable: constructors reject them and Sub
// fails instead of going below zero. All operations return new values; an
// Amount never changes after construction.
type Amount struct {
	value *big.Int
}

// ZeroAmount returns an amount of zero tokens.
func ZeroAmount() Amount {
	return Amount{value: big.NewInt(0)}
}

// NewAmount creates an Amount from a non-negative integer number of token
// units.
func NewAmount(v int64) (Amount, error) {
	if v < 0 {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%d is negative", v))
	}
	return Amount{value: big.NewInt(v)}, nil
}

// AmountFromString parses a base-10 token amount, typically when
// reconstructing from persistence or an API request.
func AmountFromString(s string) (Amount, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%q is not a base-10 integer", s))
	}
	if v.Sign() < 0 {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%q is negative", s))
	}
	return Amount{value: v}, nil
}

// AmountFromBigInt creates an Amount from a big.Int, copying the value.
func AmountFromBigInt(v *big.Int) (Amount, error) {
	if v == nil {
		return Amount{}, ErrAmountIsNotConstructed
	}
	if v.Sign() < 0 {
		return Amount{}, errs.NewValueIsInvalidErrorWithCause(
			"amount", fmt.Errorf("%s is negative", v))
	}
	return Amount{value: new(big.Int).Set(v)}, nil
}

// Validate returns ErrAmountIsNotConstructed for the zero value of the type.
func (a Amount) Validate() error {
	if a.value == nil {
		return ErrAmountIsNotConstructed
	}
	return nil
}

// big returns the backing integer, treating an unconstructed Amount as zero
// so arithmetic on the zero value stays total.
func (a Amount) big() *big.Int {
	if a.value == nil {
		return big.NewInt(0)
	}
	return a.value
}

// String returns the base-10 representation.
func (a Amount) String() string {
	return a.big().String()
}

// BigInt returns a copy of the backing integer for persistence adapters.
func (a Amount) BigInt() *big.Int {
	return new(big.Int).Set(a.big())
}

// IsZero reports whether the amount is zero tokens.
func (a Amount) IsZero() bool {
	return a.big().Sign() == 0
}

// IsEqual reports whether two amounts represent the same number of tokens.
func (a Amount) IsEqual(other Amount) bool {
	return a.big().Cmp(other.big()) == 0
}

// IsLess reports whether a is strictly smaller than other.
func (a Amount) IsLess(other Amount) bool {
	return a.big().Cmp(other.big()) < 0
}

// Add returns a + other. Addition of non-negative amounts cannot fail.
func (a Amount) Add(other Amount) Amount {
	return Amount{value: new(big.Int).Add(a.big(), other.big())}
}

// Sub returns a - other, failing with the overflow taxonomy when the result
// would be negative. Callers clamp first when a shortfall is a legal outcome.
func (a Amount) Sub(other Amount) (Amount, error) {
	if a.big().Cmp(other.big()) < 0 {
		return Amount{}, errs.NewArithmeticOverflowError(
			fmt.Sprintf("subtract %s from %s", other, a))
	}
	return Amount{value: new(big.Int).Sub(a.big(), other.big())}, nil
}

// MulCount returns the amount scaled by a unit count, e.g. a penalty rate
// times a number of overages or overtime seconds.
func (a Amount) MulCount(n uint64) Amount {
	return Amount{value: new(big.Int).Mul(a.big(), new(big.Int).SetUint64(n))}
}

// DivShare returns the integer share a / divisor, rounding toward zero.
func (a Amount) DivShare(divisor uint64) Amount {
	return Amount{value: new(big.Int).Quo(a.big(), new(big.Int).SetUint64(divisor))}
}

// Min returns the smaller of the two amounts.
func (a Amount) Min(other Amount) Amount {
	if a.big().Cmp(other.big()) <= 0 {
		return Amount{value: new(big.Int).Set(a.big())}
	}
	return Amount{value: new(big.Int).Set(other.big())}
}
