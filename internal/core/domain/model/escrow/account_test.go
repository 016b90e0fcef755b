package escrow_test

import (
	"testing"

	"coldchain/internal/core/domain/model/escrow"
	"coldchain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(t *testing.T, s string) kernel.Amount {
	t.Helper()
	a, err := kernel.AmountFromString(s)
	require.NoError(t, err)
	return a
}

func TestNewAccount(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		acc, err := escrow.NewAccount(kernel.NewUUID())

		require.NoError(t, err)
		assert.True(t, acc.Balance().IsZero())
	})

	t.Run("rejects invalid party", func(t *testing.T) {
		var nobody kernel.UUID
		_, err := escrow.NewAccount(nobody)
		require.Error(t, err)
	})
}

func TestAccount_Credit(t *testing.T) {
	t.Run("accumulates across credits", func(t *testing.T) {
		acc, err := escrow.NewAccount(kernel.NewUUID())
		require.NoError(t, err)

		require.NoError(t, acc.Credit(amount(t, "200000000000000000")))
		require.NoError(t, acc.Credit(amount(t, "900000000000000000")))

		assert.Equal(t, "1100000000000000000", acc.Balance().String())
	})

	t.Run("rejects unconstructed amount", func(t *testing.T) {
		acc, err := escrow.NewAccount(kernel.NewUUID())
		require.NoError(t, err)

		var missing kernel.Amount
		require.Error(t, acc.Credit(missing))
		assert.True(t, acc.Balance().IsZero())
	})
}

func TestAccount_DebitAll(t *testing.T) {
	acc, err := escrow.NewAccount(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, acc.Credit(amount(t, "500")))

	first := acc.DebitAll()
	second := acc.DebitAll()

	assert.Equal(t, "500", first.String())
	assert.True(t, second.IsZero())
	assert.True(t, acc.Balance().IsZero())
}

func TestRestoreAccount(t *testing.T) {
	party := kernel.NewUUID()
	acc, err := escrow.RestoreAccount(party, amount(t, "42"))

	require.NoError(t, err)
	assert.True(t, acc.Party().IsEqual(party))
	assert.Equal(t, "42", acc.Balance().String())
}

func TestAccount_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var acc escrow.Account
		require.ErrorIs(t, acc.Validate(), escrow.ErrAccountIsNotConstructed)
	})

	t.Run("nil fails", func(t *testing.T) {
		var acc *escrow.Account
		require.ErrorIs(t, acc.Validate(), escrow.ErrAccountIsNotConstructed)
	})
}
