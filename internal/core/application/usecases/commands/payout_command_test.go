package commands_test

import (
	"testing"

	"coldchain/internal/core/application/usecases/commands"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayoutCommand_ValidInput(t *testing.T) {
	caller := kernel.NewUUID()
	cmd, err := commands.NewPayoutCommand(order.ID(42), caller, 200)
	require.NoError(t, err)
	assert.Equal(t, order.ID(42), cmd.OrderID())
	assert.Equal(t, caller, cmd.Caller())
	assert.Equal(t, uint64(200), cmd.ReportedOverages())
}

func TestNewPayoutCommand_ZeroOverages(t *testing.T) {
	cmd, err := commands.NewPayoutCommand(order.ID(42), kernel.NewUUID(), 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), cmd.ReportedOverages())
}

func TestNewPayoutCommand_ZeroOrderID(t *testing.T) {
	_, err := commands.NewPayoutCommand(order.ID(0), kernel.NewUUID(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPayoutCommand_InvalidCaller(t *testing.T) {
	_, err := commands.NewPayoutCommand(order.ID(42), kernel.UUID{}, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestPayoutCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.PayoutCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPayoutCommandIsNotConstructed)
}
