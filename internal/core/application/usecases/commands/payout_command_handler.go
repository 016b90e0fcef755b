package commands

import (
	"context"
	"errors"

	"coldchain/internal/core/domain/model/escrow"
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/services"
	"coldchain/internal/core/ports"
	"coldchain/internal/pkg/errs"
)

// PayoutCommandHandler handles oracle-triggered settlement.
//
// Settlement is the single point where custody converts from locked-for-an-
// order to withdrawable-by-party. The order row lock, the Settled flip, and
// both balance credits share one transaction, so the transition is
// unrepeatable: a second payout attempt loads an order already in Settled
// and fails with WrongState, never re-crediting.
type PayoutCommandHandler struct {
	uowFactory UoWFactory
	engine     services.SettlementEngine
}

// NewPayoutCommandHandler creates a handler for oracle settlement.
func NewPayoutCommandHandler(uowFactory UoWFactory, engine services.SettlementEngine) PayoutCommandHandler {
	return PayoutCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

// Handle processes the settlement command.
// Verifies role and state on the order, computes the split, credits both
// parties' withdrawable balances, and marks the order Settled. No tokens
// move here; parties withdraw their credits separately.
func (h *PayoutCommandHandler) Handle(ctx context.Context, cmd PayoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	settledOrder, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	settlement, err := h.engine.Settle(settledOrder, cmd.ReportedOverages())
	if err != nil {
		return err
	}

	if err = settledOrder.Settle(cmd.Caller()); err != nil {
		return err
	}

	escrowRepo := uow.EscrowAccountRepository()
	if err = creditParty(ctx, escrowRepo, settledOrder.Customer(), settlement.CustomerCredit); err != nil {
		return err
	}

	if err = creditParty(ctx, escrowRepo, *settledOrder.Provider(), settlement.ProviderCredit); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, settledOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// creditParty adds a settlement credit to a party's withdrawable balance,
// creating the account on first credit. Zero credits are skipped so that a
// clean settlement leaves no empty account rows behind.
func creditParty(
	ctx context.Context,
	escrowRepo ports.EscrowAccountRepository,
	party kernel.UUID,
	amount kernel.Amount,
) error {
	if amount.IsZero() {
		return nil
	}

	account, err := escrowRepo.GetForUpdate(ctx, party)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}

		account, err = escrow.NewAccount(party)
		if err != nil {
			return err
		}
	}

	if err = account.Credit(amount); err != nil {
		return err
	}

	return escrowRepo.Save(ctx, account)
}
