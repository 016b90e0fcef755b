package commands

import (
	"context"
	"errors"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/ports"
	"coldchain/internal/pkg/errs"
)

// WithdrawCommandHandler handles pull-payment withdrawal.
//
// The balance is zeroed and committed strictly before the external push, so
// a second withdrawal racing with the push observes a zero balance and
// transfers nothing. If the push fails, a compensating transaction restores
// the balance; an external rejection never destroys a party's credit.
type WithdrawCommandHandler struct {
	uowFactory EscrowUoWFactory
	gateway    ports.TokenGateway
}

// NewWithdrawCommandHandler creates a handler for balance withdrawal.
func NewWithdrawCommandHandler(
	uowFactory EscrowUoWFactory,
	gateway ports.TokenGateway,
) WithdrawCommandHandler {
	return WithdrawCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
	}
}

// Handle processes the withdrawal and returns the amount paid out.
// A party with no account or a zero balance gets a successful zero-amount
// result; nothing is pushed. On push failure the balance is restored and
// the gateway's TransferRejectedError is returned.
func (h *WithdrawCommandHandler) Handle(ctx context.Context, cmd WithdrawCommand) (kernel.Amount, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.Amount{}, err
	}

	amount, err := h.debitAll(ctx, cmd.Party())
	if err != nil {
		return kernel.Amount{}, err
	}

	if amount.IsZero() {
		return kernel.ZeroAmount(), nil
	}

	if err = h.gateway.Push(ctx, cmd.Party(), amount); err != nil {
		return kernel.Amount{}, errors.Join(err, h.restore(ctx, cmd.Party(), amount))
	}

	return amount, nil
}

// debitAll zeroes the party's balance in its own committed transaction and
// returns the debited amount. A missing account reads as a zero balance.
func (h *WithdrawCommandHandler) debitAll(ctx context.Context, party kernel.UUID) (kernel.Amount, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.Amount{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	escrowRepo := uow.EscrowAccountRepository()
	account, err := escrowRepo.GetForUpdate(ctx, party)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.ZeroAmount(), nil
		}

		return kernel.Amount{}, err
	}

	amount := account.DebitAll()
	if amount.IsZero() {
		return kernel.ZeroAmount(), nil
	}

	if err = escrowRepo.Save(ctx, account); err != nil {
		return kernel.Amount{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.Amount{}, err
	}

	return amount, nil
}

// restore re-credits a debited amount after a failed push.
func (h *WithdrawCommandHandler) restore(ctx context.Context, party kernel.UUID, amount kernel.Amount) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	escrowRepo := uow.EscrowAccountRepository()
	account, err := escrowRepo.GetForUpdate(ctx, party)
	if err != nil {
		return err
	}

	if err = account.Credit(amount); err != nil {
		return err
	}

	if err = escrowRepo.Save(ctx, account); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
