package services

import (
	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/core/domain/model/order"
	"coldchain/internal/pkg/errs"
)

// Settlement is the computed split of an order's locked funds. The registry
// applies it by crediting both escrow accounts; the engine itself never
// touches a balance.
type Settlement struct {
	// CustomerCredit is the refunded penalty. It is never burned or
	// retained by the escrow.
	CustomerCredit kernel.Amount

	// ProviderCredit is the stake returned in full plus the payment net of
	// deductions.
	ProviderCredit kernel.Amount
}

// Total returns the sum of both credits, which must equal stake + payment.
func (s Settlement) Total() kernel.Amount {
	return s.CustomerCredit.Add(s.ProviderCredit)
}

// SettlementEngine computes the penalty split for an arrived order. It is a
// pure domain service: given the order terms, the oracle-reported overage
// count and the recorded arrival timestamp, it returns the settlement without
// side effects.
//
// The computation:
//
//	temperatureDeduction = overages x temperaturePenaltyRate
//	overtimeSeconds      = max(0, arrivalAt - deadline)
//	overtimeDeduction    = overtimeSeconds x overtimePenaltyRate
//	totalDeduction       = min(temperatureDeduction + overtimeDeduction, payment)
//	providerCredit       = stake + (payment - totalDeduction)
//	customerCredit       = totalDeduction
//
// The clamp keeps deductions within what escrow actually holds for the
// payment, so conservation holds exactly:
// providerCredit + customerCredit == stake + payment.
type SettlementEngine struct{}

// NewSettlementEngine creates a SettlementEngine instance.
func NewSettlementEngine() SettlementEngine {
	return SettlementEngine{}
}

// Settle computes the split for an order whose arrival has been confirmed.
//
// Returns a wrong-state error when the order has no recorded arrival
// timestamp yet. An arithmetic-overflow error marks a violated conservation
// invariant and indicates a defect; it never occurs with clamped deductions.
func (e SettlementEngine) Settle(o *order.Order, reportedOverages uint64) (Settlement, error) {
	if err := o.Validate(); err != nil {
		return Settlement{}, err
	}

	arrivalAt := o.ArrivalAt()
	if arrivalAt == nil {
		return Settlement{}, errs.NewWrongStateError("settle", o.Status().String())
	}

	temperatureDeduction := o.TemperaturePenaltyRate().MulCount(reportedOverages)

	var overtimeSeconds uint64
	if overtime := arrivalAt.Sub(o.Deadline()); overtime > 0 {
		overtimeSeconds = uint64(overtime.Seconds())
	}
	overtimeDeduction := o.OvertimePenaltyRate().MulCount(overtimeSeconds)

	totalDeduction := temperatureDeduction.Add(overtimeDeduction).Min(o.PaymentAmount())

	payable, err := o.PaymentAmount().Sub(totalDeduction)
	if err != nil {
		return Settlement{}, err
	}

	settlement := Settlement{
		CustomerCredit: totalDeduction,
		ProviderCredit: o.StakeAmount().Add(payable),
	}

	if !settlement.Total().IsEqual(o.StakeAmount().Add(o.PaymentAmount())) {
		return Settlement{}, errs.NewArithmeticOverflowError(
			"settlement split does not conserve locked funds for order " + o.ID().String())
	}

	return settlement, nil
}
