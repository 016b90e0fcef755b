package order

import (
	"errors"
	"fmt"
	"time"

	"coldchain/internal/core/domain/model/kernel"
	"coldchain/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// StakeDivisor fixes the good-faith bond at 1/10 of the payment amount.
// It is a protocol constant, not a per-order parameter.
const StakeDivisor = 10

// ID is the unique identifier of an order. Identifiers are assigned by the
// registry in monotonically increasing sequence and are never reused.
type ID uint64

// Validate rejects the zero value, which is never assigned to an order.
func (id ID) Validate() error {
	if id == 0 {
		return errs.NewValueIsRequiredError("orderId")
	}
	return nil
}

// String returns the decimal representation of the identifier.
func (id ID) String() string {
	return fmt.Sprintf("%d", id)
}

// Order is the aggregate root for one shipment. It binds the three roles
// (customer, service provider, oracle), the commercial terms, and the
// lifecycle status, and it owns every state transition.
//
// Invariants:
//   - the id is assigned at creation and immutable
//   - status only advances forward (Placed -> Accepted -> Arrived -> Settled)
//   - stakeAmount is frozen at creation from paymentAmount and never re-derived
//   - a provider is bound exactly once, at acceptance
//   - arrivalAt is recorded exactly once, at arrival confirmation
//
// The struct uses private fields; mutation happens only through the validated
// transition methods, each of which checks role and state before touching
// anything, so a failed transition leaves the order unchanged.
type Order struct {
	id ID

	customer kernel.UUID

	// provider is nil until a service provider accepts the order.
	provider *kernel.UUID

	oracle kernel.UUID

	// temperatureLimit is the agreed threshold in degrees. It is reporting
	// context for the oracle; settlement consumes only the reported overage
	// count, never raw readings.
	temperatureLimit int

	deadline time.Time

	payment                kernel.Amount
	temperaturePenaltyRate kernel.Amount
	overtimePenaltyRate    kernel.Amount

	// stake is the provider's good-faith bond, fixed at creation.
	stake kernel.Amount

	status Status

	// arrivalAt is nil until the customer confirms arrival.
	arrivalAt *time.Time

	isConstructed bool
}

// NewOrder creates an order in Placed status on behalf of the customer.
//
// The deadline must lie in the future relative to now; payment and both
// penalty rates must be constructed (and are therefore non-negative). The
// stake amount is derived here, once, as payment / StakeDivisor.
//
// No funds move at placement: nothing is at risk until a provider accepts.
func NewOrder(
	id ID,
	customer kernel.UUID,
	oracle kernel.UUID,
	temperatureLimit int,
	deadline time.Time,
	payment kernel.Amount,
	temperaturePenaltyRate kernel.Amount,
	overtimePenaltyRate kernel.Amount,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:           Placed,
		temperatureLimit: temperatureLimit,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setOracle(oracle),
		o.setDeadline(deadline, now),
		o.setMoney(payment, temperaturePenaltyRate, overtimePenaltyRate),
	); err != nil {
		return nil, err
	}

	o.stake = o.payment.DivShare(StakeDivisor)
	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any stored status and a past deadline, but it still enforces the
// structural invariants: a provider exists exactly from Accepted onward, an
// arrival timestamp exactly from Arrived onward, and the stake is taken as
// stored rather than re-derived.
func RestoreOrder(
	id ID,
	customer kernel.UUID,
	provider *kernel.UUID,
	oracle kernel.UUID,
	temperatureLimit int,
	deadline time.Time,
	payment kernel.Amount,
	temperaturePenaltyRate kernel.Amount,
	overtimePenaltyRate kernel.Amount,
	stake kernel.Amount,
	status Status,
	arrivalAt *time.Time,
) (*Order, error) {
	o := &Order{
		status:           status,
		temperatureLimit: temperatureLimit,
		deadline:         deadline,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setOracle(oracle),
		o.setMoney(payment, temperaturePenaltyRate, overtimePenaltyRate),
		stake.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.stake = stake

	if provider == nil {
		if status != Placed {
			return nil, errs.NewValueIsInvalidErrorWithCause("serviceProvider",
				fmt.Errorf("%s order has no bound provider", status))
		}
	} else {
		if err := provider.Validate(); err != nil {
			return nil, err
		}
		if status == Placed {
			return nil, errs.NewValueIsInvalidErrorWithCause("serviceProvider",
				fmt.Errorf("%s order cannot have a bound provider", status))
		}
		p := *provider
		o.provider = &p
	}

	if arrivalAt == nil {
		if status == Arrived || status == Settled {
			return nil, errs.NewValueIsInvalidErrorWithCause("arrivalAt",
				fmt.Errorf("%s order has no arrival timestamp", status))
		}
	} else {
		if status != Arrived && status != Settled {
			return nil, errs.NewValueIsInvalidErrorWithCause("arrivalAt",
				fmt.Errorf("%s order cannot have an arrival timestamp", status))
		}
		at := *arrivalAt
		o.arrivalAt = &at
	}

	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() ID {
	return o.id
}

// Customer returns the identity of the party that placed the order.
func (o *Order) Customer() kernel.UUID {
	return o.customer
}

// Provider returns the bound service provider, or nil before acceptance.
func (o *Order) Provider() *kernel.UUID {
	return o.provider
}

// Oracle returns the identity trusted to report the shipment outcome.
func (o *Order) Oracle() kernel.UUID {
	return o.oracle
}

// TemperatureLimit returns the agreed temperature threshold.
func (o *Order) TemperatureLimit() int {
	return o.temperatureLimit
}

// Deadline returns the timestamp by which arrival must be confirmed to avoid
// the overtime penalty.
func (o *Order) Deadline() time.Time {
	return o.deadline
}

// PaymentAmount returns the total payment committed by the customer.
func (o *Order) PaymentAmount() kernel.Amount {
	return o.payment
}

// TemperaturePenaltyRate returns the deduction per reported overage.
func (o *Order) TemperaturePenaltyRate() kernel.Amount {
	return o.temperaturePenaltyRate
}

// OvertimePenaltyRate returns the deduction per second past the deadline.
func (o *Order) OvertimePenaltyRate() kernel.Amount {
	return o.overtimePenaltyRate
}

// StakeAmount returns the provider's bond, frozen at placement.
func (o *Order) StakeAmount() kernel.Amount {
	return o.stake
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// ArrivalAt returns the confirmed arrival timestamp, or nil before arrival.
func (o *Order) ArrivalAt() *time.Time {
	return o.arrivalAt
}

// Accept binds the calling service provider and advances the order to
// Accepted. Fails with the wrong-state taxonomy unless the order is Placed.
//
// The caller is responsible for locking stake and payment in escrow before
// persisting the transition; Accept itself moves no funds.
func (o *Order) Accept(provider kernel.UUID) error {
	if err := provider.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.provider = &provider
	return nil
}

// ConfirmArrival records the arrival timestamp and advances the order to
// Arrived. Only the order's customer may confirm, and only from Accepted.
// This is a timestamped attestation gating settlement; no funds move.
func (o *Order) ConfirmArrival(caller kernel.UUID, at time.Time) error {
	if !caller.IsEqual(o.customer) {
		return errs.NewUnauthorizedError("customer", caller.String())
	}

	newStatus, err := o.status.Arrive()
	if err != nil {
		return err
	}

	o.status = newStatus
	arrivedAt := at.UTC()
	o.arrivalAt = &arrivedAt
	return nil
}

// Settle advances the order to Settled. Only the bound oracle may settle, and
// only from Arrived; a repeated attempt fails instead of re-crediting.
func (o *Order) Settle(caller kernel.UUID) error {
	if !caller.IsEqual(o.oracle) {
		return errs.NewUnauthorizedError("oracle", caller.String())
	}

	newStatus, err := o.status.Settle()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer kernel.UUID) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setOracle(oracle kernel.UUID) error {
	if err := oracle.Validate(); err != nil {
		return err
	}
	o.oracle = oracle
	return nil
}

func (o *Order) setDeadline(deadline, now time.Time) error {
	if !deadline.After(now) {
		return errs.NewValueIsInvalidErrorWithCause("deadline",
			fmt.Errorf("%s is not in the future", deadline.UTC().Format(time.RFC3339)))
	}
	o.deadline = deadline.UTC()
	return nil
}

func (o *Order) setMoney(payment, temperaturePenaltyRate, overtimePenaltyRate kernel.Amount) error {
	if err := errors.Join(
		payment.Validate(),
		temperaturePenaltyRate.Validate(),
		overtimePenaltyRate.Validate(),
	); err != nil {
		return err
	}

	o.payment = payment
	o.temperaturePenaltyRate = temperaturePenaltyRate
	o.overtimePenaltyRate = overtimePenaltyRate
	return nil
}
