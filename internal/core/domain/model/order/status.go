package order

import (
	"coldchain/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment order. It implements a
// strictly forward state machine:
//
//	Placed ──> Accepted ──> Arrived ──> Settled
//
// No transition skips or reverses a state, and Settled is final: the order
// remains as an immutable audit record once settled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status: the customer has published the order
	// terms but no funds are at risk yet.
	Placed

	// Accepted indicates a service provider committed to the order; the
	// provider's stake and the customer's payment are locked in escrow.
	Accepted

	// Arrived indicates the customer confirmed arrival of the shipment,
	// fixing the timestamp the overtime penalty is computed from.
	Arrived

	// Settled indicates the oracle reported the outcome and escrow was
	// split into withdrawable balances. Final state.
	Settled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Placed:   "Placed",
		Accepted: "Accepted",
		Arrived:  "Arrived",
		Settled:  "Settled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:   "Placed",
		Accepted: "Accepted",
		Arrived:  "Arrived",
		Settled:  "Settled",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions the status to Accepted.
//
// The only valid transition is Placed -> Accepted; a second acceptance or an
// acceptance after arrival fails with the wrong-state taxonomy and leaves the
// status untouched.
func (s Status) Accept() (Status, error) {
	if s != Placed {
		return 0, errs.NewWrongStateError("accept", s.String())
	}
	return Accepted, nil
}

// Arrive transitions the status to Arrived.
//
// The only valid transition is Accepted -> Arrived.
func (s Status) Arrive() (Status, error) {
	if s != Accepted {
		return 0, errs.NewWrongStateError("confirm arrival", s.String())
	}
	return Arrived, nil
}

// Settle transitions the status to Settled.
//
// The only valid transition is Arrived -> Settled. Because the status check
// and the mutation happen in the same atomic step of the aggregate, a second
// settlement attempt always observes Settled and fails here, which is what
// makes the payout unrepeatable per order.
func (s Status) Settle() (Status, error) {
	if s != Arrived {
		return 0, errs.NewWrongStateError("settle", s.String())
	}
	return Settled, nil
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Settled
}
