// Package errs provides the standardized error taxonomy of the escrow
// service. It implements a consistent pattern for error creation, formatting,
// and unwrapping that is used throughout the application.
//
// The taxonomy mirrors the failure modes of the order lifecycle:
//   - ObjectNotFoundError: an unknown order or escrow account
//   - WrongStateError: a transition invoked outside its valid state
//   - UnauthorizedError: a caller that is not the bound role
//   - InsufficientFundsError: a token pull that cannot be covered
//   - TransferRejectedError: a token push the target cannot receive
//   - ArithmeticOverflowError: a violated balance invariant (defensive)
//
// plus generic validation errors (ValueIsRequiredError, ValueIsInvalidError,
// ValueIsOutOfRangeError) used by value-object constructors.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrWrongState)
//   - a struct type with fields for error details
//   - constructor functions, with and without cause
//   - an Error() method for formatting
//   - an Unwrap() method so errors.Is matches the sentinel
//
// Callers classify failures with errors.Is against the sentinels and never
// parse message strings. Every failure leaves domain state unchanged, so an
// error of any kind means the order is still in its prior state and the call
// may be retried.
package errs
