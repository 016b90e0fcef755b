package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Every concrete error
// type in this package unwraps to exactly one of these.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrWrongState          = errors.New("wrong state")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrTransferRejected    = errors.New("transfer rejected")
	ErrArithmeticOverflow  = errors.New("arithmetic overflow")
)

// sanitize strips newlines from values interpolated into error messages so a
// single error always renders as one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ObjectNotFoundError indicates that an object could not be located by its
// identifier.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its
// permitted bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError without a cause.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// WrongStateError indicates that a lifecycle transition was invoked while the
// order is not in the state that permits it.
type WrongStateError struct {
	Operation string
	State     string
	Cause     error
}

// NewWrongStateError creates a WrongStateError for an operation attempted in
// the given state.
func NewWrongStateError(operation, state string) *WrongStateError {
	return &WrongStateError{Operation: operation, State: state}
}

func (e *WrongStateError) Error() string {
	msg := fmt.Sprintf("%s: %s is not a valid state to %s", ErrWrongState, e.State, e.Operation)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *WrongStateError) Unwrap() error {
	return ErrWrongState
}

// UnauthorizedError indicates that the caller is not the party bound to the
// role required for a transition.
type UnauthorizedError struct {
	Role   string
	Caller string
}

// NewUnauthorizedError creates an UnauthorizedError for a caller that does not
// hold the required role.
func NewUnauthorizedError(role, caller string) *UnauthorizedError {
	return &UnauthorizedError{Role: role, Caller: caller}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: caller %s is not the bound %s", ErrUnauthorized, sanitize(e.Caller), e.Role)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InsufficientFundsError indicates that a token pull failed because the payer
// lacks balance or allowance.
type InsufficientFundsError struct {
	Party  string
	Amount string
	Cause  error
}

// NewInsufficientFundsError creates an InsufficientFundsError for a party that
// cannot cover the given amount.
func NewInsufficientFundsError(party, amount string) *InsufficientFundsError {
	return &InsufficientFundsError{Party: party, Amount: amount}
}

func (e *InsufficientFundsError) Error() string {
	msg := fmt.Sprintf("%s: party %s cannot cover %s", ErrInsufficientFunds, sanitize(e.Party), sanitize(e.Amount))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// TransferRejectedError indicates that a token push failed because the target
// cannot receive funds.
type TransferRejectedError struct {
	Party  string
	Amount string
	Cause  error
}

// NewTransferRejectedError creates a TransferRejectedError for a failed push.
func NewTransferRejectedError(party, amount string) *TransferRejectedError {
	return &TransferRejectedError{Party: party, Amount: amount}
}

// NewTransferRejectedErrorWithCause creates a TransferRejectedError wrapping
// an underlying cause.
func NewTransferRejectedErrorWithCause(party, amount string, cause error) *TransferRejectedError {
	return &TransferRejectedError{Party: party, Amount: amount, Cause: cause}
}

func (e *TransferRejectedError) Error() string {
	msg := fmt.Sprintf("%s: cannot deliver %s to party %s", ErrTransferRejected, sanitize(e.Amount), sanitize(e.Party))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *TransferRejectedError) Unwrap() error {
	return ErrTransferRejected
}

// ArithmeticOverflowError indicates that a balance computation violated an
// arithmetic invariant. It marks a defect upstream and never occurs during
// normal settlement.
type ArithmeticOverflowError struct {
	Operation string
}

// NewArithmeticOverflowError creates an ArithmeticOverflowError for the given
// operation.
func NewArithmeticOverflowError(operation string) *ArithmeticOverflowError {
	return &ArithmeticOverflowError{Operation: operation}
}

func (e *ArithmeticOverflowError) Error() string {
	return fmt.Sprintf("%s: %s", ErrArithmeticOverflow, e.Operation)
}

func (e *ArithmeticOverflowError) Unwrap() error {
	return ErrArithmeticOverflow
}
