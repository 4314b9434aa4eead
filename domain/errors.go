package domain

import "errors"

// error kinds, every user facing error unwraps to exactly one of them
var (
	// ErrValidation is a malformed price or fee configuration
	ErrValidation = errors.New("validation error")
	// ErrAuthorization is an operation called by the wrong identity
	ErrAuthorization = errors.New("authorization error")
	// ErrState is an operation called in the wrong lifecycle phase
	ErrState = errors.New("state error")
	// ErrCurrencyMismatch is a bid in a currency other than the auction's
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrInsufficientBid is a bid below the required threshold
	ErrInsufficientBid = errors.New("insufficient bid")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrPayment is a failure collecting or paying out funds
	ErrPayment = errors.New("payment error")
)

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidCurrency     = errors.New("invalid currency")
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrUnauthorized        = errors.New("Unauthorized")
	ErrUnhealthy           = errors.New("unhealthy")
)

// Error carries a stable message integrators match on, plus the kind it
// belongs to. errors.Is works against both the Error value and its kind.
type Error struct {
	kind error
	msg  string
}

func NewError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the kind sentinel of the error
func (e *Error) Kind() error {
	return e.kind
}

// KindOf returns the kind sentinel err belongs to, nil for unclassified errors
func KindOf(err error) error {
	for _, kind := range []error{
		ErrValidation,
		ErrAuthorization,
		ErrState,
		ErrCurrencyMismatch,
		ErrInsufficientBid,
		ErrNotFound,
		ErrPayment,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
