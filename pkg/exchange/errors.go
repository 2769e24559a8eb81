package exchange

import (
	"errors"
	"fmt"

	"guild-swap/pkg/wallet"
)

// Kind classifies why a user action failed
type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation means the form was not submittable; no contract was called
	KindValidation
	// KindUserRejected means the wallet refused an account or signature request
	KindUserRejected
	// KindOnChain covers RPC failures, reverts and anything else the chain returned
	KindOnChain
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindUserRejected:
		return "user_rejected"
	case KindOnChain:
		return "on_chain"
	default:
		return "unknown"
	}
}

// Error is the single result type for failed user actions
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of err, or KindUnknown when err did not come from this package
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func validationError(op, format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Op: op, Err: fmt.Errorf(format, args...)}
}

// classify wraps err for op. Errors that already carry a kind keep it.
func classify(op string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	if errors.Is(err, wallet.ErrRejected) {
		return &Error{Kind: KindUserRejected, Op: op, Err: err}
	}
	return &Error{Kind: KindOnChain, Op: op, Err: err}
}
