package protectedpay

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"
)

// Kind classifies contract client failures
type Kind int

const (
	KindUnknown Kind = iota
	KindWalletNotConnected
	KindInvalidInput
	KindAlreadyRegistered
	KindNotFound
	KindReverted
	KindRejected
	KindTimeout
	KindRPC
)

func (k Kind) String() string {
	switch k {
	case KindWalletNotConnected:
		return "wallet_not_connected"
	case KindInvalidInput:
		return "invalid_input"
	case KindAlreadyRegistered:
		return "already_registered"
	case KindNotFound:
		return "not_found"
	case KindReverted:
		return "reverted"
	case KindRejected:
		return "rejected"
	case KindTimeout:
		return "timeout"
	case KindRPC:
		return "rpc"
	default:
		return "unknown"
	}
}

var (
	ErrWalletNotConnected = errors.New("wallet not connected")
	ErrNonPositiveAmount  = errors.New("amount must be greater than zero")
	ErrAlreadyRegistered  = errors.New("username already registered for this address")
	ErrNotFound           = errors.New("not found")
	ErrReverted           = errors.New("transaction reverted")
)

// Error is returned by every client operation
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps err with a kind and the contract operation it came from
func NewError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf classifies err. Errors that did not come from this package are
// classified by inspection: context deadlines are timeouts and anything else
// is treated as an RPC failure.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, ErrWalletNotConnected):
		return KindWalletNotConnected
	case errors.Is(err, ErrAlreadyRegistered):
		return KindAlreadyRegistered
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case isRevert(err):
		return KindReverted
	default:
		return KindRPC
	}
}

// IsKind reports whether err is classified as kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// executionRevertedCode is the JSON-RPC error code geth uses for reverts
const executionRevertedCode = 3

func isRevert(err error) bool {
	if err == nil {
		return false
	}
	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == executionRevertedCode {
		return true
	}
	return errors.Is(err, ErrReverted) || strings.Contains(strings.ToLower(err.Error()), "execution reverted")
}

// classifyRPC turns a backend error into a client error
func classifyRPC(op string, err error) *Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewError(KindTimeout, op, err)
	case isRevert(err):
		return NewError(KindReverted, op, err)
	default:
		return NewError(KindRPC, op, err)
	}
}
