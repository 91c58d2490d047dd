package hxhook

import (
	"errors"

	"github.com/pthm/hxhook/lib/async"
	"github.com/pthm/hxhook/lib/encoding"
)

// Sentinel errors for hook registration, invocation and dehydration.
var (
	ErrRejected         = async.ErrRejected
	ErrZeroFuture       = async.ErrZeroFuture
	ErrNotComparable    = errors.New("hxhook: component is not comparable")
	ErrAlreadyAttached  = errors.New("hxhook: hooks already attached")
	ErrInvalidFormat    = encoding.ErrInvalidFormat
	ErrSignatureInvalid = encoding.ErrSignatureInvalid
	ErrDecryptFailed    = encoding.ErrDecryptFailed
)

// PanicError carries a recovered panic value that was not an error.
// Panics with an error value propagate that error unchanged.
type PanicError = async.PanicError

// IsPanic checks if err came from a hook that panicked with a non-error value.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// IsDecodeError checks if err is a dehydration token format, signature or
// decryption error.
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrSignatureInvalid) ||
		errors.Is(err, ErrDecryptFailed)
}
