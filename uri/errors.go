package uri

import (
	"fmt"

	"github.com/paycodes/bip21/internal/errorutil"
	"github.com/paycodes/bip21/internal/grammar"
)

const (
	ErrEmptyInput     = grammar.ErrEmptyInput
	ErrMalformedInput = grammar.ErrMalformedInput

	// ErrInvalidArgument is returned by validation of URI components.
	ErrInvalidArgument = errorutil.ErrInvalidArgument
	// ErrKeyContainsEqualSign is matched by [KeyError] with [errors.Is].
	ErrKeyContainsEqualSign errorutil.Error = "key contains equal sign"
)

// KeyError is the panic value raised while rendering a parameter whose key contains "=".
//
// Keys are never escaped, so "=" would break the field boundary.
// Such keys are a bug in the [ParamsSerializer] implementation, not a runtime condition,
// use [URI.Validate] to check untrusted keys before rendering.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("key %q contains equal sign", e.Key)
}

func (e *KeyError) Is(target error) bool { return target == ErrKeyContainsEqualSign } //nolint:errorlint

func newKeyErr(key any) error {
	return &KeyError{Key: fmt.Sprint(key)} //errtrace:skip
}
