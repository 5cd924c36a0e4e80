package errorutil_test

import (
	"errors"
	"io"
	"testing"

	"github.com/paycodes/bip21/internal/errorutil"
)

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		args    []any
		wantMsg string
	}{
		{"no args", nil, "invalid argument"},
		{"message", []any{"empty address"}, "invalid argument: empty address"},
		{"format", []any{"key %q", "a&b"}, `invalid argument: key "a&b"`},
		{"error", []any{io.EOF}, "invalid argument: EOF"},
	}

	for _, c := range cases {
		err := errorutil.NewInvalidArgumentError(c.args...)
		if !errors.Is(err, errorutil.ErrInvalidArgument) {
			t.Errorf("%s: errors.Is(%v, ErrInvalidArgument) = false, want true", c.name, err)
		}
		if got := err.Error(); got != c.wantMsg {
			t.Errorf("%s: err.Error() = %q, want %q", c.name, got, c.wantMsg)
		}
	}

	wrapped := errorutil.NewInvalidArgumentError(errorutil.NewInvalidArgumentError("x"))
	if got, want := wrapped.Error(), "invalid argument: x"; got != want {
		t.Errorf("double wrap: err.Error() = %q, want %q", got, want)
	}
}

func TestJoinPrefix(t *testing.T) {
	t.Parallel()

	if err := errorutil.JoinPrefix("invalid URI:"); err != nil {
		t.Errorf("errorutil.JoinPrefix() = %v, want nil", err)
	}

	one := errorutil.JoinPrefix("invalid URI:", io.EOF)
	if got, want := one.Error(), "invalid URI: EOF"; got != want {
		t.Errorf("one.Error() = %q, want %q", got, want)
	}
	if !errors.Is(one, io.EOF) {
		t.Errorf("errors.Is(%v, io.EOF) = false, want true", one)
	}

	many := errorutil.JoinPrefix("invalid URI:", io.EOF, io.ErrUnexpectedEOF)
	if got, want := many.Error(), "invalid URI:\n  - EOF\n  - unexpected EOF"; got != want {
		t.Errorf("many.Error() = %q, want %q", got, want)
	}
	if !errors.Is(many, io.ErrUnexpectedEOF) {
		t.Errorf("errors.Is(%v, io.ErrUnexpectedEOF) = false, want true", many)
	}
}
