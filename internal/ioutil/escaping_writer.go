package ioutil

import (
	"io"

	"braces.dev/errtrace"

	"github.com/paycodes/bip21/internal/constraints"
	"github.com/paycodes/bip21/internal/grammar"
)

// EscapingWriter wraps an io.Writer and percent-encodes every byte written through it
// for which the shouldEscape callback returns true. Other bytes pass through unchanged.
//
// Write and WriteString report the number of input bytes consumed, as io.Writer requires,
// not the number of bytes emitted to the underlying writer.
type EscapingWriter struct {
	w            io.Writer
	shouldEscape func(c byte) bool
}

// NewEscapingWriter creates a new EscapingWriter wrapping the given writer.
// If shouldEscape is nil, [grammar.ShouldEscapeQueryChar] is used.
func NewEscapingWriter(w io.Writer, shouldEscape func(c byte) bool) *EscapingWriter {
	if shouldEscape == nil {
		shouldEscape = grammar.ShouldEscapeQueryChar
	}
	return &EscapingWriter{w: w, shouldEscape: shouldEscape}
}

// Write implements io.Writer.
func (ew *EscapingWriter) Write(p []byte) (int, error) {
	consumed, _, err := escape(ew.w, p, ew.shouldEscape)
	return consumed, errtrace.Wrap(err)
}

// WriteString implements io.StringWriter.
func (ew *EscapingWriter) WriteString(s string) (int, error) {
	consumed, _, err := escape(ew.w, s, ew.shouldEscape)
	return consumed, errtrace.Wrap(err)
}

// EscapeTo writes s to w percent-encoding every byte matched by shouldEscape.
// It returns the number of bytes written to w.
// If shouldEscape is nil, [grammar.ShouldEscapeQueryChar] is used.
func EscapeTo[T constraints.Byteseq](w io.Writer, s T, shouldEscape func(c byte) bool) (int, error) {
	if shouldEscape == nil {
		shouldEscape = grammar.ShouldEscapeQueryChar
	}
	_, written, err := escape(w, s, shouldEscape)
	return written, errtrace.Wrap(err)
}

// escape streams s to w. Runs of bytes that don't need escaping are written with a single call.
func escape[T constraints.Byteseq](w io.Writer, s T, shouldEscape func(c byte) bool) (consumed, written int, err error) {
	start := 0
	for i := 0; i < len(s); i++ {
		if !shouldEscape(s[i]) {
			continue
		}

		if start < i {
			n, err := writeChunk(w, s[start:i])
			written += n
			if err != nil {
				return start + n, written, errtrace.Wrap(err)
			}
		}

		triplet := grammar.EscapeByte(s[i])
		n, err := w.Write(triplet[:])
		written += n
		if err != nil {
			return i, written, errtrace.Wrap(err)
		}
		start = i + 1
	}

	if start < len(s) {
		n, err := writeChunk(w, s[start:])
		written += n
		if err != nil {
			return start + n, written, errtrace.Wrap(err)
		}
	}
	return len(s), written, nil
}

func writeChunk[T constraints.Byteseq](w io.Writer, s T) (int, error) {
	switch v := any(s).(type) {
	case string:
		return errtrace.Wrap2(io.WriteString(w, v))
	case []byte:
		return errtrace.Wrap2(w.Write(v))
	default:
		return errtrace.Wrap2(w.Write([]byte(s)))
	}
}
