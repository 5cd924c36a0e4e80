package uri

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/paycodes/bip21/internal/constraints"
	"github.com/paycodes/bip21/internal/grammar"
	"github.com/paycodes/bip21/internal/ioutil"
	"github.com/paycodes/bip21/internal/util"
)

// ParamKind describes how the value of a [Param] is stored.
type ParamKind uint8

const (
	// ParamString is a raw, not yet percent-encoded text.
	ParamString ParamKind = iota
	// ParamBytes is a raw, not yet percent-encoded byte sequence.
	ParamBytes
	// ParamEncoded is a view over an already percent-encoded source, decoded lazily.
	ParamEncoded
)

func (k ParamKind) String() string {
	switch k {
	case ParamString:
		return "string"
	case ParamBytes:
		return "bytes"
	case ParamEncoded:
		return "encoded"
	default:
		return "ParamKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Param is a value of a label, message or another parameter of the payment URI.
//
// The value can originate from a parsed URI (percent-encoded, see [EncodedParam])
// or from the user input (see [StringParam], [BytesParam]).
// Regardless of its origin, it is always rendered percent-encoded.
// Byte slices passed to the constructors are not copied.
type Param struct {
	kind ParamKind
	str  string
	buf  []byte
}

// StringParam creates a parameter from the raw text s.
func StringParam(s string) *Param { return &Param{kind: ParamString, str: s} }

// BytesParam creates a parameter from the raw bytes b.
func BytesParam(b []byte) *Param { return &Param{kind: ParamBytes, buf: b} }

// EncodedParam creates a parameter from the percent-encoded source src (string or []byte),
// e.g. a value sliced from a parsed URI.
// The source must match the BIP 21 *qchar rule, otherwise an error wrapping [ErrMalformedInput] is returned.
func EncodedParam[T constraints.Byteseq](src T) (*Param, error) {
	if len(src) > 0 {
		if _, err := grammar.ParseQueryValue(src); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}

	p := &Param{kind: ParamEncoded}
	switch v := any(src).(type) {
	case string:
		p.str = v
	case []byte:
		p.buf = v
	default:
		p.str = string(src)
	}
	return p, nil
}

// MustEncodedParam is like [EncodedParam] but panics on error.
func MustEncodedParam[T constraints.Byteseq](src T) *Param { return util.Must2(EncodedParam(src)) }

// Kind returns the storage kind of the parameter.
func (p *Param) Kind() ParamKind {
	if p == nil {
		return ParamString
	}
	return p.kind
}

// IsZero reports whether the parameter value is empty.
func (p *Param) IsZero() bool { return p == nil || len(p.str) == 0 && len(p.buf) == 0 }

// Bytes returns the decoded parameter value.
// For parameters created with [BytesParam] the original slice is returned.
func (p *Param) Bytes() []byte {
	if p == nil {
		return nil
	}

	switch p.kind {
	case ParamEncoded:
		if p.buf != nil {
			return grammar.Unescape(p.buf)
		}
		return []byte(grammar.Unescape(p.str))
	case ParamBytes:
		return p.buf
	default:
		return []byte(p.str)
	}
}

// String returns the decoded parameter value as text.
func (p *Param) String() string {
	if p == nil {
		return ""
	}

	switch p.kind {
	case ParamEncoded:
		if p.buf != nil {
			return string(grammar.Unescape(p.buf))
		}
		return grammar.Unescape(p.str)
	case ParamBytes:
		return string(p.buf)
	default:
		return p.str
	}
}

// RenderTo writes the percent-encoded parameter value to the provided writer.
func (p *Param) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	if p == nil {
		return 0, nil
	}

	switch p.kind {
	case ParamEncoded:
		// Decode first, so the output is canonical regardless of the source hex case
		// or redundantly escaped chars.
		buf := util.GetBytesBuffer()
		defer util.FreeBytesBuffer(buf)

		var dec []byte
		if p.buf != nil {
			dec = grammar.AppendUnescaped(buf.AvailableBuffer(), p.buf)
		} else {
			dec = grammar.AppendUnescaped(buf.AvailableBuffer(), p.str)
		}
		return errtrace.Wrap2(ioutil.EscapeTo(w, dec, grammar.ShouldEscapeQueryChar))
	case ParamBytes:
		return errtrace.Wrap2(ioutil.EscapeTo(w, p.buf, grammar.ShouldEscapeQueryChar))
	default:
		return errtrace.Wrap2(ioutil.EscapeTo(w, p.str, grammar.ShouldEscapeQueryChar))
	}
}

// Render returns the percent-encoded parameter value.
func (p *Param) Render(opts *RenderOptions) string {
	if p == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// Equal compares decoded values of the parameters.
func (p *Param) Equal(val any) bool {
	var other *Param
	switch v := val.(type) {
	case Param:
		other = &v
	case *Param:
		other = v
	default:
		return false
	}

	if p == other {
		return true
	} else if p == nil || other == nil {
		return false
	}
	return bytes.Equal(p.Bytes(), other.Bytes())
}

// Format implements fmt.Formatter.
//
//   - %s and %v print the decoded value, %+s and %+v print the percent-encoded value;
//   - %q prints the decoded value quoted.
func (p *Param) Format(f fmt.State, verb rune) {
	switch verb {
	case 's', 'v':
		if f.Flag('+') {
			p.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, p.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
		return
	default:
		type hideMethods Param
		type Param hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Param)(p))
		return
	}
}

// MarshalText implements [encoding.TextMarshaler], producing the decoded value.
func (p *Param) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], storing a copy of the raw text.
func (p *Param) UnmarshalText(text []byte) error {
	*p = Param{kind: ParamString, str: string(text)}
	return nil
}
