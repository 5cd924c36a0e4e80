package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"braces.dev/errtrace"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/paycodes/bip21/internal/errorutil"
	"github.com/paycodes/bip21/internal/grammar"
	"github.com/paycodes/bip21/internal/ioutil"
	"github.com/paycodes/bip21/internal/types"
	"github.com/paycodes/bip21/internal/util"
)

// Scheme is the BIP 21 URI scheme.
const Scheme = "bitcoin"

// URI is a BIP 21 payment request.
//
// The E type parameter supplies extra parameters, use [NoExtras] when there are none.
type URI[E ParamsSerializer] struct {
	// Payment address. Required.
	Address Address
	// Amount to pay. Rendered in BTC.
	Amount *btcutil.Amount
	// Label for the address, e.g. name of the receiver.
	Label *Param
	// Message that describes the transaction to the user.
	Message *Param
	// Additional parameters, rendered after the standard ones.
	Extras E
}

// New creates a URI without extra parameters.
func New(addr Address) *URI[NoExtras] {
	return &URI[NoExtras]{Address: addr}
}

// WithExtras creates a URI with the given extra parameters.
func WithExtras[E ParamsSerializer](addr Address, extras E) *URI[E] {
	return &URI[E]{Address: addr, Extras: extras}
}

// RenderTo writes the URI to the provided writer.
//
// The fields are rendered in order: amount, label, message, then extra parameters.
// [RenderOptions.Compact] is passed to the address only.
// Rendering panics with [*KeyError] if an extra parameter key contains "=".
// On write error the writer may contain a partially rendered URI.
func (u *URI[E]) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString(Scheme + ":") //nolint:errcheck
	if u.Address != nil {
		cw.Call(func(w io.Writer) (int, error) { return errtrace.Wrap2(u.Address.RenderTo(w, opts)) })
	}

	fw := newFieldWriter(cw)
	if u.Amount != nil {
		fw.writeField("amount", renderAmount(*u.Amount))
	}
	fw.maybeWriteParam("label", u.Label)
	fw.maybeWriteParam("message", u.Message)
	for k, v := range u.extras() {
		fw.writeField(k, escapeDisplay(v))
		if cw.Err() != nil {
			break
		}
	}

	return errtrace.Wrap2(cw.Result())
}

func (u *URI[E]) extras() iter.Seq2[any, any] {
	if any(u.Extras) == nil {
		return func(func(any, any) bool) {}
	}
	if seq := u.Extras.SerializeParams(); seq != nil {
		return seq
	}
	return func(func(any, any) bool) {}
}

// Render returns the string representation of the URI.
func (u *URI[E]) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URI.
func (u *URI[E]) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URI.
//
//   - %s and %v render the URI, %#s and %#v render the QR-code-optimized (compact) form;
//   - %+s and %+v render directly into the formatter state;
//   - %q prints the quoted URI.
//
// Note that fmt recovers panics raised by Format, so a [*KeyError] is reported
// as a "%!s(PANIC=...)" marker in the output instead of crashing.
func (u *URI[E]) Format(f fmt.State, verb rune) {
	if u == nil {
		fmt.Fprint(f, "<nil>")
		return
	}

	opts := &RenderOptions{Compact: f.Flag('#')}
	switch verb {
	case 's', 'v':
		if f.Flag('+') {
			u.RenderTo(f, opts) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.Render(opts))
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.Render(opts)))
		return
	default:
		// URI value has no methods, so fmt prints the plain struct.
		fmt.Fprintf(f, fmt.FormatString(f, verb), *u)
		return
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI[E]) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// Validate checks that the URI can be rendered: the address is set and valid, and every
// extra parameter key is a valid BIP 21 parameter name.
// Addresses implementing IsValid() bool are checked with it, others must render to a non-empty text.
// It calls SerializeParams of the extras.
func (u *URI[E]) Validate() error {
	if u == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URI"))
	}

	var errs []error
	if !isValidAddr(u.Address) {
		errs = append(errs, errorutil.NewInvalidArgumentError("empty address"))
	}
	for k := range u.extras() {
		if key := fmt.Sprint(k); !grammar.IsParamKey(key) {
			errs = append(errs, errorutil.NewInvalidArgumentError("invalid extra parameter key %q", key))
		}
	}
	if len(errs) > 0 {
		return errtrace.Wrap(errorutil.JoinPrefix("invalid URI:", errs...))
	}
	return nil
}

// IsValid checks whether the URI can be rendered, see [URI.Validate].
func (u *URI[E]) IsValid() bool { return u.Validate() == nil }

func isValidAddr(a Address) bool {
	if a == nil {
		return false
	}
	if v, ok := a.(types.ValidFlag); ok {
		return v.IsValid()
	}
	return a.Render(nil) != ""
}

// Equal compares this URI with another: addresses by their rendered text,
// amounts by value, label and message by decoded values, extras pair by pair in order
// by their rendered form.
func (u *URI[E]) Equal(val any) bool {
	var other *URI[E]
	switch v := val.(type) {
	case URI[E]:
		other = &v
	case *URI[E]:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return renderAddr(u.Address) == renderAddr(other.Address) &&
		eqAmount(u.Amount, other.Amount) &&
		u.Label.Equal(other.Label) &&
		u.Message.Equal(other.Message) &&
		slices.Equal(u.extraPairs(), other.extraPairs())
}

func renderAddr(a Address) string {
	if a == nil {
		return ""
	}
	return a.Render(nil)
}

func eqAmount(a, b *btcutil.Amount) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (u *URI[E]) extraPairs() []string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	var kvs []string
	for k, v := range u.extras() {
		sb.Reset()
		escapeDisplay(v)(sb) //nolint:errcheck
		kvs = append(kvs, fmt.Sprint(k), sb.String())
	}
	return kvs
}
