// Package grammar implements BIP 21 / RFC 3986 character rules and ABNF grammar used to
// validate and percent-encode payment URI components.
package grammar

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"

	"github.com/paycodes/bip21/internal/constraints"
	"github.com/paycodes/bip21/internal/errorutil"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

func newMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

func lit(c byte) abnf.Operator { return abnf.Literal(string(c), []byte{c}) }

func lits(s string) []abnf.Operator {
	ops := make([]abnf.Operator, 0, len(s))
	for i := range len(s) {
		ops = append(ops, lit(s[i]))
	}
	return ops
}

// BIP 21 ABNF:
//
//	labelparam     = "label=" *qchar
//	messageparam   = "message=" *qchar
//	otherparam     = qchar *qchar [ "=" *qchar ]
//
// where qchar corresponds to valid characters of an RFC 3986 URI query component,
// excluding the "=" and "&" characters.
var (
	alpha = abnf.AltFirst("ALPHA",
		abnf.Range("%x41-5A", []byte{0x41}, []byte{0x5A}),
		abnf.Range("%x61-7A", []byte{0x61}, []byte{0x7A}),
	)
	digit  = abnf.Range("DIGIT", []byte{0x30}, []byte{0x39})
	hexdig = abnf.AltFirst("HEXDIG",
		digit,
		abnf.Range("%x41-46", []byte{0x41}, []byte{0x46}),
		abnf.Range("%x61-66", []byte{0x61}, []byte{0x66}),
	)
	pctEncoded = abnf.Concat("pct-encoded", lit('%'), hexdig, hexdig)
	unreserved = abnf.AltFirst("unreserved", alpha, append([]abnf.Operator{digit}, lits("-._~")...)...)
	qchar      = abnf.AltFirst("qchar", unreserved, append([]abnf.Operator{pctEncoded}, lits("!$'()*+,;:@/?")...)...)
	qvalue     = abnf.Repeat0Inf("qvalue", qchar)
	qkey       = abnf.Repeat1Inf("qkey", qchar)
)

// ParseQueryValue parses s as a BIP 21 query value (*qchar) in its percent-encoded form.
func ParseQueryValue[T constraints.Byteseq](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(qvalue, s))
}

// ParseParamKey parses s as a BIP 21 parameter name (1*qchar).
func ParseParamKey[T constraints.Byteseq](s T) (*abnf.Node, error) {
	return errtrace.Wrap2(parse(qkey, s))
}

func parse[T constraints.Byteseq](op abnf.Operator, s T) (*abnf.Node, error) {
	if len(s) == 0 {
		return nil, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return nil, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if n == nil {
		return nil, errtrace.Wrap(newMalformedInputErr("no match"))
	}
	if nl, il := n.Len(), len(s); nl < il {
		return nil, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return n, nil
}

// IsQueryValue checks whether s is a well-formed percent-encoded BIP 21 query value.
// Empty input is a valid value.
func IsQueryValue[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return true
	}
	_, err := ParseQueryValue(s)
	return err == nil
}

// IsParamKey checks whether s can be used as a BIP 21 parameter name as is, without escaping.
func IsParamKey[T constraints.Byteseq](s T) bool {
	_, err := ParseParamKey(s)
	return err == nil
}
