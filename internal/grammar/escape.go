package grammar

import (
	"github.com/paycodes/bip21/internal/constraints"
)

// Unescape unescapes s by converting each 3-byte encoded substring of the form "% HEXDIG HEXDIG" into the hex-decoded byte.
// Malformed triplets are kept as is.
func Unescape[T constraints.Byteseq](s T) T {
	if len(s) == 0 {
		return s
	}
	return T(AppendUnescaped(make([]byte, 0, len(s)), s))
}

// AppendUnescaped appends the unescaped form of s to dst and returns the extended buffer.
func AppendUnescaped[T constraints.Byteseq](dst []byte, s T) []byte {
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && ishex(s[i+1]) && ishex(s[i+2]) {
			dst = append(dst, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		} else {
			dst = append(dst, s[i])
		}
	}
	return dst
}

// Escape escapes s by replacing each char matched by shouldEscape callback to the hex form "% HEXDIG HEXDIG".
// If shouldEscape is nil, [ShouldEscapeQueryChar] is used.
func Escape[T constraints.Byteseq](s T, shouldEscape func(c byte) bool) T {
	if len(s) == 0 {
		return s
	}
	return T(AppendEscaped(make([]byte, 0, len(s)), s, shouldEscape))
}

// AppendEscaped appends the escaped form of s to dst and returns the extended buffer.
func AppendEscaped[T constraints.Byteseq](dst []byte, s T, shouldEscape func(c byte) bool) []byte {
	if shouldEscape == nil {
		shouldEscape = ShouldEscapeQueryChar
	}
	for i := 0; i < len(s); i++ {
		if shouldEscape(s[i]) {
			dst = append(dst, '%', upperhex[s[i]>>4], upperhex[s[i]&15])
		} else {
			dst = append(dst, s[i])
		}
	}
	return dst
}

// EscapeByte returns the "% HEXDIG HEXDIG" form of c using upper-case hex digits.
func EscapeByte(c byte) [3]byte { return [3]byte{'%', upperhex[c>>4], upperhex[c&15]} }

const upperhex = "0123456789ABCDEF"

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// IsAlphanumChar checks alphanum rule.
func IsAlphanumChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9'
}

// queryUnreservedChars lists non-alphanumeric chars allowed unescaped inside BIP 21 query values.
//
// RFC 3986 Appendix A:
//
//	query         = *( pchar / "/" / "?" )
//	pchar         = unreserved / pct-encoded / sub-delims / ":" / "@"
//	unreserved    = ALPHA / DIGIT / "-" / "." / "_" / "~"
//	sub-delims    = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="
//
// BIP 21 takes "&" and "=" as its own separators, so they are excluded.
var queryUnreservedChars = [...]byte{
	// unreserved
	'-', '.', '_', '~',
	// sub-delims without "&" and "="
	'!', '$', '\'', '(', ')', '*', '+', ',', ';',
	// pchar
	':', '@',
	// query
	'/', '?',
}

var queryCharTable = func() (t [256]bool) {
	for c := range 256 {
		t[c] = IsAlphanumChar(byte(c))
	}
	for _, c := range queryUnreservedChars {
		t[c] = true
	}
	return t
}()

// IsQueryCharUnreserved checks on BIP 21 qchar rule excluding pct-encoded.
func IsQueryCharUnreserved(c byte) bool { return queryCharTable[c] }

// ShouldEscapeQueryChar reports whether the given byte must be percent-encoded inside a BIP 21 query value.
func ShouldEscapeQueryChar(c byte) bool { return !queryCharTable[c] }
