package uri

import "github.com/paycodes/bip21/internal/grammar"

// ShouldEscape reports whether the given byte must be percent-encoded inside a BIP 21 parameter value.
func ShouldEscape(c byte) bool { return grammar.ShouldEscapeQueryChar(c) }

// Escape percent-encodes s as a BIP 21 parameter value.
func Escape(s string) string { return grammar.Escape(s, grammar.ShouldEscapeQueryChar) }

// Unescape decodes percent-encoded triplets of s. Malformed triplets are kept as is.
func Unescape(s string) string { return grammar.Unescape(s) }
