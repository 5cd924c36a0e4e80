package grammar_test

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"github.com/paycodes/bip21/internal/grammar"
)

func TestShouldEscapeQueryChar(t *testing.T) {
	t.Parallel()

	const exempt = "-._~!$'()*+,;:@/?"

	for c := range 256 {
		b := byte(c)
		want := !(('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') || ('0' <= b && b <= '9') ||
			strings.IndexByte(exempt, b) >= 0)
		if got := grammar.ShouldEscapeQueryChar(b); got != want {
			t.Errorf("grammar.ShouldEscapeQueryChar(%#x) = %v, want %v", b, got, want)
		}
		if got := grammar.IsQueryCharUnreserved(b); got == want {
			t.Errorf("grammar.IsQueryCharUnreserved(%#x) = %v, want %v", b, got, !want)
		}
	}

	for _, c := range []byte("&=%# \"<>[]\\^`{|}") {
		if !grammar.ShouldEscapeQueryChar(c) {
			t.Errorf("grammar.ShouldEscapeQueryChar(%q) = false, want true", c)
		}
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		cb   func(byte) bool
		want string
	}{
		{"empty", "", nil, ""},
		{"no escape", "Lunch-0.01_~!$'()*+,;:@/?", nil, "Lunch-0.01_~!$'()*+,;:@/?"},
		{"separators", "a=b&c", nil, "a%3Db%26c"},
		{"space", "Hi there!", nil, "Hi%20there!"},
		{"percent", "100%", nil, "100%25"},
		{"already escaped", "abc%2B", nil, "abc%252B"},
		{"utf-8", "été", nil, "%C3%A9t%C3%A9"},
		{"escape some", "a+b c", func(c byte) bool { return c == '+' }, "a%2Bb c"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Escape(c.str, c.cb), c.want; got != want {
				t.Errorf("grammar.Escape(%q, %p) = %q, want %q", c.str, c.cb, got, want)
			}
		})
	}
}

func TestUnescape(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		str  string
		want string
	}{
		{"empty", "", ""},
		{"no unescape", "abc%ax%", "abc%ax%"},
		{"truncated", "abc%4", "abc%4"},
		{"trailing triplet", "abc%41", "abcA"},
		{"unescape all", "abc%E4%b8%96", "abc世"},
		{"plus kept", "a+b", "a+b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got, want := grammar.Unescape(c.str), c.want; got != want {
				t.Errorf("grammar.Unescape(%q) = %q, want %q", c.str, got, want)
			}
		})
	}
}

func TestEscape_RoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"plain",
		"Hi there!",
		"50% off / today?",
		"été 世界 \U0001F600",
		string([]byte{0x00, 0x7f, 0x80, 0xff}),
		"tab\tnew\nline",
	}

	for _, in := range inputs {
		esc := grammar.Escape(in, nil)
		if got := grammar.Unescape(esc); got != in {
			t.Errorf("grammar.Unescape(grammar.Escape(%q)) = %q, want %q", in, got, in)
		}
		if got, err := url.PathUnescape(esc); err != nil || got != in {
			t.Errorf("url.PathUnescape(%q) = (%q, %v), want (%q, nil)", esc, got, err, in)
		}
		if !grammar.IsQueryValue(esc) {
			t.Errorf("grammar.IsQueryValue(%q) = false, want true", esc)
		}
	}
}

func BenchmarkEscape(b *testing.B) {
	cases := []struct {
		name    string
		in, out any
	}{
		{"string", "Hi there!", "Hi%20there!"},
		{"bytes", []byte("a=b&c"), []byte("a%3Db%26c")},
	}

	b.ResetTimer()
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				switch in := c.in.(type) {
				case string:
					want, _ := c.out.(string)
					if got := grammar.Escape(in, nil); got != want {
						b.Errorf("grammar.Escape(%q, nil) = %q, want %q", in, got, want)
					}
				case []byte:
					want, _ := c.out.([]byte)
					if got := grammar.Escape(in, nil); !bytes.Equal(got, want) {
						b.Errorf("grammar.Escape(%q, nil) = %q, want %q", in, got, want)
					}
				}
			}
		})
	}
}
