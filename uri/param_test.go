package uri_test

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/paycodes/bip21/uri"
)

func TestParam(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name        string
		param       *uri.Param
		wantKind    uri.ParamKind
		wantDecoded string
		wantEncoded string
	}{
		{"nil", nil, uri.ParamString, "", ""},
		{"string", uri.StringParam("Hi there!"), uri.ParamString, "Hi there!", "Hi%20there!"},
		{"string utf-8", uri.StringParam("Café ☕"), uri.ParamString, "Café ☕", "Caf%C3%A9%20%E2%98%95"},
		{"string separators", uri.StringParam("a=1&b=2"), uri.ParamString, "a=1&b=2", "a%3D1%26b%3D2"},
		{"bytes", uri.BytesParam([]byte{'a', 0x00, 0xff}), uri.ParamBytes, "a\x00\xff", "a%00%FF"},
		{"encoded", uri.MustEncodedParam("Hi%20there%21"), uri.ParamEncoded, "Hi there!", "Hi%20there!"},
		{"encoded lower hex", uri.MustEncodedParam("%c3%a9"), uri.ParamEncoded, "é", "%C3%A9"},
		{"encoded redundant", uri.MustEncodedParam("%41%7e%2F"), uri.ParamEncoded, "A~/", "A~/"},
		{"encoded bytes", uri.MustEncodedParam([]byte("a%26b")), uri.ParamEncoded, "a&b", "a%26b"},
		{"encoded empty", uri.MustEncodedParam(""), uri.ParamEncoded, "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.param.Kind(); got != c.wantKind {
				t.Errorf("p.Kind() = %v, want %v", got, c.wantKind)
			}
			if got := c.param.String(); got != c.wantDecoded {
				t.Errorf("p.String() = %q, want %q", got, c.wantDecoded)
			}
			if got := c.param.Bytes(); !bytes.Equal(got, []byte(c.wantDecoded)) {
				t.Errorf("p.Bytes() = %q, want %q", got, c.wantDecoded)
			}
			if got := c.param.Render(nil); got != c.wantEncoded {
				t.Errorf("p.Render(nil) = %q, want %q", got, c.wantEncoded)
			}
			if got, want := c.param.IsZero(), c.wantDecoded == ""; got != want {
				t.Errorf("p.IsZero() = %v, want %v", got, want)
			}

			var buf bytes.Buffer
			n, err := c.param.RenderTo(&buf, nil)
			if err != nil {
				t.Fatalf("p.RenderTo(buf, nil) error = %v, want nil", err)
			}
			if n != len(c.wantEncoded) || buf.String() != c.wantEncoded {
				t.Errorf("p.RenderTo(buf, nil) = (%d, %q), want (%d, %q)", n, buf.String(), len(c.wantEncoded), c.wantEncoded)
			}
		})
	}
}

func TestEncodedParam_Malformed(t *testing.T) {
	t.Parallel()

	for _, src := range []string{"a=b", "a&b", "a b", "100%", "%zz", "#x"} {
		p, err := uri.EncodedParam(src)
		if !errors.Is(err, uri.ErrMalformedInput) {
			t.Errorf("uri.EncodedParam(%q) error = %v, want %v", src, err, uri.ErrMalformedInput)
		}
		if p != nil {
			t.Errorf("uri.EncodedParam(%q) = %v, want nil", src, p)
		}
	}

	r := recoverPanic(func() { uri.MustEncodedParam("a=b") })
	if err, ok := r.(error); !ok || !errors.Is(err, uri.ErrMalformedInput) {
		t.Errorf("uri.MustEncodedParam(%q) panic = %v, want %v", "a=b", r, uri.ErrMalformedInput)
	}
}

func TestParam_Equal(t *testing.T) {
	t.Parallel()

	p := uri.StringParam("a b")
	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"same", p, true},
		{"string", uri.StringParam("a b"), true},
		{"bytes", uri.BytesParam([]byte("a b")), true},
		{"encoded", uri.MustEncodedParam("a%20b"), true},
		{"value", *uri.StringParam("a b"), true},
		{"different", uri.StringParam("a+b"), false},
		{"nil", (*uri.Param)(nil), false},
		{"other type", "a b", false},
	}

	for _, c := range cases {
		if got := p.Equal(c.val); got != c.want {
			t.Errorf("%s: p.Equal(%v) = %v, want %v", c.name, c.val, got, c.want)
		}
	}
	if !(*uri.Param)(nil).Equal((*uri.Param)(nil)) {
		t.Error("nil.Equal(nil) = false, want true")
	}
}

func TestParam_Format(t *testing.T) {
	t.Parallel()

	p := uri.MustEncodedParam("Hi%20there")
	cases := []struct {
		format string
		want   string
	}{
		{"%s", "Hi there"},
		{"%+s", "Hi%20there"},
		{"%q", `"Hi there"`},
		{"%v", "Hi there"},
		{"%+v", "Hi%20there"},
	}
	for _, c := range cases {
		if got := fmt.Sprintf(c.format, p); got != c.want {
			t.Errorf("fmt.Sprintf(%q, p) = %q, want %q", c.format, got, c.want)
		}
	}
	if got, want := fmt.Sprint(p), "Hi there"; got != want {
		t.Errorf("fmt.Sprint(p) = %q, want %q", got, want)
	}
}

func TestParam_Text(t *testing.T) {
	t.Parallel()

	text, err := uri.MustEncodedParam("a%26b").MarshalText()
	if err != nil {
		t.Fatalf("p.MarshalText() error = %v, want nil", err)
	}
	if got, want := string(text), "a&b"; got != want {
		t.Errorf("p.MarshalText() = %q, want %q", got, want)
	}

	var p uri.Param
	if err := p.UnmarshalText([]byte("x y")); err != nil {
		t.Fatalf("p.UnmarshalText() error = %v, want nil", err)
	}
	if got, want := p.Render(nil), "x%20y"; got != want {
		t.Errorf("p.Render(nil) = %q, want %q", got, want)
	}
	if got, want := p.Kind().String(), "string"; got != want {
		t.Errorf("p.Kind().String() = %q, want %q", got, want)
	}
}
