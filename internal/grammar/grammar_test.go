package grammar_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/paycodes/bip21/internal/grammar"
)

func TestParseQueryValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", grammar.ErrEmptyInput},
		{"plain", "Lunch", nil},
		{"exempt chars", "a-b.c_d~e!f$g'h(i)j*k+l,m;n:o@p/q?r", nil},
		{"encoded", "Hi%20there%21", nil},
		{"lower hex", "%c3%a9", nil},
		{"equal sign", "a=b", grammar.ErrMalformedInput},
		{"ampersand", "a&b", grammar.ErrMalformedInput},
		{"space", "a b", grammar.ErrMalformedInput},
		{"broken triplet", "a%2", grammar.ErrMalformedInput},
		{"bad hex", "a%zz", grammar.ErrMalformedInput},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			node, err := grammar.ParseQueryValue(c.input)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("grammar.ParseQueryValue(%q) error = %v, want %v\ndiff (-got +want):\n%v",
					c.input, err, c.wantErr, diff,
				)
			}
			if c.wantErr == nil {
				if got := node.String(); got != c.input {
					t.Errorf("grammar.ParseQueryValue(%q) = %q, want %q", c.input, got, c.input)
				}
			}
			if got, want := grammar.IsQueryValue(c.input), c.wantErr == nil || c.input == ""; got != want {
				t.Errorf("grammar.IsQueryValue(%q) = %v, want %v", c.input, got, want)
			}
		})
	}
}

func TestIsParamKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"foo", true},
		{"req-foo", true},
		{"lightning", true},
		{"a=b", false},
		{"a&b", false},
		{"a b", false},
	}

	for _, c := range cases {
		if got := grammar.IsParamKey(c.key); got != c.want {
			t.Errorf("grammar.IsParamKey(%q) = %v, want %v", c.key, got, c.want)
		}
		node, err := grammar.ParseParamKey(c.key)
		if (err == nil) != c.want {
			t.Errorf("grammar.ParseParamKey(%q) error = %v, want error %v", c.key, err, !c.want)
		}
		if err == nil && node.String() != c.key {
			t.Errorf("grammar.ParseParamKey(%q) = %q, want %q", c.key, node.String(), c.key)
		}
	}
}

func TestError_Grammar(t *testing.T) {
	t.Parallel()

	_, err := grammar.ParseQueryValue("a=b")
	var gerr interface{ Grammar() bool }
	if !errors.As(err, &gerr) || !gerr.Grammar() {
		t.Errorf("grammar.ParseQueryValue(%q) error = %v, want grammar error", "a=b", err)
	}
}
