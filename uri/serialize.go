package uri

import (
	"iter"

	"github.com/paycodes/bip21/internal/types"
)

// ParamsSerializer is implemented by the extras of a [URI] to contribute additional
// key-value parameters, rendered after amount, label and message in the yielded order.
//
// Keys and values are rendered with [fmt.Fprint], so strings, [fmt.Stringer]s,
// numbers and other printable values are accepted.
// Values are percent-encoded by the renderer, implementations yield raw text.
// Keys are written as is and must not contain "=", rendering panics with [*KeyError] otherwise.
//
// SerializeParams is called once per render.
type ParamsSerializer interface {
	SerializeParams() iter.Seq2[any, any]
}

// NoExtras is an empty set of extra parameters.
type NoExtras struct{}

// SerializeParams implements [ParamsSerializer].
func (NoExtras) SerializeParams() iter.Seq2[any, any] {
	return func(func(any, any) bool) {}
}

// KV is a key-value pair of an extra parameter.
type KV struct {
	Key, Value any
}

// KVs is an ordered list of extra parameters.
type KVs []KV

// SerializeParams implements [ParamsSerializer].
func (kvs KVs) SerializeParams() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, kv := range kvs {
			if !yield(kv.Key, kv.Value) {
				return
			}
		}
	}
}

// Values represents extra parameters as a multi-value map.
// Keys are rendered as given, in lexicographical order.
type Values = types.Values

// SerializeFunc adapts an iterator function to [ParamsSerializer].
type SerializeFunc iter.Seq2[any, any]

// SerializeParams implements [ParamsSerializer].
func (fn SerializeFunc) SerializeParams() iter.Seq2[any, any] { return iter.Seq2[any, any](fn) }

// Pairs adapts a typed key-value sequence to [ParamsSerializer].
func Pairs[K, V any](seq iter.Seq2[K, V]) SerializeFunc {
	return func(yield func(any, any) bool) {
		for k, v := range seq {
			if !yield(k, v) {
				return
			}
		}
	}
}
