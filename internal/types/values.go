package types

import (
	"iter"
	"maps"
	"slices"
)

// Values maps a parameter key to a list of values.
// Keys are kept exactly as given, BIP 21 parameter names are case-sensitive.
type Values map[string][]string

// Get returns values associated with the given key.
func (vals Values) Get(key string) []string { return vals[key] }

// Set sets the key to value. It replaces any existing values.
func (vals Values) Set(key, value string) Values {
	vals[key] = []string{value}
	return vals
}

// Append adds value to the values of the key.
func (vals Values) Append(key, value string) Values {
	vals[key] = append(vals[key], value)
	return vals
}

// All iterates over all key-value pairs.
// Keys are visited in lexicographical order, values of one key in insertion order.
func (vals Values) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range slices.Sorted(maps.Keys(vals)) {
			for _, v := range vals[k] {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// SerializeParams yields the same pairs as [Values.All] with untyped keys and values.
func (vals Values) SerializeParams() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for k, v := range vals.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}
