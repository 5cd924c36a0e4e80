// Package types contains common types used across the bip21 packages.
package types

import "io"

// Renderer is an interface that is used to render a type to a string or a writer.
type Renderer interface {
	// Render renders the type to a string with the given options.
	Render(opts *RenderOptions) string
	// RenderTo renders the type to a writer with the given options.
	RenderTo(w io.Writer, opts *RenderOptions) (int, error)
}

// RenderOptions is a struct that is used to pass options to rendering methods.
type RenderOptions struct {
	// Compact is a boolean flag that is used to render a type in compact form,
	// suitable for QR codes.
	Compact bool `json:"compact,omitempty"`
}

// IsCompact reports whether opts requests compact rendering. Nil options mean normal form.
func (opts *RenderOptions) IsCompact() bool { return opts != nil && opts.Compact }

// ValidFlag is implemented by values that can report their own validity.
type ValidFlag interface {
	IsValid() bool
}
