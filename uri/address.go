package uri

//go:generate go tool mockgen -source=address.go -destination=urimock/address.go -package=urimock Address

import (
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/paycodes/bip21/internal/errorutil"
	"github.com/paycodes/bip21/internal/types"
)

// RenderOptions contains options for rendering URIs and their components.
// [RenderOptions.Compact] selects the QR-code-optimized form of the address.
type RenderOptions = types.RenderOptions

// Address is the payment destination rendered right after the scheme.
// The renderer never inspects nor escapes the address text.
type Address interface {
	types.Renderer
}

// Addr is an opaque address rendered verbatim in both normal and compact forms.
type Addr string

// RenderTo writes the address to the provided writer.
func (a Addr) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(a)))
}

// Render returns the address text.
func (a Addr) Render(_ *RenderOptions) string { return string(a) }

// IsValid reports whether the address is not empty.
func (a Addr) IsValid() bool { return a != "" }

// BTCAddress adapts [btcutil.Address] to [Address].
//
// Compact form upper-cases bech32 and bech32m addresses (segwit v0 and taproot),
// which lets QR encoders switch to the denser alphanumeric mode.
// Base58 addresses are case-sensitive and always rendered as is.
type BTCAddress struct {
	btcutil.Address
}

// ParseBTCAddress decodes s as a Bitcoin address of the given network.
func ParseBTCAddress(s string, net *chaincfg.Params) (BTCAddress, error) {
	addr, err := btcutil.DecodeAddress(s, net)
	if err != nil {
		return BTCAddress{}, errtrace.Wrap(errorutil.NewInvalidArgumentError(err))
	}
	if !addr.IsForNet(net) {
		return BTCAddress{}, errtrace.Wrap(errorutil.NewInvalidArgumentError("address %q is not for network %s", s, net.Name))
	}
	return BTCAddress{addr}, nil
}

// RenderTo writes the encoded address to the provided writer.
func (a BTCAddress) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if a.Address == nil {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, a.Render(opts)))
}

// Render returns the encoded address.
func (a BTCAddress) Render(opts *RenderOptions) string {
	if a.Address == nil {
		return ""
	}
	s := a.EncodeAddress()
	if opts.IsCompact() && a.IsSegwit() {
		s = strings.ToUpper(s)
	}
	return s
}

// IsValid reports whether the address is set.
func (a BTCAddress) IsValid() bool { return a.Address != nil }

// IsSegwit reports whether the address is encoded with bech32 or bech32m.
func (a BTCAddress) IsSegwit() bool {
	switch a.Address.(type) {
	case *btcutil.AddressWitnessPubKeyHash, *btcutil.AddressWitnessScriptHash, *btcutil.AddressTaproot:
		return true
	default:
		return false
	}
}
