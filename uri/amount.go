package uri

import (
	"io"

	"braces.dev/errtrace"
	"github.com/btcsuite/btcd/btcutil"

	"github.com/paycodes/bip21/internal/grammar"
	"github.com/paycodes/bip21/internal/ioutil"
	"github.com/paycodes/bip21/internal/types"
)

// Sat returns a pointer to the amount of n satoshi, handy for the [URI.Amount] field.
func Sat(n int64) *btcutil.Amount {
	a := btcutil.Amount(n)
	return &a
}

// FormatAmount formats a as a decimal number of bitcoins without the unit and trailing zeros,
// as required by the BIP 21 amount parameter: 100000 sat is "0.001", 100000000 sat is "1".
func FormatAmount(a btcutil.Amount) string { return types.FormatAmount(a) }

func renderAmount(a btcutil.Amount) func(io.Writer) (int, error) {
	return func(w io.Writer) (int, error) {
		var buf [32]byte
		return errtrace.Wrap2(ioutil.EscapeTo(w, types.AppendAmount(buf[:0], a), grammar.ShouldEscapeQueryChar))
	}
}
