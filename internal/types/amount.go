package types

import (
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
)

// FormatAmount formats a as a decimal number of bitcoins without the unit and trailing zeros.
func FormatAmount(a btcutil.Amount) string {
	var buf [32]byte
	return string(AppendAmount(buf[:0], a))
}

// AppendAmount appends the text of [FormatAmount] to dst.
func AppendAmount(dst []byte, a btcutil.Amount) []byte {
	u := uint64(a)
	if a < 0 {
		dst = append(dst, '-')
		u = uint64(-(a + 1)) + 1
	}

	dst = strconv.AppendUint(dst, u/btcutil.SatoshiPerBitcoin, 10)
	frac := u % btcutil.SatoshiPerBitcoin
	if frac == 0 {
		return dst
	}

	var digits [8]byte
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = '0' + byte(frac%10)
		frac /= 10
	}
	n := len(digits)
	for digits[n-1] == '0' {
		n--
	}
	dst = append(dst, '.')
	return append(dst, digits[:n]...)
}
