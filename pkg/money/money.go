// Package money renders decimal amounts as currency strings. Formatting is
// fully determined by the supplied symbol, position, separators and
// precision; there is no locale fallback.
package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	PositionBefore = "before"
	PositionAfter  = "after"
)

var ErrUnparsable = errors.New("money: unparsable amount")

// Format rounds amount half-up to the given number of decimals, groups the
// integer part by thousands and attaches the currency symbol.
func Format(amount decimal.Decimal, symbol, position, decimalSep, thousandSep string, decimals int) string {
	if decimals < 0 {
		decimals = 0
	}

	fixed := amount.StringFixed(int32(decimals))

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(intPart, thousandSep))
	if decimals > 0 {
		b.WriteString(decimalSep)
		b.WriteString(fracPart)
	}

	if position == PositionAfter {
		return b.String() + symbol
	}
	return symbol + b.String()
}

// Parse reverses Format: it strips the symbol and separators and recovers
// the numeric amount at the formatted precision.
func Parse(formatted, symbol, decimalSep, thousandSep string) (decimal.Decimal, error) {
	s := strings.TrimSpace(strings.ReplaceAll(formatted, symbol, ""))
	if thousandSep != "" {
		s = strings.ReplaceAll(s, thousandSep, "")
	}
	if decimalSep != "" && decimalSep != "." {
		s = strings.ReplaceAll(s, decimalSep, ".")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrUnparsable
	}
	return d, nil
}

func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
