package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name        string
		amount      string
		symbol      string
		position    string
		decimalSep  string
		thousandSep string
		decimals    int
		want        string
	}{
		{name: "default dollar", amount: "75", symbol: "$", position: PositionBefore, decimalSep: ".", thousandSep: ",", decimals: 2, want: "$75.00"},
		{name: "thousand grouping", amount: "1234567.891", symbol: "$", position: PositionBefore, decimalSep: ".", thousandSep: ",", decimals: 2, want: "$1,234,567.89"},
		{name: "european euro after", amount: "1234.5", symbol: "€", position: PositionAfter, decimalSep: ",", thousandSep: ".", decimals: 2, want: "1.234,50€"},
		{name: "zero decimals", amount: "1234.5", symbol: "¥", position: PositionBefore, decimalSep: ".", thousandSep: ",", decimals: 0, want: "¥1,235"},
		{name: "half up rounding", amount: "2.345", symbol: "$", position: PositionBefore, decimalSep: ".", thousandSep: ",", decimals: 2, want: "$2.35"},
		{name: "negative amount", amount: "-1234.5", symbol: "$", position: PositionBefore, decimalSep: ".", thousandSep: ",", decimals: 2, want: "$-1,234.50"},
		{name: "no thousand separator", amount: "1234567", symbol: "$", position: PositionBefore, decimalSep: ".", thousandSep: "", decimals: 2, want: "$1234567.00"},
		{name: "four decimals", amount: "0.12345", symbol: "$", position: PositionBefore, decimalSep: ".", thousandSep: ",", decimals: 4, want: "$0.1235"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tc.amount)
			got := Format(amount, tc.symbol, tc.position, tc.decimalSep, tc.thousandSep, tc.decimals)
			if got != tc.want {
				t.Fatalf("Format(%s) = %q, want %q", tc.amount, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("round trip european", func(t *testing.T) {
		got, err := Parse("1.234,50€", "€", ",", ".")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(decimal.RequireFromString("1234.50")) {
			t.Fatalf("expected 1234.50, got %s", got)
		}
	})

	t.Run("round trip dollar", func(t *testing.T) {
		got, err := Parse("$1,234.50", "$", ".", ",")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Equal(decimal.RequireFromString("1234.5")) {
			t.Fatalf("expected 1234.5, got %s", got)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := Parse("not money", "$", ".", ","); err == nil {
			t.Fatalf("expected error")
		}
	})
}
