package entities

import "github.com/shopspring/decimal"

// CurrencyPosition controls whether the currency symbol is rendered before
// or after the amount.
type CurrencyPosition string

const (
	CurrencyBefore CurrencyPosition = "before"
	CurrencyAfter  CurrencyPosition = "after"
)

// TaxDisplay controls whether tax is shown as a separate line. When tax is
// not shown it is not added at all: the grand total equals the subtotal.
type TaxDisplay string

const (
	TaxShown  TaxDisplay = "yes"
	TaxFolded TaxDisplay = "no"
)

// PricingConfig is an immutable snapshot of the pricing settings, resolved
// once at the operation boundary. Engine operations take it as an explicit
// argument and never reach into the settings store mid-calculation.
type PricingConfig struct {
	CurrencySymbol    string
	CurrencyPosition  CurrencyPosition
	DecimalSeparator  string
	ThousandSeparator string
	Decimals          int

	TaxRate    decimal.Decimal // percentage, 0-100
	TaxDisplay TaxDisplay
}

// DefaultPricingConfig mirrors the settings a fresh install starts with.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		CurrencySymbol:    "$",
		CurrencyPosition:  CurrencyBefore,
		DecimalSeparator:  ".",
		ThousandSeparator: ",",
		Decimals:          2,
		TaxRate:           decimal.NewFromInt(20),
		TaxDisplay:        TaxShown,
	}
}

// TaxShown reports whether tax should be computed and displayed separately.
func (c PricingConfig) TaxShown() bool {
	return c.TaxDisplay == TaxShown
}
