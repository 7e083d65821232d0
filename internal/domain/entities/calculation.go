package entities

import "github.com/shopspring/decimal"

// LineItemRequest is a caller-supplied (service, quantity) pair. Quantity
// must be a finite decimal > 0; it is not clamped against the service's
// order bounds.
type LineItemRequest struct {
	ServiceID string          `json:"service_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// LineItemResult is one successfully priced line. Subtotal is the exact
// product rate*quantity; formatted fields are derived from the same
// PricingConfig used for the aggregate.
type LineItemResult struct {
	ServiceID         string          `json:"service_id"`
	ServiceName       string          `json:"service_name"`
	Rate              decimal.Decimal `json:"rate"`
	RateFormatted     string          `json:"rate_formatted"`
	Quantity          decimal.Decimal `json:"quantity"`
	UnitKey           string          `json:"unit"`
	UnitSymbol        string          `json:"unit_symbol"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	SubtotalFormatted string          `json:"subtotal_formatted"`
}

// LineItemFailure records a request that was dropped from aggregation, so
// callers can surface warnings instead of failing the whole calculation.
type LineItemFailure struct {
	ServiceID string `json:"service_id"`
	Reason    string `json:"reason"`
}

// CalculationResult is the engine's primary output. It is a value object,
// frozen once produced: later catalog or settings changes are never
// reflected back into it.
//
// Lines preserves the caller's request order. Failures lists the requests
// that did not price, in request order; they contribute nothing to the
// aggregates.
type CalculationResult struct {
	Lines    []LineItemResult  `json:"services"`
	Failures []LineItemFailure `json:"failures,omitempty"`

	TotalSubtotal          decimal.Decimal `json:"total_subtotal"`
	TotalSubtotalFormatted string          `json:"total_subtotal_formatted"`
	TaxRate                decimal.Decimal `json:"tax_rate"`
	TotalTax               decimal.Decimal `json:"total_tax"`
	TotalTaxFormatted      string          `json:"total_tax_formatted"`
	GrandTotal             decimal.Decimal `json:"grand_total"`
	GrandTotalFormatted    string          `json:"grand_total_formatted"`
}
