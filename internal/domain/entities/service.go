package entities

import "github.com/shopspring/decimal"

// UnitType classifies what a unit of measure describes. It is purely
// descriptive: symbols are concatenated into display strings, never
// converted between.
type UnitType string

const (
	UnitTypeArea     UnitType = "area"
	UnitTypeLength   UnitType = "length"
	UnitTypeTime     UnitType = "time"
	UnitTypeQuantity UnitType = "quantity"
	UnitTypeVolume   UnitType = "volume"
	UnitTypeWeight   UnitType = "weight"
	UnitTypeOther    UnitType = "other"
)

// Unit is a unit of measure referenced by services, keyed by a stable
// identifier such as "m2" or "hours".
type Unit struct {
	Key    string   `json:"key"`
	Name   string   `json:"name"`
	Symbol string   `json:"symbol"`
	Type   UnitType `json:"type"`
}

// Category groups services for display. A category with at least one
// associated service cannot be removed.
type Category struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// CustomAttribute is a free-form key/value extension on a service. The
// slice preserves the order attributes were defined in; keys must be
// non-empty but are otherwise unconstrained.
type CustomAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// DefaultStep is the quantity increment used when a service does not
// declare one.
var DefaultStep = decimal.RequireFromString("0.1")

// Service is a priced catalog entry.
//
// Rate is the monetary unit price and must be >= 0. Quantity bounds are
// advisory: the engine never clamps a caller-supplied quantity against
// MinOrder/MaxOrder, that is a presentation-layer concern.
type Service struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Rate        decimal.Decimal  `json:"rate"`
	Unit        string           `json:"unit"`
	Category    string           `json:"category"`
	Description string           `json:"description,omitempty"`
	IconURL     string           `json:"icon_url,omitempty"`
	MinOrder    *decimal.Decimal `json:"min_order,omitempty"`
	MaxOrder    *decimal.Decimal `json:"max_order,omitempty"`
	Step        decimal.Decimal  `json:"step"`

	CustomAttributes []CustomAttribute `json:"custom_attributes,omitempty"`
}
