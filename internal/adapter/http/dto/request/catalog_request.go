package request

import (
	"errors"

	"servicecalc/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidRate = errors.New("invalid rate value")

type CustomAttributeRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// ServiceRequest creates or replaces a catalog service. Monetary and
// quantity fields are decimal strings.
type ServiceRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	Rate        string `json:"rate" binding:"required"`
	Unit        string `json:"unit" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description"`
	IconURL     string `json:"icon_url"`
	MinOrder    string `json:"min_order"`
	MaxOrder    string `json:"max_order"`
	Step        string `json:"step"`

	CustomAttributes []CustomAttributeRequest `json:"custom_attributes"`
}

func (r ServiceRequest) ToEntity() (entities.Service, error) {
	rate, err := decimal.NewFromString(r.Rate)
	if err != nil {
		return entities.Service{}, ErrInvalidRate
	}

	svc := entities.Service{
		ID:          r.ID,
		Name:        r.Name,
		Rate:        rate,
		Unit:        r.Unit,
		Category:    r.Category,
		Description: r.Description,
		IconURL:     r.IconURL,
	}
	svc.MinOrder = optionalDecimal(r.MinOrder)
	svc.MaxOrder = optionalDecimal(r.MaxOrder)
	if step, err := decimal.NewFromString(r.Step); err == nil && step.IsPositive() {
		svc.Step = step
	}

	for _, attr := range r.CustomAttributes {
		svc.CustomAttributes = append(svc.CustomAttributes, entities.CustomAttribute{Key: attr.Key, Value: attr.Value})
	}
	return svc, nil
}

type UnitRequest struct {
	Key    string `json:"key" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Symbol string `json:"symbol"`
	Type   string `json:"type"`
}

func (r UnitRequest) ToEntity() entities.Unit {
	return entities.Unit{
		Key:    r.Key,
		Name:   r.Name,
		Symbol: r.Symbol,
		Type:   entities.UnitType(r.Type),
	}
}

type CategoryRequest struct {
	Key  string `json:"key" binding:"required"`
	Name string `json:"name" binding:"required"`
}

func (r CategoryRequest) ToEntity() entities.Category {
	return entities.Category{Key: r.Key, Name: r.Name}
}

func optionalDecimal(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
