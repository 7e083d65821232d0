package request

import (
	"servicecalc/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LineItemRequest is one (service, quantity) selection. Quantity travels as
// a decimal string to avoid float drift on the wire.
type LineItemRequest struct {
	ServiceID string `json:"service_id"`
	Quantity  string `json:"quantity"`
}

// CalculateRequest is the payload for pricing a selection without
// submitting an inquiry.
type CalculateRequest struct {
	Services []LineItemRequest `json:"services" binding:"required"`
}

func (r CalculateRequest) ToLineItems() []entities.LineItemRequest {
	return ToLineItems(r.Services)
}

// ToLineItems maps the payload onto engine requests. Unparsable quantities
// become zero, which the engine reports as an invalid (dropped) line rather
// than failing the whole request.
func ToLineItems(items []LineItemRequest) []entities.LineItemRequest {
	out := make([]entities.LineItemRequest, 0, len(items))
	for _, item := range items {
		qty, err := decimal.NewFromString(item.Quantity)
		if err != nil {
			qty = decimal.Zero
		}
		out = append(out, entities.LineItemRequest{
			ServiceID: item.ServiceID,
			Quantity:  qty,
		})
	}
	return out
}
