package response

import "servicecalc/internal/domain/entities"

// LineItemResponse mirrors one priced line. Raw amounts are decimal
// strings; formatted fields follow the operator's currency settings.
type LineItemResponse struct {
	ServiceID         string `json:"service_id"`
	ServiceName       string `json:"service_name"`
	Rate              string `json:"rate"`
	RateFormatted     string `json:"rate_formatted"`
	Quantity          string `json:"quantity"`
	Unit              string `json:"unit"`
	UnitSymbol        string `json:"unit_symbol"`
	Subtotal          string `json:"subtotal"`
	SubtotalFormatted string `json:"subtotal_formatted"`
}

type LineFailureResponse struct {
	ServiceID string `json:"service_id"`
	Reason    string `json:"reason"`
}

type CalculationResponse struct {
	Services []LineItemResponse    `json:"services"`
	Failures []LineFailureResponse `json:"failures,omitempty"`

	TotalSubtotal          string `json:"total_subtotal"`
	TotalSubtotalFormatted string `json:"total_subtotal_formatted"`
	TaxRate                string `json:"tax_rate"`
	TotalTax               string `json:"total_tax"`
	TotalTaxFormatted      string `json:"total_tax_formatted"`
	GrandTotal             string `json:"grand_total"`
	GrandTotalFormatted    string `json:"grand_total_formatted"`
}

func FromCalculation(c entities.CalculationResult) CalculationResponse {
	services := make([]LineItemResponse, 0, len(c.Lines))
	for _, line := range c.Lines {
		services = append(services, LineItemResponse{
			ServiceID:         line.ServiceID,
			ServiceName:       line.ServiceName,
			Rate:              line.Rate.String(),
			RateFormatted:     line.RateFormatted,
			Quantity:          line.Quantity.String(),
			Unit:              line.UnitKey,
			UnitSymbol:        line.UnitSymbol,
			Subtotal:          line.Subtotal.String(),
			SubtotalFormatted: line.SubtotalFormatted,
		})
	}

	var failures []LineFailureResponse
	for _, f := range c.Failures {
		failures = append(failures, LineFailureResponse{ServiceID: f.ServiceID, Reason: f.Reason})
	}

	return CalculationResponse{
		Services:               services,
		Failures:               failures,
		TotalSubtotal:          c.TotalSubtotal.String(),
		TotalSubtotalFormatted: c.TotalSubtotalFormatted,
		TaxRate:                c.TaxRate.String(),
		TotalTax:               c.TotalTax.String(),
		TotalTaxFormatted:      c.TotalTaxFormatted,
		GrandTotal:             c.GrandTotal.String(),
		GrandTotalFormatted:    c.GrandTotalFormatted,
	}
}

// InquiryResponse acknowledges a stored inquiry.
type InquiryResponse struct {
	SubmissionID string `json:"submission_id"`
	HTMLEstimate string `json:"html_estimate"`
}

// EstimateResponse carries a rendered estimate document with no
// submission attached.
type EstimateResponse struct {
	HTMLEstimate string `json:"html_estimate"`
}
