package response

import (
	"time"

	"servicecalc/internal/domain/entities"
)

type CustomerInfoResponse struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type SubmissionResponse struct {
	ID           string               `json:"id"`
	Calculation  CalculationResponse  `json:"calculation"`
	CustomerInfo CustomerInfoResponse `json:"customer_info"`
	Status       string               `json:"status"`
	Notes        string               `json:"notes,omitempty"`
	HTMLEstimate string               `json:"html_estimate,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

func FromSubmission(s entities.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:          s.ID,
		Calculation: FromCalculation(s.Calculation),
		CustomerInfo: CustomerInfoResponse{
			Name:    s.Customer.Name,
			Email:   s.Customer.Email,
			Phone:   s.Customer.Phone,
			Message: s.Customer.Message,
		},
		Status:       string(s.Status),
		Notes:        s.Notes,
		HTMLEstimate: s.HTMLEstimate,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func FromSubmissions(subs []entities.Submission) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(subs))
	for _, s := range subs {
		out = append(out, FromSubmission(s))
	}
	return out
}

// BulkActionResponse reports how many submissions a batch action touched.
type BulkActionResponse struct {
	Action string `json:"action"`
	Count  int    `json:"count"`
}
