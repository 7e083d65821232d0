package entities

import "time"

// SubmissionStatus is the operator-driven state of an inquiry. The set is a
// flat enum: any status may be set from any other, there is no enforced
// transition graph.
type SubmissionStatus string

const (
	SubmissionStatusNew        SubmissionStatus = "new"
	SubmissionStatusInProgress SubmissionStatus = "in-progress"
	SubmissionStatusCompleted  SubmissionStatus = "completed"
	SubmissionStatusCancelled  SubmissionStatus = "cancelled"
)

// ValidSubmissionStatus reports whether s is one of the four known states.
func ValidSubmissionStatus(s SubmissionStatus) bool {
	switch s {
	case SubmissionStatusNew, SubmissionStatusInProgress,
		SubmissionStatusCompleted, SubmissionStatusCancelled:
		return true
	}
	return false
}

// CustomerInfo is the contact block attached to an inquiry. All fields are
// plain strings, sanitized independently before storage.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Submission is a persisted inquiry.
//
// It exclusively owns its Calculation and Customer snapshots: they are
// frozen at creation time and never recomputed if the catalog later
// changes. Status and Notes are the only fields mutated after creation.
type Submission struct {
	ID           string            `json:"id"`
	Calculation  CalculationResult `json:"calculation"`
	Customer     CustomerInfo      `json:"customer_info"`
	Status       SubmissionStatus  `json:"status"`
	Notes        string            `json:"notes,omitempty"`
	HTMLEstimate string            `json:"html_estimate,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
