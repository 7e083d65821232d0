package interfaces

import (
	"context"

	"servicecalc/internal/domain/entities"
)

//go:generate mockgen -source=submission_repository_interface.go -destination=mocks/submission_repository_mock.go -package=mocks

// ISubmissionRepository persists inquiry submissions.
//
// The stored Calculation/Customer snapshots are immutable; after creation
// only status, notes and the rendered estimate are written. Lookups return
// the zero value with a nil error when nothing matches.
type ISubmissionRepository interface {
	Create(ctx context.Context, s entities.Submission) (entities.Submission, error)
	GetByID(ctx context.Context, id string) (entities.Submission, error)
	SetHTMLEstimate(ctx context.Context, id, html string) error
	UpdateStatus(ctx context.Context, id string, status entities.SubmissionStatus) (entities.Submission, error)
	UpdateNotes(ctx context.Context, id, notes string) (entities.Submission, error)
	List(ctx context.Context, status entities.SubmissionStatus, limit, offset int) ([]entities.Submission, error)
	Delete(ctx context.Context, id string) error
}
