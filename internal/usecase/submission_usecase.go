package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"servicecalc/internal/domain/entities"
	"servicecalc/internal/usecase/interfaces"
)

var (
	ErrSubmissionNotFound = errors.New("submission not found")
	ErrInvalidStatus      = errors.New("invalid submission status")
	ErrInvalidBulkAction  = errors.New("invalid bulk action")
	ErrEmptyNote          = errors.New("empty note")
)

// BulkAction is an operator batch operation over submissions.
type BulkAction string

const (
	BulkComplete   BulkAction = "complete"
	BulkInProgress BulkAction = "in-progress"
	BulkCancel     BulkAction = "cancel"
	BulkDelete     BulkAction = "delete"
)

const defaultListLimit = 10

// ISubmissionUseCase is the operator surface over persisted inquiries.
// Status changes are unordered by design: any of the four states may be
// set from any other.

type ISubmissionUseCase interface {
	List(ctx context.Context, status entities.SubmissionStatus, limit, offset int) ([]entities.Submission, error)
	GetByID(ctx context.Context, id string) (entities.Submission, error)
	UpdateStatus(ctx context.Context, id string, status entities.SubmissionStatus) (entities.Submission, error)
	AppendNote(ctx context.Context, id, text string) (entities.Submission, error)
	Bulk(ctx context.Context, action BulkAction, ids []string) (int, error)
}

type SubmissionUseCase struct {
	repo interfaces.ISubmissionRepository

	now func() time.Time
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(repo interfaces.ISubmissionRepository) *SubmissionUseCase {
	return &SubmissionUseCase{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (u *SubmissionUseCase) List(ctx context.Context, status entities.SubmissionStatus, limit, offset int) ([]entities.Submission, error) {
	if status != "" && !entities.ValidSubmissionStatus(status) {
		return nil, ErrInvalidStatus
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return u.repo.List(ctx, status, limit, offset)
}

func (u *SubmissionUseCase) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Submission{}, ErrInvalidRequest
	}
	sub, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}
	if sub.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	return sub, nil
}

func (u *SubmissionUseCase) UpdateStatus(ctx context.Context, id string, status entities.SubmissionStatus) (entities.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Submission{}, ErrInvalidRequest
	}
	if !entities.ValidSubmissionStatus(status) {
		return entities.Submission{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Submission{}, err
	}
	if updated.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	return updated, nil
}

// AppendNote adds a timestamped note below any existing ones.
func (u *SubmissionUseCase) AppendNote(ctx context.Context, id, text string) (entities.Submission, error) {
	text = sanitizeMultiline(text)
	if text == "" {
		return entities.Submission{}, ErrEmptyNote
	}

	sub, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}

	note := fmt.Sprintf("[%s] %s", u.now().Format("2006-01-02 15:04"), text)
	notes := sub.Notes
	if notes != "" {
		notes += "\n\n"
	}
	notes += note

	updated, err := u.repo.UpdateNotes(ctx, sub.ID, notes)
	if err != nil {
		return entities.Submission{}, err
	}
	if updated.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	return updated, nil
}

// Bulk applies action to each id and reports how many records it touched.
// Unknown ids are skipped rather than failing the batch.
func (u *SubmissionUseCase) Bulk(ctx context.Context, action BulkAction, ids []string) (int, error) {
	var status entities.SubmissionStatus
	switch action {
	case BulkComplete:
		status = entities.SubmissionStatusCompleted
	case BulkInProgress:
		status = entities.SubmissionStatusInProgress
	case BulkCancel:
		status = entities.SubmissionStatusCancelled
	case BulkDelete:
	default:
		return 0, ErrInvalidBulkAction
	}

	count := 0
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}

		if action == BulkDelete {
			if err := u.repo.Delete(ctx, id); err != nil {
				return count, err
			}
			count++
			continue
		}

		updated, err := u.repo.UpdateStatus(ctx, id, status)
		if err != nil {
			return count, err
		}
		if updated.ID != "" {
			count++
		}
	}
	return count, nil
}
