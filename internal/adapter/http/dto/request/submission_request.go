package request

// UpdateStatusRequest sets a submission's status to one of new,
// in-progress, completed or cancelled.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// NoteRequest appends a free-text note to a submission.
type NoteRequest struct {
	Text string `json:"text" binding:"required"`
}

// BulkRequest applies one action (complete, in-progress, cancel, delete)
// to a set of submissions.
type BulkRequest struct {
	Action string   `json:"action" binding:"required"`
	IDs    []string `json:"ids" binding:"required"`
}
