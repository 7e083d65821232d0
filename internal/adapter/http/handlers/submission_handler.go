package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "servicecalc/internal/adapter/http/dto/request"
	response "servicecalc/internal/adapter/http/dto/response"
	"servicecalc/internal/domain/entities"
	"servicecalc/internal/usecase"
	"servicecalc/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSubmissionPayload = pkg.NewDomainErrorSimple("INVALID_SUBMISSION_INPUT", "Invalid submission payload", http.StatusBadRequest)
)

// SubmissionHandler handles the operator surface over stored inquiries.

type SubmissionHandler struct {
	usecase usecase.ISubmissionUseCase
}

func NewSubmissionHandler(uc usecase.ISubmissionUseCase) *SubmissionHandler {
	return &SubmissionHandler{usecase: uc}
}

// List returns submissions newest first, optionally filtered by status,
// paginated with limit/offset query params.
func (h *SubmissionHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	status := entities.SubmissionStatus(c.Query("status"))

	subs, err := h.usecase.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmissions(subs))
}

func (h *SubmissionHandler) GetByID(c *gin.Context) {
	sub, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(sub))
}

func (h *SubmissionHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	sub, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.SubmissionStatus(payload.Status))
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(sub))
}

func (h *SubmissionHandler) AddNote(c *gin.Context) {
	var payload request.NoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	sub, err := h.usecase.AppendNote(c.Request.Context(), c.Param("id"), payload.Text)
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(sub))
}

// Bulk applies one action (complete, in-progress, cancel, delete) to a
// set of submissions and reports how many it touched.
func (h *SubmissionHandler) Bulk(c *gin.Context) {
	var payload request.BulkRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSubmissionPayload.HTTPStatus, errInvalidSubmissionPayload.ToHTTPError())
		return
	}

	count, err := h.usecase.Bulk(c.Request.Context(), usecase.BulkAction(payload.Action), payload.IDs)
	if err != nil {
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.BulkActionResponse{Action: payload.Action, Count: count})
}

func mapSubmissionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest), errors.Is(err, usecase.ErrEmptyNote):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid submission status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidBulkAction):
		return pkg.NewDomainErrorSimple("INVALID_BULK_ACTION", "Invalid bulk action", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSubmissionNotFound):
		return pkg.NewDomainErrorSimple("SUBMISSION_NOT_FOUND", "Submission not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
