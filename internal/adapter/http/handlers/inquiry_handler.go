package handlers

import (
	"errors"
	"net/http"

	request "servicecalc/internal/adapter/http/dto/request"
	response "servicecalc/internal/adapter/http/dto/response"
	"servicecalc/internal/usecase"
	"servicecalc/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInquiryPayload = pkg.NewDomainErrorSimple("INVALID_INQUIRY_INPUT", "Invalid inquiry payload", http.StatusBadRequest)
)

// InquiryHandler handles the visitor-facing inquiry flow: submitting an
// estimate request and rendering the printable estimate document.

type InquiryHandler struct {
	usecase usecase.IInquiryUseCase
}

func NewInquiryHandler(uc usecase.IInquiryUseCase) *InquiryHandler {
	return &InquiryHandler{usecase: uc}
}

// SubmitInquiry prices the selection, persists it as a submission and
// triggers the notification emails.
func (h *InquiryHandler) SubmitInquiry(c *gin.Context) {
	var payload request.InquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.SubmitInquiry(c.Request.Context(), payload.ToLineItems(), payload.ToCustomerInfo())
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.InquiryResponse{
		SubmissionID: result.SubmissionID,
		HTMLEstimate: result.HTML,
	})
}

// RenderEstimate prices the selection and returns the estimate document
// without persisting anything.
func (h *InquiryHandler) RenderEstimate(c *gin.Context) {
	var payload request.InquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInquiryPayload.HTTPStatus, errInvalidInquiryPayload.ToHTTPError())
		return
	}

	html, err := h.usecase.RenderEstimate(c.Request.Context(), payload.ToLineItems(), payload.ToCustomerInfo())
	if err != nil {
		appErr := mapInquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.EstimateResponse{HTMLEstimate: html})
}

func mapInquiryError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrSubmissionFailed) {
		return pkg.NewDomainError("SUBMISSION_FAILED", "Failed to store the inquiry", err, http.StatusInternalServerError)
	}
	return mapCalculationError(err)
}
