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
	errInvalidCalculatePayload = pkg.NewDomainErrorSimple("INVALID_CALCULATE_INPUT", "Invalid calculation payload", http.StatusBadRequest)
)

// CalculatorHandler handles HTTP requests for price calculations.

type CalculatorHandler struct {
	usecase usecase.ICalculatorUseCase
}

func NewCalculatorHandler(uc usecase.ICalculatorUseCase) *CalculatorHandler {
	return &CalculatorHandler{usecase: uc}
}

// Calculate prices the posted service selection and returns line items,
// totals and formatted prices under the current settings.
func (h *CalculatorHandler) Calculate(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCalculatePayload.HTTPStatus, errInvalidCalculatePayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Calculate(c.Request.Context(), payload.ToLineItems())
	if err != nil {
		appErr := mapCalculationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalculation(result))
}

func mapCalculationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyRequest):
		return pkg.NewDomainErrorSimple("EMPTY_REQUEST", "No services selected", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoValidServices):
		return pkg.NewDomainErrorSimple("NO_VALID_SERVICES", "No valid services in request", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
