package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	request "servicecalc/internal/adapter/http/dto/request"
	response "servicecalc/internal/adapter/http/dto/response"
	"servicecalc/internal/usecase"
	"servicecalc/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
	errMissingCSVFile        = pkg.NewDomainErrorSimple("MISSING_CSV_FILE", "Missing csv file upload", http.StatusBadRequest)
)

// CatalogHandler handles the catalog admin surface: services, units,
// categories and CSV import/export.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.ListServices(c.Request.Context(), c.Query("category"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	svc, err := h.usecase.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromService(svc))
}

func (h *CatalogHandler) SaveService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	svc, err := payload.ToEntity()
	if err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	saved, err := h.usecase.SaveService(c.Request.Context(), svc)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromService(saved))
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) GetUnits(c *gin.Context) {
	units, err := h.usecase.GetUnits(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUnits(units))
}

func (h *CatalogHandler) SaveUnit(c *gin.Context) {
	var payload request.UnitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SaveUnit(c.Request.Context(), payload.ToEntity()); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) DeleteUnit(c *gin.Context) {
	if err := h.usecase.DeleteUnit(c.Request.Context(), c.Param("key")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.usecase.GetCategories(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCategories(categories))
}

func (h *CatalogHandler) SaveCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SaveCategory(c.Request.Context(), payload.ToEntity()); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.usecase.DeleteCategory(c.Request.Context(), c.Param("key")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ImportServicesCSV creates services from an uploaded CSV file. Bad rows
// are skipped and reported, not fatal.
func (h *CatalogHandler) ImportServicesCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(errMissingCSVFile.HTTPStatus, errMissingCSVFile.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(errMissingCSVFile.HTTPStatus, errMissingCSVFile.ToHTTPError())
		return
	}
	defer file.Close()

	result, err := h.usecase.ImportServicesCSV(c.Request.Context(), file)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportServicesCSV streams the catalog as a CSV attachment, optionally
// filtered by category.
func (h *CatalogHandler) ExportServicesCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.usecase.ExportServicesCSV(c.Request.Context(), c.Query("category"), &buf); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	filename := fmt.Sprintf("services-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequest), errors.Is(err, usecase.ErrInvalidService):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCSVHeaders):
		return pkg.NewDomainError("INVALID_CSV_HEADERS", "Missing required csv headers", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryInUse):
		return pkg.NewDomainError("CATEGORY_IN_USE", "Category has services assigned", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
