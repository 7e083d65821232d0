package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"servicecalc/internal/adapter/http/handlers/mocks"
	"servicecalc/internal/domain/entities"
	"servicecalc/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_SaveService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.SaveService)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"name":"Painting"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unparsable rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.SaveService)

		payload := `{"name":"Painting","rate":"abc","unit":"sqm","category":"finishing"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services", h.SaveService)

		uc.EXPECT().SaveService(gomock.Any(), gomock.AssignableToTypeOf(entities.Service{})).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if !s.Rate.Equal(decimal.RequireFromString("12.50")) {
					t.Fatalf("unexpected rate: %s", s.Rate)
				}
				s.ID = "svc-1"
				return s, nil
			},
		)

		payload := `{"name":"Painting","rate":"12.50","unit":"sqm","category":"finishing"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_DeleteCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("in use mapped to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/categories/:key", h.DeleteCategory)

		uc.EXPECT().DeleteCategory(gomock.Any(), "finishing").Return(usecase.ErrCategoryInUse)

		req := httptest.NewRequest(http.MethodDelete, "/v1/categories/finishing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.DELETE("/v1/categories/:key", h.DeleteCategory)

		uc.EXPECT().DeleteCategory(gomock.Any(), "finishing").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/categories/finishing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ImportServicesCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services/import", h.ImportServicesCSV)

		req := httptest.NewRequest(http.MethodPost, "/v1/services/import", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/services/import", h.ImportServicesCSV)

		uc.EXPECT().ImportServicesCSV(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, reader io.Reader) (usecase.ImportResult, error) {
				data, _ := io.ReadAll(reader)
				if !strings.Contains(string(data), "Painting") {
					t.Fatalf("expected uploaded csv content")
				}
				return usecase.ImportResult{Imported: 1}, nil
			},
		)

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("file", "services.csv")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, _ = fw.Write([]byte("name,rate,unit,category\nPainting,12.50,sqm,finishing\n"))
		_ = mw.Close()

		req := httptest.NewRequest(http.MethodPost, "/v1/services/import", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["imported"] != float64(1) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_ExportServicesCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/services/export", h.ExportServicesCSV)

	uc.EXPECT().ExportServicesCSV(gomock.Any(), "finishing", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, w io.Writer) error {
			_, err := w.Write([]byte("name,rate,unit,category\nPainting,12.5,sqm,finishing\n"))
			return err
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/v1/services/export?category=finishing", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Content-Disposition"), "attachment; filename=") {
		t.Fatalf("expected attachment disposition, got %q", w.Header().Get("Content-Disposition"))
	}
	if !strings.Contains(w.Body.String(), "Painting,12.5") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCatalogHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/services", h.ListServices)

	uc.EXPECT().ListServices(gomock.Any(), "structural").Return([]entities.Service{
		{ID: "svc-1", Name: "Demolition", Rate: decimal.NewFromInt(80), Unit: "hour", Category: "structural", Step: entities.DefaultStep},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/services?category=structural", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 1 || body[0]["name"] != "Demolition" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapCatalogError(t *testing.T) {
	if got := mapCatalogError(usecase.ErrInvalidService); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrInvalidCSVHeaders); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrServiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(usecase.ErrCategoryNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(usecase.ErrCategoryInUse); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapCatalogError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
