package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicecalc/internal/adapter/http/handlers/mocks"
	"servicecalc/internal/domain/entities"
	"servicecalc/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSubmissionHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("passes filters through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.GET("/v1/submissions", h.List)

		uc.EXPECT().List(gomock.Any(), entities.SubmissionStatusCompleted, 5, 10).Return([]entities.Submission{
			{ID: "sub-1", Status: entities.SubmissionStatusCompleted},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/submissions?status=completed&limit=5&offset=10", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["id"] != "sub-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid status mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.GET("/v1/submissions", h.List)

		uc.EXPECT().List(gomock.Any(), entities.SubmissionStatus("archived"), 0, 0).Return(nil, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/submissions?status=archived", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestSubmissionHandler_GetByID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.GET("/v1/submissions/:id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "ghost").Return(entities.Submission{}, usecase.ErrSubmissionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/submissions/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSubmissionHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/submissions/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "sub-1", entities.SubmissionStatus("archived")).Return(entities.Submission{}, usecase.ErrInvalidStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/submissions/sub-1/status", bytes.NewBufferString(`{"status":"archived"}`))
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
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.PATCH("/v1/submissions/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "sub-1", entities.SubmissionStatusCompleted).Return(entities.Submission{
			ID: "sub-1", Status: entities.SubmissionStatusCompleted,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/submissions/sub-1/status", bytes.NewBufferString(`{"status":"completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "completed" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestSubmissionHandler_AddNote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISubmissionUseCase(ctrl)
	h := NewSubmissionHandler(uc)

	r := gin.New()
	r.POST("/v1/submissions/:id/notes", h.AddNote)

	uc.EXPECT().AppendNote(gomock.Any(), "sub-1", "customer approved").Return(entities.Submission{
		ID: "sub-1", Notes: "[2026-03-15 10:30] customer approved",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/submissions/sub-1/notes", bytes.NewBufferString(`{"text":"customer approved"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestSubmissionHandler_Bulk(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid action mapped to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.POST("/v1/submissions/bulk", h.Bulk)

		uc.EXPECT().Bulk(gomock.Any(), usecase.BulkAction("archive"), []string{"sub-1"}).Return(0, usecase.ErrInvalidBulkAction)

		req := httptest.NewRequest(http.MethodPost, "/v1/submissions/bulk", bytes.NewBufferString(`{"action":"archive","ids":["sub-1"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success reports count", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISubmissionUseCase(ctrl)
		h := NewSubmissionHandler(uc)

		r := gin.New()
		r.POST("/v1/submissions/bulk", h.Bulk)

		uc.EXPECT().Bulk(gomock.Any(), usecase.BulkComplete, []string{"sub-1", "sub-2"}).Return(2, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/submissions/bulk", bytes.NewBufferString(`{"action":"complete","ids":["sub-1","sub-2"]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["count"] != float64(2) {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapSubmissionError(t *testing.T) {
	if got := mapSubmissionError(usecase.ErrEmptyNote); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSubmissionError(usecase.ErrInvalidStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSubmissionError(usecase.ErrInvalidBulkAction); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapSubmissionError(usecase.ErrSubmissionNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapSubmissionError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
