package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"servicecalc/internal/adapter/http/handlers/mocks"
	"servicecalc/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestInquiryHandler_SubmitInquiry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		r := gin.New()
		r.POST("/v1/inquiries", h.SubmitInquiry)

		req := httptest.NewRequest(http.MethodPost, "/v1/inquiries", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("submission failure mapped to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		r := gin.New()
		r.POST("/v1/inquiries", h.SubmitInquiry)

		uc.EXPECT().SubmitInquiry(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.InquiryResult{}, usecase.ErrSubmissionFailed)

		req := httptest.NewRequest(http.MethodPost, "/v1/inquiries", bytes.NewBufferString(`{"services":[{"service_id":"svc-1","quantity":"3"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		r := gin.New()
		r.POST("/v1/inquiries", h.SubmitInquiry)

		uc.EXPECT().SubmitInquiry(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.InquiryResult{
			SubmissionID: "sub-1",
			HTML:         "<html></html>",
		}, nil)

		payload := `{"services":[{"service_id":"svc-1","quantity":"3"}],"customer_info":{"name":"Jane","email":"jane@example.com"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/inquiries", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["submission_id"] != "sub-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestInquiryHandler_RenderEstimate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.RenderEstimate)

		uc.EXPECT().RenderEstimate(gomock.Any(), gomock.Any(), gomock.Any()).Return("<html>estimate</html>", nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"services":[{"service_id":"svc-1","quantity":"1"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["html_estimate"] != "<html>estimate</html>" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("pricing error mapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInquiryUseCase(ctrl)
		h := NewInquiryHandler(uc)

		r := gin.New()
		r.POST("/v1/estimates", h.RenderEstimate)

		uc.EXPECT().RenderEstimate(gomock.Any(), gomock.Any(), gomock.Any()).Return("", usecase.ErrNoValidServices)

		req := httptest.NewRequest(http.MethodPost, "/v1/estimates", bytes.NewBufferString(`{"services":[{"service_id":"ghost","quantity":"1"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}
