package routes

import (
	"servicecalc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCalculate = "/calculate"
	PathEstimates = "/estimates"
	PathInquiries = "/inquiries"
)

func addCalculatorRoutes(rg *gin.RouterGroup, calculatorHandler *handlers.CalculatorHandler, inquiryHandler *handlers.InquiryHandler) {
	rg.POST(PathCalculate, calculatorHandler.Calculate)

	// Render without persisting; used for download/print before submitting.
	rg.POST(PathEstimates, inquiryHandler.RenderEstimate)

	rg.POST(PathInquiries, inquiryHandler.SubmitInquiry)
}
