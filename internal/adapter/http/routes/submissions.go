package routes

import (
	"servicecalc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSubmissions = "/submissions"
)

func addSubmissionRoutes(rg *gin.RouterGroup, submissionHandler *handlers.SubmissionHandler) {
	submissions := rg.Group(PathSubmissions)
	{
		submissions.GET("", submissionHandler.List)
		submissions.POST("/bulk", submissionHandler.Bulk)
		submissions.GET("/:id", submissionHandler.GetByID)
		submissions.PATCH("/:id/status", submissionHandler.UpdateStatus)
		submissions.POST("/:id/notes", submissionHandler.AddNote)
	}
}
