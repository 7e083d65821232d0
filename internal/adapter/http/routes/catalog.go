package routes

import (
	"servicecalc/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices   = "/services"
	PathUnits      = "/units"
	PathCategories = "/categories"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", catalogHandler.ListServices)
		services.POST("", catalogHandler.SaveService)
		services.GET("/export", catalogHandler.ExportServicesCSV)
		services.POST("/import", catalogHandler.ImportServicesCSV)
		services.GET("/:id", catalogHandler.GetService)
		services.DELETE("/:id", catalogHandler.DeleteService)
	}

	units := rg.Group(PathUnits)
	{
		units.GET("", catalogHandler.GetUnits)
		units.PUT("", catalogHandler.SaveUnit)
		units.DELETE("/:key", catalogHandler.DeleteUnit)
	}

	categories := rg.Group(PathCategories)
	{
		categories.GET("", catalogHandler.GetCategories)
		categories.PUT("", catalogHandler.SaveCategory)
		categories.DELETE("/:key", catalogHandler.DeleteCategory)
	}
}
