package routes

import (
	"tiffin_tales/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimator = "/estimator"
	PathEstimates = "/estimates"
	PathCatalog   = "/catalog"
)

func addEstimatorRoutes(rg *gin.RouterGroup, estimatorHandler *handlers.EstimatorHandler, quoteHandler *handlers.QuoteHandler) {
	sessions := rg.Group(PathEstimator + "/sessions")
	{
		sessions.POST("", estimatorHandler.StartSession)
		sessions.GET("/:session_id", estimatorHandler.GetSession)
		sessions.POST("/:session_id/rows", estimatorHandler.AddRow)
		sessions.PATCH("/:session_id/rows/:row_id", estimatorHandler.UpdateRow)
		sessions.DELETE("/:session_id/rows/:row_id", estimatorHandler.RemoveRow)
		sessions.GET("/:session_id/quote", quoteHandler.ExportQuote)
	}

	rg.POST(PathEstimates, estimatorHandler.CalculateEstimate)
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.GetCatalog)
		catalog.GET("/plans/:code", catalogHandler.GetPlan)
	}
}
