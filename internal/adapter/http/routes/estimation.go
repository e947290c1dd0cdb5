package routes

import (
	"devis_batiment/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReferenceProjects  = "/reference-projects"
	PathCostAverages       = "/cost-averages"
	PathEstimationSessions = "/estimation-sessions"
	PathEstimations        = "/estimations"
)

func addReferenceProjectRoutes(rg *gin.RouterGroup, h *handlers.ReferenceProjectHandler) {
	rg.POST(PathReferenceProjects+"/rank", h.RankProjects)
	rg.POST(PathCostAverages, h.PreviewCosts)
}

func addEstimationRoutes(rg *gin.RouterGroup, sessionHandler *handlers.EstimationSessionHandler, estimationHandler *handlers.EstimationHandler) {
	sessions := rg.Group(PathEstimationSessions)
	{
		sessions.POST("", sessionHandler.StartSession)
		sessions.GET("/:session_id", sessionHandler.GetSession)
		sessions.PATCH("/:session_id/lines/:line_id", sessionHandler.EditAmount)
		sessions.PATCH("/:session_id/meta", sessionHandler.EditMeta)
		sessions.POST("/:session_id/reset", sessionHandler.ResetSession)
		sessions.POST("/:session_id/save", sessionHandler.SaveSession)
		sessions.DELETE("/:session_id", sessionHandler.DiscardSession)
	}

	estimations := rg.Group(PathEstimations)
	{
		estimations.GET("/:id", estimationHandler.GetEstimation)
		estimations.GET("/:id/export", estimationHandler.ExportEstimation)
		estimations.DELETE("/:id", estimationHandler.DeleteEstimation)
		estimations.GET("/code/:code_fiche/versions", estimationHandler.ListVersions)
	}
}
