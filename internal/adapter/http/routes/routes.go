package routes

import (
	"net/http"

	_ "devis_batiment/docs"
	"devis_batiment/internal/adapter/costsheet"
	"devis_batiment/internal/adapter/http/handlers"
	"devis_batiment/internal/adapter/persistence/repository"
	"devis_batiment/internal/config"
	"devis_batiment/internal/infrastructure/database"
	"devis_batiment/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups everything the router serves.
type Handlers struct {
	ReferenceProjects  *handlers.ReferenceProjectHandler
	EstimationSessions *handlers.EstimationSessionHandler
	Estimations        *handlers.EstimationHandler
}

// Run wires the service against DynamoDB and the cost sheet directory, then
// serves until the listener fails.
func Run(cfg config.Config) error {
	router := NewRouter(buildHandlers(cfg))
	log.Info().Str("addr", cfg.Addr()).Msg("[http][routes] listening")
	return router.Run(cfg.Addr())
}

// NewRouter registers the middlewares, the swagger UI and the /v1 routes.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReferenceProjectRoutes(v1, h.ReferenceProjects)
	addEstimationRoutes(v1, h.EstimationSessions, h.Estimations)
	return router
}

func buildHandlers(cfg config.Config) Handlers {
	ddb := database.ConnectDynamoDB(cfg)

	projectRepo := repository.NewReferenceProjectDynamoRepository(ddb, cfg.ReferenceProjectsTable)
	estimationRepo := repository.NewEstimationDynamoRepository(ddb, cfg.EstimationsTable)
	sheetReader := costsheet.NewDirectoryReader(cfg.CostSheetsDir, cfg.CostSheetHeaderRow)

	projectUseCase := usecase.NewReferenceProjectUseCase(projectRepo, cfg.MaxConcurrentReads)
	costUseCase := usecase.NewCostAveragingUseCase(projectRepo, sheetReader, cfg.MaxConcurrentReads)
	sessionUseCase := usecase.NewEstimationSessionUseCase(costUseCase, estimationRepo, cfg.SessionTTL)
	estimationUseCase := usecase.NewEstimationUseCase(estimationRepo)

	return Handlers{
		ReferenceProjects:  handlers.NewReferenceProjectHandler(projectUseCase, costUseCase),
		EstimationSessions: handlers.NewEstimationSessionHandler(sessionUseCase),
		Estimations:        handlers.NewEstimationHandler(estimationUseCase),
	}
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().Interface("panic", recovered).Str("path", c.Request.URL.Path).Msg("[http][routes] recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
	rg.GET("/catalog", handlers.GetCatalog)
}
