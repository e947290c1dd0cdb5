package handlers

import (
	"net/http"

	"devis_batiment/internal/adapter/http/dto/request"
	"devis_batiment/internal/adapter/http/dto/response"
	"devis_batiment/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ReferenceProjectHandler ranks completed projects and previews their costs.
type ReferenceProjectHandler struct {
	projects usecase.IReferenceProjectUseCase
	costs    usecase.ICostAveragingUseCase
}

func NewReferenceProjectHandler(projects usecase.IReferenceProjectUseCase, costs usecase.ICostAveragingUseCase) *ReferenceProjectHandler {
	return &ReferenceProjectHandler{projects: projects, costs: costs}
}

// RankProjects scores the projects of a construction type against the criteria.
//
// @Summary  Rank reference projects
// @Tags     reference-projects
// @Accept   json
// @Produce  json
// @Param    body  body      request.RankProjectsRequest  true  "criteria"
// @Success  200   {array}   response.ScoredProjectResponse
// @Failure  400   {object}  pkg.HTTPError
// @Router   /reference-projects/rank [post]
func (h *ReferenceProjectHandler) RankProjects(c *gin.Context) {
	var payload request.RankProjectsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	ranked, err := h.projects.RankProjects(c.Request.Context(), payload.ResolveConstructionTypeID(), payload.Criteria)
	if err != nil {
		log.Warn().Err(err).Str("construction_type_id", payload.ConstructionTypeID).Msg("[projects][handler] rank failed")
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromScoredProjects(ranked))
}

// PreviewCosts averages the selected projects' costs and extrapolates them.
//
// @Summary  Average reference costs
// @Tags     reference-projects
// @Accept   json
// @Produce  json
// @Param    body  body      request.CostAverageRequest  true  "selection"
// @Success  200   {object}  usecase.CostPreview
// @Failure  400   {object}  pkg.HTTPError
// @Router   /cost-averages [post]
func (h *ReferenceProjectHandler) PreviewCosts(c *gin.Context) {
	var payload request.CostAverageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	preview, err := h.costs.Preview(c.Request.Context(), payload.ToPreviewInput())
	if err != nil {
		log.Warn().Err(err).Strs("project_ids", payload.ProjectIDs).Msg("[costs][handler] preview failed")
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, preview)
}
