package handlers

import (
	"net/http"

	"devis_batiment/internal/adapter/http/dto/response"
	"devis_batiment/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// EstimationHandler serves the stored estimation documents.
type EstimationHandler struct {
	usecase usecase.IEstimationUseCase
}

func NewEstimationHandler(uc usecase.IEstimationUseCase) *EstimationHandler {
	return &EstimationHandler{usecase: uc}
}

// GetEstimation returns one stored version.
//
// @Summary  Load an estimation
// @Tags     estimations
// @Produce  json
// @Param    id   path      string  true  "estimation id (<code_fiche>-v<version>)"
// @Success  200  {object}  response.EstimationResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimations/{id} [get]
func (h *EstimationHandler) GetEstimation(c *gin.Context) {
	id := c.Param("id")
	sheet, err := h.usecase.Load(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "load", "id", id)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimationSheet(sheet))
}

// DeleteEstimation removes one stored version.
//
// @Summary  Delete an estimation
// @Tags     estimations
// @Param    id   path  string  true  "estimation id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimations/{id} [delete]
func (h *EstimationHandler) DeleteEstimation(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "delete", "id", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// ExportEstimation returns the data used to render the estimation as a document.
//
// @Summary  Export an estimation
// @Tags     estimations
// @Produce  json
// @Param    id   path      string  true  "estimation id"
// @Success  200  {object}  estimation.ExportData
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimations/{id}/export [get]
func (h *EstimationHandler) ExportEstimation(c *gin.Context) {
	id := c.Param("id")
	data, err := h.usecase.Export(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "export", "id", id)
		return
	}
	c.JSON(http.StatusOK, data)
}

// ListVersions returns the history of a code_fiche, oldest first.
//
// @Summary  Estimation versions
// @Tags     estimations
// @Produce  json
// @Param    code_fiche  path      string  true  "code fiche"
// @Success  200         {array}   response.EstimationVersionResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /estimations/code/{code_fiche}/versions [get]
func (h *EstimationHandler) ListVersions(c *gin.Context) {
	code := c.Param("code_fiche")
	sheets, err := h.usecase.ListVersions(c.Request.Context(), code)
	if err != nil {
		h.fail(c, err, "versions", "code_fiche", code)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimationVersions(sheets))
}

func (h *EstimationHandler) fail(c *gin.Context, err error, op, key, value string) {
	log.Warn().Err(err).Str(key, value).Msgf("[estimations][handler] %s failed", op)
	appErr := mapEstimationError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
