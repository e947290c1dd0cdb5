package handlers

import (
	"net/http"

	"devis_batiment/internal/adapter/http/dto/request"
	"devis_batiment/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HeaderUserID carries the id of the operator saving an estimation.
const HeaderUserID = "X-User-ID"

// EstimationSessionHandler drives the estimations being edited.
type EstimationSessionHandler struct {
	usecase usecase.IEstimationSessionUseCase
}

func NewEstimationSessionHandler(uc usecase.IEstimationSessionUseCase) *EstimationSessionHandler {
	return &EstimationSessionHandler{usecase: uc}
}

// StartSession opens a session from scratch, from a client-held sheet or from
// a stored estimation.
//
// @Summary  Start an estimation session
// @Tags     estimation-sessions
// @Accept   json
// @Produce  json
// @Param    body  body      request.StartSessionRequest  true  "seed"
// @Success  201   {object}  usecase.SessionSnapshot
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /estimation-sessions [post]
func (h *EstimationSessionHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	mode, err := payload.ResolveMode()
	if err != nil {
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ctx := c.Request.Context()
	var snap usecase.SessionSnapshot
	switch mode {
	case request.SessionModeFresh:
		snap, err = h.usecase.StartFresh(ctx, payload.ToFreshInput())
	case request.SessionModeResumed:
		snap, err = h.usecase.StartResumed(ctx, *payload.Sheet)
	case request.SessionModeLoaded:
		snap, err = h.usecase.StartLoaded(ctx, payload.ResolveEstimationID())
	}
	if err != nil {
		log.Warn().Err(err).Str("mode", mode).Msg("[sessions][handler] start failed")
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, snap)
}

// GetSession returns the current snapshot.
//
// @Summary  Estimation session snapshot
// @Tags     estimation-sessions
// @Produce  json
// @Param    session_id  path      string  true  "session id"
// @Success  200         {object}  usecase.SessionSnapshot
// @Failure  404         {object}  pkg.HTTPError
// @Router   /estimation-sessions/{session_id} [get]
func (h *EstimationSessionHandler) GetSession(c *gin.Context) {
	h.respond(c, "get", func() (usecase.SessionSnapshot, error) {
		return h.usecase.Get(c.Request.Context(), c.Param("session_id"))
	})
}

// EditAmount replaces the amount of a standard or custom line.
//
// @Summary  Edit a line amount
// @Tags     estimation-sessions
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                     true  "session id"
// @Param    line_id     path      string                     true  "line id"
// @Param    body        body      request.EditAmountRequest  true  "amount"
// @Success  200         {object}  usecase.SessionSnapshot
// @Failure  400         {object}  pkg.HTTPError
// @Failure  404         {object}  pkg.HTTPError
// @Router   /estimation-sessions/{session_id}/lines/{line_id} [patch]
func (h *EstimationSessionHandler) EditAmount(c *gin.Context) {
	var payload request.EditAmountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}
	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	h.respond(c, "edit-amount", func() (usecase.SessionSnapshot, error) {
		return h.usecase.EditAmount(c.Request.Context(), c.Param("session_id"), c.Param("line_id"), amount)
	})
}

// EditMeta updates the title, the client name or the exchange rate.
//
// @Summary  Edit an estimation header field
// @Tags     estimation-sessions
// @Accept   json
// @Produce  json
// @Param    session_id  path      string                   true  "session id"
// @Param    body        body      request.EditMetaRequest  true  "field and value"
// @Success  200         {object}  usecase.SessionSnapshot
// @Failure  400         {object}  pkg.HTTPError
// @Router   /estimation-sessions/{session_id}/meta [patch]
func (h *EstimationSessionHandler) EditMeta(c *gin.Context) {
	var payload request.EditMetaRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	h.respond(c, "edit-meta", func() (usecase.SessionSnapshot, error) {
		return h.usecase.EditMeta(c.Request.Context(), c.Param("session_id"), payload.ResolveField(), payload.Value)
	})
}

// ResetSession discards the edits and seeds the session again.
//
// @Summary  Reset an estimation session
// @Tags     estimation-sessions
// @Produce  json
// @Param    session_id  path      string  true  "session id"
// @Success  200         {object}  usecase.SessionSnapshot
// @Failure  404         {object}  pkg.HTTPError
// @Router   /estimation-sessions/{session_id}/reset [post]
func (h *EstimationSessionHandler) ResetSession(c *gin.Context) {
	h.respond(c, "reset", func() (usecase.SessionSnapshot, error) {
		return h.usecase.Reset(c.Request.Context(), c.Param("session_id"))
	})
}

// SaveSession stores the estimation as a new version.
//
// @Summary  Save an estimation
// @Tags     estimation-sessions
// @Produce  json
// @Param    session_id  path      string  true  "session id"
// @Param    X-User-ID   header    string  true  "operator id"
// @Success  200         {object}  usecase.SessionSnapshot
// @Failure  400         {object}  pkg.HTTPError
// @Failure  409         {object}  pkg.HTTPError
// @Failure  422         {object}  pkg.HTTPError
// @Router   /estimation-sessions/{session_id}/save [post]
func (h *EstimationSessionHandler) SaveSession(c *gin.Context) {
	h.respond(c, "save", func() (usecase.SessionSnapshot, error) {
		return h.usecase.Save(c.Request.Context(), c.Param("session_id"), c.GetHeader(HeaderUserID))
	})
}

// DiscardSession drops the session without saving.
//
// @Summary  Discard an estimation session
// @Tags     estimation-sessions
// @Param    session_id  path  string  true  "session id"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /estimation-sessions/{session_id} [delete]
func (h *EstimationSessionHandler) DiscardSession(c *gin.Context) {
	sessionID := c.Param("session_id")
	if err := h.usecase.Discard(c.Request.Context(), sessionID); err != nil {
		log.Warn().Err(err).Str("session_id", sessionID).Msg("[sessions][handler] discard failed")
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EstimationSessionHandler) respond(c *gin.Context, op string, call func() (usecase.SessionSnapshot, error)) {
	snap, err := call()
	if err != nil {
		log.Warn().Err(err).Str("session_id", c.Param("session_id")).Msgf("[sessions][handler] %s failed", op)
		appErr := mapEstimationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, snap)
}
