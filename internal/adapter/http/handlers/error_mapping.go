package handlers

import (
	"errors"
	"net/http"

	"devis_batiment/internal/adapter/http/dto/request"
	"devis_batiment/internal/domain/estimation"
	"devis_batiment/internal/usecase"
	"devis_batiment/pkg"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapEstimationError turns use case and reconciler errors into API errors.
// Order matters: a failed save wraps its cause.
func mapEstimationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrVersionConflict):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "This version was saved by someone else, reload the estimation", http.StatusConflict)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Estimation session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEstimationNotFound), errors.Is(err, estimation.ErrEstimationNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_FOUND", "Estimation not found", http.StatusNotFound)
	case errors.Is(err, estimation.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Cost line not found", http.StatusNotFound)
	case errors.Is(err, estimation.ErrMissingTitle):
		return pkg.NewDomainErrorSimple("TITLE_REQUIRED", "The estimation needs a title", http.StatusUnprocessableEntity)
	case errors.Is(err, estimation.ErrNoPositiveLine):
		return pkg.NewDomainErrorSimple("EMPTY_ESTIMATION", "At least one line must have a positive amount", http.StatusUnprocessableEntity)
	case errors.Is(err, estimation.ErrNotEditable), errors.Is(err, estimation.ErrAlreadySeeded):
		return pkg.NewDomainErrorSimple("ESTIMATION_NOT_EDITABLE", "The estimation cannot be edited right now", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("USER_REQUIRED", "X-User-ID header is required", http.StatusBadRequest)
	case errors.Is(err, estimation.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("STORAGE_UNAVAILABLE", "Estimation storage is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvalidSessionID),
		errors.Is(err, usecase.ErrInvalidEstimationID),
		errors.Is(err, usecase.ErrInvalidCodeFiche),
		errors.Is(err, usecase.ErrInvalidConstructionType),
		errors.Is(err, usecase.ErrNoReferenceProjects),
		errors.Is(err, usecase.ErrNoCatalogItems),
		errors.Is(err, usecase.ErrInvalidSurfaceType),
		errors.Is(err, usecase.ErrInvalidSurfaceValue),
		errors.Is(err, estimation.ErrNilStrategy),
		errors.Is(err, estimation.ErrUnknownCatalogItem),
		errors.Is(err, estimation.ErrDuplicateLine),
		errors.Is(err, estimation.ErrInvalidAmount),
		errors.Is(err, estimation.ErrInvalidCustomLine),
		errors.Is(err, estimation.ErrInvalidSurface),
		errors.Is(err, estimation.ErrInvalidExchangeRate),
		errors.Is(err, estimation.ErrUnknownMetaField),
		errors.Is(err, request.ErrInvalidSessionMode),
		errors.Is(err, request.ErrMissingSheet),
		errors.Is(err, request.ErrMissingAmount):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
