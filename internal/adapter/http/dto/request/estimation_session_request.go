package request

import (
	"errors"
	"strings"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/domain/estimation"
	"devis_batiment/internal/usecase"
)

var (
	ErrInvalidSessionMode = errors.New("invalid session mode")
	ErrMissingSheet       = errors.New("sheet is required for a resumed session")
	ErrMissingAmount      = errors.New("amount is required")
)

// Session modes accepted by StartSessionRequest.
const (
	SessionModeFresh   = "fresh"
	SessionModeResumed = "resumed"
	SessionModeLoaded  = "loaded"
)

type CustomEntryRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// StartSessionRequest opens an editing session.
//
// mode "fresh" seeds from the reference projects, "resumed" from a sheet kept
// by the client and "loaded" from a stored estimation.
type StartSessionRequest struct {
	Mode string `json:"mode" binding:"required"`

	// loaded
	EstimationID string `json:"estimation_id"`

	// resumed
	Sheet *entities.EstimationSheet `json:"sheet"`

	// fresh
	Title                 string               `json:"title"`
	ClientName            string               `json:"client_name"`
	ConstructionTypeID    string               `json:"construction_type_id"`
	SurfaceType           string               `json:"surface_type"`
	TargetSurface         float64              `json:"target_surface"`
	ExchangeRate          *float64             `json:"exchange_rate"`
	ProjectIDs            []string             `json:"project_ids"`
	ReferenceProjectNames []string             `json:"reference_project_names"`
	ItemIDs               []int                `json:"item_ids"`
	CustomEntries         []CustomEntryRequest `json:"custom_entries"`
}

func (r StartSessionRequest) ResolveMode() (string, error) {
	mode := strings.ToLower(strings.TrimSpace(r.Mode))
	switch mode {
	case SessionModeFresh, SessionModeLoaded:
		return mode, nil
	case SessionModeResumed:
		if r.Sheet == nil {
			return "", ErrMissingSheet
		}
		return mode, nil
	}
	return "", ErrInvalidSessionMode
}

func (r StartSessionRequest) ResolveEstimationID() string {
	return strings.TrimSpace(r.EstimationID)
}

func (r StartSessionRequest) ToFreshInput() usecase.FreshSessionInput {
	var entries []estimation.CustomEntry
	for _, e := range r.CustomEntries {
		entries = append(entries, estimation.CustomEntry{Name: e.Name, Amount: e.Amount})
	}
	return usecase.FreshSessionInput{
		Title:                 r.Title,
		ClientName:            r.ClientName,
		ConstructionTypeID:    r.ConstructionTypeID,
		SurfaceType:           r.SurfaceType,
		TargetSurface:         r.TargetSurface,
		ExchangeRate:          r.ExchangeRate,
		ProjectIDs:            r.ProjectIDs,
		ReferenceProjectNames: r.ReferenceProjectNames,
		ItemIDs:               r.ItemIDs,
		CustomEntries:         entries,
	}
}

// EditAmountRequest replaces the amount of one line. Zero is a valid amount.
type EditAmountRequest struct {
	Amount *float64 `json:"amount"`
}

func (r EditAmountRequest) ResolveAmount() (float64, error) {
	if r.Amount == nil {
		return 0, ErrMissingAmount
	}
	return *r.Amount, nil
}

// EditMetaRequest updates one header field. The exchange rate is sent as text
// ("4600" or "4600,5"); blank clears it.
type EditMetaRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (r EditMetaRequest) ResolveField() estimation.MetaField {
	return estimation.MetaField(strings.ToLower(strings.TrimSpace(r.Field)))
}
