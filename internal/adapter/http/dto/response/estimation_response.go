package response

import (
	"time"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/domain/estimation"
)

// EstimationResponse is a stored estimation with its totals.
type EstimationResponse struct {
	entities.EstimationSheet
	TotalStandard float64  `json:"total_standard"`
	TotalCustom   float64  `json:"total_custom"`
	TotalFinal    float64  `json:"total_final"`
	TotalAriary   *float64 `json:"total_ariary"`
	UnitPrice     float64  `json:"unit_price"`
}

func FromEstimationSheet(s entities.EstimationSheet) EstimationResponse {
	totals := estimation.ComputeTotals(s)
	return EstimationResponse{
		EstimationSheet: s,
		TotalStandard:   totals.Standard,
		TotalCustom:     totals.Custom,
		TotalFinal:      totals.Final,
		TotalAriary:     totals.Ariary,
		UnitPrice:       totals.UnitPrice,
	}
}

// EstimationVersionResponse is one entry of a code_fiche's history.
type EstimationVersionResponse struct {
	ID         string    `json:"id"`
	CodeFiche  string    `json:"code_fiche"`
	Version    int       `json:"version"`
	Title      string    `json:"title"`
	ClientName string    `json:"client_name"`
	TotalFinal float64   `json:"total_final"`
	UpdatedBy  string    `json:"updated_by,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromEstimationVersions(sheets []entities.EstimationSheet) []EstimationVersionResponse {
	out := make([]EstimationVersionResponse, 0, len(sheets))
	for _, s := range sheets {
		out = append(out, EstimationVersionResponse{
			ID:         s.ID,
			CodeFiche:  s.CodeFiche,
			Version:    s.Version,
			Title:      s.Title,
			ClientName: s.ClientName,
			TotalFinal: estimation.ComputeTotals(s).Final,
			UpdatedBy:  s.UpdatedBy,
			UpdatedAt:  s.UpdatedAt,
		})
	}
	return out
}
