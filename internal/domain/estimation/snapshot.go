package estimation

import (
	"maps"

	"devis_batiment/internal/domain/entities"
)

// LineView is a cost line with its derived values.
type LineView struct {
	entities.CostLine
	ExtrapolatedAmount float64 `json:"extrapolated_amount"`
	InitialPercentage  float64 `json:"initial_percentage"`
	CurrentPercentage  float64 `json:"current_percentage"`
}

// Snapshot is a read-only view of a reconciler.
type Snapshot struct {
	State                 State              `json:"state"`
	SeedKind              SeedKind           `json:"seed_kind,omitempty"`
	ID                    string             `json:"id,omitempty"`
	CodeFiche             string             `json:"code_fiche,omitempty"`
	Version               int                `json:"version,omitempty"`
	Title                 string             `json:"title"`
	ClientName            string             `json:"client_name"`
	ConstructionTypeID    string             `json:"construction_type_id,omitempty"`
	SurfaceType           string             `json:"surface_type,omitempty"`
	ReferenceSurface      float64            `json:"reference_surface"`
	TargetSurface         float64            `json:"target_surface"`
	ExchangeRate          *float64           `json:"exchange_rate"`
	ReferenceProjectNames []string           `json:"reference_project_names"`
	StandardLines         []LineView         `json:"standard_lines"`
	CustomLines           []LineView         `json:"custom_lines"`
	InitialPercentages    map[string]float64 `json:"initial_percentages"`
	CurrentPercentages    map[string]float64 `json:"current_percentages"`
	TotalStandard         float64            `json:"total_standard"`
	TotalCustom           float64            `json:"total_custom"`
	TotalFinal            float64            `json:"total_final"`
	TotalAriary           *float64           `json:"total_ariary"`
	UnitPrice             float64            `json:"unit_price"`
	SurfaceRatio          float64            `json:"surface_ratio"`
	HasChanges            bool               `json:"has_changes"`
}

// Snapshot derives every value from the current lines.
func (r *Reconciler) Snapshot() Snapshot {
	if r.state == StateUninitialized {
		return Snapshot{State: r.state}
	}

	sheet := r.sheet.Clone()
	totals := ComputeTotals(sheet)
	current := Percentages(sheet)

	s := Snapshot{
		State:                 r.state,
		SeedKind:              r.SeedKind(),
		ID:                    sheet.ID,
		CodeFiche:             sheet.CodeFiche,
		Version:               sheet.Version,
		Title:                 sheet.Title,
		ClientName:            sheet.ClientName,
		ConstructionTypeID:    sheet.ConstructionTypeID,
		SurfaceType:           sheet.SurfaceType,
		ReferenceSurface:      sheet.ReferenceSurface,
		TargetSurface:         sheet.TargetSurface,
		ExchangeRate:          sheet.ExchangeRate,
		ReferenceProjectNames: sheet.ReferenceProjectNames,
		InitialPercentages:    maps.Clone(r.initial),
		CurrentPercentages:    current,
		TotalStandard:         totals.Standard,
		TotalCustom:           totals.Custom,
		TotalFinal:            totals.Final,
		TotalAriary:           totals.Ariary,
		UnitPrice:             totals.UnitPrice,
		SurfaceRatio:          totals.Ratio,
		HasChanges:            r.HasChanges(),
	}
	s.StandardLines = r.lineViews(sheet.StandardLines, totals.Ratio, current)
	s.CustomLines = r.lineViews(sheet.CustomLines, totals.Ratio, current)
	return s
}

func (r *Reconciler) lineViews(lines []entities.CostLine, ratio float64, current map[string]float64) []LineView {
	out := make([]LineView, len(lines))
	for i, l := range lines {
		out[i] = LineView{
			CostLine:           l,
			ExtrapolatedAmount: EffectiveAmount(l, ratio),
			InitialPercentage:  r.initial[l.ID],
			CurrentPercentage:  current[l.ID],
		}
	}
	return out
}
