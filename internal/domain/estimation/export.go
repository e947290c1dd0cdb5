package estimation

import (
	"strconv"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/pkg/format"
)

// ExportHeader describes the estimation on a rendered document.
type ExportHeader struct {
	CodeFiche             string   `json:"code_fiche"`
	Version               int      `json:"version"`
	Title                 string   `json:"title"`
	ClientName            string   `json:"client_name"`
	SurfaceType           string   `json:"surface_type"`
	ReferenceSurface      string   `json:"reference_surface"`
	TargetSurface         string   `json:"target_surface"`
	UnitPrice             string   `json:"unit_price"`
	ExchangeRate          string   `json:"exchange_rate,omitempty"`
	ReferenceProjectNames []string `json:"reference_project_names"`
}

// ExportRow is one line of the document, raw values next to their display form.
type ExportRow struct {
	LineID             string                `json:"line_id"`
	Name               string                `json:"name"`
	Kind               entities.CostLineKind `json:"kind"`
	Amount             float64               `json:"amount"`
	ExtrapolatedAmount float64               `json:"extrapolated_amount"`
	InitialPercentage  float64               `json:"initial_percentage"`
	CurrentPercentage  float64               `json:"current_percentage"`
	NoValue            bool                  `json:"no_value"`
	Display            ExportRowDisplay      `json:"display"`
}

type ExportRowDisplay struct {
	Amount             string `json:"amount"`
	ExtrapolatedAmount string `json:"extrapolated_amount"`
	InitialPercentage  string `json:"initial_percentage"`
	CurrentPercentage  string `json:"current_percentage"`
}

type ExportTotals struct {
	Standard        float64  `json:"total_standard"`
	Custom          float64  `json:"total_custom"`
	Final           float64  `json:"total_final"`
	Ariary          *float64 `json:"total_ariary"`
	StandardDisplay string   `json:"total_standard_display"`
	CustomDisplay   string   `json:"total_custom_display"`
	FinalDisplay    string   `json:"total_final_display"`
	AriaryDisplay   string   `json:"total_ariary_display,omitempty"`
}

// ExportData is everything a PDF or spreadsheet renderer needs.
type ExportData struct {
	Header ExportHeader `json:"header"`
	Rows   []ExportRow  `json:"rows"`
	Totals ExportTotals `json:"totals"`
}

// BuildExport lays out a snapshot for rendering: standard lines in catalog
// order, then custom lines in entry order.
func BuildExport(s Snapshot) ExportData {
	out := ExportData{
		Header: ExportHeader{
			CodeFiche:             s.CodeFiche,
			Version:               s.Version,
			Title:                 s.Title,
			ClientName:            s.ClientName,
			SurfaceType:           s.SurfaceType,
			ReferenceSurface:      format.Surface(s.ReferenceSurface),
			TargetSurface:         format.Surface(s.TargetSurface),
			UnitPrice:             format.Euro(s.UnitPrice) + "/m²",
			ReferenceProjectNames: append([]string(nil), s.ReferenceProjectNames...),
		},
		Totals: ExportTotals{
			Standard:        s.TotalStandard,
			Custom:          s.TotalCustom,
			Final:           s.TotalFinal,
			Ariary:          s.TotalAriary,
			StandardDisplay: format.Euro(s.TotalStandard),
			CustomDisplay:   format.Euro(s.TotalCustom),
			FinalDisplay:    format.Euro(s.TotalFinal),
		},
	}
	if s.ExchangeRate != nil {
		out.Header.ExchangeRate = strconv.FormatFloat(*s.ExchangeRate, 'f', -1, 64)
	}
	if s.TotalAriary != nil {
		out.Totals.AriaryDisplay = format.Ariary(*s.TotalAriary)
	}

	for _, lines := range [][]LineView{s.StandardLines, s.CustomLines} {
		for _, l := range lines {
			out.Rows = append(out.Rows, ExportRow{
				LineID:             l.ID,
				Name:               l.Name,
				Kind:               l.Kind,
				Amount:             l.Amount,
				ExtrapolatedAmount: l.ExtrapolatedAmount,
				InitialPercentage:  l.InitialPercentage,
				CurrentPercentage:  l.CurrentPercentage,
				NoValue:            l.NoValue,
				Display: ExportRowDisplay{
					Amount:             format.Euro(l.Amount),
					ExtrapolatedAmount: format.Euro(l.ExtrapolatedAmount),
					InitialPercentage:  format.Percent(l.InitialPercentage),
					CurrentPercentage:  format.Percent(l.CurrentPercentage),
				},
			})
		}
	}
	return out
}
