package entities

import "time"

// CostLineKind tells catalog lines (travaux standard) from ad hoc ones.
type CostLineKind string

const (
	CostLineStandard CostLineKind = "standard"
	CostLineCustom   CostLineKind = "custom"
)

// CostLine is one amount of an estimation.
//
// Standard lines use the decimal catalog id as ID and carry CatalogID.
// Custom lines carry a UUID assigned when the line is created; it is persisted
// so that reloading never relies on names.
type CostLine struct {
	ID        string       `json:"id" dynamodbav:"id"`
	CatalogID int          `json:"catalog_id,omitempty" dynamodbav:"catalog_id,omitempty"`
	Name      string       `json:"name" dynamodbav:"name"`
	Kind      CostLineKind `json:"kind" dynamodbav:"kind"`
	Amount    float64      `json:"amount" dynamodbav:"amount"`
	// NoValue flags a standard line with no cost history in any reference sheet.
	NoValue bool `json:"no_value,omitempty" dynamodbav:"no_value,omitempty"`
}

// EstimationSheet is the versioned estimation document (devis).
//
// Storage model (DynamoDB):
//   - PK: id ("<code_fiche>-v<version>")
//   - GSI1 (code_fiche-index): code_fiche, version
//
// Monetary representation:
//   - amounts are EUR; ExchangeRate converts to Ariary when set.
//   - standard amounts are expressed on ReferenceSurface, custom amounts are absolute.
type EstimationSheet struct {
	ID                    string             `json:"id"`
	CodeFiche             string             `json:"code_fiche"`
	Version               int                `json:"version"`
	Title                 string             `json:"title"`
	ClientName            string             `json:"client_name"`
	SurfaceType           string             `json:"surface_type"`
	ReferenceSurface      float64            `json:"reference_surface"`
	TargetSurface         float64            `json:"target_surface"`
	ExchangeRate          *float64           `json:"exchange_rate,omitempty"`
	ConstructionTypeID    string             `json:"construction_type_id,omitempty"`
	StandardLines         []CostLine         `json:"standard_lines"`
	CustomLines           []CostLine         `json:"custom_lines"`
	InitialPercentages    map[string]float64 `json:"initial_percentages,omitempty"`
	ReferenceProjectNames []string           `json:"reference_project_names"`
	CreatedBy             string             `json:"created_by,omitempty"`
	UpdatedBy             string             `json:"updated_by,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	UpdatedAt             time.Time          `json:"updated_at"`
}

// IsPersisted reports whether the sheet already has an identity in the store.
func (s EstimationSheet) IsPersisted() bool {
	return s.CodeFiche != ""
}

// Clone returns a deep copy of the sheet.
func (s EstimationSheet) Clone() EstimationSheet {
	out := s
	out.StandardLines = append([]CostLine(nil), s.StandardLines...)
	out.CustomLines = append([]CostLine(nil), s.CustomLines...)
	out.ReferenceProjectNames = append([]string(nil), s.ReferenceProjectNames...)
	if s.ExchangeRate != nil {
		out.ExchangeRate = FloatPtr(*s.ExchangeRate)
	}
	if s.InitialPercentages != nil {
		out.InitialPercentages = make(map[string]float64, len(s.InitialPercentages))
		for k, v := range s.InitialPercentages {
			out.InitialPercentages[k] = v
		}
	}
	return out
}
