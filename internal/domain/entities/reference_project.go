package entities

// TechnicalAttributes are the comparable characteristics of a project.
//
// Numeric fields are pointers so that "unset" differs from zero; string fields
// are unset when blank. The same shape is used for similarity criteria.
type TechnicalAttributes struct {
	FloorCount     *int     `json:"floor_count,omitempty" dynamodbav:"floor_count,omitempty"`
	TotalSurface   *float64 `json:"total_surface,omitempty" dynamodbav:"total_surface,omitempty"`
	StructureType  string   `json:"structure_type,omitempty" dynamodbav:"structure_type,omitempty"`
	RoofType       string   `json:"roof_type,omitempty" dynamodbav:"roof_type,omitempty"`
	JoineryType    string   `json:"joinery_type,omitempty" dynamodbav:"joinery_type,omitempty"`
	FloorType      string   `json:"floor_type,omitempty" dynamodbav:"floor_type,omitempty"`
	FoundationType string   `json:"foundation_type,omitempty" dynamodbav:"foundation_type,omitempty"`
}

// SimilarityCriteria is the operator-entered partial copy of TechnicalAttributes.
type SimilarityCriteria = TechnicalAttributes

// ReferenceProject is a completed project whose historical costs can seed a
// new estimation. Read-only from this service's point of view.
type ReferenceProject struct {
	ID                  string              `json:"id"`
	Name                string              `json:"name"`
	ConstructionTypeID  string              `json:"construction_type_id"`
	TechnicalAttributes TechnicalAttributes `json:"technical_attributes"`
}

// CostSheetRef identifies a cost sheet file (relative path in the sheet store).
type CostSheetRef string

// CostSheetRow is one amount recorded for a catalog item in a cost sheet.
type CostSheetRow struct {
	ItemID   int     `json:"item_id"`
	Amount   float64 `json:"amount"`
	ItemName string  `json:"item_name,omitempty"`
}

// SurfaceSample is a surface measured on a reference project (e.g. "habitable").
type SurfaceSample struct {
	SurfaceTypeName string  `json:"surface_type_name" dynamodbav:"surface_type_name"`
	SurfaceValue    float64 `json:"surface_value" dynamodbav:"surface_value"`
}

// IntPtr and FloatPtr help build optional attributes.
func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }
