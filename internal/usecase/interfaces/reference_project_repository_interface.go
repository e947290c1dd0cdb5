package interfaces

import (
	"context"

	"devis_batiment/internal/domain/entities"
)

// IReferenceProjectRepository abstracts the store of completed projects used
// as cost references.
//
// The estimation flow must be able to:
//   - list the candidate projects of a construction type
//   - read a project's technical attributes for similarity scoring
//   - list the cost sheets attached to a project
//   - read the surfaces recorded for a project
//
// GetTechnicalAttributes returns a zero project when the id is unknown.
type IReferenceProjectRepository interface {
	ListByConstructionType(ctx context.Context, constructionTypeID string) ([]entities.ReferenceProject, error)
	GetTechnicalAttributes(ctx context.Context, projectID string) (entities.ReferenceProject, error)
	ListCostSheets(ctx context.Context, projectID string) ([]entities.CostSheetRef, error)
	GetSurfaceSamples(ctx context.Context, projectID string) ([]entities.SurfaceSample, error)
}
