package interfaces

import (
	"context"

	"devis_batiment/internal/domain/entities"
)

// IEstimationRepository abstracts DynamoDB persistence for EstimationSheet.
//
// Save writes the sheet as given (id, code_fiche and version already set) and
// never overwrites: it returns a zero sheet when that id already exists.
// GetByID returns a zero sheet when the document does not exist.
// ListByCodeFiche returns the versions oldest first.
type IEstimationRepository interface {
	Save(ctx context.Context, sheet entities.EstimationSheet) (entities.EstimationSheet, error)
	GetByID(ctx context.Context, id string) (entities.EstimationSheet, error)
	Delete(ctx context.Context, id string) error
	ListByCodeFiche(ctx context.Context, codeFiche string) ([]entities.EstimationSheet, error)
}
