package interfaces

import (
	"context"

	"devis_batiment/internal/domain/entities"
)

// ICostSheetReader turns a stored cost sheet into rows keyed by catalog id.
type ICostSheetReader interface {
	Read(ctx context.Context, ref entities.CostSheetRef) ([]entities.CostSheetRow, error)
}
