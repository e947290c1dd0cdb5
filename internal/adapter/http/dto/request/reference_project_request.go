package request

import (
	"strings"

	"devis_batiment/internal/domain/entities"
)

// RankProjectsRequest selects the construction type to search and the
// characteristics the new project should resemble. Unset criteria are ignored.
type RankProjectsRequest struct {
	ConstructionTypeID string                      `json:"construction_type_id" binding:"required"`
	Criteria           entities.SimilarityCriteria `json:"criteria"`
}

func (r RankProjectsRequest) ResolveConstructionTypeID() string {
	return strings.TrimSpace(r.ConstructionTypeID)
}
