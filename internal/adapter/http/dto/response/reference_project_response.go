package response

import (
	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/domain/estimation"
)

type ScoredProjectResponse struct {
	ProjectID           string                       `json:"project_id"`
	Name                string                       `json:"name"`
	ConstructionTypeID  string                       `json:"construction_type_id"`
	Score               int                          `json:"score"`
	TechnicalAttributes entities.TechnicalAttributes `json:"technical_attributes"`
}

func FromScoredProjects(ranked []estimation.ScoredProject) []ScoredProjectResponse {
	out := make([]ScoredProjectResponse, 0, len(ranked))
	for _, sp := range ranked {
		out = append(out, ScoredProjectResponse{
			ProjectID:           sp.Project.ID,
			Name:                sp.Project.Name,
			ConstructionTypeID:  sp.Project.ConstructionTypeID,
			Score:               sp.Score,
			TechnicalAttributes: sp.Project.TechnicalAttributes,
		})
	}
	return out
}

type CatalogResponse struct {
	Items []entities.CatalogEntry `json:"items"`
}

func FromCatalog(entries []entities.CatalogEntry) CatalogResponse {
	return CatalogResponse{Items: entries}
}
