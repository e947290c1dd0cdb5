package request

import (
	"strings"

	"devis_batiment/internal/usecase"
)

// CostAverageRequest previews the averaged costs of the selected reference
// projects and their extrapolation to the target surface.
type CostAverageRequest struct {
	ProjectIDs    []string `json:"project_ids" binding:"required"`
	ItemIDs       []int    `json:"item_ids" binding:"required"`
	SurfaceType   string   `json:"surface_type"`
	TargetSurface float64  `json:"target_surface"`
	CustomTotal   float64  `json:"custom_total"`
}

func (r CostAverageRequest) ToPreviewInput() usecase.CostPreviewInput {
	return usecase.CostPreviewInput{
		ProjectIDs:    r.ProjectIDs,
		ItemIDs:       r.ItemIDs,
		SurfaceType:   strings.TrimSpace(r.SurfaceType),
		TargetSurface: r.TargetSurface,
		CustomTotal:   r.CustomTotal,
	}
}
