package estimation

import (
	"testing"

	"devis_batiment/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestExtrapolate(t *testing.T) {
	got := Extrapolate(2_000_000, 500, 650, 50_000)

	assert.InDelta(t, 4000, got.UnitPrice, 1e-9)
	assert.InDelta(t, 2_650_000, got.BaseEstimation, 1e-6)
}

func TestUnitPrice_ZeroReferenceSurface(t *testing.T) {
	assert.Zero(t, UnitPrice(2_000_000, 0))
	assert.InDelta(t, 50_000, Extrapolate(2_000_000, 0, 650, 50_000).BaseEstimation, 1e-9)
}

func TestReferenceSurface(t *testing.T) {
	samples := [][]entities.SurfaceSample{
		{{SurfaceTypeName: "SHOB", SurfaceValue: 400}, {SurfaceTypeName: "SHON", SurfaceValue: 350}},
		{{SurfaceTypeName: "shob ", SurfaceValue: 600}},
		{{SurfaceTypeName: "Emprise", SurfaceValue: 200}},
		nil,
	}

	tests := []struct {
		name        string
		surfaceType string
		want        float64
	}{
		{"averages projects with a sample", "SHOB", 500},
		{"single project", "shon", 350},
		{"no sample of that type", "Terrain", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ReferenceSurface(samples, tt.surfaceType), 1e-9)
		})
	}
}
