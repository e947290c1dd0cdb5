package estimation

import (
	"testing"

	"devis_batiment/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSheet() entities.EstimationSheet {
	return entities.EstimationSheet{
		ReferenceSurface: 500,
		TargetSurface:    650,
		StandardLines: []entities.CostLine{
			{ID: "1", CatalogID: 1, Kind: entities.CostLineStandard, Amount: 500_000},
			{ID: "5", CatalogID: 5, Kind: entities.CostLineStandard, Amount: 1_500_000},
		},
		CustomLines: []entities.CostLine{
			{ID: "c1", Kind: entities.CostLineCustom, Amount: 50_000},
		},
	}
}

func TestSurfaceRatio(t *testing.T) {
	assert.InDelta(t, 1.3, SurfaceRatio(500, 650), 1e-12)
	assert.Equal(t, 1.0, SurfaceRatio(0, 650))
	assert.Equal(t, 1.0, SurfaceRatio(500, 0))
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals(sampleSheet())

	assert.InDelta(t, 2_000_000, totals.Standard, 1e-9)
	assert.InDelta(t, 50_000, totals.Custom, 1e-9)
	assert.InDelta(t, 2_650_000, totals.Final, 1e-6)
	assert.InDelta(t, 4000, totals.UnitPrice, 1e-9)
	assert.Nil(t, totals.Ariary)
}

func TestComputeTotals_Ariary(t *testing.T) {
	t.Run("rate set", func(t *testing.T) {
		sheet := sampleSheet()
		sheet.ExchangeRate = entities.FloatPtr(4800)
		totals := ComputeTotals(sheet)
		require.NotNil(t, totals.Ariary)
		assert.InDelta(t, 2_650_000*4800, *totals.Ariary, 1e-3)
	})

	t.Run("zero rate is no rate", func(t *testing.T) {
		sheet := sampleSheet()
		sheet.ExchangeRate = entities.FloatPtr(0)
		assert.Nil(t, ComputeTotals(sheet).Ariary)
	})
}

func TestPercentages(t *testing.T) {
	got := Percentages(sampleSheet())

	var sum float64
	for _, p := range got {
		sum += p
	}
	assert.InDelta(t, 100, sum, 1e-9)
	assert.InDelta(t, 500_000*1.3/2_650_000*100, got["1"], 1e-9)
	assert.InDelta(t, 50_000.0/2_650_000*100, got["c1"], 1e-9)
}

func TestPercentages_ZeroTotal(t *testing.T) {
	sheet := entities.EstimationSheet{
		StandardLines: []entities.CostLine{{ID: "1", CatalogID: 1, Kind: entities.CostLineStandard}},
		CustomLines:   []entities.CostLine{{ID: "c1", Kind: entities.CostLineCustom}},
	}
	got := Percentages(sheet)
	assert.Equal(t, map[string]float64{"1": 0, "c1": 0}, got)
}
