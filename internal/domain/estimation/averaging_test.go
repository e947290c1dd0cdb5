package estimation

import (
	"testing"

	"devis_batiment/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageCostSheets(t *testing.T) {
	sheetA := []entities.CostSheetRow{
		{ItemID: 5, Amount: 1000, ItemName: "Maçonnerie (projet A)"},
		{ItemID: 6, Amount: 500},
		{ItemID: 9, Amount: 42},
	}
	sheetB := []entities.CostSheetRow{
		{ItemID: 5, Amount: 1200, ItemName: "Maçonnerie (projet B)"},
	}

	got := AverageCostSheets([][]entities.CostSheetRow{sheetA, sheetB}, []int{5, 6, 7})
	require.Len(t, got, 3)

	t.Run("mean over the sheets that recorded the item", func(t *testing.T) {
		require.NotNil(t, got[0].Average)
		assert.InDelta(t, 1100, *got[0].Average, 1e-9)
		assert.Equal(t, 2, got[0].Observations)
	})

	t.Run("item missing from a sheet is not divided by it", func(t *testing.T) {
		require.NotNil(t, got[1].Average)
		assert.InDelta(t, 500, *got[1].Average, 1e-9)
		assert.Equal(t, 1, got[1].Observations)
	})

	t.Run("item without history has no value", func(t *testing.T) {
		assert.Nil(t, got[2].Average)
		assert.False(t, got[2].HasValue())
		assert.Equal(t, []int{7}, NoValueItemIDs(got))
	})

	t.Run("name comes from the first sheet then the catalog", func(t *testing.T) {
		assert.Equal(t, "Maçonnerie (projet A)", got[0].Name)
		entry, _ := entities.CatalogEntryByID(6)
		assert.Equal(t, entry.Name, got[1].Name)
	})

	t.Run("unselected ids are ignored", func(t *testing.T) {
		for _, it := range got {
			assert.NotEqual(t, 9, it.ItemID)
		}
		assert.InDelta(t, 1600, SumAverages(got), 1e-9)
	})
}

func TestAverageCostSheets_DuplicateRowsAndIDs(t *testing.T) {
	sheet := []entities.CostSheetRow{
		{ItemID: 3, Amount: 100},
		{ItemID: 3, Amount: 50},
	}
	other := []entities.CostSheetRow{{ItemID: 3, Amount: 250}}

	got := AverageCostSheets([][]entities.CostSheetRow{sheet, other}, []int{3, 3})

	require.Len(t, got, 1)
	require.NotNil(t, got[0].Average)
	assert.InDelta(t, 200, *got[0].Average, 1e-9)
	assert.Equal(t, 2, got[0].Observations)
}

func TestAverageCostSheets_NoSheets(t *testing.T) {
	got := AverageCostSheets(nil, []int{1, 2})
	require.Len(t, got, 2)
	assert.Nil(t, got[0].Average)
	assert.Nil(t, got[1].Average)
	assert.Zero(t, SumAverages(got))
}
