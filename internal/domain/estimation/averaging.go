package estimation

import (
	"strings"

	"devis_batiment/internal/domain/entities"
)

// AveragedItem is the reduced amount of one catalog item over several sheets.
//
// Average is nil when no sheet recorded the item: a missing history is not the
// same thing as a zero cost.
type AveragedItem struct {
	ItemID       int      `json:"item_id"`
	Name         string   `json:"name"`
	Average      *float64 `json:"average"`
	Observations int      `json:"observations"`
}

// HasValue reports whether at least one sheet supplied the item.
func (a AveragedItem) HasValue() bool { return a.Average != nil }

// AverageCostSheets extracts, for every selected item id, the amount recorded
// in each sheet and reduces the observations to their arithmetic mean.
//
// Sheets that omit an id simply contribute nothing for it. Rows repeated for
// the same id inside one sheet are summed into that sheet's observation. The
// result follows the order of itemIDs, duplicates removed.
func AverageCostSheets(sheets [][]entities.CostSheetRow, itemIDs []int) []AveragedItem {
	ids := uniqueIDs(itemIDs)
	index := make(map[int]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	observations := make([][]float64, len(ids))
	names := make([]string, len(ids))

	for _, sheet := range sheets {
		perSheet := make(map[int]float64)
		var order []int
		for _, row := range sheet {
			i, ok := index[row.ItemID]
			if !ok {
				continue
			}
			if _, seen := perSheet[row.ItemID]; !seen {
				order = append(order, row.ItemID)
			}
			perSheet[row.ItemID] += row.Amount
			if names[i] == "" {
				names[i] = strings.TrimSpace(row.ItemName)
			}
		}
		for _, id := range order {
			i := index[id]
			observations[i] = append(observations[i], perSheet[id])
		}
	}

	out := make([]AveragedItem, len(ids))
	for i, id := range ids {
		item := AveragedItem{ItemID: id, Name: names[i], Observations: len(observations[i])}
		if item.Name == "" {
			if e, ok := entities.CatalogEntryByID(id); ok {
				item.Name = e.Name
			}
		}
		if avg, ok := mean(observations[i]); ok {
			item.Average = &avg
		}
		out[i] = item
	}
	return out
}

// SumAverages adds up the items that have a value.
func SumAverages(items []AveragedItem) float64 {
	var total float64
	for _, it := range items {
		if it.Average != nil {
			total += *it.Average
		}
	}
	return total
}

// NoValueItemIDs lists the items without any cost history.
func NoValueItemIDs(items []AveragedItem) []int {
	var out []int
	for _, it := range items {
		if !it.HasValue() {
			out = append(out, it.ItemID)
		}
	}
	return out
}

func mean(values []float64) (float64, bool) {
	switch len(values) {
	case 0:
		return 0, false
	case 1:
		return values[0], true
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), true
}

func uniqueIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
