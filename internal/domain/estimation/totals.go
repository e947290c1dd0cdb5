package estimation

import (
	"devis_batiment/internal/domain/entities"
)

// Totals are the derived amounts of an estimation. They are recomputed from
// the lines on every read; nothing is cached.
type Totals struct {
	Standard  float64  `json:"total_standard"`
	Custom    float64  `json:"total_custom"`
	Final     float64  `json:"total_final"`
	Ariary    *float64 `json:"total_ariary"`
	UnitPrice float64  `json:"unit_price"`
	Ratio     float64  `json:"surface_ratio"`
}

// SurfaceRatio is target/reference when both surfaces are set, 1 otherwise.
func SurfaceRatio(referenceSurface, targetSurface float64) float64 {
	if referenceSurface != 0 && targetSurface != 0 {
		return targetSurface / referenceSurface
	}
	return 1
}

// SumAmounts adds the line amounts.
func SumAmounts(lines []entities.CostLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Amount
	}
	return total
}

// EffectiveAmount is the share of the final total carried by a line: standard
// amounts are scaled to the target surface, custom amounts are taken as is.
func EffectiveAmount(line entities.CostLine, ratio float64) float64 {
	if line.Kind == entities.CostLineStandard {
		return line.Amount * ratio
	}
	return line.Amount
}

// ComputeTotals derives the totals of a sheet.
func ComputeTotals(sheet entities.EstimationSheet) Totals {
	ratio := SurfaceRatio(sheet.ReferenceSurface, sheet.TargetSurface)
	t := Totals{
		Standard: SumAmounts(sheet.StandardLines),
		Custom:   SumAmounts(sheet.CustomLines),
		Ratio:    ratio,
	}
	t.Final = t.Standard*ratio + t.Custom
	t.UnitPrice = UnitPrice(t.Standard, sheet.ReferenceSurface)
	t.Ariary = ToAriary(t.Final, sheet.ExchangeRate)
	return t
}

// ToAriary converts a EUR total. Without a rate there is no Ariary total at
// all, it is never defaulted.
func ToAriary(totalFinal float64, exchangeRate *float64) *float64 {
	if exchangeRate == nil || *exchangeRate == 0 {
		return nil
	}
	v := totalFinal * *exchangeRate
	return &v
}

// Percentages returns the share of every line (standard and custom) in the
// final total, keyed by line id. All shares are 0 when the total is 0.
func Percentages(sheet entities.EstimationSheet) map[string]float64 {
	t := ComputeTotals(sheet)
	out := make(map[string]float64, len(sheet.StandardLines)+len(sheet.CustomLines))
	for _, lines := range [][]entities.CostLine{sheet.StandardLines, sheet.CustomLines} {
		for _, l := range lines {
			out[l.ID] = percentage(EffectiveAmount(l, t.Ratio), t.Final)
		}
	}
	return out
}

func percentage(value, total float64) float64 {
	if total == 0 {
		return 0
	}
	return value / total * 100
}
