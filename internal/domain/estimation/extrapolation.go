package estimation

import (
	"strings"

	"devis_batiment/internal/domain/entities"
)

// Extrapolation is the price of the standard items per m² of the reference
// surface and the base total for the target surface.
type Extrapolation struct {
	UnitPrice      float64 `json:"unit_price"`
	BaseEstimation float64 `json:"base_estimation"`
}

// UnitPrice divides the standard items total by the surface it was measured
// on. A zero reference surface yields 0.
func UnitPrice(standardTotal, referenceSurface float64) float64 {
	if referenceSurface == 0 {
		return 0
	}
	return standardTotal / referenceSurface
}

// BaseEstimation scales the unit price to the target surface and adds the
// custom lines, which are not surface dependent.
func BaseEstimation(unitPrice, targetSurface, customTotal float64) float64 {
	return unitPrice*targetSurface + customTotal
}

func Extrapolate(standardTotal, referenceSurface, targetSurface, customTotal float64) Extrapolation {
	up := UnitPrice(standardTotal, referenceSurface)
	return Extrapolation{
		UnitPrice:      up,
		BaseEstimation: BaseEstimation(up, targetSurface, customTotal),
	}
}

// ReferenceSurface averages, over the reference projects, the surface of the
// requested type. samples holds one slice per project. Projects without a
// sample of that type are left out; without any sample the result is 0.
func ReferenceSurface(samples [][]entities.SurfaceSample, surfaceType string) float64 {
	surfaceType = strings.TrimSpace(surfaceType)
	var sum float64
	n := 0
	for _, project := range samples {
		for _, s := range project {
			if strings.EqualFold(strings.TrimSpace(s.SurfaceTypeName), surfaceType) {
				sum += s.SurfaceValue
				n++
				break
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
