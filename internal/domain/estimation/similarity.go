// Package estimation holds the estimation core: similarity scoring of
// reference projects, averaging of historical cost sheets, surface
// extrapolation and the reconciler that owns an editable estimation.
package estimation

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"devis_batiment/internal/domain/entities"
)

// surfaceTolerance is the relative band around the criterion surface that
// still counts as a match.
const surfaceTolerance = 0.10

// ScoredProject is a reference project with its match percentage.
type ScoredProject struct {
	Project entities.ReferenceProject `json:"project"`
	Score   int                       `json:"score"`
}

// Score compares a project's attributes with the operator criteria and returns
// a 0-100 match percentage. Only criteria that are set count; with no criteria
// the score is 0. A total surface of 0 or less is left unset, a floor count of
// 0 is a ground floor only building and counts.
func Score(attrs entities.TechnicalAttributes, criteria entities.SimilarityCriteria) int {
	total, matches := 0, 0

	if criteria.FloorCount != nil {
		total++
		if attrs.FloorCount != nil && *attrs.FloorCount == *criteria.FloorCount {
			matches++
		}
	}

	if criteria.TotalSurface != nil && *criteria.TotalSurface > 0 {
		total++
		if surfaceMatches(attrs.TotalSurface, *criteria.TotalSurface) {
			matches++
		}
	}

	textual := []struct{ want, got string }{
		{criteria.StructureType, attrs.StructureType},
		{criteria.RoofType, attrs.RoofType},
		{criteria.JoineryType, attrs.JoineryType},
		{criteria.FloorType, attrs.FloorType},
		{criteria.FoundationType, attrs.FoundationType},
	}
	for _, f := range textual {
		want := strings.TrimSpace(f.want)
		if want == "" {
			continue
		}
		total++
		if strings.EqualFold(strings.TrimSpace(f.got), want) {
			matches++
		}
	}

	if total == 0 {
		return 0
	}
	return int(math.Round(float64(matches) / float64(total) * 100))
}

func surfaceMatches(got *float64, want float64) bool {
	if got == nil {
		return false
	}
	band := math.Abs(want) * surfaceTolerance
	return math.Abs(*got-want) <= band
}

// RankProjects orders projects by score descending, then by name ascending.
// The sort is stable so equal entries keep their input order.
func RankProjects(projects []ScoredProject) {
	slices.SortStableFunc(projects, func(a, b ScoredProject) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return strings.Compare(a.Project.Name, b.Project.Name)
	})
}
