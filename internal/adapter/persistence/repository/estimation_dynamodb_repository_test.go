package repository

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"devis_batiment/internal/domain/entities"
)

func TestEstimationItemMapping(t *testing.T) {
	now := time.Date(2026, 2, 3, 4, 5, 6, 789, time.UTC)
	sheet := entities.EstimationSheet{
		ID:               "DEV-2026-AB12CD34-v2",
		CodeFiche:        "DEV-2026-AB12CD34",
		Version:          2,
		Title:            "Villa",
		ClientName:       "Rakoto",
		SurfaceType:      "SHOB",
		ReferenceSurface: 512.5,
		TargetSurface:    650,
		ExchangeRate:     entities.FloatPtr(4825.75),
		StandardLines: []entities.CostLine{
			{ID: "5", CatalogID: 5, Name: "Maçonnerie", Kind: entities.CostLineStandard, Amount: 1234.56},
			{ID: "7", CatalogID: 7, Name: "Charpente", Kind: entities.CostLineStandard, NoValue: true},
		},
		CustomLines: []entities.CostLine{
			{ID: "0b6c6a4e-8a55-4c43-9d8e-7d3c0e7e1a11", Name: "Forage", Kind: entities.CostLineCustom, Amount: 50000},
		},
		InitialPercentages:    map[string]float64{"5": 2.4, "7": 0, "0b6c6a4e-8a55-4c43-9d8e-7d3c0e7e1a11": 97.6},
		ReferenceProjectNames: []string{"Villa Tana"},
		CreatedBy:             "u1",
		UpdatedBy:             "u2",
		CreatedAt:             now,
		UpdatedAt:             now.Add(time.Hour),
	}

	got, err := fromEstimationItem(toEstimationItem(sheet))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, sheet) {
		t.Fatalf("mapping mismatch:\n got %+v\nwant %+v", got, sheet)
	}
}

func TestEstimationItemMapping_NoRate(t *testing.T) {
	it := toEstimationItem(entities.EstimationSheet{ID: "x"})
	if it.ExchangeRate != "" || it.CreatedAt != "" {
		t.Fatalf("expected empty optional fields, got %+v", it)
	}
	if s, err := fromEstimationItem(it); err != nil || s.ExchangeRate != nil || !s.CreatedAt.IsZero() {
		t.Fatalf("expected no rate and zero time, got %+v (err %v)", s, err)
	}
}

func TestFromCostLineItems_LegacyKind(t *testing.T) {
	var fr floatReader
	lines := fromCostLineItems(&fr, []costLineItem{{Name: "Clôture", Amount: "12.5"}}, entities.CostLineCustom)
	if fr.err != nil {
		t.Fatalf("unexpected error: %v", fr.err)
	}
	if len(lines) != 1 || lines[0].Kind != entities.CostLineCustom || lines[0].Amount != 12.5 || lines[0].ID != "" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestEstimationItemMapping_CorruptAmount(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(it *estimationItem)
	}{
		{"line amount", func(it *estimationItem) { it.StandardLines[0].Amount = "12,5" }},
		{"target surface", func(it *estimationItem) { it.TargetSurface = "abc" }},
		{"exchange rate", func(it *estimationItem) { it.ExchangeRate = "4 600" }},
		{"initial percentage", func(it *estimationItem) { it.InitialPercentages["5"] = "NaN%" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := toEstimationItem(entities.EstimationSheet{
				ID:                 "DEV-2026-AB12CD34-v1",
				ExchangeRate:       entities.FloatPtr(4600),
				StandardLines:      []entities.CostLine{{ID: "5", CatalogID: 5, Amount: 10}},
				InitialPercentages: map[string]float64{"5": 100},
			})
			tt.mutate(&it)

			s, err := fromEstimationItem(it)
			if !errors.Is(err, ErrCorruptAmount) {
				t.Fatalf("expected ErrCorruptAmount, got %v", err)
			}
			if s.ID != "" {
				t.Fatalf("expected zero sheet, got %+v", s)
			}
		})
	}
}

func TestFromReferenceProjectItem_CorruptSurface(t *testing.T) {
	p := fromReferenceProjectItem(referenceProjectItem{ID: "p1", TotalSurface: "cent"})
	if p.TotalSurface != nil {
		t.Fatalf("expected unreadable surface to be unset, got %v", *p.TotalSurface)
	}
}

func TestFromReferenceProjectItem(t *testing.T) {
	floors := 2
	p := fromReferenceProjectItem(referenceProjectItem{
		ID: "p1", Name: "Villa", ConstructionTypeID: "villa",
		FloorCount: &floors, TotalSurface: "140.5", RoofType: "Tuile",
	})
	if p.TotalSurface == nil || *p.TotalSurface != 140.5 || *p.FloorCount != 2 || p.RoofType != "Tuile" {
		t.Fatalf("unexpected project: %+v", p)
	}
	if q := fromReferenceProjectItem(referenceProjectItem{ID: "p2"}); q.TotalSurface != nil {
		t.Fatalf("expected no surface, got %v", *q.TotalSurface)
	}
}
