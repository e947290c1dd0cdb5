package entities

import "testing"

func TestEstimationSheet_Clone(t *testing.T) {
	s := EstimationSheet{
		CodeFiche:             "DEV-2026-ABCD1234",
		Version:               2,
		ExchangeRate:          FloatPtr(4900),
		StandardLines:         []CostLine{{ID: "5", CatalogID: 5, Kind: CostLineStandard, Amount: 100}},
		CustomLines:           []CostLine{{ID: "c-1", Kind: CostLineCustom, Amount: 10}},
		InitialPercentages:    map[string]float64{"5": 90.9},
		ReferenceProjectNames: []string{"Villa A"},
	}
	c := s.Clone()
	c.StandardLines[0].Amount = 1
	c.CustomLines[0].Name = "x"
	*c.ExchangeRate = 1
	c.InitialPercentages["5"] = 0
	c.ReferenceProjectNames[0] = "y"

	if s.StandardLines[0].Amount != 100 || s.CustomLines[0].Name != "" {
		t.Fatalf("lines shared with clone: %+v", s)
	}
	if *s.ExchangeRate != 4900 || s.InitialPercentages["5"] != 90.9 || s.ReferenceProjectNames[0] != "Villa A" {
		t.Fatalf("references shared with clone: %+v", s)
	}
	if !s.IsPersisted() || (EstimationSheet{}).IsPersisted() {
		t.Fatalf("unexpected IsPersisted")
	}
}
