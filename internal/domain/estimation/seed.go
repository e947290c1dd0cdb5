package estimation

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"devis_batiment/internal/domain/entities"

	"github.com/google/uuid"
)

// SeedKind names the way an estimation was initialised.
type SeedKind string

const (
	SeedFresh   SeedKind = "fresh"
	SeedResumed SeedKind = "resumed"
	SeedLoaded  SeedKind = "loaded"
)

// SeedStrategy is the closed set of seeding inputs: FreshSeed, ResumedSeed
// and LoadedSeed.
type SeedStrategy interface {
	Kind() SeedKind
	sealed()
}

// CustomEntry is an operator supplied line outside the catalog. ID is filled
// on first seeding when blank and kept afterwards.
type CustomEntry struct {
	ID     string  `json:"id,omitempty"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// FreshSeed starts a new estimation from averaged reference costs.
type FreshSeed struct {
	Title                 string
	ClientName            string
	ConstructionTypeID    string
	SurfaceType           string
	ReferenceSurface      float64
	TargetSurface         float64
	ExchangeRate          *float64
	Items                 []AveragedItem
	CustomEntries         []CustomEntry
	ReferenceProjectNames []string
}

// ResumedSeed continues from a sheet forwarded by an earlier step.
type ResumedSeed struct {
	Sheet entities.EstimationSheet
}

// LoadedSeed opens a persisted estimation by id.
type LoadedSeed struct {
	ID string
}

func (FreshSeed) Kind() SeedKind   { return SeedFresh }
func (ResumedSeed) Kind() SeedKind { return SeedResumed }
func (LoadedSeed) Kind() SeedKind  { return SeedLoaded }

func (FreshSeed) sealed()   {}
func (ResumedSeed) sealed() {}
func (LoadedSeed) sealed()  {}

// legacyLineNamespace scopes the ids derived for stored custom lines that
// predate line ids.
var legacyLineNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("devis-batiment:custom-line"))

// LegacyLineID derives a stable id for the custom line at position index of
// a stored estimation.
func LegacyLineID(codeFiche string, version, index int) string {
	name := fmt.Sprintf("%s#%d#%d", codeFiche, version, index)
	return uuid.NewSHA1(legacyLineNamespace, []byte(name)).String()
}

// build materialises the sheet for a strategy. The returned strategy carries
// the ids assigned during the run so that a later reset reproduces them.
func (r *Reconciler) build(ctx context.Context, strategy SeedStrategy) (entities.EstimationSheet, SeedStrategy, error) {
	switch s := strategy.(type) {
	case FreshSeed:
		return buildFresh(s)
	case *FreshSeed:
		return buildFresh(*s)
	case ResumedSeed:
		return buildResumed(s)
	case *ResumedSeed:
		return buildResumed(*s)
	case LoadedSeed:
		return r.buildLoaded(ctx, s)
	case *LoadedSeed:
		return r.buildLoaded(ctx, *s)
	default:
		return entities.EstimationSheet{}, nil, ErrNilStrategy
	}
}

func buildFresh(s FreshSeed) (entities.EstimationSheet, SeedStrategy, error) {
	if err := validateSurfaces(s.ReferenceSurface, s.TargetSurface); err != nil {
		return entities.EstimationSheet{}, nil, err
	}

	sheet := entities.EstimationSheet{
		Title:                 strings.TrimSpace(s.Title),
		ClientName:            strings.TrimSpace(s.ClientName),
		ConstructionTypeID:    s.ConstructionTypeID,
		SurfaceType:           strings.TrimSpace(s.SurfaceType),
		ReferenceSurface:      s.ReferenceSurface,
		TargetSurface:         s.TargetSurface,
		ExchangeRate:          normalizeRate(s.ExchangeRate),
		ReferenceProjectNames: append([]string(nil), s.ReferenceProjectNames...),
	}

	seen := make(map[int]struct{}, len(s.Items))
	for _, it := range s.Items {
		entry, ok := entities.CatalogEntryByID(it.ItemID)
		if !ok {
			return entities.EstimationSheet{}, nil, fmt.Errorf("%w: %d", ErrUnknownCatalogItem, it.ItemID)
		}
		if _, dup := seen[it.ItemID]; dup {
			return entities.EstimationSheet{}, nil, fmt.Errorf("%w: %d", ErrDuplicateLine, it.ItemID)
		}
		seen[it.ItemID] = struct{}{}

		name := strings.TrimSpace(it.Name)
		if name == "" {
			name = entry.Name
		}
		line := entities.CostLine{
			ID:        strconv.Itoa(it.ItemID),
			CatalogID: it.ItemID,
			Name:      name,
			Kind:      entities.CostLineStandard,
		}
		if it.Average != nil {
			line.Amount = *it.Average
		} else {
			line.NoValue = true
		}
		sheet.StandardLines = append(sheet.StandardLines, line)
	}

	reserved := standardIDs(sheet.StandardLines)
	entries := make([]CustomEntry, len(s.CustomEntries))
	for i, e := range s.CustomEntries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return entities.EstimationSheet{}, nil, ErrInvalidCustomLine
		}
		if !validAmount(e.Amount) {
			return entities.EstimationSheet{}, nil, ErrInvalidAmount
		}
		e.ID = strings.TrimSpace(e.ID)
		if _, taken := reserved[e.ID]; e.ID == "" || taken {
			e.ID = uuid.NewString()
		}
		entries[i] = e
		sheet.CustomLines = append(sheet.CustomLines, entities.CostLine{
			ID:     e.ID,
			Name:   name,
			Kind:   entities.CostLineCustom,
			Amount: e.Amount,
		})
	}
	if err := checkUniqueIDs(sheet.CustomLines); err != nil {
		return entities.EstimationSheet{}, nil, err
	}

	s.CustomEntries = entries
	return sheet, s, nil
}

func buildResumed(s ResumedSeed) (entities.EstimationSheet, SeedStrategy, error) {
	sheet := s.Sheet.Clone()
	if err := validateSurfaces(sheet.ReferenceSurface, sheet.TargetSurface); err != nil {
		return entities.EstimationSheet{}, nil, err
	}
	if err := normalizeStandardLines(sheet.StandardLines); err != nil {
		return entities.EstimationSheet{}, nil, err
	}
	if err := normalizeCustomLines(sheet.CustomLines, standardIDs(sheet.StandardLines), func(int) string { return uuid.NewString() }); err != nil {
		return entities.EstimationSheet{}, nil, err
	}
	sheet.ExchangeRate = normalizeRate(sheet.ExchangeRate)

	s.Sheet = sheet.Clone()
	return sheet, s, nil
}

func (r *Reconciler) buildLoaded(ctx context.Context, s LoadedSeed) (entities.EstimationSheet, SeedStrategy, error) {
	id := strings.TrimSpace(s.ID)
	if id == "" {
		return entities.EstimationSheet{}, nil, ErrEstimationNotFound
	}
	if r.gateway == nil {
		return entities.EstimationSheet{}, nil, ErrGatewayNotConfigured
	}

	stored, err := r.gateway.GetByID(ctx, id)
	if err != nil {
		return entities.EstimationSheet{}, nil, err
	}
	if stored.ID == "" {
		return entities.EstimationSheet{}, nil, fmt.Errorf("%w: %s", ErrEstimationNotFound, id)
	}

	sheet := stored.Clone()
	if err := normalizeStandardLines(sheet.StandardLines); err != nil {
		return entities.EstimationSheet{}, nil, err
	}
	legacy := func(i int) string { return LegacyLineID(sheet.CodeFiche, sheet.Version, i) }
	if err := normalizeCustomLines(sheet.CustomLines, standardIDs(sheet.StandardLines), legacy); err != nil {
		return entities.EstimationSheet{}, nil, err
	}
	sheet.ExchangeRate = normalizeRate(sheet.ExchangeRate)

	return sheet, LoadedSeed{ID: id}, nil
}

// normalizeStandardLines fills the catalog id from the line id (or the other
// way round) and rejects ids outside the catalog.
func normalizeStandardLines(lines []entities.CostLine) error {
	seen := make(map[int]struct{}, len(lines))
	for i := range lines {
		l := &lines[i]
		if l.CatalogID == 0 {
			id, err := strconv.Atoi(strings.TrimSpace(l.ID))
			if err != nil {
				return fmt.Errorf("%w: %q", ErrUnknownCatalogItem, l.ID)
			}
			l.CatalogID = id
		}
		entry, ok := entities.CatalogEntryByID(l.CatalogID)
		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownCatalogItem, l.CatalogID)
		}
		if _, dup := seen[l.CatalogID]; dup {
			return fmt.Errorf("%w: %d", ErrDuplicateLine, l.CatalogID)
		}
		seen[l.CatalogID] = struct{}{}
		if !validAmount(l.Amount) {
			return fmt.Errorf("%w: line %d", ErrInvalidAmount, l.CatalogID)
		}

		l.ID = strconv.Itoa(l.CatalogID)
		l.Kind = entities.CostLineStandard
		if strings.TrimSpace(l.Name) == "" {
			l.Name = entry.Name
		}
	}
	return nil
}

// normalizeCustomLines gives every custom line a unique id. Lines without an
// id, repeating one already used, or reusing a standard line id take
// fallback(position). reserved must hold the normalized standard line ids.
func normalizeCustomLines(lines []entities.CostLine, reserved map[string]struct{}, fallback func(int) string) error {
	seen := make(map[string]struct{}, len(lines)+len(reserved))
	for id := range reserved {
		seen[id] = struct{}{}
	}
	for i := range lines {
		l := &lines[i]
		l.Name = strings.TrimSpace(l.Name)
		if l.Name == "" {
			return ErrInvalidCustomLine
		}
		if !validAmount(l.Amount) {
			return fmt.Errorf("%w: line %q", ErrInvalidAmount, l.Name)
		}
		l.ID = strings.TrimSpace(l.ID)
		if _, dup := seen[l.ID]; l.ID == "" || dup {
			l.ID = fallback(i)
		}
		seen[l.ID] = struct{}{}
		l.Kind = entities.CostLineCustom
		l.CatalogID = 0
	}
	return nil
}

func standardIDs(lines []entities.CostLine) map[string]struct{} {
	ids := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		ids[l.ID] = struct{}{}
	}
	return ids
}

func checkUniqueIDs(lines []entities.CostLine) error {
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if _, dup := seen[l.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateLine, l.ID)
		}
		seen[l.ID] = struct{}{}
	}
	return nil
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func validateSurfaces(reference, target float64) error {
	if !validAmount(reference) || !validAmount(target) {
		return ErrInvalidSurface
	}
	return nil
}

// normalizeRate treats a zero rate as no rate.
func normalizeRate(rate *float64) *float64 {
	if rate == nil || *rate == 0 {
		return nil
	}
	v := *rate
	return &v
}
