package estimation

import (
	"context"
	"fmt"
	"maps"
	"strconv"
	"strings"

	"devis_batiment/internal/domain/entities"
)

// State is the lifecycle position of a Reconciler.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateSeeding       State = "seeding"
	StateEditable      State = "editable"
	StateSaving        State = "saving"
	StateSaved         State = "saved"
)

// MetaField names the header fields that can be edited.
type MetaField string

const (
	MetaTitle        MetaField = "title"
	MetaClientName   MetaField = "client_name"
	MetaExchangeRate MetaField = "exchange_rate"
)

// Gateway is the persistence the reconciler needs. A not found estimation is
// returned as a zero sheet.
type Gateway interface {
	GetByID(ctx context.Context, id string) (entities.EstimationSheet, error)
	Save(ctx context.Context, sheet entities.EstimationSheet) (entities.EstimationSheet, error)
}

// Reconciler owns one editable estimation. It tracks the percentage weight of
// every line frozen at seeding against the live one, and whether the sheet
// differs from its last seeded or saved state.
//
// A Reconciler is single writer: callers serialise commands.
type Reconciler struct {
	gateway  Gateway
	state    State
	strategy SeedStrategy
	sheet    entities.EstimationSheet
	initial  map[string]float64
	baseline baseline
}

// baseline is the comparison point of HasChanges.
type baseline struct {
	title        string
	clientName   string
	exchangeRate *float64
	amounts      map[string]float64
}

func NewReconciler(gateway Gateway) *Reconciler {
	return &Reconciler{gateway: gateway, state: StateUninitialized}
}

func (r *Reconciler) State() State { return r.state }

// Seed initialises the estimation from one of the seeding strategies. It is
// accepted once; use Reset to re-run the strategy.
func (r *Reconciler) Seed(ctx context.Context, strategy SeedStrategy) error {
	if strategy == nil {
		return ErrNilStrategy
	}
	if r.state != StateUninitialized {
		return ErrAlreadySeeded
	}
	return r.seed(ctx, strategy, nil)
}

// Reset discards every edit and re-runs the original strategy; a loaded
// estimation is fetched again. Once the sheet has been saved, its persisted
// identity is kept so the next save stays an update.
func (r *Reconciler) Reset(ctx context.Context) error {
	if !r.editable() {
		return ErrNotEditable
	}
	var identity *entities.EstimationSheet
	if r.sheet.IsPersisted() {
		current := r.sheet.Clone()
		identity = &current
	}
	return r.seed(ctx, r.strategy, identity)
}

func (r *Reconciler) seed(ctx context.Context, strategy SeedStrategy, identity *entities.EstimationSheet) error {
	previous := r.state
	r.state = StateSeeding

	sheet, filled, err := r.build(ctx, strategy)
	if err != nil {
		r.state = previous
		return err
	}
	if identity != nil {
		copyIdentity(&sheet, *identity)
	}

	r.strategy = filled
	r.sheet = sheet
	r.initial = Percentages(sheet)
	r.sheet.InitialPercentages = maps.Clone(r.initial)
	r.baseline = captureBaseline(sheet)
	r.state = StateEditable
	return nil
}

// EditAmount sets the amount of a standard or custom line.
func (r *Reconciler) EditAmount(lineID string, value float64) error {
	if !r.editable() {
		return ErrNotEditable
	}
	if !validAmount(value) {
		return ErrInvalidAmount
	}
	line := r.findLine(strings.TrimSpace(lineID))
	if line == nil {
		return fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
	}
	line.Amount = value
	r.state = StateEditable
	return nil
}

// EditMeta updates a header field. A blank exchange rate clears it.
func (r *Reconciler) EditMeta(field MetaField, value string) error {
	if !r.editable() {
		return ErrNotEditable
	}
	switch field {
	case MetaTitle:
		r.sheet.Title = strings.TrimSpace(value)
	case MetaClientName:
		r.sheet.ClientName = strings.TrimSpace(value)
	case MetaExchangeRate:
		rate, err := ParseExchangeRate(value)
		if err != nil {
			return err
		}
		r.sheet.ExchangeRate = rate
	default:
		return fmt.Errorf("%w: %s", ErrUnknownMetaField, field)
	}
	r.state = StateEditable
	return nil
}

// ParseExchangeRate reads an operator entered rate. Blank or zero means no
// rate; a decimal comma is accepted.
func ParseExchangeRate(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	rate, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", "."), 64)
	if err != nil || !validAmount(rate) {
		return nil, ErrInvalidExchangeRate
	}
	return normalizeRate(&rate), nil
}

// Save validates the sheet, then persists it. On success the saved state
// becomes the new baseline; the initial percentages stay as seeded. On failure
// the edits are kept and the reconciler is editable again.
func (r *Reconciler) Save(ctx context.Context, actorID string) (entities.EstimationSheet, error) {
	if !r.editable() {
		return entities.EstimationSheet{}, ErrNotEditable
	}
	if err := r.validate(); err != nil {
		return entities.EstimationSheet{}, err
	}
	if r.gateway == nil {
		return entities.EstimationSheet{}, ErrGatewayNotConfigured
	}

	r.state = StateSaving

	payload := r.sheet.Clone()
	payload.InitialPercentages = Percentages(payload)
	payload.UpdatedBy = actorID
	if !payload.IsPersisted() {
		payload.CreatedBy = actorID
	}

	saved, err := r.gateway.Save(ctx, payload)
	if err != nil {
		r.state = StateEditable
		return entities.EstimationSheet{}, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	copyIdentity(&r.sheet, saved)
	r.baseline = captureBaseline(r.sheet)
	r.state = StateSaved
	return saved.Clone(), nil
}

func (r *Reconciler) validate() error {
	if strings.TrimSpace(r.sheet.Title) == "" {
		return ErrMissingTitle
	}
	for _, lines := range [][]entities.CostLine{r.sheet.StandardLines, r.sheet.CustomLines} {
		for _, l := range lines {
			if l.Amount > 0 {
				return nil
			}
		}
	}
	return ErrNoPositiveLine
}

// HasChanges reports whether the sheet differs from its last seeded or saved
// state. Reverting an edit clears it.
func (r *Reconciler) HasChanges() bool {
	if r.state == StateUninitialized {
		return false
	}
	return !r.baseline.equal(captureBaseline(r.sheet))
}

// Sheet returns a copy of the current sheet.
func (r *Reconciler) Sheet() entities.EstimationSheet {
	return r.sheet.Clone()
}

// SeedKind returns the kind of the strategy the estimation was seeded with.
func (r *Reconciler) SeedKind() SeedKind {
	if r.strategy == nil {
		return ""
	}
	return r.strategy.Kind()
}

func (r *Reconciler) editable() bool {
	return r.state == StateEditable || r.state == StateSaved
}

func (r *Reconciler) findLine(id string) *entities.CostLine {
	for i := range r.sheet.StandardLines {
		if r.sheet.StandardLines[i].ID == id {
			return &r.sheet.StandardLines[i]
		}
	}
	for i := range r.sheet.CustomLines {
		if r.sheet.CustomLines[i].ID == id {
			return &r.sheet.CustomLines[i]
		}
	}
	return nil
}

func copyIdentity(dst *entities.EstimationSheet, src entities.EstimationSheet) {
	dst.ID = src.ID
	dst.CodeFiche = src.CodeFiche
	dst.Version = src.Version
	dst.CreatedBy = src.CreatedBy
	dst.UpdatedBy = src.UpdatedBy
	dst.CreatedAt = src.CreatedAt
	dst.UpdatedAt = src.UpdatedAt
}

func captureBaseline(sheet entities.EstimationSheet) baseline {
	b := baseline{
		title:        sheet.Title,
		clientName:   sheet.ClientName,
		exchangeRate: normalizeRate(sheet.ExchangeRate),
		amounts:      make(map[string]float64, len(sheet.StandardLines)+len(sheet.CustomLines)),
	}
	for _, l := range sheet.StandardLines {
		b.amounts[l.ID] = l.Amount
	}
	for _, l := range sheet.CustomLines {
		b.amounts[l.ID] = l.Amount
	}
	return b
}

func (b baseline) equal(o baseline) bool {
	if b.title != o.title || b.clientName != o.clientName {
		return false
	}
	switch {
	case b.exchangeRate == nil && o.exchangeRate == nil:
	case b.exchangeRate == nil || o.exchangeRate == nil:
		return false
	case *b.exchangeRate != *o.exchangeRate:
		return false
	}
	return maps.Equal(b.amounts, o.amounts)
}
