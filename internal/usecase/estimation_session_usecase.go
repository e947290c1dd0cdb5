package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/domain/estimation"
	"devis_batiment/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const defaultSessionTTL = 2 * time.Hour

var (
	ErrSessionNotFound  = errors.New("estimation session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrInvalidActorID   = errors.New("invalid actor id")
)

// FreshSessionInput starts an estimation from the cost history of the chosen
// reference projects.
type FreshSessionInput struct {
	Title                 string
	ClientName            string
	ConstructionTypeID    string
	SurfaceType           string
	TargetSurface         float64
	ExchangeRate          *float64
	ProjectIDs            []string
	ReferenceProjectNames []string
	ItemIDs               []int
	CustomEntries         []estimation.CustomEntry
}

// SessionSnapshot is the state of an editing session.
type SessionSnapshot struct {
	SessionID string `json:"session_id"`
	estimation.Snapshot
	Failures  []SheetFailure `json:"failures,omitempty"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// IEstimationSessionUseCase keeps the estimations being edited. Each session
// owns one reconciler; commands on a session are serialised.
type IEstimationSessionUseCase interface {
	StartFresh(ctx context.Context, in FreshSessionInput) (SessionSnapshot, error)
	StartResumed(ctx context.Context, sheet entities.EstimationSheet) (SessionSnapshot, error)
	StartLoaded(ctx context.Context, estimationID string) (SessionSnapshot, error)
	Get(ctx context.Context, sessionID string) (SessionSnapshot, error)
	EditAmount(ctx context.Context, sessionID, lineID string, amount float64) (SessionSnapshot, error)
	EditMeta(ctx context.Context, sessionID string, field estimation.MetaField, value string) (SessionSnapshot, error)
	Reset(ctx context.Context, sessionID string) (SessionSnapshot, error)
	Save(ctx context.Context, sessionID, actorID string) (SessionSnapshot, error)
	Discard(ctx context.Context, sessionID string) error
}

type session struct {
	mu         sync.Mutex
	id         string
	reconciler *estimation.Reconciler
	failures   []SheetFailure
	lastAccess time.Time
	// removed is set under mu once the session left the store.
	removed bool
}

type EstimationSessionUseCase struct {
	costs ICostAveragingUseCase
	store estimation.Gateway
	ttl   time.Duration
	now   func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

var _ IEstimationSessionUseCase = (*EstimationSessionUseCase)(nil)

func NewEstimationSessionUseCase(costs ICostAveragingUseCase, repo interfaces.IEstimationRepository, ttl time.Duration) *EstimationSessionUseCase {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &EstimationSessionUseCase{
		costs:    costs,
		store:    newVersionedStore(repo),
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// StartFresh averages the reference costs, derives the reference surface and
// seeds a new estimation from them.
func (u *EstimationSessionUseCase) StartFresh(ctx context.Context, in FreshSessionInput) (SessionSnapshot, error) {
	averaged, err := u.costs.AverageCosts(ctx, in.ProjectIDs, in.ItemIDs)
	if err != nil {
		return SessionSnapshot{}, err
	}

	var referenceSurface float64
	if strings.TrimSpace(in.SurfaceType) != "" {
		referenceSurface, err = u.costs.ReferenceSurface(ctx, in.ProjectIDs, in.SurfaceType)
		if err != nil {
			return SessionSnapshot{}, err
		}
	}

	seed := estimation.FreshSeed{
		Title:                 in.Title,
		ClientName:            in.ClientName,
		ConstructionTypeID:    in.ConstructionTypeID,
		SurfaceType:           in.SurfaceType,
		ReferenceSurface:      referenceSurface,
		TargetSurface:         in.TargetSurface,
		ExchangeRate:          in.ExchangeRate,
		Items:                 averaged.Items,
		CustomEntries:         in.CustomEntries,
		ReferenceProjectNames: in.ReferenceProjectNames,
	}
	return u.start(ctx, seed, averaged.Failures)
}

func (u *EstimationSessionUseCase) StartResumed(ctx context.Context, sheet entities.EstimationSheet) (SessionSnapshot, error) {
	return u.start(ctx, estimation.ResumedSeed{Sheet: sheet}, nil)
}

func (u *EstimationSessionUseCase) StartLoaded(ctx context.Context, estimationID string) (SessionSnapshot, error) {
	estimationID = strings.TrimSpace(estimationID)
	if estimationID == "" {
		return SessionSnapshot{}, ErrInvalidEstimationID
	}
	return u.start(ctx, estimation.LoadedSeed{ID: estimationID}, nil)
}

func (u *EstimationSessionUseCase) start(ctx context.Context, strategy estimation.SeedStrategy, failures []SheetFailure) (SessionSnapshot, error) {
	r := estimation.NewReconciler(u.store)
	if err := r.Seed(ctx, strategy); err != nil {
		log.Warn().Err(err).Str("seed", string(strategy.Kind())).Msg("[session][usecase] seeding failed")
		return SessionSnapshot{}, err
	}

	s := &session{
		id:         uuid.NewString(),
		reconciler: r,
		failures:   failures,
		lastAccess: u.now(),
	}

	u.mu.Lock()
	u.purgeExpiredLocked()
	u.sessions[s.id] = s
	u.mu.Unlock()

	log.Info().Str("session_id", s.id).Str("seed", string(strategy.Kind())).Msg("[session][usecase] session started")
	return u.snapshot(s), nil
}

func (u *EstimationSessionUseCase) Get(_ context.Context, sessionID string) (SessionSnapshot, error) {
	return u.with(sessionID, func(*session) error { return nil })
}

func (u *EstimationSessionUseCase) EditAmount(_ context.Context, sessionID, lineID string, amount float64) (SessionSnapshot, error) {
	return u.with(sessionID, func(s *session) error {
		return s.reconciler.EditAmount(lineID, amount)
	})
}

func (u *EstimationSessionUseCase) EditMeta(_ context.Context, sessionID string, field estimation.MetaField, value string) (SessionSnapshot, error) {
	return u.with(sessionID, func(s *session) error {
		return s.reconciler.EditMeta(field, value)
	})
}

func (u *EstimationSessionUseCase) Reset(ctx context.Context, sessionID string) (SessionSnapshot, error) {
	return u.with(sessionID, func(s *session) error {
		return s.reconciler.Reset(ctx)
	})
}

// Save persists the session's estimation on behalf of actorID.
func (u *EstimationSessionUseCase) Save(ctx context.Context, sessionID, actorID string) (SessionSnapshot, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return SessionSnapshot{}, ErrInvalidActorID
	}
	return u.with(sessionID, func(s *session) error {
		_, err := s.reconciler.Save(ctx, actorID)
		if err != nil {
			log.Warn().Err(err).Str("session_id", s.id).Msg("[session][usecase] save failed")
		}
		return err
	})
}

// Discard drops the session without saving.
func (u *EstimationSessionUseCase) Discard(_ context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	u.mu.Lock()
	u.purgeExpiredLocked()
	s, ok := u.sessions[sessionID]
	if !ok {
		u.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(u.sessions, sessionID)
	u.mu.Unlock()

	s.mu.Lock()
	s.removed = true
	s.mu.Unlock()
	log.Info().Str("session_id", sessionID).Msg("[session][usecase] session discarded")
	return nil
}

// with runs fn under the session lock and returns the resulting snapshot.
// The snapshot is returned on error too so callers see the preserved state.
func (u *EstimationSessionUseCase) with(sessionID string, fn func(*session) error) (SessionSnapshot, error) {
	s, err := u.lookup(sessionID)
	if err != nil {
		return SessionSnapshot{}, err
	}
	return u.run(s, fn)
}

// run takes the session lock. A session purged or discarded between lookup
// and lock is reported as not found and fn is not called.
func (u *EstimationSessionUseCase) run(s *session, fn func(*session) error) (SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removed {
		return SessionSnapshot{}, ErrSessionNotFound
	}
	s.lastAccess = u.now()
	err := fn(s)
	return u.snapshot(s), err
}

func (u *EstimationSessionUseCase) lookup(sessionID string) (*session, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.purgeExpiredLocked()
	s, ok := u.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// purgeExpiredLocked drops idle sessions. Caller holds u.mu. A session locked
// by a running command is skipped.
func (u *EstimationSessionUseCase) purgeExpiredLocked() {
	now := u.now()
	for id, s := range u.sessions {
		if !s.mu.TryLock() {
			continue
		}
		expired := now.Sub(s.lastAccess) > u.ttl
		if expired {
			s.removed = true
		}
		s.mu.Unlock()
		if expired {
			delete(u.sessions, id)
			log.Info().Str("session_id", id).Msg("[session][usecase] session expired")
		}
	}
}

func (u *EstimationSessionUseCase) snapshot(s *session) SessionSnapshot {
	return SessionSnapshot{
		SessionID: s.id,
		Snapshot:  s.reconciler.Snapshot(),
		Failures:  s.failures,
		ExpiresAt: s.lastAccess.Add(u.ttl),
	}
}
