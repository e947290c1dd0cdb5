package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/domain/estimation"
	"devis_batiment/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrEstimationNotFound  = errors.New("estimation not found")
	ErrInvalidEstimationID = errors.New("invalid estimation id")
	ErrInvalidCodeFiche    = errors.New("invalid code_fiche")
	ErrVersionConflict     = errors.New("estimation version already exists")
)

// IEstimationUseCase exposes the persisted estimation documents.
type IEstimationUseCase interface {
	Load(ctx context.Context, id string) (entities.EstimationSheet, error)
	Delete(ctx context.Context, id string) error
	ListVersions(ctx context.Context, codeFiche string) ([]entities.EstimationSheet, error)
	Export(ctx context.Context, id string) (estimation.ExportData, error)
}

type EstimationUseCase struct {
	repo interfaces.IEstimationRepository
}

var _ IEstimationUseCase = (*EstimationUseCase)(nil)

func NewEstimationUseCase(repo interfaces.IEstimationRepository) *EstimationUseCase {
	return &EstimationUseCase{repo: repo}
}

func (u *EstimationUseCase) Load(ctx context.Context, id string) (entities.EstimationSheet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EstimationSheet{}, ErrInvalidEstimationID
	}

	sheet, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EstimationSheet{}, err
	}
	if sheet.ID == "" {
		return entities.EstimationSheet{}, ErrEstimationNotFound
	}
	return sheet, nil
}

func (u *EstimationUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.Load(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, strings.TrimSpace(id)); err != nil {
		log.Error().Err(err).Str("estimation_id", id).Msg("[estimation][usecase] delete failed")
		return err
	}
	log.Info().Str("estimation_id", id).Msg("[estimation][usecase] deleted")
	return nil
}

// ListVersions returns every version of a document, oldest first.
func (u *EstimationUseCase) ListVersions(ctx context.Context, codeFiche string) ([]entities.EstimationSheet, error) {
	codeFiche = strings.TrimSpace(codeFiche)
	if codeFiche == "" {
		return nil, ErrInvalidCodeFiche
	}

	versions, err := u.repo.ListByCodeFiche(ctx, codeFiche)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, ErrEstimationNotFound
	}
	return versions, nil
}

// Export lays out a stored document for rendering. The document is seeded
// into a reconciler so the figures match what an editing session shows.
func (u *EstimationUseCase) Export(ctx context.Context, id string) (estimation.ExportData, error) {
	sheet, err := u.Load(ctx, id)
	if err != nil {
		return estimation.ExportData{}, err
	}

	r := estimation.NewReconciler(nil)
	if err := r.Seed(ctx, estimation.ResumedSeed{Sheet: sheet}); err != nil {
		return estimation.ExportData{}, err
	}
	return estimation.BuildExport(r.Snapshot()), nil
}

// versionedStore is the reconciler gateway. Each save writes a new immutable
// version of the document; a version written concurrently by someone else
// fails with ErrVersionConflict.
type versionedStore struct {
	repo interfaces.IEstimationRepository
	now  func() time.Time
}

var _ estimation.Gateway = (*versionedStore)(nil)

func newVersionedStore(repo interfaces.IEstimationRepository) *versionedStore {
	return &versionedStore{repo: repo, now: time.Now}
}

func (s *versionedStore) GetByID(ctx context.Context, id string) (entities.EstimationSheet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *versionedStore) Save(ctx context.Context, sheet entities.EstimationSheet) (entities.EstimationSheet, error) {
	now := s.now().UTC()
	if sheet.CodeFiche == "" {
		sheet.CodeFiche = NewCodeFiche(now)
		sheet.Version = 0
		sheet.CreatedAt = now
	}
	sheet.Version++
	sheet.ID = EstimationID(sheet.CodeFiche, sheet.Version)
	sheet.UpdatedAt = now

	saved, err := s.repo.Save(ctx, sheet)
	if err != nil {
		log.Error().Err(err).Str("estimation_id", sheet.ID).Msg("[estimation][usecase] save failed")
		return entities.EstimationSheet{}, err
	}
	if saved.ID == "" {
		log.Warn().Str("estimation_id", sheet.ID).Msg("[estimation][usecase] version already exists")
		return entities.EstimationSheet{}, ErrVersionConflict
	}
	log.Info().Str("estimation_id", saved.ID).Str("code_fiche", saved.CodeFiche).Int("version", saved.Version).Msg("[estimation][usecase] saved")
	return saved, nil
}

// NewCodeFiche returns a new document code such as "DEV-2026-1A2B3C4D".
func NewCodeFiche(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("DEV-%d-%s", now.Year(), suffix)
}

// EstimationID is the document id of one version.
func EstimationID(codeFiche string, version int) string {
	return fmt.Sprintf("%s-v%d", codeFiche, version)
}
