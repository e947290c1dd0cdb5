package usecase

import (
	"context"
	"errors"
	"strings"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/domain/estimation"
	"devis_batiment/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrentReads = 8

var (
	ErrInvalidConstructionType = errors.New("invalid construction_type_id")
)

// IReferenceProjectUseCase ranks completed projects against the operator's
// criteria so the closest ones can be chosen as cost references.
type IReferenceProjectUseCase interface {
	RankProjects(ctx context.Context, constructionTypeID string, criteria entities.SimilarityCriteria) ([]estimation.ScoredProject, error)
}

type ReferenceProjectUseCase struct {
	repo          interfaces.IReferenceProjectRepository
	maxConcurrent int
}

var _ IReferenceProjectUseCase = (*ReferenceProjectUseCase)(nil)

func NewReferenceProjectUseCase(repo interfaces.IReferenceProjectRepository, maxConcurrent int) *ReferenceProjectUseCase {
	return &ReferenceProjectUseCase{repo: repo, maxConcurrent: concurrencyLimit(maxConcurrent)}
}

// RankProjects scores every project of the construction type. Attributes are
// fetched concurrently; a project whose attributes cannot be read scores 0.
func (u *ReferenceProjectUseCase) RankProjects(ctx context.Context, constructionTypeID string, criteria entities.SimilarityCriteria) ([]estimation.ScoredProject, error) {
	constructionTypeID = strings.TrimSpace(constructionTypeID)
	if constructionTypeID == "" {
		return nil, ErrInvalidConstructionType
	}

	candidates, err := u.repo.ListByConstructionType(ctx, constructionTypeID)
	if err != nil {
		log.Error().Err(err).Str("construction_type_id", constructionTypeID).Msg("[reference][usecase] failed listing projects")
		return nil, err
	}

	scored := make([]estimation.ScoredProject, len(candidates))
	var g errgroup.Group
	g.SetLimit(u.maxConcurrent)
	for i, candidate := range candidates {
		g.Go(func() error {
			scored[i] = estimation.ScoredProject{Project: candidate}

			project, err := u.repo.GetTechnicalAttributes(ctx, candidate.ID)
			if err != nil {
				log.Warn().Err(err).Str("project_id", candidate.ID).Msg("[reference][usecase] attributes unavailable, scoring 0")
				return nil
			}
			if project.ID == "" {
				log.Warn().Str("project_id", candidate.ID).Msg("[reference][usecase] attributes not found, scoring 0")
				return nil
			}

			scored[i].Project.TechnicalAttributes = project.TechnicalAttributes
			scored[i].Score = estimation.Score(project.TechnicalAttributes, criteria)
			return nil
		})
	}
	_ = g.Wait()

	estimation.RankProjects(scored)
	log.Info().Str("construction_type_id", constructionTypeID).Int("projects", len(scored)).Msg("[reference][usecase] projects ranked")
	return scored, nil
}

func concurrencyLimit(n int) int {
	if n <= 0 {
		return defaultMaxConcurrentReads
	}
	return n
}
