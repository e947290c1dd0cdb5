package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/domain/estimation"
	"devis_batiment/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	ErrNoReferenceProjects = errors.New("at least one reference project is required")
	ErrNoCatalogItems      = errors.New("at least one catalog item is required")
	ErrInvalidSurfaceType  = errors.New("invalid surface_type")
	ErrInvalidSurfaceValue = errors.New("surface values must be greater than or equal to zero")
)

// SheetFailure records a cost sheet (or a project's sheet list) that could not
// be read. It contributed no observation.
type SheetFailure struct {
	ProjectID string `json:"project_id"`
	Sheet     string `json:"sheet,omitempty"`
	Error     string `json:"error"`
}

type AveragingResult struct {
	Items          []estimation.AveragedItem `json:"items"`
	NoValueItemIDs []int                     `json:"no_value_item_ids"`
	Failures       []SheetFailure            `json:"failures"`
	SheetsRead     int                       `json:"sheets_read"`
}

type CostPreviewInput struct {
	ProjectIDs    []string
	ItemIDs       []int
	SurfaceType   string
	TargetSurface float64
	CustomTotal   float64
}

// CostPreview is the averaging result with the extrapolation it leads to.
type CostPreview struct {
	AveragingResult
	ReferenceSurface float64                  `json:"reference_surface"`
	StandardTotal    float64                  `json:"standard_total"`
	Extrapolation    estimation.Extrapolation `json:"extrapolation"`
	// SurfaceRatio and TotalFinal are what a session seeded from this preview
	// shows. RatioFallback is set when a surface is missing and the ratio
	// falls back to 1, in which case TotalFinal differs from BaseEstimation.
	SurfaceRatio  float64 `json:"surface_ratio"`
	TotalFinal    float64 `json:"total_final"`
	RatioFallback bool    `json:"ratio_fallback"`
}

// ICostAveragingUseCase reduces the cost history of the selected reference
// projects.
type ICostAveragingUseCase interface {
	AverageCosts(ctx context.Context, projectIDs []string, itemIDs []int) (AveragingResult, error)
	ReferenceSurface(ctx context.Context, projectIDs []string, surfaceType string) (float64, error)
	Preview(ctx context.Context, in CostPreviewInput) (CostPreview, error)
}

type CostAveragingUseCase struct {
	projects      interfaces.IReferenceProjectRepository
	sheets        interfaces.ICostSheetReader
	maxConcurrent int
}

var _ ICostAveragingUseCase = (*CostAveragingUseCase)(nil)

func NewCostAveragingUseCase(projects interfaces.IReferenceProjectRepository, sheets interfaces.ICostSheetReader, maxConcurrent int) *CostAveragingUseCase {
	return &CostAveragingUseCase{projects: projects, sheets: sheets, maxConcurrent: concurrencyLimit(maxConcurrent)}
}

// AverageCosts reads every cost sheet of every project concurrently and
// averages the selected items. A failed listing or read is reported in the
// result and never aborts the batch.
func (u *CostAveragingUseCase) AverageCosts(ctx context.Context, projectIDs []string, itemIDs []int) (AveragingResult, error) {
	projectIDs = cleanIDs(projectIDs)
	if len(projectIDs) == 0 {
		return AveragingResult{}, ErrNoReferenceProjects
	}
	if err := validateItemIDs(itemIDs); err != nil {
		return AveragingResult{}, err
	}

	log.Info().Strs("project_ids", projectIDs).Int("items", len(itemIDs)).Msg("[costs][usecase] averaging start")

	refs := make([][]entities.CostSheetRef, len(projectIDs))
	listErrs := make([]error, len(projectIDs))
	var lg errgroup.Group
	lg.SetLimit(u.maxConcurrent)
	for i, projectID := range projectIDs {
		lg.Go(func() error {
			refs[i], listErrs[i] = u.projects.ListCostSheets(ctx, projectID)
			return nil
		})
	}
	_ = lg.Wait()

	type job struct {
		projectID string
		ref       entities.CostSheetRef
	}
	var result AveragingResult
	var jobs []job
	for i, projectID := range projectIDs {
		if listErrs[i] != nil {
			log.Warn().Err(listErrs[i]).Str("project_id", projectID).Msg("[costs][usecase] failed listing cost sheets")
			result.Failures = append(result.Failures, SheetFailure{ProjectID: projectID, Error: listErrs[i].Error()})
			continue
		}
		for _, ref := range refs[i] {
			jobs = append(jobs, job{projectID: projectID, ref: ref})
		}
	}

	rows := make([][]entities.CostSheetRow, len(jobs))
	readErrs := make([]error, len(jobs))
	var rg errgroup.Group
	rg.SetLimit(u.maxConcurrent)
	for i, j := range jobs {
		rg.Go(func() error {
			rows[i], readErrs[i] = u.sheets.Read(ctx, j.ref)
			return nil
		})
	}
	_ = rg.Wait()

	sheets := make([][]entities.CostSheetRow, 0, len(jobs))
	for i, j := range jobs {
		if readErrs[i] != nil {
			log.Warn().Err(readErrs[i]).Str("project_id", j.projectID).Str("sheet", string(j.ref)).Msg("[costs][usecase] failed reading cost sheet")
			result.Failures = append(result.Failures, SheetFailure{ProjectID: j.projectID, Sheet: string(j.ref), Error: readErrs[i].Error()})
			continue
		}
		sheets = append(sheets, rows[i])
	}

	result.Items = estimation.AverageCostSheets(sheets, itemIDs)
	result.NoValueItemIDs = estimation.NoValueItemIDs(result.Items)
	result.SheetsRead = len(sheets)

	log.Info().
		Int("sheets_read", result.SheetsRead).
		Int("failures", len(result.Failures)).
		Int("no_value_items", len(result.NoValueItemIDs)).
		Msg("[costs][usecase] averaging done")
	return result, nil
}

// ReferenceSurface averages the surface of the given type over the projects.
// A project whose surfaces cannot be read is skipped like one without a
// sample of that type.
func (u *CostAveragingUseCase) ReferenceSurface(ctx context.Context, projectIDs []string, surfaceType string) (float64, error) {
	projectIDs = cleanIDs(projectIDs)
	if len(projectIDs) == 0 {
		return 0, ErrNoReferenceProjects
	}
	surfaceType = strings.TrimSpace(surfaceType)
	if surfaceType == "" {
		return 0, ErrInvalidSurfaceType
	}

	samples := make([][]entities.SurfaceSample, len(projectIDs))
	var g errgroup.Group
	g.SetLimit(u.maxConcurrent)
	for i, projectID := range projectIDs {
		g.Go(func() error {
			s, err := u.projects.GetSurfaceSamples(ctx, projectID)
			if err != nil {
				log.Warn().Err(err).Str("project_id", projectID).Msg("[costs][usecase] failed reading surfaces")
				return nil
			}
			samples[i] = s
			return nil
		})
	}
	_ = g.Wait()

	return estimation.ReferenceSurface(samples, surfaceType), nil
}

// Preview averages the items, derives the reference surface and extrapolates
// the standard total to the target surface. Without a surface type the
// reference surface is 0 and so is the unit price. TotalFinal follows the
// session totals so both surfaces report the same figure.
func (u *CostAveragingUseCase) Preview(ctx context.Context, in CostPreviewInput) (CostPreview, error) {
	if in.TargetSurface < 0 || in.CustomTotal < 0 {
		return CostPreview{}, ErrInvalidSurfaceValue
	}

	averaged, err := u.AverageCosts(ctx, in.ProjectIDs, in.ItemIDs)
	if err != nil {
		return CostPreview{}, err
	}

	preview := CostPreview{AveragingResult: averaged}
	if strings.TrimSpace(in.SurfaceType) != "" {
		preview.ReferenceSurface, err = u.ReferenceSurface(ctx, in.ProjectIDs, in.SurfaceType)
		if err != nil {
			return CostPreview{}, err
		}
	}
	preview.StandardTotal = estimation.SumAverages(averaged.Items)
	preview.Extrapolation = estimation.Extrapolate(preview.StandardTotal, preview.ReferenceSurface, in.TargetSurface, in.CustomTotal)
	preview.SurfaceRatio = estimation.SurfaceRatio(preview.ReferenceSurface, in.TargetSurface)
	preview.TotalFinal = preview.StandardTotal*preview.SurfaceRatio + in.CustomTotal
	preview.RatioFallback = preview.ReferenceSurface == 0 || in.TargetSurface == 0
	if preview.RatioFallback {
		log.Warn().Float64("reference_surface", preview.ReferenceSurface).Float64("target_surface", in.TargetSurface).
			Msg("[costs][usecase] surface missing, ratio falls back to 1")
	}
	return preview, nil
}

func validateItemIDs(itemIDs []int) error {
	if len(itemIDs) == 0 {
		return ErrNoCatalogItems
	}
	for _, id := range itemIDs {
		if _, ok := entities.CatalogEntryByID(id); !ok {
			return fmt.Errorf("%w: %d", estimation.ErrUnknownCatalogItem, id)
		}
	}
	return nil
}

// cleanIDs trims ids and drops blanks and repeats, keeping the first order.
func cleanIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
