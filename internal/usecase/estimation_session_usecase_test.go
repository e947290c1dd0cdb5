package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/domain/estimation"
	mock_interfaces "devis_batiment/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func resumedInput() entities.EstimationSheet {
	return entities.EstimationSheet{
		Title: "Extension",
		StandardLines: []entities.CostLine{
			{ID: "5", Amount: 250},
			{ID: "6", Amount: 750},
		},
	}
}

func newSessionUseCase(ctrl *gomock.Controller) (*EstimationSessionUseCase, *mock_interfaces.MockIReferenceProjectRepository, *mock_interfaces.MockICostSheetReader, *mock_interfaces.MockIEstimationRepository) {
	projects := mock_interfaces.NewMockIReferenceProjectRepository(ctrl)
	sheets := mock_interfaces.NewMockICostSheetReader(ctrl)
	repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
	costs := NewCostAveragingUseCase(projects, sheets, 2)
	return NewEstimationSessionUseCase(costs, repo, time.Hour), projects, sheets, repo
}

func TestEstimationSessionUseCase_StartFresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, projects, sheets, _ := newSessionUseCase(ctrl)

	projects.EXPECT().ListCostSheets(gomock.Any(), "p1").Return([]entities.CostSheetRef{"a.xlsx", "bad.xlsx"}, nil)
	sheets.EXPECT().Read(gomock.Any(), entities.CostSheetRef("a.xlsx")).Return([]entities.CostSheetRow{
		{ItemID: 1, Amount: 500_000},
		{ItemID: 5, Amount: 1_500_000},
	}, nil)
	sheets.EXPECT().Read(gomock.Any(), entities.CostSheetRef("bad.xlsx")).Return(nil, errors.New("corrupt"))
	projects.EXPECT().GetSurfaceSamples(gomock.Any(), "p1").Return([]entities.SurfaceSample{{SurfaceTypeName: "SHOB", SurfaceValue: 500}}, nil)

	snap, err := uc.StartFresh(context.Background(), FreshSessionInput{
		Title:         "Villa",
		SurfaceType:   "SHOB",
		TargetSurface: 650,
		ProjectIDs:    []string{"p1"},
		ItemIDs:       []int{1, 5, 9},
		CustomEntries: []estimation.CustomEntry{{Name: "Forage", Amount: 50_000}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.SessionID == "" || snap.State != estimation.StateEditable || snap.SeedKind != estimation.SeedFresh {
		t.Fatalf("unexpected session: %+v", snap)
	}
	if !almostEqual(snap.TotalFinal, 2_650_000) || !almostEqual(snap.UnitPrice, 4000) {
		t.Fatalf("unexpected totals: final=%v unit=%v", snap.TotalFinal, snap.UnitPrice)
	}
	if len(snap.StandardLines) != 3 || !snap.StandardLines[2].NoValue {
		t.Fatalf("expected item 9 without value: %+v", snap.StandardLines)
	}
	if len(snap.Failures) != 1 || snap.Failures[0].Sheet != "bad.xlsx" {
		t.Fatalf("expected failure to be reported, got %+v", snap.Failures)
	}

	got, err := uc.Get(context.Background(), snap.SessionID)
	if err != nil || got.SessionID != snap.SessionID {
		t.Fatalf("expected session to be retrievable: %v", err)
	}
}

func TestEstimationSessionUseCase_EditAndSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, repo := newSessionUseCase(ctrl)
	ctx := context.Background()

	snap, err := uc.StartResumed(ctx, resumedInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	id := snap.SessionID

	snap, err = uc.EditAmount(ctx, id, "5", 400)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.HasChanges || !almostEqual(snap.InitialPercentages["5"], 25) || !almostEqual(snap.TotalFinal, 1150) {
		t.Fatalf("unexpected snapshot after edit: %+v", snap)
	}

	if _, err := uc.EditMeta(ctx, id, estimation.MetaExchangeRate, "5000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.Save(ctx, id, " "); !errors.Is(err, ErrInvalidActorID) {
		t.Fatalf("expected ErrInvalidActorID, got %v", err)
	}

	repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.EstimationSheet{})).DoAndReturn(
		func(_ context.Context, s entities.EstimationSheet) (entities.EstimationSheet, error) {
			if s.CreatedBy != "user-7" || s.UpdatedBy != "user-7" || s.Version != 1 {
				t.Fatalf("unexpected payload: %+v", s)
			}
			return s, nil
		},
	)

	snap, err = uc.Save(ctx, id, "user-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.State != estimation.StateSaved || snap.HasChanges || snap.Version != 1 || snap.CodeFiche == "" {
		t.Fatalf("unexpected snapshot after save: %+v", snap)
	}
	if snap.TotalAriary == nil || !almostEqual(*snap.TotalAriary, 5_750_000) {
		t.Fatalf("unexpected ariary total: %v", snap.TotalAriary)
	}
}

func TestEstimationSessionUseCase_SaveFailureKeepsState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, repo := newSessionUseCase(ctrl)
	ctx := context.Background()

	snap, _ := uc.StartResumed(ctx, resumedInput())
	if _, err := uc.EditAmount(ctx, snap.SessionID, "6", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.EstimationSheet{}, nil)

	snap, err := uc.Save(ctx, snap.SessionID, "user-7")
	if !errors.Is(err, ErrVersionConflict) || !errors.Is(err, estimation.ErrSaveFailed) {
		t.Fatalf("expected version conflict, got %v", err)
	}
	if snap.State != estimation.StateEditable || !snap.HasChanges {
		t.Fatalf("expected edits to be kept: %+v", snap)
	}
}

func TestEstimationSessionUseCase_StartLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, repo := newSessionUseCase(ctrl)

	if _, err := uc.StartLoaded(context.Background(), " "); !errors.Is(err, ErrInvalidEstimationID) {
		t.Fatalf("expected ErrInvalidEstimationID, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.EstimationSheet{}, nil)
	if _, err := uc.StartLoaded(context.Background(), "missing"); !errors.Is(err, estimation.ErrEstimationNotFound) {
		t.Fatalf("expected ErrEstimationNotFound, got %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "DEV-1-v1").Return(entities.EstimationSheet{
		ID: "DEV-1-v1", CodeFiche: "DEV-1", Version: 1, Title: "Doc",
		StandardLines: []entities.CostLine{{ID: "3", CatalogID: 3, Amount: 10}},
	}, nil)
	snap, err := uc.StartLoaded(context.Background(), "DEV-1-v1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.SeedKind != estimation.SeedLoaded || snap.CodeFiche != "DEV-1" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestEstimationSessionUseCase_ResetAndDiscard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newSessionUseCase(ctrl)
	ctx := context.Background()

	snap, _ := uc.StartResumed(ctx, resumedInput())
	id := snap.SessionID

	if _, err := uc.EditAmount(ctx, id, "5", 999); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snap, err := uc.Reset(ctx, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.HasChanges || !almostEqual(snap.StandardLines[0].Amount, 250) {
		t.Fatalf("expected reset state: %+v", snap)
	}

	if err := uc.Discard(ctx, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Get(ctx, id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := uc.Discard(ctx, id); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := uc.Get(ctx, ""); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
}

func TestEstimationSessionUseCase_Expiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newSessionUseCase(ctrl)
	ctx := context.Background()

	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	snap, _ := uc.StartResumed(ctx, resumedInput())
	if !snap.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected expiry: %v", snap.ExpiresAt)
	}

	now = now.Add(59 * time.Minute)
	if _, err := uc.Get(ctx, snap.SessionID); err != nil {
		t.Fatalf("expected session alive, got %v", err)
	}

	now = now.Add(61 * time.Minute)
	if _, err := uc.Get(ctx, snap.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected expired session, got %v", err)
	}
}

func TestEstimationSessionUseCase_PurgedBetweenLookupAndRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newSessionUseCase(ctrl)
	ctx := context.Background()

	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	snap, _ := uc.StartResumed(ctx, resumedInput())
	other, _ := uc.StartResumed(ctx, resumedInput())

	now = now.Add(59 * time.Minute)
	s, err := uc.lookup(snap.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := uc.Get(ctx, other.SessionID); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected other session expired, got %v", err)
	}

	called := false
	_, err = uc.run(s, func(*session) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if called {
		t.Fatal("expected command not to run on a purged session")
	}
}

func TestEstimationSessionUseCase_DiscardedBetweenLookupAndRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newSessionUseCase(ctrl)
	ctx := context.Background()

	snap, _ := uc.StartResumed(ctx, resumedInput())
	s, err := uc.lookup(snap.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Discard(ctx, snap.SessionID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.run(s, func(s *session) error { return s.reconciler.EditAmount("5", 1) }); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestEstimationSessionUseCase_EditErrorsReturnState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, _, _, _ := newSessionUseCase(ctrl)
	ctx := context.Background()

	snap, _ := uc.StartResumed(ctx, resumedInput())

	got, err := uc.EditAmount(ctx, snap.SessionID, "404", 1)
	if !errors.Is(err, estimation.ErrLineNotFound) {
		t.Fatalf("expected ErrLineNotFound, got %v", err)
	}
	if got.SessionID != snap.SessionID || got.HasChanges {
		t.Fatalf("expected unchanged snapshot: %+v", got)
	}
}
