package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"devis_batiment/internal/domain/entities"
	mock_interfaces "devis_batiment/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func storedSheet() entities.EstimationSheet {
	return entities.EstimationSheet{
		ID:        "DEV-2026-AAAA0000-v2",
		CodeFiche: "DEV-2026-AAAA0000",
		Version:   2,
		Title:     "Villa",
		StandardLines: []entities.CostLine{
			{ID: "5", CatalogID: 5, Name: "Maçonnerie", Kind: entities.CostLineStandard, Amount: 750},
		},
		CustomLines: []entities.CostLine{
			{ID: "c-1", Name: "Forage", Kind: entities.CostLineCustom, Amount: 250},
		},
	}
}

func TestEstimationUseCase_Load(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewEstimationUseCase(nil)
		if _, err := uc.Load(context.Background(), " "); !errors.Is(err, ErrInvalidEstimationID) {
			t.Fatalf("expected ErrInvalidEstimationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.EstimationSheet{}, nil)

		if _, err := uc.Load(context.Background(), "x"); !errors.Is(err, ErrEstimationNotFound) {
			t.Fatalf("expected ErrEstimationNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.EstimationSheet{}, errors.New("db"))

		if _, err := uc.Load(context.Background(), "x"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "DEV-2026-AAAA0000-v2").Return(storedSheet(), nil)

		got, err := uc.Load(context.Background(), " DEV-2026-AAAA0000-v2 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Version != 2 {
			t.Fatalf("unexpected sheet: %+v", got)
		}
	})
}

func TestEstimationUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "x").Return(entities.EstimationSheet{}, nil)

		if err := uc.Delete(context.Background(), "x"); !errors.Is(err, ErrEstimationNotFound) {
			t.Fatalf("expected ErrEstimationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo)

		sheet := storedSheet()
		repo.EXPECT().GetByID(gomock.Any(), sheet.ID).Return(sheet, nil)
		repo.EXPECT().Delete(gomock.Any(), sheet.ID).Return(nil)

		if err := uc.Delete(context.Background(), sheet.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestEstimationUseCase_ListVersions(t *testing.T) {
	t.Run("invalid code", func(t *testing.T) {
		uc := NewEstimationUseCase(nil)
		if _, err := uc.ListVersions(context.Background(), ""); !errors.Is(err, ErrInvalidCodeFiche) {
			t.Fatalf("expected ErrInvalidCodeFiche, got %v", err)
		}
	})

	t.Run("no versions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo)

		repo.EXPECT().ListByCodeFiche(gomock.Any(), "DEV-1").Return(nil, nil)

		if _, err := uc.ListVersions(context.Background(), "DEV-1"); !errors.Is(err, ErrEstimationNotFound) {
			t.Fatalf("expected ErrEstimationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		uc := NewEstimationUseCase(repo)

		repo.EXPECT().ListByCodeFiche(gomock.Any(), "DEV-1").Return([]entities.EstimationSheet{{ID: "DEV-1-v1"}, {ID: "DEV-1-v2"}}, nil)

		got, err := uc.ListVersions(context.Background(), "DEV-1")
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result: %v %v", got, err)
		}
	})
}

func TestEstimationUseCase_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
	uc := NewEstimationUseCase(repo)

	sheet := storedSheet()
	sheet.ExchangeRate = entities.FloatPtr(5000)
	repo.EXPECT().GetByID(gomock.Any(), sheet.ID).Return(sheet, nil)

	data, err := uc.Export(context.Background(), sheet.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Header.CodeFiche != sheet.CodeFiche || data.Header.Version != 2 {
		t.Fatalf("unexpected header: %+v", data.Header)
	}
	if len(data.Rows) != 2 || data.Rows[1].LineID != "c-1" {
		t.Fatalf("unexpected rows: %+v", data.Rows)
	}
	if data.Rows[0].CurrentPercentage != 75 {
		t.Fatalf("expected 75%%, got %v", data.Rows[0].CurrentPercentage)
	}
	if data.Totals.Ariary == nil || *data.Totals.Ariary != 5_000_000 {
		t.Fatalf("unexpected ariary total: %v", data.Totals.Ariary)
	}
}

func TestVersionedStore_Save(t *testing.T) {
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	t.Run("new document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		store := newVersionedStore(repo)
		store.now = func() time.Time { return now }

		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.EstimationSheet{})).DoAndReturn(
			func(_ context.Context, s entities.EstimationSheet) (entities.EstimationSheet, error) {
				if !regexp.MustCompile(`^DEV-2026-[0-9A-F]{8}$`).MatchString(s.CodeFiche) {
					t.Fatalf("unexpected code fiche %q", s.CodeFiche)
				}
				if s.Version != 1 || s.ID != s.CodeFiche+"-v1" {
					t.Fatalf("unexpected identity: %s v%d", s.ID, s.Version)
				}
				if !s.CreatedAt.Equal(now) || !s.UpdatedAt.Equal(now) {
					t.Fatalf("expected timestamps")
				}
				return s, nil
			},
		)

		if _, err := store.Save(context.Background(), entities.EstimationSheet{Title: "x"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("new version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		store := newVersionedStore(repo)
		store.now = func() time.Time { return now }

		created := now.Add(-time.Hour)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.EstimationSheet{})).DoAndReturn(
			func(_ context.Context, s entities.EstimationSheet) (entities.EstimationSheet, error) {
				if s.ID != "DEV-1-v3" || s.Version != 3 || !s.CreatedAt.Equal(created) {
					t.Fatalf("unexpected sheet: %+v", s)
				}
				return s, nil
			},
		)

		if _, err := store.Save(context.Background(), entities.EstimationSheet{CodeFiche: "DEV-1", Version: 2, CreatedAt: created}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEstimationRepository(ctrl)
		store := newVersionedStore(repo)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.EstimationSheet{}, nil)

		if _, err := store.Save(context.Background(), entities.EstimationSheet{CodeFiche: "DEV-1", Version: 2}); !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}
