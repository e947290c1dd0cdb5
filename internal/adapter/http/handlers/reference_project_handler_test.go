package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"devis_batiment/internal/adapter/http/handlers/mocks"
	"devis_batiment/internal/domain/entities"
	"devis_batiment/internal/domain/estimation"
	"devis_batiment/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newProjectRouter(h *ReferenceProjectHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/ping", Ping)
	r.GET("/v1/catalog", GetCatalog)
	r.POST("/v1/reference-projects/rank", h.RankProjects)
	r.POST("/v1/cost-averages", h.PreviewCosts)
	return r
}

func TestReferenceProjectHandler_RankProjects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing construction type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIReferenceProjectUseCase(ctrl)
		costs := mocks.NewMockICostAveragingUseCase(ctrl)
		r := newProjectRouter(NewReferenceProjectHandler(projects, costs))

		w := doJSON(r, http.MethodPost, "/v1/reference-projects/rank", `{"criteria":{"floor_count":2}}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIReferenceProjectUseCase(ctrl)
		costs := mocks.NewMockICostAveragingUseCase(ctrl)
		r := newProjectRouter(NewReferenceProjectHandler(projects, costs))

		projects.EXPECT().RankProjects(gomock.Any(), "villa", gomock.Any()).DoAndReturn(
			func(_ any, _ string, criteria entities.SimilarityCriteria) ([]estimation.ScoredProject, error) {
				if criteria.FloorCount == nil || *criteria.FloorCount != 2 || criteria.RoofType != "tuiles" {
					t.Fatalf("unexpected criteria: %+v", criteria)
				}
				return []estimation.ScoredProject{
					{Project: entities.ReferenceProject{ID: "p1", Name: "Alpha"}, Score: 100},
					{Project: entities.ReferenceProject{ID: "p2", Name: "Beta"}, Score: 50},
				}, nil
			})

		body := `{"construction_type_id":" villa ","criteria":{"floor_count":2,"roof_type":"tuiles"}}`
		w := doJSON(r, http.MethodPost, "/v1/reference-projects/rank", body, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if len(got) != 2 || got[0]["project_id"] != "p1" || got[0]["score"] != 100.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("invalid construction type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIReferenceProjectUseCase(ctrl)
		costs := mocks.NewMockICostAveragingUseCase(ctrl)
		r := newProjectRouter(NewReferenceProjectHandler(projects, costs))

		projects.EXPECT().RankProjects(gomock.Any(), "", gomock.Any()).Return(nil, usecase.ErrInvalidConstructionType)

		w := doJSON(r, http.MethodPost, "/v1/reference-projects/rank", `{"construction_type_id":"  "}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestReferenceProjectHandler_PreviewCosts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIReferenceProjectUseCase(ctrl)
		costs := mocks.NewMockICostAveragingUseCase(ctrl)
		r := newProjectRouter(NewReferenceProjectHandler(projects, costs))

		costs.EXPECT().Preview(gomock.Any(), usecase.CostPreviewInput{
			ProjectIDs:    []string{"p1", "p2"},
			ItemIDs:       []int{1, 2},
			SurfaceType:   "habitable",
			TargetSurface: 200,
		}).Return(usecase.CostPreview{
			ReferenceSurface: 100,
			StandardTotal:    3000,
			Extrapolation:    estimation.Extrapolation{UnitPrice: 30, BaseEstimation: 6000},
		}, nil)

		body := `{"project_ids":["p1","p2"],"item_ids":[1,2],"surface_type":"habitable","target_surface":200}`
		w := doJSON(r, http.MethodPost, "/v1/cost-averages", body, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["reference_surface"] != 100.0 || got["standard_total"] != 3000.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("usecase rejects selection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mocks.NewMockIReferenceProjectUseCase(ctrl)
		costs := mocks.NewMockICostAveragingUseCase(ctrl)
		r := newProjectRouter(NewReferenceProjectHandler(projects, costs))

		costs.EXPECT().Preview(gomock.Any(), gomock.Any()).Return(usecase.CostPreview{}, usecase.ErrNoCatalogItems)

		w := doJSON(r, http.MethodPost, "/v1/cost-averages", `{"project_ids":["p1"],"item_ids":[]}`, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogAndPing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	r := newProjectRouter(NewReferenceProjectHandler(mocks.NewMockIReferenceProjectUseCase(ctrl), mocks.NewMockICostAveragingUseCase(ctrl)))

	w := doJSON(r, http.MethodGet, "/v1/catalog", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Items []entities.CatalogEntry `json:"items"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body.Items) != entities.CatalogSize || body.Items[0].ID != 1 {
		t.Fatalf("unexpected catalog: %s", w.Body.String())
	}

	if w := doJSON(r, http.MethodGet, "/v1/ping", "", nil); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
