package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"devis_batiment/internal/adapter/http/handlers"
	"devis_batiment/internal/adapter/http/handlers/mocks"
	"devis_batiment/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func testHandlers(ctrl *gomock.Controller) (Handlers, *mocks.MockIEstimationSessionUseCase) {
	sessions := mocks.NewMockIEstimationSessionUseCase(ctrl)
	return Handlers{
		ReferenceProjects:  handlers.NewReferenceProjectHandler(mocks.NewMockIReferenceProjectUseCase(ctrl), mocks.NewMockICostAveragingUseCase(ctrl)),
		EstimationSessions: handlers.NewEstimationSessionHandler(sessions),
		Estimations:        handlers.NewEstimationHandler(mocks.NewMockIEstimationUseCase(ctrl)),
	}, sessions
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := testHandlers(ctrl)
	router := NewRouter(h)

	registered := map[string]bool{}
	for _, r := range router.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /v1/ping",
		"GET /v1/catalog",
		"POST /v1/reference-projects/rank",
		"POST /v1/cost-averages",
		"POST /v1/estimation-sessions",
		"GET /v1/estimation-sessions/:session_id",
		"PATCH /v1/estimation-sessions/:session_id/lines/:line_id",
		"PATCH /v1/estimation-sessions/:session_id/meta",
		"POST /v1/estimation-sessions/:session_id/reset",
		"POST /v1/estimation-sessions/:session_id/save",
		"DELETE /v1/estimation-sessions/:session_id",
		"GET /v1/estimations/:id",
		"GET /v1/estimations/:id/export",
		"DELETE /v1/estimations/:id",
		"GET /v1/estimations/code/:code_fiche/versions",
		"GET /swagger/*any",
	}
	for _, route := range want {
		if !registered[route] {
			t.Fatalf("route %q not registered", route)
		}
	}
}

func TestNewRouter_Serves(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, sessions := testHandlers(ctrl)
	router := NewRouter(h)

	sessions.EXPECT().Get(gomock.Any(), "s-1").Return(usecase.SessionSnapshot{SessionID: "s-1"}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimation-sessions/s-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestNewRouter_RecoversFromPanic(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, sessions := testHandlers(ctrl)
	router := NewRouter(h)

	sessions.EXPECT().Get(gomock.Any(), "boom").DoAndReturn(func(_ any, _ string) (usecase.SessionSnapshot, error) {
		panic("unexpected")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/estimation-sessions/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
