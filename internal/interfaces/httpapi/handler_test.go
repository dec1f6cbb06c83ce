package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/club-tracker/internal/domain/valuation"
	"github.com/riskibarqy/club-tracker/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/club-tracker/internal/platform/id"
	"github.com/riskibarqy/club-tracker/internal/platform/logging"
	"github.com/riskibarqy/club-tracker/internal/platform/sessionstore"
	"github.com/riskibarqy/club-tracker/internal/usecase"
)

const testPIN = "4242"

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	generator := id.NewRandomGenerator()

	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers())
	matchRepo := memory.NewMatchRepository(nil)
	newsRepo := memory.NewNewsRepository(nil)
	writer := usecase.NewStateWriter(playerRepo, matchRepo, newsRepo, nil)

	sessions := sessionstore.New(time.Hour)
	authService := usecase.NewAuthService(testPIN, sessions, generator, logger)
	playerService := usecase.NewPlayerService(playerRepo, valuation.DefaultLadder(), writer, generator, logger)
	matchService := usecase.NewMatchService(matchRepo, playerRepo, writer, generator, logger)
	newsService := usecase.NewNewsService(newsRepo, writer, generator, logger)
	auditService := usecase.NewAuditService(matchRepo, playerRepo, 2, logger)

	handler := NewHandler(authService, playerService, matchService, newsService, auditService, logger)

	return NewRouter(handler, authService, logger, []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := sonic.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	var envelope struct {
		APIVersion string          `json:"apiVersion"`
		Data       json.RawMessage `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if err := sonic.Unmarshal(envelope.Data, out); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

func unlock(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/unlock", "", map[string]string{"pin": testPIN})
	if rec.Code != http.StatusOK {
		t.Fatalf("unlock failed: status=%d body=%s", rec.Code, rec.Body.String())
	}

	var dto sessionDTO
	decodeData(t, rec, &dto)
	if dto.Token == "" {
		t.Fatal("expected a session token")
	}

	return dto.Token
}

func TestRouter_PublicRoutesNeedNoToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/v1/players", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var players []playerDTO
	decodeData(t, rec, &players)
	if len(players) != 3 {
		t.Fatalf("expected 3 seeded players, got %d", len(players))
	}

	rec = doJSON(t, router, http.MethodGet, "/v1/players/ladder", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for ladder, got %d", rec.Code)
	}
}

func TestRouter_MutationsRejectMissingToken(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/players", "", map[string]string{"name": "X", "role": "FWD"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_WrongPINRejected(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/unlock", "", map[string]string{"pin": "0000"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRouter_MatchLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := unlock(t, router)

	rec := doJSON(t, router, http.MethodPost, "/v1/matches", token, map[string]string{
		"date":   "2026-03-14",
		"time":   "19:00",
		"status": "played",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create match failed: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var created matchDTO
	decodeData(t, rec, &created)

	base := "/v1/matches/" + created.ID

	rec = doJSON(t, router, http.MethodPut, base+"/teams/A/players/p-hassan-hojeij", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("assign failed: status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPut, base+"/stats/p-hassan-hojeij", token, map[string]int{"goals": 2, "assists": 1})
	if rec.Code != http.StatusOK {
		t.Fatalf("set stat failed: status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = doJSON(t, router, http.MethodPost, base+"/apply", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("apply failed: status=%d body=%s", rec.Code, rec.Body.String())
	}
	var result applyResultDTO
	decodeData(t, rec, &result)
	if len(result.Deltas) != 1 || result.Deltas[0].Goals != 2 {
		t.Fatalf("unexpected apply deltas: %+v", result.Deltas)
	}

	// seeded 2 goals 1 assist 2 matches, plus this match
	rec = doJSON(t, router, http.MethodGet, "/v1/players/p-hassan-hojeij", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get player failed: status=%d", rec.Code)
	}
	var view playerDTO
	decodeData(t, rec, &view)
	if view.Goals != 4 || view.Assists != 2 || view.Matches != 3 {
		t.Fatalf("unexpected totals after apply: goals=%d assists=%d matches=%d", view.Goals, view.Assists, view.Matches)
	}

	// second apply is a no-op
	rec = doJSON(t, router, http.MethodPost, base+"/apply", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("re-apply failed: status=%d", rec.Code)
	}
	decodeData(t, rec, &result)
	if len(result.Deltas) != 0 {
		t.Fatalf("expected no deltas on re-apply, got %+v", result.Deltas)
	}
}

func TestRouter_LogoutRevokesSession(t *testing.T) {
	router := newTestRouter(t)
	token := unlock(t, router)

	rec := doJSON(t, router, http.MethodPost, "/v1/auth/logout", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout failed: status=%d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/v1/news", token, map[string]string{"title": "After logout"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", rec.Code)
	}
}
