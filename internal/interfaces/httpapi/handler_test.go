package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/intramural/tournament-api/internal/infrastructure/repository/memory"
	"github.com/intramural/tournament-api/internal/platform/cache"
	"github.com/intramural/tournament-api/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	teamRepo := memory.NewTeamRepository(store)
	participantRepo := memory.NewParticipantRepository(store)
	sportRepo := memory.NewSportRepository(store)
	participationRepo := memory.NewParticipationRepository(store)
	resultRepo := memory.NewResultRepository(store)
	rankingCache := cache.NewStore(0)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(
		usecase.NewTeamService(teamRepo, participantRepo, rankingCache),
		usecase.NewParticipantService(participantRepo, teamRepo),
		usecase.NewSportService(sportRepo),
		usecase.NewParticipationService(participationRepo, participantRepo, sportRepo, 2),
		usecase.NewResultService(resultRepo, teamRepo, sportRepo, rankingCache),
		usecase.NewRankingService(teamRepo, resultRepo, rankingCache),
		logger,
	)

	return NewRouter(handler, logger, true, nil)
}

type envelope struct {
	APIVersion string          `json:"apiVersion"`
	Data       json.RawMessage `json:"data"`
	Error      *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Errors  []struct {
			Domain string `json:"domain"`
			Reason string `json:"reason"`
		} `json:"errors"`
	} `json:"error"`
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope from %q: %v", rec.Body.String(), err)
	}
	if env.APIVersion != "2.0" {
		t.Fatalf("expected apiVersion 2.0, got %q", env.APIVersion)
	}

	return rec, env
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)
	rec, env := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(string(env.Data), `"ok"`) {
		t.Fatalf("unexpected health payload: %s", env.Data)
	}
}

func TestTournamentFlow(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Tigers","city":"Campinas"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create team: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var tm struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &tm); err != nil {
		t.Fatalf("decode team: %v", err)
	}

	rec, env = doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Lions","city":"Santos"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create second team: expected 201, got %d", rec.Code)
	}

	rec, env = doJSON(t, router, http.MethodPost, "/v1/participants",
		`{"name":"Ana","nationalId":"111.444.777-35","teamId":`+itoa(tm.ID)+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create participant: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var p struct {
		ID         int64  `json:"id"`
		NationalID string `json:"nationalId"`
	}
	if err := json.Unmarshal(env.Data, &p); err != nil {
		t.Fatalf("decode participant: %v", err)
	}
	if p.NationalID != "11144477735" {
		t.Fatalf("expected normalized national id in response, got %q", p.NationalID)
	}

	rec, env = doJSON(t, router, http.MethodPost, "/v1/sports",
		`{"category":"collective","name":"Futsal","date":"2026-10-01","time":"14:00"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create sport: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	var sp struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &sp); err != nil {
		t.Fatalf("decode sport: %v", err)
	}

	rec, env = doJSON(t, router, http.MethodPost, "/v1/participations",
		`{"participantId":`+itoa(p.ID)+`,"sportId":`+itoa(sp.ID)+`}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register participation: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/participations",
		`{"participantId":`+itoa(p.ID)+`,"sportId":`+itoa(sp.ID)+`}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate participation: expected 409, got %d", rec.Code)
	}

	rec, env = doJSON(t, router, http.MethodPost, "/v1/results",
		`{"teamId":`+itoa(tm.ID)+`,"sportId":`+itoa(sp.ID)+`,"points":10}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("record result: expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var firstResult struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &firstResult); err != nil {
		t.Fatalf("decode result: %v", err)
	}

	// Re-recording overwrites and keeps the row id.
	rec, env = doJSON(t, router, http.MethodPost, "/v1/results",
		`{"teamId":`+itoa(tm.ID)+`,"sportId":`+itoa(sp.ID)+`,"points":30}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("overwrite result: expected 200, got %d", rec.Code)
	}
	var overwritten struct {
		ID     int64 `json:"id"`
		Points int64 `json:"points"`
	}
	if err := json.Unmarshal(env.Data, &overwritten); err != nil {
		t.Fatalf("decode overwritten result: %v", err)
	}
	if overwritten.ID != firstResult.ID || overwritten.Points != 30 {
		t.Fatalf("expected same row with 30 points, got %+v", overwritten)
	}

	rec, env = doJSON(t, router, http.MethodGet, "/v1/ranking", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("ranking: expected 200, got %d", rec.Code)
	}
	var ranking []struct {
		Position    int   `json:"position"`
		TotalPoints int64 `json:"totalPoints"`
		Team        struct {
			ID int64 `json:"id"`
		} `json:"team"`
	}
	if err := json.Unmarshal(env.Data, &ranking); err != nil {
		t.Fatalf("decode ranking: %v", err)
	}
	if len(ranking) != 2 {
		t.Fatalf("expected both teams ranked, got %d entries", len(ranking))
	}
	if ranking[0].Team.ID != tm.ID || ranking[0].TotalPoints != 30 || ranking[0].Position != 1 {
		t.Fatalf("unexpected leader: %+v", ranking[0])
	}
	if ranking[1].TotalPoints != 0 || ranking[1].Position != 2 {
		t.Fatalf("expected zero-point runner-up, got %+v", ranking[1])
	}
}

func TestBulkRegistrationEndpoint(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	_, env := doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Tigers","city":"Campinas"}`)
	var tm struct {
		ID int64 `json:"id"`
	}
	json.Unmarshal(env.Data, &tm)

	ids := make([]int64, 0, 2)
	for _, nationalID := range []string{"11144477735", "52998224725"} {
		_, env = doJSON(t, router, http.MethodPost, "/v1/participants",
			`{"name":"P","nationalId":"`+nationalID+`","teamId":`+itoa(tm.ID)+`}`)
		var p struct {
			ID int64 `json:"id"`
		}
		json.Unmarshal(env.Data, &p)
		ids = append(ids, p.ID)
	}

	_, env = doJSON(t, router, http.MethodPost, "/v1/sports",
		`{"category":"individual","name":"Chess","date":"2026-10-01","time":"09:00"}`)
	var sp struct {
		ID int64 `json:"id"`
	}
	json.Unmarshal(env.Data, &sp)

	body := `{"participantIds":[` + itoa(ids[0]) + `,` + itoa(ids[1]) + `,777]}`
	rec, env := doJSON(t, router, http.MethodPost, "/v1/sports/"+itoa(sp.ID)+"/participations", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("bulk registration: expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}

	var bulk struct {
		Registered []struct {
			ID int64 `json:"id"`
		} `json:"registered"`
		SkippedMissing   int `json:"skippedMissing"`
		SkippedDuplicate int `json:"skippedDuplicate"`
	}
	if err := json.Unmarshal(env.Data, &bulk); err != nil {
		t.Fatalf("decode bulk response: %v", err)
	}
	if len(bulk.Registered) != 2 || bulk.SkippedMissing != 1 || bulk.SkippedDuplicate != 0 {
		t.Fatalf("unexpected bulk outcome: %+v", bulk)
	}
}

func TestErrorEnvelopes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	t.Run("not found", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/v1/teams/999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if env.Error == nil || env.Error.Status != "NOT_FOUND" {
			t.Fatalf("unexpected error body: %+v", env.Error)
		}
	})

	t.Run("invalid path id", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/v1/teams/abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if env.Error == nil || env.Error.Status != "INVALID_ARGUMENT" {
			t.Fatalf("unexpected error body: %+v", env.Error)
		}
	})

	t.Run("unknown json field rejected", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Tigers","city":"Campinas","mascot":"cat"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid category rejected", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodPost, "/v1/sports",
			`{"category":"mixed","name":"Futsal","date":"2026-10-01","time":"14:00"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("error reason carries domain", func(t *testing.T) {
		_, env := doJSON(t, router, http.MethodGet, "/v1/teams/999", "")
		if len(env.Error.Errors) != 1 || env.Error.Errors[0].Domain != "tournament-api" || env.Error.Errors[0].Reason != "notFound" {
			t.Fatalf("unexpected error items: %+v", env.Error.Errors)
		}
	})
}

func TestListQueryFilters(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	_, env := doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Tigers","city":"Campinas"}`)
	var tigers struct {
		ID int64 `json:"id"`
	}
	json.Unmarshal(env.Data, &tigers)

	_, env = doJSON(t, router, http.MethodPost, "/v1/teams", `{"name":"Lions","city":"Santos"}`)
	var lions struct {
		ID int64 `json:"id"`
	}
	json.Unmarshal(env.Data, &lions)

	doJSON(t, router, http.MethodPost, "/v1/participants",
		`{"name":"Ana","nationalId":"11144477735","teamId":`+itoa(tigers.ID)+`}`)
	doJSON(t, router, http.MethodPost, "/v1/participants",
		`{"name":"Bia","nationalId":"52998224725","teamId":`+itoa(lions.ID)+`}`)

	t.Run("participants scoped to team", func(t *testing.T) {
		rec, env := doJSON(t, router, http.MethodGet, "/v1/participants?team_id="+itoa(tigers.ID), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var items []struct {
			TeamID int64 `json:"teamId"`
		}
		if err := json.Unmarshal(env.Data, &items); err != nil {
			t.Fatalf("decode participants: %v", err)
		}
		if len(items) != 1 || items[0].TeamID != tigers.ID {
			t.Fatalf("expected one tigers participant, got %+v", items)
		}
	})

	t.Run("unknown team scope is not found", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/v1/participants?team_id=999", "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("malformed filter rejected", func(t *testing.T) {
		rec, _ := doJSON(t, router, http.MethodGet, "/v1/results?sport_id=abc", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
