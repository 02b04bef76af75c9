package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"

	"github.com/pitlanehq/pitwall/internal/infrastructure/repository/memory"
	"github.com/pitlanehq/pitwall/internal/platform/id"
	"github.com/pitlanehq/pitwall/internal/platform/logging"
	"github.com/pitlanehq/pitwall/internal/usecase"
)

// newTestRouter wires the full API over seeded memory repositories, the same
// shape cmd/api assembles in production.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	const season = 2026
	logger := logging.NewNop()

	driverRepo := memory.NewDriverRepository(memory.SeedDrivers())
	teamRepo := memory.NewTeamRepository(memory.SeedTeams())
	raceRepo := memory.NewRaceRepository(memory.SeedRaces())
	userRepo := memory.NewUserRepository(memory.SeedUsers())
	resultRepo := memory.NewResultRepository()
	betRepo := memory.NewBetRepository()
	roundRepo := memory.NewRoundRepository()
	bonusRepo := memory.NewBonusRepository()
	settingsRepo := memory.NewSettingsRepository()
	standingsRepo := memory.NewStandingsRepository()

	standingsService := usecase.NewStandingsService(resultRepo, driverRepo, teamRepo, standingsRepo)
	resultService := usecase.NewResultService(raceRepo, resultRepo, standingsService, season, logger)
	roundService := usecase.NewRoundService(raceRepo, roundRepo, logger)
	settingsService := usecase.NewSettingsService(settingsRepo, season, logger)
	betService := usecase.NewBetService(betRepo, driverRepo, roundService, settingsService, season, logger)
	bonusService := usecase.NewBonusService(bonusRepo, id.NewRandomGenerator(), season, logger)
	leaderboardService := usecase.NewLeaderboardService(userRepo, betRepo, resultRepo, settingsService, bonusService, season, logger)
	ingestionService := usecase.NewIngestionService(driverRepo, logger)
	referenceService := usecase.NewReferenceService(driverRepo, teamRepo, raceRepo)

	handler := NewHandler(
		ingestionService,
		resultService,
		standingsService,
		roundService,
		betService,
		bonusService,
		leaderboardService,
		settingsService,
		referenceService,
		season,
		nil,
	)

	return NewRouter(handler, userRepo, nil, []string{"*"})
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) any {
	t.Helper()

	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response body: %v", err)
	}
	return body["data"]
}

func TestRouter_ListDrivers(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/drivers", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	drivers, ok := decodeData(t, rec).([]any)
	if !ok {
		t.Fatalf("expected driver list in data")
	}
	if len(drivers) != 12 {
		t.Fatalf("expected 12 seeded drivers, got %d", len(drivers))
	}
}

func TestRouter_GetRace(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/races/melbourne-2026", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	race, ok := decodeData(t, rec).(map[string]any)
	if !ok {
		t.Fatalf("expected race object in data")
	}
	if got, _ := race["city"].(string); got != "Melbourne" {
		t.Fatalf("expected city Melbourne, got %v", race["city"])
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/races/monza-1950", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown race, got %d", rec.Code)
	}
}

func TestRouter_SaveResultUpdatesStandings(t *testing.T) {
	router := newTestRouter(t)

	payload := `{
		"entries": [
			{"driverId": "lando-norris", "teamId": "mclaren", "position": "1", "laps": 58},
			{"driverId": "max-verstappen", "teamId": "red-bull", "position": "2", "laps": 58}
		]
	}`
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/races/melbourne-2026/sessions/race/result", strings.NewReader(payload))
	req.Header.Set("X-User-ID", "user-admin")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/standings", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	standings, ok := decodeData(t, rec).(map[string]any)
	if !ok {
		t.Fatalf("expected standings object in data")
	}
	drivers, _ := standings["drivers"].([]any)
	if len(drivers) == 0 {
		t.Fatalf("expected driver standings after result save")
	}
	leader, _ := drivers[0].(map[string]any)
	if got, _ := leader["driverId"].(string); got != "lando-norris" {
		t.Fatalf("expected lando-norris leading, got %v", leader["driverId"])
	}
	if got, _ := leader["points"].(float64); got != 25 {
		t.Fatalf("expected 25 points for the winner, got %v", leader["points"])
	}
}

func TestRouter_AdminRoutesRejectRegularPlayers(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/standings/recompute", nil)
	req.Header.Set("X-User-ID", "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
