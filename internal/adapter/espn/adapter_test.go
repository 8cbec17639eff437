package espn

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"ScoreSync/internal/config"
	"ScoreSync/internal/model"

	"github.com/sirupsen/logrus"
)

type recordedFailure struct {
	source model.Source
	sport  model.Sport
}

type fakeRecorder struct {
	mu       sync.Mutex
	failures []recordedFailure
}

func (f *fakeRecorder) RecordFailure(_ context.Context, source model.Source, sport model.Sport) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, recordedFailure{source: source, sport: sport})
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func event(id, state string, period int, clock float64, home, away model.ESPNTeam, homeScore, awayScore string) model.ESPNEvent {
	return model.ESPNEvent{
		ID:   id,
		Date: "2024-01-05T03:00Z",
		Competitions: []model.ESPNCompetition{{
			ID:    id,
			Venue: model.ESPNVenue{FullName: "LionTree Arena"},
			Competitors: []model.ESPNCompetitor{
				{HomeAway: "home", Score: homeScore, Team: home},
				{HomeAway: "away", Score: awayScore, Team: away},
			},
		}},
		Status: model.ESPNStatus{
			Clock:        clock,
			DisplayClock: "0:00",
			Period:       period,
			Type:         model.ESPNStatusType{State: state, ShortDetail: "Halftime"},
		},
	}
}

var (
	tritons = model.ESPNTeam{ID: "28", Abbreviation: "UCSD", DisplayName: "UC San Diego Tritons", Location: "UC San Diego"}
	bruins  = model.ESPNTeam{ID: "26", Abbreviation: "UCLA", DisplayName: "UCLA Bruins", Location: "UCLA"}
	sdsu    = model.ESPNTeam{ID: "21", Abbreviation: "SDSU", DisplayName: "San Diego State Aztecs", Location: "San Diego State"}
	zags    = model.ESPNTeam{ID: "2250", Abbreviation: "GONZ", DisplayName: "Gonzaga Bulldogs", Location: "Gonzaga"}
)

func TestConvertHalftimeScenario(t *testing.T) {
	ev := event("401", "in", 2, 0, tritons, bruins, "71", "65")

	game, ok := Convert(ev, model.SportBasketball)
	if !ok {
		t.Fatal("expected event to convert")
	}
	if game.HomeTeamID != "ucsd" || game.AwayTeamID != "ucla" {
		t.Fatalf("team ids = %q/%q, want ucsd/ucla", game.HomeTeamID, game.AwayTeamID)
	}
	if game.HomeScore != 71 || game.AwayScore != 65 {
		t.Fatalf("score = %d-%d, want 71-65", game.HomeScore, game.AwayScore)
	}
	if game.GameStatus != model.StatusHalftime {
		t.Fatalf("status = %s, want halftime", game.GameStatus)
	}
	if game.Sport != model.SportBasketball || game.Source != model.SourceESPN {
		t.Fatalf("sport/source = %s/%s", game.Sport, game.Source)
	}
	if game.Venue != "LionTree Arena" || !game.IsEnabled {
		t.Fatalf("unexpected venue/enabled: %q %v", game.Venue, game.IsEnabled)
	}
	if game.Date.IsZero() || game.Date.Hour() != 3 {
		t.Fatalf("date not parsed: %v", game.Date)
	}
}

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name  string
		sport model.Sport
		st    model.ESPNStatus
		want  model.GameStatus
	}{
		{"pre", model.SportBasketball, model.ESPNStatus{Type: model.ESPNStatusType{State: "pre"}}, model.StatusScheduled},
		{"post", model.SportBasketball, model.ESPNStatus{Type: model.ESPNStatusType{State: "post", Completed: true}}, model.StatusFinal},
		{"in first half", model.SportBasketball, model.ESPNStatus{Period: 1, Clock: 0, Type: model.ESPNStatusType{State: "in"}}, model.StatusLive},
		{"in clock running", model.SportBasketball, model.ESPNStatus{Period: 2, Clock: 312, Type: model.ESPNStatusType{State: "in"}}, model.StatusLive},
		{"midpoint clock zero", model.SportBasketball, model.ESPNStatus{Period: 2, Clock: 0, Type: model.ESPNStatusType{State: "in"}}, model.StatusHalftime},
		{"explicit halftime", model.SportBasketball, model.ESPNStatus{Period: 1, Clock: 40, Type: model.ESPNStatusType{State: "in", Name: "STATUS_HALFTIME"}}, model.StatusHalftime},
		{"baseball has no halftime", model.SportBaseball, model.ESPNStatus{Period: 2, Clock: 0, Type: model.ESPNStatusType{State: "in"}}, model.StatusLive},
		{"unknown state completed", model.SportBaseball, model.ESPNStatus{Type: model.ESPNStatusType{Completed: true}}, model.StatusFinal},
		{"unknown state", model.SportBaseball, model.ESPNStatus{}, model.StatusScheduled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapStatus(tt.st, tt.sport); got != tt.want {
				t.Fatalf("mapStatus = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConvertRejectsIncompleteEvents(t *testing.T) {
	noAway := event("1", "pre", 0, 0, tritons, bruins, "", "")
	noAway.Competitions[0].Competitors = noAway.Competitions[0].Competitors[:1]
	if _, ok := Convert(noAway, model.SportBasketball); ok {
		t.Fatal("event without away team must not convert")
	}

	if _, ok := Convert(model.ESPNEvent{ID: "2"}, model.SportBasketball); ok {
		t.Fatal("event without competitions must not convert")
	}

	nameless := event("3", "pre", 0, 0, tritons, model.ESPNTeam{}, "", "")
	if _, ok := Convert(nameless, model.SportBasketball); ok {
		t.Fatal("event with nameless team must not convert")
	}
}

func TestConvertUnknownTeamFallsBackToSlug(t *testing.T) {
	game, ok := Convert(event("9", "pre", 0, 0, tritons, zags, "", ""), model.SportBasketball)
	if !ok {
		t.Fatal("expected conversion")
	}
	if game.AwayTeamID != "gonzaga-bulldogs" {
		t.Fatalf("away id = %q, want gonzaga-bulldogs", game.AwayTeamID)
	}
	if game.HomeScore != 0 || game.AwayScore != 0 {
		t.Fatalf("missing scores must be 0, got %d-%d", game.HomeScore, game.AwayScore)
	}
}

func TestPeriodLabel(t *testing.T) {
	cases := map[int]string{0: "", 1: "1st", 2: "2nd", 3: "OT", 4: "2OT"}
	for period, want := range cases {
		if got := periodLabel(model.SportBasketball, period); got != want {
			t.Errorf("periodLabel(%d) = %q, want %q", period, got, want)
		}
	}
	if got := periodLabel(model.SportBaseball, 7); got != "7th" {
		t.Errorf("baseball inning = %q, want 7th", got)
	}
}

func newTestAdapter(t *testing.T, handler http.HandlerFunc, rec *fakeRecorder) *Adapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := &config.PlatformConfig{BaseURL: srv.URL, Timeout: 2}
	inst := &config.InstitutionConfig{Aliases: []string{"UCSD", "UC San Diego"}}
	return NewESPNAdapter(cfg, inst, rec, quietLogger()).(*Adapter)
}

func TestFetchLiveGamesFiltersInstitution(t *testing.T) {
	board := model.ESPNScoreboard{Events: []model.ESPNEvent{
		event("1", "in", 2, 0, tritons, bruins, "71", "65"),
		event("2", "in", 1, 200, sdsu, zags, "10", "12"),
		event("3", "pre", 0, 0, bruins, tritons, "", ""),
	}}
	var gotPath string
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(board)
	}, &fakeRecorder{})

	live := a.FetchLiveGames(context.Background(), model.SportBasketball)
	if gotPath != "/basketball/mens-college-basketball/scoreboard" {
		t.Fatalf("path = %s", gotPath)
	}
	if len(live) != 1 || live[0].ID != "1" {
		t.Fatalf("live games = %+v, want only event 1", live)
	}

	upcoming := a.FetchUpcomingGames(context.Background(), model.SportBasketball)
	if len(upcoming) != 1 || upcoming[0].ID != "3" {
		t.Fatalf("upcoming games = %+v, want only event 3", upcoming)
	}
}

func TestFetchFailureYieldsEmptyAndRecords(t *testing.T) {
	rec := &fakeRecorder{}
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusNotFound)
	}, rec)

	games := a.FetchLiveGames(context.Background(), model.SportBaseball)
	if games == nil || len(games) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", games)
	}
	if len(rec.failures) != 1 || rec.failures[0].source != model.SourceESPN || rec.failures[0].sport != model.SportBaseball {
		t.Fatalf("failures = %+v", rec.failures)
	}

	if _, err := a.FetchGames(context.Background(), model.SportBaseball); err == nil {
		t.Fatal("FetchGames must surface the upstream error")
	}
}

func TestFetchGamesMalformedBody(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"events": [`))
	}, &fakeRecorder{})

	_, err := a.FetchGames(context.Background(), model.SportBasketball)
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestFetchGamesRejectsNCAASport(t *testing.T) {
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}, &fakeRecorder{})

	if _, err := a.FetchGames(context.Background(), model.SportSoftball); err == nil {
		t.Fatal("expected error for a sport ESPN does not serve")
	}
}

func TestProbe(t *testing.T) {
	var limit string
	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		limit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"events": []}`))
	}, &fakeRecorder{})

	if err := a.Probe(context.Background()); err != nil {
		t.Fatalf("Probe: %v", err)
	}
	if limit != "1" {
		t.Fatalf("limit = %q, want 1", limit)
	}
}
