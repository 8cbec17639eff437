package espn

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"ScoreSync/internal/adapter"
	"ScoreSync/internal/config"
	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"
	"ScoreSync/internal/utils/httpclient"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// DefaultBaseURL ESPN site API
const DefaultBaseURL = "https://site.api.espn.com/apis/site/v2/sports"

// sportPaths scoreboard path of every sport routed to ESPN
var sportPaths = map[model.Sport]string{
	model.SportBasketball: "basketball/mens-college-basketball",
	model.SportBaseball:   "baseball/college-baseball",
}

type Adapter struct {
	cfg        *config.PlatformConfig
	baseURL    string
	aliases    []string
	httpClient *http.Client
	failures   interfaces.FailureRecorder
	logger     *logrus.Logger
}

func NewESPNAdapter(cfg *config.PlatformConfig, institution *config.InstitutionConfig, failures interfaces.FailureRecorder, logger *logrus.Logger) interfaces.GameAdapter {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Adapter{
		cfg:        cfg,
		baseURL:    baseURL,
		aliases:    institution.Aliases,
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		failures:   failures,
		logger:     logger,
	}
}

// GetType ========== GameAdapter ==========
func (a *Adapter) GetType() model.Source {
	return model.SourceESPN
}

func (a *Adapter) Sports() []model.Sport {
	return adapter.GetESPNSports()
}

// FetchGames tracked games on today's scoreboard; upstream and decode errors are returned
func (a *Adapter) FetchGames(ctx context.Context, sport model.Sport) ([]*model.Game, error) {
	path, ok := sportPaths[sport]
	if !ok {
		return nil, fmt.Errorf("espn does not serve %s: %w", sport, &model.UnknownSportError{Sport: string(sport)})
	}

	// 1. scoreboard
	var scoreboard model.ESPNScoreboard
	if err := httpclient.GetJSON(ctx, a.httpClient, a.scoreboardURL(path, 0), a.cfg.UserAgent, a.cfg.RetryCount, &scoreboard); err != nil {
		return nil, fmt.Errorf("fetch espn %s scoreboard: %w", sport, err)
	}

	// 2. keep the institution's games, convert them
	games := make([]*model.Game, 0)
	for _, ev := range scoreboard.Events {
		if !a.involvesInstitution(ev) {
			continue
		}
		game, ok := Convert(ev, sport)
		if !ok {
			a.logger.WithFields(logrus.Fields{"platform": model.SourceESPN, "event_id": ev.ID}).Debug("skipping event without home/away teams")
			continue
		}
		games = append(games, game)
	}

	a.logger.WithFields(logrus.Fields{
		"platform": model.SourceESPN,
		"sport":    sport,
		"events":   len(scoreboard.Events),
		"tracked":  len(games),
	}).Debug("espn scoreboard fetched")
	return games, nil
}

// FetchLiveGames started games; never fails, a failed fetch logs and yields no games
func (a *Adapter) FetchLiveGames(ctx context.Context, sport model.Sport) []*model.Game {
	games, err := a.FetchGames(ctx, sport)
	if err != nil {
		a.reportFailure(ctx, sport, err)
		return []*model.Game{}
	}
	return lo.Filter(games, func(g *model.Game, _ int) bool { return g.Started() })
}

// FetchUpcomingGames not-yet-started games; never fails
func (a *Adapter) FetchUpcomingGames(ctx context.Context, sport model.Sport) []*model.Game {
	games, err := a.FetchGames(ctx, sport)
	if err != nil {
		a.reportFailure(ctx, sport, err)
		return []*model.Game{}
	}
	return lo.Filter(games, func(g *model.Game, _ int) bool { return g.GameStatus == model.StatusScheduled })
}

// Probe one-event scoreboard request
func (a *Adapter) Probe(ctx context.Context) error {
	var scoreboard model.ESPNScoreboard
	path := sportPaths[model.SportBasketball]
	if err := httpclient.GetJSON(ctx, a.httpClient, a.scoreboardURL(path, 1), a.cfg.UserAgent, 0, &scoreboard); err != nil {
		return fmt.Errorf("espn probe: %w", err)
	}
	return nil
}

func (a *Adapter) scoreboardURL(path string, limit int) string {
	u := fmt.Sprintf("%s/%s/scoreboard", a.baseURL, path)
	if limit > 0 {
		u += "?" + url.Values{"limit": {fmt.Sprint(limit)}}.Encode()
	}
	return u
}

func (a *Adapter) involvesInstitution(ev model.ESPNEvent) bool {
	if len(ev.Competitions) == 0 {
		return false
	}
	for _, c := range ev.Competitions[0].Competitors {
		if adapter.MatchesInstitution(a.aliases, c.Team.Abbreviation, c.Team.DisplayName, c.Team.ShortDisplayName, c.Team.Location) {
			return true
		}
	}
	return false
}

func (a *Adapter) reportFailure(ctx context.Context, sport model.Sport, err error) {
	a.logger.WithError(err).WithFields(logrus.Fields{
		"platform": model.SourceESPN,
		"sport":    sport,
	}).Warn("espn fetch failed, treating as no games")
	if a.failures != nil {
		a.failures.RecordFailure(ctx, model.SourceESPN, sport)
	}
}

// Convert maps one ESPN event to a Game. Returns false when the event has no identifiable home/away team.
func Convert(ev model.ESPNEvent, sport model.Sport) (*model.Game, bool) {
	if len(ev.Competitions) == 0 {
		return nil, false
	}
	comp := ev.Competitions[0]

	var home, away *model.ESPNCompetitor
	for i := range comp.Competitors {
		switch strings.ToLower(comp.Competitors[i].HomeAway) {
		case "home":
			home = &comp.Competitors[i]
		case "away":
			away = &comp.Competitors[i]
		}
	}
	if home == nil || away == nil {
		return nil, false
	}
	homeName := teamName(home.Team)
	awayName := teamName(away.Team)
	if homeName == "" || awayName == "" {
		return nil, false
	}

	st := ev.Status
	if comp.Status != nil {
		st = *comp.Status
	}
	status := mapStatus(st, sport)

	date := parseTimeStr(adapter.FirstNonEmpty(ev.Date, comp.Date))

	game := &model.Game{
		ID:           ev.ID,
		Sport:        sport,
		Source:       model.SourceESPN,
		HomeTeamID:   resolveTeamID(home.Team),
		AwayTeamID:   resolveTeamID(away.Team),
		HomeTeamName: homeName,
		AwayTeamName: awayName,
		HomeScore:    adapter.ParseScore(home.Score),
		AwayScore:    adapter.ParseScore(away.Score),
		GameStatus:   status,
		GameTime:     gameTime(st, date),
		Venue:        comp.Venue.FullName,
		Period:       periodLabel(sport, st.Period),
		Date:         date,
		IsEnabled:    true,
	}
	if (status == model.StatusLive || status == model.StatusHalftime) && sport.MidpointPeriod() > 0 {
		game.TimeRemaining = st.DisplayClock
	}
	return game, true
}

// mapStatus pre -> scheduled, in -> live or halftime, post -> final
func mapStatus(st model.ESPNStatus, sport model.Sport) model.GameStatus {
	switch strings.ToLower(strings.TrimSpace(st.Type.State)) {
	case "pre":
		return model.StatusScheduled
	case "in":
		if isHalftime(st, sport) {
			return model.StatusHalftime
		}
		return model.StatusLive
	case "post":
		return model.StatusFinal
	default:
		if st.Type.Completed {
			return model.StatusFinal
		}
		return model.StatusScheduled
	}
}

// isHalftime explicit halftime status, or the midpoint period with no clock left
func isHalftime(st model.ESPNStatus, sport model.Sport) bool {
	if strings.EqualFold(st.Type.Name, "STATUS_HALFTIME") {
		return true
	}
	mid := sport.MidpointPeriod()
	return mid > 0 && st.Period == mid && st.Clock <= 0
}

func teamName(t model.ESPNTeam) string {
	return adapter.FirstNonEmpty(t.DisplayName, t.ShortDisplayName, t.Abbreviation, t.Location)
}

func resolveTeamID(t model.ESPNTeam) string {
	return adapter.ResolveTeamID(teamIDs, teamName(t), t.Abbreviation, t.DisplayName, t.ShortDisplayName, t.Location)
}

func periodLabel(sport model.Sport, period int) string {
	if period <= 0 {
		return ""
	}
	if sport == model.SportBasketball && period > 2 {
		if ot := period - 2; ot > 1 {
			return fmt.Sprintf("%dOT", ot)
		}
		return "OT"
	}
	return adapter.Ordinal(period)
}

func gameTime(st model.ESPNStatus, date time.Time) string {
	if st.Type.ShortDetail != "" {
		return st.Type.ShortDetail
	}
	if date.IsZero() {
		return ""
	}
	return date.Format("3:04 PM MST")
}

// parseTimeStr ESPN dates come without seconds ("2024-01-05T03:00Z"); zero time when unparseable
func parseTimeStr(timeStr string) time.Time {
	if timeStr == "" {
		return time.Time{}
	}
	timeFormats := []string{
		"2006-01-02T15:04Z07:00",
		time.RFC3339,
		"2006-01-02T15:04:05Z07:00",
		"2006-01-02",
	}
	for _, format := range timeFormats {
		if parsed, err := time.Parse(format, timeStr); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
