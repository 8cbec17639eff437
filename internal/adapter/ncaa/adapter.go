package ncaa

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
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

// DefaultBaseURL public NCAA scoreboard mirror
const DefaultBaseURL = "https://ncaa-api.henrygd.me"

// sportPaths sport/division segment of every sport routed to NCAA
var sportPaths = map[model.Sport]string{
	model.SportBasketballWomen: "basketball-women/d1",
	model.SportSoccerMen:       "soccer-men/d1",
	model.SportSoccerWomen:     "soccer-women/d1",
	model.SportVolleyballMen:   "volleyball-men/nc",
	model.SportVolleyballWomen: "volleyball-women/d1",
	model.SportSoftball:        "softball/d1",
	model.SportWaterPoloMen:    "water-polo-men/nc",
	model.SportWaterPoloWomen:  "water-polo-women/nc",
}

type Adapter struct {
	cfg        *config.PlatformConfig
	baseURL    string
	aliases    []string
	location   *time.Location
	httpClient *http.Client
	failures   interfaces.FailureRecorder
	logger     *logrus.Logger
	now        func() time.Time
}

func NewNCAAAdapter(cfg *config.PlatformConfig, institution *config.InstitutionConfig, failures interfaces.FailureRecorder, logger *logrus.Logger) interfaces.GameAdapter {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Adapter{
		cfg:        cfg,
		baseURL:    baseURL,
		aliases:    institution.Aliases,
		location:   institution.Location(),
		httpClient: httpclient.NewHTTPClient(cfg, logger),
		failures:   failures,
		logger:     logger,
		now:        time.Now,
	}
}

// GetType ========== GameAdapter ==========
func (a *Adapter) GetType() model.Source {
	return model.SourceNCAA
}

func (a *Adapter) Sports() []model.Sport {
	return adapter.GetNCAASports()
}

// FetchGames tracked games on the scoreboard of the current local day
func (a *Adapter) FetchGames(ctx context.Context, sport model.Sport) ([]*model.Game, error) {
	path, ok := sportPaths[sport]
	if !ok {
		return nil, fmt.Errorf("ncaa does not serve %s: %w", sport, &model.UnknownSportError{Sport: string(sport)})
	}

	// 1. scoreboard of today in the institution's time zone
	var scoreboard model.NCAAScoreboard
	if err := httpclient.GetJSON(ctx, a.httpClient, a.scoreboardURL(path, a.now()), a.cfg.UserAgent, a.cfg.RetryCount, &scoreboard); err != nil {
		return nil, fmt.Errorf("fetch ncaa %s scoreboard: %w", sport, err)
	}

	// 2. keep the institution's games, convert them
	games := make([]*model.Game, 0)
	for _, w := range scoreboard.Games {
		g := w.Game
		if !a.involvesInstitution(g) {
			continue
		}
		game, ok := Convert(g, sport, a.location)
		if !ok {
			a.logger.WithFields(logrus.Fields{"platform": model.SourceNCAA, "game_id": g.GameID}).Debug("skipping game without home/away teams")
			continue
		}
		games = append(games, game)
	}

	a.logger.WithFields(logrus.Fields{
		"platform": model.SourceNCAA,
		"sport":    sport,
		"games":    len(scoreboard.Games),
		"tracked":  len(games),
	}).Debug("ncaa scoreboard fetched")
	return games, nil
}

// FetchLiveGames started games; never fails
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

// Probe today's women's basketball scoreboard
func (a *Adapter) Probe(ctx context.Context) error {
	var scoreboard model.NCAAScoreboard
	u := a.scoreboardURL(sportPaths[model.SportBasketballWomen], a.now())
	if err := httpclient.GetJSON(ctx, a.httpClient, u, a.cfg.UserAgent, 0, &scoreboard); err != nil {
		return fmt.Errorf("ncaa probe: %w", err)
	}
	return nil
}

func (a *Adapter) scoreboardURL(path string, now time.Time) string {
	return fmt.Sprintf("%s/scoreboard/%s/%s/all-conf", a.baseURL, path, now.In(a.location).Format("2006/01/02"))
}

func (a *Adapter) involvesInstitution(g model.NCAAGame) bool {
	for _, t := range []model.NCAATeam{g.Home, g.Away} {
		if adapter.MatchesInstitution(a.aliases, t.Names.Short, t.Names.Full, t.Names.Char6, t.Names.SEO) {
			return true
		}
	}
	return false
}

func (a *Adapter) reportFailure(ctx context.Context, sport model.Sport, err error) {
	a.logger.WithError(err).WithFields(logrus.Fields{
		"platform": model.SourceNCAA,
		"sport":    sport,
	}).Warn("ncaa fetch failed, treating as no games")
	if a.failures != nil {
		a.failures.RecordFailure(ctx, model.SourceNCAA, sport)
	}
}

// Convert maps one NCAA scoreboard game to a Game. Returns false when a side has no name.
func Convert(g model.NCAAGame, sport model.Sport, loc *time.Location) (*model.Game, bool) {
	homeName := teamName(g.Home.Names)
	awayName := teamName(g.Away.Names)
	if homeName == "" || awayName == "" {
		return nil, false
	}
	if loc == nil {
		loc = time.UTC
	}

	status := mapStatus(g, sport)
	game := &model.Game{
		ID:           g.GameID,
		Sport:        sport,
		Source:       model.SourceNCAA,
		HomeTeamID:   resolveTeamID(g.Home.Names),
		AwayTeamID:   resolveTeamID(g.Away.Names),
		HomeTeamName: homeName,
		AwayTeamName: awayName,
		HomeScore:    adapter.ParseScore(g.Home.Score),
		AwayScore:    adapter.ParseScore(g.Away.Score),
		GameStatus:   status,
		GameTime:     g.StartTime,
		Period:       g.CurrentPeriod,
		Date:         parseStart(g, loc),
		IsEnabled:    true,
	}
	if status == model.StatusLive || status == model.StatusHalftime {
		game.TimeRemaining = strings.TrimSpace(g.ContestClock)
	}
	return game, true
}

// mapStatus pre -> scheduled, live -> live or halftime, final -> final
func mapStatus(g model.NCAAGame, sport model.Sport) model.GameStatus {
	switch strings.ToLower(strings.TrimSpace(g.GameState)) {
	case "", "pre":
		return model.StatusScheduled
	case "live", "in":
		if isHalftime(g, sport) {
			return model.StatusHalftime
		}
		return model.StatusLive
	case "final", "post", "f":
		return model.StatusFinal
	default:
		return model.StatusScheduled
	}
}

// isHalftime "HALF" period label, or the midpoint period with an all-zero clock
func isHalftime(g model.NCAAGame, sport model.Sport) bool {
	switch strings.ToLower(strings.TrimSpace(g.CurrentPeriod)) {
	case "half", "halftime", "ht":
		return true
	}
	mid := sport.MidpointPeriod()
	if mid == 0 {
		return false
	}
	return periodNumber(g.CurrentPeriod) == mid && clockExpired(g.ContestClock)
}

// periodNumber leading digits of "2nd", "3rd"; 0 when there are none
func periodNumber(label string) int {
	label = strings.TrimSpace(label)
	end := 0
	for end < len(label) && label[end] >= '0' && label[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0
	}
	return n
}

// clockExpired non-empty clock made only of zeros and separators ("0:00", "00:00.0")
func clockExpired(clock string) bool {
	clock = strings.TrimSpace(clock)
	if clock == "" {
		return false
	}
	return strings.Trim(clock, "0:.") == ""
}

func teamName(n model.NCAATeamNames) string {
	return adapter.FirstNonEmpty(n.Short, n.Full, n.Char6, n.SEO)
}

func resolveTeamID(n model.NCAATeamNames) string {
	return adapter.ResolveTeamID(teamIDs, teamName(n), n.Short, n.Full, n.SEO, n.Char6)
}

// parseStart epoch seconds when present, else the start date at local midnight; zero time when neither parses
func parseStart(g model.NCAAGame, loc *time.Location) time.Time {
	if sec, err := strconv.ParseInt(strings.TrimSpace(g.StartTimeEpoch), 10, 64); err == nil && sec > 0 {
		return time.Unix(sec, 0).In(loc)
	}
	if d, err := time.ParseInLocation("01-02-2006", strings.TrimSpace(g.StartDate), loc); err == nil {
		return d
	}
	return time.Time{}
}
