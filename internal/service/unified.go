package service

import (
	"context"
	"fmt"
	"strings"

	"ScoreSync/internal/adapter"
	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// UnifiedService one view over every provider adapter
type UnifiedService struct {
	registry *adapter.PlatformRegistry
	logger   *logrus.Logger
}

func NewUnifiedService(registry *adapter.PlatformRegistry, logger *logrus.Logger) *UnifiedService {
	return &UnifiedService{registry: registry, logger: logger}
}

// fetchFunc FetchLiveGames or FetchUpcomingGames
type fetchFunc func(a interfaces.GameAdapter, ctx context.Context, sport model.Sport) []*model.Game

// GetLiveGames started games of every sport of every provider.
// A failing provider or sport contributes nothing; the others are unaffected.
func (s *UnifiedService) GetLiveGames(ctx context.Context) []*model.Game {
	return s.fanOut(ctx, "live", interfaces.GameAdapter.FetchLiveGames)
}

// GetUpcomingGames not-yet-started games of every sport of every provider
func (s *UnifiedService) GetUpcomingGames(ctx context.Context) []*model.Game {
	return s.fanOut(ctx, "upcoming", interfaces.GameAdapter.FetchUpcomingGames)
}

type fetchTask struct {
	adapter interfaces.GameAdapter
	sport   model.Sport
}

// fanOut one goroutine per (provider, sport); results concatenated in provider then sport order
func (s *UnifiedService) fanOut(ctx context.Context, kind string, fetch fetchFunc) []*model.Game {
	var tasks []fetchTask
	for _, a := range s.registry.Adapters() {
		for _, sport := range a.Sports() {
			tasks = append(tasks, fetchTask{adapter: a, sport: sport})
		}
	}

	results := make([][]*model.Game, len(tasks))
	var g errgroup.Group
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					s.logger.WithFields(logrus.Fields{
						"platform": task.adapter.GetType(),
						"sport":    task.sport,
						"panic":    r,
					}).Error("adapter panicked, dropping its games")
				}
			}()
			results[i] = fetch(task.adapter, ctx, task.sport)
			return nil
		})
	}
	_ = g.Wait()

	games := lo.Flatten(results)
	s.logger.WithFields(logrus.Fields{
		"kind":  kind,
		"tasks": len(tasks),
		"games": len(games),
	}).Info("unified fetch finished")
	return games
}

// GetGamesForSport all tracked games of one sport from its provider; errors propagate
func (s *UnifiedService) GetGamesForSport(ctx context.Context, sport model.Sport) ([]*model.Game, error) {
	source, err := adapter.Classify(sport)
	if err != nil {
		return nil, err
	}
	a, err := s.registry.GetAdapter(source)
	if err != nil {
		return nil, err
	}
	games, err := a.FetchGames(ctx, sport)
	if err != nil {
		return nil, fmt.Errorf("games for %s: %w", sport, err)
	}
	return games, nil
}

// ConnectivityReport reachability of each provider
type ConnectivityReport struct {
	ESPN    bool     `json:"espn"`
	NCAA    bool     `json:"ncaa"`
	Details []string `json:"details"`
}

// TestConnectivity probes both providers concurrently
func (s *UnifiedService) TestConnectivity(ctx context.Context) ConnectivityReport {
	sources := []model.Source{model.SourceESPN, model.SourceNCAA}
	reachable := make([]bool, len(sources))
	details := make([]string, len(sources))

	var g errgroup.Group
	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			a, err := s.registry.GetAdapter(source)
			if err == nil {
				err = a.Probe(ctx)
			}
			if err != nil {
				details[i] = fmt.Sprintf("%s: unreachable (%v)", source, err)
				s.logger.WithError(err).WithField("platform", source).Warn("connectivity probe failed")
				return nil
			}
			reachable[i] = true
			details[i] = fmt.Sprintf("%s: ok", source)
			return nil
		})
	}
	_ = g.Wait()

	report := ConnectivityReport{ESPN: reachable[0], NCAA: reachable[1], Details: details}
	s.logger.WithField("details", strings.Join(details, "; ")).Info("connectivity checked")
	return report
}
