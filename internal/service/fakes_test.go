package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"ScoreSync/internal/adapter"
	"ScoreSync/internal/config"
	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// fakeAdapter serves canned games per sport; failing sports behave like a failed upstream call
type fakeAdapter struct {
	source   model.Source
	sports   []model.Sport
	games    map[model.Sport][]*model.Game
	failing  map[model.Sport]bool
	panics   map[model.Sport]bool
	probeErr error
}

func (f *fakeAdapter) GetType() model.Source { return f.source }
func (f *fakeAdapter) Sports() []model.Sport { return f.sports }

func (f *fakeAdapter) FetchGames(_ context.Context, sport model.Sport) ([]*model.Game, error) {
	if f.failing[sport] {
		return nil, errors.New("upstream unavailable")
	}
	return f.games[sport], nil
}

func (f *fakeAdapter) FetchLiveGames(ctx context.Context, sport model.Sport) []*model.Game {
	if f.panics[sport] {
		panic("malformed payload")
	}
	games, err := f.FetchGames(ctx, sport)
	if err != nil {
		return []*model.Game{}
	}
	var out []*model.Game
	for _, g := range games {
		if g.Started() {
			out = append(out, g)
		}
	}
	return out
}

func (f *fakeAdapter) FetchUpcomingGames(ctx context.Context, sport model.Sport) []*model.Game {
	games, err := f.FetchGames(ctx, sport)
	if err != nil {
		return []*model.Game{}
	}
	var out []*model.Game
	for _, g := range games {
		if g.GameStatus == model.StatusScheduled {
			out = append(out, g)
		}
	}
	return out
}

func (f *fakeAdapter) Probe(context.Context) error { return f.probeErr }

func newRegistry(adapters ...interfaces.GameAdapter) *adapter.PlatformRegistry {
	r := adapter.NewPlatformRegistry(&config.Config{}, nil, quietLogger())
	for _, a := range adapters {
		r.Register(a)
	}
	return r
}

func liveGame(source model.Source, sport model.Sport, id string) *model.Game {
	return &model.Game{ID: id, Source: source, Sport: sport, GameStatus: model.StatusLive, IsEnabled: true}
}

func upcomingGame(source model.Source, sport model.Sport, id string) *model.Game {
	return &model.Game{ID: id, Source: source, Sport: sport, GameStatus: model.StatusScheduled, IsEnabled: true}
}

// flakyRepo wraps a banner repository and fails selected calls
type flakyRepo struct {
	interfaces.BannerRepository
	mu          sync.Mutex
	failCreates map[int]bool // 1-based call numbers
	failUpdates map[int]bool
	failDeletes map[string]bool
	failList    bool
	creates     int
	updates     int
}

func (f *flakyRepo) ListAll(ctx context.Context) ([]*model.Banner, error) {
	if f.failList {
		return nil, errors.New("storage offline")
	}
	return f.BannerRepository.ListAll(ctx)
}

func (f *flakyRepo) Create(ctx context.Context, b *model.Banner) (string, error) {
	f.mu.Lock()
	f.creates++
	fail := f.failCreates[f.creates]
	f.mu.Unlock()
	if fail {
		return "", errors.New("write conflict")
	}
	return f.BannerRepository.Create(ctx, b)
}

func (f *flakyRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	f.mu.Lock()
	f.updates++
	fail := f.failUpdates[f.updates]
	f.mu.Unlock()
	if fail {
		return errors.New("write conflict")
	}
	return f.BannerRepository.Update(ctx, id, fields)
}

func (f *flakyRepo) Delete(ctx context.Context, id string) error {
	if f.failDeletes[id] {
		return errors.New("delete refused")
	}
	return f.BannerRepository.Delete(ctx, id)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []interfaces.BannerEvent
}

func (p *recordingPublisher) PublishBannerEvent(_ context.Context, event interfaces.BannerEvent, _ *model.Banner) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}
