package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"

	"github.com/sirupsen/logrus"
)

// SyncResult outcome of one live sync cycle
type SyncResult struct {
	Games      int             `json:"games"`
	Reconcile  ReconcileResult `json:"reconcile"`
	Duration   time.Duration   `json:"duration_ns"`
	FinishedAt time.Time       `json:"finished_at"`
}

// SyncService one cycle = fetch -> unify -> cache -> reconcile.
// Cycles are serialized: a manual trigger overlapping a timer tick waits for it.
type SyncService struct {
	unified      *UnifiedService
	reconciler   *Reconciler
	cache        interfaces.LiveCache
	cycleTimeout time.Duration
	logger       *logrus.Logger

	cycleMu sync.Mutex

	statusMu sync.RWMutex
	lastSync time.Time
}

// NewSyncService cache may be nil
func NewSyncService(unified *UnifiedService, reconciler *Reconciler, cache interfaces.LiveCache, cycleTimeout time.Duration, logger *logrus.Logger) *SyncService {
	return &SyncService{
		unified:      unified,
		reconciler:   reconciler,
		cache:        cache,
		cycleTimeout: cycleTimeout,
		logger:       logger,
	}
}

// PerformSync one full live sync cycle
func (s *SyncService) PerformSync(ctx context.Context) (SyncResult, error) {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	ctx, cancel := s.withCycleTimeout(ctx)
	defer cancel()
	start := time.Now()

	// 1. fetch and unify
	games := s.unified.GetLiveGames(ctx)

	// 2. live snapshot, a cache failure never blocks reconciliation
	if s.cache != nil {
		if err := s.cache.WriteLiveGames(ctx, games); err != nil {
			s.logger.WithError(err).Warn("failed to write live games snapshot")
		}
	}

	// 3. reconcile
	res, err := s.reconciler.ReconcileLive(ctx, games)
	result := SyncResult{Games: len(games), Reconcile: res, Duration: time.Since(start), FinishedAt: time.Now()}
	if err != nil {
		s.logger.WithError(err).Error("sync cycle could not reconcile")
		return result, fmt.Errorf("sync cycle: %w", err)
	}

	s.statusMu.Lock()
	s.lastSync = result.FinishedAt
	s.statusMu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"games":    result.Games,
		"result":   res.String(),
		"duration": result.Duration.String(),
	}).Info("sync cycle completed")
	return result, nil
}

// SyncUpcomingGames creates a banner for every upcoming game
func (s *SyncService) SyncUpcomingGames(ctx context.Context) ReconcileResult {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	ctx, cancel := s.withCycleTimeout(ctx)
	defer cancel()

	games := s.unified.GetUpcomingGames(ctx)
	return s.reconciler.SyncUpcoming(ctx, games)
}

// CleanupOldBanners removes expired final banners
func (s *SyncService) CleanupOldBanners(ctx context.Context) (ReconcileResult, error) {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	ctx, cancel := s.withCycleTimeout(ctx)
	defer cancel()
	return s.reconciler.Cleanup(ctx)
}

// LiveGames last cached snapshot
func (s *SyncService) LiveGames(ctx context.Context) ([]*model.Game, error) {
	if s.cache == nil {
		return []*model.Game{}, nil
	}
	return s.cache.ReadLiveGames(ctx)
}

// LastSync time of the last completed live cycle, zero before the first one
func (s *SyncService) LastSync() time.Time {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.lastSync
}

func (s *SyncService) withCycleTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cycleTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cycleTimeout)
}
