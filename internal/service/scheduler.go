package service

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const (
	MinIntervalMinutes = 1
	MaxIntervalMinutes = 60
)

// Syncer the cycles the scheduler drives; implemented by SyncService
type Syncer interface {
	PerformSync(ctx context.Context) (SyncResult, error)
	SyncUpcomingGames(ctx context.Context) ReconcileResult
	CleanupOldBanners(ctx context.Context) (ReconcileResult, error)
	LastSync() time.Time
}

// SyncStatus scheduler snapshot
type SyncStatus struct {
	IsRunning         bool       `json:"is_running"`
	IntervalMinutes   int        `json:"interval_minutes"`
	LastSyncTimestamp *time.Time `json:"last_sync_timestamp"`
	NextRun           *time.Time `json:"next_run,omitempty"`
}

// SchedulerOptions optional cron schedules; empty specs disable the job
type SchedulerOptions struct {
	UpcomingSpec string
	CleanupSpec  string
	Location     *time.Location
}

// Scheduler owns the auto sync timer: stopped -> running -> stopped
type Scheduler struct {
	syncer Syncer
	opts   SchedulerOptions
	logger *logrus.Logger

	mu        sync.Mutex
	running   bool
	interval  int
	cron      *cron.Cron
	liveEntry cron.EntryID

	// bumped by every accepted start; only the latest start arms the timer
	generation uint64

	// length of one interval minute, shortened by tests
	minuteUnit time.Duration
}

func NewScheduler(syncer Syncer, opts SchedulerOptions, logger *logrus.Logger) *Scheduler {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Scheduler{
		syncer:     syncer,
		opts:       opts,
		logger:     logger,
		minuteUnit: time.Minute,
	}
}

// everySchedule fixed delay from the previous activation, without cron.Every's second rounding
type everySchedule struct {
	delay time.Duration
}

func (e everySchedule) Next(t time.Time) time.Time {
	return t.Add(e.delay)
}

// ClampInterval keeps the interval within 1..60 minutes
func ClampInterval(minutes int) int {
	if minutes < MinIntervalMinutes {
		return MinIntervalMinutes
	}
	if minutes > MaxIntervalMinutes {
		return MaxIntervalMinutes
	}
	return minutes
}

// StartAutoSync runs one sync immediately, then every intervalMinutes.
// Returns false without side effects when already running.
func (s *Scheduler) StartAutoSync(ctx context.Context, intervalMinutes int) bool {
	interval := ClampInterval(intervalMinutes)

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		s.logger.WithField("interval_minutes", s.interval).Info("auto sync already running, start ignored")
		return false
	}
	s.running = true
	s.interval = interval
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	if interval != intervalMinutes {
		s.logger.WithFields(logrus.Fields{"requested": intervalMinutes, "applied": interval}).Warn("sync interval clamped")
	}

	// 1. first cycle, synchronous
	if _, err := s.syncer.PerformSync(ctx); err != nil {
		s.logger.WithError(err).Error("initial sync failed")
	}

	// 2. arm the timer unless stopped or superseded by a newer start meanwhile
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running || s.generation != gen || s.cron != nil {
		s.logger.WithField("interval_minutes", interval).Debug("start superseded before arming, timer left to the latest start")
		return true
	}
	s.cron = s.buildCron(interval)
	s.cron.Start()

	s.logger.WithFields(logrus.Fields{
		"interval_minutes": interval,
		"upcoming_cron":    s.opts.UpcomingSpec,
		"cleanup_cron":     s.opts.CleanupSpec,
	}).Info("auto sync started")
	return true
}

func (s *Scheduler) buildCron(interval int) *cron.Cron {
	cronLogger := cron.VerbosePrintfLogger(s.logger)
	c := cron.New(
		cron.WithLocation(s.opts.Location),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	s.liveEntry = c.Schedule(everySchedule{delay: time.Duration(interval) * s.minuteUnit}, cron.FuncJob(func() {
		if _, err := s.syncer.PerformSync(context.Background()); err != nil {
			s.logger.WithError(err).Error("scheduled sync failed")
		}
	}))

	if s.opts.UpcomingSpec != "" {
		if _, err := c.AddFunc(s.opts.UpcomingSpec, func() {
			s.syncer.SyncUpcomingGames(context.Background())
		}); err != nil {
			s.logger.WithError(err).WithField("spec", s.opts.UpcomingSpec).Error("invalid upcoming cron spec, job disabled")
		}
	}
	if s.opts.CleanupSpec != "" {
		if _, err := c.AddFunc(s.opts.CleanupSpec, func() {
			if _, err := s.syncer.CleanupOldBanners(context.Background()); err != nil {
				s.logger.WithError(err).Error("scheduled cleanup failed")
			}
		}); err != nil {
			s.logger.WithError(err).WithField("spec", s.opts.CleanupSpec).Error("invalid cleanup cron spec, job disabled")
		}
	}
	return c
}

// StopAutoSync disarms the timer; a cycle already in flight runs to completion.
// Returns false when not running.
func (s *Scheduler) StopAutoSync() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return false
	}
	s.running = false
	if s.cron != nil {
		s.cron.Stop()
		s.cron = nil
	}
	s.logger.Info("auto sync stopped")
	return true
}

// GetSyncStatus cheap read, no side effects
func (s *Scheduler) GetSyncStatus() SyncStatus {
	s.mu.Lock()
	status := SyncStatus{IsRunning: s.running, IntervalMinutes: s.interval}
	if s.cron != nil {
		if next := s.cron.Entry(s.liveEntry).Next; !next.IsZero() {
			status.NextRun = &next
		}
	}
	s.mu.Unlock()

	if last := s.syncer.LastSync(); !last.IsZero() {
		status.LastSyncTimestamp = &last
	}
	return status
}

func (s *Scheduler) entryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron == nil {
		return 0
	}
	return len(s.cron.Entries())
}
