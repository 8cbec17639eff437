package metrics

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"ScoreSync/internal/model"

	"github.com/sirupsen/logrus"
)

// FailureMirror external store that also receives every increment (Redis hash)
type FailureMirror interface {
	IncrFailure(ctx context.Context, key string) error
}

// FailureCounter upstream fetch failures per source:sport
type FailureCounter struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	mirror   FailureMirror
	logger   *logrus.Logger
}

// NewFailureCounter mirror may be nil
func NewFailureCounter(mirror FailureMirror, logger *logrus.Logger) *FailureCounter {
	return &FailureCounter{
		counters: make(map[string]*atomic.Int64),
		mirror:   mirror,
		logger:   logger,
	}
}

// FailureKey "espn:basketball"
func FailureKey(source model.Source, sport model.Sport) string {
	return fmt.Sprintf("%s:%s", source, sport)
}

// RecordFailure implements interfaces.FailureRecorder
func (c *FailureCounter) RecordFailure(ctx context.Context, source model.Source, sport model.Sport) {
	key := FailureKey(source, sport)
	c.counter(key).Add(1)

	if c.mirror == nil {
		return
	}
	if err := c.mirror.IncrFailure(ctx, key); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("failed to mirror failure counter")
	}
}

func (c *FailureCounter) counter(key string) *atomic.Int64 {
	c.mu.RLock()
	n, ok := c.counters[key]
	c.mu.RUnlock()
	if ok {
		return n
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok = c.counters[key]; !ok {
		n = new(atomic.Int64)
		c.counters[key] = n
	}
	return n
}

// Count current value of one key
func (c *FailureCounter) Count(source model.Source, sport model.Sport) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if n, ok := c.counters[FailureKey(source, sport)]; ok {
		return n.Load()
	}
	return 0
}

// FailureStat one counter in a snapshot
type FailureStat struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// Snapshot all counters sorted by key
func (c *FailureCounter) Snapshot() []FailureStat {
	c.mu.RLock()
	stats := make([]FailureStat, 0, len(c.counters))
	for key, n := range c.counters {
		stats = append(stats, FailureStat{Key: key, Count: n.Load()})
	}
	c.mu.RUnlock()

	sort.Slice(stats, func(i, j int) bool { return stats[i].Key < stats[j].Key })
	return stats
}

// Total sum over every key
func (c *FailureCounter) Total() int64 {
	var total int64
	for _, s := range c.Snapshot() {
		total += s.Count
	}
	return total
}
