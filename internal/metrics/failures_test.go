package metrics

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"ScoreSync/internal/model"

	"github.com/sirupsen/logrus"
)

type fakeMirror struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (m *fakeMirror) IncrFailure(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys = append(m.keys, key)
	return m.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestFailureCounterConcurrent(t *testing.T) {
	c := NewFailureCounter(nil, quietLogger())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			c.RecordFailure(ctx, model.SourceESPN, model.SportBasketball)
		}()
		go func() {
			defer wg.Done()
			c.RecordFailure(ctx, model.SourceNCAA, model.SportSoftball)
		}()
	}
	wg.Wait()

	if got := c.Count(model.SourceESPN, model.SportBasketball); got != 50 {
		t.Fatalf("espn:basketball = %d, want 50", got)
	}
	if got := c.Total(); got != 100 {
		t.Fatalf("total = %d, want 100", got)
	}

	snap := c.Snapshot()
	if len(snap) != 2 || snap[0].Key != "espn:basketball" || snap[1].Key != "ncaa:softball" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestFailureCounterMirror(t *testing.T) {
	m := &fakeMirror{err: errors.New("redis down")}
	c := NewFailureCounter(m, quietLogger())

	c.RecordFailure(context.Background(), model.SourceNCAA, model.SportSoccerMen)

	if len(m.keys) != 1 || m.keys[0] != "ncaa:soccer-men" {
		t.Fatalf("mirrored keys = %v", m.keys)
	}
	// a mirror error never loses the in-memory count
	if got := c.Count(model.SourceNCAA, model.SportSoccerMen); got != 1 {
		t.Fatalf("count = %d, want 1", got)
	}
	if got := c.Count(model.SourceESPN, model.SportBaseball); got != 0 {
		t.Fatalf("untouched key = %d, want 0", got)
	}
}
