package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"

	"github.com/google/uuid"
)

// memoryBannerRepository process-local banner store (database.driver: memory)
type memoryBannerRepository struct {
	mu      sync.RWMutex
	order   []string
	banners map[string]*model.Banner
	now     func() time.Time
}

func NewMemoryBannerRepository() interfaces.BannerRepository {
	return &memoryBannerRepository{
		banners: make(map[string]*model.Banner),
		now:     time.Now,
	}
}

// ListAll insertion order, copies
func (r *memoryBannerRepository) ListAll(_ context.Context) ([]*model.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Banner, 0, len(r.order))
	for _, id := range r.order {
		b := *r.banners[id]
		out = append(out, &b)
	}
	return out, nil
}

func (r *memoryBannerRepository) Get(_ context.Context, id string) (*model.Banner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.banners[id]
	if !ok {
		return nil, ErrBannerNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memoryBannerRepository) Create(_ context.Context, banner *model.Banner) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if banner.ID == "" {
		banner.ID = uuid.NewString()
	}
	if _, exists := r.banners[banner.ID]; exists {
		return "", fmt.Errorf("banner %s already exists", banner.ID)
	}
	now := r.now()
	banner.CreatedAt, banner.UpdatedAt = now, now
	cp := *banner
	r.banners[banner.ID] = &cp
	r.order = append(r.order, banner.ID)
	return banner.ID, nil
}

func (r *memoryBannerRepository) Update(_ context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.banners[id]
	if !ok {
		return ErrBannerNotFound
	}
	// validate everything before touching the record, updates are all or nothing
	updated := *b
	for col, v := range fields {
		if err := applyColumn(&updated, col, v); err != nil {
			return fmt.Errorf("update banner %s: %w", id, err)
		}
	}
	updated.UpdatedAt = r.now()
	*b = updated
	return nil
}

func (r *memoryBannerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.banners[id]; !ok {
		return ErrBannerNotFound
	}
	delete(r.banners, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memoryBannerRepository) SetEnabled(ctx context.Context, id string, enabled bool) error {
	return r.Update(ctx, id, map[string]interface{}{
		model.ColIsEnabled:   enabled,
		model.ColLastUpdated: r.now(),
	})
}

func (r *memoryBannerRepository) SetStatus(ctx context.Context, id string, status model.GameStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid game status %q", status)
	}
	return r.Update(ctx, id, map[string]interface{}{
		model.ColGameStatus:  string(status),
		model.ColLastUpdated: r.now(),
	})
}

// applyColumn mirrors the column names gorm writes
func applyColumn(b *model.Banner, col string, v interface{}) error {
	var err error
	switch col {
	case model.ColGameID:
		b.GameID, err = asString(col, v)
	case model.ColSport:
		var s string
		s, err = asString(col, v)
		b.Sport = model.Sport(s)
	case model.ColSource:
		var s string
		s, err = asString(col, v)
		b.Source = model.Source(s)
	case model.ColHomeTeamID:
		b.HomeTeamID, err = asString(col, v)
	case model.ColAwayTeamID:
		b.AwayTeamID, err = asString(col, v)
	case model.ColHomeTeamName:
		b.HomeTeamName, err = asString(col, v)
	case model.ColAwayTeamName:
		b.AwayTeamName, err = asString(col, v)
	case model.ColHomeScore:
		b.HomeScore, err = asInt(col, v)
	case model.ColAwayScore:
		b.AwayScore, err = asInt(col, v)
	case model.ColGameStatus:
		var s string
		s, err = asString(col, v)
		b.GameStatus = model.GameStatus(s)
	case model.ColGameTime:
		b.GameTime, err = asString(col, v)
	case model.ColVenue:
		b.Venue, err = asString(col, v)
	case model.ColPeriod:
		b.Period, err = asString(col, v)
	case model.ColTimeRemaining:
		b.TimeRemaining, err = asString(col, v)
	case model.ColDate:
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("column %s: want time.Time, got %T", col, v)
		}
		b.Date = t
	case model.ColIsEnabled:
		e, ok := v.(bool)
		if !ok {
			return fmt.Errorf("column %s: want bool, got %T", col, v)
		}
		b.IsEnabled = e
	case model.ColLastUpdated:
		t, ok := v.(time.Time)
		if !ok {
			return fmt.Errorf("column %s: want time.Time, got %T", col, v)
		}
		b.LastUpdated = &t
	default:
		return fmt.Errorf("unknown column %s", col)
	}
	return err
}

func asString(col string, v interface{}) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case fmt.Stringer:
		return s.String(), nil
	case model.Sport:
		return string(s), nil
	case model.Source:
		return string(s), nil
	case model.GameStatus:
		return string(s), nil
	}
	return "", fmt.Errorf("column %s: want string, got %T", col, v)
}

func asInt(col string, v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	}
	return 0, fmt.Errorf("column %s: want int, got %T", col, v)
}
