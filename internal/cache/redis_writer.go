package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ScoreSync/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
)

// TTL constants
const (
	LiveListTTL  = 30 * time.Minute
	LiveGameTTL  = 2 * time.Hour
	FinalGameTTL = 6 * time.Hour
)

const (
	LiveGamesKey   = "games:live"
	FailuresKey    = "sync:failures"
	gameSummaryFmt = "game:%s:summary"
)

// RedisWriter live game snapshot and failure counters. A nil client turns every call into a no-op.
type RedisWriter struct {
	client *redis.Client
}

func NewRedisWriter(client *redis.Client) *RedisWriter {
	return &RedisWriter{client: client}
}

// SummaryKey "game:espn:401:summary"
func SummaryKey(game *model.Game) string {
	return fmt.Sprintf(gameSummaryFmt, game.Key())
}

// WriteLiveGames replaces the live list and refreshes every game summary in one pipeline
func (w *RedisWriter) WriteLiveGames(ctx context.Context, games []*model.Game) error {
	if w.client == nil {
		return nil
	}

	pipe := w.client.TxPipeline()
	for _, g := range games {
		data, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("marshaling game %s: %w", g.Key(), err)
		}
		pipe.Set(ctx, SummaryKey(g), data, ttlForGame(g))
	}

	keys := lo.Map(games, func(g *model.Game, _ int) string { return g.Key() })
	pipe.Del(ctx, LiveGamesKey)
	if len(keys) > 0 {
		pipe.RPush(ctx, LiveGamesKey, lo.ToAnySlice(keys)...)
		pipe.Expire(ctx, LiveGamesKey, LiveListTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("writing live games: %w", err)
	}
	return nil
}

// ReadLiveGames games of the last snapshot; summaries that already expired are skipped
func (w *RedisWriter) ReadLiveGames(ctx context.Context) ([]*model.Game, error) {
	if w.client == nil {
		return []*model.Game{}, nil
	}

	keys, err := w.client.LRange(ctx, LiveGamesKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reading live list: %w", err)
	}

	games := make([]*model.Game, 0, len(keys))
	for _, key := range keys {
		data, err := w.client.Get(ctx, fmt.Sprintf(gameSummaryFmt, key)).Bytes()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading game %s: %w", key, err)
		}
		var g model.Game
		if err := json.Unmarshal(data, &g); err != nil {
			return nil, fmt.Errorf("unmarshaling game %s: %w", key, err)
		}
		games = append(games, &g)
	}
	return games, nil
}

// IncrFailure HINCRBY sync:failures <key> 1
func (w *RedisWriter) IncrFailure(ctx context.Context, key string) error {
	if w.client == nil {
		return nil
	}
	return w.client.HIncrBy(ctx, FailuresKey, key, 1).Err()
}

func ttlForGame(g *model.Game) time.Duration {
	if g.GameStatus == model.StatusFinal {
		return FinalGameTTL
	}
	return LiveGameTTL
}
