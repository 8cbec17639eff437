package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"

	"github.com/redis/go-redis/v9"
)

// StreamMaxLen approximate cap of the banner stream
const StreamMaxLen = 1000

// StreamPublisher banner changes to a Redis stream. A nil client turns publishing into a no-op.
type StreamPublisher struct {
	client *redis.Client
	stream string
}

func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	return &StreamPublisher{client: client, stream: stream}
}

// PublishBannerEvent XADD one entry per create / update / delete
func (p *StreamPublisher) PublishBannerEvent(ctx context.Context, event interfaces.BannerEvent, banner *model.Banner) error {
	if p.client == nil {
		return nil
	}

	values, err := streamValues(event, banner)
	if err != nil {
		return err
	}
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: StreamMaxLen,
		Approx: true,
		Values: values,
	}).Err()
}

func streamValues(event interfaces.BannerEvent, banner *model.Banner) (map[string]interface{}, error) {
	data, err := json.Marshal(banner)
	if err != nil {
		return nil, fmt.Errorf("marshaling banner update: %w", err)
	}
	return map[string]interface{}{
		"event":     string(event),
		"banner_id": banner.ID,
		"game_id":   banner.GameID,
		"status":    string(banner.GameStatus),
		"data":      string(data),
	}, nil
}
