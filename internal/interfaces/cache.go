package interfaces

import (
	"context"

	"ScoreSync/internal/model"
)

// BannerEvent action recorded on the banner update stream
type BannerEvent string

const (
	BannerCreated BannerEvent = "created"
	BannerUpdated BannerEvent = "updated"
	BannerDeleted BannerEvent = "deleted"
)

// LiveCache snapshot of the current cycle's live games for fast reads
type LiveCache interface {
	WriteLiveGames(ctx context.Context, games []*model.Game) error
	ReadLiveGames(ctx context.Context) ([]*model.Game, error)
}

// BannerPublisher fan-out of banner changes to downstream consumers
type BannerPublisher interface {
	PublishBannerEvent(ctx context.Context, event BannerEvent, banner *model.Banner) error
}
