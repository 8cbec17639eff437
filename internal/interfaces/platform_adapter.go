package interfaces

import (
	"context"

	"ScoreSync/internal/model"
)

// GameAdapter core interface every upstream provider implements
type GameAdapter interface {
	GetType() model.Source                                                   // provider
	Sports() []model.Sport                                                   // sports this provider serves
	FetchGames(ctx context.Context, sport model.Sport) ([]*model.Game, error) // tracked games on today's scoreboard, errors returned
	FetchLiveGames(ctx context.Context, sport model.Sport) []*model.Game      // started games; failures logged, empty result
	FetchUpcomingGames(ctx context.Context, sport model.Sport) []*model.Game  // not-yet-started games; failures logged, empty result
	Probe(ctx context.Context) error                                         // lightweight connectivity check
}

// BannerRepository storage collaborator for banner records.
// Calls are atomic per document, nothing is transactional across documents.
type BannerRepository interface {
	ListAll(ctx context.Context) ([]*model.Banner, error)                          // every banner, stable order
	Get(ctx context.Context, id string) (*model.Banner, error)                     // one banner
	Create(ctx context.Context, banner *model.Banner) (string, error)              // returns the new id
	Update(ctx context.Context, id string, fields map[string]interface{}) error    // partial update
	Delete(ctx context.Context, id string) error                                   // remove
	SetEnabled(ctx context.Context, id string, enabled bool) error                 // operator toggle
	SetStatus(ctx context.Context, id string, status model.GameStatus) error       // operator status override
}

// FailureRecorder structured failure signal per provider and sport
type FailureRecorder interface {
	RecordFailure(ctx context.Context, source model.Source, sport model.Sport)
}
