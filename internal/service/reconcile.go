package service

import (
	"context"
	"fmt"
	"time"

	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// ReconcileResult counts of one reconciliation pass
type ReconcileResult struct {
	Processed int `json:"processed"`
	Created   int `json:"created"`
	Updated   int `json:"updated"`
	Deleted   int `json:"deleted"`
	Failed    int `json:"failed"`
}

func (r ReconcileResult) String() string {
	return fmt.Sprintf("processed=%d created=%d updated=%d deleted=%d failed=%d", r.Processed, r.Created, r.Updated, r.Deleted, r.Failed)
}

// Reconciler applies unified games to the banner store
type Reconciler struct {
	repo      interfaces.BannerRepository
	publisher interfaces.BannerPublisher
	retention time.Duration
	logger    *logrus.Logger
	now       func() time.Time
}

// NewReconciler publisher may be nil
func NewReconciler(repo interfaces.BannerRepository, publisher interfaces.BannerPublisher, retention time.Duration, logger *logrus.Logger) *Reconciler {
	return &Reconciler{
		repo:      repo,
		publisher: publisher,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

// ReconcileLive keeps a single active banner: the first enabled record is updated in place by every game
// (last game wins); with no active record the first successful create becomes the active one.
// Storage failures are counted per game and never abort the pass.
func (r *Reconciler) ReconcileLive(ctx context.Context, games []*model.Game) (ReconcileResult, error) {
	var res ReconcileResult

	// 1. current active record
	banners, err := r.repo.ListAll(ctx)
	if err != nil {
		return res, fmt.Errorf("list banners: %w", err)
	}
	active := firstEnabled(banners)
	if countEnabled(banners) > 1 {
		r.logger.WithFields(logrus.Fields{
			"enabled":   countEnabled(banners),
			"active_id": active.ID,
		}).Warn("more than one enabled banner, using the first")
	}

	// 2. update in place or create
	for _, g := range games {
		res.Processed++
		entry := r.logger.WithFields(logrus.Fields{"game": g.Key(), "sport": g.Sport, "status": g.GameStatus})

		if active != nil {
			fields := model.BannerUpdateFields(g, r.now())
			if err := r.repo.Update(ctx, active.ID, fields); err != nil {
				res.Failed++
				entry.WithError(err).WithField("banner_id", active.ID).Error("failed to update active banner")
				continue
			}
			res.Updated++
			r.publish(ctx, interfaces.BannerUpdated, bannerWithGame(active.ID, g))
			continue
		}

		banner := model.BannerFromGame(g)
		id, err := r.repo.Create(ctx, banner)
		if err != nil {
			res.Failed++
			entry.WithError(err).Error("failed to create banner")
			continue
		}
		banner.ID = id
		res.Created++
		r.publish(ctx, interfaces.BannerCreated, banner)
		if banner.IsEnabled {
			active = banner
		}
	}

	r.logger.WithField("result", res.String()).Info("live reconciliation finished")
	return res, nil
}

// SyncUpcoming one new banner per upcoming game, the active record is never consulted
func (r *Reconciler) SyncUpcoming(ctx context.Context, games []*model.Game) ReconcileResult {
	var res ReconcileResult
	for _, g := range games {
		res.Processed++
		banner := model.BannerFromGame(g)
		id, err := r.repo.Create(ctx, banner)
		if err != nil {
			res.Failed++
			r.logger.WithError(err).WithField("game", g.Key()).Error("failed to create upcoming banner")
			continue
		}
		banner.ID = id
		res.Created++
		r.publish(ctx, interfaces.BannerCreated, banner)
	}

	r.logger.WithField("result", res.String()).Info("upcoming sync finished")
	return res
}

// Cleanup deletes final banners older than the retention window; status gates deletion, age alone does not
func (r *Reconciler) Cleanup(ctx context.Context) (ReconcileResult, error) {
	var res ReconcileResult
	banners, err := r.repo.ListAll(ctx)
	if err != nil {
		return res, fmt.Errorf("list banners: %w", err)
	}

	now := r.now()
	for _, b := range banners {
		res.Processed++
		if !b.Expired(now, r.retention) {
			continue
		}
		if err := r.repo.Delete(ctx, b.ID); err != nil {
			res.Failed++
			r.logger.WithError(err).WithField("banner_id", b.ID).Error("failed to delete expired banner")
			continue
		}
		res.Deleted++
		r.publish(ctx, interfaces.BannerDeleted, b)
	}

	r.logger.WithField("result", res.String()).Info("cleanup finished")
	return res, nil
}

func (r *Reconciler) publish(ctx context.Context, event interfaces.BannerEvent, b *model.Banner) {
	if r.publisher == nil {
		return
	}
	if err := r.publisher.PublishBannerEvent(ctx, event, b); err != nil {
		r.logger.WithError(err).WithFields(logrus.Fields{"event": event, "banner_id": b.ID}).Warn("failed to publish banner event")
	}
}

func firstEnabled(banners []*model.Banner) *model.Banner {
	b, _ := lo.Find(banners, func(b *model.Banner) bool { return b.IsEnabled })
	return b
}

func countEnabled(banners []*model.Banner) int {
	return lo.CountBy(banners, func(b *model.Banner) bool { return b.IsEnabled })
}

// bannerWithGame event payload for an in-place update
func bannerWithGame(id string, g *model.Game) *model.Banner {
	b := model.BannerFromGame(g)
	b.ID = id
	return b
}
