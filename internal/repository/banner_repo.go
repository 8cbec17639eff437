package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ScoreSync/internal/interfaces"
	"ScoreSync/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrBannerNotFound no banner with the given id
var ErrBannerNotFound = errors.New("banner not found")

type bannerRepository struct {
	db *gorm.DB
}

// NewBannerRepository Postgres banner store
func NewBannerRepository(db *gorm.DB) interfaces.BannerRepository {
	return &bannerRepository{db: db}
}

// ListAll oldest first; ties broken by id so the first enabled record is stable across cycles
func (r *bannerRepository) ListAll(ctx context.Context) ([]*model.Banner, error) {
	var banners []*model.Banner
	if err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("list banners: %w", err)
	}
	return banners, nil
}

func (r *bannerRepository) Get(ctx context.Context, id string) (*model.Banner, error) {
	var banner model.Banner
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&banner).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBannerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get banner %s: %w", id, err)
	}
	return &banner, nil
}

// Create assigns a uuid when the banner has no id yet
func (r *bannerRepository) Create(ctx context.Context, banner *model.Banner) (string, error) {
	if banner.ID == "" {
		banner.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(banner).Error; err != nil {
		return "", fmt.Errorf("create banner for game %s: %w", banner.GameID, err)
	}
	return banner.ID, nil
}

func (r *bannerRepository) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.updateColumns(ctx, id, fields)
}

func (r *bannerRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Banner{})
	if res.Error != nil {
		return fmt.Errorf("delete banner %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBannerNotFound
	}
	return nil
}

func (r *bannerRepository) SetEnabled(ctx context.Context, id string, enabled bool) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		model.ColIsEnabled:   enabled,
		model.ColLastUpdated: time.Now(),
	})
}

func (r *bannerRepository) SetStatus(ctx context.Context, id string, status model.GameStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid game status %q", status)
	}
	return r.updateColumns(ctx, id, map[string]interface{}{
		model.ColGameStatus:  string(status),
		model.ColLastUpdated: time.Now(),
	})
}

func (r *bannerRepository) updateColumns(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&model.Banner{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update banner %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBannerNotFound
	}
	return nil
}
