package repository

import (
	"context"

	"essencia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BannerRepository interface {
	Create(ctx context.Context, b *model.Banner) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Banner, error)
	List(ctx context.Context) ([]model.Banner, error)
	ListEnabled(ctx context.Context) ([]model.Banner, error)
	Update(ctx context.Context, b *model.Banner) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bannerRepo struct{ db *gorm.DB }

func NewBannerRepository(db *gorm.DB) BannerRepository { return &bannerRepo{db: db} }

func (r *bannerRepo) Create(ctx context.Context, b *model.Banner) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *bannerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Banner, error) {
	var b model.Banner
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	return &b, err
}

func (r *bannerRepo) List(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.WithContext(ctx).Order("sort_order ASC").Find(&banners).Error
	return banners, err
}

func (r *bannerRepo) ListEnabled(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	err := r.db.WithContext(ctx).Where("enabled = true").Order("sort_order ASC").Find(&banners).Error
	return banners, err
}

func (r *bannerRepo) Update(ctx context.Context, b *model.Banner) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *bannerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Banner{}, "id = ?", id).Error
}

type MarqueeRepository interface {
	Create(ctx context.Context, m *model.MarqueeSetting) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.MarqueeSetting, error)
	List(ctx context.Context) ([]model.MarqueeSetting, error)
	FindActive(ctx context.Context) (*model.MarqueeSetting, error)
	Update(ctx context.Context, m *model.MarqueeSetting) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type marqueeRepo struct{ db *gorm.DB }

func NewMarqueeRepository(db *gorm.DB) MarqueeRepository { return &marqueeRepo{db: db} }

func (r *marqueeRepo) Create(ctx context.Context, m *model.MarqueeSetting) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *marqueeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.MarqueeSetting, error) {
	var m model.MarqueeSetting
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	return &m, err
}

func (r *marqueeRepo) List(ctx context.Context) ([]model.MarqueeSetting, error) {
	var settings []model.MarqueeSetting
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&settings).Error
	return settings, err
}

func (r *marqueeRepo) FindActive(ctx context.Context) (*model.MarqueeSetting, error) {
	var m model.MarqueeSetting
	err := r.db.WithContext(ctx).Where("enabled = true").Order("updated_at DESC").First(&m).Error
	return &m, err
}

func (r *marqueeRepo) Update(ctx context.Context, m *model.MarqueeSetting) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *marqueeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.MarqueeSetting{}, "id = ?", id).Error
}
