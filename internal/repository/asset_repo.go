package repository

import (
	"context"

	"essencia/internal/dto"
	"essencia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetAggregate mirrors the asset stats endpoint shape.
type AssetAggregate struct {
	TotalAssets    int64
	TotalSizeBytes int64
	ImageCount     int64
	VideoCount     int64
}

type AssetRepository interface {
	Create(ctx context.Context, a *model.Asset) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Asset, error)
	List(ctx context.Context, filter dto.AssetFilter) ([]model.Asset, int64, error)
	Update(ctx context.Context, a *model.Asset) error
	Delete(ctx context.Context, id uuid.UUID) error
	Aggregate(ctx context.Context) (*AssetAggregate, error)
}

type assetRepo struct{ db *gorm.DB }

func NewAssetRepository(db *gorm.DB) AssetRepository { return &assetRepo{db: db} }

func (r *assetRepo) Create(ctx context.Context, a *model.Asset) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assetRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Asset, error) {
	var a model.Asset
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *assetRepo) List(ctx context.Context, filter dto.AssetFilter) ([]model.Asset, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Asset{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var assets []model.Asset
	err := q.Order("created_at DESC").Offset(offset).Limit(filter.Limit).Find(&assets).Error
	return assets, total, err
}

func (r *assetRepo) Update(ctx context.Context, a *model.Asset) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *assetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Asset{}, "id = ?", id).Error
}

func (r *assetRepo) Aggregate(ctx context.Context) (*AssetAggregate, error) {
	var agg AssetAggregate
	err := r.db.WithContext(ctx).Model(&model.Asset{}).
		Select(`COUNT(*)                                       AS total_assets,
			COALESCE(SUM(size_bytes), 0)                   AS total_size_bytes,
			COUNT(*) FILTER (WHERE type = 'image')         AS image_count,
			COUNT(*) FILTER (WHERE type = 'video')         AS video_count`).
		Scan(&agg).Error
	return &agg, err
}
