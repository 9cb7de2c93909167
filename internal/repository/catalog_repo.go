package repository

import (
	"context"

	"essencia/internal/dto"
	"essencia/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FragranceRepository interface {
	Create(ctx context.Context, f *model.Fragrance) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Fragrance, error)
	List(ctx context.Context, filter dto.CatalogFilter) ([]model.Fragrance, int64, error)
	Update(ctx context.Context, f *model.Fragrance) error
	// DeleteTx runs inside the caller's transaction, paired with the
	// inventory cascade.
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
}

type fragranceRepo struct{ db *gorm.DB }

func NewFragranceRepository(db *gorm.DB) FragranceRepository { return &fragranceRepo{db: db} }

func (r *fragranceRepo) Create(ctx context.Context, f *model.Fragrance) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fragranceRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Fragrance, error) {
	var f model.Fragrance
	err := r.db.WithContext(ctx).First(&f, "id = ?", id).Error
	return &f, err
}

func (r *fragranceRepo) List(ctx context.Context, filter dto.CatalogFilter) ([]model.Fragrance, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Fragrance{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var fragrances []model.Fragrance
	err := q.Order("name ASC").Offset(offset).Limit(filter.Limit).Find(&fragrances).Error
	return fragrances, total, err
}

func (r *fragranceRepo) Update(ctx context.Context, f *model.Fragrance) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *fragranceRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Fragrance{}, "id = ?", id).Error
}

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	List(ctx context.Context, filter dto.CatalogFilter) ([]model.Product, int64, error)
	Update(ctx context.Context, p *model.Product) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context, filter dto.CatalogFilter) ([]model.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Product{})
	if filter.Name != "" {
		q = q.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var products []model.Product
	err := q.Order("name ASC").Offset(offset).Limit(filter.Limit).Find(&products).Error
	return products, total, err
}

func (r *productRepo) Update(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Product{}, "id = ?", id).Error
}
