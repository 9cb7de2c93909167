package repository

import (
	"context"

	"essencia/internal/dto"
	"essencia/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InventoryAggregate is the raw stats projection computed in SQL so that
// total_value stays in decimal arithmetic end to end.
type InventoryAggregate struct {
	TotalUnits      int64
	TotalValue      decimal.Decimal
	LowStockCount   int64
	OutOfStockCount int64
	TotalItems      int64
}

// InventoryRepository defines the data access contract for inventory items.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type InventoryRepository interface {
	Create(ctx context.Context, item *model.InventoryItem) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error)
	FindBySKU(ctx context.Context, sku string) (*model.InventoryItem, error)
	List(ctx context.Context, filter dto.InventoryFilter) ([]model.InventoryItem, int64, error)
	Update(ctx context.Context, item *model.InventoryItem) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByIDForUpdateTx takes a row lock so concurrent adjustments on the
	// same item serialize. Callers must pass the live transaction.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.InventoryItem, error)
	UpdateTx(tx *gorm.DB, item *model.InventoryItem) error
	// DeleteByRefTx removes every item referencing a catalog entry, inside the
	// caller's transaction so the catalog row and its items go together.
	DeleteByRefTx(tx *gorm.DB, kind model.RefKind, refID uuid.UUID) error

	Aggregate(ctx context.Context) (*InventoryAggregate, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type inventoryRepo struct{ db *gorm.DB }

func NewInventoryRepository(db *gorm.DB) InventoryRepository { return &inventoryRepo{db: db} }

func (r *inventoryRepo) Create(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *inventoryRepo) FindBySKU(ctx context.Context, sku string) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&item).Error
	return &item, err
}

func (r *inventoryRepo) List(ctx context.Context, filter dto.InventoryFilter) ([]model.InventoryItem, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.InventoryItem{})

	if filter.SKU != "" {
		q = q.Where("sku = ?", filter.SKU)
	}
	if filter.Size != "" {
		q = q.Where("size = ?", filter.Size)
	}
	if filter.Location != "" {
		q = q.Where("location = ?", filter.Location)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	var items []model.InventoryItem
	err := q.Order("updated_at DESC").Offset(offset).Limit(filter.Limit).Find(&items).Error
	return items, total, err
}

func (r *inventoryRepo) Update(ctx context.Context, item *model.InventoryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	// Movements go with it via the FK cascade on stock_movements.
	return r.db.WithContext(ctx).Delete(&model.InventoryItem{}, "id = ?", id).Error
}

func (r *inventoryRepo) DeleteByRefTx(tx *gorm.DB, kind model.RefKind, refID uuid.UUID) error {
	return tx.Delete(&model.InventoryItem{}, "ref_kind = ? AND ref_id = ?", kind, refID).Error
}

func (r *inventoryRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.InventoryItem, error) {
	var item model.InventoryItem
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&item, "id = ?", id).Error
	return &item, err
}

func (r *inventoryRepo) UpdateTx(tx *gorm.DB, item *model.InventoryItem) error {
	return tx.Save(item).Error
}

func (r *inventoryRepo) Aggregate(ctx context.Context) (*InventoryAggregate, error) {
	var agg InventoryAggregate
	err := r.db.WithContext(ctx).Model(&model.InventoryItem{}).
		Select(`COALESCE(SUM(current_stock), 0)                              AS total_units,
			COALESCE(SUM(current_stock * cost_per_unit), 0)              AS total_value,
			COUNT(*) FILTER (WHERE current_stock <= reorder_level)       AS low_stock_count,
			COUNT(*) FILTER (WHERE current_stock = 0)                    AS out_of_stock_count,
			COUNT(*)                                                     AS total_items`).
		Scan(&agg).Error
	return &agg, err
}

func (r *inventoryRepo) DB() *gorm.DB { return r.db }
