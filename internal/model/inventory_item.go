package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefKind identifies which catalog entity an inventory item belongs to.
// A single kind+id pair replaces the two-nullable-FK layout: the ambiguous
// "both set" state is unrepresentable.
type RefKind string

const (
	RefNone      RefKind = ""
	RefFragrance RefKind = "fragrance"
	RefProduct   RefKind = "product"
)

// Stock status values derived from current_stock vs reorder_level.
const (
	StatusOutOfStock = "out_of_stock"
	StatusLowStock   = "low_stock"
	StatusHealthy    = "healthy"
)

// InventoryItem is one row per SKU. CurrentStock is only ever mutated through
// the adjustment flow so that it stays equal to the net sum of the item's
// recorded movements.
type InventoryItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SKU           string    `gorm:"uniqueIndex;not null"`
	Size          string    `gorm:"not null;default:'8ml'"`
	RefKind       RefKind   `gorm:"type:varchar(20);index:idx_inventory_ref"`
	RefID         *uuid.UUID `gorm:"type:uuid;index:idx_inventory_ref"`
	CurrentStock  int             `gorm:"not null;default:0"`
	ReorderLevel  int             `gorm:"not null;default:20"`
	CostPerUnit   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	SupplierName  string
	Location      string
	LastRestocked *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName overrides GORM's default pluralization (inventory_items → inventory).
func (InventoryItem) TableName() string { return "inventory" }

// StockStatus is computed, never stored.
func (i *InventoryItem) StockStatus() string {
	switch {
	case i.CurrentStock == 0:
		return StatusOutOfStock
	case i.CurrentStock <= i.ReorderLevel:
		return StatusLowStock
	default:
		return StatusHealthy
	}
}
