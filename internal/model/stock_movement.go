package model

import (
	"time"

	"github.com/google/uuid"
)

// Movement kinds. "out" is stored with a negative quantity; the other two
// are stored positive.
const (
	MovementIn         = "in"
	MovementOut        = "out"
	MovementAdjustment = "adjustment"
)

// StockMovement records one change to an inventory item's stock count.
// Rows are append-only: never updated or deleted except by the cascade when
// the owning item is removed.
type StockMovement struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	InventoryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind        string    `gorm:"column:type;not null"` // "in" | "out" | "adjustment"
	Quantity    int       `gorm:"not null"`             // signed: positive = entry, negative = exit
	StockBefore int       `gorm:"not null"`
	StockAfter  int       `gorm:"not null"`
	Reason      string
	PerformedBy string `gorm:"not null;default:'System'"`
	CreatedAt   time.Time

	Item *InventoryItem `gorm:"foreignKey:InventoryID;constraint:OnDelete:CASCADE"`
}

func (StockMovement) TableName() string { return "stock_movements" }
