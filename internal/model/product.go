package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product kinds exposed by the storefront catalog.
const (
	ProductPerfume = "perfume"
	ProductAttar   = "attar"
)

// Product is a sellable catalog entry. Stock is not tracked here — it lives
// on the inventory items referencing the product.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Description *string
	Kind        string          `gorm:"not null;default:'perfume'"` // "perfume" | "attar"
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Bestseller  bool            `gorm:"not null;default:false"`
	Active      bool            `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Product) TableName() string { return "products" }
