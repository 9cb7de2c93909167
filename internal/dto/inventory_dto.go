package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateInventoryRequest struct {
	SKU          string          `json:"sku"            validate:"required,min=2,max=50"`
	Size         string          `json:"size"`
	FragranceID  *string         `json:"fragrance_id"   validate:"omitempty,uuid"`
	ProductID    *string         `json:"product_id"     validate:"omitempty,uuid"`
	CurrentStock int             `json:"current_stock"  validate:"min=0"`
	ReorderLevel int             `json:"reorder_level"  validate:"min=0"`
	CostPerUnit  decimal.Decimal `json:"cost_per_unit"`
	SupplierName string          `json:"supplier_name"  validate:"max=200"`
	Location     string          `json:"location"       validate:"max=100"`
}

// UpdateInventoryRequest deliberately has no current_stock field: the stock
// counter is only mutated through the adjust endpoint so it always matches
// the movement history.
type UpdateInventoryRequest struct {
	Size         *string          `json:"size"`
	FragranceID  *string          `json:"fragrance_id"  validate:"omitempty,uuid"`
	ProductID    *string          `json:"product_id"    validate:"omitempty,uuid"`
	ReorderLevel *int             `json:"reorder_level" validate:"omitempty,min=0"`
	CostPerUnit  *decimal.Decimal `json:"cost_per_unit"`
	SupplierName *string          `json:"supplier_name" validate:"omitempty,max=200"`
	Location     *string          `json:"location"      validate:"omitempty,max=100"`
}

type AdjustStockRequest struct {
	Type     string `json:"type"     validate:"required,oneof=in out adjustment"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
	Reason   string `json:"reason"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type InventoryFilter struct {
	SKU      string `form:"sku"`
	Size     string `form:"size"`
	Location string `form:"location"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

type MovementFilter struct {
	Type        string `form:"type"      validate:"omitempty,oneof=in out adjustment"`
	InventoryID string `form:"inventory" validate:"omitempty,uuid"`
	Page        int    `form:"page,default=1"   validate:"min=1"`
	Limit       int    `form:"limit,default=50" validate:"min=1,max=500"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type InventoryResponse struct {
	ID              string             `json:"id"`
	SKU             string             `json:"sku"`
	Size            string             `json:"size"`
	FragranceID     *string            `json:"fragrance_id"`
	ProductID       *string            `json:"product_id"`
	ProductName     string             `json:"product_name"`
	CurrentStock    int                `json:"current_stock"`
	ReorderLevel    int                `json:"reorder_level"`
	CostPerUnit     decimal.Decimal    `json:"cost_per_unit"`
	SupplierName    string             `json:"supplier_name"`
	Location        string             `json:"location"`
	LastRestocked   *string            `json:"last_restocked"`
	StockStatus     string             `json:"stock_status"`
	RecentMovements []MovementResponse `json:"recent_movements,omitempty"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

type InventoryListResponse struct {
	Data       []InventoryResponse `json:"data"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}

type InventoryStatsResponse struct {
	TotalUnits      int64           `json:"total_units"`
	TotalValue      decimal.Decimal `json:"total_value"`
	LowStockCount   int64           `json:"low_stock_count"`
	OutOfStockCount int64           `json:"out_of_stock_count"`
	TotalItems      int64           `json:"total_items"`
}

type MovementResponse struct {
	ID          string `json:"id"`
	InventoryID string `json:"inventory"`
	SKU         string `json:"sku,omitempty"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	StockBefore int    `json:"stock_before"`
	StockAfter  int    `json:"stock_after"`
	Reason      string `json:"reason"`
	PerformedBy string `json:"performed_by"`
	CreatedAt   string `json:"created_at"`
}

type MovementListResponse struct {
	Data       []MovementResponse `json:"data"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
}
