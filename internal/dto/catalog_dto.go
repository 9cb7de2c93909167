package dto

import "github.com/shopspring/decimal"

// ─── Fragrances ──────────────────────────────────────────────────────────────

type CreateFragranceRequest struct {
	Name        string          `json:"name"        validate:"required,min=2,max=200"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

type UpdateFragranceRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=2,max=200"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Active      *bool            `json:"active"`
}

type FragranceResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Active      bool            `json:"active"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type FragranceListResponse struct {
	Data       []FragranceResponse `json:"data"`
	Total      int64               `json:"total"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
	TotalPages int                 `json:"total_pages"`
}

// ─── Products ────────────────────────────────────────────────────────────────

type CreateProductRequest struct {
	Name        string          `json:"name"        validate:"required,min=2,max=200"`
	Description *string         `json:"description"`
	Kind        string          `json:"kind"        validate:"omitempty,oneof=perfume attar"`
	Price       decimal.Decimal `json:"price"`
	Bestseller  bool            `json:"bestseller"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"        validate:"omitempty,min=2,max=200"`
	Description *string          `json:"description"`
	Kind        *string          `json:"kind"        validate:"omitempty,oneof=perfume attar"`
	Price       *decimal.Decimal `json:"price"`
	Bestseller  *bool            `json:"bestseller"`
	Active      *bool            `json:"active"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Kind        string          `json:"kind"`
	Price       decimal.Decimal `json:"price"`
	Bestseller  bool            `json:"bestseller"`
	Active      bool            `json:"active"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

type ProductListResponse struct {
	Data       []ProductResponse `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	TotalPages int               `json:"total_pages"`
}

type CatalogFilter struct {
	Name  string `form:"name"`
	Kind  string `form:"kind"  validate:"omitempty,oneof=perfume attar"`
	Page  int    `form:"page,default=1"   validate:"min=1"`
	Limit int    `form:"limit,default=20" validate:"min=1,max=100"`
}
