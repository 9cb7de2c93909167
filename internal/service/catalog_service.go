package service

import (
	"context"
	"fmt"
	"time"

	"essencia/internal/dto"
	"essencia/internal/model"
	"essencia/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FragranceService and ProductService are thin CRUD over the catalog tables.
// Deleting a catalog entry also removes its inventory items, whose movement
// history cascades at the database level.

type FragranceService interface {
	Create(ctx context.Context, req dto.CreateFragranceRequest) (*dto.FragranceResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.FragranceResponse, error)
	List(ctx context.Context, filter dto.CatalogFilter) (*dto.FragranceListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateFragranceRequest) (*dto.FragranceResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fragranceService struct {
	repo      repository.FragranceRepository
	inventory repository.InventoryRepository
}

func NewFragranceService(repo repository.FragranceRepository, inventory repository.InventoryRepository) FragranceService {
	return &fragranceService{repo: repo, inventory: inventory}
}

func (s *fragranceService) Create(ctx context.Context, req dto.CreateFragranceRequest) (*dto.FragranceResponse, error) {
	f := &model.Fragrance{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      true,
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return fragranceToResponse(f), nil
}

func (s *fragranceService) GetByID(ctx context.Context, id uuid.UUID) (*dto.FragranceResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return fragranceToResponse(f), nil
}

func (s *fragranceService) List(ctx context.Context, filter dto.CatalogFilter) (*dto.FragranceListResponse, error) {
	fragrances, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.FragranceResponse, 0, len(fragrances))
	for i := range fragrances {
		data = append(data, *fragranceToResponse(&fragrances[i]))
	}
	return &dto.FragranceListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *fragranceService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateFragranceRequest) (*dto.FragranceResponse, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Description != nil {
		f.Description = req.Description
	}
	if req.Price != nil {
		f.Price = *req.Price
	}
	if req.Active != nil {
		f.Active = *req.Active
	}
	if err := s.repo.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return fragranceToResponse(f), nil
}

func (s *fragranceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err)
	}
	// Catalog row and its inventory items go together or not at all; movement
	// history cascades at the database level.
	txErr := runTx(ctx, s.inventory.DB(), func(tx *gorm.DB) error {
		if err := s.inventory.DeleteByRefTx(tx, model.RefFragrance, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return fmt.Errorf("%w: %v", ErrTransient, txErr)
	}
	return nil
}

func fragranceToResponse(f *model.Fragrance) *dto.FragranceResponse {
	return &dto.FragranceResponse{
		ID:          f.ID.String(),
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Active:      f.Active,
		CreatedAt:   f.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   f.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

type ProductService interface {
	Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	List(ctx context.Context, filter dto.CatalogFilter) (*dto.ProductListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo      repository.ProductRepository
	inventory repository.InventoryRepository
}

func NewProductService(repo repository.ProductRepository, inventory repository.InventoryRepository) ProductService {
	return &productService{repo: repo, inventory: inventory}
}

func (s *productService) Create(ctx context.Context, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	p := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Kind:        req.Kind,
		Price:       req.Price,
		Bestseller:  req.Bestseller,
		Active:      true,
	}
	if p.Kind == "" {
		p.Kind = model.ProductPerfume
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return productToResponse(p), nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context, filter dto.CatalogFilter) (*dto.ProductListResponse, error) {
	products, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		data = append(data, *productToResponse(&products[i]))
	}
	return &dto.ProductListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = req.Description
	}
	if req.Kind != nil {
		p.Kind = *req.Kind
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Bestseller != nil {
		p.Bestseller = *req.Bestseller
	}
	if req.Active != nil {
		p.Active = *req.Active
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return productToResponse(p), nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err)
	}
	txErr := runTx(ctx, s.inventory.DB(), func(tx *gorm.DB) error {
		if err := s.inventory.DeleteByRefTx(tx, model.RefProduct, id); err != nil {
			return err
		}
		return s.repo.DeleteTx(tx, id)
	})
	if txErr != nil {
		return fmt.Errorf("%w: %v", ErrTransient, txErr)
	}
	return nil
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Kind:        p.Kind,
		Price:       p.Price,
		Bestseller:  p.Bestseller,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
