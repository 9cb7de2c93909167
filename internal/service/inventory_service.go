package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"essencia/internal/dto"
	"essencia/internal/model"
	"essencia/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultActor is recorded on movements when no operator identity is supplied.
const DefaultActor = "System"

// recentMovementLimit caps the movement history embedded in a detail response.
const recentMovementLimit = 20

// InventoryService owns the stock ledger: every change to current_stock goes
// through Adjust, which writes the counter and the movement row as one atomic
// unit so the counter always equals the net sum of the movement history.
type InventoryService interface {
	Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.InventoryResponse, error)
	List(ctx context.Context, filter dto.InventoryFilter) (*dto.InventoryListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Adjust(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest, actor string) (*dto.InventoryResponse, error)
	Stats(ctx context.Context) (*dto.InventoryStatsResponse, error)
	ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error)
}

type inventoryService struct {
	repo       repository.InventoryRepository
	movements  repository.StockMovementRepository
	fragrances repository.FragranceRepository
	products   repository.ProductRepository
}

func NewInventoryService(
	repo repository.InventoryRepository,
	movements repository.StockMovementRepository,
	fragrances repository.FragranceRepository,
	products repository.ProductRepository,
) InventoryService {
	return &inventoryService{
		repo:       repo,
		movements:  movements,
		fragrances: fragrances,
		products:   products,
	}
}

// ── Create ────────────────────────────────────────────────────────────────────

func (s *inventoryService) Create(ctx context.Context, req dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	kind, refID, err := resolveRef(req.FragranceID, req.ProductID)
	if err != nil {
		return nil, err
	}

	item := &model.InventoryItem{
		SKU:          req.SKU,
		Size:         req.Size,
		RefKind:      kind,
		RefID:        refID,
		CurrentStock: req.CurrentStock,
		ReorderLevel: req.ReorderLevel,
		CostPerUnit:  req.CostPerUnit,
		SupplierName: req.SupplierName,
		Location:     req.Location,
	}
	if item.Size == "" {
		item.Size = "8ml"
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if tx == nil {
			if err := s.repo.Create(ctx, item); err != nil {
				return err
			}
		} else {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		// Seed the ledger so stock == sum(movements) holds from day one.
		if item.CurrentStock > 0 {
			return s.movements.CreateTx(tx, &model.StockMovement{
				InventoryID: item.ID,
				Kind:        model.MovementAdjustment,
				Quantity:    item.CurrentStock,
				StockBefore: 0,
				StockAfter:  item.CurrentStock,
				Reason:      "Initial stock",
				PerformedBy: DefaultActor,
			})
		}
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, txErr)
	}

	return s.toResponse(ctx, item, nil), nil
}

func (s *inventoryService) GetByID(ctx context.Context, id uuid.UUID) (*dto.InventoryResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	recent, err := s.movements.ListByItem(ctx, item.ID, recentMovementLimit)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, item, recent), nil
}

func (s *inventoryService) List(ctx context.Context, filter dto.InventoryFilter) (*dto.InventoryListResponse, error) {
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.InventoryResponse, 0, len(items))
	for i := range items {
		data = append(data, *s.toResponse(ctx, &items[i], nil))
	}

	return &dto.InventoryListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// Update covers the non-stock attributes. The stock counter is off limits
// here — Adjust is the only mutation path for it.
func (s *inventoryService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}

	if req.FragranceID != nil || req.ProductID != nil {
		kind, refID, err := resolveRef(req.FragranceID, req.ProductID)
		if err != nil {
			return nil, err
		}
		item.RefKind = kind
		item.RefID = refID
	}
	if req.Size != nil {
		item.Size = *req.Size
	}
	if req.ReorderLevel != nil {
		item.ReorderLevel = *req.ReorderLevel
	}
	if req.CostPerUnit != nil {
		item.CostPerUnit = *req.CostPerUnit
	}
	if req.SupplierName != nil {
		item.SupplierName = *req.SupplierName
	}
	if req.Location != nil {
		item.Location = *req.Location
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return s.toResponse(ctx, item, nil), nil
}

func (s *inventoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err)
	}
	// Movement history goes with the item (FK cascade).
	return s.repo.Delete(ctx, id)
}

// ── Adjust ────────────────────────────────────────────────────────────────────
// Locked read, counter update, and movement append run in one transaction:
// either both rows land or neither does. The row lock serializes concurrent
// adjustments on the same item; other items are untouched.

func (s *inventoryService) Adjust(ctx context.Context, id uuid.UUID, req dto.AdjustStockRequest, actor string) (*dto.InventoryResponse, error) {
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}
	switch req.Type {
	case model.MovementIn, model.MovementOut, model.MovementAdjustment:
	default:
		return nil, fmt.Errorf("%w: unknown movement type %q", ErrValidation, req.Type)
	}
	if actor == "" {
		actor = DefaultActor
	}

	var updated model.InventoryItem
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		item, err := s.repo.FindByIDForUpdateTx(tx, id)
		if err != nil {
			return notFoundOr(err)
		}

		before := item.CurrentStock
		signed := req.Quantity
		if req.Type == model.MovementOut {
			signed = -req.Quantity
		}
		// Outgoing stock clamps at zero; the movement still records the full
		// requested delta, not the clamped difference.
		newStock := before + signed
		if newStock < 0 {
			newStock = 0
		}

		item.CurrentStock = newStock
		if req.Type == model.MovementIn {
			now := time.Now().UTC()
			item.LastRestocked = &now
		}
		if err := s.repo.UpdateTx(tx, item); err != nil {
			return err
		}

		if err := s.movements.CreateTx(tx, &model.StockMovement{
			InventoryID: item.ID,
			Kind:        req.Type,
			Quantity:    signed,
			StockBefore: before,
			StockAfter:  newStock,
			Reason:      req.Reason,
			PerformedBy: actor,
		}); err != nil {
			return err
		}

		updated = *item
		return nil
	})
	if txErr != nil {
		if isClientError(txErr) {
			return nil, txErr
		}
		return nil, fmt.Errorf("%w: %v", ErrTransient, txErr)
	}

	log.Info().
		Str("sku", updated.SKU).
		Str("type", req.Type).
		Int("quantity", req.Quantity).
		Int("stock", updated.CurrentStock).
		Str("actor", actor).
		Msg("stock adjusted")

	return s.toResponse(ctx, &updated, nil), nil
}

func (s *inventoryService) Stats(ctx context.Context) (*dto.InventoryStatsResponse, error) {
	agg, err := s.repo.Aggregate(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.InventoryStatsResponse{
		TotalUnits:      agg.TotalUnits,
		TotalValue:      agg.TotalValue,
		LowStockCount:   agg.LowStockCount,
		OutOfStockCount: agg.OutOfStockCount,
		TotalItems:      agg.TotalItems,
	}, nil
}

func (s *inventoryService) ListMovements(ctx context.Context, filter dto.MovementFilter) (*dto.MovementListResponse, error) {
	movements, total, err := s.movements.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	data := make([]dto.MovementResponse, 0, len(movements))
	for i := range movements {
		data = append(data, movementToResponse(&movements[i]))
	}

	return &dto.MovementListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func isClientError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrValidation)
}

// resolveRef enforces the fragrance-XOR-product rule on incoming ids.
func resolveRef(fragranceID, productID *string) (model.RefKind, *uuid.UUID, error) {
	if fragranceID != nil && productID != nil {
		return model.RefNone, nil, fmt.Errorf("%w: item may reference a fragrance or a product, not both", ErrValidation)
	}
	if fragranceID != nil {
		id, err := uuid.Parse(*fragranceID)
		if err != nil {
			return model.RefNone, nil, fmt.Errorf("%w: invalid fragrance_id", ErrValidation)
		}
		return model.RefFragrance, &id, nil
	}
	if productID != nil {
		id, err := uuid.Parse(*productID)
		if err != nil {
			return model.RefNone, nil, fmt.Errorf("%w: invalid product_id", ErrValidation)
		}
		return model.RefProduct, &id, nil
	}
	return model.RefNone, nil, nil
}

// resolveName looks up the referenced catalog entry; orphaned items read as
// "Unknown".
func (s *inventoryService) resolveName(ctx context.Context, item *model.InventoryItem) string {
	if item.RefID == nil {
		return "Unknown"
	}
	switch item.RefKind {
	case model.RefFragrance:
		if f, err := s.fragrances.FindByID(ctx, *item.RefID); err == nil {
			return f.Name
		}
	case model.RefProduct:
		if p, err := s.products.FindByID(ctx, *item.RefID); err == nil {
			return p.Name
		}
	}
	return "Unknown"
}

func (s *inventoryService) toResponse(ctx context.Context, item *model.InventoryItem, recent []model.StockMovement) *dto.InventoryResponse {
	resp := &dto.InventoryResponse{
		ID:           item.ID.String(),
		SKU:          item.SKU,
		Size:         item.Size,
		ProductName:  s.resolveName(ctx, item),
		CurrentStock: item.CurrentStock,
		ReorderLevel: item.ReorderLevel,
		CostPerUnit:  item.CostPerUnit,
		SupplierName: item.SupplierName,
		Location:     item.Location,
		StockStatus:  item.StockStatus(),
		CreatedAt:    item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:    item.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if item.RefID != nil {
		id := item.RefID.String()
		switch item.RefKind {
		case model.RefFragrance:
			resp.FragranceID = &id
		case model.RefProduct:
			resp.ProductID = &id
		}
	}
	if item.LastRestocked != nil {
		ts := item.LastRestocked.UTC().Format(time.RFC3339)
		resp.LastRestocked = &ts
	}
	for i := range recent {
		resp.RecentMovements = append(resp.RecentMovements, movementToResponse(&recent[i]))
	}
	return resp
}

func movementToResponse(m *model.StockMovement) dto.MovementResponse {
	resp := dto.MovementResponse{
		ID:          m.ID.String(),
		InventoryID: m.InventoryID.String(),
		Type:        m.Kind,
		Quantity:    m.Quantity,
		StockBefore: m.StockBefore,
		StockAfter:  m.StockAfter,
		Reason:      m.Reason,
		PerformedBy: m.PerformedBy,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
	}
	if m.Item != nil {
		resp.SKU = m.Item.SKU
	}
	return resp
}

func totalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
