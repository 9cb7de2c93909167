package service_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"essencia/internal/dto"
	"essencia/internal/model"
	"essencia/internal/repository"
	"essencia/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── In-memory repository stubs ───────────────────────────────────────────────

type stubMovementRepo struct {
	rows []*model.StockMovement
	seq  int
}

func newStubMovementRepo() *stubMovementRepo { return &stubMovementRepo{} }

func (r *stubMovementRepo) CreateTx(_ *gorm.DB, m *model.StockMovement) error {
	m.ID = uuid.New()
	// Monotonic timestamps so newest-first ordering is deterministic.
	r.seq++
	m.CreatedAt = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(r.seq) * time.Second)
	r.rows = append(r.rows, m)
	return nil
}

func (r *stubMovementRepo) List(_ context.Context, filter dto.MovementFilter) ([]model.StockMovement, int64, error) {
	var out []model.StockMovement
	for _, m := range r.rows {
		if filter.Type != "" && m.Kind != filter.Type {
			continue
		}
		if filter.InventoryID != "" && m.InventoryID.String() != filter.InventoryID {
			continue
		}
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, int64(len(out)), nil
}

func (r *stubMovementRepo) ListByItem(_ context.Context, inventoryID uuid.UUID, limit int) ([]model.StockMovement, error) {
	var out []model.StockMovement
	for _, m := range r.rows {
		if m.InventoryID == inventoryID {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var _ repository.StockMovementRepository = (*stubMovementRepo)(nil)

type stubInventoryRepo struct {
	items     map[uuid.UUID]*model.InventoryItem
	movements *stubMovementRepo
}

func newStubInventoryRepo(movements *stubMovementRepo) *stubInventoryRepo {
	return &stubInventoryRepo{
		items:     make(map[uuid.UUID]*model.InventoryItem),
		movements: movements,
	}
}

func (r *stubInventoryRepo) Create(_ context.Context, item *model.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	r.items[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubInventoryRepo) FindBySKU(_ context.Context, sku string) (*model.InventoryItem, error) {
	for _, item := range r.items {
		if item.SKU == sku {
			return item, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubInventoryRepo) List(_ context.Context, filter dto.InventoryFilter) ([]model.InventoryItem, int64, error) {
	var out []model.InventoryItem
	for _, item := range r.items {
		if filter.SKU != "" && item.SKU != filter.SKU {
			continue
		}
		if filter.Location != "" && item.Location != filter.Location {
			continue
		}
		out = append(out, *item)
	}
	return out, int64(len(out)), nil
}

func (r *stubInventoryRepo) Update(_ context.Context, item *model.InventoryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.items, id)
	// FK cascade: owned movements disappear with the item.
	kept := r.movements.rows[:0]
	for _, m := range r.movements.rows {
		if m.InventoryID != id {
			kept = append(kept, m)
		}
	}
	r.movements.rows = kept
	return nil
}

func (r *stubInventoryRepo) DeleteByRefTx(_ *gorm.DB, kind model.RefKind, refID uuid.UUID) error {
	for id, item := range r.items {
		if item.RefKind == kind && item.RefID != nil && *item.RefID == refID {
			if err := r.Delete(context.Background(), id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *stubInventoryRepo) FindByIDForUpdateTx(_ *gorm.DB, id uuid.UUID) (*model.InventoryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *stubInventoryRepo) UpdateTx(_ *gorm.DB, item *model.InventoryItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *stubInventoryRepo) Aggregate(_ context.Context) (*repository.InventoryAggregate, error) {
	agg := &repository.InventoryAggregate{TotalValue: decimal.Zero}
	for _, item := range r.items {
		agg.TotalUnits += int64(item.CurrentStock)
		agg.TotalValue = agg.TotalValue.Add(item.CostPerUnit.Mul(decimal.NewFromInt(int64(item.CurrentStock))))
		if item.CurrentStock <= item.ReorderLevel {
			agg.LowStockCount++
		}
		if item.CurrentStock == 0 {
			agg.OutOfStockCount++
		}
		agg.TotalItems++
	}
	return agg, nil
}

func (r *stubInventoryRepo) DB() *gorm.DB { return nil }

var _ repository.InventoryRepository = (*stubInventoryRepo)(nil)

type stubFragranceRepo struct {
	fragrances map[uuid.UUID]*model.Fragrance
}

func newStubFragranceRepo() *stubFragranceRepo {
	return &stubFragranceRepo{fragrances: make(map[uuid.UUID]*model.Fragrance)}
}

func (r *stubFragranceRepo) Create(_ context.Context, f *model.Fragrance) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.fragrances[f.ID] = f
	return nil
}

func (r *stubFragranceRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Fragrance, error) {
	f, ok := r.fragrances[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return f, nil
}

func (r *stubFragranceRepo) List(_ context.Context, _ dto.CatalogFilter) ([]model.Fragrance, int64, error) {
	var out []model.Fragrance
	for _, f := range r.fragrances {
		out = append(out, *f)
	}
	return out, int64(len(out)), nil
}

func (r *stubFragranceRepo) Update(_ context.Context, f *model.Fragrance) error {
	r.fragrances[f.ID] = f
	return nil
}

func (r *stubFragranceRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.fragrances, id)
	return nil
}

var _ repository.FragranceRepository = (*stubFragranceRepo)(nil)

type stubProductRepo struct {
	products map[uuid.UUID]*model.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[uuid.UUID]*model.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubProductRepo) List(_ context.Context, _ dto.CatalogFilter) ([]model.Product, int64, error) {
	var out []model.Product
	for _, p := range r.products {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubProductRepo) Update(_ context.Context, p *model.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *stubProductRepo) DeleteTx(_ *gorm.DB, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

var _ repository.ProductRepository = (*stubProductRepo)(nil)

// ── Helpers ───────────────────────────────────────────────────────────────────

type ledgerFixture struct {
	inventory  *stubInventoryRepo
	movements  *stubMovementRepo
	fragrances *stubFragranceRepo
	products   *stubProductRepo
	svc        service.InventoryService
}

func newLedgerFixture() *ledgerFixture {
	movements := newStubMovementRepo()
	inventory := newStubInventoryRepo(movements)
	fragrances := newStubFragranceRepo()
	products := newStubProductRepo()
	return &ledgerFixture{
		inventory:  inventory,
		movements:  movements,
		fragrances: fragrances,
		products:   products,
		svc:        service.NewInventoryService(inventory, movements, fragrances, products),
	}
}

func seedItem(f *ledgerFixture, sku string, stock, reorderLevel int, cost decimal.Decimal) *model.InventoryItem {
	item := &model.InventoryItem{
		ID:           uuid.New(),
		SKU:          sku,
		Size:         "8ml",
		CurrentStock: stock,
		ReorderLevel: reorderLevel,
		CostPerUnit:  cost,
	}
	f.inventory.items[item.ID] = item
	return item
}

func adjust(t *testing.T, f *ledgerFixture, id uuid.UUID, kind string, qty int) *dto.InventoryResponse {
	t.Helper()
	resp, err := f.svc.Adjust(context.Background(), id, dto.AdjustStockRequest{Type: kind, Quantity: qty}, "")
	require.NoError(t, err)
	return resp
}

// ── Adjust ────────────────────────────────────────────────────────────────────

func TestAdjustStockIn(t *testing.T) {
	f := newLedgerFixture()
	item := seedItem(f, "ESS-001", 5, 10, decimal.NewFromFloat(2.00))

	resp := adjust(t, f, item.ID, model.MovementIn, 20)

	assert.Equal(t, 25, resp.CurrentStock)
	assert.Equal(t, model.StatusHealthy, resp.StockStatus)
	require.NotNil(t, resp.LastRestocked)

	require.Len(t, f.movements.rows, 1)
	m := f.movements.rows[0]
	assert.Equal(t, model.MovementIn, m.Kind)
	assert.Equal(t, 20, m.Quantity)
	assert.Equal(t, 5, m.StockBefore)
	assert.Equal(t, 25, m.StockAfter)
	assert.Equal(t, service.DefaultActor, m.PerformedBy)
}

func TestAdjustStockOutClampsAtZero(t *testing.T) {
	f := newLedgerFixture()
	item := seedItem(f, "ESS-002", 5, 10, decimal.NewFromFloat(2.00))

	adjust(t, f, item.ID, model.MovementIn, 20) // 25
	resp := adjust(t, f, item.ID, model.MovementOut, 30)

	assert.Equal(t, 0, resp.CurrentStock)
	assert.Equal(t, model.StatusOutOfStock, resp.StockStatus)

	// The movement records the full requested delta, not the clamped difference.
	require.Len(t, f.movements.rows, 2)
	assert.Equal(t, -30, f.movements.rows[1].Quantity)
	assert.Equal(t, 25, f.movements.rows[1].StockBefore)
	assert.Equal(t, 0, f.movements.rows[1].StockAfter)
}

func TestAdjustmentKindAddsStock(t *testing.T) {
	f := newLedgerFixture()
	item := seedItem(f, "ESS-003", 3, 10, decimal.NewFromFloat(1.50))

	resp := adjust(t, f, item.ID, model.MovementAdjustment, 4)

	assert.Equal(t, 7, resp.CurrentStock)
	assert.Equal(t, model.StatusLowStock, resp.StockStatus)
	// Only "in" counts as a restock.
	assert.Nil(t, resp.LastRestocked)
	assert.Equal(t, 4, f.movements.rows[0].Quantity)
}

func TestAdjustRecordsActor(t *testing.T) {
	f := newLedgerFixture()
	item := seedItem(f, "ESS-004", 0, 5, decimal.Zero)

	_, err := f.svc.Adjust(context.Background(), item.ID, dto.AdjustStockRequest{
		Type:     model.MovementIn,
		Quantity: 2,
		Reason:   "supplier delivery",
	}, "amira")
	require.NoError(t, err)

	m := f.movements.rows[0]
	assert.Equal(t, "amira", m.PerformedBy)
	assert.Equal(t, "supplier delivery", m.Reason)
}

func TestAdjustUnknownItem(t *testing.T) {
	f := newLedgerFixture()

	_, err := f.svc.Adjust(context.Background(), uuid.New(), dto.AdjustStockRequest{
		Type:     model.MovementIn,
		Quantity: 1,
	}, "")
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Empty(t, f.movements.rows)
}

func TestAdjustRejectsBadInput(t *testing.T) {
	f := newLedgerFixture()
	item := seedItem(f, "ESS-005", 5, 10, decimal.Zero)

	_, err := f.svc.Adjust(context.Background(), item.ID, dto.AdjustStockRequest{Type: "teleport", Quantity: 1}, "")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = f.svc.Adjust(context.Background(), item.ID, dto.AdjustStockRequest{Type: model.MovementIn, Quantity: 0}, "")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = f.svc.Adjust(context.Background(), item.ID, dto.AdjustStockRequest{Type: model.MovementOut, Quantity: -3}, "")
	assert.ErrorIs(t, err, service.ErrValidation)

	// Nothing was written.
	assert.Equal(t, 5, f.inventory.items[item.ID].CurrentStock)
	assert.Empty(t, f.movements.rows)
}

func TestLedgerReplayInvariant(t *testing.T) {
	f := newLedgerFixture()
	item := seedItem(f, "ESS-006", 0, 10, decimal.Zero)

	adjust(t, f, item.ID, model.MovementIn, 40)
	adjust(t, f, item.ID, model.MovementOut, 15)
	adjust(t, f, item.ID, model.MovementAdjustment, 3)
	adjust(t, f, item.ID, model.MovementOut, 8)

	net := 0
	for _, m := range f.movements.rows {
		net += m.Quantity
	}
	assert.Equal(t, net, f.inventory.items[item.ID].CurrentStock)
	assert.Equal(t, 20, f.inventory.items[item.ID].CurrentStock)
}

// ── Stock status ──────────────────────────────────────────────────────────────

func TestStockStatusBoundaries(t *testing.T) {
	cases := []struct {
		stock, reorder int
		want           string
	}{
		{0, 10, model.StatusOutOfStock},
		{1, 10, model.StatusLowStock},
		{10, 10, model.StatusLowStock},
		{11, 10, model.StatusHealthy},
		{0, 0, model.StatusOutOfStock},
		{1, 0, model.StatusHealthy},
	}
	for _, tc := range cases {
		item := model.InventoryItem{CurrentStock: tc.stock, ReorderLevel: tc.reorder}
		assert.Equalf(t, tc.want, item.StockStatus(), "stock=%d reorder=%d", tc.stock, tc.reorder)
	}
}

// ── Create / Update / Delete ──────────────────────────────────────────────────

func TestCreateSeedsInitialMovement(t *testing.T) {
	f := newLedgerFixture()

	resp, err := f.svc.Create(context.Background(), dto.CreateInventoryRequest{
		SKU:          "ESS-010",
		CurrentStock: 7,
		ReorderLevel: 5,
		CostPerUnit:  decimal.NewFromFloat(3.25),
	})
	require.NoError(t, err)
	assert.Equal(t, 7, resp.CurrentStock)
	assert.Equal(t, "8ml", resp.Size)

	// Ledger starts consistent: one adjustment movement covering the opening stock.
	require.Len(t, f.movements.rows, 1)
	assert.Equal(t, model.MovementAdjustment, f.movements.rows[0].Kind)
	assert.Equal(t, 7, f.movements.rows[0].Quantity)
	assert.Equal(t, 0, f.movements.rows[0].StockBefore)
}

func TestCreateRejectsDualReference(t *testing.T) {
	f := newLedgerFixture()
	fragranceID := uuid.New().String()
	productID := uuid.New().String()

	_, err := f.svc.Create(context.Background(), dto.CreateInventoryRequest{
		SKU:         "ESS-011",
		FragranceID: &fragranceID,
		ProductID:   &productID,
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdateLeavesStockAlone(t *testing.T) {
	f := newLedgerFixture()
	item := seedItem(f, "ESS-012", 9, 5, decimal.NewFromFloat(1.00))

	newLocation := "shelf B3"
	newReorder := 12
	resp, err := f.svc.Update(context.Background(), item.ID, dto.UpdateInventoryRequest{
		Location:     &newLocation,
		ReorderLevel: &newReorder,
	})
	require.NoError(t, err)

	assert.Equal(t, 9, resp.CurrentStock)
	assert.Equal(t, "shelf B3", resp.Location)
	// Raising the threshold above the stock level flips the derived status.
	assert.Equal(t, model.StatusLowStock, resp.StockStatus)
	// No movement was recorded: update is not a stock mutation path.
	assert.Empty(t, f.movements.rows)
}

func TestDeleteCascadesMovements(t *testing.T) {
	f := newLedgerFixture()
	item := seedItem(f, "ESS-013", 0, 5, decimal.NewFromFloat(4.00))
	other := seedItem(f, "ESS-014", 2, 5, decimal.NewFromFloat(1.00))

	adjust(t, f, item.ID, model.MovementIn, 6)
	adjust(t, f, other.ID, model.MovementIn, 1)

	require.NoError(t, f.svc.Delete(context.Background(), item.ID))

	require.Len(t, f.movements.rows, 1)
	assert.Equal(t, other.ID, f.movements.rows[0].InventoryID)

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalItems)
	assert.Equal(t, int64(3), stats.TotalUnits)
}

func TestGetByIDResolvesNameAndRecentMovements(t *testing.T) {
	f := newLedgerFixture()

	fragrance := &model.Fragrance{ID: uuid.New(), Name: "Oud Royale", Active: true}
	f.fragrances.fragrances[fragrance.ID] = fragrance

	fragranceID := fragrance.ID.String()
	created, err := f.svc.Create(context.Background(), dto.CreateInventoryRequest{
		SKU:          "ESS-015",
		FragranceID:  &fragranceID,
		CurrentStock: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Oud Royale", created.ProductName)

	id := uuid.MustParse(created.ID)
	adjust(t, f, id, model.MovementOut, 1)

	resp, err := f.svc.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Oud Royale", resp.ProductName)
	require.Len(t, resp.RecentMovements, 2)
	// Newest first.
	assert.Equal(t, -1, resp.RecentMovements[0].Quantity)
	assert.Equal(t, 4, resp.RecentMovements[1].Quantity)
}

func TestOrphanedItemReadsUnknown(t *testing.T) {
	f := newLedgerFixture()
	item := seedItem(f, "ESS-016", 1, 5, decimal.Zero)

	resp, err := f.svc.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Unknown", resp.ProductName)
}

// ── Stats ─────────────────────────────────────────────────────────────────────

func TestStatsAggregation(t *testing.T) {
	f := newLedgerFixture()
	seedItem(f, "ESS-020", 5, 10, decimal.NewFromFloat(2.00))
	seedItem(f, "ESS-021", 0, 10, decimal.NewFromFloat(10.00))

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalUnits)
	assert.Equal(t, "10", stats.TotalValue.String())
	assert.Equal(t, int64(2), stats.LowStockCount) // low-stock includes out-of-stock
	assert.Equal(t, int64(1), stats.OutOfStockCount)
	assert.Equal(t, int64(2), stats.TotalItems)
}

func TestStatsDecimalPrecision(t *testing.T) {
	f := newLedgerFixture()
	// 0.1 * 3 drifts in binary floating point; decimal must not.
	seedItem(f, "ESS-022", 3, 1, decimal.RequireFromString("0.10"))

	stats, err := f.svc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, stats.TotalValue.Equal(decimal.RequireFromString("0.30")),
		"got %s", stats.TotalValue)
}

// ── Movements list ────────────────────────────────────────────────────────────

func TestMovementsNewestFirstWithFilters(t *testing.T) {
	f := newLedgerFixture()
	a := seedItem(f, "ESS-030", 0, 5, decimal.Zero)
	b := seedItem(f, "ESS-031", 0, 5, decimal.Zero)

	adjust(t, f, a.ID, model.MovementIn, 10)
	adjust(t, f, a.ID, model.MovementOut, 4)
	adjust(t, f, b.ID, model.MovementIn, 2)
	adjust(t, f, a.ID, model.MovementAdjustment, 1)

	all, err := f.svc.ListMovements(context.Background(), dto.MovementFilter{Page: 1, Limit: 50})
	require.NoError(t, err)
	require.Len(t, all.Data, 4)
	assert.Equal(t, []int{1, 2, -4, 10}, []int{
		all.Data[0].Quantity, all.Data[1].Quantity, all.Data[2].Quantity, all.Data[3].Quantity,
	})

	byItem, err := f.svc.ListMovements(context.Background(), dto.MovementFilter{
		InventoryID: a.ID.String(), Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	require.Len(t, byItem.Data, 3)

	byKind, err := f.svc.ListMovements(context.Background(), dto.MovementFilter{
		Type: model.MovementIn, Page: 1, Limit: 50,
	})
	require.NoError(t, err)
	require.Len(t, byKind.Data, 2)
	for _, m := range byKind.Data {
		assert.Equal(t, model.MovementIn, m.Type)
	}
}
