package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"essencia/internal/apierror"
	"essencia/internal/dto"
	"essencia/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const statsCacheKey = "inventory:stats"

type InventoryHandler struct {
	svc      service.InventoryService
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewInventoryHandler(svc service.InventoryService, rdb *redis.Client, cacheTTL time.Duration) *InventoryHandler {
	return &InventoryHandler{svc: svc, rdb: rdb, cacheTTL: cacheTTL}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidateStatsCache(c.Request.Context())
	c.JSON(http.StatusCreated, resp)
}

func (h *InventoryHandler) List(c *gin.Context) {
	var filter dto.InventoryFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.UpdateInventoryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidateStatsCache(c.Request.Context())
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	h.invalidateStatsCache(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Adjust godoc
// @Summary Adjust stock with movement tracking
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Inventory item id"
// @Param body body dto.AdjustStockRequest true "Adjustment"
// @Success 200 {object} dto.InventoryResponse
// @Failure 404 {object} apierror.APIError
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/inventory/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return
	}
	var req dto.AdjustStockRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Adjust(c.Request.Context(), id, req, c.GetHeader("X-Operator"))
	if err != nil {
		respondError(c, err)
		return
	}
	h.invalidateStatsCache(c.Request.Context())
	c.JSON(http.StatusOK, resp)
}

// Stats serves the aggregate view through a short-TTL Redis cache. The
// endpoint promises a best-effort snapshot, so a slightly stale read is
// fine; adjustments bust the key anyway.
func (h *InventoryHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	if h.rdb != nil {
		if cached, err := h.rdb.Get(ctx, statsCacheKey).Bytes(); err == nil {
			var resp dto.InventoryStatsResponse
			if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
				c.JSON(http.StatusOK, resp)
				return
			}
		}
	}

	resp, err := h.svc.Stats(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	// Populate cache — best effort, ignore errors
	if h.rdb != nil {
		if b, jsonErr := json.Marshal(resp); jsonErr == nil {
			_ = h.rdb.Set(context.Background(), statsCacheKey, b, h.cacheTTL).Err()
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	var filter dto.MovementFilter
	if !bindQuery(c, &filter) {
		return
	}
	resp, err := h.svc.ListMovements(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) invalidateStatsCache(ctx context.Context) {
	if h.rdb == nil {
		return
	}
	_ = h.rdb.Del(ctx, statsCacheKey).Err()
}
