package service

import (
	"context"
	"fmt"
	"time"

	"essencia/internal/dto"
	"essencia/internal/model"
	"essencia/internal/repository"

	"github.com/google/uuid"
)

// AssetService manages media metadata. The files themselves live in external
// object storage; nothing here touches bytes.
type AssetService interface {
	Create(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.AssetResponse, error)
	List(ctx context.Context, filter dto.AssetFilter) (*dto.AssetListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateAssetRequest) (*dto.AssetResponse, error)
	UpdateUsage(ctx context.Context, id uuid.UUID, req dto.UpdateAssetUsageRequest) (*dto.AssetResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Stats(ctx context.Context) (*dto.AssetStatsResponse, error)
}

type assetService struct {
	repo repository.AssetRepository
}

func NewAssetService(repo repository.AssetRepository) AssetService {
	return &assetService{repo: repo}
}

func (s *assetService) Create(ctx context.Context, req dto.CreateAssetRequest) (*dto.AssetResponse, error) {
	a := &model.Asset{
		Name:        req.Name,
		Type:        req.Type,
		StoragePath: req.StoragePath,
		URL:         req.URL,
		SizeBytes:   req.SizeBytes,
		MimeType:    req.MimeType,
		UsedIn:      req.UsedIn,
	}
	if a.UsedIn == nil {
		a.UsedIn = []string{}
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return assetToResponse(a), nil
}

func (s *assetService) GetByID(ctx context.Context, id uuid.UUID) (*dto.AssetResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return assetToResponse(a), nil
}

func (s *assetService) List(ctx context.Context, filter dto.AssetFilter) (*dto.AssetListResponse, error) {
	assets, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	data := make([]dto.AssetResponse, 0, len(assets))
	for i := range assets {
		data = append(data, *assetToResponse(&assets[i]))
	}
	return &dto.AssetListResponse{
		Data:       data,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages(total, filter.Limit),
	}, nil
}

func (s *assetService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateAssetRequest) (*dto.AssetResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.URL != nil {
		a.URL = *req.URL
	}
	if req.MimeType != nil {
		a.MimeType = *req.MimeType
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return assetToResponse(a), nil
}

func (s *assetService) UpdateUsage(ctx context.Context, id uuid.UUID, req dto.UpdateAssetUsageRequest) (*dto.AssetResponse, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	a.UsedIn = req.UsedIn
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return assetToResponse(a), nil
}

func (s *assetService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFoundOr(err)
	}
	return s.repo.Delete(ctx, id)
}

func (s *assetService) Stats(ctx context.Context) (*dto.AssetStatsResponse, error) {
	agg, err := s.repo.Aggregate(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AssetStatsResponse{
		TotalAssets:    agg.TotalAssets,
		TotalSizeBytes: agg.TotalSizeBytes,
		ImageCount:     agg.ImageCount,
		VideoCount:     agg.VideoCount,
	}, nil
}

func assetToResponse(a *model.Asset) *dto.AssetResponse {
	usedIn := a.UsedIn
	if usedIn == nil {
		usedIn = []string{}
	}
	return &dto.AssetResponse{
		ID:          a.ID.String(),
		Name:        a.Name,
		Type:        a.Type,
		StoragePath: a.StoragePath,
		URL:         a.URL,
		SizeBytes:   a.SizeBytes,
		MimeType:    a.MimeType,
		UsedIn:      usedIn,
		CreatedAt:   a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
