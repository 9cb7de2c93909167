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

type BannerService interface {
	Create(ctx context.Context, req dto.CreateBannerRequest) (*dto.BannerResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*dto.BannerResponse, error)
	List(ctx context.Context) ([]dto.BannerResponse, error)
	// Active returns enabled banners in display order, for the storefront.
	Active(ctx context.Context) ([]dto.BannerResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateBannerRequest) (*dto.BannerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateMarquee(ctx context.Context, req dto.CreateMarqueeRequest) (*dto.MarqueeResponse, error)
	ListMarquee(ctx context.Context) ([]dto.MarqueeResponse, error)
	ActiveMarquee(ctx context.Context) (*dto.MarqueeResponse, error)
	UpdateMarquee(ctx context.Context, id uuid.UUID, req dto.UpdateMarqueeRequest) (*dto.MarqueeResponse, error)
	DeleteMarquee(ctx context.Context, id uuid.UUID) error
}

type bannerService struct {
	banners repository.BannerRepository
	marquee repository.MarqueeRepository
}

func NewBannerService(banners repository.BannerRepository, marquee repository.MarqueeRepository) BannerService {
	return &bannerService{banners: banners, marquee: marquee}
}

func (s *bannerService) Create(ctx context.Context, req dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	b := &model.Banner{
		ImageURL:  req.ImageURL,
		Link:      req.Link,
		AltText:   req.AltText,
		SortOrder: req.SortOrder,
		Enabled:   true,
	}
	if req.Enabled != nil {
		b.Enabled = *req.Enabled
	}
	if err := s.banners.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return bannerToResponse(b), nil
}

func (s *bannerService) GetByID(ctx context.Context, id uuid.UUID) (*dto.BannerResponse, error) {
	b, err := s.banners.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return bannerToResponse(b), nil
}

func (s *bannerService) List(ctx context.Context) ([]dto.BannerResponse, error) {
	banners, err := s.banners.List(ctx)
	if err != nil {
		return nil, err
	}
	return bannersToResponses(banners), nil
}

func (s *bannerService) Active(ctx context.Context) ([]dto.BannerResponse, error) {
	banners, err := s.banners.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	return bannersToResponses(banners), nil
}

func (s *bannerService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	b, err := s.banners.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if req.ImageURL != nil {
		b.ImageURL = *req.ImageURL
	}
	if req.Link != nil {
		b.Link = *req.Link
	}
	if req.AltText != nil {
		b.AltText = *req.AltText
	}
	if req.SortOrder != nil {
		b.SortOrder = *req.SortOrder
	}
	if req.Enabled != nil {
		b.Enabled = *req.Enabled
	}
	if err := s.banners.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return bannerToResponse(b), nil
}

func (s *bannerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.banners.FindByID(ctx, id); err != nil {
		return notFoundOr(err)
	}
	return s.banners.Delete(ctx, id)
}

func (s *bannerService) CreateMarquee(ctx context.Context, req dto.CreateMarqueeRequest) (*dto.MarqueeResponse, error) {
	m := &model.MarqueeSetting{
		Text:    req.Text,
		Link:    req.Link,
		Speed:   req.Speed,
		Enabled: true,
	}
	if m.Speed == 0 {
		m.Speed = 30
	}
	if req.Enabled != nil {
		m.Enabled = *req.Enabled
	}
	if err := s.marquee.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return marqueeToResponse(m), nil
}

func (s *bannerService) ListMarquee(ctx context.Context) ([]dto.MarqueeResponse, error) {
	settings, err := s.marquee.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarqueeResponse, 0, len(settings))
	for i := range settings {
		out = append(out, *marqueeToResponse(&settings[i]))
	}
	return out, nil
}

func (s *bannerService) ActiveMarquee(ctx context.Context) (*dto.MarqueeResponse, error) {
	m, err := s.marquee.FindActive(ctx)
	if err != nil {
		return nil, notFoundOr(err)
	}
	return marqueeToResponse(m), nil
}

func (s *bannerService) UpdateMarquee(ctx context.Context, id uuid.UUID, req dto.UpdateMarqueeRequest) (*dto.MarqueeResponse, error) {
	m, err := s.marquee.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	if req.Text != nil {
		m.Text = *req.Text
	}
	if req.Link != nil {
		m.Link = *req.Link
	}
	if req.Speed != nil {
		m.Speed = *req.Speed
	}
	if req.Enabled != nil {
		m.Enabled = *req.Enabled
	}
	if err := s.marquee.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransient, err)
	}
	return marqueeToResponse(m), nil
}

func (s *bannerService) DeleteMarquee(ctx context.Context, id uuid.UUID) error {
	if _, err := s.marquee.FindByID(ctx, id); err != nil {
		return notFoundOr(err)
	}
	return s.marquee.Delete(ctx, id)
}

func bannerToResponse(b *model.Banner) *dto.BannerResponse {
	return &dto.BannerResponse{
		ID:        b.ID.String(),
		ImageURL:  b.ImageURL,
		Link:      b.Link,
		AltText:   b.AltText,
		SortOrder: b.SortOrder,
		Enabled:   b.Enabled,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func bannersToResponses(banners []model.Banner) []dto.BannerResponse {
	out := make([]dto.BannerResponse, 0, len(banners))
	for i := range banners {
		out = append(out, *bannerToResponse(&banners[i]))
	}
	return out
}

func marqueeToResponse(m *model.MarqueeSetting) *dto.MarqueeResponse {
	return &dto.MarqueeResponse{
		ID:        m.ID.String(),
		Text:      m.Text,
		Link:      m.Link,
		Speed:     m.Speed,
		Enabled:   m.Enabled,
		CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
