package offer

import (
	"context"
	"strings"
)

// CreateRequest carries the fields needed to list a new offer.
type CreateRequest struct {
	OwnerID          string
	Title            string
	Description      string
	PricePerDayCents int64
	Street           string
	HouseNumber      string
	Postcode         string
	City             string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Offer, error)
	GetByID(ctx context.Context, id string) (*Offer, error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]*Offer, int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Offer, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}
	if req.PricePerDayCents <= 0 {
		return nil, ErrInvalidPrice
	}

	o := &Offer{
		OwnerID:          req.OwnerID,
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		PricePerDayCents: req.PricePerDayCents,
		Street:           req.Street,
		HouseNumber:      req.HouseNumber,
		Postcode:         req.Postcode,
		City:             req.City,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Offer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]*Offer, int, error) {
	return s.repo.List(ctx, Filter{
		OwnerID:  ownerID,
		Page:     page,
		PageSize: pageSize,
	})
}
