package room

import (
	"context"
	"strings"

	"github.com/averyhsu/hotel-booking-backend/internal/pkg/money"
)

type CreateRequest struct {
	Number        string
	Type          string
	PricePerNight string
	Capacity      int
	Amenities     []string
	Description   *string
}

type UpdateRequest struct {
	Number        *string
	Type          *string
	PricePerNight *string
	Capacity      *int
	Status        *string
	Amenities     *[]string
	ImageIDs      *[]string
	Description   *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	number := strings.TrimSpace(req.Number)
	if number == "" {
		return nil, ErrNumberRequired
	}
	if !ValidType(Type(req.Type)) {
		return nil, ErrInvalidType
	}
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	price, err := money.ParseCents(req.PricePerNight)
	if err != nil || price < 0 {
		return nil, ErrInvalidPrice
	}

	r := &Room{
		Number:        number,
		Type:          Type(req.Type),
		PricePerNight: money.FormatCents(price),
		Capacity:      req.Capacity,
		Status:        StatusAvailable,
		Amenities:     req.Amenities,
		Description:   req.Description,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		number := strings.TrimSpace(*req.Number)
		if number == "" {
			return nil, ErrNumberRequired
		}
		r.Number = number
	}
	if req.Type != nil {
		if !ValidType(Type(*req.Type)) {
			return nil, ErrInvalidType
		}
		r.Type = Type(*req.Type)
	}
	if req.PricePerNight != nil {
		price, err := money.ParseCents(*req.PricePerNight)
		if err != nil || price < 0 {
			return nil, ErrInvalidPrice
		}
		r.PricePerNight = money.FormatCents(price)
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		r.Capacity = *req.Capacity
	}
	if req.Status != nil {
		if !ValidStatus(Status(*req.Status)) {
			return nil, ErrInvalidStatus
		}
		r.Status = Status(*req.Status)
	}
	if req.Amenities != nil {
		r.Amenities = *req.Amenities
	}
	if req.ImageIDs != nil {
		r.ImageIDs = *req.ImageIDs
	}
	if req.Description != nil {
		r.Description = req.Description
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
