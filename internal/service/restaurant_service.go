package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "halalfinder/internal/errors"
	"halalfinder/internal/model"
	"halalfinder/internal/repository"
)

// AddRestaurantInput carries the fields for claiming a listing.
type AddRestaurantInput struct {
	Name               string
	Address            string
	PlaceID            string
	PhoneNumber        string
	Website            string
	HalalCertification string
}

// RestaurantService exposes listing operations.
type RestaurantService interface {
	Add(ctx context.Context, ownerID uint, in AddRestaurantInput) (*model.Restaurant, error)
}

type restaurantService struct {
	repo repository.RestaurantRepository
}

// NewRestaurantService creates a new restaurant service.
func NewRestaurantService(repo repository.RestaurantRepository) RestaurantService {
	return &restaurantService{repo: repo}
}

// Add claims a place for the caller. The unique index on place_id decides
// conflicts, so two concurrent claims of the same place yield one success
// and one conflict.
func (s *restaurantService) Add(ctx context.Context, ownerID uint, in AddRestaurantInput) (*model.Restaurant, error) {
	restaurant := &model.Restaurant{
		Name:               in.Name,
		Address:            in.Address,
		PlaceID:            in.PlaceID,
		OwnerID:            &ownerID,
		PhoneNumber:        in.PhoneNumber,
		Website:            in.Website,
		HalalCertification: in.HalalCertification,
	}
	if err := s.repo.Create(ctx, restaurant); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrPlaceAlreadyListed
		}
		return nil, fmt.Errorf("create restaurant: %w", err)
	}
	return restaurant, nil
}
