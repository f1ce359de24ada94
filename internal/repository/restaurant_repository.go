package repository

import (
	"context"

	"gorm.io/gorm"

	"halalfinder/internal/model"
)

// RestaurantRepository defines listing persistence operations.
type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) error
	FindByPlaceID(ctx context.Context, placeID string) (*model.Restaurant, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]model.Restaurant, error)
}

type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository builds a GORM-backed repository.
func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	return r.db.WithContext(ctx).Create(restaurant).Error
}

func (r *restaurantRepository) FindByPlaceID(ctx context.Context, placeID string) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).Where("place_id = ?", placeID).First(&restaurant).Error; err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Restaurant, error) {
	restaurants := []model.Restaurant{}
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}
