package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"halalfinder/internal/cache"
	apperrors "halalfinder/internal/errors"
	"halalfinder/internal/model"
	"halalfinder/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService exposes profile operations.
type UserService interface {
	Profile(ctx context.Context, id uint) (*model.User, []model.Restaurant, error)
	UpdatePhone(ctx context.Context, id uint, phone string) (*model.User, error)
}

type userService struct {
	userRepo       repository.UserRepository
	restaurantRepo repository.RestaurantRepository
	cache          *cache.Client
}

// NewUserService builds a UserService with repositories and cache.
func NewUserService(userRepo repository.UserRepository, restaurantRepo repository.RestaurantRepository, cache *cache.Client) UserService {
	return &userService{
		userRepo:       userRepo,
		restaurantRepo: restaurantRepo,
		cache:          cache,
	}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// Profile returns the user record plus the listings they own. A user with no
// listings gets an empty slice, not an error.
func (s *userService) Profile(ctx context.Context, id uint) (*model.User, []model.Restaurant, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	restaurants, err := s.restaurantRepo.ListByOwner(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list restaurants: %w", err)
	}
	return user, restaurants, nil
}

// UpdatePhone changes the only mutable profile field and invalidates the
// cached record.
func (s *userService) UpdatePhone(ctx context.Context, id uint, phone string) (*model.User, error) {
	if _, err := s.getUser(ctx, id); err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdatePhone(ctx, id, phone); err != nil {
		return nil, fmt.Errorf("update phone: %w", err)
	}
	s.cache.Delete(ctx, s.cacheKey(id))

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return user, nil
}

func (s *userService) getUser(ctx context.Context, id uint) (*model.User, error) {
	var cached model.User
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	s.cache.SetJSON(ctx, s.cacheKey(id), user, userCacheTTL)
	return user, nil
}
