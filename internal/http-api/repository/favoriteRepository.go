package repository

import (
	"context"
	"fmt"

	"moviehub/internal/http-api/models"

	"gorm.io/gorm"
)

type FavoriteRepository interface {
	Add(ctx context.Context, userID string, movieID int64) error
	Remove(ctx context.Context, userID string, movieID int64) error
	Exists(ctx context.Context, userID string, movieID int64) (bool, error)
	List(ctx context.Context, userID string) ([]models.FavoriteMovie, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Add(ctx context.Context, userID string, movieID int64) error {
	fav := &models.FavoriteMovie{
		UserID:  userID,
		MovieID: movieID,
	}
	if err := r.db.WithContext(ctx).Create(fav).Error; err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, userID string, movieID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.FavoriteMovie{})
	if result.Error != nil {
		return fmt.Errorf("remove favorite: %w", result.Error)
	}
	return nil
}

// Exists is the favorite state: row presence, nothing cached.
func (r *favoriteRepository) Exists(ctx context.Context, userID string, movieID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FavoriteMovie{}).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) List(ctx context.Context, userID string) ([]models.FavoriteMovie, error) {
	var favorites []models.FavoriteMovie
	if err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Movie.Genres").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
