package service

import (
	"context"

	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
)

// FavoriteService toggles favorite membership. The state is the join row
// itself; toggling twice always restores the original membership.
type FavoriteService interface {
	Toggle(ctx context.Context, userID string, movieID int64) (isFavorite bool, err error)
	IsFavorite(ctx context.Context, userID string, movieID int64) (bool, error)
	List(ctx context.Context, userID string) ([]models.FavoriteMovie, error)
}

type favoriteService struct {
	repo      repository.FavoriteRepository
	movieRepo *repository.MovieRepo
}

func NewFavoriteService(repo repository.FavoriteRepository, movieRepo *repository.MovieRepo) FavoriteService {
	return &favoriteService{
		repo:      repo,
		movieRepo: movieRepo,
	}
}

// Toggle removes the pairing when present and reports false; otherwise it
// inserts the pairing and reports true. Concurrent toggles for the same pair
// race at the store level; the unique index is the only arbiter.
func (s *favoriteService) Toggle(ctx context.Context, userID string, movieID int64) (bool, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		return false, ErrMovieNotFound
	}

	exists, err := s.repo.Exists(ctx, userID, movieID)
	if err != nil {
		return false, err
	}

	if exists {
		if err := s.repo.Remove(ctx, userID, movieID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.repo.Add(ctx, userID, movieID); err != nil {
		return false, err
	}
	return true, nil
}

func (s *favoriteService) IsFavorite(ctx context.Context, userID string, movieID int64) (bool, error) {
	return s.repo.Exists(ctx, userID, movieID)
}

func (s *favoriteService) List(ctx context.Context, userID string) ([]models.FavoriteMovie, error) {
	return s.repo.List(ctx, userID)
}
