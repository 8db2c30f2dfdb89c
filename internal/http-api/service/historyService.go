package service

import (
	"context"
	"errors"

	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
)

var ErrInvalidProgress = errors.New("invalid watch progress")

// HistoryService records watch progress as an upsert on the unique
// (user, movie) pair.
type HistoryService interface {
	Record(ctx context.Context, userID string, movieID int64, progress int, completed bool) error
	List(ctx context.Context, userID string) ([]models.WatchHistory, error)
}

type historyService struct {
	repo      repository.HistoryRepository
	movieRepo *repository.MovieRepo
}

func NewHistoryService(repo repository.HistoryRepository, movieRepo *repository.MovieRepo) HistoryService {
	return &historyService{
		repo:      repo,
		movieRepo: movieRepo,
	}
}

func (s *historyService) Record(ctx context.Context, userID string, movieID int64, progress int, completed bool) error {
	if progress < 0 {
		return ErrInvalidProgress
	}

	movie, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return ErrMovieNotFound
	}

	// progress beyond the runtime is clamped, not rejected
	if movie.Duration != nil && progress > *movie.Duration {
		progress = *movie.Duration
	}

	entry := &models.WatchHistory{
		UserID:        userID,
		MovieID:       movieID,
		WatchProgress: progress,
		Completed:     completed,
	}
	return s.repo.Upsert(ctx, entry)
}

func (s *historyService) List(ctx context.Context, userID string) ([]models.WatchHistory, error) {
	return s.repo.List(ctx, userID)
}
