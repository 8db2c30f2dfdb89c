package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"moviehub/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

type HistoryRepository interface {
	Upsert(ctx context.Context, entry *models.WatchHistory) error
	Get(ctx context.Context, userID string, movieID int64) (*models.WatchHistory, error)
	List(ctx context.Context, userID string) ([]models.WatchHistory, error)
	Delete(ctx context.Context, userID string, movieID int64) error
}

type historyRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// Upsert keeps exactly one row per (user, movie). A concurrent insert racing
// past the pre-check trips the unique index; that conflict is recovered by
// retrying as an update and never reaches the caller.
func (r *historyRepository) Upsert(ctx context.Context, entry *models.WatchHistory) error {
	var existing models.WatchHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", entry.UserID, entry.MovieID).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		createErr := r.db.WithContext(ctx).Create(entry).Error
		if createErr == nil {
			return nil
		}
		if isUniqueViolation(createErr) {
			return r.update(ctx, entry)
		}
		return fmt.Errorf("create watch history: %w", createErr)
	} else if err != nil {
		return fmt.Errorf("find watch history: %w", err)
	}

	return r.update(ctx, entry)
}

func (r *historyRepository) update(ctx context.Context, entry *models.WatchHistory) error {
	err := r.db.WithContext(ctx).
		Model(&models.WatchHistory{}).
		Where("user_id = ? AND movie_id = ?", entry.UserID, entry.MovieID).
		Updates(map[string]any{
			"watch_progress": entry.WatchProgress,
			"completed":      entry.Completed,
			"updated_at":     time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("update watch history: %w", err)
	}
	return nil
}

func (r *historyRepository) Get(ctx context.Context, userID string, movieID int64) (*models.WatchHistory, error) {
	var entry models.WatchHistory
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *historyRepository) List(ctx context.Context, userID string) ([]models.WatchHistory, error) {
	var list []models.WatchHistory
	if err := r.db.WithContext(ctx).
		Preload("Movie").
		Preload("Movie.Genres").
		Where("user_id = ?", userID).
		Order("updated_at desc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list watch history: %w", err)
	}
	return list, nil
}

func (r *historyRepository) Delete(ctx context.Context, userID string, movieID int64) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.WatchHistory{}).Error; err != nil {
		return fmt.Errorf("delete watch history: %w", err)
	}
	return nil
}

// isUniqueViolation matches the postgres unique-constraint error. The sqlite
// driver used in tests reports constraint failures through gorm's translated
// ErrDuplicatedKey instead.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
