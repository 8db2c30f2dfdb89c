package repository

import (
	"context"
	"fmt"
	"time"

	"moviehub/internal/http-api/models"

	"gorm.io/gorm"
)

type MovieRepo struct {
	db *gorm.DB
}

func NewMovieRepo(db *gorm.DB) *MovieRepo {
	return &MovieRepo{db: db}
}

// published scopes every catalog read; unpublished movies are invisible to
// all of these queries.
func (r *MovieRepo) published(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.Movie{}).Where("movies.is_published = ?", true)
}

// GetAll returns one page of published movies, newest first, with genres and
// actors preloaded for the whole page.
func (r *MovieRepo) GetAll(ctx context.Context, page, pageSize int) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	if err := r.published(ctx).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count movies: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := r.published(ctx).
		Preload("Genres").
		Preload("Actors").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("list movies: %w", err)
	}
	return list, total, nil
}

// GetFeatured returns up to limit featured movies, newest first. No
// pagination; this feeds the homepage slider.
func (r *MovieRepo) GetFeatured(ctx context.Context, limit int) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.published(ctx).
		Where("is_featured = ?", true).
		Preload("Genres").
		Order("created_at desc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("featured movies: %w", err)
	}
	return list, nil
}

// GetRecent returns movies created within the last `days` days, newest first.
func (r *MovieRepo) GetRecent(ctx context.Context, days, limit int) ([]models.Movie, error) {
	var list []models.Movie
	since := time.Now().AddDate(0, 0, -days)
	if err := r.published(ctx).
		Where("created_at >= ?", since).
		Preload("Genres").
		Order("created_at desc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("recent movies: %w", err)
	}
	return list, nil
}

// GetLatest returns the newest published movies without a time window.
func (r *MovieRepo) GetLatest(ctx context.Context, limit int) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.published(ctx).
		Preload("Genres").
		Order("created_at desc").
		Limit(limit).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("latest movies: %w", err)
	}
	return list, nil
}

// Search performs a case-insensitive substring match over title OR
// description, ordered alphabetically by title. An empty query matches the
// whole published set. LOWER(...) LIKE keeps the query portable between
// postgres and the sqlite used in tests.
func (r *MovieRepo) Search(ctx context.Context, query string, page, pageSize int) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	base := r.published(ctx)
	if query != "" {
		pattern := "%" + query + "%"
		base = base.Where("LOWER(title) LIKE LOWER(?) OR LOWER(COALESCE(description,'')) LIKE LOWER(?)", pattern, pattern)
	}

	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count search: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := base.Session(&gorm.Session{}).
		Preload("Genres").
		Preload("Actors").
		Order("title asc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("search movies: %w", err)
	}
	return list, total, nil
}

// GetByGenre returns published movies carrying the given genre id, newest
// first, paginated.
func (r *MovieRepo) GetByGenre(ctx context.Context, genreID int64, page, pageSize int) ([]models.Movie, int64, error) {
	var list []models.Movie
	var total int64

	base := r.published(ctx).
		Joins("JOIN genre_movie gm ON gm.movie_id = movies.id").
		Where("gm.genre_id = ?", genreID)

	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count movies by genre: %w", err)
	}

	offset := (page - 1) * pageSize
	if err := base.Session(&gorm.Session{}).
		Preload("Genres").
		Preload("Actors").
		Order("created_at desc").
		Limit(pageSize).
		Offset(offset).
		Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("movies by genre: %w", err)
	}
	return list, total, nil
}

// GetBySlug resolves a single published movie with its genres and actors.
// Returns gorm.ErrRecordNotFound for unknown or unpublished slugs.
func (r *MovieRepo) GetBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		Preload("Genres").
		Preload("Actors").
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepo) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	var m models.Movie
	if err := r.db.WithContext(ctx).
		Where("is_published = ?", true).
		Preload("Genres").
		First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// RelatedCandidates returns every published movie (excluding excludeID) that
// shares at least one of the given genre ids. The caller shuffles and caps
// the result.
func (r *MovieRepo) RelatedCandidates(ctx context.Context, excludeID int64, genreIDs []int64) ([]models.Movie, error) {
	if len(genreIDs) == 0 {
		return nil, nil
	}
	var list []models.Movie
	sub := r.db.Table("genre_movie").Select("movie_id").Where("genre_id IN ?", genreIDs)
	if err := r.published(ctx).
		Where("movies.id <> ?", excludeID).
		Where("movies.id IN (?)", sub).
		Preload("Genres").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("related candidates: %w", err)
	}
	return list, nil
}

// PublishedExcept is the fallback pool: every published movie other than
// excludeID, with no genre constraint.
func (r *MovieRepo) PublishedExcept(ctx context.Context, excludeID int64) ([]models.Movie, error) {
	var list []models.Movie
	if err := r.published(ctx).
		Where("movies.id <> ?", excludeID).
		Preload("Genres").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("published movies: %w", err)
	}
	return list, nil
}

func (r *MovieRepo) Create(ctx context.Context, m *models.Movie) error {
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return fmt.Errorf("create movie: %w", err)
	}
	return nil
}

// SlugExists reports whether any movie (published or not) already uses slug.
func (r *MovieRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Movie{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
