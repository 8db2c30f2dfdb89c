package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
)

var (
	ErrMovieNotFound = errors.New("movie not found")
	ErrGenreNotFound = errors.New("genre not found")
)

const (
	// MoviePageSize is the fixed page size for catalog list views.
	MoviePageSize = 24
	// RelatedLimit bounds the related-movies result.
	RelatedLimit = 12
	// FeaturedLimit bounds the homepage featured strip.
	FeaturedLimit = 6
	// RecentLimit bounds the recent-movies strip.
	RecentLimit = 10
)

type MovieService interface {
	List(ctx context.Context, page int) ([]models.Movie, int64, error)
	Featured(ctx context.Context) ([]models.Movie, error)
	Recent(ctx context.Context) ([]models.Movie, error)
	Search(ctx context.Context, query string, page int) ([]models.Movie, int64, error)
	ByGenre(ctx context.Context, genreSlug string, page int) (*models.Genre, []models.Movie, int64, error)
	GetBySlug(ctx context.Context, slug string) (*models.Movie, error)
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	Related(ctx context.Context, movie *models.Movie) ([]models.Movie, error)
	Create(ctx context.Context, m *models.Movie) error
}

type movieService struct {
	repo      *repository.MovieRepo
	genreRepo *repository.GenreRepo

	recentWindowDays int

	// rng feeds the related-movies shuffle; injectable so tests can seed it.
	rng *rand.Rand
	mu  sync.Mutex
}

// NewMovieService builds the catalog service. rng may be nil, in which case a
// time-seeded source is used.
func NewMovieService(repo *repository.MovieRepo, genreRepo *repository.GenreRepo, recentWindowDays int, rng *rand.Rand) MovieService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if recentWindowDays <= 0 {
		recentWindowDays = 30
	}
	return &movieService{
		repo:             repo,
		genreRepo:        genreRepo,
		recentWindowDays: recentWindowDays,
		rng:              rng,
	}
}

func (s *movieService) List(ctx context.Context, page int) ([]models.Movie, int64, error) {
	return s.repo.GetAll(ctx, page, MoviePageSize)
}

func (s *movieService) Featured(ctx context.Context) ([]models.Movie, error) {
	return s.repo.GetFeatured(ctx, FeaturedLimit)
}

func (s *movieService) Recent(ctx context.Context) ([]models.Movie, error) {
	return s.repo.GetRecent(ctx, s.recentWindowDays, RecentLimit)
}

// Search treats an empty query as a match-all over the published set rather
// than an error.
func (s *movieService) Search(ctx context.Context, query string, page int) ([]models.Movie, int64, error) {
	return s.repo.Search(ctx, strings.TrimSpace(query), page, MoviePageSize)
}

func (s *movieService) ByGenre(ctx context.Context, genreSlug string, page int) (*models.Genre, []models.Movie, int64, error) {
	genre, err := s.genreRepo.GetBySlug(ctx, genreSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, ErrGenreNotFound
		}
		return nil, nil, 0, err
	}
	list, total, err := s.repo.GetByGenre(ctx, genre.ID, page, MoviePageSize)
	if err != nil {
		return nil, nil, 0, err
	}
	return genre, list, total, nil
}

func (s *movieService) GetBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	m, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

func (s *movieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return m, nil
}

// Related resolves up to RelatedLimit other published movies in two tiers:
// movies sharing at least one genre with the input, and, only when that set
// is empty, any other published movies. Both tiers are shuffled, so a
// non-empty catalog always yields a non-empty result even when genre
// relevance is lost in the fallback.
func (s *movieService) Related(ctx context.Context, movie *models.Movie) ([]models.Movie, error) {
	genreIDs := make([]int64, 0, len(movie.Genres))
	for _, g := range movie.Genres {
		genreIDs = append(genreIDs, g.ID)
	}

	candidates, err := s.repo.RelatedCandidates(ctx, movie.ID, genreIDs)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		candidates, err = s.repo.PublishedExcept(ctx, movie.ID)
		if err != nil {
			return nil, err
		}
	}

	s.shuffle(candidates)
	if len(candidates) > RelatedLimit {
		candidates = candidates[:RelatedLimit]
	}
	return candidates, nil
}

func (s *movieService) shuffle(list []models.Movie) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng.Shuffle(len(list), func(i, j int) {
		list[i], list[j] = list[j], list[i]
	})
}

func (s *movieService) Create(ctx context.Context, m *models.Movie) error {
	if strings.TrimSpace(m.Title) == "" {
		return errors.New("title is required")
	}

	// derive the slug from the title when absent; append a short uuid suffix
	// only when the derived slug is already taken
	if strings.TrimSpace(m.Slug) == "" {
		slug := GenerateSlug(m.Title)
		taken, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return err
		}
		if taken {
			slug = fmt.Sprintf("%s-%s", slug, uuid.New().String()[:8])
		}
		m.Slug = slug
	}

	return s.repo.Create(ctx, m)
}

var (
	nonAlnum     = regexp.MustCompile(`[^a-z0-9\-]+`)
	dashRuns     = regexp.MustCompile(`-{2,}`)
	defaultSlug  = "movie"
	slugMaxRunes = 200
)

// GenerateSlug turns a human-readable title into its URL-safe form:
// lowercase, spaces to hyphens, punctuation stripped, dash runs collapsed.
// "The Dark Knight: Rises" -> "the-dark-knight-rises".
func GenerateSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonAlnum.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return defaultSlug
	}
	if len(s) > slugMaxRunes {
		s = s[:slugMaxRunes]
	}
	return s
}
