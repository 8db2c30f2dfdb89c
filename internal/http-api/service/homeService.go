package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
)

const (
	homeCacheKey = "home:sections"

	homeRecentWindowDays = 14
	homePopularLimit     = 12
	homeAllLimit         = 20
)

// HomeSections is the bundle the homepage renders in one request.
type HomeSections struct {
	Featured []models.Movie `json:"featured"`
	Recent   []models.Movie `json:"recent"`
	Popular  []models.Movie `json:"popular"`
	All      []models.Movie `json:"all"`
}

type HomeService interface {
	Sections(ctx context.Context) (*HomeSections, error)
}

type homeService struct {
	movieRepo *repository.MovieRepo
	cache     *redis.Client // nil disables caching
	cacheTTL  time.Duration
	logger    *slog.Logger
}

func NewHomeService(movieRepo *repository.MovieRepo, cache *redis.Client, cacheTTL time.Duration, logger *slog.Logger) HomeService {
	return &homeService{
		movieRepo: movieRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Sections serves the homepage bundle from redis when possible and falls
// through to the database otherwise. Cache failures are logged and ignored;
// the homepage never breaks because redis is down.
func (s *homeService) Sections(ctx context.Context) (*HomeSections, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	featured, err := s.movieRepo.GetFeatured(ctx, FeaturedLimit)
	if err != nil {
		return nil, err
	}
	recent, err := s.movieRepo.GetRecent(ctx, homeRecentWindowDays, RecentLimit)
	if err != nil {
		return nil, err
	}
	popular, err := s.movieRepo.GetLatest(ctx, homePopularLimit)
	if err != nil {
		return nil, err
	}
	all, err := s.movieRepo.GetLatest(ctx, homeAllLimit)
	if err != nil {
		return nil, err
	}

	sections := &HomeSections{
		Featured: featured,
		Recent:   recent,
		Popular:  popular,
		All:      all,
	}
	s.toCache(ctx, sections)
	return sections, nil
}

func (s *homeService) fromCache(ctx context.Context) *HomeSections {
	if s.cache == nil {
		return nil
	}
	raw, err := s.cache.Get(ctx, homeCacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Warn("home cache read failed", "error", err)
		}
		return nil
	}
	var sections HomeSections
	if err := json.Unmarshal(raw, &sections); err != nil {
		s.logger.Warn("home cache payload invalid", "error", err)
		return nil
	}
	return &sections
}

func (s *homeService) toCache(ctx context.Context, sections *HomeSections) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(sections)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, homeCacheKey, raw, s.cacheTTL).Err(); err != nil {
		s.logger.Warn("home cache write failed", "error", err)
	}
}
