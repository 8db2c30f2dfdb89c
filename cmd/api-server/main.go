package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"moviehub/database"
	"moviehub/internal/config"
	"moviehub/internal/http-api/handler"
	"moviehub/internal/http-api/middleware"
	"moviehub/internal/http-api/repository"
	"moviehub/internal/http-api/service"
	"moviehub/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	appLogger := logger.NewLogger(cfg)

	db, err := database.ConnectDB(cfg, appLogger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	cache := connectRedis(cfg, appLogger)

	// repositories
	movieRepo := repository.NewMovieRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	historyRepo := repository.NewHistoryRepository(db)
	userRepo := repository.NewUserRepository(db)
	loginRepo := repository.NewLoginRepository(db)

	// services
	movieSvc := service.NewMovieService(movieRepo, genreRepo, cfg.RecentWindowDays, nil)
	genreSvc := service.NewGenreService(genreRepo)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, movieRepo)
	historySvc := service.NewHistoryService(historyRepo, movieRepo)
	homeSvc := service.NewHomeService(movieRepo, cache, cfg.CacheTTL, appLogger)
	authSvc := service.NewAuthService(userRepo, loginRepo, cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerSecond, cfg.LoginRateBurst)
	authGroup := r.Group("/api/auth")
	authGroup.Use(loginLimiter.Middleware())
	handler.NewAuthHandler(authSvc, cfg.AccessTokenTTL).RegisterRoutes(authGroup)

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(authSvc))
	handler.NewHomeHandler(homeSvc).RegisterRoutes(api)
	handler.NewMovieHandler(movieSvc, favoriteSvc).RegisterRoutes(api)
	handler.NewUserMovieHandler(favoriteSvc, historySvc).RegisterRoutes(api)
	handler.NewGenreHandler(genreSvc).RegisterRoutes(api)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	appLogger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// connectRedis returns nil when redis is unreachable; the app runs without
// the homepage cache in that case.
func connectRedis(cfg *config.Config, logger *slog.Logger) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		logger.Warn("invalid redis url, caching disabled", "error", err)
		return nil
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, caching disabled", "error", err)
		return nil
	}
	return client
}
