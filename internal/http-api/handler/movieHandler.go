package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/middleware"
	"moviehub/internal/http-api/service"
)

type MovieHandler struct {
	svc          service.MovieService
	favoriteSvc  service.FavoriteService
	queryTimeout time.Duration
}

func NewMovieHandler(svc service.MovieService, favoriteSvc service.FavoriteService) *MovieHandler {
	return &MovieHandler{
		svc:          svc,
		favoriteSvc:  favoriteSvc,
		queryTimeout: 5 * time.Second,
	}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/movies", h.List)
	rg.GET("/movies/search", h.Search)
	rg.GET("/movies/genre/:genre_slug", h.ByGenre)
	rg.GET("/movies/:movie_slug", h.Show)
	rg.GET("/watch/:movie_slug", h.Watch)
}

func parsePage(c *gin.Context) int {
	page := 1
	if p := c.Query("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil && parsed > 0 {
			page = parsed
		}
	}
	return page
}

func (h *MovieHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	page := parsePage(c)
	list, total, err := h.svc.List(ctx, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedMoviesResponse(
		dto.FromMovies(list), "/api/movies", page, service.MoviePageSize, total))
}

// Search matches a substring of title or description; an empty q returns the
// whole published set rather than failing.
func (h *MovieHandler) Search(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	query := c.Query("q")
	page := parsePage(c)
	list, total, err := h.svc.Search(ctx, query, page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := dto.NewPaginatedMoviesResponse(
		dto.FromMovies(list), "/api/movies/search?q="+query, page, service.MoviePageSize, total)
	c.JSON(http.StatusOK, gin.H{
		"movies": resp,
		"query":  query,
	})
}

func (h *MovieHandler) ByGenre(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	slug := c.Param("genre_slug")
	page := parsePage(c)
	genre, list, total, err := h.svc.ByGenre(ctx, slug, page)
	if err != nil {
		if errors.Is(err, service.ErrGenreNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "genre not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := dto.NewPaginatedMoviesResponse(
		dto.FromMovies(list), "/api/movies/genre/"+slug, page, service.MoviePageSize, total)
	c.JSON(http.StatusOK, gin.H{
		"genre":  dto.FromGenre(*genre),
		"movies": resp,
	})
}

// Show returns the movie detail with its related movies and the caller's
// favorite state.
func (h *MovieHandler) Show(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	movie, err := h.svc.GetBySlug(ctx, c.Param("movie_slug"))
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	related, err := h.svc.Related(ctx, movie)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	isFavorite := false
	if userID, ok := middleware.CurrentUserID(c); ok {
		if fav, err := h.favoriteSvc.IsFavorite(ctx, userID, movie.ID); err == nil {
			isFavorite = fav
		}
	}

	resp := dto.MovieDetailResponse{
		MovieResponse: dto.FromMovie(*movie),
		VideoURL:      movie.VideoURL,
		IsFavorite:    isFavorite,
		Related:       dto.FromMovies(related),
	}
	c.JSON(http.StatusOK, resp)
}

// Watch serves the player payload; unpublished and unknown slugs both 404.
func (h *MovieHandler) Watch(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	movie, err := h.svc.GetBySlug(ctx, c.Param("movie_slug"))
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.WatchResponse{
		MovieResponse: dto.FromMovie(*movie),
		VideoURL:      movie.VideoURL,
	})
}
