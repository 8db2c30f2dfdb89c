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

// UserMovieHandler owns the user-movie relations: favorite toggling, watch
// history recording and the "my lists" reads.
type UserMovieHandler struct {
	favoriteSvc  service.FavoriteService
	historySvc   service.HistoryService
	queryTimeout time.Duration
}

func NewUserMovieHandler(favoriteSvc service.FavoriteService, historySvc service.HistoryService) *UserMovieHandler {
	return &UserMovieHandler{
		favoriteSvc:  favoriteSvc,
		historySvc:   historySvc,
		queryTimeout: 5 * time.Second,
	}
}

func (h *UserMovieHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/movies/:movie_id/favorite", h.ToggleFavorite)
	rg.POST("/movies/:movie_id/history", h.RecordHistory)
	rg.GET("/me/favorites", h.ListFavorites)
	rg.GET("/me/history", h.ListHistory)
}

func (h *UserMovieHandler) ToggleFavorite(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie_id"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	isFavorite, err := h.favoriteSvc.Toggle(ctx, userID, movieID)
	if err != nil {
		if errors.Is(err, service.ErrMovieNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToggleFavoriteResponse{
		Success:    true,
		IsFavorite: isFavorite,
	})
}

func (h *UserMovieHandler) RecordHistory(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	movieID, err := strconv.ParseInt(c.Param("movie_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movie_id"})
		return
	}

	// an empty body is a bare "watched" ping with zero progress
	var req dto.RecordHistoryRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	if err := h.historySvc.Record(ctx, userID, movieID, req.WatchProgress, req.Completed); err != nil {
		switch {
		case errors.Is(err, service.ErrMovieNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "movie not found"})
		case errors.Is(err, service.ErrInvalidProgress):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, dto.RecordHistoryResponse{Success: true})
}

func (h *UserMovieHandler) ListFavorites(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	favorites, err := h.favoriteSvc.List(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := dto.FromFavorites(favorites)
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

func (h *UserMovieHandler) ListHistory(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	history, err := h.historySvc.List(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := dto.FromHistory(history)
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}
