package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/service"
)

type GenreHandler struct {
	svc          service.GenreService
	queryTimeout time.Duration
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{
		svc:          svc,
		queryTimeout: 5 * time.Second,
	}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/genres", h.List)
}

func (h *GenreHandler) List(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	genres, err := h.svc.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"genres": dto.FromGenres(genres)})
}
