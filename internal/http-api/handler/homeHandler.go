package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/service"
)

type HomeHandler struct {
	svc          service.HomeService
	queryTimeout time.Duration
}

func NewHomeHandler(svc service.HomeService) *HomeHandler {
	return &HomeHandler{
		svc:          svc,
		queryTimeout: 5 * time.Second,
	}
}

func (h *HomeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/home", h.Index)
}

func (h *HomeHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.queryTimeout)
	defer cancel()

	sections, err := h.svc.Sections(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"featured_movies": dto.FromMovies(sections.Featured),
		"recent_movies":   dto.FromMovies(sections.Recent),
		"popular_movies":  dto.FromMovies(sections.Popular),
		"all_movies":      dto.FromMovies(sections.All),
	})
}
