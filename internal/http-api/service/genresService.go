package service

import (
	"context"
	"errors"
	"strings"

	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
)

type GenreService interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	Create(ctx context.Context, g *models.Genre) error
}

type genreService struct {
	repo *repository.GenreRepo
}

func NewGenreService(repo *repository.GenreRepo) GenreService {
	return &genreService{repo: repo}
}

func (s *genreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	return s.repo.GetAll(ctx)
}

func (s *genreService) Create(ctx context.Context, g *models.Genre) error {
	if strings.TrimSpace(g.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(g.Slug) == "" {
		g.Slug = GenerateSlug(g.Name)
	}
	return s.repo.Create(ctx, g)
}
