package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
	"moviehub/internal/http-api/service"
)

func TestGenreService_CreateDerivesSlug(t *testing.T) {
	db := setupDB(t)
	svc := service.NewGenreService(repository.NewGenreRepo(db))
	ctx := context.Background()

	g := &models.Genre{Name: "Science Fiction"}
	require.NoError(t, svc.Create(ctx, g))
	assert.Equal(t, "science-fiction", g.Slug)

	err := svc.Create(ctx, &models.Genre{Name: "   "})
	assert.Error(t, err)
}

func TestGenreService_GetAllSorted(t *testing.T) {
	db := setupDB(t)
	svc := service.NewGenreService(repository.NewGenreRepo(db))
	ctx := context.Background()

	for _, name := range []string{"Horror", "Action", "Drama"} {
		require.NoError(t, svc.Create(ctx, &models.Genre{Name: name}))
	}

	list, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Action", list[0].Name)
	assert.Equal(t, "Drama", list[1].Name)
	assert.Equal(t, "Horror", list[2].Name)
}
