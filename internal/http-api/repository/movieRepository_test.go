package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moviehub/database"
	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection so every query sees the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createGenre(t *testing.T, db *gorm.DB, name, slug string) models.Genre {
	t.Helper()
	g := models.Genre{Name: name, Slug: slug}
	require.NoError(t, db.Create(&g).Error)
	return g
}

func createMovie(t *testing.T, db *gorm.DB, title string, published bool, genres ...models.Genre) models.Movie {
	t.Helper()
	m := models.Movie{
		Title:       title,
		Slug:        fmt.Sprintf("%s-%d", title, time.Now().UnixNano()),
		IsPublished: published,
		Genres:      genres,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func TestMovieRepo_PublishedOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMovieRepo(db)
	ctx := context.Background()

	action := createGenre(t, db, "Action", "action")
	visible := createMovie(t, db, "Visible", true, action)
	hidden := createMovie(t, db, "Hidden", false, action)

	t.Run("GetAll", func(t *testing.T) {
		list, total, err := repo.GetAll(ctx, 1, 24)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, visible.ID, list[0].ID)
	})

	t.Run("Search", func(t *testing.T) {
		list, total, err := repo.Search(ctx, "hidden", 1, 24)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, list)
	})

	t.Run("GetByGenre", func(t *testing.T) {
		list, total, err := repo.GetByGenre(ctx, action.ID, 1, 24)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, visible.ID, list[0].ID)
	})

	t.Run("GetBySlug", func(t *testing.T) {
		_, err := repo.GetBySlug(ctx, hidden.Slug)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

		m, err := repo.GetBySlug(ctx, visible.Slug)
		require.NoError(t, err)
		assert.Equal(t, visible.ID, m.ID)
	})

	t.Run("GetByID", func(t *testing.T) {
		_, err := repo.GetByID(ctx, hidden.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("RelatedCandidates", func(t *testing.T) {
		list, err := repo.RelatedCandidates(ctx, visible.ID, []int64{action.ID})
		require.NoError(t, err)
		assert.Empty(t, list, "only an unpublished movie shares the genre")
	})

	t.Run("PublishedExcept", func(t *testing.T) {
		list, err := repo.PublishedExcept(ctx, visible.ID)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestMovieRepo_GetAllPreloadsAssociations(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMovieRepo(db)
	ctx := context.Background()

	drama := createGenre(t, db, "Drama", "drama")
	m := createMovie(t, db, "With Genre", true, drama)

	actor := models.Actor{Name: "Jane Doe"}
	require.NoError(t, db.Create(&actor).Error)
	require.NoError(t, db.Create(&models.MovieActor{MovieID: m.ID, ActorID: actor.ID}).Error)

	list, _, err := repo.GetAll(ctx, 1, 24)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].Genres, 1)
	assert.Equal(t, "Drama", list[0].Genres[0].Name)
	require.Len(t, list[0].Actors, 1)
	assert.Equal(t, "Jane Doe", list[0].Actors[0].Name)
}

func TestMovieRepo_Search(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMovieRepo(db)
	ctx := context.Background()

	createMovie(t, db, "The Dark Knight", true)
	createMovie(t, db, "Alien", true)
	desc := "a knight errant wanders"
	m := models.Movie{Title: "Quixote", Slug: "quixote", IsPublished: true, Description: &desc}
	require.NoError(t, db.Create(&m).Error)

	t.Run("UniqueTitleMatch", func(t *testing.T) {
		list, total, err := repo.Search(ctx, "alien", 1, 24)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, list, 1)
		assert.Equal(t, "Alien", list[0].Title)
	})

	t.Run("MatchesDescriptionToo", func(t *testing.T) {
		_, total, err := repo.Search(ctx, "knight", 1, 24)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("NoMatch", func(t *testing.T) {
		list, total, err := repo.Search(ctx, "zzz-nothing", 1, 24)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, list)
	})

	t.Run("EmptyQueryReturnsAll", func(t *testing.T) {
		_, total, err := repo.Search(ctx, "", 1, 24)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("OrderedByTitle", func(t *testing.T) {
		list, _, err := repo.Search(ctx, "", 1, 24)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "Alien", list[0].Title)
		assert.Equal(t, "Quixote", list[1].Title)
		assert.Equal(t, "The Dark Knight", list[2].Title)
	})
}

func TestMovieRepo_RelatedCandidates(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMovieRepo(db)
	ctx := context.Background()

	action := createGenre(t, db, "Action", "action")
	drama := createGenre(t, db, "Drama", "drama")

	a := createMovie(t, db, "A", true, action)
	b := createMovie(t, db, "B", true, action)
	createMovie(t, db, "C", true, drama)

	t.Run("SharedGenre", func(t *testing.T) {
		list, err := repo.RelatedCandidates(ctx, a.ID, []int64{action.ID})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, b.ID, list[0].ID)
	})

	t.Run("NoDuplicatesOnMultiGenreOverlap", func(t *testing.T) {
		multi := createMovie(t, db, "Multi", true, action, drama)
		list, err := repo.RelatedCandidates(ctx, a.ID, []int64{action.ID, drama.ID})
		require.NoError(t, err)

		seen := map[int64]int{}
		for _, m := range list {
			seen[m.ID]++
		}
		assert.Equal(t, 1, seen[multi.ID])
		for id := range seen {
			assert.NotEqual(t, a.ID, id)
		}
	})

	t.Run("FallbackPoolExcludesInput", func(t *testing.T) {
		list, err := repo.PublishedExcept(ctx, a.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, list)
		for _, m := range list {
			assert.NotEqual(t, a.ID, m.ID)
		}
	})
}

func TestMovieRepo_GetRecentWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMovieRepo(db)
	ctx := context.Background()

	fresh := createMovie(t, db, "Fresh", true)
	old := createMovie(t, db, "Old", true)
	// push the old movie outside the window
	require.NoError(t, db.Model(&models.Movie{}).
		Where("id = ?", old.ID).
		Update("created_at", time.Now().AddDate(0, 0, -45)).Error)

	list, err := repo.GetRecent(ctx, 30, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, fresh.ID, list[0].ID)
}

func TestMovieRepo_GetFeatured(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMovieRepo(db)
	ctx := context.Background()

	m := models.Movie{Title: "Star", Slug: "star", IsPublished: true, IsFeatured: true}
	require.NoError(t, db.Create(&m).Error)
	createMovie(t, db, "Plain", true)

	list, err := repo.GetFeatured(ctx, 6)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, m.ID, list[0].ID)
}

func TestMovieRepo_Pagination(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewMovieRepo(db)
	ctx := context.Background()

	for i := 0; i < 30; i++ {
		createMovie(t, db, fmt.Sprintf("Movie %02d", i), true)
	}

	page1, total, err := repo.GetAll(ctx, 1, 24)
	require.NoError(t, err)
	assert.Equal(t, int64(30), total)
	assert.Len(t, page1, 24)

	page2, _, err := repo.GetAll(ctx, 2, 24)
	require.NoError(t, err)
	assert.Len(t, page2, 6)
}
