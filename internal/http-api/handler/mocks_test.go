package handler_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"

	"moviehub/internal/http-api/middleware"
	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/service"
)

type mockMovieService struct {
	mock.Mock
}

func (m *mockMovieService) List(ctx context.Context, page int) ([]models.Movie, int64, error) {
	args := m.Called(ctx, page)
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieService) Featured(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieService) Recent(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *mockMovieService) Search(ctx context.Context, query string, page int) ([]models.Movie, int64, error) {
	args := m.Called(ctx, query, page)
	return args.Get(0).([]models.Movie), args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieService) ByGenre(ctx context.Context, genreSlug string, page int) (*models.Genre, []models.Movie, int64, error) {
	args := m.Called(ctx, genreSlug, page)
	var genre *models.Genre
	if v := args.Get(0); v != nil {
		genre = v.(*models.Genre)
	}
	var list []models.Movie
	if v := args.Get(1); v != nil {
		list = v.([]models.Movie)
	}
	return genre, list, args.Get(2).(int64), args.Error(3)
}

func (m *mockMovieService) GetBySlug(ctx context.Context, slug string) (*models.Movie, error) {
	args := m.Called(ctx, slug)
	if v := args.Get(0); v != nil {
		return v.(*models.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieService) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieService) Related(ctx context.Context, movie *models.Movie) ([]models.Movie, error) {
	args := m.Called(ctx, movie)
	if v := args.Get(0); v != nil {
		return v.([]models.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieService) Create(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

type mockFavoriteService struct {
	mock.Mock
}

func (m *mockFavoriteService) Toggle(ctx context.Context, userID string, movieID int64) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteService) IsFavorite(ctx context.Context, userID string, movieID int64) (bool, error) {
	args := m.Called(ctx, userID, movieID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFavoriteService) List(ctx context.Context, userID string) ([]models.FavoriteMovie, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.FavoriteMovie), args.Error(1)
}

type mockHistoryService struct {
	mock.Mock
}

func (m *mockHistoryService) Record(ctx context.Context, userID string, movieID int64, progress int, completed bool) error {
	args := m.Called(ctx, userID, movieID, progress, completed)
	return args.Error(0)
}

func (m *mockHistoryService) List(ctx context.Context, userID string) ([]models.WatchHistory, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.WatchHistory), args.Error(1)
}

type mockHomeService struct {
	mock.Mock
}

func (m *mockHomeService) Sections(ctx context.Context) (*service.HomeSections, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*service.HomeSections), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockGenreService struct {
	mock.Mock
}

func (m *mockGenreService) GetAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *mockGenreService) Create(ctx context.Context, g *models.Genre) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, name, lastName, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, name, lastName, email, password)
	if v := args.Get(0); v != nil {
		return v.(*models.User), args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string, meta service.LoginMeta) (string, *models.User, error) {
	args := m.Called(ctx, email, password, meta)
	if v := args.Get(1); v != nil {
		return args.String(0), v.(*models.User), args.Error(2)
	}
	return args.String(0), nil, args.Error(2)
}

func (m *mockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if v := args.Get(0); v != nil {
		return v.(*service.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

// newRouter builds a test engine; a non-empty userID simulates an
// authenticated request the way AuthMiddleware would.
func newRouter(userID string, register func(rg *gin.RouterGroup)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	if userID != "" {
		api.Use(func(c *gin.Context) {
			c.Set(middleware.ContextUserID, userID)
			c.Next()
		})
	}
	register(api)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
