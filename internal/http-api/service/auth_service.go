package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"moviehub/internal/config"
	"moviehub/internal/http-api/models"
	"moviehub/internal/http-api/repository"
	"moviehub/internal/middleware/auth"
	"moviehub/internal/platform"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInactiveUser       = errors.New("account is inactive")
)

// dummy bcrypt hash compared on unknown emails so login timing does not leak
// account existence
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"

// Claims is the JWT payload carried by access tokens.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// LoginMeta carries the request attributes persisted in the login audit row.
type LoginMeta struct {
	IPAddress string
	UserAgent string
}

type AuthService interface {
	Register(ctx context.Context, name, lastName, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string, meta LoginMeta) (string, *models.User, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo       repository.UserRepository
	loginRepo      repository.LoginRepository
	jwtSecret      string
	accessTokenTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, loginRepo repository.LoginRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo:       userRepo,
		loginRepo:      loginRepo,
		jwtSecret:      cfg.JWTSecret,
		accessTokenTTL: cfg.AccessTokenTTL,
	}
}

// Register creates the user plus its default settings row and returns a
// freshly issued access token so registration starts a session.
func (s *authService) Register(ctx context.Context, name, lastName, email, password string) (*models.User, string, error) {
	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailInUse
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Name:     name,
		LastName: lastName,
		Email:    email,
		IsActive: true,
		Password: hashed,
	}
	settings := &models.UserSettings{
		Language:    "es",
		Theme:       "light",
		Preferences: []byte("{}"),
	}

	if err := s.userRepo.Create(ctx, user, settings); err != nil {
		return nil, "", err
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies the credentials, stamps last_login_at and records one audit
// row with platform details derived from the User-Agent.
func (s *authService) Login(ctx context.Context, email, password string, meta LoginMeta) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		auth.VerifyPassword(dummyHash, password)
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, ErrInactiveUser
	}

	token, err := s.generateAccessToken(user)
	if err != nil {
		return "", nil, err
	}

	now := time.Now()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err == nil {
		user.LastLoginAt = &now
	}
	s.recordLogin(ctx, user.ID, now, meta)

	return token, user, nil
}

// recordLogin is best-effort; a failed audit write never blocks the login.
func (s *authService) recordLogin(ctx context.Context, userID string, at time.Time, meta LoginMeta) {
	info := platform.Detect(meta.UserAgent)
	login := &models.UserLogin{
		UserID:     userID,
		LoggedInAt: at,
		Platform:   &info.Platform,
		Browser:    &info.Browser,
		Device:     &info.Device,
	}
	if meta.IPAddress != "" {
		login.IPAddress = &meta.IPAddress
	}
	if meta.UserAgent != "" {
		login.UserAgent = &meta.UserAgent
	}
	_ = s.loginRepo.Create(ctx, login)
}

func (s *authService) generateAccessToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
