package repository

import (
	"context"
	"fmt"

	"moviehub/internal/http-api/models"

	"gorm.io/gorm"
)

// LoginRepository records one audit row per successful login.
type LoginRepository interface {
	Create(ctx context.Context, login *models.UserLogin) error
	ListRecent(ctx context.Context, userID string, limit int) ([]models.UserLogin, error)
}

type loginRepository struct {
	db *gorm.DB
}

func NewLoginRepository(db *gorm.DB) LoginRepository {
	return &loginRepository{db: db}
}

func (r *loginRepository) Create(ctx context.Context, login *models.UserLogin) error {
	if err := r.db.WithContext(ctx).Create(login).Error; err != nil {
		return fmt.Errorf("create login record: %w", err)
	}
	return nil
}

func (r *loginRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.UserLogin, error) {
	var logins []models.UserLogin
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_in_at desc").
		Limit(limit).
		Find(&logins).Error; err != nil {
		return nil, fmt.Errorf("list logins: %w", err)
	}
	return logins, nil
}
