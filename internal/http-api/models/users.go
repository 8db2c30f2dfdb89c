package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID              string     `gorm:"primaryKey;type:uuid" json:"id"`
	Name            string     `gorm:"not null" json:"name"`
	LastName        string     `json:"last_name"`
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`
	IsActive        bool       `gorm:"default:true" json:"is_active"`
	Password        string     `gorm:"column:password_hash;not null" json:"-"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	Settings *UserSettings `json:"settings,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
	Logins   []UserLogin   `json:"logins,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}
