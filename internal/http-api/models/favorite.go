package models

import "time"

// FavoriteMovie joins users to their favorite movies. Row presence is the
// favorite state; there is no boolean column to drift out of sync.
type FavoriteMovie struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_favorite"`
	MovieID   int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_user_favorite"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Movie *Movie `json:"movie,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}

func (FavoriteMovie) TableName() string {
	return "user_favorite_movies"
}
