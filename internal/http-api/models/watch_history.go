package models

import "time"

// WatchHistory keeps one row per (user, movie) pair; re-watching updates the
// row in place instead of duplicating it.
type WatchHistory struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        string    `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_user_watch"`
	MovieID       int64     `json:"movie_id" gorm:"not null;uniqueIndex:idx_user_watch"`
	WatchProgress int       `json:"watch_progress" gorm:"default:0"` // minutes
	Completed     bool      `json:"completed" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Movie *Movie `json:"movie,omitempty" gorm:"constraint:OnDelete:CASCADE;"`
}

func (WatchHistory) TableName() string {
	return "user_watch_history"
}
