package models

import "time"

// UserSettings holds per-user preferences; one row is created together with
// the user at registration.
type UserSettings struct {
	ID        int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string  `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Language  string  `json:"language" gorm:"default:'es'"`
	Theme     string  `json:"theme" gorm:"default:'light'"` // light, dark, system

	// free-form preference map (favorite genres, playback settings, ...)
	Preferences []byte `json:"preferences,omitempty" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
