package models

import "time"

// UserLogin is the audit row recorded on every successful login.
type UserLogin struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID     string    `json:"user_id" gorm:"type:uuid;index;not null"`
	LoggedInAt time.Time `json:"logged_in_at"`
	IPAddress  *string   `json:"ip_address,omitempty"`
	UserAgent  *string   `json:"user_agent,omitempty"`
	Platform   *string   `json:"platform,omitempty"`
	Browser    *string   `json:"browser,omitempty"`
	Device     *string   `json:"device,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (UserLogin) TableName() string {
	return "user_logins"
}
