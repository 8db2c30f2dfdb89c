package models

import (
	"strings"
	"time"
)

type Actor struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Bio       *string   `json:"bio,omitempty"`
	PhotoURL  *string   `json:"photo_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Movies []Movie `json:"movies,omitempty" gorm:"many2many:actor_movie;"`
}

func (Actor) TableName() string {
	return "actors"
}

// Initials returns up to two uppercase initials for avatar fallbacks.
func (a Actor) Initials() string {
	var b strings.Builder
	for _, part := range strings.Fields(a.Name) {
		b.WriteString(strings.ToUpper(part[:1]))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

// MovieActor is the actor_movie join row; role_name carries the character
// played in that specific movie.
type MovieActor struct {
	ID       int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	MovieID  int64   `json:"movie_id" gorm:"not null;index"`
	ActorID  int64   `json:"actor_id" gorm:"not null;index"`
	RoleName *string `json:"role_name,omitempty"`
}

func (MovieActor) TableName() string {
	return "actor_movie"
}
