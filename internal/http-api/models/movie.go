package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Rating values allowed for Movie.Rating.
const (
	RatingG    = "G"
	RatingPG   = "PG"
	RatingPG13 = "PG-13"
	RatingR    = "R"
	RatingNC17 = "NC-17"
)

type Movie struct {
	ID          int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	UUID        string  `json:"uuid" gorm:"uniqueIndex;size:36;not null"`
	Slug        string  `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	Title       string  `json:"title" gorm:"not null"`
	Description *string `json:"description,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
	TrailerURL  *string `json:"trailer_url,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
	Year        *int    `json:"year,omitempty"`
	Duration    *int    `json:"duration,omitempty"` // minutes
	Language    string  `json:"language" gorm:"default:'es'"`
	Rating      *string `json:"rating,omitempty" gorm:"size:5"`
	IsFeatured  bool    `json:"is_featured" gorm:"default:false"`
	IsPublished bool    `json:"is_published" gorm:"default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// associations
	Genres []Genre `json:"genres,omitempty" gorm:"many2many:genre_movie;constraint:OnDelete:CASCADE;"`
	Actors []Actor `json:"actors,omitempty" gorm:"many2many:actor_movie;constraint:OnDelete:CASCADE;"`
}

// BeforeCreate assigns the external UUID once; it never changes afterwards.
func (m *Movie) BeforeCreate(tx *gorm.DB) error {
	if m.UUID == "" {
		m.UUID = uuid.New().String()
	}
	return nil
}

func (Movie) TableName() string {
	return "movies"
}
