package models

import "time"

type Genre struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;size:200;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Movies []Movie `json:"movies,omitempty" gorm:"many2many:genre_movie;"`
}

func (Genre) TableName() string {
	return "genres"
}
