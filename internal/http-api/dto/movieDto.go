package dto

import (
	"fmt"
	"time"

	"moviehub/internal/http-api/models"
)

// newWindow is how long a movie counts as "new" after being added.
const newWindow = 14 * 24 * time.Hour

// MovieResponse is the catalog card shape. is_new, duration_human and
// rating_color are derived from stored fields at response time and are never
// persisted.
type MovieResponse struct {
	ID          int64   `json:"id"`
	UUID        string  `json:"uuid"`
	Slug        string  `json:"slug"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	CoverImage  *string `json:"cover_image,omitempty"`
	TrailerURL  *string `json:"trailer_url,omitempty"`
	Year        *int    `json:"year,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Language    string  `json:"language"`
	Rating      *string `json:"rating,omitempty"`
	IsFeatured  bool    `json:"is_featured"`

	IsNew         bool   `json:"is_new"`
	DurationHuman string `json:"duration_human,omitempty"`
	RatingColor   string `json:"rating_color"`

	Genres    []GenreResponse `json:"genres,omitempty"`
	Actors    []ActorResponse `json:"actors,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// MovieDetailResponse extends the card with playback data, related movies
// and the caller's favorite state.
type MovieDetailResponse struct {
	MovieResponse
	VideoURL   *string         `json:"video_url,omitempty"`
	IsFavorite bool            `json:"is_favorite"`
	Related    []MovieResponse `json:"related_movies"`
}

// WatchResponse is the payload for the player page.
type WatchResponse struct {
	MovieResponse
	VideoURL *string `json:"video_url,omitempty"`
}

type ActorResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	PhotoURL *string `json:"photo_url,omitempty"`
	Initials string  `json:"initials"`
}

func FromMovie(m models.Movie) MovieResponse {
	resp := MovieResponse{
		ID:            m.ID,
		UUID:          m.UUID,
		Slug:          m.Slug,
		Title:         m.Title,
		Description:   m.Description,
		CoverImage:    m.CoverImage,
		TrailerURL:    m.TrailerURL,
		Year:          m.Year,
		Duration:      m.Duration,
		Language:      m.Language,
		Rating:        m.Rating,
		IsFeatured:    m.IsFeatured,
		IsNew:         IsNew(m.CreatedAt, time.Now()),
		DurationHuman: FormatDuration(m.Duration),
		RatingColor:   RatingColor(m.Rating),
		CreatedAt:     m.CreatedAt,
	}
	for _, g := range m.Genres {
		resp.Genres = append(resp.Genres, FromGenre(g))
	}
	for _, a := range m.Actors {
		resp.Actors = append(resp.Actors, ActorResponse{
			ID:       a.ID,
			Name:     a.Name,
			PhotoURL: a.PhotoURL,
			Initials: a.Initials(),
		})
	}
	return resp
}

func FromMovies(list []models.Movie) []MovieResponse {
	resp := make([]MovieResponse, 0, len(list))
	for _, m := range list {
		resp = append(resp, FromMovie(m))
	}
	return resp
}

// IsNew reports whether the movie was added within the last two weeks.
func IsNew(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= newWindow
}

// FormatDuration renders minutes as "2h 49m" (or "49m" under an hour).
func FormatDuration(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return ""
	}
	h := *minutes / 60
	m := *minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// RatingColor maps the MPAA rating to its display color.
func RatingColor(rating *string) string {
	if rating == nil {
		return "gray"
	}
	switch *rating {
	case models.RatingG:
		return "green"
	case models.RatingPG:
		return "blue"
	case models.RatingPG13:
		return "yellow"
	case models.RatingR:
		return "orange"
	case models.RatingNC17:
		return "red"
	}
	return "gray"
}
