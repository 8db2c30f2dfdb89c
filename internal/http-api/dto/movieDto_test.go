package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviehub/internal/http-api/dto"
	"moviehub/internal/http-api/models"
)

func TestFormatDuration(t *testing.T) {
	minutes := func(m int) *int { return &m }

	cases := []struct {
		name  string
		input *int
		want  string
	}{
		{"Nil", nil, ""},
		{"Zero", minutes(0), ""},
		{"Negative", minutes(-5), ""},
		{"UnderAnHour", minutes(49), "49m"},
		{"ExactHour", minutes(60), "1h 0m"},
		{"Typical", minutes(169), "2h 49m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dto.FormatDuration(tc.input))
		})
	}
}

func TestRatingColor(t *testing.T) {
	rating := func(r string) *string { return &r }

	cases := []struct {
		name  string
		input *string
		want  string
	}{
		{"Nil", nil, "gray"},
		{"G", rating(models.RatingG), "green"},
		{"PG", rating(models.RatingPG), "blue"},
		{"PG13", rating(models.RatingPG13), "yellow"},
		{"R", rating(models.RatingR), "orange"},
		{"NC17", rating(models.RatingNC17), "red"},
		{"Garbage", rating("XX"), "gray"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dto.RatingColor(tc.input))
		})
	}
}

func TestIsNew(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.True(t, dto.IsNew(now.AddDate(0, 0, -13), now))
	assert.True(t, dto.IsNew(now.Add(-14*24*time.Hour), now), "boundary counts as new")
	assert.False(t, dto.IsNew(now.Add(-14*24*time.Hour-time.Second), now))
	assert.False(t, dto.IsNew(now.AddDate(0, 0, -30), now))
}

func TestFromMovie(t *testing.T) {
	duration := 142
	rating := models.RatingPG13
	m := models.Movie{
		ID:          3,
		UUID:        "uuid-3",
		Slug:        "the-last-horizon",
		Title:       "The Last Horizon",
		Duration:    &duration,
		Rating:      &rating,
		Language:    "es",
		IsFeatured:  true,
		IsPublished: true,
		CreatedAt:   time.Now(),
		Genres:      []models.Genre{{ID: 1, Name: "Action", Slug: "action"}},
		Actors:      []models.Actor{{ID: 7, Name: "Jane Doe"}},
	}

	resp := dto.FromMovie(m)
	assert.Equal(t, "the-last-horizon", resp.Slug)
	assert.Equal(t, "2h 22m", resp.DurationHuman)
	assert.Equal(t, "yellow", resp.RatingColor)
	assert.True(t, resp.IsNew)
	require.Len(t, resp.Genres, 1)
	assert.Equal(t, "action", resp.Genres[0].Slug)
	require.Len(t, resp.Actors, 1)
	assert.Equal(t, "JD", resp.Actors[0].Initials)
}
