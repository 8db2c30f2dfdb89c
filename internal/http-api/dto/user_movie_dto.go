package dto

import (
	"time"

	"moviehub/internal/http-api/models"
)

// ToggleFavoriteResponse reports the state after the toggle, not before it.
type ToggleFavoriteResponse struct {
	Success    bool `json:"success"`
	IsFavorite bool `json:"is_favorite"`
}

type RecordHistoryRequest struct {
	WatchProgress int  `json:"watch_progress" binding:"min=0"`
	Completed     bool `json:"completed"`
}

type RecordHistoryResponse struct {
	Success bool `json:"success"`
}

type FavoriteItemResponse struct {
	Movie   MovieResponse `json:"movie"`
	AddedAt time.Time     `json:"added_at"`
}

type HistoryItemResponse struct {
	Movie         MovieResponse `json:"movie"`
	WatchProgress int           `json:"watch_progress"`
	Completed     bool          `json:"completed"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func FromFavorites(list []models.FavoriteMovie) []FavoriteItemResponse {
	resp := make([]FavoriteItemResponse, 0, len(list))
	for _, f := range list {
		item := FavoriteItemResponse{AddedAt: f.CreatedAt}
		if f.Movie != nil {
			item.Movie = FromMovie(*f.Movie)
		}
		resp = append(resp, item)
	}
	return resp
}

func FromHistory(list []models.WatchHistory) []HistoryItemResponse {
	resp := make([]HistoryItemResponse, 0, len(list))
	for _, h := range list {
		item := HistoryItemResponse{
			WatchProgress: h.WatchProgress,
			Completed:     h.Completed,
			UpdatedAt:     h.UpdatedAt,
		}
		if h.Movie != nil {
			item.Movie = FromMovie(*h.Movie)
		}
		resp = append(resp, item)
	}
	return resp
}
