package dto

import (
	"time"

	"github.com/country-explorer/internal/domain"
)

// FavoriteDTO - избранная страна с метаданными
type FavoriteDTO struct {
	Code    string    `json:"code"`
	AddedAt time.Time `json:"added_at"`
	Notes   string    `json:"notes,omitempty"`
}

type FavoritesResponse struct {
	Favorites []FavoriteDTO `json:"favorites"`
	Total     int           `json:"total"`
}

type ToggleResponse struct {
	Code      string `json:"code"`
	Favorited bool   `json:"favorited"`
}

type AddFavoriteRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=500"`
}

type NoteRequest struct {
	Note string `json:"note" validate:"required,max=500"`
}

type RecentResponse struct {
	Codes []string `json:"codes"`
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// ConvertFavorites собирает DTO в порядке, заданном кодами
func ConvertFavorites(state *domain.FavoritesState, codes []string) []FavoriteDTO {
	favorites := make([]FavoriteDTO, 0, len(codes))
	for _, code := range codes {
		meta, ok := state.Favorites[code]
		if !ok {
			continue
		}
		favorites = append(favorites, FavoriteDTO{
			Code:    code,
			AddedAt: meta.AddedAt,
			Notes:   meta.Notes,
		})
	}
	return favorites
}
