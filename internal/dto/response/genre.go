package response

import "cinema-control/internal/data/entity"

type GenreResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Helper converter
func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{
		ID:          genre.ID.String(),
		Description: genre.Description,
	}
}
