package response

import "cinema-control/internal/data/entity"

type MovieResponse struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	DurationMinutes int           `json:"duration_minutes"`
	NewRelease      bool          `json:"new_release"`
	Genre           GenreResponse `json:"genre"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	resp := MovieResponse{
		ID:              movie.ID.String(),
		Title:           movie.Title,
		DurationMinutes: movie.DurationMinutes,
		NewRelease:      movie.NewRelease,
	}
	if movie.Genre != nil {
		resp.Genre = GenreToResponse(movie.Genre)
	}
	return resp
}
