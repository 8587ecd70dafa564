package request

type MovieRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=200"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0"`
	NewRelease      bool   `json:"new_release"`
	GenreID         string `json:"genre_id" validate:"required,uuid"`
}
