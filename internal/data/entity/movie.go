package entity

import (
	"fmt"
	"strings"
)

type Movie struct {
	Base
	Title           string `db:"title"`
	DurationMinutes int    `db:"duration_minutes"`
	NewRelease      bool   `db:"new_release"`
	Genre           *Genre
}

// NewMovie accepts a nil genre; requiredness of the genre reference is
// enforced by the movie service on the guarded creation path.
func NewMovie(title string, durationMinutes int, newRelease bool, genre *Genre) (*Movie, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrValidation)
	}

	return &Movie{
		Base:            newBase(),
		Title:           title,
		DurationMinutes: durationMinutes,
		NewRelease:      newRelease,
		Genre:           genre,
	}, nil
}
