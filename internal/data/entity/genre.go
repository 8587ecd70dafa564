package entity

import (
	"fmt"
	"strings"
)

type Genre struct {
	Base
	Description string `db:"description"`
}

func NewGenre(description string) (*Genre, error) {
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: description is required", ErrValidation)
	}

	return &Genre{
		Base:        newBase(),
		Description: description,
	}, nil
}
