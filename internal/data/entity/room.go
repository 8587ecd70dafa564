package entity

import "fmt"

type Room struct {
	Base
	Number   int `db:"number"`
	Capacity int `db:"capacity"`
}

func NewRoom(number, capacity int) (*Room, error) {
	if number <= 0 {
		return nil, fmt.Errorf("%w: room number must be positive", ErrValidation)
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: room capacity must be positive", ErrValidation)
	}

	return &Room{
		Base:     newBase(),
		Number:   number,
		Capacity: capacity,
	}, nil
}
