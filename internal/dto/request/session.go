package request

import "time"

type SessionRequest struct {
	StartTime  time.Time `json:"start_time" validate:"required"`
	MaxTickets int       `json:"max_tickets" validate:"required,gt=0"`
	MovieID    string    `json:"movie_id" validate:"required,uuid"`
	RoomID     string    `json:"room_id" validate:"required,uuid"`
}

// SessionUpdateRequest carries the only two fields an edit may change.
type SessionUpdateRequest struct {
	StartTime  time.Time `json:"start_time" validate:"required"`
	MaxTickets int       `json:"max_tickets" validate:"required,gt=0"`
}

type SellTicketRequest struct {
	SeatNumber int  `json:"seat_number" validate:"required,gt=0"`
	HalfPrice  bool `json:"half_price"`
}
