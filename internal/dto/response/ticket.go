package response

import (
	"time"

	"cinema-control/internal/data/entity"
)

type TicketResponse struct {
	ID         string                `json:"id"`
	SeatNumber int                   `json:"seat_number"`
	HalfPrice  bool                  `json:"half_price"`
	Session    TicketSessionResponse `json:"session"`
}

// TicketSessionResponse is the shallow session context a ticket holder sees.
type TicketSessionResponse struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"start_time"`
	MovieTitle string    `json:"movie_title"`
	RoomNumber int       `json:"room_number"`
}

func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:         ticket.ID.String(),
		SeatNumber: ticket.SeatNumber,
		HalfPrice:  ticket.HalfPrice,
	}
	if s := ticket.Session; s != nil {
		resp.Session = TicketSessionResponse{
			ID:        s.ID.String(),
			StartTime: s.StartTime,
		}
		if s.Movie != nil {
			resp.Session.MovieTitle = s.Movie.Title
		}
		if s.Room != nil {
			resp.Session.RoomNumber = s.Room.Number
		}
	}
	return resp
}
