package response

import (
	"time"

	"cinema-control/internal/data/entity"
)

type SessionResponse struct {
	ID             string        `json:"id"`
	StartTime      time.Time     `json:"start_time"`
	MaxTickets     int           `json:"max_tickets"`
	Closed         bool          `json:"closed"`
	TicketsSold    int           `json:"tickets_sold"`
	AvailableSeats []int         `json:"available_seats"`
	Movie          MovieResponse `json:"movie"`
	Room           RoomResponse  `json:"room"`
}

func SessionToResponse(session *entity.Session) SessionResponse {
	resp := SessionResponse{
		ID:             session.ID.String(),
		StartTime:      session.StartTime,
		MaxTickets:     session.MaxTickets,
		Closed:         session.Closed(),
		TicketsSold:    session.TicketCount(),
		AvailableSeats: session.AvailableSeats(),
	}
	if session.Movie != nil {
		resp.Movie = MovieToResponse(session.Movie)
	}
	if session.Room != nil {
		resp.Room = RoomToResponse(session.Room)
	}
	return resp
}
