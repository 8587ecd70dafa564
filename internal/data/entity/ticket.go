package entity

import "github.com/google/uuid"

// Ticket is a sold seat within a session. Tickets are created exclusively by
// Session.GenerateTicket; the buying user is stamped afterwards by the
// selling service.
type Ticket struct {
	Base
	SeatNumber int       `db:"seat_number"`
	HalfPrice  bool      `db:"half_price"`
	UserID     uuid.UUID `db:"user_id"`
	Session    *Session
}

// RestoreTicket rebuilds a ticket from persisted state. Repository use only;
// the session backreference is set during hydration.
func RestoreTicket(id uuid.UUID, seatNumber int, halfPrice bool, userID uuid.UUID) *Ticket {
	return &Ticket{
		Base:       Base{ID: id},
		SeatNumber: seatNumber,
		HalfPrice:  halfPrice,
		UserID:     userID,
	}
}
