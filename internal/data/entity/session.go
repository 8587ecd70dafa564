package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session is the aggregate root for one scheduled screening. It is the sole
// authority over seat allocation and lifecycle: tickets are created only
// through GenerateTicket and the backing collection is never handed out
// mutably.
type Session struct {
	Base
	StartTime  time.Time `db:"start_time"`
	MaxTickets int       `db:"max_tickets"`
	Movie      *Movie
	Room       *Room
	UserID     uuid.UUID `db:"user_id"`

	closed  bool
	tickets []*Ticket
}

func NewSession(startTime time.Time, maxTickets int, movie *Movie, room *Room) (*Session, error) {
	if maxTickets <= 0 {
		return nil, fmt.Errorf("%w: maximum tickets must be positive", ErrValidation)
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie is required", ErrValidation)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room is required", ErrValidation)
	}

	return &Session{
		Base:       newBase(),
		StartTime:  startTime,
		MaxTickets: maxTickets,
		Movie:      movie,
		Room:       room,
	}, nil
}

// RestoreSession rebuilds a session from persisted state. Repository use only.
func RestoreSession(
	id uuid.UUID,
	startTime time.Time,
	maxTickets int,
	movie *Movie,
	room *Room,
	userID uuid.UUID,
	closed bool,
	createdAt, updatedAt time.Time,
) *Session {
	return &Session{
		Base:       Base{ID: id, CreatedAt: createdAt, UpdatedAt: updatedAt},
		StartTime:  startTime,
		MaxTickets: maxTickets,
		Movie:      movie,
		Room:       room,
		UserID:     userID,
		closed:     closed,
	}
}

// HydrateTickets attaches persisted tickets, binding each back to this
// session. Repository use only; replaces whatever is currently attached.
func (s *Session) HydrateTickets(tickets []*Ticket) {
	s.tickets = make([]*Ticket, len(tickets))
	for i, t := range tickets {
		t.Session = s
		s.tickets[i] = t
	}
}

// GenerateTicket allocates a seat. Preconditions: the session is open, the
// seat is within [1, MaxTickets], the seat is free and the session is not
// full. The new ticket is appended in insertion order and returned.
func (s *Session) GenerateTicket(seatNumber int, halfPrice bool) (*Ticket, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if seatNumber < 1 || seatNumber > s.MaxTickets {
		return nil, fmt.Errorf("%w: seat %d must be between 1 and %d", ErrSeatOutOfRange, seatNumber, s.MaxTickets)
	}
	if s.seatTaken(seatNumber) {
		return nil, fmt.Errorf("%w: seat %d", ErrSeatTaken, seatNumber)
	}
	if len(s.tickets) >= s.MaxTickets {
		return nil, ErrSessionFull
	}

	ticket := &Ticket{
		Base:       newBase(),
		SeatNumber: seatNumber,
		HalfPrice:  halfPrice,
		Session:    s,
	}
	s.tickets = append(s.tickets, ticket)

	return ticket, nil
}

// AvailableSeats returns the ascending seat numbers in [1, MaxTickets] not
// yet taken. Recomputed on every call since the ticket set can change.
func (s *Session) AvailableSeats() []int {
	available := make([]int, 0, s.MaxTickets-len(s.tickets))
	for seat := 1; seat <= s.MaxTickets; seat++ {
		if !s.seatTaken(seat) {
			available = append(available, seat)
		}
	}
	return available
}

func (s *Session) AvailableSeatCount() int {
	return s.MaxTickets - len(s.tickets)
}

// Close transitions the session to closed. Closing an already-closed
// session is a no-op.
func (s *Session) Close() {
	s.closed = true
}

func (s *Session) Closed() bool {
	return s.closed
}

// ApplyEdit copies start time and maximum tickets from other. Identity,
// movie, room, the closed flag and sold tickets are untouched; this is the
// only mutation path for those two fields after construction.
func (s *Session) ApplyEdit(other *Session) {
	s.StartTime = other.StartTime
	s.MaxTickets = other.MaxTickets
}

// Tickets returns a copy of the sold tickets in insertion order.
func (s *Session) Tickets() []*Ticket {
	out := make([]*Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out
}

func (s *Session) TicketCount() int {
	return len(s.tickets)
}

func (s *Session) seatTaken(seatNumber int) bool {
	for _, t := range s.tickets {
		if t.SeatNumber == seatNumber {
			return true
		}
	}
	return false
}
