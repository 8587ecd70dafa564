package repository

import (
	"cinema-control/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Genre   GenreRepository
	Movie   MovieRepository
	Room    RoomRepository
	Session SessionRepository
	Ticket  TicketRepository
}

// NewRepository builds the repository group over any Querier, so the same
// set can run against the pool or inside a unit-of-work transaction.
func NewRepository(db database.Querier, log *zap.Logger) *Repository {
	return &Repository{
		Genre:   NewGenreRepository(db, log),
		Movie:   NewMovieRepository(db, log),
		Room:    NewRoomRepository(db, log),
		Session: NewSessionRepository(db, log),
		Ticket:  NewTicketRepository(db, log),
	}
}
