package usecase

import (
	"cinema-control/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Genre   GenreService
	Movie   MovieService
	Room    RoomService
	Session SessionService
	Ticket  TicketService
}

func NewService(repo *repository.Repository, uow repository.UnitOfWorkFactory, tenant TenantProvider, log *zap.Logger) *Service {
	return &Service{
		Genre:   NewGenreService(repo, uow, log),
		Movie:   NewMovieService(repo, uow, log),
		Room:    NewRoomService(repo, uow, log),
		Session: NewSessionService(repo, uow, tenant, log),
		Ticket:  NewTicketService(repo, tenant, log),
	}
}
