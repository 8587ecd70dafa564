package adaptor

import (
	"errors"
	"net/http"

	"cinema-control/internal/data/entity"
	"cinema-control/internal/usecase"
	"cinema-control/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Genre   *GenreHandler
	Movie   *MovieHandler
	Room    *RoomHandler
	Session *SessionHandler
	Ticket  *TicketHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Genre:   NewGenreHandler(service.Genre, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Room:    NewRoomHandler(service.Room, log),
		Session: NewSessionHandler(service.Session, log),
		Ticket:  NewTicketHandler(service.Ticket, log),
	}
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Domain-rule refusals are 422 so clients can distinguish them from malformed
// input; anything unrecognized is treated as the masked internal error.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, entity.ErrValidation):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrNotFound):
		log.Warn(operation+" target missing", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrDuplicateRecord):
		log.Warn(operation+" rejected as duplicate", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, entity.ErrCapacityExceeded),
		errors.Is(err, entity.ErrScheduleConflict),
		errors.Is(err, entity.ErrSessionClosed),
		errors.Is(err, entity.ErrSeatOutOfRange),
		errors.Is(err, entity.ErrSeatTaken),
		errors.Is(err, entity.ErrSessionFull):
		log.Warn(operation+" violates a domain rule", zap.Error(err))
		utils.ResponseUnprocessable(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, entity.ErrInternal.Error())
	}
}
