package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-control/internal/data/entity"
	"cinema-control/internal/data/repository"
	"cinema-control/internal/dto/request"
	"cinema-control/internal/dto/response"
	"cinema-control/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SessionService interface {
	FindAll(ctx context.Context) ([]response.SessionResponse, error)
	FindByID(ctx context.Context, sessionID string) (*response.SessionResponse, error)
	Create(ctx context.Context, req *request.SessionRequest) (*response.SessionResponse, error)
	Edit(ctx context.Context, sessionID string, req *request.SessionUpdateRequest) (*response.SessionResponse, error)
	Delete(ctx context.Context, sessionID string) error
	Close(ctx context.Context, sessionID string) (*response.SessionResponse, error)
	SellTicket(ctx context.Context, sessionID string, req *request.SellTicketRequest) (*response.TicketResponse, error)
}

type sessionService struct {
	repo   *repository.Repository
	uow    repository.UnitOfWorkFactory
	tenant TenantProvider
	log    *zap.Logger
}

func NewSessionService(repo *repository.Repository, uow repository.UnitOfWorkFactory, tenant TenantProvider, log *zap.Logger) SessionService {
	return &sessionService{
		repo:   repo,
		uow:    uow,
		tenant: tenant,
		log:    log.With(zap.String("service", "session")),
	}
}

// FindAll resolves visibility once up front: a company account sees only the
// sessions it scheduled, everyone else sees the full program.
func (s *sessionService) FindAll(ctx context.Context) ([]response.SessionResponse, error) {
	var sessions []*entity.Session
	var err error

	if userID, scoped := s.companyScope(ctx); scoped {
		sessions, err = s.repo.Session.FindAllForUser(ctx, userID)
	} else {
		sessions, err = s.repo.Session.FindAll(ctx)
	}
	if err != nil {
		s.log.Error("Failed to list sessions", zap.Error(err))
		return nil, entity.ErrInternal
	}

	responses := make([]response.SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = response.SessionToResponse(session)
	}
	return responses, nil
}

func (s *sessionService) FindByID(ctx context.Context, sessionID string) (*response.SessionResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *sessionService) Create(ctx context.Context, req *request.SessionRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie id", entity.ErrValidation)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room id", entity.ErrValidation)
	}

	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil {
		s.log.Error("Failed to resolve movie", zap.Error(err), zap.String("movie_id", req.MovieID))
		return nil, entity.ErrInternal
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", entity.ErrNotFound, req.MovieID)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to resolve room", zap.Error(err), zap.String("room_id", req.RoomID))
		return nil, entity.ErrInternal
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s", entity.ErrNotFound, req.RoomID)
	}

	session, err := entity.NewSession(req.StartTime, req.MaxTickets, movie, room)
	if err != nil {
		return nil, err
	}

	if req.MaxTickets > room.Capacity {
		return nil, fmt.Errorf("%w: %d tickets for a room of %d seats", entity.ErrCapacityExceeded, req.MaxTickets, room.Capacity)
	}

	if err := s.ensureRoomFree(ctx, room.ID, req.StartTime, uuid.Nil); err != nil {
		return nil, err
	}

	if userID, ok := s.tenant.CurrentUserID(ctx); ok {
		session.UserID = userID
	}

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, entity.ErrInternal
	}

	if err := uow.Sessions().Insert(ctx, session); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to insert session", zap.Error(err), zap.String("session_id", session.ID.String()))
		return nil, entity.ErrInternal
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit session insert", zap.Error(err))
		return nil, entity.ErrInternal
	}

	s.log.Info("Session created",
		zap.String("session_id", session.ID.String()),
		zap.String("movie", movie.Title),
		zap.Int("room", room.Number),
		zap.Time("start_time", session.StartTime),
	)

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *sessionService) Edit(ctx context.Context, sessionID string, req *request.SessionUpdateRequest) (*response.SessionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.MaxTickets > session.Room.Capacity {
		return nil, fmt.Errorf("%w: %d tickets for a room of %d seats", entity.ErrCapacityExceeded, req.MaxTickets, session.Room.Capacity)
	}

	if err := s.ensureRoomFree(ctx, session.Room.ID, req.StartTime, session.ID); err != nil {
		return nil, err
	}

	edited, err := entity.NewSession(req.StartTime, req.MaxTickets, session.Movie, session.Room)
	if err != nil {
		return nil, err
	}
	session.ApplyEdit(edited)

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, entity.ErrInternal
	}

	updated, err := uow.Sessions().Update(ctx, session.ID, session)
	if err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to update session", zap.Error(err), zap.String("session_id", sessionID))
		return nil, entity.ErrInternal
	}
	if !updated {
		uow.Rollback(ctx)
		return nil, fmt.Errorf("%w: session %s", entity.ErrNotFound, sessionID)
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit session update", zap.Error(err))
		return nil, entity.ErrInternal
	}

	s.log.Info("Session updated",
		zap.String("session_id", sessionID),
		zap.Time("start_time", session.StartTime),
		zap.Int("max_tickets", session.MaxTickets),
	)

	resp := response.SessionToResponse(session)
	return &resp, nil
}

func (s *sessionService) Delete(ctx context.Context, sessionID string) error {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return entity.ErrInternal
	}

	deleted, err := uow.Sessions().Delete(ctx, session.ID)
	if err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to delete session", zap.Error(err), zap.String("session_id", sessionID))
		return entity.ErrInternal
	}
	if !deleted {
		uow.Rollback(ctx)
		return fmt.Errorf("%w: session %s", entity.ErrNotFound, sessionID)
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit session delete", zap.Error(err), zap.String("session_id", sessionID))
		return entity.ErrInternal
	}

	s.log.Info("Session deleted", zap.String("session_id", sessionID))
	return nil
}

// Close marks the session as closed. Closing an already-closed session
// succeeds without changing anything.
func (s *sessionService) Close(ctx context.Context, sessionID string) (*response.SessionResponse, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	session.Close()

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, entity.ErrInternal
	}

	updated, err := uow.Sessions().Update(ctx, session.ID, session)
	if err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to close session", zap.Error(err), zap.String("session_id", sessionID))
		return nil, entity.ErrInternal
	}
	if !updated {
		uow.Rollback(ctx)
		return nil, fmt.Errorf("%w: session %s", entity.ErrNotFound, sessionID)
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit session close", zap.Error(err))
		return nil, entity.ErrInternal
	}

	s.log.Info("Session closed", zap.String("session_id", sessionID))

	resp := response.SessionToResponse(session)
	return &resp, nil
}

// SellTicket asks the aggregate for a seat and persists the result. Domain
// refusals (closed session, bad seat, taken seat, full session) come back
// unmasked so the caller can tell them apart.
func (s *sessionService) SellTicket(ctx context.Context, sessionID string, req *request.SellTicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	userID, ok := s.tenant.CurrentUserID(ctx)
	if !ok {
		return nil, fmt.Errorf("%w: missing user identity", entity.ErrValidation)
	}

	ticket, err := session.GenerateTicket(req.SeatNumber, req.HalfPrice)
	if err != nil {
		return nil, err
	}
	ticket.UserID = userID

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, entity.ErrInternal
	}

	if err := uow.Sessions().InsertTicket(ctx, ticket); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to insert ticket", zap.Error(err),
			zap.String("session_id", sessionID),
			zap.Int("seat_number", req.SeatNumber),
		)
		return nil, entity.ErrInternal
	}

	if _, err := uow.Sessions().Update(ctx, session.ID, session); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to touch session after sale", zap.Error(err), zap.String("session_id", sessionID))
		return nil, entity.ErrInternal
	}

	// A concurrent sale of the same seat trips the unique constraint here.
	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit ticket sale", zap.Error(err),
			zap.String("session_id", sessionID),
			zap.Int("seat_number", req.SeatNumber),
		)
		return nil, entity.ErrInternal
	}

	s.log.Info("Ticket sold",
		zap.String("session_id", sessionID),
		zap.String("ticket_id", ticket.ID.String()),
		zap.Int("seat_number", ticket.SeatNumber),
		zap.Bool("half_price", ticket.HalfPrice),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *sessionService) loadSession(ctx context.Context, sessionID string) (*entity.Session, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid session id", entity.ErrValidation)
	}

	session, err := s.repo.Session.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get session", zap.Error(err), zap.String("session_id", sessionID))
		return nil, entity.ErrInternal
	}
	if session == nil {
		return nil, fmt.Errorf("%w: session %s", entity.ErrNotFound, sessionID)
	}
	return session, nil
}

// ensureRoomFree rejects a second session in the same room at the same start
// time. Pass uuid.Nil on create so no session is excluded.
func (s *sessionService) ensureRoomFree(ctx context.Context, roomID uuid.UUID, startTime time.Time, excludeID uuid.UUID) error {
	sessions, err := s.repo.Session.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to check room schedule", zap.Error(err), zap.String("room_id", roomID.String()))
		return entity.ErrInternal
	}

	for _, other := range sessions {
		if other.ID == excludeID || other.Room == nil {
			continue
		}
		if other.Room.ID == roomID && other.StartTime.Equal(startTime) {
			return fmt.Errorf("%w: room %d at %s", entity.ErrScheduleConflict, other.Room.Number, startTime.Format(time.RFC3339))
		}
	}
	return nil
}

func (s *sessionService) companyScope(ctx context.Context) (uuid.UUID, bool) {
	if !s.tenant.IsInRole(ctx, RoleCompany) {
		return uuid.Nil, false
	}
	return s.tenant.CurrentUserID(ctx)
}
