package usecase

import (
	"context"
	"fmt"

	"cinema-control/internal/data/entity"
	"cinema-control/internal/data/repository"
	"cinema-control/internal/dto/request"
	"cinema-control/internal/dto/response"
	"cinema-control/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomService interface {
	FindAll(ctx context.Context) ([]response.RoomResponse, error)
	FindByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	Create(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	Edit(ctx context.Context, roomID string, req *request.RoomRequest) (*response.RoomResponse, error)
	Delete(ctx context.Context, roomID string) error
}

type roomService struct {
	repo *repository.Repository
	uow  repository.UnitOfWorkFactory
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, uow repository.UnitOfWorkFactory, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		uow:  uow,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) FindAll(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, entity.ErrInternal
	}

	responses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = response.RoomToResponse(room)
	}
	return responses, nil
}

func (s *roomService) FindByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room id", entity.ErrValidation)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get room", zap.Error(err), zap.String("room_id", roomID))
		return nil, entity.ErrInternal
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s", entity.ErrNotFound, roomID)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) Create(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	room, err := entity.NewRoom(req.Number, req.Capacity)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueNumber(ctx, room.Number, uuid.Nil); err != nil {
		return nil, err
	}

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, entity.ErrInternal
	}

	if err := uow.Rooms().Insert(ctx, room); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to insert room", zap.Error(err), zap.Int("number", room.Number))
		return nil, entity.ErrInternal
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit room insert", zap.Error(err))
		return nil, entity.ErrInternal
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.Int("number", room.Number),
		zap.Int("capacity", room.Capacity),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) Edit(ctx context.Context, roomID string, req *request.RoomRequest) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room id", entity.ErrValidation)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get room", zap.Error(err), zap.String("room_id", roomID))
		return nil, entity.ErrInternal
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s", entity.ErrNotFound, roomID)
	}

	if err := s.ensureUniqueNumber(ctx, req.Number, id); err != nil {
		return nil, err
	}

	room.Number = req.Number
	room.Capacity = req.Capacity

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, entity.ErrInternal
	}

	updated, err := uow.Rooms().Update(ctx, id, room)
	if err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to update room", zap.Error(err), zap.String("room_id", roomID))
		return nil, entity.ErrInternal
	}
	if !updated {
		uow.Rollback(ctx)
		return nil, fmt.Errorf("%w: room %s", entity.ErrNotFound, roomID)
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit room update", zap.Error(err))
		return nil, entity.ErrInternal
	}

	s.log.Info("Room updated",
		zap.String("room_id", roomID),
		zap.Int("number", room.Number),
		zap.Int("capacity", room.Capacity),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// Delete removes a room outright. A room still referenced by a session makes
// the delete fail at the database and the caller gets the masked internal
// error after rollback.
func (s *roomService) Delete(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("%w: invalid room id", entity.ErrValidation)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get room", zap.Error(err), zap.String("room_id", roomID))
		return entity.ErrInternal
	}
	if room == nil {
		return fmt.Errorf("%w: room %s", entity.ErrNotFound, roomID)
	}

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return entity.ErrInternal
	}

	deleted, err := uow.Rooms().Delete(ctx, id)
	if err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to delete room", zap.Error(err), zap.String("room_id", roomID))
		return entity.ErrInternal
	}
	if !deleted {
		uow.Rollback(ctx)
		return fmt.Errorf("%w: room %s", entity.ErrNotFound, roomID)
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit room delete", zap.Error(err), zap.String("room_id", roomID))
		return entity.ErrInternal
	}

	s.log.Info("Room deleted", zap.String("room_id", roomID))
	return nil
}

func (s *roomService) ensureUniqueNumber(ctx context.Context, number int, excludeID uuid.UUID) error {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to check room uniqueness", zap.Error(err))
		return entity.ErrInternal
	}

	for _, other := range rooms {
		if other.ID != excludeID && other.Number == number {
			return fmt.Errorf("%w: room %d", entity.ErrDuplicateRecord, number)
		}
	}
	return nil
}
