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

type GenreService interface {
	FindAll(ctx context.Context) ([]response.GenreResponse, error)
	FindByID(ctx context.Context, genreID string) (*response.GenreResponse, error)
	Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error)
	Edit(ctx context.Context, genreID string, req *request.GenreRequest) (*response.GenreResponse, error)
	Delete(ctx context.Context, genreID string) error
}

type genreService struct {
	repo *repository.Repository
	uow  repository.UnitOfWorkFactory
	log  *zap.Logger
}

func NewGenreService(repo *repository.Repository, uow repository.UnitOfWorkFactory, log *zap.Logger) GenreService {
	return &genreService{
		repo: repo,
		uow:  uow,
		log:  log.With(zap.String("service", "genre")),
	}
}

func (s *genreService) FindAll(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list genres", zap.Error(err))
		return nil, entity.ErrInternal
	}

	responses := make([]response.GenreResponse, len(genres))
	for i, genre := range genres {
		responses[i] = response.GenreToResponse(genre)
	}
	return responses, nil
}

func (s *genreService) FindByID(ctx context.Context, genreID string) (*response.GenreResponse, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid genre id", entity.ErrValidation)
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get genre", zap.Error(err), zap.String("genre_id", genreID))
		return nil, entity.ErrInternal
	}
	if genre == nil {
		return nil, fmt.Errorf("%w: genre %s", entity.ErrNotFound, genreID)
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Create(ctx context.Context, req *request.GenreRequest) (*response.GenreResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	genre, err := entity.NewGenre(req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueDescription(ctx, genre.Description, uuid.Nil); err != nil {
		return nil, err
	}

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, entity.ErrInternal
	}

	if err := uow.Genres().Insert(ctx, genre); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to insert genre", zap.Error(err), zap.String("description", genre.Description))
		return nil, entity.ErrInternal
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit genre insert", zap.Error(err))
		return nil, entity.ErrInternal
	}

	s.log.Info("Genre created",
		zap.String("genre_id", genre.ID.String()),
		zap.String("description", genre.Description),
	)

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Edit(ctx context.Context, genreID string, req *request.GenreRequest) (*response.GenreResponse, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid genre id", entity.ErrValidation)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get genre", zap.Error(err), zap.String("genre_id", genreID))
		return nil, entity.ErrInternal
	}
	if genre == nil {
		return nil, fmt.Errorf("%w: genre %s", entity.ErrNotFound, genreID)
	}

	if err := s.ensureUniqueDescription(ctx, req.Description, id); err != nil {
		return nil, err
	}

	genre.Description = req.Description

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, entity.ErrInternal
	}

	updated, err := uow.Genres().Update(ctx, id, genre)
	if err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to update genre", zap.Error(err), zap.String("genre_id", genreID))
		return nil, entity.ErrInternal
	}
	if !updated {
		uow.Rollback(ctx)
		return nil, fmt.Errorf("%w: genre %s", entity.ErrNotFound, genreID)
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit genre update", zap.Error(err))
		return nil, entity.ErrInternal
	}

	s.log.Info("Genre updated",
		zap.String("genre_id", genreID),
		zap.String("description", genre.Description),
	)

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *genreService) Delete(ctx context.Context, genreID string) error {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return fmt.Errorf("%w: invalid genre id", entity.ErrValidation)
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get genre", zap.Error(err), zap.String("genre_id", genreID))
		return entity.ErrInternal
	}
	if genre == nil {
		return fmt.Errorf("%w: genre %s", entity.ErrNotFound, genreID)
	}

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return entity.ErrInternal
	}

	deleted, err := uow.Genres().Delete(ctx, id)
	if err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to delete genre", zap.Error(err), zap.String("genre_id", genreID))
		return entity.ErrInternal
	}
	if !deleted {
		uow.Rollback(ctx)
		return fmt.Errorf("%w: genre %s", entity.ErrNotFound, genreID)
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit genre delete", zap.Error(err), zap.String("genre_id", genreID))
		return entity.ErrInternal
	}

	s.log.Info("Genre deleted", zap.String("genre_id", genreID))
	return nil
}

// ensureUniqueDescription rejects a description already used by a different
// genre. Pass uuid.Nil on create so no record is excluded.
func (s *genreService) ensureUniqueDescription(ctx context.Context, description string, excludeID uuid.UUID) error {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to check genre uniqueness", zap.Error(err))
		return entity.ErrInternal
	}

	for _, other := range genres {
		if other.ID != excludeID && other.Description == description {
			return fmt.Errorf("%w: genre %q", entity.ErrDuplicateRecord, description)
		}
	}
	return nil
}
