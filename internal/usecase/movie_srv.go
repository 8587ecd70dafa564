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

type MovieService interface {
	FindAll(ctx context.Context) ([]response.MovieResponse, error)
	FindByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	Edit(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error)
	Delete(ctx context.Context, movieID string) error
}

type movieService struct {
	repo *repository.Repository
	uow  repository.UnitOfWorkFactory
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, uow repository.UnitOfWorkFactory, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		uow:  uow,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) FindAll(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, entity.ErrInternal
	}

	responses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		responses[i] = response.MovieToResponse(movie)
	}
	return responses, nil
}

func (s *movieService) FindByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie id", entity.ErrValidation)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, entity.ErrInternal
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", entity.ErrNotFound, movieID)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Create(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	genre, err := s.resolveGenre(ctx, req.GenreID)
	if err != nil {
		return nil, err
	}

	movie, err := entity.NewMovie(req.Title, req.DurationMinutes, req.NewRelease, genre)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueTitle(ctx, movie.Title, uuid.Nil); err != nil {
		return nil, err
	}

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, entity.ErrInternal
	}

	if err := uow.Movies().Insert(ctx, movie); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to insert movie", zap.Error(err), zap.String("title", movie.Title))
		return nil, entity.ErrInternal
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit movie insert", zap.Error(err))
		return nil, entity.ErrInternal
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Edit(ctx context.Context, movieID string, req *request.MovieRequest) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie id", entity.ErrValidation)
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, entity.ErrInternal
	}
	if movie == nil {
		return nil, fmt.Errorf("%w: movie %s", entity.ErrNotFound, movieID)
	}

	genre, err := s.resolveGenre(ctx, req.GenreID)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUniqueTitle(ctx, req.Title, id); err != nil {
		return nil, err
	}

	movie.Title = req.Title
	movie.DurationMinutes = req.DurationMinutes
	movie.NewRelease = req.NewRelease
	movie.Genre = genre

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, entity.ErrInternal
	}

	updated, err := uow.Movies().Update(ctx, id, movie)
	if err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to update movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, entity.ErrInternal
	}
	if !updated {
		uow.Rollback(ctx)
		return nil, fmt.Errorf("%w: movie %s", entity.ErrNotFound, movieID)
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit movie update", zap.Error(err))
		return nil, entity.ErrInternal
	}

	s.log.Info("Movie updated",
		zap.String("movie_id", movieID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) Delete(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("%w: invalid movie id", entity.ErrValidation)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", movieID))
		return entity.ErrInternal
	}
	if movie == nil {
		return fmt.Errorf("%w: movie %s", entity.ErrNotFound, movieID)
	}

	uow, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to begin transaction", zap.Error(err))
		return entity.ErrInternal
	}

	deleted, err := uow.Movies().Delete(ctx, id)
	if err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to delete movie", zap.Error(err), zap.String("movie_id", movieID))
		return entity.ErrInternal
	}
	if !deleted {
		uow.Rollback(ctx)
		return fmt.Errorf("%w: movie %s", entity.ErrNotFound, movieID)
	}

	if err := uow.Commit(ctx); err != nil {
		uow.Rollback(ctx)
		s.log.Error("Failed to commit movie delete", zap.Error(err), zap.String("movie_id", movieID))
		return entity.ErrInternal
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

// resolveGenre loads the referenced genre; a movie cannot point at a genre
// that does not exist.
func (s *movieService) resolveGenre(ctx context.Context, genreID string) (*entity.Genre, error) {
	id, err := uuid.Parse(genreID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid genre id", entity.ErrValidation)
	}

	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to resolve genre", zap.Error(err), zap.String("genre_id", genreID))
		return nil, entity.ErrInternal
	}
	if genre == nil {
		return nil, fmt.Errorf("%w: genre %s", entity.ErrNotFound, genreID)
	}
	return genre, nil
}

func (s *movieService) ensureUniqueTitle(ctx context.Context, title string, excludeID uuid.UUID) error {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to check movie uniqueness", zap.Error(err))
		return entity.ErrInternal
	}

	for _, other := range movies {
		if other.ID != excludeID && other.Title == title {
			return fmt.Errorf("%w: movie %q", entity.ErrDuplicateRecord, title)
		}
	}
	return nil
}
