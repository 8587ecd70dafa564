package usecase

import (
	"context"
	"errors"
	"testing"

	"cinema-control/internal/data/entity"
	"cinema-control/internal/data/repository"
	"cinema-control/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type movieFixture struct {
	movies  *mockMovieRepo
	genres  *mockGenreRepo
	writes  *mockMovieRepo
	uow     *mockUnitOfWork
	factory *mockUowFactory
	svc     MovieService
}

func newMovieFixture() *movieFixture {
	f := &movieFixture{
		movies:  new(mockMovieRepo),
		genres:  new(mockGenreRepo),
		writes:  new(mockMovieRepo),
		factory: new(mockUowFactory),
	}
	f.uow = &mockUnitOfWork{movies: f.writes}
	f.svc = NewMovieService(&repository.Repository{Movie: f.movies, Genre: f.genres}, f.factory, zap.NewNop())
	return f
}

func TestMovieServiceCreate(t *testing.T) {
	f := newMovieFixture()
	ctx := context.Background()

	genre, _ := entity.NewGenre("Drama")
	f.genres.On("FindByID", ctx, genre.ID).Return(genre, nil)
	f.movies.On("FindAll", ctx).Return([]*entity.Movie{}, nil)
	f.factory.On("Begin", ctx).Return(f.uow, nil)
	f.writes.On("Insert", ctx, mock.AnythingOfType("*entity.Movie")).Return(nil)
	f.uow.On("Commit", ctx).Return(nil)

	resp, err := f.svc.Create(ctx, &request.MovieRequest{
		Title:           "Oppenheimer",
		DurationMinutes: 180,
		NewRelease:      true,
		GenreID:         genre.ID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, "Oppenheimer", resp.Title)
	assert.Equal(t, "Drama", resp.Genre.Description)
}

func TestMovieServiceCreateRequiresExistingGenre(t *testing.T) {
	f := newMovieFixture()
	ctx := context.Background()

	genre, _ := entity.NewGenre("Drama")
	f.genres.On("FindByID", ctx, genre.ID).Return(nil, nil)

	_, err := f.svc.Create(ctx, &request.MovieRequest{
		Title:           "Oppenheimer",
		DurationMinutes: 180,
		GenreID:         genre.ID.String(),
	})

	assert.ErrorIs(t, err, entity.ErrNotFound)
	f.factory.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestMovieServiceCreateRejectsDuplicateTitle(t *testing.T) {
	f := newMovieFixture()
	ctx := context.Background()

	genre, _ := entity.NewGenre("Drama")
	existing, _ := entity.NewMovie("Oppenheimer", 180, false, genre)
	f.genres.On("FindByID", ctx, genre.ID).Return(genre, nil)
	f.movies.On("FindAll", ctx).Return([]*entity.Movie{existing}, nil)

	_, err := f.svc.Create(ctx, &request.MovieRequest{
		Title:           "Oppenheimer",
		DurationMinutes: 180,
		GenreID:         genre.ID.String(),
	})

	assert.ErrorIs(t, err, entity.ErrDuplicateRecord)
	f.writes.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestMovieServiceCreateRejectsInvalidDuration(t *testing.T) {
	f := newMovieFixture()

	genre, _ := entity.NewGenre("Drama")
	_, err := f.svc.Create(context.Background(), &request.MovieRequest{
		Title:           "Oppenheimer",
		DurationMinutes: 0,
		GenreID:         genre.ID.String(),
	})

	assert.ErrorIs(t, err, entity.ErrValidation)
}

func TestMovieServiceEdit(t *testing.T) {
	f := newMovieFixture()
	ctx := context.Background()

	genre, _ := entity.NewGenre("Drama")
	existing, _ := entity.NewMovie("Oppenheimer", 180, true, genre)
	f.movies.On("FindByID", ctx, existing.ID).Return(existing, nil)
	f.genres.On("FindByID", ctx, genre.ID).Return(genre, nil)
	f.movies.On("FindAll", ctx).Return([]*entity.Movie{existing}, nil)
	f.factory.On("Begin", ctx).Return(f.uow, nil)
	f.writes.On("Update", ctx, existing.ID, existing).Return(true, nil)
	f.uow.On("Commit", ctx).Return(nil)

	resp, err := f.svc.Edit(ctx, existing.ID.String(), &request.MovieRequest{
		Title:           "Oppenheimer",
		DurationMinutes: 181,
		NewRelease:      false,
		GenreID:         genre.ID.String(),
	})

	require.NoError(t, err)
	assert.Equal(t, 181, resp.DurationMinutes)
	assert.False(t, resp.NewRelease)
}

func TestMovieServiceDeleteMasksRepositoryFailure(t *testing.T) {
	f := newMovieFixture()
	ctx := context.Background()

	genre, _ := entity.NewGenre("Drama")
	existing, _ := entity.NewMovie("Oppenheimer", 180, false, genre)
	f.movies.On("FindByID", ctx, existing.ID).Return(existing, nil)
	f.factory.On("Begin", ctx).Return(f.uow, nil)
	f.writes.On("Delete", ctx, existing.ID).Return(false, errors.New("foreign key violation"))
	f.uow.On("Rollback", ctx).Return(nil)

	err := f.svc.Delete(ctx, existing.ID.String())

	assert.ErrorIs(t, err, entity.ErrInternal)
	f.uow.AssertCalled(t, "Rollback", ctx)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}
