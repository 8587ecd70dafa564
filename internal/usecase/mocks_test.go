package usecase

import (
	"context"

	"cinema-control/internal/data/entity"
	"cinema-control/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockGenreRepo struct{ mock.Mock }

func (m *mockGenreRepo) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Genre), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGenreRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Genre), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockGenreRepo) Insert(ctx context.Context, genre *entity.Genre) error {
	return m.Called(ctx, genre).Error(0)
}

func (m *mockGenreRepo) Update(ctx context.Context, id uuid.UUID, genre *entity.Genre) (bool, error) {
	args := m.Called(ctx, id, genre)
	return args.Bool(0), args.Error(1)
}

func (m *mockGenreRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockMovieRepo struct{ mock.Mock }

func (m *mockMovieRepo) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Movie), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMovieRepo) Insert(ctx context.Context, movie *entity.Movie) error {
	return m.Called(ctx, movie).Error(0)
}

func (m *mockMovieRepo) Update(ctx context.Context, id uuid.UUID, movie *entity.Movie) (bool, error) {
	args := m.Called(ctx, id, movie)
	return args.Bool(0), args.Error(1)
}

func (m *mockMovieRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockRoomRepo struct{ mock.Mock }

func (m *mockRoomRepo) FindAll(ctx context.Context) ([]*entity.Room, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) Insert(ctx context.Context, room *entity.Room) error {
	return m.Called(ctx, room).Error(0)
}

func (m *mockRoomRepo) Update(ctx context.Context, id uuid.UUID, room *entity.Room) (bool, error) {
	args := m.Called(ctx, id, room)
	return args.Bool(0), args.Error(1)
}

func (m *mockRoomRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockSessionRepo struct{ mock.Mock }

func (m *mockSessionRepo) FindAll(ctx context.Context) ([]*entity.Session, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionRepo) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSessionRepo) Insert(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepo) Update(ctx context.Context, id uuid.UUID, session *entity.Session) (bool, error) {
	args := m.Called(ctx, id, session)
	return args.Bool(0), args.Error(1)
}

func (m *mockSessionRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockSessionRepo) InsertTicket(ctx context.Context, ticket *entity.Ticket) error {
	return m.Called(ctx, ticket).Error(0)
}

type mockTicketRepo struct{ mock.Mock }

func (m *mockTicketRepo) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Ticket, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]*entity.Ticket), args.Error(1)
	}
	return nil, args.Error(1)
}

// mockUnitOfWork hands back plain repository fields so tests set expectations
// on the repo mocks, not on the accessors.
type mockUnitOfWork struct {
	mock.Mock
	genres   repository.GenreRepository
	movies   repository.MovieRepository
	rooms    repository.RoomRepository
	sessions repository.SessionRepository
	tickets  repository.TicketRepository
}

func (m *mockUnitOfWork) Genres() repository.GenreRepository     { return m.genres }
func (m *mockUnitOfWork) Movies() repository.MovieRepository     { return m.movies }
func (m *mockUnitOfWork) Rooms() repository.RoomRepository       { return m.rooms }
func (m *mockUnitOfWork) Sessions() repository.SessionRepository { return m.sessions }
func (m *mockUnitOfWork) Tickets() repository.TicketRepository   { return m.tickets }

func (m *mockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockUowFactory struct{ mock.Mock }

func (m *mockUowFactory) Begin(ctx context.Context) (repository.UnitOfWork, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(repository.UnitOfWork), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockTenant struct{ mock.Mock }

func (m *mockTenant) CurrentUserID(ctx context.Context) (uuid.UUID, bool) {
	args := m.Called(ctx)
	return args.Get(0).(uuid.UUID), args.Bool(1)
}

func (m *mockTenant) IsInRole(ctx context.Context, role string) bool {
	return m.Called(ctx, role).Bool(0)
}
