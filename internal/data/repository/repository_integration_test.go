package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cinema-control/internal/data/entity"
	"cinema-control/internal/data/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

// startPostgres brings up a throwaway database with the reference schema
// applied. Skipped under -short.
func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "cinema",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	endpoint, err := container.Endpoint(ctx, "")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, fmt.Sprintf("postgres://postgres:postgres@%s/cinema?sslmode=disable", endpoint))
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	schema, err := os.ReadFile("../../../migrations/001_init.sql")
	require.NoError(t, err)
	_, err = pool.Exec(ctx, string(schema))
	require.NoError(t, err)

	return pool
}

func seedSession(t *testing.T, ctx context.Context, factory repository.UnitOfWorkFactory) *entity.Session {
	t.Helper()

	genre, err := entity.NewGenre("Drama")
	require.NoError(t, err)
	movie, err := entity.NewMovie("Oppenheimer", 180, true, genre)
	require.NoError(t, err)
	room, err := entity.NewRoom(1, 100)
	require.NoError(t, err)
	session, err := entity.NewSession(time.Date(2026, 9, 12, 20, 0, 0, 0, time.UTC), 50, movie, room)
	require.NoError(t, err)
	session.UserID = uuid.New()

	uow, err := factory.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Genres().Insert(ctx, genre))
	require.NoError(t, uow.Movies().Insert(ctx, movie))
	require.NoError(t, uow.Rooms().Insert(ctx, room))
	require.NoError(t, uow.Sessions().Insert(ctx, session))
	require.NoError(t, uow.Commit(ctx))

	return session
}

func TestRepositoryRoundTrip(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	log := zap.NewNop()

	repos := repository.NewRepository(pool, log)
	factory := repository.NewUnitOfWorkFactory(pool, log)

	session := seedSession(t, ctx, factory)

	loaded, err := repos.Session.FindByID(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "Oppenheimer", loaded.Movie.Title)
	assert.Equal(t, "Drama", loaded.Movie.Genre.Description)
	assert.Equal(t, 1, loaded.Room.Number)
	assert.False(t, loaded.Closed())
	assert.Equal(t, 0, loaded.TicketCount())

	// Sell a seat through the aggregate, persist, reload.
	buyer := uuid.New()
	ticket, err := loaded.GenerateTicket(5, true)
	require.NoError(t, err)
	ticket.UserID = buyer

	uow, err := factory.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Sessions().InsertTicket(ctx, ticket))
	require.NoError(t, uow.Commit(ctx))

	reloaded, err := repos.Session.FindByID(ctx, session.ID)
	require.NoError(t, err)
	require.Equal(t, 1, reloaded.TicketCount())
	assert.Equal(t, 5, reloaded.Tickets()[0].SeatNumber)
	assert.NotContains(t, reloaded.AvailableSeats(), 5)

	tickets, err := repos.Ticket.FindAllForUser(ctx, buyer)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, "Oppenheimer", tickets[0].Session.Movie.Title)
}

func TestRepositoryRollbackDiscardsWrites(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	log := zap.NewNop()

	repos := repository.NewRepository(pool, log)
	factory := repository.NewUnitOfWorkFactory(pool, log)

	genre, err := entity.NewGenre("Horror")
	require.NoError(t, err)

	uow, err := factory.Begin(ctx)
	require.NoError(t, err)
	require.NoError(t, uow.Genres().Insert(ctx, genre))
	require.NoError(t, uow.Rollback(ctx))

	found, err := repos.Genre.FindByID(ctx, genre.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepositoryConstraints(t *testing.T) {
	pool := startPostgres(t)
	ctx := context.Background()
	log := zap.NewNop()

	repos := repository.NewRepository(pool, log)
	factory := repository.NewUnitOfWorkFactory(pool, log)

	session := seedSession(t, ctx, factory)

	t.Run("duplicate seat is rejected by the database", func(t *testing.T) {
		loaded, err := repos.Session.FindByID(ctx, session.ID)
		require.NoError(t, err)

		first, err := loaded.GenerateTicket(7, false)
		require.NoError(t, err)
		first.UserID = uuid.New()

		uow, err := factory.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, uow.Sessions().InsertTicket(ctx, first))
		require.NoError(t, uow.Commit(ctx))

		// A second writer with a stale view of the session picks the same seat.
		stale, err := repos.Session.FindByID(ctx, session.ID)
		require.NoError(t, err)
		stale.HydrateTickets(nil)
		second, err := stale.GenerateTicket(7, false)
		require.NoError(t, err)
		second.UserID = uuid.New()

		uow, err = factory.Begin(ctx)
		require.NoError(t, err)
		err = uow.Sessions().InsertTicket(ctx, second)
		if err == nil {
			err = uow.Commit(ctx)
		} else {
			uow.Rollback(ctx)
		}
		assert.Error(t, err)
	})

	t.Run("room referenced by a session cannot be deleted", func(t *testing.T) {
		uow, err := factory.Begin(ctx)
		require.NoError(t, err)
		_, err = uow.Rooms().Delete(ctx, session.Room.ID)
		if err == nil {
			err = uow.Commit(ctx)
		} else {
			uow.Rollback(ctx)
		}
		assert.Error(t, err)

		still, findErr := repos.Room.FindByID(ctx, session.Room.ID)
		require.NoError(t, findErr)
		assert.NotNil(t, still)
	})

	t.Run("deleting a session cascades to its tickets", func(t *testing.T) {
		loaded, err := repos.Session.FindByID(ctx, session.ID)
		require.NoError(t, err)
		buyer := loaded.Tickets()[0].UserID

		uow, err := factory.Begin(ctx)
		require.NoError(t, err)
		deleted, err := uow.Sessions().Delete(ctx, session.ID)
		require.NoError(t, err)
		require.True(t, deleted)
		require.NoError(t, uow.Commit(ctx))

		tickets, err := repos.Ticket.FindAllForUser(ctx, buyer)
		require.NoError(t, err)
		assert.Empty(t, tickets)
	})
}
