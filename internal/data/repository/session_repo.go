package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-control/internal/data/entity"
	"cinema-control/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SessionRepository interface {
	FindAll(ctx context.Context) ([]*entity.Session, error)
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Insert(ctx context.Context, session *entity.Session) error
	Update(ctx context.Context, id uuid.UUID, session *entity.Session) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// InsertTicket persists a ticket generated by the session aggregate.
	InsertTicket(ctx context.Context, ticket *entity.Ticket) error
}

type sessionRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewSessionRepository(db database.Querier, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

const sessionSelect = `
	SELECT s.id, s.start_time, s.max_tickets, s.user_id, s.closed, s.created_at, s.updated_at,
	       m.id, m.title, m.duration_minutes, m.new_release,
	       g.id, g.description,
	       r.id, r.number, r.capacity
	FROM sessions s
	INNER JOIN movies m ON m.id = s.movie_id
	INNER JOIN genres g ON g.id = m.genre_id
	INNER JOIN rooms r ON r.id = s.room_id
`

func scanSession(row pgx.Row) (*entity.Session, error) {
	var (
		id, userID           uuid.UUID
		startTime            time.Time
		maxTickets           int
		closed               bool
		createdAt, updatedAt time.Time
		movie                entity.Movie
		genre                entity.Genre
		room                 entity.Room
	)

	err := row.Scan(
		&id, &startTime, &maxTickets, &userID, &closed, &createdAt, &updatedAt,
		&movie.ID, &movie.Title, &movie.DurationMinutes, &movie.NewRelease,
		&genre.ID, &genre.Description,
		&room.ID, &room.Number, &room.Capacity,
	)
	if err != nil {
		return nil, err
	}

	movie.Genre = &genre
	return entity.RestoreSession(id, startTime, maxTickets, &movie, &room, userID, closed, createdAt, updatedAt), nil
}

func (r *sessionRepository) FindAll(ctx context.Context) ([]*entity.Session, error) {
	return r.findMany(ctx, sessionSelect+` ORDER BY s.start_time`)
}

func (r *sessionRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Session, error) {
	return r.findMany(ctx, sessionSelect+` WHERE s.user_id = $1 ORDER BY s.start_time`, userID)
}

func (r *sessionRepository) findMany(ctx context.Context, query string, args ...any) ([]*entity.Session, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find sessions", zap.Error(err))
		return nil, fmt.Errorf("find sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*entity.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			r.log.Error("Failed to scan session row", zap.Error(err))
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	for _, session := range sessions {
		if err := r.loadTickets(ctx, session); err != nil {
			return nil, err
		}
	}

	return sessions, nil
}

func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	session, err := scanSession(r.db.QueryRow(ctx, sessionSelect+` WHERE s.id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find session by ID",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return nil, fmt.Errorf("find session by id: %w", err)
	}

	if err := r.loadTickets(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// loadTickets hydrates the aggregate's ticket collection in sale order.
func (r *sessionRepository) loadTickets(ctx context.Context, session *entity.Session) error {
	query := `
		SELECT id, seat_number, half_price, user_id
		FROM tickets
		WHERE session_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, session.ID)
	if err != nil {
		r.log.Error("Failed to load session tickets",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("load tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var (
			id, userID uuid.UUID
			seatNumber int
			halfPrice  bool
		)
		if err := rows.Scan(&id, &seatNumber, &halfPrice, &userID); err != nil {
			return fmt.Errorf("scan ticket: %w", err)
		}
		tickets = append(tickets, entity.RestoreTicket(id, seatNumber, halfPrice, userID))
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate tickets: %w", err)
	}

	session.HydrateTickets(tickets)
	return nil
}

func (r *sessionRepository) Insert(ctx context.Context, session *entity.Session) error {
	query := `
		INSERT INTO sessions (id, start_time, max_tickets, movie_id, room_id, user_id, closed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		session.ID,
		session.StartTime,
		session.MaxTickets,
		session.Movie.ID,
		session.Room.ID,
		session.UserID,
		session.Closed(),
		session.CreatedAt,
		session.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert session",
			zap.Error(err),
			zap.String("session_id", session.ID.String()),
		)
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

// Update persists the mutable fields only: start time, maximum tickets and
// the closed flag. Movie, room and owner never change after creation.
func (r *sessionRepository) Update(ctx context.Context, id uuid.UUID, session *entity.Session) (bool, error) {
	query := `
		UPDATE sessions
		SET start_time = $2, max_tickets = $3, closed = $4, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, session.StartTime, session.MaxTickets, session.Closed())
	if err != nil {
		r.log.Error("Failed to update session",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return false, fmt.Errorf("update session: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM sessions WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete session",
			zap.Error(err),
			zap.String("session_id", id.String()),
		)
		return false, fmt.Errorf("delete session: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *sessionRepository) InsertTicket(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (id, session_id, seat_number, half_price, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.Session.ID,
		ticket.SeatNumber,
		ticket.HalfPrice,
		ticket.UserID,
		ticket.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert ticket",
			zap.Error(err),
			zap.String("session_id", ticket.Session.ID.String()),
			zap.Int("seat_number", ticket.SeatNumber),
		)
		return fmt.Errorf("insert ticket: %w", err)
	}

	return nil
}
