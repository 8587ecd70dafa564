package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-control/internal/data/entity"
	"cinema-control/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// FindAllForUser returns the user's tickets ordered by seat number,
	// each carrying a shallow session reference for display.
	FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewTicketRepository(db database.Querier, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindAllForUser(ctx context.Context, userID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT t.id, t.seat_number, t.half_price, t.user_id,
		       s.id, s.start_time, s.max_tickets, s.user_id, s.closed, s.created_at, s.updated_at,
		       m.id, m.title, m.duration_minutes, m.new_release,
		       g.id, g.description,
		       r.id, r.number, r.capacity
		FROM tickets t
		INNER JOIN sessions s ON s.id = t.session_id
		INNER JOIN movies m ON m.id = s.movie_id
		INNER JOIN genres g ON g.id = m.genre_id
		INNER JOIN rooms r ON r.id = s.room_id
		WHERE t.user_id = $1
		ORDER BY t.seat_number
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find tickets for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find tickets for user: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var (
			ticketID, ticketUserID     uuid.UUID
			seatNumber                 int
			halfPrice                  bool
			sessionID, sessionUserID   uuid.UUID
			startTime                  time.Time
			maxTickets                 int
			closed                     bool
			createdAt, updatedAt       time.Time
			movie                      entity.Movie
			genre                      entity.Genre
			room                       entity.Room
		)

		err := rows.Scan(
			&ticketID, &seatNumber, &halfPrice, &ticketUserID,
			&sessionID, &startTime, &maxTickets, &sessionUserID, &closed, &createdAt, &updatedAt,
			&movie.ID, &movie.Title, &movie.DurationMinutes, &movie.NewRelease,
			&genre.ID, &genre.Description,
			&room.ID, &room.Number, &room.Capacity,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket: %w", err)
		}

		movie.Genre = &genre
		session := entity.RestoreSession(sessionID, startTime, maxTickets, &movie, &room, sessionUserID, closed, createdAt, updatedAt)

		ticket := entity.RestoreTicket(ticketID, seatNumber, halfPrice, ticketUserID)
		ticket.Session = session
		tickets = append(tickets, ticket)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}

	return tickets, nil
}
