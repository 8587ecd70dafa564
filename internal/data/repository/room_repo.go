package repository

import (
	"context"
	"fmt"

	"cinema-control/internal/data/entity"
	"cinema-control/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	FindAll(ctx context.Context) ([]*entity.Room, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	Insert(ctx context.Context, room *entity.Room) error
	Update(ctx context.Context, id uuid.UUID, room *entity.Room) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type roomRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewRoomRepository(db database.Querier, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT id, number, capacity, created_at, updated_at
		FROM rooms
		ORDER BY number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all rooms", zap.Error(err))
		return nil, fmt.Errorf("find rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		if err := rows.Scan(&room.ID, &room.Number, &room.Capacity, &room.CreatedAt, &room.UpdatedAt); err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, &room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}

	return rooms, nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, number, capacity, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(&room.ID, &room.Number, &room.Capacity, &room.CreatedAt, &room.UpdatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by id: %w", err)
	}

	return &room, nil
}

func (r *roomRepository) Insert(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, number, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, room.ID, room.Number, room.Capacity, room.CreatedAt, room.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to insert room",
			zap.Error(err),
			zap.Int("number", room.Number),
		)
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

func (r *roomRepository) Update(ctx context.Context, id uuid.UUID, room *entity.Room) (bool, error) {
	query := `
		UPDATE rooms
		SET number = $2, capacity = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, room.Number, room.Capacity)
	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return false, fmt.Errorf("update room: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return false, fmt.Errorf("delete room: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
