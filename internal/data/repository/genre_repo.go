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

type GenreRepository interface {
	FindAll(ctx context.Context) ([]*entity.Genre, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error)
	Insert(ctx context.Context, genre *entity.Genre) error
	Update(ctx context.Context, id uuid.UUID, genre *entity.Genre) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type genreRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewGenreRepository(db database.Querier, log *zap.Logger) GenreRepository {
	return &genreRepository{
		db:  db,
		log: log.With(zap.String("repository", "genre")),
	}
}

func (r *genreRepository) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	query := `
		SELECT id, description, created_at, updated_at
		FROM genres
		ORDER BY description
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all genres", zap.Error(err))
		return nil, fmt.Errorf("find genres: %w", err)
	}
	defer rows.Close()

	var genres []*entity.Genre
	for rows.Next() {
		var genre entity.Genre
		if err := rows.Scan(&genre.ID, &genre.Description, &genre.CreatedAt, &genre.UpdatedAt); err != nil {
			r.log.Error("Failed to scan genre row", zap.Error(err))
			return nil, fmt.Errorf("scan genre: %w", err)
		}
		genres = append(genres, &genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate genres: %w", err)
	}

	return genres, nil
}

func (r *genreRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Genre, error) {
	query := `
		SELECT id, description, created_at, updated_at
		FROM genres
		WHERE id = $1
	`

	var genre entity.Genre
	err := r.db.QueryRow(ctx, query, id).Scan(&genre.ID, &genre.Description, &genre.CreatedAt, &genre.UpdatedAt)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find genre by ID",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return nil, fmt.Errorf("find genre by id: %w", err)
	}

	return &genre, nil
}

func (r *genreRepository) Insert(ctx context.Context, genre *entity.Genre) error {
	query := `
		INSERT INTO genres (id, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, genre.ID, genre.Description, genre.CreatedAt, genre.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to insert genre",
			zap.Error(err),
			zap.String("description", genre.Description),
		)
		return fmt.Errorf("insert genre: %w", err)
	}

	return nil
}

func (r *genreRepository) Update(ctx context.Context, id uuid.UUID, genre *entity.Genre) (bool, error) {
	query := `
		UPDATE genres
		SET description = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, genre.Description)
	if err != nil {
		r.log.Error("Failed to update genre",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return false, fmt.Errorf("update genre: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *genreRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM genres WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete genre",
			zap.Error(err),
			zap.String("genre_id", id.String()),
		)
		return false, fmt.Errorf("delete genre: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
