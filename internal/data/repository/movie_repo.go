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

type MovieRepository interface {
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	Insert(ctx context.Context, movie *entity.Movie) error
	Update(ctx context.Context, id uuid.UUID, movie *entity.Movie) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type movieRepository struct {
	db  database.Querier
	log *zap.Logger
}

func NewMovieRepository(db database.Querier, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	var genre entity.Genre

	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.DurationMinutes,
		&movie.NewRelease,
		&movie.CreatedAt,
		&movie.UpdatedAt,
		&genre.ID,
		&genre.Description,
	)
	if err != nil {
		return nil, err
	}

	movie.Genre = &genre
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	query := `
		SELECT m.id, m.title, m.duration_minutes, m.new_release, m.created_at, m.updated_at,
		       g.id, g.description
		FROM movies m
		INNER JOIN genres g ON g.id = m.genre_id
		ORDER BY m.title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	var movies []*entity.Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie: %w", err)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `
		SELECT m.id, m.title, m.duration_minutes, m.new_release, m.created_at, m.updated_at,
		       g.id, g.description
		FROM movies m
		INNER JOIN genres g ON g.id = m.genre_id
		WHERE m.id = $1
	`

	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by id: %w", err)
	}

	return movie, nil
}

func (r *movieRepository) Insert(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (id, title, duration_minutes, new_release, genre_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		movie.ID,
		movie.Title,
		movie.DurationMinutes,
		movie.NewRelease,
		movie.Genre.ID,
		movie.CreatedAt,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("insert movie: %w", err)
	}

	return nil
}

func (r *movieRepository) Update(ctx context.Context, id uuid.UUID, movie *entity.Movie) (bool, error) {
	query := `
		UPDATE movies
		SET title = $2, duration_minutes = $3, new_release = $4, genre_id = $5, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		id,
		movie.Title,
		movie.DurationMinutes,
		movie.NewRelease,
		movie.Genre.ID,
	)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return false, fmt.Errorf("update movie: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *movieRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM movies WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return false, fmt.Errorf("delete movie: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
