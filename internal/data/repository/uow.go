package repository

import (
	"context"
	"fmt"

	"cinema-control/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// UnitOfWork scopes one logical transaction. Repositories obtained from it
// run on the same underlying pgx transaction; nothing is visible to other
// callers until Commit. A unit of work is owned by a single service call.
type UnitOfWork interface {
	Genres() GenreRepository
	Movies() MovieRepository
	Rooms() RoomRepository
	Sessions() SessionRepository
	Tickets() TicketRepository
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

type pgxUnitOfWork struct {
	tx    pgx.Tx
	repos *Repository
}

func (u *pgxUnitOfWork) Genres() GenreRepository     { return u.repos.Genre }
func (u *pgxUnitOfWork) Movies() MovieRepository     { return u.repos.Movie }
func (u *pgxUnitOfWork) Rooms() RoomRepository       { return u.repos.Room }
func (u *pgxUnitOfWork) Sessions() SessionRepository { return u.repos.Session }
func (u *pgxUnitOfWork) Tickets() TicketRepository   { return u.repos.Ticket }

func (u *pgxUnitOfWork) Commit(ctx context.Context) error {
	if err := u.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Rollback after a failed Commit reports pgx.ErrTxClosed; callers treat
// that as a no-op.
func (u *pgxUnitOfWork) Rollback(ctx context.Context) error {
	if err := u.tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
		return fmt.Errorf("rollback transaction: %w", err)
	}
	return nil
}

type pgxUnitOfWorkFactory struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUnitOfWorkFactory(db database.PgxIface, log *zap.Logger) UnitOfWorkFactory {
	return &pgxUnitOfWorkFactory{
		db:  db,
		log: log.With(zap.String("component", "unit_of_work")),
	}
}

func (f *pgxUnitOfWorkFactory) Begin(ctx context.Context) (UnitOfWork, error) {
	tx, err := f.db.Begin(ctx)
	if err != nil {
		f.log.Error("Failed to begin transaction", zap.Error(err))
		return nil, fmt.Errorf("begin transaction: %w", err)
	}

	return &pgxUnitOfWork{
		tx:    tx,
		repos: NewRepository(tx, f.log),
	}, nil
}
