// internal/wire/wire.go
package wire

import (
	"net/http"

	"cinema-control/internal/adaptor"
	"cinema-control/internal/data/repository"
	"cinema-control/internal/usecase"
	"cinema-control/pkg/middleware"
	"cinema-control/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring connects repositories, the unit-of-work factory and the tenant
// provider into services, handlers and routes.
func Wiring(repo *repository.Repository, uow repository.UnitOfWorkFactory, config *utils.Config, logger *zap.Logger) *App {
	tenant := usecase.NewContextTenantProvider()
	service := usecase.NewService(repo, uow, tenant, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	// Apply routes
	wireGenre(r, handler.Genre, config, logger)
	wireMovie(r, handler.Movie, config, logger)
	wireRoom(r, handler.Room, config, logger)
	wireSession(r, handler.Session, config, logger)
	wireTicket(r, handler.Ticket, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
