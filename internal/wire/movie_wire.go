package wire

import (
	"cinema-control/internal/adaptor"
	"cinema-control/internal/usecase"
	"cinema-control/pkg/middleware"
	"cinema-control/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/movies", func(r chi.Router) {
		// Public catalog
		r.Get("/", movieHandler.GetMovies)
		r.Get("/{id}", movieHandler.GetMovieByID)

		// Company-managed mutations
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(config.JWT.Secret, log))
			r.Use(middleware.RequireRole(usecase.RoleCompany, log))

			r.Post("/", movieHandler.CreateMovie)
			r.Put("/{id}", movieHandler.UpdateMovie)
			r.Delete("/{id}", movieHandler.DeleteMovie)
		})
	})
}
