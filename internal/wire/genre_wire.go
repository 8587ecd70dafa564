package wire

import (
	"cinema-control/internal/adaptor"
	"cinema-control/internal/usecase"
	"cinema-control/pkg/middleware"
	"cinema-control/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(
	r chi.Router,
	genreHandler *adaptor.GenreHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/genres", func(r chi.Router) {
		// Public catalog
		r.Get("/", genreHandler.GetGenres)
		r.Get("/{id}", genreHandler.GetGenreByID)

		// Company-managed mutations
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(config.JWT.Secret, log))
			r.Use(middleware.RequireRole(usecase.RoleCompany, log))

			r.Post("/", genreHandler.CreateGenre)
			r.Put("/{id}", genreHandler.UpdateGenre)
			r.Delete("/{id}", genreHandler.DeleteGenre)
		})
	})
}
