package wire

import (
	"cinema-control/internal/adaptor"
	"cinema-control/internal/usecase"
	"cinema-control/pkg/middleware"
	"cinema-control/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSession(
	r chi.Router,
	sessionHandler *adaptor.SessionHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/sessions", func(r chi.Router) {
		// Listing needs the caller's identity so company accounts get their
		// own schedule, but customers may browse too.
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))

		r.Get("/", sessionHandler.GetSessions)
		r.Get("/{id}", sessionHandler.GetSessionByID)

		// Any authenticated user can buy a seat.
		r.Post("/{id}/tickets", sessionHandler.SellTicket)

		// Schedule management is a company concern.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(usecase.RoleCompany, log))

			r.Post("/", sessionHandler.CreateSession)
			r.Put("/{id}", sessionHandler.UpdateSession)
			r.Delete("/{id}", sessionHandler.DeleteSession)
			r.Post("/{id}/close", sessionHandler.CloseSession)
		})
	})
}
