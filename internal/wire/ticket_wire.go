package wire

import (
	"cinema-control/internal/adaptor"
	"cinema-control/pkg/middleware"
	"cinema-control/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTicket(
	r chi.Router,
	ticketHandler *adaptor.TicketHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/tickets", func(r chi.Router) {
		r.Use(middleware.AuthJWT(config.JWT.Secret, log))

		r.Get("/", ticketHandler.GetMyTickets)
	})
}
