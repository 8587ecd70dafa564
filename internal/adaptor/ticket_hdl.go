package adaptor

import (
	"net/http"

	"cinema-control/internal/usecase"
	"cinema-control/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// GetMyTickets handles GET /api/tickets (authenticated)
func (h *TicketHandler) GetMyTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.service.FindAllForUser(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}
