package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-control/internal/dto/request"
	"cinema-control/internal/usecase"
	"cinema-control/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SessionHandler struct {
	service usecase.SessionService
	log     *zap.Logger
}

func NewSessionHandler(service usecase.SessionService, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "session")),
	}
}

// GetSessions handles GET /api/sessions. Company accounts see only their own
// schedule; the scoping lives in the service.
func (h *SessionHandler) GetSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.service.FindAll(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list sessions")
		return
	}

	utils.ResponseSuccess(w, "success", sessions)
}

// GetSessionByID handles GET /api/sessions/{id}
func (h *SessionHandler) GetSessionByID(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// CreateSession handles POST /api/sessions (company)
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req request.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create session")
		return
	}

	utils.ResponseCreated(w, "success", session)
}

// UpdateSession handles PUT /api/sessions/{id} (company)
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req request.SessionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	session, err := h.service.Edit(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// DeleteSession handles DELETE /api/sessions/{id} (company)
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, err, "delete session")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CloseSession handles POST /api/sessions/{id}/close (company)
func (h *SessionHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.service.Close(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "close session")
		return
	}

	utils.ResponseSuccess(w, "success", session)
}

// SellTicket handles POST /api/sessions/{id}/tickets (authenticated)
func (h *SessionHandler) SellTicket(w http.ResponseWriter, r *http.Request) {
	var req request.SellTicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	ticket, err := h.service.SellTicket(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "sell ticket")
		return
	}

	utils.ResponseCreated(w, "success", ticket)
}
