package wire

import (
	"cinema-control/internal/adaptor"
	"cinema-control/internal/usecase"
	"cinema-control/pkg/middleware"
	"cinema-control/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/rooms", func(r chi.Router) {
		// Public catalog
		r.Get("/", roomHandler.GetRooms)
		r.Get("/{id}", roomHandler.GetRoomByID)

		// Company-managed mutations
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(config.JWT.Secret, log))
			r.Use(middleware.RequireRole(usecase.RoleCompany, log))

			r.Post("/", roomHandler.CreateRoom)
			r.Put("/{id}", roomHandler.UpdateRoom)
			r.Delete("/{id}", roomHandler.DeleteRoom)
		})
	})
}
