package response

import "cinema-control/internal/data/entity"

type RoomResponse struct {
	ID       string `json:"id"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:       room.ID.String(),
		Number:   room.Number,
		Capacity: room.Capacity,
	}
}
