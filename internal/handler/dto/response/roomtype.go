package response

import (
	"time"

	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomTypeResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	BasePrice    string    `json:"base_price"`
	MaxOccupancy int32     `json:"max_occupancy"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToRoomTypeResponse(v *queries.RoomTypeView) RoomTypeResponse {
	return RoomTypeResponse{
		ID:           v.ID,
		Name:         v.Name,
		BasePrice:    v.BasePrice.String(),
		MaxOccupancy: v.MaxOccupancy,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func ToRoomTypeListResponse(views []*queries.RoomTypeView) []RoomTypeResponse {
	out := make([]RoomTypeResponse, len(views))
	for i, v := range views {
		out[i] = ToRoomTypeResponse(v)
	}
	return out
}
