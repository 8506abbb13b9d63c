package response

import (
	"time"

	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	RoomTypeID      uuid.UUID  `json:"room_type_id"`
	RoomTypeName    string     `json:"room_type_name"`
	RoomID          uuid.UUID  `json:"room_id"`
	GuestName       string     `json:"guest_name"`
	GuestEmail      string     `json:"guest_email"`
	CheckIn         string     `json:"check_in"`
	CheckOut        string     `json:"check_out"`
	Nights          int32      `json:"nights"`
	Adults          int32      `json:"adults"`
	Children        int32      `json:"children"`
	Status          string     `json:"status"`
	BasePrice       string     `json:"base_price"`
	DiscountRateID  *uuid.UUID `json:"discount_rate_id,omitempty"`
	DiscountPercent string     `json:"discount_percent"`
	TotalAmount     string     `json:"total_amount"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReservationListItemResponse struct {
	ID           uuid.UUID `json:"id"`
	RoomTypeName string    `json:"room_type_name"`
	RoomID       uuid.UUID `json:"room_id"`
	GuestName    string    `json:"guest_name"`
	CheckIn      string    `json:"check_in"`
	CheckOut     string    `json:"check_out"`
	Status       string    `json:"status"`
	TotalAmount  string    `json:"total_amount"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToReservationResponse(v *queries.ReservationView) ReservationResponse {
	return ReservationResponse{
		ID:              v.ID,
		RoomTypeID:      v.RoomTypeID,
		RoomTypeName:    v.RoomTypeName,
		RoomID:          v.RoomID,
		GuestName:       v.GuestName,
		GuestEmail:      v.GuestEmail,
		CheckIn:         v.CheckIn.Format(time.DateOnly),
		CheckOut:        v.CheckOut.Format(time.DateOnly),
		Nights:          v.Nights,
		Adults:          v.Adults,
		Children:        v.Children,
		Status:          v.Status,
		BasePrice:       v.BasePrice.String(),
		DiscountRateID:  v.DiscountRateID,
		DiscountPercent: v.DiscountPercent.String(),
		TotalAmount:     v.TotalAmount.String(),
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func ToReservationListResponse(items []*queries.ReservationListItem) []ReservationListItemResponse {
	out := make([]ReservationListItemResponse, len(items))
	for i, item := range items {
		out[i] = ReservationListItemResponse{
			ID:           item.ID,
			RoomTypeName: item.RoomTypeName,
			RoomID:       item.RoomID,
			GuestName:    item.GuestName,
			CheckIn:      item.CheckIn.Format(time.DateOnly),
			CheckOut:     item.CheckOut.Format(time.DateOnly),
			Status:       item.Status,
			TotalAmount:  item.TotalAmount.String(),
			CreatedAt:    item.CreatedAt,
		}
	}
	return out
}
