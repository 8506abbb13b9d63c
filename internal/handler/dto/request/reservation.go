package request

import (
	"frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RoomTypeID     uuid.UUID  `json:"room_type_id" binding:"required"`
	RoomID         uuid.UUID  `json:"room_id" binding:"required"`
	CheckIn        Date       `json:"check_in" binding:"required"`
	CheckOut       Date       `json:"check_out" binding:"required"`
	Adults         int        `json:"adults" binding:"required,min=1"`
	Children       int        `json:"children" binding:"omitempty,min=0"`
	DiscountRateID *uuid.UUID `json:"discount_rate_id"`
	GuestName      string     `json:"guest_name" binding:"required,max=255"`
	GuestEmail     string     `json:"guest_email" binding:"required,email"`
}

func (r CreateReservationRequest) ToParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		RoomTypeID:     r.RoomTypeID,
		RoomID:         r.RoomID,
		CheckIn:        r.CheckIn.Time,
		CheckOut:       r.CheckOut.Time,
		Adults:         r.Adults,
		Children:       r.Children,
		DiscountRateID: r.DiscountRateID,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
	}
}
