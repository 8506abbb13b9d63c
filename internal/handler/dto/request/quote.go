package request

import (
	"frontdesk/internal/usecase"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	RoomTypeID     uuid.UUID  `json:"room_type_id" binding:"required"`
	CheckIn        Date       `json:"check_in" binding:"required"`
	CheckOut       Date       `json:"check_out" binding:"required"`
	Adults         int        `json:"adults" binding:"required,min=1"`
	Children       int        `json:"children" binding:"omitempty,min=0"`
	DiscountRateID *uuid.UUID `json:"discount_rate_id"`
}

func (r QuoteRequest) ToQuoteRequest() usecase.QuoteRequest {
	return usecase.QuoteRequest{
		RoomTypeID:     r.RoomTypeID,
		CheckIn:        r.CheckIn.Time,
		CheckOut:       r.CheckOut.Time,
		Adults:         r.Adults,
		Children:       r.Children,
		DiscountRateID: r.DiscountRateID,
	}
}
