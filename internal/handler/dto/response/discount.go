package response

import (
	"time"

	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type DiscountRateResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomTypeID uuid.UUID `json:"room_type_id"`
	Percent    string    `json:"percent"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	MinNights  int32     `json:"min_nights"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateDiscountRateResponse struct {
	ID uuid.UUID `json:"id"`
}

func ToDiscountRateResponse(v *queries.DiscountRateView) DiscountRateResponse {
	return DiscountRateResponse{
		ID:         v.ID,
		RoomTypeID: v.RoomTypeID,
		Percent:    v.Percent.String(),
		StartDate:  v.StartDate.Format(time.DateOnly),
		EndDate:    v.EndDate.Format(time.DateOnly),
		MinNights:  v.MinNights,
		Active:     v.Active,
		CreatedAt:  v.CreatedAt,
	}
}

func ToDiscountRateListResponse(views []*queries.DiscountRateView) []DiscountRateResponse {
	out := make([]DiscountRateResponse, len(views))
	for i, v := range views {
		out[i] = ToDiscountRateResponse(v)
	}
	return out
}
