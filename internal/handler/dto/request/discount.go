package request

import (
	"frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDiscountRateRequest struct {
	RoomTypeID uuid.UUID       `json:"room_type_id" binding:"required"`
	Percent    decimal.Decimal `json:"percent" binding:"required"`
	StartDate  Date            `json:"start_date" binding:"required"`
	EndDate    Date            `json:"end_date" binding:"required"`
	MinNights  int             `json:"min_nights" binding:"required,min=1"`
	Active     *bool           `json:"active"`
}

func (r CreateDiscountRateRequest) ToParams() commands.CreateDiscountRateParams {
	active := true
	if r.Active != nil {
		active = *r.Active
	}
	return commands.CreateDiscountRateParams{
		RoomTypeID: r.RoomTypeID,
		Percent:    r.Percent,
		StartDate:  r.StartDate.Time,
		EndDate:    r.EndDate.Time,
		MinNights:  r.MinNights,
		Active:     active,
	}
}
