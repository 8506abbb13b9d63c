package response

import (
	"frontdesk/internal/domain/booking"

	"github.com/google/uuid"
)

// Monetary fields are serialized as strings so clients never receive a
// binary-float approximation of a price.
type QuoteResponse struct {
	Nights          int        `json:"nights"`
	BasePrice       string     `json:"base_price"`
	DiscountRateID  *uuid.UUID `json:"discount_rate_id,omitempty"`
	DiscountPercent string     `json:"discount_percent"`
	TotalAmount     string     `json:"total_amount"`
}

func ToQuoteResponse(q *booking.Quote) QuoteResponse {
	return QuoteResponse{
		Nights:          q.Nights,
		BasePrice:       q.BasePrice.String(),
		DiscountRateID:  q.DiscountID,
		DiscountPercent: q.DiscountPercent.String(),
		TotalAmount:     q.Total.String(),
	}
}
