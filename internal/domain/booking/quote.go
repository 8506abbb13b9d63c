package booking

import (
	"errors"

	"frontdesk/internal/domain/discount"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrInvalidPricingInput = errors.New("invalid pricing input")

var hundred = decimal.NewFromInt(100)

// Quote is the computed pricing result for a stay. It is a value: computed
// fresh on every request and never mutated afterwards. Given the same inputs
// against an unchanged catalog the same Quote comes back.
type Quote struct {
	Nights          int
	BasePrice       decimal.Decimal
	DiscountID      *uuid.UUID
	DiscountPercent decimal.Decimal
	Total           decimal.Decimal
}

// ComputeTotal prices a stay: basePrice * nights reduced by percent, rounded
// to 2 decimals. Rounding is half-up (half away from zero; all amounts here
// are non-negative). Out-of-range inputs are a caller bug, not a pricing
// outcome, so they are rejected rather than clamped.
func ComputeTotal(basePrice decimal.Decimal, nights int, percent decimal.Decimal) (decimal.Decimal, error) {
	if basePrice.IsNegative() || nights < 1 {
		return decimal.Decimal{}, ErrInvalidPricingInput
	}
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return decimal.Decimal{}, ErrInvalidPricingInput
	}

	subtotal := basePrice.Mul(decimal.NewFromInt(int64(nights)))
	total := subtotal.Sub(subtotal.Mul(percent).Div(hundred))
	return total.Round(2), nil
}

// NewQuote combines a stay's base price with the resolved rate (nil for no
// discount) into an immutable Quote.
func NewQuote(basePrice decimal.Decimal, nights int, rate *discount.Rate) (*Quote, error) {
	percent := decimal.Zero
	var discountID *uuid.UUID
	if rate != nil {
		percent = rate.Percent().Decimal()
		id := rate.ID()
		discountID = &id
	}

	total, err := ComputeTotal(basePrice, nights, percent)
	if err != nil {
		return nil, err
	}

	return &Quote{
		Nights:          nights,
		BasePrice:       basePrice,
		DiscountID:      discountID,
		DiscountPercent: percent,
		Total:           total,
	}, nil
}
