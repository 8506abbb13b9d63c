package discount

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidPercent = errors.New("discount percent must be between 0 and 100")

var hundred = decimal.NewFromInt(100)

// Percent is a percentage reduction in [0, 100].
type Percent struct {
	value decimal.Decimal
}

func NewPercent(value decimal.Decimal) (Percent, error) {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return Percent{}, ErrInvalidPercent
	}
	return Percent{value: value}, nil
}

func ZeroPercent() Percent {
	return Percent{value: decimal.Zero}
}

func (p Percent) Decimal() decimal.Decimal {
	return p.value
}

func (p Percent) IsZero() bool {
	return p.value.IsZero()
}

// GreaterThan reports whether p is a larger reduction than other.
func (p Percent) GreaterThan(other Percent) bool {
	return p.value.GreaterThan(other.value)
}

func (p Percent) Equal(other Percent) bool {
	return p.value.Equal(other.value)
}

func (p Percent) String() string {
	return p.value.String()
}
