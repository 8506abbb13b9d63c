package discount

import (
	"bytes"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidValidityWindow = errors.New("validity window end date cannot be before start date")
	ErrInvalidMinNights      = errors.New("minimum nights must be at least 1")

	ErrWrongRoomType   = errors.New("discount rate applies to a different room type")
	ErrInactive        = errors.New("discount rate is not active")
	ErrOutsideValidity = errors.New("stay is not fully inside the discount validity window")
	ErrMinNightsNotMet = errors.New("stay is shorter than the discount minimum nights")
)

// Rate is a promotional rule: a percentage reduction scoped to one room type,
// a date window and a minimum stay length. Several rates may overlap for the
// same room type; eligibility and selection decide which one applies.
type Rate struct {
	id         uuid.UUID
	roomTypeID uuid.UUID
	percent    Percent
	startDate  time.Time
	endDate    time.Time
	minNights  int
	active     bool
	createdAt  time.Time
}

func NewRate(
	id uuid.UUID,
	roomTypeID uuid.UUID,
	percent decimal.Decimal,
	startDate, endDate time.Time,
	minNights int,
	active bool,
	createdAt time.Time,
) (*Rate, error) {
	pct, err := NewPercent(percent)
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidValidityWindow
	}
	if minNights < 1 {
		return nil, ErrInvalidMinNights
	}

	return &Rate{
		id:         id,
		roomTypeID: roomTypeID,
		percent:    pct,
		startDate:  startDate,
		endDate:    endDate,
		minNights:  minNights,
		active:     active,
		createdAt:  createdAt,
	}, nil
}

// EligibleFor checks the four eligibility conditions for a stay. Both window
// bounds are inclusive: a rate ending on the check-out date still applies.
func (r *Rate) EligibleFor(roomTypeID uuid.UUID, checkIn, checkOut time.Time, nights int) error {
	if r.roomTypeID != roomTypeID {
		return ErrWrongRoomType
	}
	if !r.active {
		return ErrInactive
	}
	if checkIn.Before(r.startDate) || checkOut.After(r.endDate) {
		return ErrOutsideValidity
	}
	if nights < r.minNights {
		return ErrMinNightsNotMet
	}
	return nil
}

// PickBest resolves the rate applied to a stay: among eligible candidates the
// guest always gets the largest percentage. Ties break on earliest createdAt,
// then smallest id, so identical inputs always resolve to the same rate.
// A nil result means the stay gets no discount; that is not an error.
func PickBest(rates []*Rate, roomTypeID uuid.UUID, checkIn, checkOut time.Time, nights int) *Rate {
	var best *Rate
	for _, r := range rates {
		if r.EligibleFor(roomTypeID, checkIn, checkOut, nights) != nil {
			continue
		}
		if best == nil || r.beats(best) {
			best = r
		}
	}
	return best
}

func (r *Rate) beats(other *Rate) bool {
	if !r.percent.Equal(other.percent) {
		return r.percent.GreaterThan(other.percent)
	}
	if !r.createdAt.Equal(other.createdAt) {
		return r.createdAt.Before(other.createdAt)
	}
	return bytes.Compare(r.id[:], other.id[:]) < 0
}

func (r *Rate) Deactivate() {
	r.active = false
}

func (r *Rate) ID() uuid.UUID         { return r.id }
func (r *Rate) RoomTypeID() uuid.UUID { return r.roomTypeID }
func (r *Rate) Percent() Percent      { return r.percent }
func (r *Rate) StartDate() time.Time  { return r.startDate }
func (r *Rate) EndDate() time.Time    { return r.endDate }
func (r *Rate) MinNights() int        { return r.minNights }
func (r *Rate) IsActive() bool        { return r.active }
func (r *Rate) CreatedAt() time.Time  { return r.createdAt }
