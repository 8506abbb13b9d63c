package booking

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStayWindow = errors.New("check-out must be strictly after check-in")
	ErrInvalidGuestCount = errors.New("a stay needs at least one adult and no negative guest counts")
)

// Stay is the requested check-in/check-out range for a room type. It is a
// per-request value object, never persisted on its own.
type Stay struct {
	roomTypeID uuid.UUID
	checkIn    time.Time
	checkOut   time.Time
	adults     int
	children   int
}

func NewStay(roomTypeID uuid.UUID, checkIn, checkOut time.Time, adults, children int) (Stay, error) {
	if !checkOut.After(checkIn) {
		return Stay{}, ErrInvalidStayWindow
	}
	if adults < 1 || children < 0 {
		return Stay{}, ErrInvalidGuestCount
	}

	return Stay{
		roomTypeID: roomTypeID,
		checkIn:    checkIn,
		checkOut:   checkOut,
		adults:     adults,
		children:   children,
	}, nil
}

// Nights counts 24-hour periods between check-in and check-out, rounded up.
// NewStay guarantees the window is positive, so this is always >= 1.
func (s Stay) Nights() int {
	hours := s.checkOut.Sub(s.checkIn).Hours()
	return int(math.Ceil(hours / 24))
}

func (s Stay) Guests() int {
	return s.adults + s.children
}

// ToDateRange renders the half-open daterange used by the reservations
// overlap constraint.
func (s Stay) ToDateRange() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.DateOnly), s.checkOut.Format(time.DateOnly))
}

func (s Stay) RoomTypeID() uuid.UUID { return s.roomTypeID }
func (s Stay) CheckIn() time.Time    { return s.checkIn }
func (s Stay) CheckOut() time.Time   { return s.checkOut }
func (s Stay) Adults() int           { return s.adults }
func (s Stay) Children() int         { return s.children }
