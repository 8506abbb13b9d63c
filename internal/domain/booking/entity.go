package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyGuestName    = errors.New("guest name cannot be empty")
	ErrInvalidGuestEmail = errors.New("guest email is not valid")
)

// Reservation is a priced, confirmed stay for a specific room. The quote is
// snapshotted at creation; later catalog changes never reprice an existing
// reservation.
type Reservation struct {
	id         uuid.UUID
	roomTypeID uuid.UUID
	roomID     uuid.UUID
	stay       Stay
	quote      Quote
	guestName  string
	guestEmail string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewReservation(
	roomTypeID, roomID uuid.UUID,
	stay Stay,
	quote Quote,
	guestName, guestEmail string,
) (*Reservation, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return nil, ErrEmptyGuestName
	}
	guestEmail = strings.TrimSpace(guestEmail)
	if !strings.Contains(guestEmail, "@") {
		return nil, ErrInvalidGuestEmail
	}

	return &Reservation{
		id:         uuid.New(),
		roomTypeID: roomTypeID,
		roomID:     roomID,
		stay:       stay,
		quote:      quote,
		guestName:  guestName,
		guestEmail: guestEmail,
		status:     StatusConfirmed,
	}, nil
}

func ReconstructReservation(
	id, roomTypeID, roomID uuid.UUID,
	stay Stay,
	quote Quote,
	guestName, guestEmail string,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:         id,
		roomTypeID: roomTypeID,
		roomID:     roomID,
		stay:       stay,
		quote:      quote,
		guestName:  guestName,
		guestEmail: guestEmail,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed
}

func (r *Reservation) HasEnded(now time.Time) bool {
	return now.After(r.stay.CheckOut())
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) RoomTypeID() uuid.UUID { return r.roomTypeID }
func (r *Reservation) RoomID() uuid.UUID     { return r.roomID }
func (r *Reservation) Stay() Stay            { return r.stay }
func (r *Reservation) Quote() Quote          { return r.quote }
func (r *Reservation) GuestName() string     { return r.guestName }
func (r *Reservation) GuestEmail() string    { return r.guestEmail }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
