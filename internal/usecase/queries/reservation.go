package queries

import (
	"context"
	"errors"
	"time"

	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrReservationNotFound = errors.New("reservation not found")

// ReservationView is the read model returned to callers: the stay, the guest
// and the pricing snapshot taken when the reservation was created.
type ReservationView struct {
	ID              uuid.UUID       `json:"id"`
	RoomTypeID      uuid.UUID       `json:"room_type_id"`
	RoomTypeName    string          `json:"room_type_name"`
	RoomID          uuid.UUID       `json:"room_id"`
	GuestID         uuid.UUID       `json:"guest_id"`
	GuestName       string          `json:"guest_name"`
	GuestEmail      string          `json:"guest_email"`
	CheckIn         time.Time       `json:"check_in"`
	CheckOut        time.Time       `json:"check_out"`
	Nights          int32           `json:"nights"`
	Adults          int32           `json:"adults"`
	Children        int32           `json:"children"`
	Status          string          `json:"status"`
	BasePrice       decimal.Decimal `json:"base_price"`
	DiscountRateID  *uuid.UUID      `json:"discount_rate_id,omitempty"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID       `json:"id"`
	RoomTypeName string          `json:"room_type_name"`
	RoomID       uuid.UUID       `json:"room_id"`
	GuestName    string          `json:"guest_name"`
	CheckIn      time.Time       `json:"check_in"`
	CheckOut     time.Time       `json:"check_out"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	CreatedAt    time.Time       `json:"created_at"`
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindUpcoming(ctx context.Context, from time.Time, limit int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Wrap(err, "failed to find reservation")
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListUpcoming(ctx context.Context, from time.Time, limit int) ([]*ReservationListItem, error) {
	if limit <= 0 {
		limit = 50
	}
	items, err := q.store.FindUpcoming(ctx, from, int32(limit))
	if err != nil {
		return nil, errs.Wrap(err, "failed to list reservations")
	}
	return items, nil
}
