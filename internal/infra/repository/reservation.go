package repository

import (
	"context"
	"errors"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/db"
	"frontdesk/internal/pkg/pgconv"
	"frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

var _ commands.ReservationRepository = (*ReservationRepository)(nil)

// Create persists the guest and the reservation inside the caller's
// transaction. Overlapping stays for the same room are rejected by the
// reservations_no_overlap exclusion constraint.
func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	// TODO: look up an existing guest by email before inserting; repeat
	// bookings currently accumulate duplicate guest rows.
	guestID := uuid.New()
	_, err := tx.Exec(ctx,
		`INSERT INTO guests (id, name, email, created_at) VALUES ($1, $2, $3, now())`,
		pgconv.UUIDToPgtype(guestID),
		res.GuestName(),
		res.GuestEmail(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert guest", err)
	}

	stay := res.Stay()
	quote := res.Quote()
	_, err = tx.Exec(ctx,
		`INSERT INTO reservations (
			id, room_type_id, room_id, guest_id,
			check_in, check_out, nights, adults, children, status,
			base_price, discount_rate_id, discount_percent, total_amount,
			created_at, updated_at
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now(), now())`,
		pgconv.UUIDToPgtype(res.ID()),
		pgconv.UUIDToPgtype(res.RoomTypeID()),
		pgconv.UUIDToPgtype(res.RoomID()),
		pgconv.UUIDToPgtype(guestID),
		pgconv.DateToPgtype(stay.CheckIn()),
		pgconv.DateToPgtype(stay.CheckOut()),
		int32(quote.Nights),
		int32(stay.Adults()),
		int32(stay.Children()),
		res.Status().String(),
		pgconv.NumericFromDecimal(quote.BasePrice),
		pgconv.UUIDPtrToPgtype(quote.DiscountID),
		pgconv.NumericFromDecimal(quote.DiscountPercent),
		pgconv.NumericFromDecimal(quote.Total),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgExclusionViolation:
				return uuid.Nil, infra.WrapRepoErr("room already reserved for overlapping dates", err, infra.KindConflict)
			case pgUniqueViolation:
				return uuid.Nil, infra.WrapRepoErr("duplicate reservation", err, infra.KindDuplicateKey)
			}
		}
		return uuid.Nil, infra.WrapRepoErr("failed to insert reservation", err)
	}

	return res.ID(), nil
}
