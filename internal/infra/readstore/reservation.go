package readstore

import (
	"context"
	"time"

	"frontdesk/internal/infra"
	"frontdesk/internal/infra/db"
	"frontdesk/internal/pkg/pgconv"
	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

var _ queries.ReservationReadStore = (*ReservationReadStore)(nil)

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT r.id, r.room_type_id, rt.name, r.room_id,
		        r.guest_id, g.name, g.email,
		        r.check_in, r.check_out, r.nights, r.adults, r.children, r.status,
		        r.base_price, r.discount_rate_id, r.discount_percent, r.total_amount,
		        r.created_at, r.updated_at
		 FROM reservations r
		 JOIN room_types rt ON rt.id = r.room_type_id
		 JOIN guests g ON g.id = r.guest_id
		 WHERE r.id = $1`,
		pgconv.UUIDToPgtype(id),
	)

	var (
		resID           pgtype.UUID
		roomTypeID      pgtype.UUID
		roomTypeName    string
		roomID          pgtype.UUID
		guestID         pgtype.UUID
		guestName       string
		guestEmail      string
		checkIn         pgtype.Date
		checkOut        pgtype.Date
		nights          int32
		adults          int32
		children        int32
		status          string
		basePrice       pgtype.Numeric
		discountRateID  pgtype.UUID
		discountPercent pgtype.Numeric
		totalAmount     pgtype.Numeric
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)
	err := row.Scan(
		&resID, &roomTypeID, &roomTypeName, &roomID,
		&guestID, &guestName, &guestEmail,
		&checkIn, &checkOut, &nights, &adults, &children, &status,
		&basePrice, &discountRateID, &discountPercent, &totalAmount,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	base, err := pgconv.DecimalFromNumeric(basePrice)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert base price", err)
	}
	pct, err := pgconv.DecimalFromNumeric(discountPercent)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert discount percent", err)
	}
	total, err := pgconv.DecimalFromNumeric(totalAmount)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert total amount", err)
	}

	return &queries.ReservationView{
		ID:              uuid.UUID(resID.Bytes),
		RoomTypeID:      uuid.UUID(roomTypeID.Bytes),
		RoomTypeName:    roomTypeName,
		RoomID:          uuid.UUID(roomID.Bytes),
		GuestID:         uuid.UUID(guestID.Bytes),
		GuestName:       guestName,
		GuestEmail:      guestEmail,
		CheckIn:         pgconv.DateFromPgtype(checkIn),
		CheckOut:        pgconv.DateFromPgtype(checkOut),
		Nights:          nights,
		Adults:          adults,
		Children:        children,
		Status:          status,
		BasePrice:       base,
		DiscountRateID:  pgconv.UUIDPtrFromPgtype(discountRateID),
		DiscountPercent: pct,
		TotalAmount:     total,
		CreatedAt:       pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:       pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

func (s *ReservationReadStore) FindUpcoming(ctx context.Context, from time.Time, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT r.id, rt.name, r.room_id, g.name,
		        r.check_in, r.check_out, r.status, r.total_amount, r.created_at
		 FROM reservations r
		 JOIN room_types rt ON rt.id = r.room_type_id
		 JOIN guests g ON g.id = r.guest_id
		 WHERE r.check_in >= $1
		 ORDER BY r.check_in ASC, r.created_at ASC
		 LIMIT $2`,
		pgconv.DateToPgtype(from),
		limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming reservations", err)
	}
	defer rows.Close()

	var items []*queries.ReservationListItem
	for rows.Next() {
		var (
			resID        pgtype.UUID
			roomTypeName string
			roomID       pgtype.UUID
			guestName    string
			checkIn      pgtype.Date
			checkOut     pgtype.Date
			status       string
			totalAmount  pgtype.Numeric
			createdAt    pgtype.Timestamptz
		)
		if err := rows.Scan(&resID, &roomTypeName, &roomID, &guestName, &checkIn, &checkOut, &status, &totalAmount, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}

		total, err := pgconv.DecimalFromNumeric(totalAmount)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert total amount", err)
		}

		items = append(items, &queries.ReservationListItem{
			ID:           uuid.UUID(resID.Bytes),
			RoomTypeName: roomTypeName,
			RoomID:       uuid.UUID(roomID.Bytes),
			GuestName:    guestName,
			CheckIn:      pgconv.DateFromPgtype(checkIn),
			CheckOut:     pgconv.DateFromPgtype(checkOut),
			Status:       status,
			TotalAmount:  total,
			CreatedAt:    pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return items, nil
}
