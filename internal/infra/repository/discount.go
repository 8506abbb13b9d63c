package repository

import (
	"context"

	"frontdesk/internal/domain/discount"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/db"
	"frontdesk/internal/pkg/pgconv"
	"frontdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const discountRateColumns = `id, room_type_id, percent, start_date, end_date, min_nights, active, created_at`

type DiscountRateRepository struct {
	db db.DBTX
}

func NewDiscountRateRepository(db db.DBTX) *DiscountRateRepository {
	return &DiscountRateRepository{db: db}
}

func (r *DiscountRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.DiscountRateSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+discountRateColumns+` FROM discount_rates WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)

	snapshot, err := scanDiscountRate(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount rate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find discount rate by ID", err)
	}
	return snapshot, nil
}

// FindActiveByRoomType orders candidates the same way the resolver prefers
// them so the selected rate is stable across reads.
func (r *DiscountRateRepository) FindActiveByRoomType(ctx context.Context, roomTypeID uuid.UUID) ([]*usecase.DiscountRateSnapshot, error) {
	return r.queryRates(ctx,
		`SELECT `+discountRateColumns+` FROM discount_rates
		 WHERE room_type_id = $1 AND active
		 ORDER BY percent DESC, created_at ASC, id ASC`,
		pgconv.UUIDToPgtype(roomTypeID),
	)
}

func (r *DiscountRateRepository) FindByRoomType(ctx context.Context, roomTypeID uuid.UUID) ([]*usecase.DiscountRateSnapshot, error) {
	return r.queryRates(ctx,
		`SELECT `+discountRateColumns+` FROM discount_rates
		 WHERE room_type_id = $1
		 ORDER BY created_at DESC, id ASC`,
		pgconv.UUIDToPgtype(roomTypeID),
	)
}

func (r *DiscountRateRepository) Insert(ctx context.Context, rate *discount.Rate) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO discount_rates (id, room_type_id, percent, start_date, end_date, min_nights, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
		pgconv.UUIDToPgtype(rate.ID()),
		pgconv.UUIDToPgtype(rate.RoomTypeID()),
		pgconv.NumericFromDecimal(rate.Percent().Decimal()),
		pgconv.DateToPgtype(rate.StartDate()),
		pgconv.DateToPgtype(rate.EndDate()),
		int32(rate.MinNights()),
		rate.IsActive(),
		pgconv.TimeToPgtype(rate.CreatedAt()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert discount rate", err)
	}
	return nil
}

func (r *DiscountRateRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE discount_rates SET active = false, updated_at = now() WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate discount rate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount rate not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DiscountRateRepository) queryRates(ctx context.Context, sql string, args ...any) ([]*usecase.DiscountRateSnapshot, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list discount rates", err)
	}
	defer rows.Close()

	var snapshots []*usecase.DiscountRateSnapshot
	for rows.Next() {
		snapshot, err := scanDiscountRate(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount rate row", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate discount rate rows", err)
	}
	return snapshots, nil
}

func scanDiscountRate(row rowScanner) (*usecase.DiscountRateSnapshot, error) {
	var (
		id         pgtype.UUID
		roomTypeID pgtype.UUID
		percent    pgtype.Numeric
		startDate  pgtype.Date
		endDate    pgtype.Date
		minNights  int32
		active     bool
		createdAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &roomTypeID, &percent, &startDate, &endDate, &minNights, &active, &createdAt); err != nil {
		return nil, err
	}

	pct, err := pgconv.DecimalFromNumeric(percent)
	if err != nil {
		return nil, err
	}

	return &usecase.DiscountRateSnapshot{
		ID:         uuid.UUID(id.Bytes),
		RoomTypeID: uuid.UUID(roomTypeID.Bytes),
		Percent:    pct,
		StartDate:  pgconv.DateFromPgtype(startDate),
		EndDate:    pgconv.DateFromPgtype(endDate),
		MinNights:  minNights,
		Active:     active,
		CreatedAt:  pgconv.TimeFromPgtype(createdAt),
	}, nil
}
