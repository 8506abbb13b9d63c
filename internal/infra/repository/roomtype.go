package repository

import (
	"context"

	"frontdesk/internal/infra"
	"frontdesk/internal/infra/db"
	"frontdesk/internal/pkg/pgconv"
	"frontdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomTypeColumns = `id, name, base_price, max_occupancy, created_at, updated_at`

type RoomTypeRepository struct {
	db db.DBTX
}

func NewRoomTypeRepository(db db.DBTX) *RoomTypeRepository {
	return &RoomTypeRepository{db: db}
}

func (r *RoomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*usecase.RoomTypeSnapshot, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+roomTypeColumns+` FROM room_types WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)

	snapshot, err := scanRoomType(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room type not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room type by ID", err)
	}
	return snapshot, nil
}

func (r *RoomTypeRepository) FindAll(ctx context.Context) ([]*usecase.RoomTypeSnapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+roomTypeColumns+` FROM room_types ORDER BY name`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list room types", err)
	}
	defer rows.Close()

	var snapshots []*usecase.RoomTypeSnapshot
	for rows.Next() {
		snapshot, err := scanRoomType(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room type row", err)
		}
		snapshots = append(snapshots, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room type rows", err)
	}
	return snapshots, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomType(row rowScanner) (*usecase.RoomTypeSnapshot, error) {
	var (
		id           pgtype.UUID
		name         string
		basePrice    pgtype.Numeric
		maxOccupancy int32
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &basePrice, &maxOccupancy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	price, err := pgconv.DecimalFromNumeric(basePrice)
	if err != nil {
		return nil, err
	}

	return &usecase.RoomTypeSnapshot{
		ID:           uuid.UUID(id.Bytes),
		Name:         name,
		BasePrice:    price,
		MaxOccupancy: maxOccupancy,
		CreatedAt:    pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:    pgconv.TimeFromPgtype(updatedAt),
	}, nil
}
