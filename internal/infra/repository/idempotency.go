package repository

import (
	"context"
	"time"

	"frontdesk/internal/infra"
	"frontdesk/internal/infra/db"
	"frontdesk/internal/pkg/pgconv"
	"frontdesk/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

var _ commands.IdempotencyRepository = (*IdempotencyRepository)(nil)

// TryInsert claims the key for this request. ON CONFLICT DO NOTHING touches
// zero rows when the key already exists, so RowsAffected distinguishes a won
// claim from a replayed one.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`INSERT INTO idempotency_keys (key, endpoint, request_hash, status, expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, 'processing', $4, now(), now())
		 ON CONFLICT (key) DO NOTHING`,
		pgconv.UUIDToPgtype(key),
		endpoint,
		requestHash,
		pgconv.TimeToPgtype(expiresAt),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert idempotency key", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID) (*commands.IdempotencyRecord, error) {
	row := r.db.QueryRow(ctx,
		`SELECT key, endpoint, request_hash, status, result_reservation_id, expires_at
		 FROM idempotency_keys WHERE key = $1`,
		pgconv.UUIDToPgtype(key),
	)

	var (
		keyCol        pgtype.UUID
		endpoint      string
		requestHash   string
		status        string
		reservationID pgtype.UUID
		expiresAt     pgtype.Timestamptz
	)
	if err := row.Scan(&keyCol, &endpoint, &requestHash, &status, &reservationID, &expiresAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	return &commands.IdempotencyRecord{
		Key:                 uuid.UUID(keyCol.Bytes),
		Endpoint:            endpoint,
		RequestHash:         requestHash,
		Status:              status,
		ResultReservationID: pgconv.UUIDPtrFromPgtype(reservationID),
		ExpiresAt:           pgconv.TimeFromPgtype(expiresAt),
	}, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, responseBodyHash string, resultReservationID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`UPDATE idempotency_keys
		 SET status = 'completed', response_body_hash = $2, result_reservation_id = $3, updated_at = now()
		 WHERE key = $1`,
		pgconv.UUIDToPgtype(key),
		responseBodyHash,
		pgconv.UUIDToPgtype(resultReservationID),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}
