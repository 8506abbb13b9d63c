package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/infra"
	"frontdesk/internal/infra/db"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase"
	"frontdesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrReservationConflict     = errors.New("room is already reserved for overlapping dates")
	ErrDuplicateReservation    = errors.New("duplicate reservation request")
	ErrIdempotencyInProgress   = errors.New("reservation request is being processed")
	ErrIdempotencyCheckFailed  = errors.New("idempotency check failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type CreateReservationParams struct {
	RoomTypeID     uuid.UUID  `json:"room_type_id"`
	RoomID         uuid.UUID  `json:"room_id"`
	CheckIn        time.Time  `json:"check_in"`
	CheckOut       time.Time  `json:"check_out"`
	Adults         int        `json:"adults"`
	Children       int        `json:"children"`
	DiscountRateID *uuid.UUID `json:"discount_rate_id,omitempty"`
	GuestName      string     `json:"guest_name"`
	GuestEmail     string     `json:"guest_email"`
}

type CreateReservationResult struct {
	Reservation *queries.ReservationView
	IsReplayed  bool
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *booking.Reservation) (uuid.UUID, error)
}

type IdempotencyRecord struct {
	Key                 uuid.UUID
	Endpoint            string
	RequestHash         string
	Status              string
	ResultReservationID *uuid.UUID
	ExpiresAt           time.Time
}

type IdempotencyRepository interface {
	// TryInsert claims the key with a processing record. It reports false
	// when the key already existed, in which case Get tells us what to do
	// with the prior request.
	TryInsert(ctx context.Context, key uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	Get(ctx context.Context, key uuid.UUID) (*IdempotencyRecord, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, responseBodyHash string, resultReservationID uuid.UUID) error
}

// TxBeginner starts a transaction on the primary database. *pgxpool.Pool
// satisfies it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, params CreateReservationParams, idempotencyKey uuid.UUID) (*CreateReservationResult, error)
}

type reservationCommandsImpl struct {
	reservationRepo    ReservationRepository
	idempotencyRepo    IdempotencyRepository
	quoteService       usecase.QuoteService
	reservationQueries queries.ReservationQueries
	db                 TxBeginner
	clock              clock.Clock
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	idempotencyRepo IdempotencyRepository,
	quoteService usecase.QuoteService,
	reservationQueries queries.ReservationQueries,
	db TxBeginner,
	clock clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		reservationRepo:    reservationRepo,
		idempotencyRepo:    idempotencyRepo,
		quoteService:       quoteService,
		reservationQueries: reservationQueries,
		db:                 db,
		clock:              clock,
	}
}

func (r *reservationCommandsImpl) CreateReservation(
	ctx context.Context,
	params CreateReservationParams,
	idempotencyKey uuid.UUID,
) (*CreateReservationResult, error) {
	requestHash := r.calculateRequestHash(params)
	expiresAt := r.clock.Now().Add(24 * time.Hour)

	existingResult, err := r.handleIdempotency(ctx, idempotencyKey, requestHash, expiresAt)
	if err != nil {
		return nil, err
	}
	if existingResult != nil {
		return &CreateReservationResult{
			Reservation: existingResult,
			IsReplayed:  true,
		}, nil
	}

	reservationView, err := r.createNewReservation(ctx, params, idempotencyKey)
	if err != nil {
		return nil, err
	}
	return &CreateReservationResult{
		Reservation: reservationView,
		IsReplayed:  false,
	}, nil
}

func (r *reservationCommandsImpl) handleIdempotency(
	ctx context.Context,
	idempotencyKey uuid.UUID,
	requestHash string,
	expiresAt time.Time,
) (*queries.ReservationView, error) {
	inserted, err := r.idempotencyRepo.TryInsert(ctx, idempotencyKey, "POST /reservations", requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		// The key is ours; nothing prior to replay.
		return nil, nil
	}

	existing, err := r.idempotencyRepo.Get(ctx, idempotencyKey)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	switch existing.Status {
	case "completed":
		if existing.ResultReservationID != nil {
			return r.reservationQueries.GetByID(ctx, *existing.ResultReservationID)
		}
		return nil, errs.New("completed request missing result reservation ID")

	case "processing":
		if existing.RequestHash != requestHash {
			return nil, ErrDuplicateReservation
		}
		return nil, ErrIdempotencyInProgress

	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func (r *reservationCommandsImpl) createNewReservation(
	ctx context.Context,
	params CreateReservationParams,
	idempotencyKey uuid.UUID,
) (*queries.ReservationView, error) {
	quote, err := r.quoteService.Quote(ctx, usecase.QuoteRequest{
		RoomTypeID:     params.RoomTypeID,
		CheckIn:        params.CheckIn,
		CheckOut:       params.CheckOut,
		Adults:         params.Adults,
		Children:       params.Children,
		DiscountRateID: params.DiscountRateID,
	})
	if err != nil {
		return nil, err
	}

	// Same validation the quote service already ran; rebuilding here keeps
	// the entity constructor the single owner of stay invariants.
	stay, err := booking.NewStay(params.RoomTypeID, params.CheckIn, params.CheckOut, params.Adults, params.Children)
	if err != nil {
		return nil, errs.Mark(err, usecase.ErrDomainValidation)
	}

	reservationEntity, err := booking.NewReservation(
		params.RoomTypeID,
		params.RoomID,
		stay,
		*quote,
		params.GuestName,
		params.GuestEmail,
	)
	if err != nil {
		return nil, errs.Mark(err, usecase.ErrDomainValidation)
	}

	return r.executeReservationTransaction(ctx, reservationEntity, idempotencyKey)
}

func (r *reservationCommandsImpl) executeReservationTransaction(
	ctx context.Context,
	reservationEntity *booking.Reservation,
	idempotencyKey uuid.UUID,
) (*queries.ReservationView, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	reservationID, err := r.reservationRepo.Create(ctx, tx, reservationEntity)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrReservationConflict
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	responseHash := r.calculateIDHash(reservationID)
	if err := r.idempotencyRepo.UpdateStatusCompleted(ctx, tx, idempotencyKey, responseHash, reservationID); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if commitErr := tx.Commit(ctx); commitErr != nil {
		return nil, errs.Mark(commitErr, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the complete view from the read store
	reservationView, err := r.reservationQueries.GetByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return reservationView, nil
}

func (r *reservationCommandsImpl) calculateRequestHash(params CreateReservationParams) string {
	data, _ := json.Marshal(params)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func (r *reservationCommandsImpl) calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
