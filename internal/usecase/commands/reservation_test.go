//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"
	commandsmock "frontdesk/tests/mock/commands"
	queriesmock "frontdesk/tests/mock/queries"
	usecasemock "frontdesk/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// stubTx stands in for a pgx transaction. The repositories touching it are
// mocked, so only Commit and the deferred Rollback are ever called.
type stubTx struct {
	pgx.Tx
	committed bool
}

func (s *stubTx) Commit(_ context.Context) error { s.committed = true; return nil }

func (s *stubTx) Rollback(_ context.Context) error {
	if s.committed {
		return pgx.ErrTxClosed
	}
	return nil
}

type stubTxBeginner struct{ tx *stubTx }

func (s stubTxBeginner) Begin(_ context.Context) (pgx.Tx, error) { return s.tx, nil }

type reservationCommandsFixture struct {
	reservationRepo *commandsmock.MockReservationRepository
	idempotencyRepo *commandsmock.MockIdempotencyRepository
	quoteService    *usecasemock.MockQuoteService
	queries         *queriesmock.MockReservationQueries
	clock           *clock.MockClock
	tx              *stubTx
	commands        commands.ReservationCommands
}

func newReservationCommandsFixture(t *testing.T) *reservationCommandsFixture {
	ctrl := gomock.NewController(t)

	f := &reservationCommandsFixture{
		reservationRepo: commandsmock.NewMockReservationRepository(ctrl),
		idempotencyRepo: commandsmock.NewMockIdempotencyRepository(ctrl),
		quoteService:    usecasemock.NewMockQuoteService(ctrl),
		queries:         queriesmock.NewMockReservationQueries(ctrl),
		clock:           clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
		tx:              &stubTx{},
	}
	f.commands = commands.NewReservationCommands(
		f.reservationRepo,
		f.idempotencyRepo,
		f.quoteService,
		f.queries,
		stubTxBeginner{tx: f.tx},
		f.clock,
	)
	return f
}

func validParams() commands.CreateReservationParams {
	return commands.CreateReservationParams{
		RoomTypeID: uuid.New(),
		RoomID:     uuid.New(),
		CheckIn:    time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
		Adults:     2,
		Children:   0,
		GuestName:  "Ada Lovelace",
		GuestEmail: "ada@example.com",
	}
}

func sampleQuote() *booking.Quote {
	return &booking.Quote{
		Nights:          3,
		BasePrice:       decimal.NewFromInt(100),
		DiscountPercent: decimal.NewFromInt(10),
		Total:           decimal.NewFromInt(270),
	}
}

func TestCreateReservation_FreshKeyCreates(t *testing.T) {
	ctx := context.Background()
	f := newReservationCommandsFixture(t)

	key := uuid.New()
	reservationID := uuid.New()
	params := validParams()

	// A won insert means no prior record, so Get must not be consulted.
	f.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), key, "POST /reservations", gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.quoteService.EXPECT().
		Quote(gomock.Any(), gomock.Any()).
		Return(sampleQuote(), nil)
	f.reservationRepo.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(reservationID, nil)
	f.idempotencyRepo.EXPECT().
		UpdateStatusCompleted(gomock.Any(), gomock.Any(), key, gomock.Any(), reservationID).
		Return(nil)
	f.queries.EXPECT().GetByID(gomock.Any(), reservationID).
		Return(&queries.ReservationView{ID: reservationID}, nil)

	result, err := f.commands.CreateReservation(ctx, params, key)
	require.NoError(t, err)
	assert.False(t, result.IsReplayed)
	assert.Equal(t, reservationID, result.Reservation.ID)
	assert.True(t, f.tx.committed)
}

func TestCreateReservation_OverlapConflict(t *testing.T) {
	ctx := context.Background()
	f := newReservationCommandsFixture(t)

	key := uuid.New()

	f.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true, nil)
	f.quoteService.EXPECT().
		Quote(gomock.Any(), gomock.Any()).
		Return(sampleQuote(), nil)
	f.reservationRepo.EXPECT().
		Create(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(uuid.Nil, infra.WrapRepoErr("overlapping reservation", assert.AnError, infra.KindConflict))

	_, err := f.commands.CreateReservation(ctx, validParams(), key)
	assert.ErrorIs(t, err, commands.ErrReservationConflict)
	assert.False(t, f.tx.committed)
}

func TestCreateReservation_IdempotencyReplay(t *testing.T) {
	ctx := context.Background()
	f := newReservationCommandsFixture(t)

	key := uuid.New()
	reservationID := uuid.New()
	params := validParams()

	var capturedHash string
	f.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), key, "POST /reservations", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, hash string, _ time.Time) (bool, error) {
			capturedHash = hash
			return false, nil
		})
	f.idempotencyRepo.EXPECT().Get(gomock.Any(), key).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*commands.IdempotencyRecord, error) {
			return &commands.IdempotencyRecord{
				Key:                 key,
				Status:              "completed",
				RequestHash:         capturedHash,
				ResultReservationID: &reservationID,
			}, nil
		})
	f.queries.EXPECT().GetByID(gomock.Any(), reservationID).
		Return(&queries.ReservationView{ID: reservationID}, nil)

	result, err := f.commands.CreateReservation(ctx, params, key)
	require.NoError(t, err)
	assert.True(t, result.IsReplayed)
	assert.Equal(t, reservationID, result.Reservation.ID)
}

func TestCreateReservation_IdempotencyKeyReuse(t *testing.T) {
	ctx := context.Background()
	f := newReservationCommandsFixture(t)

	key := uuid.New()

	f.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)
	f.idempotencyRepo.EXPECT().Get(gomock.Any(), key).
		Return(&commands.IdempotencyRecord{
			Key:         key,
			Status:      "processing",
			RequestHash: "some-other-request-hash",
		}, nil)

	_, err := f.commands.CreateReservation(ctx, validParams(), key)
	assert.ErrorIs(t, err, commands.ErrDuplicateReservation)
}

func TestCreateReservation_IdempotencyInProgress(t *testing.T) {
	ctx := context.Background()
	f := newReservationCommandsFixture(t)

	key := uuid.New()
	params := validParams()

	var capturedHash string
	f.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, hash string, _ time.Time) (bool, error) {
			capturedHash = hash
			return false, nil
		})
	f.idempotencyRepo.EXPECT().Get(gomock.Any(), key).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*commands.IdempotencyRecord, error) {
			return &commands.IdempotencyRecord{
				Key:         key,
				Status:      "processing",
				RequestHash: capturedHash,
			}, nil
		})

	_, err := f.commands.CreateReservation(ctx, params, key)
	assert.ErrorIs(t, err, commands.ErrIdempotencyInProgress)
}

func TestCreateReservation_IdempotencyCheckFailure(t *testing.T) {
	ctx := context.Background()
	f := newReservationCommandsFixture(t)

	key := uuid.New()

	f.idempotencyRepo.EXPECT().
		TryInsert(gomock.Any(), key, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, assert.AnError)

	_, err := f.commands.CreateReservation(ctx, validParams(), key)
	assert.ErrorIs(t, err, commands.ErrIdempotencyCheckFailed)
}
