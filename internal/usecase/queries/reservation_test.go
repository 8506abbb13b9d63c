//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase/queries"
	queriesmock "frontdesk/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReservationQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(&queries.ReservationView{ID: id}, nil)

		view, err := q.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, id, view.ID)
	})

	t.Run("not found maps to sentinel", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("not found", errs.New("no rows"), infra.KindNotFound))

		_, err := q.GetByID(ctx, id)
		assert.ErrorIs(t, err, queries.ErrReservationNotFound)
	})
}

func TestReservationQueries_ListUpcoming(t *testing.T) {
	ctx := context.Background()
	from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("zero limit falls back to default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		store.EXPECT().FindUpcoming(gomock.Any(), from, int32(50)).Return(nil, nil)

		_, err := q.ListUpcoming(ctx, from, 0)
		require.NoError(t, err)
	})

	t.Run("explicit limit is passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		q := queries.NewReservationQueries(store)

		store.EXPECT().FindUpcoming(gomock.Any(), from, int32(10)).Return(nil, nil)

		_, err := q.ListUpcoming(ctx, from, 10)
		require.NoError(t, err)
	})
}
