//go:build unit

package roomtype_test

import (
	"testing"

	"frontdesk/internal/domain/roomtype"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomType(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		rt, err := roomtype.NewRoomType(uuid.New(), "Deluxe King", decimal.NewFromInt(180), 3)
		require.NoError(t, err)
		assert.Equal(t, "Deluxe King", rt.Name())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := roomtype.NewRoomType(uuid.New(), "", decimal.NewFromInt(180), 3)
		assert.ErrorIs(t, err, roomtype.ErrEmptyRoomTypeName)
	})

	t.Run("negative base price rejected", func(t *testing.T) {
		_, err := roomtype.NewRoomType(uuid.New(), "Deluxe King", decimal.NewFromInt(-1), 3)
		assert.ErrorIs(t, err, roomtype.ErrNegativeBasePrice)
	})

	t.Run("zero occupancy rejected", func(t *testing.T) {
		_, err := roomtype.NewRoomType(uuid.New(), "Deluxe King", decimal.NewFromInt(180), 0)
		assert.ErrorIs(t, err, roomtype.ErrInvalidOccupancy)
	})
}

func TestRoomType_CanAccommodate(t *testing.T) {
	rt, err := roomtype.NewRoomType(uuid.New(), "Twin", decimal.NewFromInt(120), 2)
	require.NoError(t, err)

	assert.True(t, rt.CanAccommodate(1))
	assert.True(t, rt.CanAccommodate(2))
	assert.False(t, rt.CanAccommodate(3))
}
