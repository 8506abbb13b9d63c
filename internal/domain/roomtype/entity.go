package roomtype

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyRoomTypeName   = errors.New("room type name cannot be empty")
	ErrRoomTypeNameTooLong = errors.New("room type name is too long (max 255 characters)")
	ErrNegativeBasePrice   = errors.New("base price cannot be negative")
	ErrInvalidOccupancy    = errors.New("max occupancy must be at least 1")
)

const (
	MaxRoomTypeNameLength = 255
)

// RoomType is a catalog entry: a category of room with a fixed nightly base
// price and a maximum occupancy. The catalog is maintained by an external
// admin surface; this service only reads it.
type RoomType struct {
	id           uuid.UUID
	name         string
	basePrice    decimal.Decimal
	maxOccupancy int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewRoomType(id uuid.UUID, name string, basePrice decimal.Decimal, maxOccupancy int) (*RoomType, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if basePrice.IsNegative() {
		return nil, ErrNegativeBasePrice
	}
	if maxOccupancy < 1 {
		return nil, ErrInvalidOccupancy
	}

	return &RoomType{
		id:           id,
		name:         strings.TrimSpace(name),
		basePrice:    basePrice,
		maxOccupancy: maxOccupancy,
	}, nil
}

func (r *RoomType) CanAccommodate(guests int) bool {
	return guests >= 1 && guests <= r.maxOccupancy
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomTypeName
	}
	if len(name) > MaxRoomTypeNameLength {
		return ErrRoomTypeNameTooLong
	}
	return nil
}

func (r *RoomType) ID() uuid.UUID              { return r.id }
func (r *RoomType) Name() string               { return r.name }
func (r *RoomType) BasePrice() decimal.Decimal { return r.basePrice }
func (r *RoomType) MaxOccupancy() int          { return r.maxOccupancy }
func (r *RoomType) CreatedAt() time.Time       { return r.createdAt }
func (r *RoomType) UpdatedAt() time.Time       { return r.updatedAt }
