package commands

import (
	"context"
	"time"

	"frontdesk/internal/domain/discount"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateDiscountRateParams struct {
	RoomTypeID uuid.UUID
	Percent    decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	MinNights  int
	Active     bool
}

type CreateDiscountRateResult struct {
	DiscountRateID uuid.UUID
}

// DiscountCommands is the staff-facing administration of promotional rates.
type DiscountCommands interface {
	Create(ctx context.Context, params CreateDiscountRateParams) (*CreateDiscountRateResult, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type discountCommandsImpl struct {
	roomTypes usecase.RoomTypeRepository
	discounts usecase.DiscountRateRepository
	clock     clock.Clock
}

func NewDiscountCommands(
	roomTypes usecase.RoomTypeRepository,
	discounts usecase.DiscountRateRepository,
	clock clock.Clock,
) DiscountCommands {
	return &discountCommandsImpl{
		roomTypes: roomTypes,
		discounts: discounts,
		clock:     clock,
	}
}

func (c *discountCommandsImpl) Create(ctx context.Context, params CreateDiscountRateParams) (*CreateDiscountRateResult, error) {
	if _, err := c.roomTypes.FindByID(ctx, params.RoomTypeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, usecase.ErrRoomTypeNotFound
		}
		return nil, errs.Wrap(err, "failed to find room type")
	}

	rate, err := discount.NewRate(
		uuid.New(),
		params.RoomTypeID,
		params.Percent,
		params.StartDate,
		params.EndDate,
		params.MinNights,
		params.Active,
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, usecase.ErrDomainValidation)
	}

	if err := c.discounts.Insert(ctx, rate); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &CreateDiscountRateResult{DiscountRateID: rate.ID()}, nil
}

func (c *discountCommandsImpl) Deactivate(ctx context.Context, id uuid.UUID) error {
	if err := c.discounts.Deactivate(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return usecase.ErrDiscountNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
