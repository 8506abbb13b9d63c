package usecase

import (
	"context"
	"errors"
	"time"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/domain/discount"
	"frontdesk/internal/domain/roomtype"
	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRoomTypeNotFound   = errors.New("room type not found")
	ErrDiscountNotFound   = errors.New("discount rate not found")
	ErrInvalidStayWindow  = errors.New("invalid stay window")
	ErrOccupancyExceeded  = errors.New("party exceeds room type occupancy")
	ErrDiscountIneligible = errors.New("discount rate is not eligible for this stay")
	ErrDomainValidation   = errors.New("domain validation error")
)

// RoomTypeSnapshot is the catalog row as read from storage.
type RoomTypeSnapshot struct {
	ID           uuid.UUID
	Name         string
	BasePrice    decimal.Decimal
	MaxOccupancy int32
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type DiscountRateSnapshot struct {
	ID         uuid.UUID
	RoomTypeID uuid.UUID
	Percent    decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	MinNights  int32
	Active     bool
	CreatedAt  time.Time
}

type RoomTypeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomTypeSnapshot, error)
	FindAll(ctx context.Context) ([]*RoomTypeSnapshot, error)
}

type DiscountRateRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*DiscountRateSnapshot, error)
	FindActiveByRoomType(ctx context.Context, roomTypeID uuid.UUID) ([]*DiscountRateSnapshot, error)
	FindByRoomType(ctx context.Context, roomTypeID uuid.UUID) ([]*DiscountRateSnapshot, error)
	Insert(ctx context.Context, rate *discount.Rate) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type QuoteRequest struct {
	RoomTypeID     uuid.UUID
	CheckIn        time.Time
	CheckOut       time.Time
	Adults         int
	Children       int
	DiscountRateID *uuid.UUID
}

// QuoteService prices a stay against a point-in-time catalog read. It is
// pure: no retries, no state, and identical inputs against an unchanged
// catalog always produce the identical Quote.
type QuoteService interface {
	Quote(ctx context.Context, req QuoteRequest) (*booking.Quote, error)
}

type quoteServiceImpl struct {
	roomTypes RoomTypeRepository
	discounts DiscountRateRepository
}

func NewQuoteService(roomTypes RoomTypeRepository, discounts DiscountRateRepository) QuoteService {
	return &quoteServiceImpl{
		roomTypes: roomTypes,
		discounts: discounts,
	}
}

func (s *quoteServiceImpl) Quote(ctx context.Context, req QuoteRequest) (*booking.Quote, error) {
	stay, err := booking.NewStay(req.RoomTypeID, req.CheckIn, req.CheckOut, req.Adults, req.Children)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidStayWindow) {
			return nil, errs.Mark(err, ErrInvalidStayWindow)
		}
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	roomTypeEntity, err := s.validateAndGetRoomType(ctx, req.RoomTypeID)
	if err != nil {
		return nil, err
	}

	if !roomTypeEntity.CanAccommodate(stay.Guests()) {
		return nil, ErrOccupancyExceeded
	}

	rate, err := s.resolveRate(ctx, stay, req.DiscountRateID)
	if err != nil {
		return nil, err
	}

	quote, err := booking.NewQuote(roomTypeEntity.BasePrice(), stay.Nights(), rate)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	return quote, nil
}

func (s *quoteServiceImpl) validateAndGetRoomType(ctx context.Context, id uuid.UUID) (*roomtype.RoomType, error) {
	snapshot, err := s.roomTypes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, errs.Wrap(err, "failed to find room type")
	}

	entity, err := roomtype.NewRoomType(snapshot.ID, snapshot.Name, snapshot.BasePrice, int(snapshot.MaxOccupancy))
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return entity, nil
}

// resolveRate implements the two discount paths: an explicitly requested rate
// must pass the eligibility checks or the request fails (callers cannot force
// an invalid discount through, and falling back silently would charge a price
// the guest never saw); otherwise the best eligible rate is picked, and no
// match simply means no discount.
func (s *quoteServiceImpl) resolveRate(ctx context.Context, stay booking.Stay, explicitID *uuid.UUID) (*discount.Rate, error) {
	if explicitID != nil {
		snapshot, err := s.discounts.FindByID(ctx, *explicitID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrDiscountNotFound
			}
			return nil, errs.Wrap(err, "failed to find discount rate")
		}

		rate, err := toDiscountRate(snapshot)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}

		if eligErr := rate.EligibleFor(stay.RoomTypeID(), stay.CheckIn(), stay.CheckOut(), stay.Nights()); eligErr != nil {
			return nil, errs.Mark(eligErr, ErrDiscountIneligible)
		}
		return rate, nil
	}

	snapshots, err := s.discounts.FindActiveByRoomType(ctx, stay.RoomTypeID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to list discount rates")
	}

	rates := make([]*discount.Rate, 0, len(snapshots))
	for _, snapshot := range snapshots {
		rate, err := toDiscountRate(snapshot)
		if err != nil {
			return nil, errs.Mark(err, ErrDomainValidation)
		}
		rates = append(rates, rate)
	}

	return discount.PickBest(rates, stay.RoomTypeID(), stay.CheckIn(), stay.CheckOut(), stay.Nights()), nil
}

func toDiscountRate(s *DiscountRateSnapshot) (*discount.Rate, error) {
	return discount.NewRate(
		s.ID,
		s.RoomTypeID,
		s.Percent,
		s.StartDate,
		s.EndDate,
		int(s.MinNights),
		s.Active,
		s.CreatedAt,
	)
}
