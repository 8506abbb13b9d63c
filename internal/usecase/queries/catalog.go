package queries

import (
	"context"
	"time"

	"frontdesk/internal/infra"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RoomTypeView struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	BasePrice    decimal.Decimal `json:"base_price"`
	MaxOccupancy int32           `json:"max_occupancy"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type DiscountRateView struct {
	ID         uuid.UUID       `json:"id"`
	RoomTypeID uuid.UUID       `json:"room_type_id"`
	Percent    decimal.Decimal `json:"percent"`
	StartDate  time.Time       `json:"start_date"`
	EndDate    time.Time       `json:"end_date"`
	MinNights  int32           `json:"min_nights"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
}

// CatalogQueries exposes read-only views of the rate catalog. Mutations to
// room types happen in the admin surface outside this service.
type CatalogQueries interface {
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error)
	ListDiscountRates(ctx context.Context, roomTypeID uuid.UUID) ([]*DiscountRateView, error)
}

type catalogQueriesImpl struct {
	roomTypes usecase.RoomTypeRepository
	discounts usecase.DiscountRateRepository
}

func NewCatalogQueries(roomTypes usecase.RoomTypeRepository, discounts usecase.DiscountRateRepository) CatalogQueries {
	return &catalogQueriesImpl{
		roomTypes: roomTypes,
		discounts: discounts,
	}
}

func (q *catalogQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	snapshots, err := q.roomTypes.FindAll(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list room types")
	}

	views := make([]*RoomTypeView, len(snapshots))
	for i, s := range snapshots {
		views[i] = toRoomTypeView(s)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetRoomType(ctx context.Context, id uuid.UUID) (*RoomTypeView, error) {
	snapshot, err := q.roomTypes.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, usecase.ErrRoomTypeNotFound
		}
		return nil, errs.Wrap(err, "failed to find room type")
	}
	return toRoomTypeView(snapshot), nil
}

func (q *catalogQueriesImpl) ListDiscountRates(ctx context.Context, roomTypeID uuid.UUID) ([]*DiscountRateView, error) {
	if _, err := q.roomTypes.FindByID(ctx, roomTypeID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, usecase.ErrRoomTypeNotFound
		}
		return nil, errs.Wrap(err, "failed to find room type")
	}

	snapshots, err := q.discounts.FindByRoomType(ctx, roomTypeID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list discount rates")
	}

	views := make([]*DiscountRateView, len(snapshots))
	for i, s := range snapshots {
		views[i] = &DiscountRateView{
			ID:         s.ID,
			RoomTypeID: s.RoomTypeID,
			Percent:    s.Percent,
			StartDate:  s.StartDate,
			EndDate:    s.EndDate,
			MinNights:  s.MinNights,
			Active:     s.Active,
			CreatedAt:  s.CreatedAt,
		}
	}
	return views, nil
}

func toRoomTypeView(s *usecase.RoomTypeSnapshot) *RoomTypeView {
	return &RoomTypeView{
		ID:           s.ID,
		Name:         s.Name,
		BasePrice:    s.BasePrice,
		MaxOccupancy: s.MaxOccupancy,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
