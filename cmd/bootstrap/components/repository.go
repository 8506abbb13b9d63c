package components

import (
	"frontdesk/internal/infra/db"
	"frontdesk/internal/infra/readstore"
	"frontdesk/internal/infra/repository"
	"frontdesk/internal/usecase"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repository.NewRoomTypeRepository,
			fx.As(new(usecase.RoomTypeRepository)),
		),
		fx.Annotate(
			repository.NewDiscountRateRepository,
			fx.As(new(usecase.DiscountRateRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewIdempotencyRepository,
			fx.As(new(commands.IdempotencyRepository)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
