package components

import (
	"frontdesk/internal/handler"
	"frontdesk/internal/handler/api"
	"frontdesk/internal/handler/middleware"
	"frontdesk/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQuoteHandler,
		api.NewReservationHandler,
		api.NewRoomTypeHandler,
		api.NewDiscountHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
		NewRequestLogger,
		handler.NewRouter,
	),
)

func NewHandlers(
	quote *api.QuoteHandler,
	reservation *api.ReservationHandler,
	roomType *api.RoomTypeHandler,
	discount *api.DiscountHandler,
) handler.Handlers {
	return handler.Handlers{
		Quote:       quote,
		Reservation: reservation,
		RoomType:    roomType,
		Discount:    discount,
	}
}

func NewRequestLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}
