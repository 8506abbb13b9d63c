package handler

import (
	"net/http"

	"frontdesk/internal/domain/staff"
	"frontdesk/internal/handler/api"
	"frontdesk/internal/handler/middleware"
	"frontdesk/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Quote       *api.QuoteHandler
	Reservation *api.ReservationHandler
	RoomType    *api.RoomTypeHandler
	Discount    *api.DiscountHandler
}

func NewRouter(
	cfg config.Config,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	logger *middleware.Logger,
) *gin.Engine {
	router := gin.New()

	router.Use(logger.LoggingMiddleware())
	router.Use(middleware.CustomRecovery())
	router.Use(middleware.NewCORSMiddleware(cfg.CORS))
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if gin.Mode() == gin.DebugMode {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := router.Group("/api")
	{
		// Pricing and catalog reads are public: the booking site calls them
		// before a guest authenticates.
		apiGroup.POST("/quotes", handlers.Quote.Create)
		apiGroup.GET("/room-types", handlers.RoomType.List)
		apiGroup.GET("/room-types/:id", handlers.RoomType.GetByID)

		frontDesk := apiGroup.Group("")
		frontDesk.Use(authMiddleware.RequireAuth())
		{
			frontDesk.POST("/reservations", handlers.Reservation.Create)
			frontDesk.GET("/reservations", handlers.Reservation.ListUpcoming)
			frontDesk.GET("/reservations/:id", handlers.Reservation.GetByID)
			frontDesk.GET("/room-types/:id/discounts", handlers.Discount.ListByRoomType)
		}

		manager := apiGroup.Group("")
		manager.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(staff.RoleManager))
		{
			manager.POST("/discounts", handlers.Discount.Create)
			manager.PATCH("/discounts/:id/deactivate", handlers.Discount.Deactivate)
		}
	}

	return router
}
