package api

import (
	"errors"
	"net/http"
	"time"

	"frontdesk/internal/handler/dto/request"
	"frontdesk/internal/handler/dto/response"
	"frontdesk/internal/handler/httperr"
	"frontdesk/internal/pkg/clock"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/usecase"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
	clock    clock.Clock
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	qrys queries.ReservationQueries,
	clk clock.Clock,
) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qrys,
		clock:    clk,
	}
}

// Create godoc
// @Summary Create a reservation
// @Description Books a room for a stay. Requires an Idempotency-Key header; replays return the original reservation.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "UUID idempotency key"
// @Param request body request.CreateReservationRequest true "Reservation to create"
// @Success 201 {object} response.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	idempotencyKey, err := parseIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key header must be a UUID", nil)
		return
	}

	var req request.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.commands.CreateReservation(c.Request.Context(), req.ToParams(), idempotencyKey)
	if err != nil {
		h.abortCreateError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, response.ToReservationResponse(result.Reservation))
}

// GetByID godoc
// @Summary Get a reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get reservation", nil)
		return
	}

	c.JSON(http.StatusOK, response.ToReservationResponse(view))
}

// ListUpcoming godoc
// @Summary List upcoming reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param from query string false "Earliest check-in date (YYYY-MM-DD, default today)"
// @Param limit query int false "Max rows (default 50)"
// @Success 200 {array} response.ReservationListItemResponse
// @Router /reservations [get]
func (h *ReservationHandler) ListUpcoming(c *gin.Context) {
	// Truncate(24h) would snap to UTC-epoch days; use the clock's own
	// calendar date so "today" is today at the front desk.
	now := h.clock.Now()
	year, month, day := now.Date()
	from := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "from must be in YYYY-MM-DD format", nil)
			return
		}
		from = parsed
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, ok := parsePositiveInt(raw)
		if !ok {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("limit must be a positive integer"), "limit must be a positive integer", nil)
			return
		}
		limit = parsed
	}

	items, err := h.queries.ListUpcoming(c.Request.Context(), from, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}

	c.JSON(http.StatusOK, response.ToReservationListResponse(items))
}

func (h *ReservationHandler) abortCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrReservationConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room is already reserved for overlapping dates", nil)
	case errors.Is(err, commands.ErrDuplicateReservation):
		httperr.AbortWithError(c, http.StatusConflict, err, "Idempotency key was already used with a different request", nil)
	case errors.Is(err, commands.ErrIdempotencyInProgress):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation request is still being processed", nil)
	case errors.Is(err, usecase.ErrInvalidStayWindow),
		errors.Is(err, usecase.ErrRoomTypeNotFound),
		errors.Is(err, usecase.ErrDiscountNotFound),
		errors.Is(err, usecase.ErrDiscountIneligible),
		errors.Is(err, usecase.ErrOccupancyExceeded),
		errors.Is(err, usecase.ErrDomainValidation):
		abortQuoteError(c, err)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create reservation", nil)
	}
}

func parseIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader("Idempotency-Key")
	if raw == "" {
		return uuid.Nil, errs.New("missing Idempotency-Key header")
	}
	return uuid.Parse(raw)
}

func parsePositiveInt(raw string) (int, bool) {
	n := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > 1000 {
			return 0, false
		}
	}
	return n, n > 0
}
