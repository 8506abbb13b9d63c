package api

import (
	"errors"
	"net/http"

	"frontdesk/internal/handler/dto/request"
	"frontdesk/internal/handler/dto/response"
	"frontdesk/internal/handler/httperr"
	"frontdesk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteService usecase.QuoteService
}

func NewQuoteHandler(quoteService usecase.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// Create godoc
// @Summary Price a stay
// @Description Computes the total for a stay, applying the best eligible discount or a requested one
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body request.QuoteRequest true "Stay to price"
// @Success 200 {object} response.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	quote, err := h.quoteService.Quote(c.Request.Context(), req.ToQuoteRequest())
	if err != nil {
		abortQuoteError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.ToQuoteResponse(quote))
}

// abortQuoteError maps pricing failures for both the quote endpoint and
// reservation creation, which runs the same pricing path.
func abortQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidStayWindow):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Check-out must be after check-in", nil)
	case errors.Is(err, usecase.ErrRoomTypeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room type not found", nil)
	case errors.Is(err, usecase.ErrDiscountNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Discount rate not found", nil)
	case errors.Is(err, usecase.ErrDiscountIneligible):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Discount rate is not eligible for this stay", nil)
	case errors.Is(err, usecase.ErrOccupancyExceeded):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Party size exceeds room type occupancy", nil)
	case errors.Is(err, usecase.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid stay parameters", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to price stay", nil)
	}
}
