package api

import (
	"errors"
	"net/http"

	"frontdesk/internal/handler/dto/request"
	"frontdesk/internal/handler/dto/response"
	"frontdesk/internal/handler/httperr"
	"frontdesk/internal/usecase"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	commands commands.DiscountCommands
	catalog  queries.CatalogQueries
}

func NewDiscountHandler(cmds commands.DiscountCommands, catalog queries.CatalogQueries) *DiscountHandler {
	return &DiscountHandler{
		commands: cmds,
		catalog:  catalog,
	}
}

// Create godoc
// @Summary Create a discount rate
// @Tags discounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateDiscountRateRequest true "Discount rate to create"
// @Success 201 {object} response.CreateDiscountRateResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /discounts [post]
func (h *DiscountHandler) Create(c *gin.Context) {
	var req request.CreateDiscountRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.commands.Create(c.Request.Context(), req.ToParams())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRoomTypeNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room type not found", nil)
		case errors.Is(err, usecase.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid discount rate parameters", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create discount rate", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, response.CreateDiscountRateResponse{ID: result.DiscountRateID})
}

// Deactivate godoc
// @Summary Deactivate a discount rate
// @Description Deactivated rates stop applying to new quotes; existing reservations keep their captured price.
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Discount rate ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /discounts/{id}/deactivate [patch]
func (h *DiscountHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid discount rate ID", nil)
		return
	}

	if err := h.commands.Deactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrDiscountNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Discount rate not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to deactivate discount rate", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// ListByRoomType godoc
// @Summary List discount rates for a room type
// @Tags discounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room type ID"
// @Success 200 {array} response.DiscountRateResponse
// @Failure 404 {object} httperr.Response
// @Router /room-types/{id}/discounts [get]
func (h *DiscountHandler) ListByRoomType(c *gin.Context) {
	roomTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room type ID", nil)
		return
	}

	views, err := h.catalog.ListDiscountRates(c.Request.Context(), roomTypeID)
	if err != nil {
		if errors.Is(err, usecase.ErrRoomTypeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room type not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list discount rates", nil)
		return
	}

	c.JSON(http.StatusOK, response.ToDiscountRateListResponse(views))
}
