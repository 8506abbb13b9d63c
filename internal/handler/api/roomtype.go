package api

import (
	"errors"
	"net/http"

	"frontdesk/internal/handler/dto/response"
	"frontdesk/internal/handler/httperr"
	"frontdesk/internal/usecase"
	"frontdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomTypeHandler struct {
	catalog queries.CatalogQueries
}

func NewRoomTypeHandler(catalog queries.CatalogQueries) *RoomTypeHandler {
	return &RoomTypeHandler{catalog: catalog}
}

// List godoc
// @Summary List room types
// @Tags room-types
// @Produce json
// @Success 200 {array} response.RoomTypeResponse
// @Router /room-types [get]
func (h *RoomTypeHandler) List(c *gin.Context) {
	views, err := h.catalog.ListRoomTypes(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list room types", nil)
		return
	}
	c.JSON(http.StatusOK, response.ToRoomTypeListResponse(views))
}

// GetByID godoc
// @Summary Get a room type
// @Tags room-types
// @Produce json
// @Param id path string true "Room type ID"
// @Success 200 {object} response.RoomTypeResponse
// @Failure 404 {object} httperr.Response
// @Router /room-types/{id} [get]
func (h *RoomTypeHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid room type ID", nil)
		return
	}

	view, err := h.catalog.GetRoomType(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrRoomTypeNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room type not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to get room type", nil)
		return
	}

	c.JSON(http.StatusOK, response.ToRoomTypeResponse(view))
}
