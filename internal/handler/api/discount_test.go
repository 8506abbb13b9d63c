//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"frontdesk/internal/handler/api"
	"frontdesk/internal/usecase"
	"frontdesk/internal/usecase/commands"
	"frontdesk/internal/usecase/queries"
	"frontdesk/tests/common/httptest"
	commandsmock "frontdesk/tests/mock/commands"
	queriesmock "frontdesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscountHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDiscountCommands
	mockCatalog  *queriesmock.MockCatalogQueries
	handler      *api.DiscountHandler
}

func (s *DiscountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDiscountCommands(s.mockCtrl)
	s.mockCatalog = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	s.handler = api.NewDiscountHandler(s.mockCommands, s.mockCatalog)

	s.router.POST("/discounts", s.handler.Create)
	s.router.PATCH("/discounts/:id/deactivate", s.handler.Deactivate)
	s.router.GET("/room-types/:id/discounts", s.handler.ListByRoomType)
}

func (s *DiscountHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDiscountHandlerSuite(t *testing.T) {
	suite.Run(t, new(DiscountHandlerTestSuite))
}

func validDiscountBody() map[string]any {
	return map[string]any{
		"room_type_id": uuid.New().String(),
		"percent":      "12.5",
		"start_date":   "2024-06-01",
		"end_date":     "2024-06-30",
		"min_nights":   2,
	}
}

func (s *DiscountHandlerTestSuite) TestCreate() {
	url := "/discounts"

	s.Run("success: returns 201 with new rate id", func() {
		rateID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(&commands.CreateDiscountRateResult{DiscountRateID: rateID}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validDiscountBody(), "token")

		var resp struct {
			ID string `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(rateID.String(), resp.ID)
	})

	s.Run("unknown room type returns 404", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrRoomTypeNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validDiscountBody(), "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room type not found")
	})

	s.Run("invalid parameters return 422", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrDomainValidation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validDiscountBody(), "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid discount rate parameters")
	})

	s.Run("zero min_nights returns 400 at binding", func() {
		body := validDiscountBody()
		body["min_nights"] = 0

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *DiscountHandlerTestSuite) TestDeactivate() {
	s.Run("success: returns 204", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), id).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/discounts/"+id.String()+"/deactivate", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unknown rate returns 404", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Deactivate(gomock.Any(), id).Return(usecase.ErrDiscountNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/discounts/"+id.String()+"/deactivate", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Discount rate not found")
	})
}

func (s *DiscountHandlerTestSuite) TestListByRoomType() {
	s.Run("success: returns rates", func() {
		roomTypeID := uuid.New()
		views := []*queries.DiscountRateView{
			{
				ID:         uuid.New(),
				RoomTypeID: roomTypeID,
				Percent:    decimal.NewFromInt(10),
				StartDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
				EndDate:    time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
				MinNights:  2,
				Active:     true,
			},
		}
		s.mockCatalog.EXPECT().ListDiscountRates(gomock.Any(), roomTypeID).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types/"+roomTypeID.String()+"/discounts", nil, "token")

		var resp []struct {
			Percent   string `json:"percent"`
			StartDate string `json:"start_date"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
		s.Equal("10", resp[0].Percent)
		s.Equal("2024-06-01", resp[0].StartDate)
	})

	s.Run("unknown room type returns 404", func() {
		roomTypeID := uuid.New()
		s.mockCatalog.EXPECT().ListDiscountRates(gomock.Any(), roomTypeID).
			Return(nil, usecase.ErrRoomTypeNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/room-types/"+roomTypeID.String()+"/discounts", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room type not found")
	})
}
