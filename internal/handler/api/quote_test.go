//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"frontdesk/internal/domain/booking"
	"frontdesk/internal/handler/api"
	"frontdesk/internal/usecase"
	"frontdesk/tests/common/httptest"
	usecasemock "frontdesk/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockQuoteService *usecasemock.MockQuoteService
	handler          *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQuoteService = usecasemock.NewMockQuoteService(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQuoteService)

	s.router.POST("/quotes", s.handler.Create)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

func validQuoteBody() map[string]any {
	return map[string]any{
		"room_type_id": uuid.New().String(),
		"check_in":     "2024-06-10",
		"check_out":    "2024-06-13",
		"adults":       2,
		"children":     0,
	}
}

func (s *QuoteHandlerTestSuite) TestCreate() {
	url := "/quotes"

	s.Run("success: returns 200 with priced quote", func() {
		rateID := uuid.New()
		quote := &booking.Quote{
			Nights:          3,
			BasePrice:       decimal.NewFromInt(100),
			DiscountID:      &rateID,
			DiscountPercent: decimal.NewFromInt(10),
			Total:           decimal.NewFromInt(270),
		}
		s.mockQuoteService.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(quote, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteBody(), "")

		var resp struct {
			Nights      int    `json:"nights"`
			TotalAmount string `json:"total_amount"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(3, resp.Nights)
		s.Equal("270", resp.TotalAmount)
	})

	s.Run("invalid stay window returns 400", func() {
		s.mockQuoteService.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrInvalidStayWindow)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-out must be after check-in")
	})

	s.Run("unknown room type returns 404", func() {
		s.mockQuoteService.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrRoomTypeNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room type not found")
	})

	s.Run("ineligible discount returns 422", func() {
		s.mockQuoteService.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrDiscountIneligible)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "not eligible")
	})

	s.Run("occupancy exceeded returns 422", func() {
		s.mockQuoteService.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, usecase.ErrOccupancyExceeded)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validQuoteBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "occupancy")
	})

	s.Run("malformed date returns 400 without calling the service", func() {
		body := validQuoteBody()
		body["check_in"] = "06/10/2024"

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("zero adults returns 400 without calling the service", func() {
		body := validQuoteBody()
		body["adults"] = 0

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}
