//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"frontdesk/internal/handler/api"
	"frontdesk/internal/pkg/clock"
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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(
		s.mockCommands,
		s.mockQueries,
		clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)),
	)

	// Auth is exercised in middleware tests; handlers only need the routes.
	s.router.POST("/reservations", s.handler.Create)
	s.router.GET("/reservations", s.handler.ListUpcoming)
	s.router.GET("/reservations/:id", s.handler.GetByID)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func validReservationBody() map[string]any {
	return map[string]any{
		"room_type_id": uuid.New().String(),
		"room_id":      uuid.New().String(),
		"check_in":     "2024-06-10",
		"check_out":    "2024-06-13",
		"adults":       2,
		"children":     0,
		"guest_name":   "Ada Lovelace",
		"guest_email":  "ada@example.com",
	}
}

func idempotencyHeader() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.New().String()}
}

func sampleView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:              uuid.New(),
		RoomTypeID:      uuid.New(),
		RoomTypeName:    "Deluxe King",
		RoomID:          uuid.New(),
		GuestName:       "Ada Lovelace",
		GuestEmail:      "ada@example.com",
		CheckIn:         time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2024, 6, 13, 0, 0, 0, 0, time.UTC),
		Nights:          3,
		Adults:          2,
		Status:          "confirmed",
		BasePrice:       decimal.NewFromInt(100),
		DiscountPercent: decimal.NewFromInt(10),
		TotalAmount:     decimal.NewFromInt(270),
	}
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	s.Run("success: returns 201 for a new reservation", func() {
		view := sampleView()
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CreateReservationResult{Reservation: view, IsReplayed: false}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReservationBody(), "token", idempotencyHeader())

		var resp struct {
			ID          string `json:"id"`
			TotalAmount string `json:"total_amount"`
			CheckIn     string `json:"check_in"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(view.ID.String(), resp.ID)
		s.Equal("270", resp.TotalAmount)
		s.Equal("2024-06-10", resp.CheckIn)
	})

	s.Run("replayed request returns 200 with the original reservation", func() {
		view := sampleView()
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.CreateReservationResult{Reservation: view, IsReplayed: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReservationBody(), "token", idempotencyHeader())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("missing Idempotency-Key returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReservationBody(), "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("non-UUID Idempotency-Key returns 400", func() {
		headers := map[string]string{"Idempotency-Key": "not-a-uuid"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReservationBody(), "token", headers)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("overlapping stay returns 409", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrReservationConflict)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReservationBody(), "token", idempotencyHeader())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already reserved")
	})

	s.Run("key reuse with different payload returns 409", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateReservation)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validReservationBody(), "token", idempotencyHeader())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already used")
	})

	s.Run("missing guest email returns 400", func() {
		body := validReservationBody()
		delete(body, "guest_email")

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token", idempotencyHeader())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ReservationHandlerTestSuite) TestGetByID() {
	s.Run("success: returns the reservation", func() {
		view := sampleView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("unknown id returns 404", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrReservationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("malformed id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/nope", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})
}

func (s *ReservationHandlerTestSuite) TestListUpcoming() {
	s.Run("success: passes parsed from and limit", func() {
		from := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), from, 10).
			Return([]*queries.ReservationListItem{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?from=2024-07-01&limit=10", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("default from is the clock's local date", func() {
		// 09:00 at UTC+12 is still the previous day in UTC; the default
		// must not slide back across midnight.
		loc := time.FixedZone("UTC+12", 12*60*60)
		clk := clock.NewMockClock(time.Date(2024, 6, 1, 9, 0, 0, 0, loc))
		handler := api.NewReservationHandler(s.mockCommands, s.mockQueries, clk)
		router := gin.New()
		router.GET("/reservations", handler.ListUpcoming)

		want := time.Date(2024, 6, 1, 0, 0, 0, 0, loc)
		s.mockQueries.EXPECT().ListUpcoming(gomock.Any(), want, 0).
			Return([]*queries.ReservationListItem{}, nil)

		rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/reservations", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("bad from returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?from=July", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "YYYY-MM-DD")
	})

	s.Run("bad limit returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=-1", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "positive integer")
	})
}
