//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"courtbook/internal/domain/booking"
	"courtbook/internal/domain/user"
	"courtbook/internal/handler/api"
	resdto "courtbook/internal/handler/dto/response"
	"courtbook/internal/usecase/commands"
	"courtbook/internal/usecase/queries"
	"courtbook/tests/common/builder"
	"courtbook/tests/common/httptest"
	"courtbook/tests/common/testutil"
	commandsmock "courtbook/tests/mock/commands"
	queriesmock "courtbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
	asAdmin      bool
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()
	s.asAdmin = false

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	// Mock middleware behavior: inject auth context before each handler
	authCtx := func(c *gin.Context) {
		c.Set("user_id", s.userID)
		role := user.RoleMember
		if s.asAdmin {
			role = user.RoleAdmin
		}
		c.Set("user_role", role)
	}

	s.router.POST("/bookings", authCtx, s.handler.CreateBooking)
	s.router.GET("/bookings", authCtx, s.handler.ListMyBookings)
	s.router.GET("/bookings/:id", authCtx, s.handler.GetBooking)
	s.router.DELETE("/bookings/:id", authCtx, s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	bld := builder.NewBookingBuilder()
	reqBody := bld.BuildDTO()

	s.Run("success: returns 201 Created with the booking view", func() {
		view := bld.WithUser(s.userID).BuildView()
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(view, nil, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.Booking.ID)
		s.Equal(view.TotalPrice, response.Booking.TotalPrice)
	})

	s.Run("error: 409 Conflict when the slot is already taken", func() {
		rejection := &booking.Rejection{
			Reason: booking.ReasonCourtSlotTaken,
			Detail: "court already booked for this slot",
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, rejection, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingRejectedResponse
		s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal("court_slot_taken", response.Reason)
	})

	s.Run("error: 409 Conflict with stock details for insufficient equipment", func() {
		equipmentID := uuid.New()
		rejection := &booking.Rejection{
			Reason:      booking.ReasonEquipmentInsufficient,
			EquipmentID: &equipmentID,
			Requested:   4,
			Available:   1,
		}
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, rejection, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.BookingRejectedResponse
		s.Equal(http.StatusConflict, rec.Code, rec.Body.String())
		httptest.DecodeResponseBody(s.T(), rec.Body, &response)
		s.Equal("equipment_insufficient", response.Reason)
		s.Equal(4, response.Requested)
		s.Equal(1, response.Available)
	})

	s.Run("error: 404 Not Found for unknown court", func() {
		rejection := &booking.Rejection{Reason: booking.ReasonCourtNotFound}
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, rejection, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusNotFound, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 Bad Request for invalid time slot", func() {
		rejection := &booking.Rejection{Reason: booking.ReasonInvalidTimeSlot}
		s.mockCommands.EXPECT().Create(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, rejection, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: court_id", mutate: testutil.Field("court_id", nil)},
			{name: "missing field: date", mutate: testutil.Field("date", nil)},
			{name: "missing field: time_slot", mutate: testutil.Field("time_slot", nil)},
			{name: "malformed court_id", mutate: testutil.Field("court_id", "not-a-uuid")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	view := builder.NewBookingBuilder().WithUser(s.userID).BuildView()

	s.Run("success: returns 200 OK for own booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID, s.userID, false).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.Booking.ID)
	})

	s.Run("success: admin flag is forwarded for admin requester", func() {
		s.asAdmin = true
		defer func() { s.asAdmin = false }()

		s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID, s.userID, true).
			Return(view, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	})

	s.Run("error: 403 Forbidden for someone else's booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID, s.userID, false).
			Return(nil, queries.ErrBookingAccess).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), view.ID, s.userID, false).
			Return(nil, queries.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 Bad Request for malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}

func (s *BookingHandlerTestSuite) TestListMyBookings() {
	s.Run("success: returns 200 OK with own bookings", func() {
		views := []queries.BookingView{*builder.NewBookingBuilder().WithUser(s.userID).BuildView()}
		s.mockQueries.EXPECT().ListUserBookings(gomock.Any(), s.userID).
			Return(views, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 1)
	})

	s.Run("success: empty list for member with no bookings", func() {
		s.mockQueries.EXPECT().ListUserBookings(gomock.Any(), s.userID).
			Return([]queries.BookingView{}, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Bookings)
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()

	s.Run("success: returns 204 for own booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID, false).
			Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code, rec.Body.String())
	})

	s.Run("error: 403 Forbidden for someone else's booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID, false).
			Return(commands.ErrBookingAccess).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})

	s.Run("error: 404 Not Found for unknown booking", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID, false).
			Return(commands.ErrBookingNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}
