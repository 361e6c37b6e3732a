//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"booking-api/internal/handler/api"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/queries"
	"booking-api/tests/common/builder"
	"booking-api/tests/common/httptest"
	commandsmock "booking-api/tests/mock/commands"
	queriesmock "booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	userID       uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCommands = &commandsmock.MockAppointmentCommands{}
	s.mockQueries = &queriesmock.MockAppointmentQueries{}
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Stands in for the auth middleware.
	authed := func(h gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set("user_id", s.userID)
			h(c)
		}
	}

	s.router.POST("/appointments", authed(s.handler.CreateAppointment))
	s.router.GET("/appointments", authed(s.handler.ListAppointments))
	s.router.DELETE("/appointments/:id", authed(s.handler.CancelAppointment))
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestCreateAppointment() {
	url := "/appointments"
	providerID := uuid.New()
	slotStart := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	reqBody := map[string]any{
		"provider_id": providerID.String(),
		"slot_start":  slotStart.Format(time.RFC3339),
	}

	s.Run("success: 201 with the created appointment", func() {
		view := builder.NewAppointmentBuilder().
			WithClientID(s.userID).
			WithProviderID(providerID).
			WithSlotStart(slotStart).
			BuildView()
		s.mockCommands.
			On("Create", mock.Anything, s.userID, providerID, mock.MatchedBy(func(t time.Time) bool {
				return t.Equal(slotStart)
			})).
			Return(view, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(providerID, response.ProviderID)
	})

	s.Run("error: 400 on malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"provider_id": "not-a-uuid"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: command errors map to status codes", func() {
		cases := []struct {
			err        error
			expectCode int
		}{
			{errs.ErrNotAProvider, http.StatusUnauthorized},
			{errs.ErrSelfBooking, http.StatusBadRequest},
			{errs.ErrPastSlot, http.StatusBadRequest},
			{errs.ErrSlotTaken, http.StatusBadRequest},
			{errs.ErrSlotConflict, http.StatusConflict},
			{errs.ErrDatabaseOperationFailed, http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.err.Error(), func() {
				s.mockCommands.
					On("Create", mock.Anything, s.userID, providerID, mock.Anything).
					Return(nil, tc.err).Once()

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestListAppointments() {
	s.Run("success: 200 with items, default page 1", func() {
		items := []*queries.ClientAppointmentItem{
			{ID: uuid.New(), ProviderID: uuid.New(), ProviderName: "Dr. Smith"},
		}
		s.mockQueries.
			On("ListByClient", mock.Anything, s.userID, 1).
			Return(items, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "")

		var response []*resdto.ClientAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Dr. Smith", response[0].ProviderName)
	})

	s.Run("success: explicit page is forwarded", func() {
		s.mockQueries.
			On("ListByClient", mock.Anything, s.userID, 3).
			Return([]*queries.ClientAppointmentItem{}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?page=3", nil, "")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on non-numeric page", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments?page=abc", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AppointmentHandlerTestSuite) TestCancelAppointment() {
	aptID := uuid.New()
	url := fmt.Sprintf("/appointments/%s", aptID)

	s.Run("success: 200 with the canceled appointment", func() {
		canceledAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
		view := builder.NewAppointmentBuilder().
			WithClientID(s.userID).
			WithCanceledAt(canceledAt).
			BuildView()
		s.mockCommands.
			On("Cancel", mock.Anything, s.userID, aptID).
			Return(view, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response.CanceledAt)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: command errors map to status codes", func() {
		cases := []struct {
			err        error
			expectCode int
		}{
			{errs.ErrAppointmentNotFound, http.StatusNotFound},
			{errs.ErrNotOwner, http.StatusUnauthorized},
			{errs.ErrAlreadyCanceled, http.StatusBadRequest},
			{errs.ErrTooLateToCancel, http.StatusBadRequest},
			{errs.ErrDatabaseOperationFailed, http.StatusInternalServerError},
		}

		for _, tc := range cases {
			s.Run(tc.err.Error(), func() {
				s.mockCommands.
					On("Cancel", mock.Anything, s.userID, aptID).
					Return(nil, tc.err).Once()

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}
