package api

import (
	"errors"
	"net/http"

	reqdto "booking-api/internal/handler/dto/request"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/handler/httperr"
	"booking-api/internal/handler/middleware"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/commands"
	"booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
}

func NewAppointmentHandler(
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
	}
}

// @Summary Create appointment
// @Description Book an hour slot with a provider
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.appointmentCommands.Create(c.Request.Context(), userID, req.ProviderID, req.SlotStart)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotAProvider):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "You can only create appointments with providers",
			})
		case errors.Is(err, errs.ErrSelfBooking):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "You cannot create an appointment with yourself",
			})
		case errors.Is(err, errs.ErrPastSlot):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "You cannot create an appointment on a past date",
			})
		case errors.Is(err, errs.ErrSlotTaken):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "This appointment slot is already booked",
			})
		case errors.Is(err, errs.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "This appointment slot was just booked by someone else",
			})
		case errors.Is(err, errs.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromAppointmentView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary List appointments
// @Description List the requester's active appointments, paged
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Success 200 {array} resdto.ClientAppointmentResponse
// @Failure 401 {object} map[string]string
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var query reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid page parameter",
		})
		return
	}

	items, err := h.appointmentQueries.ListByClient(c.Request.Context(), userID, query.Page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.FromClientAppointmentItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Cancel appointment
// @Description Cancel an appointment up to two hours before its slot
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	view, err := h.appointmentCommands.Cancel(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, errs.ErrNotOwner):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "You can only cancel your own appointments",
			})
		case errors.Is(err, errs.ErrAlreadyCanceled):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "This appointment is already canceled",
			})
		case errors.Is(err, errs.ErrTooLateToCancel):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "You can only cancel appointments 2 hours in advance",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromAppointmentView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}
