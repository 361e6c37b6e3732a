package api

import (
	"errors"
	"net/http"

	reqdto "booking-api/internal/handler/dto/request"
	resdto "booking-api/internal/handler/dto/response"
	"booking-api/internal/handler/httperr"
	"booking-api/internal/handler/middleware"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
}

func NewScheduleHandler(scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleQueries: scheduleQueries,
	}
}

// @Summary Provider day schedule
// @Description List a provider's active appointments for one calendar day
// @Tags schedule
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {array} resdto.ScheduleItemResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /schedule [get]
func (h *ScheduleHandler) GetDay(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Token claim fast path; ListDay re-checks against the database so
	// a revoked flag is still caught.
	if isProvider, ok := middleware.GetIsProvider(c); ok && !isProvider {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Only providers can view the schedule",
		})
		return
	}

	var query reqdto.ScheduleQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date parameter",
		})
		return
	}

	day, err := query.Day()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format",
		})
		return
	}

	items, err := h.scheduleQueries.ListDay(c.Request.Context(), userID, day)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNotAProvider):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Only providers can view the schedule",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromScheduleItems(items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}
