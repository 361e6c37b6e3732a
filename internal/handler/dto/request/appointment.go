package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	ProviderID uuid.UUID `json:"provider_id" binding:"required"`
	SlotStart  time.Time `json:"slot_start" binding:"required"`
}

// ScheduleQuery carries the day the provider wants to see, as a plain
// calendar date.
type ScheduleQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

func (q *ScheduleQuery) Day() (time.Time, error) {
	return time.Parse("2006-01-02", q.Date)
}

type ListAppointmentsQuery struct {
	Page int `form:"page,default=1" binding:"omitempty,min=1"`
}
