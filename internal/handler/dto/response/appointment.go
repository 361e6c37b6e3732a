package response

import (
	"time"

	"booking-api/internal/pkg/errs"
	"booking-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID           uuid.UUID  `json:"id"`
	ClientID     uuid.UUID  `json:"client_id"`
	ClientName   string     `json:"client_name"`
	ProviderID   uuid.UUID  `json:"provider_id"`
	ProviderName string     `json:"provider_name"`
	SlotStart    time.Time  `json:"slot_start"`
	CanceledAt   *time.Time `json:"canceled_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ClientAppointmentResponse struct {
	ID           uuid.UUID `json:"id"`
	ProviderID   uuid.UUID `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	SlotStart    time.Time `json:"slot_start"`
}

type ScheduleItemResponse struct {
	ID         uuid.UUID `json:"id"`
	ClientID   uuid.UUID `json:"client_id"`
	ClientName string    `json:"client_name"`
	SlotStart  time.Time `json:"slot_start"`
}

func FromAppointmentView(view *queries.AppointmentView) (*AppointmentResponse, error) {
	var resp AppointmentResponse
	if err := copier.Copy(&resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to build appointment response")
	}
	return &resp, nil
}

func FromClientAppointmentItems(items []*queries.ClientAppointmentItem) ([]*ClientAppointmentResponse, error) {
	resp := make([]*ClientAppointmentResponse, len(items))
	for i, item := range items {
		var r ClientAppointmentResponse
		if err := copier.Copy(&r, item); err != nil {
			return nil, errs.Wrap(err, "failed to build appointment list response")
		}
		resp[i] = &r
	}
	return resp, nil
}

func FromScheduleItems(items []*queries.ScheduleItem) ([]*ScheduleItemResponse, error) {
	resp := make([]*ScheduleItemResponse, len(items))
	for i, item := range items {
		var r ScheduleItemResponse
		if err := copier.Copy(&r, item); err != nil {
			return nil, errs.Wrap(err, "failed to build schedule response")
		}
		resp[i] = &r
	}
	return resp, nil
}
