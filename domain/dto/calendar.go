package dto

import (
	"time"

	"taskhub/domain/models"
)

// CreateCalendarEventRequest is the shape a caller sends when asking the
// service to create a provider event alongside a task. It never carries an
// event_id; that is assigned when the event is materialized.
type CreateCalendarEventRequest struct {
	Provider              string     `json:"provider" validate:"required,oneof=google"`
	CalendarID            string     `json:"calendar_id" validate:"required,notblank"`
	Summary               string     `json:"summary" validate:"required,notblank"`
	StartDatetime         time.Time  `json:"start_datetime" validate:"required"`
	EndDatetime           time.Time  `json:"end_datetime" validate:"required,gtfield=StartDatetime"`
	Description           *string    `json:"description"`
	Timezone              string     `json:"timezone" validate:"required,timezone"`
	ReminderMinutesBefore *int       `json:"reminder_minutes_before" validate:"omitempty,gte=0"`
}

// PatchCalendarEventRequest is the union shape accepted on task patches:
// without event_id it is a create request, with event_id it is an already
// materialized event to store verbatim.
type PatchCalendarEventRequest struct {
	CreateCalendarEventRequest
	EventID *string `json:"event_id" validate:"omitempty,notblank"`
}

// Materialized reports whether the payload already carries a provider
// event id.
func (r *PatchCalendarEventRequest) Materialized() bool {
	return r.EventID != nil
}

func CalendarEventRequestToModel(req *CreateCalendarEventRequest, eventID string) *models.CalendarEvent {
	return &models.CalendarEvent{
		Provider:              models.CalendarProvider(req.Provider),
		CalendarID:            req.CalendarID,
		Summary:               req.Summary,
		StartDatetime:         req.StartDatetime,
		EndDatetime:           req.EndDatetime,
		Description:           req.Description,
		Timezone:              req.Timezone,
		ReminderMinutesBefore: req.ReminderMinutesBefore,
		EventID:               eventID,
	}
}
