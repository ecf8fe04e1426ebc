package dto

import "time"

type CreateSubTaskRequest struct {
	Title                string     `json:"title" validate:"required,notblank"`
	DueDatetime          *time.Time `json:"due_datetime"`
	Completed            bool       `json:"completed"`
	AddToCalendar        bool       `json:"add_to_calendar"`
	EventDurationMinutes *int       `json:"event_duration_minutes" validate:"omitempty,min=1,max=1440"`
	CalendarID           *string    `json:"calendar_id"`
	CalendarEventID      *string    `json:"calendar_event_id"`
}

// DurationOrDefault returns the requested event duration, falling back to
// one hour when the caller left it out.
func (r *CreateSubTaskRequest) DurationOrDefault() int {
	if r.EventDurationMinutes == nil {
		return 60
	}
	return *r.EventDurationMinutes
}

type UpdateSubTaskRequest struct {
	Title                *string    `json:"title" validate:"omitempty,notblank"`
	DueDatetime          *time.Time `json:"due_datetime"`
	Completed            *bool      `json:"completed"`
	AddToCalendar        *bool      `json:"add_to_calendar"`
	EventDurationMinutes *int       `json:"event_duration_minutes" validate:"omitempty,min=1,max=1440"`
	CalendarID           *string    `json:"calendar_id"`
	CalendarEventID      *string    `json:"calendar_event_id"`
}
