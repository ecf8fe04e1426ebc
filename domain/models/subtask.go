package models

import (
	"time"

	"github.com/google/uuid"
)

type SubTask struct {
	ID          uuid.UUID  `json:"id"`
	TaskID      uuid.UUID  `json:"task_id"`
	Title       string     `json:"title"`
	DueDatetime *time.Time `json:"due_datetime"`
	Completed   bool       `json:"completed"`

	// Calendar sync knobs. CalendarEventID stays nil until the subtask is
	// actually pushed to a calendar (simulated by the event-id issuer).
	AddToCalendar        bool    `json:"add_to_calendar"`
	EventDurationMinutes int     `json:"event_duration_minutes"`
	CalendarID           *string `json:"calendar_id"`
	CalendarEventID      *string `json:"calendar_event_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NeedsEventID reports whether the subtask is flagged for calendar sync but
// has not been assigned a provider event id yet.
func (st *SubTask) NeedsEventID() bool {
	if !st.AddToCalendar {
		return false
	}
	if st.CalendarID == nil || *st.CalendarID == "" {
		return false
	}
	return st.CalendarEventID == nil || *st.CalendarEventID == ""
}
