package models

import "time"

type CalendarProvider string

const (
	CalendarProviderGoogle CalendarProvider = "google"
)

// CalendarEvent is the stored reference to a provider event. EventID is
// always set: events only reach this shape once the provider (here,
// simulated) has assigned one.
type CalendarEvent struct {
	Provider              CalendarProvider `json:"provider"`
	CalendarID            string           `json:"calendar_id"`
	Summary               string           `json:"summary"`
	StartDatetime         time.Time        `json:"start_datetime"`
	EndDatetime           time.Time        `json:"end_datetime"`
	Description           *string          `json:"description"`
	Timezone              string           `json:"timezone"`
	ReminderMinutesBefore *int             `json:"reminder_minutes_before"`
	EventID               string           `json:"event_id"`
}
