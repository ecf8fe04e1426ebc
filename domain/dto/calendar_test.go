package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskhub/pkg/utils"
)

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func validEventRequest(t *testing.T) CreateCalendarEventRequest {
	t.Helper()
	return CreateCalendarEventRequest{
		Provider:      "google",
		CalendarID:    "work",
		Summary:       "standup",
		StartDatetime: mustParseTime(t, "2024-05-10T09:00:00Z"),
		EndDatetime:   mustParseTime(t, "2024-05-10T09:30:00Z"),
		Timezone:      "Asia/Colombo",
	}
}

func TestCalendarEventRequestValid(t *testing.T) {
	req := validEventRequest(t)
	assert.NoError(t, utils.ValidateStruct(&req))
}

func TestCalendarEventRequestUnknownProvider(t *testing.T) {
	req := validEventRequest(t)
	req.Provider = "outlook"
	assert.Error(t, utils.ValidateStruct(&req))
}

func TestCalendarEventRequestBlankSummary(t *testing.T) {
	req := validEventRequest(t)
	req.Summary = "   "
	assert.Error(t, utils.ValidateStruct(&req))
}

func TestCalendarEventRequestInvalidTimezone(t *testing.T) {
	req := validEventRequest(t)
	req.Timezone = "Mars/Olympus_Mons"
	assert.Error(t, utils.ValidateStruct(&req))
}

func TestCalendarEventRequestEndNotAfterStart(t *testing.T) {
	req := validEventRequest(t)
	req.EndDatetime = req.StartDatetime
	assert.Error(t, utils.ValidateStruct(&req))

	req.EndDatetime = req.StartDatetime.Add(-time.Hour)
	assert.Error(t, utils.ValidateStruct(&req))
}

func TestCalendarEventRequestNegativeReminder(t *testing.T) {
	req := validEventRequest(t)
	reminder := -5
	req.ReminderMinutesBefore = &reminder
	assert.Error(t, utils.ValidateStruct(&req))

	reminder = 0
	req.ReminderMinutesBefore = &reminder
	assert.NoError(t, utils.ValidateStruct(&req))
}

func TestCreateSubTaskRequestDurationBounds(t *testing.T) {
	req := CreateSubTaskRequest{Title: "prepare slides"}
	assert.NoError(t, utils.ValidateStruct(&req))
	assert.Equal(t, 60, req.DurationOrDefault())

	for _, minutes := range []int{0, -10, 1441} {
		m := minutes
		req.EventDurationMinutes = &m
		assert.Error(t, utils.ValidateStruct(&req), "minutes=%d", minutes)
	}

	for _, minutes := range []int{1, 60, 1440} {
		m := minutes
		req.EventDurationMinutes = &m
		assert.NoError(t, utils.ValidateStruct(&req), "minutes=%d", minutes)
		assert.Equal(t, minutes, req.DurationOrDefault())
	}
}

func TestUpdateTaskRequestBlankTitle(t *testing.T) {
	blank := "  "
	req := UpdateTaskRequest{Title: &blank}
	assert.Error(t, utils.ValidateStruct(&req))

	req.Title = nil
	assert.NoError(t, utils.ValidateStruct(&req))
}

func TestTaskListQueryFilterEnum(t *testing.T) {
	for _, filter := range []string{"", "today", "upcoming", "done"} {
		query := TaskListQuery{List: filter}
		assert.NoError(t, utils.ValidateStruct(&query), "filter=%q", filter)
	}

	query := TaskListQuery{List: "overdue"}
	assert.Error(t, utils.ValidateStruct(&query))
}
