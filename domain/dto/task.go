package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

type CreateTaskRequest struct {
	Title         string                      `json:"title" validate:"required,notblank"`
	Note          *string                     `json:"note"`
	DueDatetime   *time.Time                  `json:"due_datetime"`
	Completed     bool                        `json:"completed"`
	CalendarEvent *CreateCalendarEventRequest `json:"calendar_event"`
}

// UpdateTaskRequest is a partial update. Scalar fields follow the usual
// pointer convention (nil = leave unchanged). calendar_event needs a third
// state: the caller may omit it (keep), send null (clear), or send an event
// payload (replace), so presence is tracked explicitly during decoding.
type UpdateTaskRequest struct {
	Title       *string    `json:"title" validate:"omitempty,notblank"`
	Note        *string    `json:"note"`
	DueDatetime *time.Time `json:"due_datetime"`
	Completed   *bool      `json:"completed"`

	CalendarEvent    *PatchCalendarEventRequest `json:"-"`
	CalendarEventSet bool                       `json:"-"`
}

func (r *UpdateTaskRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateTaskRequest
	aux := struct {
		*plain
		CalendarEvent json.RawMessage `json:"calendar_event"`
	}{plain: (*plain)(r)}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&aux); err != nil {
		return err
	}

	if aux.CalendarEvent == nil {
		// Field absent: existing event stays as it is.
		return nil
	}
	r.CalendarEventSet = true

	if bytes.Equal(bytes.TrimSpace(aux.CalendarEvent), []byte("null")) {
		// Explicit null: caller wants the event cleared.
		return nil
	}

	var event PatchCalendarEventRequest
	evDec := json.NewDecoder(bytes.NewReader(aux.CalendarEvent))
	evDec.DisallowUnknownFields()
	if err := evDec.Decode(&event); err != nil {
		return err
	}
	r.CalendarEvent = &event
	return nil
}

// TaskListQuery carries the GET /tasks query parameters.
type TaskListQuery struct {
	List    string `validate:"omitempty,oneof=today upcoming done"`
	Q       string
	DueFrom *time.Time
	DueTo   *time.Time
}

const (
	TaskListFilterToday    = "today"
	TaskListFilterUpcoming = "upcoming"
	TaskListFilterDone     = "done"
)

var ErrInvalidDueRange = errors.New("due_from must be before or equal to due_to")

// ValidateRange rejects inverted due windows before any task is scanned.
func (q *TaskListQuery) ValidateRange() error {
	if q.DueFrom != nil && q.DueTo != nil && q.DueFrom.After(*q.DueTo) {
		return ErrInvalidDueRange
	}
	return nil
}
