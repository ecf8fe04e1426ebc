package models

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID            uuid.UUID      `json:"id"`
	Title         string         `json:"title"`
	Note          *string        `json:"note"`
	DueDatetime   *time.Time     `json:"due_datetime"`
	Completed     bool           `json:"completed"`
	CalendarEvent *CalendarEvent `json:"calendar_event"`
	SubTasks      []*SubTask     `json:"subtasks"`
}

// SubTaskByID returns the owned subtask with the given id, or
// ErrSubTaskNotFound. Subtasks only exist inside their parent task.
func (t *Task) SubTaskByID(id uuid.UUID) (*SubTask, error) {
	for _, st := range t.SubTasks {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, ErrSubTaskNotFound
}
