package serviceimpl

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
)

// ReferenceTimezone is the fixed zone that defines the calendar day for the
// today/upcoming list filters. It is intentionally not configurable: the
// filter contract is specified against this zone.
const ReferenceTimezone = "Asia/Colombo"

var referenceLocation = mustLoadLocation(ReferenceTimezone)

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic("cannot load reference timezone " + name + ": " + err.Error())
	}
	return loc
}

type TaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	eventIDs ports.EventIDIssuer

	// now is swapped out in tests to pin the today/upcoming boundary.
	now func() time.Time
}

func NewTaskService(taskRepo repositories.TaskRepository, eventIDs ports.EventIDIssuer) services.TaskService {
	return &TaskServiceImpl{
		taskRepo: taskRepo,
		eventIDs: eventIDs,
		now:      time.Now,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	task := &models.Task{
		ID:          uuid.New(),
		Title:       req.Title,
		Note:        req.Note,
		DueDatetime: req.DueDatetime,
		Completed:   req.Completed,
		SubTasks:    []*models.SubTask{},
	}

	if req.CalendarEvent != nil {
		// Materialize the provider event now; the issuer hands back the id
		// a real calendar API would have assigned.
		task.CalendarEvent = dto.CalendarEventRequestToModel(req.CalendarEvent, s.eventIDs.IssueEventID())
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to store task", "task_id", task.ID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "has_event", task.CalendarEvent != nil)
	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, query *dto.TaskListQuery) ([]*models.Task, error) {
	all, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	items := make([]*models.Task, 0, len(all))
	for _, task := range all {
		if !matchesQuery(task, query.Q) {
			continue
		}
		if !inDueRange(task, query.DueFrom, query.DueTo) {
			continue
		}
		if !matchesListFilter(task, query.List, now) {
			continue
		}
		items = append(items, task)
	}

	// Nearest due date first, undated tasks at the end, otherwise stable.
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].DueDatetime, items[j].DueDatetime
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return items, nil
}

func (s *TaskServiceImpl) GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

func (s *TaskServiceImpl) UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for update", "task_id", taskID)
		return nil, err
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Note != nil {
		task.Note = req.Note
	}
	if req.DueDatetime != nil {
		task.DueDatetime = req.DueDatetime
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}

	if req.CalendarEventSet {
		switch {
		case req.CalendarEvent == nil:
			// Explicit null clears the linked event.
			task.CalendarEvent = nil
		case req.CalendarEvent.Materialized():
			// Already carries a provider event id: stored verbatim.
			task.CalendarEvent = dto.CalendarEventRequestToModel(&req.CalendarEvent.CreateCalendarEventRequest, *req.CalendarEvent.EventID)
		default:
			// Create shape: replaces any existing event under a fresh id.
			task.CalendarEvent = dto.CalendarEventRequestToModel(&req.CalendarEvent.CreateCalendarEventRequest, s.eventIDs.IssueEventID())
		}
	}

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		logger.ErrorContext(ctx, "Failed to update task", "task_id", taskID, "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "Task updated", "task_id", taskID)
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	// Subtasks live inside the task, so removing it drops them as well.
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		logger.WarnContext(ctx, "Task not found for deletion", "task_id", taskID)
		return err
	}
	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	return nil
}

func (s *TaskServiceImpl) CompleteTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	return s.setCompleted(ctx, taskID, true)
}

func (s *TaskServiceImpl) UndoTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	return s.setCompleted(ctx, taskID, false)
}

func (s *TaskServiceImpl) setCompleted(ctx context.Context, taskID uuid.UUID, completed bool) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	task.Completed = completed
	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ---- list predicates ----

func matchesQuery(task *models.Task, q string) bool {
	if q == "" {
		return true
	}
	needle := strings.ToLower(q)
	if strings.Contains(strings.ToLower(task.Title), needle) {
		return true
	}
	return task.Note != nil && strings.Contains(strings.ToLower(*task.Note), needle)
}

// inDueRange applies the inclusive due window. Undated tasks always pass;
// narrowing them out is what the today/upcoming filters are for.
func inDueRange(task *models.Task, from, to *time.Time) bool {
	if task.DueDatetime == nil {
		return true
	}
	if from != nil && task.DueDatetime.Before(*from) {
		return false
	}
	if to != nil && task.DueDatetime.After(*to) {
		return false
	}
	return true
}

func matchesListFilter(task *models.Task, filter string, now time.Time) bool {
	switch filter {
	case dto.TaskListFilterDone:
		return task.Completed
	case dto.TaskListFilterToday:
		if task.DueDatetime == nil {
			return false
		}
		return calendarDay(*task.DueDatetime).Equal(calendarDay(now))
	case dto.TaskListFilterUpcoming:
		if task.DueDatetime == nil {
			return false
		}
		return calendarDay(*task.DueDatetime).After(calendarDay(now))
	default:
		return true
	}
}

// calendarDay truncates an instant to midnight of its calendar day in the
// reference timezone.
func calendarDay(t time.Time) time.Time {
	year, month, day := t.In(referenceLocation).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, referenceLocation)
}
