package serviceimpl

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
	"taskhub/domain/ports"
	"taskhub/domain/repositories"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
)

type SubTaskServiceImpl struct {
	taskRepo repositories.TaskRepository
	eventIDs ports.EventIDIssuer

	now func() time.Time
}

func NewSubTaskService(taskRepo repositories.TaskRepository, eventIDs ports.EventIDIssuer) services.SubTaskService {
	return &SubTaskServiceImpl{
		taskRepo: taskRepo,
		eventIDs: eventIDs,
		now:      time.Now,
	}
}

func (s *SubTaskServiceImpl) ListSubTasks(ctx context.Context, taskID uuid.UUID) ([]*models.SubTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	items := make([]*models.SubTask, len(task.SubTasks))
	copy(items, task.SubTasks)

	// Nearest due date first, undated last, ties broken by creation time.
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].DueDatetime, items[j].DueDatetime
		switch {
		case a == nil && b == nil:
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		case a == nil:
			return false
		case b == nil:
			return true
		case a.Equal(*b):
			return items[i].CreatedAt.Before(items[j].CreatedAt)
		default:
			return a.Before(*b)
		}
	})
	return items, nil
}

func (s *SubTaskServiceImpl) CreateSubTask(ctx context.Context, taskID uuid.UUID, req *dto.CreateSubTaskRequest) (*models.SubTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found for subtask creation", "task_id", taskID)
		return nil, err
	}

	now := s.now().UTC()
	subTask := &models.SubTask{
		ID:                   uuid.New(),
		TaskID:               task.ID,
		Title:                req.Title,
		DueDatetime:          req.DueDatetime,
		Completed:            req.Completed,
		AddToCalendar:        req.AddToCalendar,
		EventDurationMinutes: req.DurationOrDefault(),
		CalendarID:           req.CalendarID,
		CalendarEventID:      req.CalendarEventID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if subTask.NeedsEventID() {
		eventID := s.eventIDs.IssueEventID()
		subTask.CalendarEventID = &eventID
	}

	task.SubTasks = append(task.SubTasks, subTask)
	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Subtask created", "task_id", taskID, "subtask_id", subTask.ID)
	return subTask, nil
}

func (s *SubTaskServiceImpl) UpdateSubTask(ctx context.Context, taskID, subTaskID uuid.UUID, req *dto.UpdateSubTaskRequest) (*models.SubTask, error) {
	task, subTask, err := s.getSubTask(ctx, taskID, subTaskID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		subTask.Title = *req.Title
	}
	if req.DueDatetime != nil {
		subTask.DueDatetime = req.DueDatetime
	}
	if req.Completed != nil {
		subTask.Completed = *req.Completed
	}
	if req.AddToCalendar != nil {
		subTask.AddToCalendar = *req.AddToCalendar
	}
	if req.EventDurationMinutes != nil {
		subTask.EventDurationMinutes = *req.EventDurationMinutes
	}
	if req.CalendarID != nil {
		subTask.CalendarID = req.CalendarID
	}
	if req.CalendarEventID != nil {
		subTask.CalendarEventID = req.CalendarEventID
	}

	// Toggling sync on (or supplying a calendar) may leave the subtask
	// flagged but without an event id; assign one now.
	if subTask.NeedsEventID() {
		eventID := s.eventIDs.IssueEventID()
		subTask.CalendarEventID = &eventID
	}

	subTask.UpdatedAt = s.now().UTC()
	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Subtask updated", "task_id", taskID, "subtask_id", subTaskID)
	return subTask, nil
}

func (s *SubTaskServiceImpl) DeleteSubTask(ctx context.Context, taskID, subTaskID uuid.UUID) error {
	task, subTask, err := s.getSubTask(ctx, taskID, subTaskID)
	if err != nil {
		return err
	}

	kept := make([]*models.SubTask, 0, len(task.SubTasks)-1)
	for _, st := range task.SubTasks {
		if st.ID != subTask.ID {
			kept = append(kept, st)
		}
	}
	task.SubTasks = kept

	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Subtask deleted", "task_id", taskID, "subtask_id", subTaskID)
	return nil
}

func (s *SubTaskServiceImpl) CompleteSubTask(ctx context.Context, taskID, subTaskID uuid.UUID) (*models.SubTask, error) {
	return s.setCompleted(ctx, taskID, subTaskID, true)
}

func (s *SubTaskServiceImpl) UndoSubTask(ctx context.Context, taskID, subTaskID uuid.UUID) (*models.SubTask, error) {
	return s.setCompleted(ctx, taskID, subTaskID, false)
}

func (s *SubTaskServiceImpl) setCompleted(ctx context.Context, taskID, subTaskID uuid.UUID, completed bool) (*models.SubTask, error) {
	task, subTask, err := s.getSubTask(ctx, taskID, subTaskID)
	if err != nil {
		return nil, err
	}
	subTask.Completed = completed
	subTask.UpdatedAt = s.now().UTC()
	if err := s.taskRepo.Update(ctx, taskID, task); err != nil {
		return nil, err
	}
	return subTask, nil
}

func (s *SubTaskServiceImpl) getSubTask(ctx context.Context, taskID, subTaskID uuid.UUID) (*models.Task, *models.SubTask, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found", "task_id", taskID)
		return nil, nil, err
	}
	subTask, err := task.SubTaskByID(subTaskID)
	if err != nil {
		logger.WarnContext(ctx, "Subtask not found", "task_id", taskID, "subtask_id", subTaskID)
		return nil, nil, err
	}
	return task, subTask, nil
}
