package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := utils.ParseStrictBody(c, &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "fields", fields)
		return utils.ValidationErrorResponse(c, fields)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		logger.ErrorContext(ctx, "Task creation failed", "error", err)
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, task)
}

func (h *TaskHandler) ListTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	query, err := parseTaskListQuery(c)
	if err != nil {
		logger.WarnContext(ctx, "Invalid list query", "error", err)
		return utils.ValidationErrorResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(query); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}
	if err := query.ValidateRange(); err != nil {
		logger.WarnContext(ctx, "Inverted due range", "due_from", query.DueFrom, "due_to", query.DueTo)
		return utils.ValidationErrorResponse(c, err.Error())
	}

	tasks, err := h.taskService.ListTasks(ctx, query)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, tasks)
}

func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid task id")
	}

	task, err := h.taskService.GetTask(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found", "task_id", taskID)
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, task)
}

func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid task id")
	}

	var req dto.UpdateTaskRequest
	if err := utils.ParseStrictBody(c, &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "fields", fields)
		return utils.ValidationErrorResponse(c, fields)
	}

	task, err := h.taskService.UpdateTask(ctx, taskID, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, task)
}

func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid task id")
	}

	if err := h.taskService.DeleteTask(ctx, taskID); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *TaskHandler) CompleteTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid task id")
	}

	task, err := h.taskService.CompleteTask(ctx, taskID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, task)
}

func (h *TaskHandler) UndoTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid task id")
	}

	task, err := h.taskService.UndoTask(ctx, taskID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, task)
}

func parseTaskID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func parseTaskListQuery(c *fiber.Ctx) (*dto.TaskListQuery, error) {
	query := &dto.TaskListQuery{
		List: c.Query("list"),
		Q:    c.Query("q"),
	}

	if raw := c.Query("due_from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		query.DueFrom = &t
	}
	if raw := c.Query("due_to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, err
		}
		query.DueTo = &t
	}
	return query, nil
}
