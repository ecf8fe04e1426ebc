package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/services"
	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

type SubTaskHandler struct {
	subTaskService services.SubTaskService
}

func NewSubTaskHandler(subTaskService services.SubTaskService) *SubTaskHandler {
	return &SubTaskHandler{
		subTaskService: subTaskService,
	}
}

func (h *SubTaskHandler) ListSubTasks(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid task id")
	}

	subTasks, err := h.subTaskService.ListSubTasks(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task not found", "task_id", taskID)
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, subTasks)
}

func (h *SubTaskHandler) CreateSubTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, err := parseTaskID(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid task id")
	}

	var req dto.CreateSubTaskRequest
	if err := utils.ParseStrictBody(c, &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "fields", fields)
		return utils.ValidationErrorResponse(c, fields)
	}

	subTask, err := h.subTaskService.CreateSubTask(ctx, taskID, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, subTask)
}

func (h *SubTaskHandler) UpdateSubTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, subTaskID, err := parseSubTaskIDs(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid id")
	}

	var req dto.UpdateSubTaskRequest
	if err := utils.ParseStrictBody(c, &req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.ValidationErrorResponse(c, err.Error())
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fields := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "fields", fields)
		return utils.ValidationErrorResponse(c, fields)
	}

	subTask, err := h.subTaskService.UpdateSubTask(ctx, taskID, subTaskID, &req)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, subTask)
}

func (h *SubTaskHandler) DeleteSubTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, subTaskID, err := parseSubTaskIDs(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid id")
	}

	if err := h.subTaskService.DeleteSubTask(ctx, taskID, subTaskID); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

func (h *SubTaskHandler) CompleteSubTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, subTaskID, err := parseSubTaskIDs(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid id")
	}

	subTask, err := h.subTaskService.CompleteSubTask(ctx, taskID, subTaskID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, subTask)
}

func (h *SubTaskHandler) UndoSubTask(c *fiber.Ctx) error {
	ctx := c.UserContext()

	taskID, subTaskID, err := parseSubTaskIDs(c)
	if err != nil {
		return utils.ValidationErrorResponse(c, "Invalid id")
	}

	subTask, err := h.subTaskService.UndoSubTask(ctx, taskID, subTaskID)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, subTask)
}

func parseSubTaskIDs(c *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	taskID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	subTaskID, err := uuid.Parse(c.Params("subtaskId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return taskID, subTaskID, nil
}
