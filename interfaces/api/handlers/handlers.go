package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskhub/domain/models"
	"taskhub/domain/services"
	"taskhub/pkg/utils"
)

// Services contains all the services needed for handlers
type Services struct {
	TaskService    services.TaskService
	SubTaskService services.SubTaskService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	TaskHandler    *TaskHandler
	SubTaskHandler *SubTaskHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		TaskHandler:    NewTaskHandler(services.TaskService),
		SubTaskHandler: NewSubTaskHandler(services.SubTaskService),
	}
}

// serviceErrorResponse maps domain errors onto the wire contract.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrTaskNotFound):
		return utils.NotFoundResponse(c, "Task not found")
	case errors.Is(err, models.ErrSubTaskNotFound):
		return utils.NotFoundResponse(c, "Subtask not found")
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
