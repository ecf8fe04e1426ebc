package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskhub/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")
	tasks.Get("/", h.TaskHandler.ListTasks)
	tasks.Post("/", h.TaskHandler.CreateTask)
	tasks.Get("/:id", h.TaskHandler.GetTask)
	tasks.Patch("/:id", h.TaskHandler.UpdateTask)
	tasks.Delete("/:id", h.TaskHandler.DeleteTask)
	tasks.Post("/:id/complete", h.TaskHandler.CompleteTask)
	tasks.Post("/:id/undo", h.TaskHandler.UndoTask)

	subtasks := tasks.Group("/:id/subtasks")
	subtasks.Get("/", h.SubTaskHandler.ListSubTasks)
	subtasks.Post("/", h.SubTaskHandler.CreateSubTask)
	subtasks.Patch("/:subtaskId", h.SubTaskHandler.UpdateSubTask)
	subtasks.Delete("/:subtaskId", h.SubTaskHandler.DeleteSubTask)
	subtasks.Post("/:subtaskId/complete", h.SubTaskHandler.CompleteSubTask)
	subtasks.Post("/:subtaskId/undo", h.SubTaskHandler.UndoSubTask)
}
