package services

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context, query *dto.TaskListQuery) ([]*models.Task, error)
	GetTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
	UpdateTask(ctx context.Context, taskID uuid.UUID, req *dto.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) error
	CompleteTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
	UndoTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
}
