package services

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/dto"
	"taskhub/domain/models"
)

type SubTaskService interface {
	ListSubTasks(ctx context.Context, taskID uuid.UUID) ([]*models.SubTask, error)
	CreateSubTask(ctx context.Context, taskID uuid.UUID, req *dto.CreateSubTaskRequest) (*models.SubTask, error)
	UpdateSubTask(ctx context.Context, taskID, subTaskID uuid.UUID, req *dto.UpdateSubTaskRequest) (*models.SubTask, error)
	DeleteSubTask(ctx context.Context, taskID, subTaskID uuid.UUID) error
	CompleteSubTask(ctx context.Context, taskID, subTaskID uuid.UUID) (*models.SubTask, error)
	UndoSubTask(ctx context.Context, taskID, subTaskID uuid.UUID) (*models.SubTask, error)
}
