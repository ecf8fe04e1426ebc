package repositories

import (
	"context"

	"github.com/google/uuid"

	"taskhub/domain/models"
)

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	Update(ctx context.Context, id uuid.UUID, task *models.Task) error
	Delete(ctx context.Context, id uuid.UUID) error
}
