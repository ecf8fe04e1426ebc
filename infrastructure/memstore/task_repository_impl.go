package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"taskhub/domain/models"
	"taskhub/domain/repositories"
)

// TaskRepositoryImpl keeps every task in process memory. Nothing survives a
// restart. The mutex guards the map itself; callers mutating a returned task
// race at last-write-wins granularity, which is the accepted model here.
type TaskRepositoryImpl struct {
	mu    sync.RWMutex
	tasks map[uuid.UUID]*models.Task
	order []uuid.UUID // insertion order, so listings are deterministic
}

func NewTaskRepository() repositories.TaskRepository {
	return &TaskRepositoryImpl{
		tasks: make(map[uuid.UUID]*models.Task),
	}
}

func (r *TaskRepositoryImpl) Create(_ context.Context, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tasks[task.ID]; !exists {
		r.order = append(r.order, task.ID)
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *TaskRepositoryImpl) GetByID(_ context.Context, id uuid.UUID) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, models.ErrTaskNotFound
	}
	return task, nil
}

func (r *TaskRepositoryImpl) List(_ context.Context) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]*models.Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, r.tasks[id])
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) Update(_ context.Context, id uuid.UUID, task *models.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return models.ErrTaskNotFound
	}
	r.tasks[id] = task
	return nil
}

func (r *TaskRepositoryImpl) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return models.ErrTaskNotFound
	}
	delete(r.tasks, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
