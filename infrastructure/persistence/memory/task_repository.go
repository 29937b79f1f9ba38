package memory

import (
	"context"
	"sync"

	"tasklist/domain/task"
)

// TaskRepository keeps tasks in process memory for the lifetime of the process.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks []*task.Task
}

func NewTaskRepository() *TaskRepository {
	return &TaskRepository{tasks: make([]*task.Task, 0)}
}

func (r *TaskRepository) Append(ctx context.Context, t *task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tasks = append(r.tasks, t)
	return nil
}

func (r *TaskRepository) List(ctx context.Context) ([]*task.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*task.Task, len(r.tasks))
	copy(result, r.tasks)
	return result, nil
}

// DeleteByID drops every task with a matching id, keeping the order of the rest.
func (r *TaskRepository) DeleteByID(ctx context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]*task.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		if t.ID() != id {
			kept = append(kept, t)
		}
	}
	removed := len(r.tasks) - len(kept)
	r.tasks = kept
	return removed, nil
}

func (r *TaskRepository) Len(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tasks), nil
}

var _ task.Repository = (*TaskRepository)(nil)
