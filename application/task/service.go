package task

import (
	"context"

	taskdomain "tasklist/domain/task"
	"tasklist/pkg/logger"

	"go.uber.org/zap"
)

// ApplicationService coordinates task use cases over a single repository.
type ApplicationService struct {
	repo taskdomain.Repository
}

// NewApplicationService Create task application service
func NewApplicationService(repo taskdomain.Repository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

// ListTasks returns every task in insertion order. The result is never nil.
func (s *ApplicationService) ListTasks(ctx context.Context) ([]*TaskResponse, error) {
	tasks, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = toResponse(t)
	}
	return result, nil
}

// AddTask appends a task. Ids are not checked for uniqueness.
func (s *ApplicationService) AddTask(ctx context.Context, req AddTaskRequest) (*MessageResponse, error) {
	if req.ID == nil {
		return nil, taskdomain.NewMissingFieldError("id")
	}
	if req.Text == nil {
		return nil, taskdomain.NewMissingFieldError("text")
	}

	t := taskdomain.New(*req.ID, *req.Text)
	if err := s.repo.Append(ctx, t); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("Task added", zap.String("task_id", t.ID()))
	return &MessageResponse{Message: MessageTaskAdded}, nil
}

// DeleteTask removes every task with the given id.
// A missing id is not an error; the acknowledgement is the same either way.
func (s *ApplicationService) DeleteTask(ctx context.Context, id string) (*MessageResponse, error) {
	removed, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	if removed > 1 {
		log.Warn("Deleted several tasks sharing one id", zap.String("task_id", id), zap.Int("removed", removed))
	} else {
		log.Debug("Task delete", zap.String("task_id", id), zap.Int("removed", removed))
	}
	return &MessageResponse{Message: MessageTaskRemoved}, nil
}

// CountTasks reports the current store size.
func (s *ApplicationService) CountTasks(ctx context.Context) (int, error) {
	return s.repo.Len(ctx)
}

func toResponse(t *taskdomain.Task) *TaskResponse {
	return &TaskResponse{
		ID:   t.ID(),
		Text: t.Text(),
	}
}
