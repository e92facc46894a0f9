package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"usertaskapi/internal/domain/entity"
	"usertaskapi/internal/domain/repository"
	"usertaskapi/pkg/helpers"
)

var (
	ErrUnknownOwner = errors.New("invalid user id")
	ErrTaskNotFound = errors.New("task not found")
)

// TaskService orchestrates the task lifecycle. Field validation happens
// before any write; an update either applies completely or not at all.
type TaskService struct {
	Tasks  repository.TaskRepository
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewTaskService(tasks repository.TaskRepository, users repository.UserRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Users: users, Logger: logger}
}

// CreateTaskInput carries the raw boundary fields for task creation.
// Status and DueDate are unparsed strings straight from the request.
type CreateTaskInput struct {
	UserID      int64
	Title       string
	Description string
	Status      string
	DueDate     string
}

// UpdateTaskInput carries optional fields for a partial update. A nil
// pointer means "leave unchanged"; a non-nil value must validate or the
// whole update is rejected.
type UpdateTaskInput struct {
	Title   *string
	Status  *string
	DueDate *string
}

func (s *TaskService) Create(ctx context.Context, in CreateTaskInput) (*entity.Task, error) {
	ok, err := s.Users.Exists(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnknownOwner
	}

	status, err := entity.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}
	due, err := helpers.ParseDueDate(in.DueDate)
	if err != nil {
		return nil, err
	}

	t := &entity.Task{
		UserID:      in.UserID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     due,
		Status:      status,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"task_id": t.ID, "user_id": t.UserID}).Info("task created")
	}
	return t, nil
}

// ListByUser returns the user's tasks. An empty result is reported as
// ErrTaskNotFound, so a user without tasks is indistinguishable from an
// unknown user at this boundary.
func (s *TaskService) ListByUser(ctx context.Context, userID int64) ([]entity.Task, error) {
	tasks, err := s.Tasks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ErrTaskNotFound
	}
	return tasks, nil
}

// GetByID looks a task up without translating absence into an error.
func (s *TaskService) GetByID(ctx context.Context, taskID int64) (*entity.Task, error) {
	return s.Tasks.GetByID(ctx, taskID)
}

// Update applies a partial update. Every supplied field is validated before
// the first one is applied, so a half-valid update writes nothing.
func (s *TaskService) Update(ctx context.Context, taskID int64, in UpdateTaskInput) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTaskNotFound
	}

	var status entity.Status
	if in.Status != nil {
		if status, err = entity.ParseStatus(*in.Status); err != nil {
			return nil, err
		}
	}
	due := t.DueDate
	if in.DueDate != nil {
		if due, err = helpers.ParseDueDate(*in.DueDate); err != nil {
			return nil, err
		}
	}

	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Status != nil {
		t.Status = status
	}
	t.DueDate = due

	if err := s.Tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithField("task_id", t.ID).Info("task updated")
	}
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, taskID int64) error {
	t, err := s.Tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if t == nil {
		return ErrTaskNotFound
	}
	if err := s.Tasks.Delete(ctx, taskID); err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.WithField("task_id", taskID).Info("task deleted")
	}
	return nil
}
