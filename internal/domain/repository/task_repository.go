package repository

import (
	"context"

	"usertaskapi/internal/domain/entity"
)

// TaskRepository defines the interface for task-related database operations.
// Absent rows come back as (nil, nil); list operations return an empty slice
// rather than an error when nothing matches.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id int64) (*entity.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.Task, error)
	Update(ctx context.Context, t *entity.Task) error
	Delete(ctx context.Context, id int64) error
}
