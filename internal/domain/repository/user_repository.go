package repository

import (
	"context"

	"usertaskapi/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Absent rows come back as (nil, nil), not as errors; each call is atomic.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Exists(ctx context.Context, id int64) (bool, error)
	ListWithTasks(ctx context.Context) ([]entity.UserWithTasks, error)
	GetWithTasks(ctx context.Context, id int64) (*entity.UserWithTasks, error)
	Delete(ctx context.Context, id int64) error
}
