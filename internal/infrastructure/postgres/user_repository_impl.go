package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"usertaskapi/internal/domain/entity"
	"usertaskapi/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, u.Name, u.Email, u.PasswordHash)

	return row.Scan(&u.ID, &u.CreatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE id = $1
	`, id)

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	u := &entity.User{}
	row := r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email)

	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

func (r *UserRepository) ListWithTasks(ctx context.Context) ([]entity.UserWithTasks, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.name, u.email, u.password_hash, u.created_at,
		       t.id, t.user_id, t.title, t.description, t.due_date, t.status
		FROM users u
		LEFT JOIN tasks t ON t.user_id = u.id
		ORDER BY u.id, t.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]entity.UserWithTasks, 0)
	index := make(map[int64]int)
	for rows.Next() {
		var u entity.User
		var taskID, taskUserID *int64
		var title, description, status *string
		var dueDate *time.Time
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt,
			&taskID, &taskUserID, &title, &description, &dueDate, &status); err != nil {
			return nil, err
		}
		i, ok := index[u.ID]
		if !ok {
			i = len(res)
			index[u.ID] = i
			res = append(res, entity.UserWithTasks{User: u, Tasks: []entity.Task{}})
		}
		if taskID != nil {
			res[i].Tasks = append(res[i].Tasks, entity.Task{
				ID:          *taskID,
				UserID:      *taskUserID,
				Title:       *title,
				Description: *description,
				DueDate:     *dueDate,
				Status:      entity.Status(*status),
			})
		}
	}
	return res, rows.Err()
}

func (r *UserRepository) GetWithTasks(ctx context.Context, id int64) (*entity.UserWithTasks, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}
	tasks := NewTaskRepository(r.pool)
	ts, err := tasks.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return &entity.UserWithTasks{User: *u, Tasks: ts}, nil
}

// Delete removes the user row; owned tasks go with it via the
// ON DELETE CASCADE constraint.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

var _ repository.UserRepository = (*UserRepository)(nil)
