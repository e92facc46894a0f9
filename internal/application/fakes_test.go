package application

import (
	"context"
	"time"

	"usertaskapi/internal/domain/entity"
)

// In-memory repository fakes standing in for the Postgres collaborator.
// They mirror its contract: absent rows are (nil, nil), never errors.

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*entity.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = r.nextID
	u.CreatedAt = time.Now().UTC()
	r.nextID++
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

func (r *fakeUserRepo) ListWithTasks(ctx context.Context) ([]entity.UserWithTasks, error) {
	res := make([]entity.UserWithTasks, 0, len(r.users))
	for id := int64(1); id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			res = append(res, entity.UserWithTasks{User: *u, Tasks: []entity.Task{}})
		}
	}
	return res, nil
}

func (r *fakeUserRepo) GetWithTasks(ctx context.Context, id int64) (*entity.UserWithTasks, error) {
	u, _ := r.GetByID(ctx, id)
	if u == nil {
		return nil, nil
	}
	return &entity.UserWithTasks{User: *u, Tasks: []entity.Task{}}, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.users, id)
	return nil
}

type fakeTaskRepo struct {
	tasks  map[int64]*entity.Task
	nextID int64
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*entity.Task), nextID: 1}
}

func (r *fakeTaskRepo) Create(_ context.Context, t *entity.Task) error {
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (*entity.Task, error) {
	if t, ok := r.tasks[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID int64) ([]entity.Task, error) {
	res := make([]entity.Task, 0)
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.tasks[id]; ok && t.UserID == userID {
			res = append(res, *t)
		}
	}
	return res, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, t *entity.Task) error {
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	delete(r.tasks, id)
	return nil
}
