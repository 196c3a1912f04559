package mirror

import (
	"context"
	"time"

	"campusfind/lostfound-api/model"
	"campusfind/lostfound-api/store"
)

// Users mirrors user writes from a primary store onto a secondary one.
// Existence checks and lookups are primary-only like every other read.
type Users struct {
	primary   store.UserStore
	secondary store.UserStore
	budget    time.Duration
}

func NewUsers(primary, secondary store.UserStore, budget time.Duration) *Users {
	return &Users{primary: primary, secondary: secondary, budget: budget}
}

func (m *Users) ListUsers(ctx context.Context) ([]model.User, error) {
	return m.primary.ListUsers(ctx)
}

func (m *Users) UserByID(ctx context.Context, id int64) (*model.User, error) {
	return m.primary.UserByID(ctx, id)
}

func (m *Users) UserByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	return m.primary.UserByStudentID(ctx, studentID)
}

func (m *Users) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	return m.primary.StudentIDExists(ctx, studentID)
}

func (m *Users) UserExists(ctx context.Context, userName, email string) (bool, error) {
	return m.primary.UserExists(ctx, userName, email)
}

func (m *Users) AddUser(ctx context.Context, user *model.User) (*model.User, error) {
	saved, err := m.primary.AddUser(ctx, user)
	if err != nil {
		return nil, err
	}

	if m.secondary != nil {
		attempt(ctx, m.budget, "add user", func(mctx context.Context) error {
			_, err := m.secondary.AddUser(mctx, saved)
			return err
		})
	}

	return saved, nil
}

func (m *Users) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	saved, err := m.primary.UpdateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	if m.secondary != nil {
		attempt(ctx, m.budget, "update user", func(mctx context.Context) error {
			_, err := m.secondary.UpdateUser(mctx, saved)
			return err
		})
	}

	return saved, nil
}

func (m *Users) DeleteUser(ctx context.Context, id int64) (bool, error) {
	deleted, err := m.primary.DeleteUser(ctx, id)
	if err != nil {
		return false, err
	}

	if m.secondary != nil {
		attempt(ctx, m.budget, "delete user", func(mctx context.Context) error {
			_, err := m.secondary.DeleteUser(mctx, id)
			return err
		})
	}

	return deleted, nil
}
