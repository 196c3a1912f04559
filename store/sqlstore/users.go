package sqlstore

import (
	"context"
	"errors"

	"campusfind/lostfound-api/model"

	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (s *Users) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User

	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, wrap("list users", err)
	}

	return users, nil
}

func (s *Users) UserByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User

	err := s.db.WithContext(ctx).First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap("user by id", err)
	}

	return &user, nil
}

func (s *Users) UserByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	var user model.User

	err := s.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrap("user by student id", err)
	}

	return &user, nil
}

func (s *Users) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	var found bool

	err := s.db.WithContext(ctx).
		Model(model.User{}).
		Select("count(*) > 0").
		Where("student_id = ?", studentID).
		Find(&found).
		Error
	if err != nil {
		return false, wrap("student id exists", err)
	}

	return found, nil
}

func (s *Users) UserExists(ctx context.Context, userName, email string) (bool, error) {
	var found bool

	err := s.db.WithContext(ctx).
		Model(model.User{}).
		Select("count(*) > 0").
		Where("user_name = ? OR email = ?", userName, email).
		Find(&found).
		Error
	if err != nil {
		return false, wrap("user exists", err)
	}

	return found, nil
}

func (s *Users) AddUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, wrap("add user", err)
	}

	return user, nil
}

func (s *Users) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, wrap("update user", err)
	}

	return user, nil
}

// DeleteUser removes the user row. Items posted by the user stay behind
// with their poster reference nulled by the schema's ON DELETE SET NULL.
func (s *Users) DeleteUser(ctx context.Context, id int64) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&model.User{}, id)
	if res.Error != nil {
		return false, wrap("delete user", res.Error)
	}

	return res.RowsAffected > 0, nil
}
