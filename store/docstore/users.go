package docstore

import (
	"context"
	"encoding/json"
	"strings"

	"campusfind/lostfound-api/model"
	"campusfind/lostfound-api/store"

	"github.com/redis/go-redis/v9"
)

type userDoc struct {
	ID           int64  `json:"id"`
	StudentID    string `json:"student_id"`
	UserName     string `json:"user_name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Phone        string `json:"phone,omitempty"`
	Verified     bool   `json:"verified"`
}

func toUserDoc(user *model.User) userDoc {
	return userDoc{
		ID:           user.ID,
		StudentID:    user.StudentID,
		UserName:     user.UserName,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Phone:        user.Phone,
		Verified:     user.Verified,
	}
}

func (d userDoc) toModel() model.User {
	return model.User{
		ID:           d.ID,
		StudentID:    d.StudentID,
		UserName:     d.UserName,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Phone:        d.Phone,
		Verified:     d.Verified,
	}
}

type Users struct {
	rdb *redis.Client
}

func NewUsers(rdb *redis.Client) *Users {
	return &Users{rdb: rdb}
}

func (s *Users) loadAll(ctx context.Context, op string) ([]userDoc, error) {
	keys, err := s.rdb.HVals(ctx, userIndexKey).Result()
	if err != nil {
		return nil, wrap(op, err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	for i, k := range keys {
		keys[i] = userDocPrefix + k
	}

	raw, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, wrap(op, err)
	}

	docs := make([]userDoc, 0, len(raw))
	for _, v := range raw {
		str, ok := v.(string)
		if !ok {
			continue
		}

		var d userDoc
		if err := json.Unmarshal([]byte(str), &d); err != nil {
			return nil, wrap(op, err)
		}

		docs = append(docs, d)
	}

	return docs, nil
}

func (s *Users) ListUsers(ctx context.Context) ([]model.User, error) {
	docs, err := s.loadAll(ctx, "list users")
	if err != nil {
		return nil, err
	}

	users := make([]model.User, 0, len(docs))
	for _, d := range docs {
		users = append(users, d.toModel())
	}

	return users, nil
}

func (s *Users) UserByID(ctx context.Context, id int64) (*model.User, error) {
	key, err := s.rdb.HGet(ctx, userIndexKey, idField(id)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("user by id", err)
	}

	raw, err := s.rdb.Get(ctx, userDocPrefix+key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, wrap("user by id", err)
	}

	var d userDoc
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, wrap("user by id", err)
	}

	user := d.toModel()
	return &user, nil
}

func (s *Users) UserByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	docs, err := s.loadAll(ctx, "user by student id")
	if err != nil {
		return nil, err
	}

	for _, d := range docs {
		if d.StudentID == studentID {
			user := d.toModel()
			return &user, nil
		}
	}

	return nil, nil
}

func (s *Users) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	user, err := s.UserByStudentID(ctx, studentID)
	if err != nil {
		return false, err
	}

	return user != nil, nil
}

func (s *Users) UserExists(ctx context.Context, userName, email string) (bool, error) {
	docs, err := s.loadAll(ctx, "user exists")
	if err != nil {
		return false, err
	}

	for _, d := range docs {
		if strings.EqualFold(d.UserName, userName) || strings.EqualFold(d.Email, email) {
			return true, nil
		}
	}

	return false, nil
}

func (s *Users) AddUser(ctx context.Context, user *model.User) (*model.User, error) {
	key, err := newDocKey()
	if err != nil {
		return nil, wrap("add user", err)
	}

	if user.ID == 0 {
		user.ID = numericID(key)
	}

	raw, err := json.Marshal(toUserDoc(user))
	if err != nil {
		return nil, wrap("add user", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, userDocPrefix+key, raw, 0)
	pipe.HSet(ctx, userIndexKey, idField(user.ID), key)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, wrap("add user", err)
	}

	return user, nil
}

func (s *Users) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	key, err := s.rdb.HGet(ctx, userIndexKey, idField(user.ID)).Result()
	if err == redis.Nil {
		return nil, store.NotFoundError("update user")
	}
	if err != nil {
		return nil, wrap("update user", err)
	}

	raw, err := json.Marshal(toUserDoc(user))
	if err != nil {
		return nil, wrap("update user", err)
	}

	if err := s.rdb.Set(ctx, userDocPrefix+key, raw, 0).Err(); err != nil {
		return nil, wrap("update user", err)
	}

	return user, nil
}

func (s *Users) DeleteUser(ctx context.Context, id int64) (bool, error) {
	key, err := s.rdb.HGet(ctx, userIndexKey, idField(id)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, wrap("delete user", err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, userDocPrefix+key)
	pipe.HDel(ctx, userIndexKey, idField(id))

	if _, err := pipe.Exec(ctx); err != nil {
		return false, wrap("delete user", err)
	}

	return true, nil
}
