// Package store defines the storage contract shared by the relational and
// document backends. Both implement the same CRUD surface over items and
// users so they can be swapped or layered by the mirror package.
package store

import (
	"context"

	"campusfind/lostfound-api/model"
)

// Backend selects a concrete adapter implementation.
type Backend int

const (
	Relational Backend = iota
	DocumentStore
)

func (b Backend) String() string {
	if b == DocumentStore {
		return "document"
	}
	return "relational"
}

// ItemStore is the uniform CRUD surface over items. Single-entity reads
// return (nil, nil) when the item doesn't exist; errors are reserved for
// actual backend failures.
type ItemStore interface {
	ListItems(ctx context.Context) ([]model.Item, error)
	ListItemsByStatus(ctx context.Context, status string) ([]model.Item, error)
	ItemByID(ctx context.Context, id int64) (*model.Item, error)
	AddItem(ctx context.Context, item *model.Item) (*model.Item, error)
	UpdateItem(ctx context.Context, item *model.Item) (*model.Item, error)
	DeleteItem(ctx context.Context, id int64) (bool, error)
}

// UserStore is the uniform CRUD surface over users.
type UserStore interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	UserByID(ctx context.Context, id int64) (*model.User, error)
	UserByStudentID(ctx context.Context, studentID string) (*model.User, error)
	StudentIDExists(ctx context.Context, studentID string) (bool, error)
	UserExists(ctx context.Context, userName, email string) (bool, error)
	AddUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) (bool, error)
}
