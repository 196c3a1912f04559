// Package sqlstore implements the storage contract on top of GORM. Item
// reads eagerly load the poster relation since the relational schema keeps
// it normalized.
package sqlstore

import (
	"errors"

	"campusfind/lostfound-api/store"

	"gorm.io/gorm"
)

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}

	kind := store.KindUnavailable
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		kind = store.KindConstraint
	case errors.Is(err, gorm.ErrRecordNotFound):
		kind = store.KindNotFound
	}

	return store.NewStorageError(op, kind, err)
}
