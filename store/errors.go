package store

import (
	"errors"
	"fmt"
)

// ErrKind classifies a storage failure.
type ErrKind int

const (
	// KindUnavailable covers connection and transport failures.
	KindUnavailable ErrKind = iota
	// KindConstraint covers unique/foreign-key constraint violations.
	KindConstraint
	// KindNotFound covers required lookups that came up empty.
	KindNotFound
)

func (k ErrKind) String() string {
	switch k {
	case KindConstraint:
		return "constraint"
	case KindNotFound:
		return "not found"
	default:
		return "unavailable"
	}
}

// StorageError wraps a backend failure with the operation that hit it.
type StorageError struct {
	Op   string
	Kind ErrKind
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("store: %s: %s, %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError builds a StorageError, passing nil err through unchanged.
func NewStorageError(op string, kind ErrKind, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Kind: kind, Err: err}
}

// NotFoundError marks a required lookup that came up empty.
func NotFoundError(op string) error {
	return &StorageError{Op: op, Kind: KindNotFound, Err: errors.New("record not found")}
}
