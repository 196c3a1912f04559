// Package signup implements the two-step account verification workflow:
// a directory lookup of the student identifier followed by an emailed
// one-time code. No user record is persisted until the code is confirmed.
package signup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campusfind/lostfound-api/directory"
	"campusfind/lostfound-api/mailer"
	"campusfind/lostfound-api/model"
	"campusfind/lostfound-api/pkg/security"
	"campusfind/lostfound-api/store"
	"campusfind/lostfound-api/validators"
)

var (
	// ErrStudentNotFound means the directory has no record of the identifier.
	ErrStudentNotFound = errors.New("signup: student id not found in the university directory")
	// ErrDirectoryUnavailable means the directory could not be reached.
	ErrDirectoryUnavailable = errors.New("signup: directory lookup unavailable")
	// ErrAlreadyRegistered means the student id already has an account.
	ErrAlreadyRegistered = errors.New("signup: student id is already registered")
	// ErrMailDispatch means the verification email could not be sent.
	ErrMailDispatch = errors.New("signup: failed to send verification email")
	// ErrSessionExpired means the attempt token is unknown or the pending
	// signup aged out. The user has to restart the flow.
	ErrSessionExpired = errors.New("signup: session expired, please register again")
	// ErrCodeEmpty means no code was submitted.
	ErrCodeEmpty = errors.New("signup: verification code is required")
	// ErrCodeMismatch means the submitted code doesn't match the stored one.
	ErrCodeMismatch = errors.New("signup: verification code is incorrect")
)

// DirectoryLookup is the slice of the directory client the flow needs.
type DirectoryLookup interface {
	LookupStudent(ctx context.Context, studentID string) (*directory.Student, error)
}

// UserStores yields the user store for the current backend mode.
type UserStores interface {
	Users() store.UserStore
}

// Flow orchestrates signup attempts.
type Flow struct {
	stores    UserStores
	directory DirectoryLookup
	mailer    mailer.Mailer
	codes     *CodeStore
	pending   *PendingStore
	argon     *security.ArgonHash
}

func NewFlow(stores UserStores, dir DirectoryLookup, m mailer.Mailer, codes *CodeStore, pending *PendingStore, argon *security.ArgonHash) *Flow {
	return &Flow{
		stores:    stores,
		directory: dir,
		mailer:    m,
		codes:     codes,
		pending:   pending,
		argon:     argon,
	}
}

// StartResult tells the caller where the code went.
type StartResult struct {
	AttemptToken string
	Name         string
	Email        string
}

// Start runs the first signup step: directory lookup, code generation and
// dispatch, and stashing of the provisional record. Nothing is persisted.
func (f *Flow) Start(ctx context.Context, studentID, password, phone string) (*StartResult, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, fmt.Errorf("%w: student id is required", ErrStudentNotFound)
	}

	if err := validators.PasswordValidator(password); err != nil {
		return nil, err
	}

	exists, err := f.stores.Users().StudentIDExists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRegistered
	}

	student, err := f.directory.LookupStudent(ctx, studentID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	hash, err := f.argon.GenerateFromPassword(password)
	if err != nil {
		return nil, err
	}

	code, err := GenerateCode()
	if err != nil {
		return nil, err
	}
	f.codes.Put(studentID, code)

	if err := f.mailer.SendCode(ctx, student.Email, code, student.Name); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMailDispatch, err)
	}

	token, err := f.pending.Put(PendingUser{
		StudentID:    studentID,
		UserName:     student.Name,
		Email:        student.Email,
		Phone:        phone,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	return &StartResult{
		AttemptToken: token,
		Name:         student.Name,
		Email:        student.Email,
	}, nil
}

// Confirm runs the second step. On a matching code the provisional record
// is persisted with its verified flag set; any failure leaves no trace and
// the user can retry.
func (f *Flow) Confirm(ctx context.Context, attemptToken, code string) (*model.User, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrCodeEmpty
	}

	p, ok := f.pending.Get(attemptToken)
	if !ok {
		return nil, ErrSessionExpired
	}

	if !f.codes.Verify(p.StudentID, code) {
		return nil, ErrCodeMismatch
	}

	user, err := f.stores.Users().AddUser(ctx, &model.User{
		StudentID:    p.StudentID,
		UserName:     p.UserName,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Phone:        p.Phone,
		Verified:     true,
	})
	if err != nil {
		return nil, err
	}

	f.pending.Remove(attemptToken)
	f.codes.Drop(p.StudentID)

	return user, nil
}
