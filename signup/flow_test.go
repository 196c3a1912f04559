package signup

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusfind/lostfound-api/directory"
	"campusfind/lostfound-api/model"
	"campusfind/lostfound-api/pkg/security"
	"campusfind/lostfound-api/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectory struct {
	students    map[string]*directory.Student
	err         error
	lookupCalls int
}

func (d *stubDirectory) LookupStudent(ctx context.Context, studentID string) (*directory.Student, error) {
	d.lookupCalls++
	if d.err != nil {
		return nil, d.err
	}

	s, ok := d.students[studentID]
	if !ok {
		return nil, directory.ErrNotFound
	}
	return s, nil
}

type sentMail struct {
	to   string
	code string
	name string
}

type stubMailer struct {
	sent []sentMail
	err  error
}

func (m *stubMailer) SendCode(ctx context.Context, to, code, displayName string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, code: code, name: displayName})
	return nil
}

type stubUsers struct {
	users  []model.User
	nextID int64
}

func (s *stubUsers) ListUsers(ctx context.Context) ([]model.User, error) { return s.users, nil }

func (s *stubUsers) UserByID(ctx context.Context, id int64) (*model.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *stubUsers) UserByStudentID(ctx context.Context, studentID string) (*model.User, error) {
	for _, u := range s.users {
		if u.StudentID == studentID {
			return &u, nil
		}
	}
	return nil, nil
}

func (s *stubUsers) StudentIDExists(ctx context.Context, studentID string) (bool, error) {
	u, _ := s.UserByStudentID(ctx, studentID)
	return u != nil, nil
}

func (s *stubUsers) UserExists(ctx context.Context, userName, email string) (bool, error) {
	for _, u := range s.users {
		if u.UserName == userName || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUsers) AddUser(ctx context.Context, user *model.User) (*model.User, error) {
	s.nextID++
	saved := *user
	saved.ID = s.nextID
	s.users = append(s.users, saved)
	return &saved, nil
}

func (s *stubUsers) UpdateUser(ctx context.Context, user *model.User) (*model.User, error) {
	return user, nil
}

func (s *stubUsers) DeleteUser(ctx context.Context, id int64) (bool, error) { return true, nil }

type stubStores struct{ users *stubUsers }

func (s *stubStores) Users() store.UserStore { return s.users }

// Small parameters keep hashing fast in tests
func testArgon() *security.ArgonHash {
	return &security.ArgonHash{
		Memory:      1024,
		Iterations:  1,
		Parallelism: 1,
		SaltLength:  16,
		KeyLength:   32,
	}
}

type flowFixture struct {
	flow  *Flow
	dir   *stubDirectory
	mail  *stubMailer
	users *stubUsers
	codes *CodeStore
	argon *security.ArgonHash
}

func newFixture(t *testing.T) *flowFixture {
	t.Helper()

	dir := &stubDirectory{students: map[string]*directory.Student{
		"12345": {StudentID: "12345", Name: "Jordan Reyes", Email: "jordan.reyes@campus.edu"},
		"67890": {StudentID: "67890", Name: "Sam Okafor", Email: "sam.okafor@campus.edu"},
	}}
	mail := &stubMailer{}
	users := &stubUsers{}
	codes := NewCodeStore()
	pending := NewPendingStore(time.Minute)
	t.Cleanup(pending.Close)

	argon := testArgon()
	flow := NewFlow(&stubStores{users: users}, dir, mail, codes, pending, argon)

	return &flowFixture{flow: flow, dir: dir, mail: mail, users: users, codes: codes, argon: argon}
}

const goodPassword = "Sup3rSecret"

func TestSignupHappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.flow.Start(ctx, "12345", goodPassword, "555-0101")
	require.NoError(t, err)
	require.NotEmpty(t, res.AttemptToken)

	// Name and email come from the directory, never from input
	assert.Equal(t, "Jordan Reyes", res.Name)
	assert.Equal(t, "jordan.reyes@campus.edu", res.Email)

	require.Len(t, f.mail.sent, 1)
	assert.Equal(t, "jordan.reyes@campus.edu", f.mail.sent[0].to)
	assert.Len(t, f.mail.sent[0].code, 6)

	// Nothing persisted before confirmation
	assert.Empty(t, f.users.users)

	user, err := f.flow.Confirm(ctx, res.AttemptToken, f.mail.sent[0].code)
	require.NoError(t, err)
	assert.Equal(t, "12345", user.StudentID)
	assert.Equal(t, "Jordan Reyes", user.UserName)
	assert.Equal(t, "555-0101", user.Phone)
	assert.True(t, user.Verified)

	ok, err := f.argon.VerifyPasswd(goodPassword, user.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)

	// The attempt is consumed
	_, err = f.flow.Confirm(ctx, res.AttemptToken, f.mail.sent[0].code)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSignupWrongCodeCanRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.flow.Start(ctx, "12345", goodPassword, "")
	require.NoError(t, err)

	_, err = f.flow.Confirm(ctx, res.AttemptToken, "000000")
	assert.ErrorIs(t, err, ErrCodeMismatch)
	assert.Empty(t, f.users.users)

	_, err = f.flow.Confirm(ctx, res.AttemptToken, "")
	assert.ErrorIs(t, err, ErrCodeEmpty)

	// A wrong guess doesn't burn the code
	user, err := f.flow.Confirm(ctx, res.AttemptToken, f.mail.sent[0].code)
	require.NoError(t, err)
	assert.True(t, user.Verified)
}

func TestSignupUnknownToken(t *testing.T) {
	f := newFixture(t)

	_, err := f.flow.Confirm(context.Background(), "no-such-token", "123456")
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSignupAlreadyRegistered(t *testing.T) {
	f := newFixture(t)
	f.users.users = append(f.users.users, model.User{ID: 1, StudentID: "12345"})

	_, err := f.flow.Start(context.Background(), "12345", goodPassword, "")
	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	assert.Zero(t, f.dir.lookupCalls, "no directory call for a taken student id")
}

func TestSignupStudentNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.flow.Start(context.Background(), "99999", goodPassword, "")
	assert.ErrorIs(t, err, ErrStudentNotFound)
	assert.Empty(t, f.mail.sent)
}

func TestSignupDirectoryDown(t *testing.T) {
	f := newFixture(t)
	f.dir.err = errors.New("connection refused")

	_, err := f.flow.Start(context.Background(), "12345", goodPassword, "")
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
}

func TestSignupMailerDown(t *testing.T) {
	f := newFixture(t)
	f.mail.err = errors.New("smtp timeout")

	_, err := f.flow.Start(context.Background(), "12345", goodPassword, "")
	assert.ErrorIs(t, err, ErrMailDispatch)
	assert.Empty(t, f.users.users)
}

func TestSignupWeakPasswordRejectedEarly(t *testing.T) {
	f := newFixture(t)

	_, err := f.flow.Start(context.Background(), "12345", "short", "")
	assert.Error(t, err)
	assert.Zero(t, f.dir.lookupCalls)
	assert.Empty(t, f.mail.sent)
}

// A second attempt for the same student id overwrites the stored code, so
// the first attempt's code stops working. Known last-writer-wins behavior.
func TestSignupSecondAttemptInvalidatesFirstCode(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res1, err := f.flow.Start(ctx, "12345", goodPassword, "")
	require.NoError(t, err)
	code1 := f.mail.sent[0].code

	res2, err := f.flow.Start(ctx, "12345", goodPassword, "")
	require.NoError(t, err)
	code2 := f.mail.sent[1].code

	if code1 != code2 {
		_, err = f.flow.Confirm(ctx, res1.AttemptToken, code1)
		assert.ErrorIs(t, err, ErrCodeMismatch)
	}

	user, err := f.flow.Confirm(ctx, res2.AttemptToken, code2)
	require.NoError(t, err)
	assert.True(t, user.Verified)
}

func TestPendingEntryExpires(t *testing.T) {
	pending := NewPendingStore(20 * time.Millisecond)
	defer pending.Close()

	token, err := pending.Put(PendingUser{StudentID: "12345"})
	require.NoError(t, err)

	_, ok := pending.Get(token)
	assert.True(t, ok)

	time.Sleep(100 * time.Millisecond)

	_, ok = pending.Get(token)
	assert.False(t, ok)
}
