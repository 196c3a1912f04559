package signup

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
)

// CodeStore keeps in-flight verification codes keyed by student id. Entries
// never expire and a second signup attempt for the same id overwrites the
// first, so the last requester wins the code. Both behaviors are known gaps
// of the flow, kept as-is.
type CodeStore struct {
	mu    sync.Mutex
	codes map[string]string
}

func NewCodeStore() *CodeStore {
	return &CodeStore{codes: make(map[string]string)}
}

// Put records the code for a student id, replacing any previous one.
func (s *CodeStore) Put(studentID, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[studentID] = code
}

// Verify compares the submitted code against the stored one. The entry is
// not consumed; call Drop after the account is persisted.
func (s *CodeStore) Verify(studentID, code string) bool {
	if code == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.codes[studentID]
	return ok && stored == code
}

// Drop removes the entry for a student id.
func (s *CodeStore) Drop(studentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, studentID)
}

var codeMax = big.NewInt(1000000)

// GenerateCode returns a random zero-padded 6-digit code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeMax)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
