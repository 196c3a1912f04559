package signup

import (
	"time"

	"github.com/jellydator/ttlcache/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const attemptTokenLen = 24

// PendingUser is the provisional record held between the directory lookup
// and code confirmation. Name and email always come from the directory,
// never from user input. Nothing is persisted until confirmation succeeds.
type PendingUser struct {
	StudentID    string
	UserName     string
	Email        string
	Phone        string
	PasswordHash string
}

// PendingStore holds provisional signups keyed by an opaque attempt token,
// each bounded by a TTL so abandoned attempts age out on their own.
type PendingStore struct {
	cache *ttlcache.Cache
}

func NewPendingStore(ttl time.Duration) *PendingStore {
	cache := ttlcache.NewCache()
	cache.SetTTL(ttl)
	cache.SkipTTLExtensionOnHit(true)

	return &PendingStore{cache: cache}
}

// Put stores a provisional user and returns the attempt token identifying it.
func (s *PendingStore) Put(p PendingUser) (string, error) {
	token, err := gonanoid.New(attemptTokenLen)
	if err != nil {
		return "", err
	}

	if err := s.cache.Set(token, p); err != nil {
		return "", err
	}

	return token, nil
}

// Get resolves an attempt token. The second return is false when the token
// is unknown or the entry expired.
func (s *PendingStore) Get(token string) (PendingUser, bool) {
	v, err := s.cache.Get(token)
	if err != nil {
		return PendingUser{}, false
	}

	p, ok := v.(PendingUser)
	return p, ok
}

// Remove discards a pending entry once it is consumed.
func (s *PendingStore) Remove(token string) {
	s.cache.Remove(token)
}

// Close stops the cache's expiration worker.
func (s *PendingStore) Close() {
	s.cache.Close()
}
