package services

import (
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// ResetTokenData identifies the admin account a reset token authorizes.
type ResetTokenData struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

// InterfaceTokenStore abstracts the password-reset token storage so the
// backend can be swapped (in-memory for a single process, Redis when token
// survival across restarts matters) without touching callers.
type InterfaceTokenStore interface {
	// Put stores data under token for ttl.
	Put(token string, data ResetTokenData, ttl time.Duration) error
	// Get returns the data for token, or ErrTokenInvalid when the token is
	// unknown or expired.
	Get(token string) (*ResetTokenData, error)
	// Delete removes the token. Deleting an absent token is not an error.
	Delete(token string) error
}

type memoryEntry struct {
	data      ResetTokenData
	expiresAt time.Time
}

// MemoryTokenStore keeps reset tokens in a process-local map. Expired tokens
// are evicted lazily on first access rather than swept proactively.
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]memoryEntry
	now    func() time.Time
}

// NewMemoryTokenStore creates an empty in-memory token store
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		tokens: make(map[string]memoryEntry),
		now:    time.Now,
	}
}

// Put stores data under token for ttl
func (s *MemoryTokenStore) Put(token string, data ResetTokenData, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = memoryEntry{
		data:      data,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Get returns the data for token, deleting it when expired
func (s *MemoryTokenStore) Get(token string) (*ResetTokenData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[token]
	if !ok {
		return nil, ErrTokenInvalid
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.tokens, token)
		return nil, ErrTokenInvalid
	}
	data := entry.data
	return &data, nil
}

// Delete removes the token
func (s *MemoryTokenStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
	return nil
}

const resetTokenKeyPrefix = "reset_token:"

// RedisTokenStore keeps reset tokens in Redis with native TTL expiry.
type RedisTokenStore struct {
	Redis InterfaceRedisService
}

// NewRedisTokenStore creates a token store backed by Redis
func NewRedisTokenStore(redisService InterfaceRedisService) *RedisTokenStore {
	return &RedisTokenStore{Redis: redisService}
}

// Put stores data under token for ttl
func (s *RedisTokenStore) Put(token string, data ResetTokenData, ttl time.Duration) error {
	return s.Redis.Set(resetTokenKeyPrefix+token, data, ttl)
}

// Get returns the data for token; Redis evicts expired keys itself
func (s *RedisTokenStore) Get(token string) (*ResetTokenData, error) {
	var data ResetTokenData
	if err := s.Redis.Get(resetTokenKeyPrefix+token, &data); err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	return &data, nil
}

// Delete removes the token
func (s *RedisTokenStore) Delete(token string) error {
	return s.Redis.Delete(resetTokenKeyPrefix + token)
}
