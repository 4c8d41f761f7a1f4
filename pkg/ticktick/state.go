package ticktick

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// StateStore issues and redeems OAuth state values. Each state is valid
// once and for a limited time.
type StateStore struct {
	cache *expirable.LRU[string, struct{}]
}

// NewStateStore creates a store holding at most size pending states.
func NewStateStore(size int, ttl time.Duration) *StateStore {
	if size <= 0 {
		size = defaultStateCapacity
	}
	if ttl <= 0 {
		ttl = DefaultStateTTL
	}
	return &StateStore{cache: expirable.NewLRU[string, struct{}](size, nil, ttl)}
}

// Issue returns a new opaque state value.
func (s *StateStore) Issue() string {
	state := uuid.NewString()
	s.cache.Add(state, struct{}{})
	return state
}

// Consume reports whether state was issued and not yet used or expired,
// and invalidates it.
func (s *StateStore) Consume(state string) bool {
	if state == "" {
		return false
	}
	if _, ok := s.cache.Get(state); !ok {
		return false
	}
	s.cache.Remove(state)
	return true
}
