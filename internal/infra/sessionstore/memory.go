package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/studio-scheduler/internal/domain/booking"
)

type entry struct {
	sess      booking.Session
	expiresAt time.Time
}

// MemoryStore é usado quando não há Redis configurado (dev e testes).
type MemoryStore struct {
	mu    sync.Mutex
	items map[uuid.UUID]entry
	ttl   time.Duration
	now   func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		items: make(map[uuid.UUID]entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*booking.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return nil, booking.ErrSessionNotFound
	}
	if s.now().After(e.expiresAt) {
		delete(s.items, id)
		return nil, booking.ErrSessionNotFound
	}

	sess := e.sess
	return &sess, nil
}

func (s *MemoryStore) Save(_ context.Context, sess *booking.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[sess.ID] = entry{sess: *sess, expiresAt: s.now().Add(s.ttl)}
	s.sweep()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, id)
	return nil
}

// sweep remove expirados; chamado com o lock já adquirido.
func (s *MemoryStore) sweep() {
	now := s.now()
	for id, e := range s.items {
		if now.After(e.expiresAt) {
			delete(s.items, id)
		}
	}
}

var _ booking.Store = (*MemoryStore)(nil)
