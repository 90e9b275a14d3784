package sessionstore

import (
	"context"
	"encoding/json"
	"sync"

	"bellebook/internal/domain/wizard"
	"bellebook/internal/pkg/errs"

	"github.com/google/uuid"
)

// MemoryStore mirrors RedisStore's semantics for unit tests: sessions are
// kept as JSON snapshots and Update is serialized, so fn always observes the
// latest committed state exactly like a WATCH transaction that won.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[uuid.UUID][]byte)}
}

func (s *MemoryStore) Create(_ context.Context, sess *wizard.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return errs.Wrap(err, "marshal booking session")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ID] = data
	return nil
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decode(id)
}

func (s *MemoryStore) Update(_ context.Context, id uuid.UUID, fn func(*wizard.Session) error) (*wizard.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.decode(id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return nil, errs.Wrap(err, "marshal booking session")
	}
	s.sessions[id] = data
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) decode(id uuid.UUID) (*wizard.Session, error) {
	data, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	var sess wizard.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, errs.Wrap(err, "parse booking session")
	}
	return &sess, nil
}
