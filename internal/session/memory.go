package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/storefront/internal/utils"
	"github.com/MKhiriev/storefront/models"
)

const (
	defaultTTL = 24 * time.Hour

	// sweepInterval is the minimum time between two purges of expired
	// sessions during Save.
	sweepInterval = 5 * time.Minute
)

// MemoryStore is an in-process Store. Entries expire ttl after their last
// Save. An expired entry is dropped on the next Get of its id, and Save
// purges all expired entries at most once per sweepInterval.
type MemoryStore struct {
	mu        sync.RWMutex
	sessions  map[string]storedSession
	ttl       time.Duration
	ids       utils.IDGenerator
	now       func() time.Time
	lastSweep time.Time
}

type storedSession struct {
	session models.Session
	savedAt time.Time
}

// NewMemoryStore creates an empty store. A zero ttl falls back to 24 hours.
func NewMemoryStore(ttl time.Duration, ids utils.IDGenerator) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if ids == nil {
		ids = utils.NewUUIDGenerator()
	}

	return &MemoryStore{
		sessions: make(map[string]storedSession),
		ttl:      ttl,
		ids:      ids,
		now:      time.Now,
	}
}

// Get returns a copy of the stored session.
func (m *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	if id == "" {
		return nil, ErrEmptySessionID
	}

	m.mu.RLock()
	record, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	if m.now().Sub(record.savedAt) > m.ttl {
		m.mu.Lock()
		// a concurrent Save may have refreshed it
		if current, ok := m.sessions[id]; ok && current.savedAt.Equal(record.savedAt) {
			delete(m.sessions, id)
		}
		m.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	s := record.session
	return &s, nil
}

// Save stores a copy of s, assigning an id first when s is new.
func (m *MemoryStore) Save(_ context.Context, s *models.Session) error {
	now := m.now()
	if s.IsNew() {
		s.ID = m.ids.Generate()
		s.CreatedAt = now
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.lastSweep) >= sweepInterval {
		m.deleteExpired(now)
		m.lastSweep = now
	}

	m.sessions[s.ID] = storedSession{session: *s, savedAt: now}
	return nil
}

// Delete removes the session. Deleting an unknown id is not an error.
func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, id)
	return nil
}

func (m *MemoryStore) deleteExpired(now time.Time) {
	for id, record := range m.sessions {
		if now.Sub(record.savedAt) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
