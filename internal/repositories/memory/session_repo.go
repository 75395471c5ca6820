// Package memory keeps sessions in process memory when no MongoDB is
// configured. Sessions are lost on restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/yoockh/careercounsel/internal/models"
	"github.com/yoockh/careercounsel/internal/utils"
)

// sweepEvery bounds how often Save scans for idle sessions.
const sweepEvery = time.Minute

type SessionRepo struct {
	mu        sync.RWMutex
	sessions  map[string]*models.SessionContext
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewSessionRepo drops sessions idle longer than ttl, matching the Mongo
// TTL index. A ttl <= 0 keeps sessions until Delete.
func NewSessionRepo(ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		sessions: map[string]*models.SessionContext{},
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *SessionRepo) expired(s *models.SessionContext, now time.Time) bool {
	return r.ttl > 0 && now.Sub(s.UpdatedAt) > r.ttl
}

func (r *SessionRepo) Get(_ context.Context, sessionID string) (*models.SessionContext, error) {
	now := r.now().UTC()

	r.mu.RLock()
	s, ok := r.sessions[sessionID]
	if ok && !r.expired(s, now) {
		out := s.Clone()
		r.mu.RUnlock()
		return out, nil
	}
	r.mu.RUnlock()

	if ok {
		r.mu.Lock()
		if cur, still := r.sessions[sessionID]; still && r.expired(cur, now) {
			delete(r.sessions, sessionID)
		}
		r.mu.Unlock()
	}
	return nil, utils.ErrNotFound
}

func (r *SessionRepo) Save(_ context.Context, s *models.SessionContext) error {
	now := r.now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.SessionID] = s.Clone()
	if r.ttl > 0 && now.Sub(r.lastSweep) >= sweepEvery {
		r.lastSweep = now
		for id, cur := range r.sessions {
			if r.expired(cur, now) {
				delete(r.sessions, id)
			}
		}
	}
	return nil
}

func (r *SessionRepo) Delete(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sessionID)
	return nil
}

// Len reports how many sessions are held, expired ones included until swept.
func (r *SessionRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
