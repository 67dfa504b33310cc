package repository

import (
	"context"
	"sync"
	"time"

	"tiffin_tales/internal/domain/entities"
	"tiffin_tales/internal/usecase/interfaces"
)

// SessionMemoryRepository keeps sessions in process memory. Expired entries
// are dropped when they are next read.
type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]entities.EstimatorSession
	now      func() time.Time
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{
		sessions: make(map[string]entities.EstimatorSession),
		now:      time.Now,
	}
}

func (r *SessionMemoryRepository) Save(_ context.Context, s entities.EstimatorSession) error {
	r.mu.Lock()
	r.sessions[s.ID] = s.Clone()
	r.mu.Unlock()
	return nil
}

func (r *SessionMemoryRepository) Get(_ context.Context, id string) (entities.EstimatorSession, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return entities.EstimatorSession{}, nil
	}

	if s.Expired(r.now()) {
		r.mu.Lock()
		if cur, ok := r.sessions[id]; ok && cur.Expired(r.now()) {
			delete(r.sessions, id)
		}
		r.mu.Unlock()
		return entities.EstimatorSession{}, nil
	}
	return s.Clone(), nil
}

func (r *SessionMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
	return nil
}

// Len reports the number of stored sessions, expired ones included.
func (r *SessionMemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
