package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/user"
)

// Manager issues sessions with a fixed lifetime and sweeps expired ones.
type Manager struct {
	store    *Store
	duration time.Duration
	logger   logger.Logger
	now      func() time.Time
	stopCh   chan struct{}
}

// NewManager creates a session manager. A nil now uses time.Now.
func NewManager(duration time.Duration, log logger.Logger, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = logger.Noop()
	}
	return &Manager{
		store:    NewStore(),
		duration: duration,
		logger:   log,
		now:      now,
		stopCh:   make(chan struct{}),
	}
}

// Create starts a session for u.
func (m *Manager) Create(u user.User) *Session {
	now := m.now()
	session := &Session{
		ID:        uuid.NewString(),
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(m.duration),
	}
	m.store.Set(session)

	m.logger.Info(context.Background(), "session created", map[string]interface{}{
		"session_id": session.ID,
		"email":      u.Email,
	})
	return session
}

// Get retrieves a live session by ID.
func (m *Manager) Get(sessionID string) (*Session, error) {
	return m.store.Get(sessionID, m.now())
}

// Delete deletes a session by ID.
func (m *Manager) Delete(sessionID string) {
	m.store.Delete(sessionID)
	m.logger.Info(context.Background(), "session deleted", map[string]interface{}{
		"session_id": sessionID,
	})
}

// DeleteAll ends every session. The workbench holds a single signed-in
// user, so logging out ends all browser sessions.
func (m *Manager) DeleteAll() {
	n := m.store.DeleteAll()
	m.logger.Info(context.Background(), "all sessions deleted", map[string]interface{}{
		"removed_count": n,
	})
}

// Cleanup removes expired sessions and returns how many were removed.
func (m *Manager) Cleanup() int {
	return m.store.Cleanup(m.now())
}

// StartCleanup starts a background goroutine that periodically cleans up expired sessions.
func (m *Manager) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				removed := m.Cleanup()
				if removed > 0 {
					m.logger.Info(context.Background(), "cleaned up expired sessions", map[string]interface{}{
						"removed_count": removed,
					})
				}
			case <-m.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// StopCleanup stops the cleanup goroutine.
func (m *Manager) StopCleanup() {
	close(m.stopCh)
}
