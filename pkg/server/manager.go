package server

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/showcase/internal/catalog"
)

// SessionManager tracks all open sessions.
type SessionManager struct {
	sessions map[string]*Session
	mu       sync.RWMutex

	catalog *catalog.Catalog
	config  *SessionConfig
	handler HandlerFunc

	maxSessions int

	totalCreated atomic.Uint64
	totalClosed  atomic.Uint64
	peakSessions int

	onSessionCreate func(*Session)
	onSessionClose  func(*Session)

	metrics *serverMetrics
	logger  *slog.Logger
}

// NewSessionManager creates a manager. handler runs every action; pass
// HandleAction wrapped in any middleware.
func NewSessionManager(cat *catalog.Catalog, config *SessionConfig, handler HandlerFunc, maxSessions int, logger *slog.Logger) *SessionManager {
	if config == nil {
		config = DefaultSessionConfig()
	}
	if handler == nil {
		handler = HandleAction
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{
		sessions:    make(map[string]*Session),
		catalog:     cat,
		config:      config,
		handler:     handler,
		maxSessions: maxSessions,
		logger:      logger,
	}
}

// Create opens a session for conn.
func (sm *SessionManager) Create(conn *websocket.Conn, ip string) (*Session, error) {
	sm.mu.Lock()
	if sm.maxSessions > 0 && len(sm.sessions) >= sm.maxSessions {
		sm.mu.Unlock()
		return nil, ErrMaxSessionsReached
	}

	session, err := newSession(conn, sm.catalog, sm.config, sm.handler, sm.logger)
	if err != nil {
		sm.mu.Unlock()
		return nil, err
	}
	session.IP = ip
	session.metrics = sm.metrics
	session.onClose = sm.remove

	sm.sessions[session.ID] = session
	if n := len(sm.sessions); n > sm.peakSessions {
		sm.peakSessions = n
	}
	sm.totalCreated.Add(1)
	sm.mu.Unlock()

	sm.metrics.sessionOpened()
	if sm.onSessionCreate != nil {
		sm.onSessionCreate(session)
	}

	sm.logger.Info("session created",
		"session_id", session.ID,
		"ip", ip,
		"active_sessions", sm.Count())

	return session, nil
}

// remove is the session's close hook.
func (sm *SessionManager) remove(s *Session) {
	sm.mu.Lock()
	_, ok := sm.sessions[s.ID]
	delete(sm.sessions, s.ID)
	sm.mu.Unlock()

	if !ok {
		return
	}
	sm.totalClosed.Add(1)
	sm.metrics.sessionClosed()
	if sm.onSessionClose != nil {
		sm.onSessionClose(s)
	}
}

// Get returns a session by ID, or nil.
func (sm *SessionManager) Get(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// Close closes a session by ID.
func (sm *SessionManager) Close(id string) error {
	s := sm.Get(id)
	if s == nil {
		return ErrSessionNotFound
	}
	s.Close()
	return nil
}

// Count returns the number of open sessions.
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Shutdown closes all sessions.
func (sm *SessionManager) Shutdown() {
	sm.ShutdownWithContext(context.Background())
}

// ShutdownWithContext closes all sessions, stopping early if ctx ends.
func (sm *SessionManager) ShutdownWithContext(ctx context.Context) error {
	sm.mu.RLock()
	sessions := make([]*Session, 0, len(sm.sessions))
	for _, s := range sm.sessions {
		sessions = append(sessions, s)
	}
	sm.mu.RUnlock()

	for _, s := range sessions {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Close()
	}

	sm.logger.Info("session manager shutdown", "closed_sessions", len(sessions))
	return nil
}

// ManagerStats contains aggregated session manager statistics.
type ManagerStats struct {
	Active       int
	TotalCreated uint64
	TotalClosed  uint64
	Peak         int
}

// Stats returns aggregated session statistics.
func (sm *SessionManager) Stats() ManagerStats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return ManagerStats{
		Active:       len(sm.sessions),
		TotalCreated: sm.totalCreated.Load(),
		TotalClosed:  sm.totalClosed.Load(),
		Peak:         sm.peakSessions,
	}
}

// ForEach iterates over all sessions until fn returns false.
// fn runs under the read lock and must not close sessions.
func (sm *SessionManager) ForEach(fn func(*Session) bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for _, session := range sm.sessions {
		if !fn(session) {
			break
		}
	}
}

// SetOnSessionCreate sets the callback for session creation.
func (sm *SessionManager) SetOnSessionCreate(fn func(*Session)) {
	sm.onSessionCreate = fn
}

// SetOnSessionClose sets the callback for session close.
func (sm *SessionManager) SetOnSessionClose(fn func(*Session)) {
	sm.onSessionClose = fn
}
