package workflow

import (
	"log/slog"
	"sync"
	"time"

	"tripflow/internal/pkg/clock"
	"tripflow/internal/pkg/config"

	"github.com/google/uuid"
)

// Store keeps one controller per browser session, keyed by the session
// cookie. Idle sessions are evicted by the sweeper.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	gw       Gateway
	clock    clock.Clock
	logger   *slog.Logger
	ttl      time.Duration
}

type sessionEntry struct {
	controller *Controller
	lastSeen   time.Time
}

func NewStore(cfg config.SessionConfig, gw Gateway, clk clock.Clock, logger *slog.Logger) *Store {
	return &Store{
		sessions: make(map[string]*sessionEntry),
		gw:       gw,
		clock:    clk,
		logger:   logger,
		ttl:      cfg.TTL,
	}
}

// Resolve returns the controller for the session ID, creating a fresh session
// when the ID is unknown or empty. The returned ID is the one the cookie
// should carry.
func (s *Store) Resolve(sessionID string) (string, *Controller) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sessionID != "" {
		if entry, ok := s.sessions[sessionID]; ok {
			entry.lastSeen = s.clock.Now()
			return sessionID, entry.controller
		}
	}

	id := uuid.NewString()
	controller := NewController(s.gw, s.clock, s.logger)
	s.sessions[id] = &sessionEntry{controller: controller, lastSeen: s.clock.Now()}
	s.logger.Debug("session created", "session_id", id)
	return id, controller
}

// Sweep drops sessions idle longer than the TTL and reports how many went.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.clock.Now().Add(-s.ttl)
	removed := 0
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("sessions evicted", "count", removed)
	}
	return removed
}

// RunSweeper sweeps on the configured interval until stop is closed.
func (s *Store) RunSweeper(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-stop:
			return
		}
	}
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
