// Package session holds the client's belief about the current authenticated
// identity: the bearer token, the current user profile, and the startup
// phase. One Session exists per process and is shared by the gateway, the
// lifecycle controller and every view controller.
package session

import (
	"errors"
	"sync"

	"github.com/learnctl/learnctl/internal/domain"
)

var (
	// ErrNotAuthenticated is returned when an authenticated-only page is
	// entered with an anonymous session
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Phase is the startup state of the session
type Phase string

const (
	PhaseUninitialized Phase = "uninitialized"
	PhaseLoading       Phase = "loading"
	PhaseReady         Phase = "ready"
)

// Session is the process-wide authentication state. Mutation is reserved to
// the lifecycle controller and the gateway's login/logout paths; view
// controllers only read, and only after Ready() has fired.
type Session struct {
	mu    sync.RWMutex
	token string
	user  *domain.User
	phase Phase
	ready chan struct{}
}

// New creates an uninitialized session
func New() *Session {
	return &Session{
		phase: PhaseUninitialized,
		ready: make(chan struct{}),
	}
}

// Ready returns a channel that is closed once startup has resolved, for
// better or worse. A view controller must receive from it before its first
// user-scoped read.
func (s *Session) Ready() <-chan struct{} {
	return s.ready
}

// Phase returns the current startup phase
func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Token returns the current bearer token, empty when anonymous
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the current user profile, nil when anonymous
func (s *Session) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Authenticated reports whether a user profile is present
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// SetToken replaces the bearer token
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// SetUser replaces the current user profile
func (s *Session) SetUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// Clear drops both the token and the user profile. Clearing an anonymous
// session is a no-op, which keeps the forced-logout protocol idempotent.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.user = nil
}

// BeginLoading moves the session from uninitialized to loading. It reports
// false if startup already began, guarding against double initialization.
func (s *Session) BeginLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseUninitialized {
		return false
	}
	s.phase = PhaseLoading
	return true
}

// MarkReady moves the session to the terminal ready phase and fires the
// ready signal. Safe to call more than once; the signal fires exactly once.
func (s *Session) MarkReady() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseReady {
		return
	}
	s.phase = PhaseReady
	close(s.ready)
}
