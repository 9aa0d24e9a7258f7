package session

import (
	"testing"
	"time"

	"github.com/learnctl/learnctl/internal/domain"
)

func TestNew_Uninitialized(t *testing.T) {
	s := New()

	if s.Phase() != PhaseUninitialized {
		t.Errorf("Phase() = %v; want %v", s.Phase(), PhaseUninitialized)
	}
	if s.Token() != "" {
		t.Errorf("Token() = %q; want empty", s.Token())
	}
	if s.User() != nil {
		t.Errorf("User() = %v; want nil", s.User())
	}
	if s.Authenticated() {
		t.Error("Authenticated() = true; want false")
	}
}

func TestSession_BeginLoading_Once(t *testing.T) {
	s := New()

	if !s.BeginLoading() {
		t.Fatal("first BeginLoading() = false; want true")
	}
	if s.Phase() != PhaseLoading {
		t.Errorf("Phase() = %v; want %v", s.Phase(), PhaseLoading)
	}
	if s.BeginLoading() {
		t.Error("second BeginLoading() = true; want false")
	}
}

func TestSession_MarkReady_FiresSignalOnce(t *testing.T) {
	s := New()
	s.BeginLoading()

	select {
	case <-s.Ready():
		t.Fatal("Ready() fired before MarkReady()")
	default:
	}

	s.MarkReady()
	s.MarkReady() // must not panic on double close

	select {
	case <-s.Ready():
	case <-time.After(time.Second):
		t.Fatal("Ready() did not fire after MarkReady()")
	}
	if s.Phase() != PhaseReady {
		t.Errorf("Phase() = %v; want %v", s.Phase(), PhaseReady)
	}
}

func TestSession_SetAndClear(t *testing.T) {
	s := New()
	user := &domain.User{ID: 7, Name: "Ada", Role: domain.RoleTeacher}

	s.SetToken("tok")
	s.SetUser(user)

	if s.Token() != "tok" {
		t.Errorf("Token() = %q; want %q", s.Token(), "tok")
	}
	if got := s.User(); got == nil || got.ID != 7 {
		t.Errorf("User() = %v; want ID 7", got)
	}
	if !s.Authenticated() {
		t.Error("Authenticated() = false; want true")
	}

	s.Clear()
	if s.Token() != "" || s.User() != nil {
		t.Error("Clear() did not reset both fields")
	}

	// Clearing an anonymous session is a no-op, not an error or panic.
	s.Clear()
}
