package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/learnctl/learnctl/internal/credstore"
	"github.com/learnctl/learnctl/internal/gateway"
	"github.com/learnctl/learnctl/internal/session"
)

const testUserJSON = `{"id":1,"name":"Ada","email":"ada@example.com","role":"teacher","is_active":true,"created_at":"2025-01-02T03:04:05Z"}`

type fixture struct {
	controller *Controller
	session    *session.Session
	gateway    *gateway.Gateway
	creds      *credstore.Store
}

func newFixture(t *testing.T, backendURL string, opts ...gateway.Option) *fixture {
	t.Helper()
	creds, err := credstore.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	sess := session.New()
	gw := gateway.New(backendURL, sess, creds, opts...)
	return &fixture{
		controller: New(sess, gw, creds, nil),
		session:    sess,
		gateway:    gw,
		creds:      creds,
	}
}

func TestStart_NoToken_AnonymousReady(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s with no stored token", r.URL.Path)
	}))
	defer backend.Close()

	f := newFixture(t, backend.URL)
	f.controller.Start(context.Background())

	if f.session.Phase() != session.PhaseReady {
		t.Errorf("Phase() = %v; want PhaseReady", f.session.Phase())
	}
	if f.session.Authenticated() {
		t.Error("Authenticated() = true; want anonymous")
	}
}

func TestStart_ValidToken_RestoresUser(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/me" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("Authorization") != "Bearer stored-token" {
			http.Error(w, `{"detail":"Could not validate credentials"}`, http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, testUserJSON)
	}))
	defer backend.Close()

	f := newFixture(t, backend.URL)
	f.creds.Set("stored-token")

	f.controller.Start(context.Background())

	if f.session.Phase() != session.PhaseReady {
		t.Errorf("Phase() = %v; want PhaseReady", f.session.Phase())
	}
	user := f.session.User()
	if user == nil || user.Name != "Ada" {
		t.Errorf("User() = %v; want Ada", user)
	}
	if f.session.Token() != "stored-token" {
		t.Errorf("Token() = %q; want %q", f.session.Token(), "stored-token")
	}
}

func TestStart_InvalidToken_DegradesToAnonymous(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Could not validate credentials"}`, http.StatusUnauthorized)
	}))
	defer backend.Close()

	f := newFixture(t, backend.URL)
	f.creds.Set("expired-token")

	// A failed restore is not a fatal startup condition.
	f.controller.Start(context.Background())

	if f.session.Phase() != session.PhaseReady {
		t.Errorf("Phase() = %v; want PhaseReady", f.session.Phase())
	}
	if f.session.Authenticated() || f.session.Token() != "" {
		t.Error("session not anonymous after invalid-token restore")
	}
	if _, err := f.creds.Get(); !errors.Is(err, credstore.ErrNoToken) {
		t.Errorf("stored token after failed restore: err = %v; want ErrNoToken", err)
	}
}

func TestStart_BackendDown_DegradesToAnonymous(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()

	f := newFixture(t, backend.URL)
	f.creds.Set("some-token")

	f.controller.Start(context.Background())

	if f.session.Phase() != session.PhaseReady {
		t.Errorf("Phase() = %v; want PhaseReady", f.session.Phase())
	}
	if f.session.Authenticated() {
		t.Error("Authenticated() = true; want anonymous when backend unreachable")
	}
}

func TestStart_OnlyOnce(t *testing.T) {
	var fetches atomic.Int32
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches.Add(1)
		fmt.Fprint(w, testUserJSON)
	}))
	defer backend.Close()

	f := newFixture(t, backend.URL)
	f.creds.Set("stored-token")

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.controller.Start(context.Background())
		}()
	}
	wg.Wait()

	if fetches.Load() != 1 {
		t.Errorf("current-user fetched %d times; want 1", fetches.Load())
	}
}

func TestStart_ReadyFiresAfterUserResolved(t *testing.T) {
	release := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		fmt.Fprint(w, testUserJSON)
	}))
	defer backend.Close()

	f := newFixture(t, backend.URL)
	f.creds.Set("stored-token")

	observed := make(chan bool, 1)
	go func() {
		// A view controller: wait for Ready, then read the user.
		<-f.session.Ready()
		observed <- f.session.User() != nil
	}()

	go f.controller.Start(context.Background())

	// Ready must not fire while the user fetch is still in flight.
	select {
	case <-f.session.Ready():
		t.Fatal("Ready() fired before the startup fetch resolved")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)

	select {
	case populated := <-observed:
		if !populated {
			t.Error("view observed Ready with an unresolved user")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Ready() never fired")
	}
}

func TestLogout_TwiceLeavesSameState(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testUserJSON)
	}))
	defer backend.Close()

	var logouts atomic.Int32
	f := newFixture(t, backend.URL, gateway.WithLogoutHandler(func() {
		logouts.Add(1)
	}))
	f.creds.Set("stored-token")
	f.controller.Start(context.Background())

	if !f.session.Authenticated() {
		t.Fatal("restore failed, cannot test logout")
	}

	f.controller.Logout()
	f.controller.Logout()

	if f.session.Token() != "" || f.session.User() != nil {
		t.Error("session not anonymous after logout")
	}
	if _, err := f.creds.Get(); !errors.Is(err, credstore.ErrNoToken) {
		t.Errorf("stored token after logout: err = %v; want ErrNoToken", err)
	}
	if logouts.Load() != 2 {
		t.Errorf("logout hook ran %d times; want 2 (idempotent, not suppressed)", logouts.Load())
	}
}
