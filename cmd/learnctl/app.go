package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/learnctl/learnctl/internal/config"
	"github.com/learnctl/learnctl/internal/credstore"
	"github.com/learnctl/learnctl/internal/gateway"
	"github.com/learnctl/learnctl/internal/lifecycle"
	"github.com/learnctl/learnctl/internal/session"
	"github.com/learnctl/learnctl/internal/view"
)

// app wires the client stack together for one command invocation: config,
// credential store, session, gateway, lifecycle controller and the view
// seams. Every command goes through newApp so the startup ordering is the
// same everywhere.
type app struct {
	cfg       *config.Config
	creds     *credstore.Store
	session   *session.Session
	gateway   *gateway.Gateway
	lifecycle *lifecycle.Controller
	renderer  *textRenderer
	notices   *view.NoticeCenter
	nav       *view.MemoryNavigator
	logger    *slog.Logger
}

func newApp() (*app, error) {
	dir, err := config.EnsureDir()
	if err != nil {
		return nil, fmt.Errorf("setup learnctl directory: %w", err)
	}

	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))

	creds, err := credstore.NewStore(dir)
	if err != nil {
		return nil, err
	}

	a := &app{
		cfg:      cfg,
		creds:    creds,
		session:  session.New(),
		renderer: newTextRenderer(os.Stdout),
		nav:      view.NewMemoryNavigator(view.PageLanding),
		logger:   logger,
	}
	a.notices = view.NewNoticeCenter(0, a.renderer.RenderNotice)

	a.gateway = gateway.New(cfg.Server.URL, a.session, creds,
		gateway.WithLogger(logger),
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.Server.Timeout()}),
		gateway.WithResilience(gateway.ResilienceConfig{
			EnableRetry:          cfg.Resilience.EnableRetry,
			EnableCircuitBreaker: cfg.Resilience.EnableCircuitBreaker,
			MaxAttempts:          cfg.Resilience.MaxAttempts,
		}),
		gateway.WithLogoutHandler(a.onLogout),
	)
	a.lifecycle = lifecycle.New(a.session, a.gateway, creds, logger)
	return a, nil
}

// onLogout re-renders the navigation affordance to the anonymous variant and
// navigates to the landing page unless already there
func (a *app) onLogout() {
	a.renderer.RenderNav(view.NavFor(a.session))
	view.ForceLanding(a.nav)
}

// start resolves the session before any command-specific work runs
func (a *app) start(ctx context.Context) {
	a.lifecycle.Start(ctx)
	<-a.session.Ready()
}

// requireUser starts the session and fails when it comes up anonymous
func (a *app) requireUser(ctx context.Context) error {
	a.start(ctx)
	if !a.session.Authenticated() {
		return fmt.Errorf("not logged in (run 'learnctl login' first)")
	}
	return nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
