// Package lifecycle orchestrates session startup: restore the stored token,
// resolve the current user, and fire the ready signal every view controller
// waits on. A failed restore degrades to an anonymous session; it is never a
// fatal startup condition.
package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/learnctl/learnctl/internal/credstore"
	"github.com/learnctl/learnctl/internal/gateway"
	"github.com/learnctl/learnctl/internal/session"
)

// Controller drives the session through uninitialized → loading → ready
type Controller struct {
	session *session.Session
	gateway *gateway.Gateway
	creds   *credstore.Store
	logger  *slog.Logger

	startOnce sync.Once
}

// New creates a lifecycle controller. logger may be nil.
func New(sess *session.Session, gw *gateway.Gateway, creds *credstore.Store, logger *slog.Logger) *Controller {
	return &Controller{
		session: sess,
		gateway: gw,
		creds:   creds,
		logger:  logger,
	}
}

// Start runs session restore exactly once. If a token is stored, the current
// user is fetched through the gateway before the ready signal fires, so a
// controller that awaits Ready always observes a fully resolved session.
// Start never returns an error for a failed restore; the session simply
// comes up anonymous.
func (c *Controller) Start(ctx context.Context) {
	c.startOnce.Do(func() {
		c.run(ctx)
	})
}

func (c *Controller) run(ctx context.Context) {
	// Terminal: by the time run returns, Ready has fired.
	defer c.session.MarkReady()

	if !c.session.BeginLoading() {
		return
	}

	token, err := c.creds.Get()
	if err != nil {
		if !errors.Is(err, credstore.ErrNoToken) {
			c.logf("read stored token", "error", err)
		}
		return
	}

	c.session.SetToken(token)

	user, err := c.gateway.CurrentUser(ctx)
	if err != nil {
		// An unauthorized failure already ran the forced logout inside the
		// gateway; clearing again here covers the other failure modes and
		// is idempotent.
		c.logf("session restore failed, starting anonymous", "error", err)
		if clearErr := c.creds.Clear(); clearErr != nil {
			c.logf("clear stored token", "error", clearErr)
		}
		c.session.Clear()
		return
	}

	c.session.SetUser(user)
	c.logf("session restored", "user_id", user.ID, "role", user.Role)
}

// Logout runs the logout protocol for an explicit user action. Logging out
// of an anonymous session performs the same clears with no error.
func (c *Controller) Logout() {
	c.gateway.Logout()
}

func (c *Controller) logf(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
