// Package gateway is the single chokepoint for backend calls. It attaches
// credentials, classifies failures into the domain error taxonomy, and runs
// the forced-logout protocol when the backend rejects the session token.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/learnctl/learnctl/internal/credstore"
	"github.com/learnctl/learnctl/internal/domain"
	"github.com/learnctl/learnctl/internal/session"
)

// loginPath is the credential-exchange endpoint. A 401 from it means bad
// credentials, not an expired session, so it is excluded from forced logout.
const loginPath = "/token"

// Gateway dispatches authenticated requests to the backend API
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	transport  *resilientTransport
	session    *session.Session
	creds      *credstore.Store
	logger     *slog.Logger
	resilience *ResilienceConfig

	// onLogout runs after the forced-logout protocol has cleared state.
	// Navigation back to the landing page is the hook's job.
	onLogout func()
}

// Option configures a Gateway
type Option func(*Gateway)

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.httpClient = c }
}

// WithLogger sets the gateway logger
func WithLogger(l *slog.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// WithResilience wraps the transport with retry and circuit-breaker
// protection per the given config
func WithResilience(cfg ResilienceConfig) Option {
	return func(g *Gateway) { g.resilience = &cfg }
}

// WithLogoutHandler registers the hook invoked after a forced or explicit
// logout has cleared session state
func WithLogoutHandler(fn func()) Option {
	return func(g *Gateway) { g.onLogout = fn }
}

// New creates a gateway for the backend at baseURL
func New(baseURL string, sess *session.Session, creds *credstore.Store, opts ...Option) *Gateway {
	g := &Gateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		session:    sess,
		creds:      creds,
	}
	for _, opt := range opts {
		opt(g)
	}
	// The transport is built after all options have been applied so the
	// breaker logs through whatever logger was configured, in any order.
	if g.resilience != nil {
		g.transport = newResilientTransport(*g.resilience, g.logger)
	}
	return g
}

// CallOption adjusts a single request
type CallOption func(*callRequest)

type callRequest struct {
	headers http.Header
	query   string
}

// WithHeader overrides or adds a request header
func WithHeader(key, value string) CallOption {
	return func(cr *callRequest) { cr.headers.Set(key, value) }
}

// WithQuery attaches an encoded filter set as the query string
func WithQuery(f Filters) CallOption {
	return func(cr *callRequest) { cr.query = f.Encode() }
}

// Call issues a request against the backend and returns the raw JSON body of
// a successful response. Failures are always *domain.APIError:
//
//   - 401 on any path except the login endpoint runs the forced-logout
//     protocol before the error is returned (KindUnauthorized)
//   - other non-2xx responses carry the backend's message (KindRequestFailed)
//   - network and decode failures are KindTransport
//
// Success payloads are returned verbatim; schema validation is the caller's
// responsibility.
func (g *Gateway) Call(ctx context.Context, method, path string, body any, opts ...CallOption) (json.RawMessage, error) {
	cr := &callRequest{headers: http.Header{}}
	for _, opt := range opts {
		opt(cr)
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, domain.NewAPIError(domain.KindTransport, 0, "encode request body").WithCause(err)
		}
	}

	target := g.baseURL + path
	if cr.query != "" {
		target += "?" + cr.query
	}

	requestID := uuid.New().String()
	g.logf("api call", "method", method, "path", path, "request_id", requestID)

	resp, err := g.roundTrip(ctx, method, target, payload, cr.headers, requestID)
	if err != nil {
		g.logf("transport failure", "path", path, "request_id", requestID, "error", err)
		return nil, domain.NewAPIError(domain.KindTransport, 0, "network error").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized && path != loginPath {
		// Session token is no longer valid. Clear everything before the
		// body is even looked at.
		g.Logout()
		return nil, domain.NewAPIError(domain.KindUnauthorized, resp.StatusCode, "session expired")
	}

	raw, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, domain.NewAPIError(domain.KindRequestFailed, resp.StatusCode, errorMessage(raw, resp.StatusCode))
	}

	if readErr != nil {
		return nil, domain.NewAPIError(domain.KindTransport, resp.StatusCode, "read response body").WithCause(readErr)
	}

	return raw, nil
}

// roundTrip builds and sends one request, going through the resilient
// transport when configured. The request is rebuilt per attempt so retries
// never replay a drained body.
func (g *Gateway) roundTrip(ctx context.Context, method, target string, payload []byte, overrides http.Header, requestID string) (*http.Response, error) {
	build := func(ctx context.Context) (*http.Request, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, target, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if token := g.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		req.Header.Set("X-Request-ID", requestID)
		for key, values := range overrides {
			req.Header.Del(key)
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}
		return req, nil
	}

	if g.transport != nil {
		return g.transport.do(ctx, g.httpClient, method, build)
	}

	req, err := build(ctx)
	if err != nil {
		return nil, err
	}
	return g.httpClient.Do(req)
}

// get is a convenience wrapper decoding a successful GET into out
func (g *Gateway) get(ctx context.Context, path string, out any, opts ...CallOption) error {
	raw, err := g.Call(ctx, http.MethodGet, path, nil, opts...)
	if err != nil {
		return err
	}
	return g.decode(raw, out)
}

// post is a convenience wrapper decoding a successful POST into out; out may
// be nil when the response body is irrelevant
func (g *Gateway) post(ctx context.Context, path string, body, out any, opts ...CallOption) error {
	raw, err := g.Call(ctx, http.MethodPost, path, body, opts...)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return g.decode(raw, out)
}

func (g *Gateway) decode(raw json.RawMessage, out any) error {
	if err := json.Unmarshal(raw, out); err != nil {
		return domain.NewAPIError(domain.KindTransport, 0, "malformed response body").WithCause(err)
	}
	return nil
}

// Login performs the unauthenticated credential exchange. It deliberately
// bypasses Call: a 401 here means bad credentials and must not tear down an
// unrelated valid session. On success the token is stored durably, set on
// the session, and the current user is fetched right away.
func (g *Gateway) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrEmailRequired
	}
	if password == "" {
		return nil, domain.ErrPasswordRequired
	}

	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+loginPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, domain.NewAPIError(domain.KindTransport, 0, "build login request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewAPIError(domain.KindTransport, 0, "network error").WithCause(err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Reported as an ordinary request failure for the login form to
		// surface locally; never as a session expiry.
		return nil, domain.NewAPIError(domain.KindRequestFailed, resp.StatusCode, errorMessage(raw, resp.StatusCode))
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &token); err != nil || token.AccessToken == "" {
		return nil, domain.NewAPIError(domain.KindTransport, resp.StatusCode, "malformed token response").WithCause(err)
	}

	if err := g.creds.Set(token.AccessToken); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	g.session.SetToken(token.AccessToken)

	user, err := g.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	g.session.SetUser(user)
	g.logf("logged in", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Logout clears the stored token and the in-memory session, then notifies
// the logout hook. It is idempotent: running it on an anonymous session
// performs the same clears with no error, and overlapping invocations from
// concurrent 401s are safe.
func (g *Gateway) Logout() {
	if err := g.creds.Clear(); err != nil {
		g.logf("clear stored token", "error", err)
	}
	g.session.Clear()
	if g.onLogout != nil {
		g.onLogout()
	}
}

func (g *Gateway) logf(msg string, args ...any) {
	if g.logger != nil {
		g.logger.Debug(msg, args...)
	}
}

// errorMessage extracts the backend's error message from a failure body,
// accepting both message and detail keys, with a synthetic fallback when the
// body is not parseable
func errorMessage(raw []byte, status int) string {
	var body struct {
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Detail != "" {
			return body.Detail
		}
	}
	return fmt.Sprintf("Request failed with status %d", status)
}
