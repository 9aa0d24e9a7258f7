package gateway

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/felixgeelhaar/fortify/circuitbreaker"
	"github.com/felixgeelhaar/fortify/retry"
)

// ResilienceConfig gates the transport-level resilience wrapper
type ResilienceConfig struct {
	// EnableRetry retries idempotent requests on transport failure
	EnableRetry bool

	// EnableCircuitBreaker stops hammering an unreachable backend
	EnableCircuitBreaker bool

	// MaxAttempts per request when retrying (default: 3)
	MaxAttempts int
}

// resilientTransport wraps the HTTP round trip with retry and a circuit
// breaker. Only transport-level failures count here: a response with any
// status code, 401 and 500 included, is a success at this layer.
// Classification belongs to Call, and retrying a 401 would fire the
// forced-logout protocol more than once.
type resilientTransport struct {
	retrier retry.Retry[*http.Response]
	breaker circuitbreaker.CircuitBreaker[*http.Response]
}

func newResilientTransport(cfg ResilienceConfig, logger *slog.Logger) *resilientTransport {
	rt := &resilientTransport{}

	if cfg.EnableRetry {
		attempts := cfg.MaxAttempts
		if attempts <= 0 {
			attempts = 3
		}
		rt.retrier = retry.New[*http.Response](retry.Config{
			MaxAttempts:   attempts,
			InitialDelay:  200 * time.Millisecond,
			MaxDelay:      3 * time.Second,
			Multiplier:    2.0,
			BackoffPolicy: retry.BackoffExponential,
			Jitter:        true,
			IsRetryable: func(err error) bool {
				// Errors reaching this layer are connection-level;
				// responses never become errors here.
				return err != nil
			},
		})
	}

	if cfg.EnableCircuitBreaker {
		rt.breaker = circuitbreaker.New[*http.Response](circuitbreaker.Config{
			MaxRequests: 2,
			Interval:    10 * time.Second,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
			OnStateChange: func(from, to circuitbreaker.State) {
				if logger != nil {
					logger.Warn("backend circuit breaker state change",
						"from", from.String(),
						"to", to.String())
				}
			},
		})
	}

	return rt
}

// do sends a request built by build, rebuilding it for every attempt so a
// retried request never reuses a drained body. Non-idempotent methods are
// never retried.
func (rt *resilientTransport) do(ctx context.Context, client *http.Client, method string, build func(context.Context) (*http.Request, error)) (*http.Response, error) {
	operation := func(ctx context.Context) (*http.Response, error) {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}
		return client.Do(req)
	}

	retriable := rt.retrier != nil && (method == http.MethodGet || method == http.MethodHead)

	if rt.breaker != nil && retriable {
		return rt.breaker.Execute(ctx, func(ctx context.Context) (*http.Response, error) {
			return rt.retrier.Do(ctx, operation)
		})
	}

	if rt.breaker != nil {
		return rt.breaker.Execute(ctx, operation)
	}

	if retriable {
		return rt.retrier.Do(ctx, operation)
	}

	return operation(ctx)
}
