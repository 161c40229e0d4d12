// Package resilience wraps outbound HTTP calls with a circuit breaker and
// retry logic, protecting the service from a flapping routing engine.
package resilience

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"
)

// Predefined errors for resilient operations.
var (
	// ErrCircuitOpen is returned when the circuit breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker is open")
)

// ServerError marks a 5xx response so the circuit breaker and retry loop
// treat it as a failure.
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error: status %d", e.StatusCode)
}

// ClientConfig holds configuration for the resilient HTTP client.
type ClientConfig struct {
	// Name identifies the client in circuit breaker state and logs.
	Name string

	// Timeout per HTTP attempt. Default: 10 seconds.
	Timeout time.Duration

	// MaxRetries bounds the retry attempts after the initial call.
	// Default: 3.
	MaxRetries uint64

	// InitialInterval is the first retry backoff delay. Default: 100ms.
	InitialInterval time.Duration

	// MaxInterval caps the backoff delay. Default: 5 seconds.
	MaxInterval time.Duration

	// BreakerTimeout is how long the circuit stays open before probing
	// again. Default: 60 seconds.
	BreakerTimeout time.Duration
}

// Client is an HTTP client with circuit breaker and retry behaviour.
// Retries apply to network errors and 5xx responses; 4xx responses are
// returned to the caller untouched.
type Client struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*http.Response]
	config     ClientConfig
}

// NewClient creates a resilient HTTP client.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.InitialInterval == 0 {
		cfg.InitialInterval = 100 * time.Millisecond
	}
	if cfg.MaxInterval == 0 {
		cfg.MaxInterval = 5 * time.Second
	}
	if cfg.BreakerTimeout == 0 {
		cfg.BreakerTimeout = 60 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: readyToTrip,
	})

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    breaker,
		config:     cfg,
	}
}

// readyToTrip opens the circuit once at least 5 requests were made and half
// of them failed.
func readyToTrip(counts gobreaker.Counts) bool {
	ratio := float64(counts.TotalFailures) / float64(counts.Requests)
	return counts.Requests >= 5 && ratio >= 0.5
}

// Do executes the request, retrying transient failures with exponential
// backoff. It returns ErrCircuitOpen immediately while the circuit is open.
// The caller is responsible for closing the response body.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.config.InitialInterval
	bo.MaxInterval = c.config.MaxInterval
	bo.MaxElapsedTime = 0 // retries are bounded by MaxRetries, not time

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.config.MaxRetries), ctx)

	var resp *http.Response
	operation := func() error {
		attempt := req.Clone(ctx)
		if req.GetBody != nil {
			// Rewind the body so a retried attempt sends the full payload.
			body, bodyErr := req.GetBody()
			if bodyErr != nil {
				return backoff.Permanent(bodyErr)
			}
			attempt.Body = body
		}

		r, err := c.breaker.Execute(func() (*http.Response, error) {
			r, err := c.httpClient.Do(attempt)
			if err != nil {
				return nil, err
			}
			if r.StatusCode >= 500 {
				return r, &ServerError{StatusCode: r.StatusCode}
			}
			return r, nil
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
				return backoff.Permanent(ErrCircuitOpen)
			}
			// Drain the failed response before retrying.
			var serverErr *ServerError
			if errors.As(err, &serverErr) && r != nil {
				r.Body.Close()
			}
			return err
		}
		resp = r
		return nil
	}

	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return resp, nil
}

// State returns the current circuit breaker state for health reporting.
func (c *Client) State() gobreaker.State {
	return c.breaker.State()
}
