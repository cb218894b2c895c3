// Package downstream holds the HTTP clients for the services that own customers,
// products and the records kept about each transaction.
package downstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/SscSPs/bank_transaction_service/internal/apperrors"
	"github.com/sony/gobreaker"
)

// errRemoteNotFound marks a 404 or an empty 200 answer. It does not count against the breaker.
var errRemoteNotFound = errors.New("remote resource not found")

// Settings configures the transport and circuit breaker of a client.
type Settings struct {
	Timeout             time.Duration
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

// DefaultSettings mirrors the configuration defaults.
var DefaultSettings = Settings{
	Timeout:             5 * time.Second,
	ConsecutiveFailures: 5,
	OpenTimeout:         30 * time.Second,
}

type baseClient struct {
	name       string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func newBaseClient(name, baseURL string, s Settings) baseClient {
	failures := s.ConsecutiveFailures
	if failures == 0 {
		failures = DefaultSettings.ConsecutiveFailures
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, errRemoteNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return baseClient{
		name:       name,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: s.Timeout},
		breaker:    breaker,
	}
}

// getJSON decodes the answer of GET baseURL+path into out. A 404 or an empty body becomes
// notFound when one is given. Cancellation by the caller is returned as ctx.Err(); every
// other failure becomes apperrors.ErrDownstreamUnavailable.
func (c *baseClient) getJSON(ctx context.Context, path string, out any, notFound *apperrors.AppError) error {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.fetch(ctx, path, out)
	})
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return ctxErr
	}
	if notFound != nil && errors.Is(err, errRemoteNotFound) {
		return apperrors.Wrap(notFound, fmt.Errorf("%s: GET %s", c.name, path))
	}
	return apperrors.Wrap(apperrors.ErrDownstreamUnavailable, fmt.Errorf("%s: GET %s: %w", c.name, path, err))
}

func (c *baseClient) fetch(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return errRemoteNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errRemoteNotFound
		}
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
