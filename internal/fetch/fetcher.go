// Package fetch retrieves the waitlist snapshot over HTTP with bounded
// retries, a per-attempt timeout, and exponential backoff.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/clearlane/waitboard/backend/internal/snapshot"
)

const (
	defaultAttemptTimeout = 10 * time.Second
	defaultMaxAttempts    = 3
	defaultBackoffBase    = time.Second

	// maxBodyBytes bounds the snapshot body; the feed is a few KB.
	maxBodyBytes = 4 << 20
)

var (
	errMissingURL         = errors.New("feed url is required")
	errMalformedURL       = errors.New("feed url is not parseable")
	ErrInvalidFetchConfig = errors.New("fetch: invalid fetcher config")
)

// Config bundles construction inputs for a Fetcher. HTTPClient, Clock,
// Sleep, and Logger default when nil so tests can inject fakes.
type Config struct {
	URL            string
	AttemptTimeout time.Duration
	MaxAttempts    int
	BackoffBase    time.Duration
	HTTPClient     *http.Client
	Clock          func() time.Time
	Sleep          func(ctx context.Context, d time.Duration) error
	Logger         *zap.Logger
}

// Fetcher performs the snapshot GET. Attempts are strictly sequential,
// never raced; the only suspension points are the per-attempt deadline
// and the cancellable backoff wait between attempts.
type Fetcher struct {
	feedURL        *url.URL
	attemptTimeout time.Duration
	maxAttempts    int
	backoffBase    time.Duration
	httpClient     *http.Client
	clock          func() time.Time
	sleep          func(ctx context.Context, d time.Duration) error
	logger         *zap.Logger
}

// NewFetcher constructs a fetcher with validated configuration.
func NewFetcher(cfg Config) (*Fetcher, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFetchConfig, errMissingURL)
	}
	feedURL, err := url.Parse(cfg.URL)
	if err != nil || feedURL.Scheme == "" || feedURL.Host == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFetchConfig, errMalformedURL)
	}

	attemptTimeout := cfg.AttemptTimeout
	if attemptTimeout <= 0 {
		attemptTimeout = defaultAttemptTimeout
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	backoffBase := cfg.BackoffBase
	if backoffBase <= 0 {
		backoffBase = defaultBackoffBase
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = waitFor
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fetcher{
		feedURL:        feedURL,
		attemptTimeout: attemptTimeout,
		maxAttempts:    maxAttempts,
		backoffBase:    backoffBase,
		httpClient:     httpClient,
		clock:          clock,
		sleep:          sleep,
		logger:         logger,
	}, nil
}

// fetchState tracks the attempt machine: attempting -> backoff ->
// attempting ... until succeeded or failed.
type fetchState string

const (
	stateAttempting fetchState = "attempting"
	stateBackoff    fetchState = "backoff"
	stateSucceeded  fetchState = "succeeded"
	stateFailed     fetchState = "failed"
)

// Fetch performs one logical fetch: up to MaxAttempts sequential GETs
// with exponential backoff between them. It returns either a validated
// document or the last attempt's classified *Error. Backoff waits abort
// promptly when ctx is cancelled.
func (f *Fetcher) Fetch(ctx context.Context) (*snapshot.Document, error) {
	fetchID := uuid.NewString()
	state := stateAttempting

	var lastErr *Error
	for attempt := 1; attempt <= f.maxAttempts; attempt++ {
		if state == stateBackoff {
			delay := f.backoffDelay(attempt)
			f.logger.Debug("fetch backoff",
				zap.String("fetch_id", fetchID),
				zap.Int("next_attempt", attempt),
				zap.Duration("delay", delay))
			if err := f.sleep(ctx, delay); err != nil {
				// Caller abandoned the operation; surface the last
				// classified failure without waiting out the backoff.
				return nil, lastErr
			}
			state = stateAttempting
		}

		document, attemptErr := f.attempt(ctx, attempt)
		if attemptErr == nil {
			state = stateSucceeded
			f.logger.Info("fetch succeeded",
				zap.String("fetch_id", fetchID),
				zap.Int("attempt", attempt),
				zap.String("state", string(state)))
			return document, nil
		}

		lastErr = attemptErr
		f.logger.Warn("fetch attempt failed",
			zap.String("fetch_id", fetchID),
			zap.Int("attempt", attempt),
			zap.String("kind", string(attemptErr.Kind)),
			zap.Error(attemptErr))

		if ctx.Err() != nil {
			break
		}
		state = stateBackoff
	}

	state = stateFailed
	f.logger.Warn("fetch failed",
		zap.String("fetch_id", fetchID),
		zap.Int("attempts", lastErr.Attempts),
		zap.String("kind", string(lastErr.Kind)),
		zap.String("state", string(state)))
	return nil, lastErr
}

// backoffDelay returns the wait before the given attempt: base before
// attempt 2, then doubling (1s, 2s, 4s, ...).
func (f *Fetcher) backoffDelay(attempt int) time.Duration {
	return f.backoffBase << (attempt - 2)
}

// attempt performs a single GET bounded by the per-attempt timeout and
// classifies any failure.
func (f *Fetcher) attempt(ctx context.Context, attempt int) (*snapshot.Document, *Error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.attemptTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, f.bustedURL(), nil)
	if err != nil {
		return nil, &Error{Kind: KindNetworkFailure, Attempts: attempt, cause: err}
	}

	response, err := f.httpClient.Do(request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: KindTimeout, Attempts: attempt, cause: err}
		}
		return nil, &Error{Kind: KindNetworkFailure, Attempts: attempt, cause: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &Error{Kind: KindHTTPStatus, StatusCode: response.StatusCode, Attempts: attempt}
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: KindTimeout, Attempts: attempt, cause: err}
		}
		return nil, &Error{Kind: KindNetworkFailure, Attempts: attempt, cause: err}
	}

	document, err := snapshot.Decode(body)
	if err != nil {
		return nil, &Error{Kind: KindInvalidShape, Attempts: attempt, cause: err}
	}
	return document, nil
}

// bustedURL appends a current-timestamp query parameter so repeated
// fetches are never served a stale cached response.
func (f *Fetcher) bustedURL() string {
	busted := *f.feedURL
	values := busted.Query()
	values.Set("t", strconv.FormatInt(f.clock().UnixMilli(), 10))
	busted.RawQuery = values.Encode()
	return busted.String()
}

// waitFor blocks for the duration or until ctx is cancelled, releasing
// the timer either way.
func waitFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
