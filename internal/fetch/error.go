package fetch

import "fmt"

// Kind classifies why a fetch attempt failed.
type Kind string

const (
	// KindTimeout marks an attempt cancelled by the per-attempt deadline.
	KindTimeout Kind = "timeout"
	// KindHTTPStatus marks a non-2xx response.
	KindHTTPStatus Kind = "http_status"
	// KindInvalidShape marks a body that is not a valid waitlist document.
	KindInvalidShape Kind = "invalid_shape"
	// KindNetworkFailure marks a transport-level failure other than timeout.
	KindNetworkFailure Kind = "network_failure"
)

// Error is the classified failure surfaced after the last attempt. It
// is the only error type Fetch returns; no raw transport error escapes
// the fetcher.
type Error struct {
	Kind       Kind
	StatusCode int
	Attempts   int
	cause      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("fetch: attempt %d failed with status %d", e.Attempts, e.StatusCode)
	default:
		if e.cause != nil {
			return fmt.Sprintf("fetch: attempt %d failed (%s): %v", e.Attempts, e.Kind, e.cause)
		}
		return fmt.Sprintf("fetch: attempt %d failed (%s)", e.Attempts, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Timeout reports whether the final attempt hit the per-attempt
// deadline, so callers can show "request timed out" instead of a
// generic failure message.
func (e *Error) Timeout() bool {
	return e.Kind == KindTimeout
}
