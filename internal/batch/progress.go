package batch

import (
	"fmt"
	"time"
)

// ProgressSink receives row-level progress notifications. Implementations
// typically forward to an interactive front-end; delivery is throttled by
// the orchestrator, so a sink sees at most one call per MinProgressInterval
// plus one for the final row.
type ProgressSink interface {
	Notify(current, total int, title string) error
}

// ProgressFunc adapts a function to the ProgressSink interface.
type ProgressFunc func(current, total int, title string) error

func (f ProgressFunc) Notify(current, total int, title string) error {
	return f(current, total, title)
}

// RateLimitError signals that the downstream collaborator refused a
// notification and requires a wait before the next attempt. The orchestrator
// suspends for RetryAfter and retries the notification once.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}
