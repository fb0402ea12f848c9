package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

// Init configures the Sentry client. An empty DSN leaves Sentry disabled
// and every recorder becomes a no-op.
func Init(dsn, environment, release string) (*SentryMetrics, error) {
	if dsn == "" {
		return &SentryMetrics{}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          release,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return &SentryMetrics{}, errors.Wrap(err, "failed to initialise sentry")
	}
	return NewSentryMetrics(), nil
}

// Flush waits for buffered events to be delivered
func (m *SentryMetrics) Flush(timeout time.Duration) {
	if !m.Enabled() {
		return
	}
	sentry.Flush(timeout)
}

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// Enabled reports whether spans are recorded
func (m *SentryMetrics) Enabled() bool {
	return m != nil && m.enabled
}

// RecordToolCall records one tool invocation
func (m *SentryMetrics) RecordToolCall(ctx context.Context, tool string, duration time.Duration, success bool) {
	if !m.Enabled() {
		return
	}

	span := sentry.StartSpan(ctx, "mcp.tool_call")
	defer span.Finish()

	span.SetTag("tool", tool)
	span.SetTag("success", fmt.Sprintf("%t", success))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("success", success)

	if success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("Tool Call: %s", tool)
}

// RecordPattern records the shape of a played drum pattern
func (m *SentryMetrics) RecordPattern(ctx context.Context, tracks, unrecognized, steps int, bpm float64) {
	if !m.Enabled() {
		return
	}

	span := sentry.StartSpan(ctx, "pattern.play")
	defer span.Finish()

	span.SetTag("unrecognized", fmt.Sprintf("%t", unrecognized > 0))

	span.SetData("tracks", tracks)
	span.SetData("unrecognized", unrecognized)
	span.SetData("steps", steps)
	span.SetData("bpm", bpm)

	span.Status = sentry.SpanStatusOK
	span.Description = fmt.Sprintf("Drum Pattern: %d tracks, %d steps", tracks, steps)
}

// CaptureError reports an unexpected failure
func (m *SentryMetrics) CaptureError(err error) {
	if !m.Enabled() || err == nil {
		return
	}
	sentry.CaptureException(err)
}
