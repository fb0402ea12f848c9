package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WithoutDSNIsDisabled(t *testing.T) {
	m, err := Init("", "test", "dev")
	require.NoError(t, err)
	assert.False(t, m.Enabled())

	ctx := context.Background()
	m.RecordToolCall(ctx, "play_note", time.Millisecond, true)
	m.RecordPattern(ctx, 2, 1, 16, 120)
	m.CaptureError(errors.New("boom"))
	m.Flush(time.Millisecond)
}

func TestNilMetricsIsDisabled(t *testing.T) {
	var m *SentryMetrics
	assert.False(t, m.Enabled())
	m.RecordToolCall(context.Background(), "disconnect", 0, false)
}

func TestNewSentryMetricsIsEnabled(t *testing.T) {
	assert.True(t, NewSentryMetrics().Enabled())
}
