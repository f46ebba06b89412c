package utils

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerWithWriters(LevelWarn, &out, &errOut)

	l.Debug("hidden %d", 1)
	l.Info("hidden %d", 2)
	l.Warn("shown %d", 3)
	l.Error("failed %s", "write")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown 3")
	assert.Contains(t, errOut.String(), "failed write")
	assert.NotContains(t, out.String(), "failed write")
}

func TestLoggerTimestamp(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerWithWriters(LevelDebug, &out, &out)
	l.now = func() time.Time { return time.Date(2025, 3, 9, 14, 5, 7, 0, time.UTC) }

	l.Debug("tick")
	assert.Contains(t, out.String(), "[2025-03-09 14:05:07]")
	assert.Contains(t, out.String(), "DEBUG")
}

func TestRetrySucceedsAfterFailures(t *testing.T) {
	var slept []time.Duration
	r := &RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   10 * time.Millisecond,
		Logger:      Discard(),
		sleep:       func(d time.Duration) { slept = append(slept, d) },
	}

	calls := 0
	err := r.Do("flaky", func() error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 20 * time.Millisecond}, slept)
}

func TestRetryGivesUp(t *testing.T) {
	sentinel := errors.New("down")
	r := &RetryConfig{MaxAttempts: 2, Logger: Discard(), sleep: func(time.Duration) {}}

	calls := 0
	err := r.Do("connect", func() error {
		calls++
		return sentinel
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Contains(t, err.Error(), "connect failed after 2 attempts")
	assert.Equal(t, 2, calls)
}

func TestRetryZeroAttemptsRunsOnce(t *testing.T) {
	r := &RetryConfig{}
	calls := 0
	require.NoError(t, r.Do("once", func() error { calls++; return nil }))
	assert.Equal(t, 1, calls)
}
