package calculation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures formatted messages by level.
type recordingLogger struct {
	mu    sync.Mutex
	debug []string
	info  []string
	warn  []string
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.add(&r.debug, format, args) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.add(&r.info, format, args) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.add(&r.warn, format, args) }
func (r *recordingLogger) Errorf(format string, args ...any) {}

func (r *recordingLogger) add(dst *[]string, format string, args []any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*dst = append(*dst, fmt.Sprintf(format, args...))
}

type progressCall struct {
	stage       string
	done, total int
}

func TestBatchRunnerRunsEveryItemInChunks(t *testing.T) {
	var calls []progressCall
	var seen []int
	log := &recordingLogger{}
	runner := BatchRunner{
		Stage:    "trials",
		Size:     100,
		Progress: func(stage string, done, total int) { calls = append(calls, progressCall{stage, done, total}) },
		Logger:   log,
	}

	err := runner.Run(context.Background(), 250, func(i int) error {
		seen = append(seen, i)
		return nil
	})
	require.NoError(t, err)

	require.Len(t, seen, 250)
	for i, v := range seen {
		assert.Equal(t, i, v)
	}
	assert.Equal(t, []progressCall{
		{"trials", 100, 250},
		{"trials", 200, 250},
		{"trials", 250, 250},
	}, calls)
	assert.Equal(t, []string{"trials: 100/250 complete", "trials: 200/250 complete", "trials: 250/250 complete"}, log.debug)
}

func TestBatchRunnerDefaultSize(t *testing.T) {
	var batches int
	runner := BatchRunner{Stage: "s", Progress: func(string, int, int) { batches++ }}
	require.NoError(t, runner.Run(context.Background(), DefaultBatchSize*2+1, func(int) error { return nil }))
	assert.Equal(t, 3, batches)
}

func TestBatchRunnerCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var steps int
	err := BatchRunner{Stage: "s", Size: 10}.Run(ctx, 50, func(int) error {
		steps++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, steps)
}

func TestBatchRunnerCancelledBetweenChunks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var steps int
	runner := BatchRunner{
		Stage:    "s",
		Size:     10,
		Progress: func(string, int, int) { cancel() },
	}
	err := runner.Run(ctx, 50, func(int) error {
		steps++
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 10, steps, "the running chunk completes, the next never starts")
	assert.Contains(t, err.Error(), "stopped after 10 of 50")
}

func TestBatchRunnerStepErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	var steps int
	err := BatchRunner{Stage: "s", Size: 10}.Run(context.Background(), 50, func(i int) error {
		steps++
		if i == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, steps)
	assert.Contains(t, err.Error(), "s item 3")
}

func TestBatchRunnerZeroTotal(t *testing.T) {
	var called bool
	err := BatchRunner{Progress: func(string, int, int) { called = true }}.Run(context.Background(), 0, func(int) error { return nil })
	require.NoError(t, err)
	assert.False(t, called)
}

func TestWithPrefix(t *testing.T) {
	log := &recordingLogger{}
	WithPrefix(log, "arm").Warnf("rate %.1f", 7.0)
	assert.Equal(t, []string{"arm: rate 7.0"}, log.warn)

	assert.IsType(t, NopLogger{}, WithPrefix(nil, "x"))
}
