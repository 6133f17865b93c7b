package persist

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/dmitrijs2005/qrkeeper/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorker(t *testing.T) (*Worker, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	w := NewWorker(16, log)
	t.Cleanup(w.Close)
	return w, &buf
}

func TestWorker_RunsJobsInSubmissionOrder(t *testing.T) {
	w, _ := newWorker(t)

	var mu sync.Mutex
	var order []int
	for i := 0; i < 50; i++ {
		i := i
		w.Submit(func(context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})
	}
	w.Flush()

	require.Len(t, order, 50)
	for i, got := range order {
		assert.Equal(t, i, got)
	}
}

func TestWorker_JobErrorIsLoggedAndSwallowed(t *testing.T) {
	w, buf := newWorker(t)

	w.Submit(func(context.Context) error { return errors.New("disk full") })

	ran := false
	w.Submit(func(context.Context) error { ran = true; return nil })
	w.Flush()

	assert.True(t, ran, "a failed job must not stop the worker")
	assert.Contains(t, buf.String(), "background persist failed")
	assert.Contains(t, buf.String(), "disk full")
}

func TestWorker_FlushWaitsForPriorJobs(t *testing.T) {
	w, _ := newWorker(t)

	done := false
	w.Submit(func(context.Context) error { done = true; return nil })
	w.Flush()

	assert.True(t, done)
}
