// Package persist runs best-effort background writes. Services hand the
// worker a closure that serializes a snapshot of their in-memory state and
// writes it to the store; callers never wait for the result.
package persist

import (
	"context"

	"github.com/dmitrijs2005/qrkeeper/internal/logging"
)

// Job serializes and writes one state snapshot.
type Job func(ctx context.Context) error

// Worker executes jobs sequentially, in submission order, on a single
// goroutine. Job errors are logged and dropped; there are no retries.
type Worker struct {
	jobs chan job
	done chan struct{}
	log  logging.Logger
}

type job struct {
	run  Job
	sync chan struct{}
}

// NewWorker starts a worker draining a queue of the given size. Submit blocks
// only when the queue is full, which keeps ordering strict while staying
// off the caller's path in normal operation.
func NewWorker(queueSize int, log logging.Logger) *Worker {
	w := &Worker{
		jobs: make(chan job, queueSize),
		done: make(chan struct{}),
		log:  log,
	}
	go w.loop()
	return w
}

func (w *Worker) loop() {
	defer close(w.done)
	ctx := context.Background()
	for j := range w.jobs {
		if j.run != nil {
			if err := j.run(ctx); err != nil {
				w.log.Error(ctx, "background persist failed", "error", err)
			}
		}
		if j.sync != nil {
			close(j.sync)
		}
	}
}

// Submit enqueues a job. It must not be called after Close.
func (w *Worker) Submit(run Job) {
	w.jobs <- job{run: run}
}

// Flush blocks until every job submitted before it has finished.
func (w *Worker) Flush() {
	sync := make(chan struct{})
	w.jobs <- job{sync: sync}
	<-sync
}

// Close drains outstanding jobs and stops the worker.
func (w *Worker) Close() {
	close(w.jobs)
	<-w.done
}
