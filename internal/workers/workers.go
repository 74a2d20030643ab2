// Package workers provides the background workers of the SDK and a small
// aggregate for running them together.
//
// The only worker today is the secrets cache refresher, which keeps the
// in-memory record snapshot warm so notation lookups do not pay a vault
// round trip.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-keeper-sdk/internal/logger"
)

// Worker is implemented by any background worker.
type Worker interface {
	// Start launches the worker. It is idle until called and stops when ctx
	// is cancelled or Stop is called.
	Start(ctx context.Context)

	// Stop cancels the worker and blocks until it has fully exited. Safe to
	// call when the worker is not running.
	Stop()
}

// Refresher is the slice of the secrets service the refresh worker needs.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Workers aggregates several workers behind one Start/Stop pair.
type Workers struct {
	workers []Worker
}

// NewWorkers builds an aggregate over the given workers.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// Start starts all workers.
func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

// Stop stops all workers and waits for each to exit.
func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}

type refreshWorker struct {
	refresher Refresher
	interval  time.Duration
	log       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a worker that calls refresher.Refresh on a
// ticker. An interval of zero or less defaults to 5 minutes.
func NewRefreshWorker(refresher Refresher, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &refreshWorker{refresher: refresher, interval: interval, log: log}
}

// Start implements [Worker]. It stops any previously running cycle, then
// launches a goroutine that refreshes the cache every interval. Refresh
// failures are logged and the ticker keeps running; the next cycle retries.
func (w *refreshWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-workerCtx.Done():
				return
			case <-t.C:
				if err := w.refresher.Refresh(workerCtx); err != nil {
					w.log.Error().Err(err).Msg("secrets cache refresh failed")
				}
			}
		}
	}()
}

// Stop implements [Worker].
func (w *refreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
