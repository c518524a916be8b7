package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/continuum/pkg/domain/model"
	"github.com/secmon-lab/continuum/pkg/utils/logging"
)

// PublishFunc compiles and publishes a report from a state snapshot
type PublishFunc func(ctx context.Context, state *model.State) error

// ReportWorker publishes the compliance report on a fixed interval
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - The state is read from the in-process snapshot, not from the store
type ReportWorker struct {
	state    func() *model.State
	publish  PublishFunc
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewReportWorker creates a new worker publishing reports of the current state
func NewReportWorker(state func() *model.State, publish PublishFunc, interval time.Duration) *ReportWorker {
	return &ReportWorker{
		state:    state,
		publish:  publish,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background publish loop. The first report goes out after one
// interval, not at startup.
func (w *ReportWorker) Start(ctx context.Context) error {
	if w.interval <= 0 {
		return goerr.New("report interval must be positive", goerr.V("interval", w.interval.String()))
	}

	logging.Default().Info("Report worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *ReportWorker) Stop() {
	logging.Default().Info("Report worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Report worker stopped")
}

// run is the main worker loop (runs in goroutine)
func (w *ReportWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.runOnce(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("Scheduled report failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			return

		case <-ctx.Done():
			logging.Default().Info("Report worker context cancelled")
			return
		}
	}
}

func (w *ReportWorker) runOnce(ctx context.Context) error {
	startTime := time.Now()

	if err := w.publish(ctx, w.state()); err != nil {
		return goerr.Wrap(err, "failed to publish scheduled report")
	}

	logging.Default().Info("Scheduled report published",
		"duration", time.Since(startTime).String())
	return nil
}
