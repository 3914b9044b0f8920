package processor

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// defaultInterval is how often the periodic job fires.
const defaultInterval = 5 * time.Minute

// Daemon runs the periodic job on a fixed interval until stopped.
type Daemon struct {
	job      *PeriodicJob
	logger   *zap.Logger
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// NewDaemon creates the billing processor daemon. A non-positive interval
// uses the default.
func NewDaemon(job *PeriodicJob, logger *zap.Logger, interval time.Duration) *Daemon {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Daemon{
		job:      job,
		logger:   logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins processing in the background.
func (d *Daemon) Start() {
	d.wg.Add(1)
	go d.run()
	d.logger.Info("billing processor started",
		zap.Duration("interval", d.interval))
}

// Stop gracefully shuts down the daemon.
func (d *Daemon) Stop() {
	d.logger.Info("Stopping billing processor...")
	close(d.stopCh)
	d.wg.Wait()
	d.logger.Info("Billing processor stopped")
}

// run is the main processing loop.
func (d *Daemon) run() {
	defer d.wg.Done()

	// Process immediately on startup
	d.tick()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.tick()
		case <-d.stopCh:
			return
		}
	}
}

func (d *Daemon) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), d.interval)
	defer cancel()

	if _, err := d.job.Run(ctx); err != nil {
		d.logger.Error("periodic job failed", zap.Error(err))
	}
}
