package resolver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MirrorChyan/macdl/internal/config"
	"go.uber.org/zap"
)

type refreshable interface {
	Refresh(ctx context.Context) Outcome
}

// Refresher keeps the resolver cache warm while its owner is alive.
// Start blocks until ctx is done or Stop is called. It is single use.
type Refresher struct {
	logger   *zap.Logger
	target   refreshable
	interval time.Duration

	started  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

func NewRefresher(conf *config.Config, logger *zap.Logger, resolver *VersionResolver) *Refresher {
	return newRefresher(logger, resolver, conf.Resolver.RefreshInterval)
}

func newRefresher(logger *zap.Logger, target refreshable, interval time.Duration) *Refresher {
	return &Refresher{
		logger:   logger,
		target:   target,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (r *Refresher) Start(ctx context.Context) error {
	r.started.Store(true)
	defer close(r.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-r.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	if r.interval <= 0 {
		r.logger.Info("version refresher disabled")
		<-ctx.Done()
		return nil
	}

	r.logger.Info("version refresher started", zap.Duration("interval", r.interval))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("version refresher stopped")
			return nil
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *Refresher) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	if !r.started.Load() {
		return nil
	}
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Refresher) refresh(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	o := r.target.Refresh(ctx)
	r.logger.Debug("version refreshed",
		zap.String("version", o.Version),
		zap.String("source", string(o.Source)),
	)
}
