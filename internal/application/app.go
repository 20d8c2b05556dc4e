package application

import (
	"context"
	"time"

	"github.com/MirrorChyan/macdl/internal/pkg/shutdown"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Adapter interface {
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type App struct {
	adapters        []Adapter
	shutdownTimeout time.Duration
}

func New() *App {
	return &App{
		shutdownTimeout: 5 * time.Second,
	}
}

func (a *App) AddAdapter(adapters ...Adapter) {
	a.adapters = append(a.adapters, adapters...)
}

func (a *App) WithShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
}

// Run starts every adapter and blocks until a termination signal arrives
// or ctx is done, then stops them.
func (a *App) Run(ctx context.Context) {
	a.Start(ctx)

	shutdown.GracefulStop(ctx, func() {
		if err := a.Stop(ctx); err != nil {
			zap.L().Error("shutdown failed", zap.Error(err))
		}
	})
}

func (a *App) Start(ctx context.Context) {
	for _, adapter := range a.adapters {
		go func(adapter Adapter) {
			if err := adapter.Start(ctx); err != nil {
				zap.L().Fatal("adapter start failed", zap.Error(err))
			}
		}(adapter)
	}
}

// Stop stops all adapters concurrently within the shutdown timeout and
// returns the first error.
func (a *App) Stop(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.shutdownTimeout)
	defer cancel()

	zap.L().Info("shutting down...")

	var g errgroup.Group
	for _, adapter := range a.adapters {
		adapter := adapter
		g.Go(func() error {
			return adapter.Stop(ctxWithTimeout)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	zap.L().Info("graceful stopped")
	return nil
}
