package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

// GracefulStop blocks until a termination signal arrives or ctx is done, then runs stop.
// A second signal while stop is running terminates the process.
func GracefulStop(ctx context.Context, stop func()) {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(
		signalChan,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer signal.Stop(signalChan)

	select {
	case sig := <-signalChan:
		zap.L().Info("received signal, shutting down...", zap.String("signal", sig.String()))
	case <-ctx.Done():
		zap.L().Info("context done, shutting down...")
	}

	go func() {
		<-signalChan
		zap.L().Fatal("os.Kill - terminating...")
	}()

	stop()
}
