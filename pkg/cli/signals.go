package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SetupSignalHandler returns a context that is canceled when the
// process receives SIGINT or SIGTERM. A second signal terminates the
// process immediately.
func SetupSignalHandler() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return ctx
}
