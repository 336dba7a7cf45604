// Package ctxinterrupt cancels a context when the process receives an
// interrupt, letting in-flight subprocess work shut down cleanly.
package ctxinterrupt

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// WithCancelOnInterrupt returns a context that is cancelled on SIGINT or
// SIGTERM. The second interrupt is left to the default handler, so a stuck
// run can still be killed.
func WithCancelOnInterrupt(ctx context.Context) context.Context {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx
}
