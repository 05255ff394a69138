// Package sigctx ties the process's root context to its lifecycle
// signals.
package sigctx

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// New returns a context that is canceled when the process receives
// SIGINT or SIGTERM. A second signal exits immediately, for when a
// sleep or in-flight request is slow to notice the first one.
func New() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
		<-sigs
		os.Exit(1)
	}()

	return ctx
}
