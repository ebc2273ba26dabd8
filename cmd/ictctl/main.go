// Command ictctl is the operator CLI: offline trade-in estimates, offline
// product comparisons and catalog seeding.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(defaultDeps()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
