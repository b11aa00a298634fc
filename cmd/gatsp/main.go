// Command gatsp evolves a short closed tour over a random city map with a
// genetic algorithm and reports the best length found.
//
// Usage:
//
//	gatsp [--config run.yaml] [--cities 100] [--population 1000] [--generations 200] ...
//
// Flags override values read from --config (YAML or TOML).
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
