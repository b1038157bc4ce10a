// Package main provides the vitecn CLI, which adds Tailwind CSS and
// shadcn/ui to an existing Vite project.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "vitecn: %v\n", err)
		os.Exit(1)
	}
}
