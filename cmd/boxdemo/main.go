package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/fireflycons/boxprogress"
	"golang.org/x/term"
)

func main() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "boxdemo: stdout is not a terminal")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "boxdemo:", err)
		os.Exit(1)
	}
	fmt.Println("Done")
}

func run(ctx context.Context) error {
	metrics, err := boxprogress.ProbeStdout()
	if err != nil {
		return err
	}

	geometry, err := boxprogress.NewGeometry(metrics)
	if err != nil {
		return err
	}

	bar := boxprogress.NewProgressBar(geometry)

	// Simulate work
	var progress boxprogress.Counter
	return bar.RunE(ctx, &progress, 200, func(ctx context.Context) error {
		for i := 0; i < 200; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(25 * time.Millisecond):
			}
			progress.Inc()
		}
		return nil
	})
}
