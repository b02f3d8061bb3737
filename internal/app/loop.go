package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// RunLoop re-runs the cycle on a fixed interval until SIGINT/SIGTERM.
// A failed cycle only logs; the next tick tries again independently.
func RunLoop(c *Cycle, every time.Duration) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	for {
		if _, err := c.Run(context.Background()); err != nil {
			slog.Error("cycle failed", "error", err)
		}

		next := time.Now().Add(every)
		slog.Info("waiting for next run", "hours", every.Hours(), "until", next.Format("2006-01-02 15:04"))
		timer := time.NewTimer(every)
		select {
		case <-timer.C:
		case sig := <-signals:
			slog.Info("received signal, stopping", "sig", sig)
			timer.Stop()
			return
		}
	}
}
