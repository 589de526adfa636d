package app

import (
	"context"
	"fmt"
	"healthreminder/internal/app/deps"
	dl "healthreminder/internal/core/domain/logging"
	"healthreminder/internal/core/domain/reminder"
	"os"
)

// Run starts both reminder timers and blocks until stopCh delivers a signal
// or ctx is done. Timers are cancelled without waiting for them to return.
func Run(ctx context.Context, deps *deps.Deps, stopCh <-chan os.Signal) error {
	cfg := deps.Config
	out := deps.Stdout

	fmt.Fprintf(out, "⏱️  Reminders started: eyes every %v, water every %v.\n", cfg.EyesEvery, cfg.WaterEvery)
	fmt.Fprintln(out, "Stop with Ctrl+C")

	handles, err := deps.Scheduler.Start(
		ctx,
		reminder.Eyes(cfg.EyesEvery),
		reminder.Water(cfg.WaterEvery),
	)
	if err != nil {
		return err
	}

	select {
	case sig := <-stopCh:
		deps.Logger.Info(ctx, "Stop signal received.", dl.Entry("signal", fmt.Sprint(sig)))
	case <-ctx.Done():
		deps.Logger.Info(ctx, "Context done.", dl.Entry("err", ctx.Err()))
	}

	handles.Stop()
	fmt.Fprintln(out, "\n👋 Exit requested. Take care!")
	return nil
}
