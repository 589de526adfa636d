package main

import (
	"context"
	"fmt"
	"healthreminder/internal/app"
	"healthreminder/internal/app/deps"
	"healthreminder/internal/config"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	stopCh, closeCh := createChannel()
	defer closeCh()

	rootCmd := newRootCmd(os.Stdout, stopCh)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		closeCh()
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer, stopCh <-chan os.Signal, opts ...deps.Option) *cobra.Command {
	flags := config.DefaultFlags()

	cmd := &cobra.Command{
		Use:           "healthreminder",
		Short:         "Eye & water break reminders",
		Long:          `Prints eye-rest and hydration reminders at fixed intervals and shows them as desktop notifications where the host supports it.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(flags)
			if err != nil {
				return err
			}

			d, shutdownDeps, err := deps.InitDeps(cfg, stdout, opts...)
			if err != nil {
				return err
			}
			defer shutdownDeps()

			return app.Run(context.Background(), d, stopCh)
		},
	}

	cmd.Flags().StringVar(&flags.Eyes, "eyes", config.DefaultEyes, "Interval for resting eyes (e.g. 20m, 30m, 2h)")
	cmd.Flags().StringVar(&flags.Water, "water", config.DefaultWater, "Interval for drinking water (e.g. 1h, 45m)")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", config.DefaultLogLevel, "Log level: debug, info, warn or error")

	return cmd
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)

	return stopCh, func() {
		signal.Stop(stopCh)
	}
}
