package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/philipparndt/elevatorfit/pkg/report"
	"github.com/philipparndt/elevatorfit/pkg/settings"
	"github.com/philipparndt/elevatorfit/pkg/watcher"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-check every time the settings file changes",
	Long:  "Print a check for the current settings, then print a new one whenever the settings file is saved. Stop with Ctrl+C.",
	Args:  cobra.NoArgs,
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "wait this long after the last write before re-checking")
}

func runWatch(cmd *cobra.Command, args []string) error {
	store := newStore()

	// The watcher needs the file to exist, so seed it with the defaults
	if _, err := os.Stat(store.Path); errors.Is(err, fs.ErrNotExist) {
		if err := store.Save(settings.Defaults()); err != nil {
			return err
		}
		logger.Info("created settings file", "path", store.Path)
	}

	w := cmd.OutOrStdout()
	p := report.NewPrinter(w)

	show := func(s settings.Settings, err error) {
		if err != nil {
			logger.Error("failed to reload settings", "error", err)
			return
		}
		fmt.Fprintf(w, "--- %s ---\n", time.Now().Format(time.TimeOnly))
		p.Warnings(s.Validate())
		p.Check(s.Clamp().Check())
		fmt.Fprintln(w)
	}

	show(store.Load())

	sw, err := watcher.New(store, watchDebounce, logger)
	if err != nil {
		return err
	}
	defer sw.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching settings file", "path", store.Path)
	if err := sw.Run(ctx, show); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
