package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/elevatorfit/pkg/settings"
	"github.com/philipparndt/elevatorfit/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	logger     = slog.Default()
)

var rootCmd = &cobra.Command{
	Use:   "elevatorfit",
	Short: "Check whether an object fits through an elevator door and into the cab",
	Long: `elevatorfit checks whether a rectangular object, held at a given rotation,
passes through a rectangular door opening and fits inside the elevator cab.
It can also search quarter-turn orientations for the one with the most room.

Dimensions are in centimeters, rotations in degrees. Values come from the
settings file and can be overridden per run with flags.`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		if configPath == "" {
			path, err := settings.DefaultPath()
			if err != nil {
				return err
			}
			configPath = path
		}
		logger.Debug("using settings file", "path", configPath)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (.toml, .yaml or .json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func newStore() *settings.Store {
	return settings.NewStore(configPath, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
