package main

import (
	"github.com/philipparndt/elevatorfit/pkg/report"
	"github.com/philipparndt/elevatorfit/pkg/search"
	"github.com/spf13/cobra"
)

var (
	autofitOverrides overrides
	autofitApply     bool
)

var autofitCmd = &cobra.Command{
	Use:   "autofit",
	Short: "Find the best rotation, door first",
	Long: `Pick the door orientation with the most clearance. If nothing passes the
door, pick the cab orientation with the most space instead.

With --apply the chosen rotation, and any size overrides given on the command
line, are written back to the settings file.`,
	Args: cobra.NoArgs,
	RunE: runAutofit,
}

func init() {
	rootCmd.AddCommand(autofitCmd)
	autofitOverrides.register(autofitCmd.Flags(), false)
	autofitCmd.Flags().BoolVar(&autofitApply, "apply", false, "save the chosen rotation to the settings file")
}

func runAutofit(cmd *cobra.Command, args []string) error {
	s, warnings, err := autofitOverrides.loadSettings()
	if err != nil {
		return err
	}

	p := report.NewPrinter(cmd.OutOrStdout())
	p.Warnings(warnings)

	result, ok := search.AutoFitDetailed(s.ObjectSize(), s.Opening(), s.Enclosure())
	p.AutoFit(result, ok)

	if !ok || !autofitApply {
		return nil
	}

	s = s.WithRotation(result.Candidate.Rotation)
	if err := newStore().Save(s); err != nil {
		return err
	}
	logger.Info("rotation applied", "rotation", result.Candidate.Rotation.String(), "path", configPath)
	return nil
}
