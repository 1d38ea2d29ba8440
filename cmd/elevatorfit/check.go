package main

import (
	"github.com/philipparndt/elevatorfit/pkg/report"
	"github.com/spf13/cobra"
)

var checkOverrides overrides

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the current object and rotation against the door and cab",
	Long:  "Rotate the object as configured and report whether it passes the door and fits in the cab, with the clearance on every axis.",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkOverrides.register(checkCmd.Flags(), true)
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, warnings, err := checkOverrides.loadSettings()
	if err != nil {
		return err
	}

	p := report.NewPrinter(cmd.OutOrStdout())
	p.Warnings(warnings)
	p.Check(s.Check())
	return nil
}
