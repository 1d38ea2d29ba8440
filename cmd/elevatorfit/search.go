package main

import (
	"fmt"

	"github.com/philipparndt/elevatorfit/pkg/report"
	"github.com/philipparndt/elevatorfit/pkg/search"
	"github.com/spf13/cobra"
)

var searchOverrides overrides

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Try quarter-turn orientations for the door and the cab",
	Long:  "Evaluate every candidate orientation against the door and the cab and show the best one for each.",
	Args:  cobra.NoArgs,
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchOverrides.register(searchCmd.Flags(), false)
}

func runSearch(cmd *cobra.Command, args []string) error {
	s, warnings, err := searchOverrides.loadSettings()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	p := report.NewPrinter(w)
	p.Warnings(warnings)

	dims := s.ObjectSize()
	p.Evaluations("Door candidates", search.EvaluateDoor(dims, s.Opening()))
	p.Evaluations("Elevator candidates", search.EvaluateEnclosure(dims, s.Enclosure()))

	if door, ok := search.FindBestDoorRotation(dims, s.Opening()); ok {
		fmt.Fprintf(w, "Best for door:     %s %s, clearance %.1f cm\n",
			door.Candidate.Label, door.Candidate.Rotation, door.Clearance)
	} else {
		fmt.Fprintln(w, "Best for door:     none")
	}

	if cab, ok := search.FindBestEnclosureRotation(dims, s.Enclosure()); ok {
		fmt.Fprintf(w, "Best for elevator: %s %s, space %.1f cm\n",
			cab.Candidate.Label, cab.Candidate.Rotation, cab.Space)
	} else {
		fmt.Fprintln(w, "Best for elevator: none")
	}
	return nil
}
