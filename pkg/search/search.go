// Package search tries a small fixed set of quarter-turn orientations and
// picks the one that leaves the most room.
package search

import (
	"github.com/philipparndt/elevatorfit/pkg/fit"
	"github.com/philipparndt/elevatorfit/pkg/geometry"
	"github.com/philipparndt/elevatorfit/pkg/orientation"
)

// DoorResult is the best door orientation found
type DoorResult struct {
	Candidate Candidate
	Clearance float64
	Extents   geometry.Size
}

// EnclosureResult is the best enclosure orientation found
type EnclosureResult struct {
	Candidate Candidate
	Space     float64
	Extents   geometry.Size
}

// Evaluation is one row of a search: a candidate and its outcome
type Evaluation struct {
	Candidate Candidate
	Extents   geometry.Size
	Fits      bool
	Margin    float64
}

// EvaluateDoor checks every door candidate in order
func EvaluateDoor(dims geometry.Size, opening fit.Opening) []Evaluation {
	evals := make([]Evaluation, 0, len(doorCandidates))
	for _, c := range doorCandidates {
		extents := geometry.RotatedExtents(dims, orientation.Compose(c.Rotation))
		door := fit.CheckDoor(extents, opening)
		evals = append(evals, Evaluation{
			Candidate: c,
			Extents:   extents,
			Fits:      door.Fits,
			Margin:    door.Clearance,
		})
	}
	return evals
}

// EvaluateEnclosure checks every enclosure candidate in order
func EvaluateEnclosure(dims geometry.Size, enclosure fit.Enclosure) []Evaluation {
	evals := make([]Evaluation, 0, len(enclosureCandidates))
	for _, c := range enclosureCandidates {
		extents := geometry.RotatedExtents(dims, orientation.Compose(c.Rotation))
		cab := fit.CheckEnclosure(extents, enclosure)
		evals = append(evals, Evaluation{
			Candidate: c,
			Extents:   extents,
			Fits:      cab.Fits,
			Margin:    cab.Space,
		})
	}
	return evals
}

// best returns the feasible evaluation with the largest margin. The first one
// wins a tie.
func best(evals []Evaluation) (Evaluation, bool) {
	var (
		winner Evaluation
		found  bool
	)
	for _, e := range evals {
		if !e.Fits {
			continue
		}
		if !found || e.Margin > winner.Margin {
			winner = e
			found = true
		}
	}
	return winner, found
}

// FindBestDoorRotation returns the door candidate with the most clearance.
// ok is false when no candidate passes the opening.
func FindBestDoorRotation(dims geometry.Size, opening fit.Opening) (DoorResult, bool) {
	e, ok := best(EvaluateDoor(dims, opening))
	if !ok {
		return DoorResult{}, false
	}
	return DoorResult{Candidate: e.Candidate, Clearance: e.Margin, Extents: e.Extents}, true
}

// FindBestEnclosureRotation returns the enclosure candidate with the most space.
// ok is false when no candidate fits the enclosure.
func FindBestEnclosureRotation(dims geometry.Size, enclosure fit.Enclosure) (EnclosureResult, bool) {
	e, ok := best(EvaluateEnclosure(dims, enclosure))
	if !ok {
		return EnclosureResult{}, false
	}
	return EnclosureResult{Candidate: e.Candidate, Space: e.Margin, Extents: e.Extents}, true
}
