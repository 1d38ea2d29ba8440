package search

import (
	"github.com/philipparndt/elevatorfit/pkg/fit"
	"github.com/philipparndt/elevatorfit/pkg/geometry"
	"github.com/philipparndt/elevatorfit/pkg/orientation"
)

// Source names the search that produced an auto-fit rotation
type Source int

const (
	// SourceNone means no search found a feasible rotation
	SourceNone Source = iota
	// SourceDoor means the door search produced the rotation
	SourceDoor
	// SourceEnclosure means the door search failed and the enclosure search produced the rotation
	SourceEnclosure
)

func (s Source) String() string {
	switch s {
	case SourceDoor:
		return "door"
	case SourceEnclosure:
		return "enclosure"
	default:
		return "none"
	}
}

// AutoFitResult is the outcome of AutoFitDetailed
type AutoFitResult struct {
	Source    Source
	Candidate Candidate
	Margin    float64
	Extents   geometry.Size
}

// AutoFit picks a rotation for the object: the best door orientation if there
// is one, otherwise the best enclosure orientation. ok is false when neither
// search finds a feasible candidate.
//
// A door orientation is returned even if it cannot be placed in the enclosure.
func AutoFit(dims geometry.Size, opening fit.Opening, enclosure fit.Enclosure) (orientation.Rotation, bool) {
	r, ok := AutoFitDetailed(dims, opening, enclosure)
	return r.Candidate.Rotation, ok
}

// AutoFitDetailed is AutoFit with the chosen candidate, its margin and which
// search produced it.
func AutoFitDetailed(dims geometry.Size, opening fit.Opening, enclosure fit.Enclosure) (AutoFitResult, bool) {
	if door, ok := FindBestDoorRotation(dims, opening); ok {
		return AutoFitResult{
			Source:    SourceDoor,
			Candidate: door.Candidate,
			Margin:    door.Clearance,
			Extents:   door.Extents,
		}, true
	}

	if cab, ok := FindBestEnclosureRotation(dims, enclosure); ok {
		return AutoFitResult{
			Source:    SourceEnclosure,
			Candidate: cab.Candidate,
			Margin:    cab.Space,
			Extents:   cab.Extents,
		}, true
	}

	return AutoFitResult{Source: SourceNone}, false
}
