package search

import "github.com/philipparndt/elevatorfit/pkg/orientation"

// Candidate is a fixed orientation tried by the search
type Candidate struct {
	Label    string
	Rotation orientation.Rotation
}

var doorCandidates = [...]Candidate{
	{Label: "original", Rotation: orientation.NewRotation(0, 0, 0)},
	{Label: "90° X", Rotation: orientation.NewRotation(90, 0, 0)},
	{Label: "90° Y", Rotation: orientation.NewRotation(0, 90, 0)},
	{Label: "90° Z", Rotation: orientation.NewRotation(0, 0, 90)},
	{Label: "90° X + 90° Y", Rotation: orientation.NewRotation(90, 90, 0)},
	{Label: "90° Y + 90° Z", Rotation: orientation.NewRotation(0, 90, 90)},
}

var enclosureCandidates = [...]Candidate{
	{Label: "original", Rotation: orientation.NewRotation(0, 0, 0)},
	{Label: "90° X", Rotation: orientation.NewRotation(90, 0, 0)},
	{Label: "90° Y", Rotation: orientation.NewRotation(0, 90, 0)},
	{Label: "90° Z", Rotation: orientation.NewRotation(0, 0, 90)},
}

// DoorCandidates returns the orientations tried, in order, when looking for a
// door orientation. The slice is a copy.
func DoorCandidates() []Candidate {
	c := doorCandidates
	return c[:]
}

// EnclosureCandidates returns the orientations tried, in order, when looking
// for an enclosure orientation. The slice is a copy.
func EnclosureCandidates() []Candidate {
	c := enclosureCandidates
	return c[:]
}
