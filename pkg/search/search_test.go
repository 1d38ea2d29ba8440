package search

import (
	"testing"

	"github.com/philipparndt/elevatorfit/pkg/fit"
	"github.com/philipparndt/elevatorfit/pkg/geometry"
	"github.com/philipparndt/elevatorfit/pkg/orientation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	standardDoor = fit.Opening{Width: 90, Height: 200}
	standardCab  = fit.Enclosure{Width: 150, Height: 250, Length: 200}
)

func TestCandidateSets(t *testing.T) {
	door := DoorCandidates()
	cab := EnclosureCandidates()
	require.Len(t, door, 6)
	require.Len(t, cab, 4)

	assert.True(t, door[0].Rotation.IsZero(), "identity must be tried first")
	assert.True(t, cab[0].Rotation.IsZero(), "identity must be tried first")
	assert.Equal(t, orientation.NewRotation(90, 90, 0), door[4].Rotation)
	assert.Equal(t, orientation.NewRotation(0, 90, 90), door[5].Rotation)
}

func TestCandidateSetsCannotBeModified(t *testing.T) {
	door := DoorCandidates()
	door[0] = Candidate{Label: "changed", Rotation: orientation.NewRotation(45, 0, 0)}
	_ = append(door, Candidate{Label: "extra"})

	cab := EnclosureCandidates()
	cab[0].Rotation = orientation.NewRotation(0, 0, 45)

	assert.Equal(t, "original", DoorCandidates()[0].Label)
	assert.True(t, DoorCandidates()[0].Rotation.IsZero())
	assert.True(t, EnclosureCandidates()[0].Rotation.IsZero())
	assert.Len(t, DoorCandidates(), 6)

	evals := EvaluateDoor(geometry.NewSize(80, 180, 120), standardDoor)
	assert.Equal(t, "original", evals[0].Candidate.Label)
	assert.Len(t, evals, 6)
}

func TestFindBestDoorRotation_WideObject(t *testing.T) {
	dims := geometry.NewSize(150, 80, 80)

	evals := EvaluateDoor(dims, standardDoor)
	require.Len(t, evals, len(DoorCandidates()))
	assert.False(t, evals[0].Fits, "unrotated object is too wide")
	assert.Equal(t, "90° Y", evals[2].Candidate.Label)
	assert.True(t, evals[2].Fits, "a quarter turn about Y stands the object on its end")

	result, ok := FindBestDoorRotation(dims, standardDoor)
	require.True(t, ok)
	assert.InDelta(t, 10.0, result.Clearance, 1e-9)
	assert.InDelta(t, 80.0, result.Extents.Width, 1e-9)
}

func TestFindBestDoorRotation_PicksLargestClearance(t *testing.T) {
	result, ok := FindBestDoorRotation(geometry.NewSize(100, 50, 190), standardDoor)

	require.True(t, ok)
	assert.Equal(t, "90° Z", result.Candidate.Label)
	assert.Equal(t, orientation.NewRotation(0, 0, 90), result.Candidate.Rotation)
	assert.InDelta(t, 40.0, result.Clearance, 1e-9)
	assert.InDelta(t, 50.0, result.Extents.Width, 1e-9)
	assert.InDelta(t, 100.0, result.Extents.Height, 1e-9)
	assert.InDelta(t, 190.0, result.Extents.Length, 1e-9)
}

func TestFindBestDoorRotation_NoneFeasible(t *testing.T) {
	result, ok := FindBestDoorRotation(geometry.NewSize(100, 250, 100), standardDoor)

	assert.False(t, ok)
	assert.Equal(t, DoorResult{}, result)
}

func TestFindBestEnclosureRotation(t *testing.T) {
	result, ok := FindBestEnclosureRotation(geometry.NewSize(220, 80, 150), standardCab)

	require.True(t, ok)
	assert.Equal(t, "90° Z", result.Candidate.Label)
	assert.InDelta(t, 30.0, result.Space, 1e-9)
}

func TestFindBestEnclosureRotation_NoneFeasible(t *testing.T) {
	_, ok := FindBestEnclosureRotation(geometry.NewSize(300, 300, 300), standardCab)

	assert.False(t, ok)
}

func TestBest_FirstMaximumWins(t *testing.T) {
	evals := []Evaluation{
		{Candidate: Candidate{Label: "a"}, Fits: false, Margin: -5},
		{Candidate: Candidate{Label: "b"}, Fits: true, Margin: 10},
		{Candidate: Candidate{Label: "c"}, Fits: true, Margin: 10},
		{Candidate: Candidate{Label: "d"}, Fits: true, Margin: 3},
	}

	winner, ok := best(evals)
	require.True(t, ok)
	assert.Equal(t, "b", winner.Candidate.Label)
}

func TestBest_IgnoresInfeasible(t *testing.T) {
	_, ok := best([]Evaluation{{Fits: false, Margin: 100}})

	assert.False(t, ok)
}

func TestSearchCompleteness(t *testing.T) {
	sizes := []geometry.Size{
		geometry.NewSize(80, 180, 120),
		geometry.NewSize(150, 80, 80),
		geometry.NewSize(100, 50, 190),
		geometry.NewSize(210, 85, 60),
		geometry.NewSize(95, 95, 95),
		geometry.NewSize(60, 60, 260),
	}

	for _, dims := range sizes {
		anyFits := false
		for _, e := range EvaluateDoor(dims, standardDoor) {
			anyFits = anyFits || e.Fits
		}

		result, ok := FindBestDoorRotation(dims, standardDoor)
		assert.Equal(t, anyFits, ok, "dims %v", dims)
		if ok {
			assert.GreaterOrEqual(t, result.Clearance, 0.0, "dims %v", dims)
		}
	}
}

func TestSearchIsDeterministic(t *testing.T) {
	dims := geometry.NewSize(150, 80, 80)

	first, _ := FindBestDoorRotation(dims, standardDoor)
	for i := 0; i < 10; i++ {
		again, _ := FindBestDoorRotation(dims, standardDoor)
		assert.Equal(t, first, again)
	}
}
