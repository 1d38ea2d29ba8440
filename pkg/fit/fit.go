// Package fit checks rotated object extents against a door opening and an
// enclosure. All functions are pure.
package fit

import (
	"math"

	"github.com/philipparndt/elevatorfit/pkg/geometry"
	"github.com/philipparndt/elevatorfit/pkg/orientation"
)

// CheckDoor compares the X and Y extents against the opening. Length is the
// direction of travel and does not matter for passage.
func CheckDoor(extents geometry.Size, opening Opening) DoorFit {
	result := DoorFit{
		WidthFits:       extents.Width <= opening.Width,
		HeightFits:      extents.Height <= opening.Height,
		ObjectWidth:     extents.Width,
		ObjectHeight:    extents.Height,
		WidthClearance:  opening.Width - extents.Width,
		HeightClearance: opening.Height - extents.Height,
	}
	result.Fits = result.WidthFits && result.HeightFits
	result.Clearance = margin(result.Fits, result.WidthClearance, result.HeightClearance)
	return result
}

// CheckEnclosure compares all three extents against the enclosure
func CheckEnclosure(extents geometry.Size, enclosure Enclosure) EnclosureFit {
	result := EnclosureFit{
		WidthFits:   extents.Width <= enclosure.Width,
		HeightFits:  extents.Height <= enclosure.Height,
		LengthFits:  extents.Length <= enclosure.Length,
		WidthSpace:  enclosure.Width - extents.Width,
		HeightSpace: enclosure.Height - extents.Height,
		LengthSpace: enclosure.Length - extents.Length,
	}
	result.Fits = result.WidthFits && result.HeightFits && result.LengthFits
	result.Space = margin(result.Fits, result.WidthSpace, result.HeightSpace, result.LengthSpace)
	return result
}

// CheckFit rotates the object, then checks it against both the opening and
// the enclosure.
func CheckFit(dims geometry.Size, rot orientation.Rotation, opening Opening, enclosure Enclosure) Result {
	extents := geometry.RotatedExtents(dims, orientation.Compose(rot))
	door := CheckDoor(extents, opening)
	cab := CheckEnclosure(extents, enclosure)

	return Result{
		ThroughDoor:    door.Fits,
		InEnclosure:    cab.Fits,
		DoorClearance:  door.Clearance,
		EnclosureSpace: cab.Space,
		RotatedExtents: extents,
		Door:           door,
		Enclosure:      cab,
	}
}

// margin reduces per-axis slacks to one signed value: the smallest slack when
// every axis fits, otherwise minus the largest overage. Axes that already fit
// have a negative overage and never win the max.
func margin(fits bool, slacks ...float64) float64 {
	if fits {
		m := math.Inf(1)
		for _, s := range slacks {
			m = math.Min(m, s)
		}
		return m
	}

	worst := 0.0
	for _, s := range slacks {
		if overage := -s; overage > worst {
			worst = overage
		}
	}
	return -worst
}
