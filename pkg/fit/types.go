package fit

import "github.com/philipparndt/elevatorfit/pkg/geometry"

// Opening is the doorway cross-section in the X-Y plane
type Opening struct {
	Width  float64
	Height float64
}

// Enclosure is the interior cavity of the cab
type Enclosure struct {
	Width  float64
	Height float64
	Length float64
}

// DoorFit is the outcome of comparing rotated extents against an opening.
// Clearance is the smallest slack when the object fits and the negated largest
// overage when it does not.
type DoorFit struct {
	Fits      bool
	Clearance float64

	WidthFits       bool
	HeightFits      bool
	ObjectWidth     float64
	ObjectHeight    float64
	WidthClearance  float64
	HeightClearance float64
}

// EnclosureFit is the outcome of comparing rotated extents against an enclosure.
// Space follows the same sign convention as DoorFit.Clearance.
type EnclosureFit struct {
	Fits  bool
	Space float64

	WidthFits   bool
	HeightFits  bool
	LengthFits  bool
	WidthSpace  float64
	HeightSpace float64
	LengthSpace float64
}

// Status classifies a combined check
type Status int

const (
	// NoFit means the object passes neither the door nor the enclosure
	NoFit Status = iota
	// DoorOnly means the object passes the door but not the enclosure
	DoorOnly
	// EnclosureOnly means the object would fit the enclosure but not the door
	EnclosureOnly
	// Fits means both checks pass
	Fits
)

func (s Status) String() string {
	switch s {
	case Fits:
		return "fits"
	case DoorOnly:
		return "door-only"
	case EnclosureOnly:
		return "enclosure-only"
	default:
		return "no-fit"
	}
}

// Result is the combined outcome of a door and enclosure check for one orientation
type Result struct {
	ThroughDoor    bool
	InEnclosure    bool
	DoorClearance  float64
	EnclosureSpace float64
	RotatedExtents geometry.Size

	Door      DoorFit
	Enclosure EnclosureFit
}

// Status classifies the result
func (r Result) Status() Status {
	switch {
	case r.ThroughDoor && r.InEnclosure:
		return Fits
	case r.ThroughDoor:
		return DoorOnly
	case r.InEnclosure:
		return EnclosureOnly
	default:
		return NoFit
	}
}
